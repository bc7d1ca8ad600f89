package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/model"
)

func newSemesterFixture() (*mockSemesterRepo, SemesterService) {
	semesters := newMockSemesterRepo()
	svc := NewSemesterService(semesters, zap.NewNop())
	return semesters, svc
}

func createSemesterReq(name, year string) *dto.CreateSemesterRequest {
	return &dto.CreateSemesterRequest{
		Name:      name,
		Year:      year,
		StartDate: "2023-09-05",
		EndDate:   "2024-01-15",
	}
}

func TestSemesterCreate(t *testing.T) {
	_, svc := newSemesterFixture()

	resp, err := svc.Create(context.Background(), createSemesterReq("Học kì 1", "2023-2024"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.Name != "Học kì 1" || resp.Year != "2023-2024" {
		t.Errorf("resp = %+v", resp)
	}
	if resp.StartDate != "2023-09-05" {
		t.Errorf("StartDate = %s", resp.StartDate)
	}
}

func TestSemesterCreateRejectsBadName(t *testing.T) {
	_, svc := newSemesterFixture()

	_, err := svc.Create(context.Background(), createSemesterReq("Học kì 4", "2023-2024"))
	if !errors.Is(err, ErrSemesterName) {
		t.Fatalf("err = %v, want ErrSemesterName", err)
	}
}

func TestSemesterCreateRejectsBadYear(t *testing.T) {
	_, svc := newSemesterFixture()

	for _, year := range []string{"2023", "2023-2025", "2024-2023", "abcd-efgh"} {
		_, err := svc.Create(context.Background(), createSemesterReq("Học kì 1", year))
		if !errors.Is(err, ErrSemesterYear) {
			t.Errorf("year %q: err = %v, want ErrSemesterYear", year, err)
		}
	}
}

func TestSemesterCreateRejectsDatesOutOfOrder(t *testing.T) {
	_, svc := newSemesterFixture()

	req := createSemesterReq("Học kì 1", "2023-2024")
	req.StartDate = "2024-01-15"
	req.EndDate = "2023-09-05"
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrSemesterDates) {
		t.Fatalf("err = %v, want ErrSemesterDates", err)
	}
}

func TestSemesterCreateRejectsDuplicateNameYear(t *testing.T) {
	_, svc := newSemesterFixture()

	if _, err := svc.Create(context.Background(), createSemesterReq("Học kì 1", "2023-2024")); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(context.Background(), createSemesterReq("Học kì 1", "2023-2024"))
	if !errors.Is(err, ErrSemesterDuplicate) {
		t.Fatalf("err = %v, want ErrSemesterDuplicate", err)
	}

	// Same name in a different year is fine.
	req := createSemesterReq("Học kì 1", "2024-2025")
	req.StartDate = "2024-09-05"
	req.EndDate = "2025-01-15"
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("different year Create: %v", err)
	}
}

func TestSemesterDeleteGuardedByClasses(t *testing.T) {
	semesters, svc := newSemesterFixture()
	semesters.semesters["sem-1"] = &model.Semester{SemesterID: "sem-1", Name: "Học kì 1", Year: "2023-2024"}
	semesters.classCount = 4

	err := svc.Delete(context.Background(), "sem-1")
	var inUse *InUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("err = %v, want InUseError", err)
	}
	if inUse.Count != 4 {
		t.Errorf("Count = %d, want 4", inUse.Count)
	}
	if _, ok := semesters.semesters["sem-1"]; !ok {
		t.Error("semester was deleted despite the guard")
	}
}

func TestSemesterDelete(t *testing.T) {
	semesters, svc := newSemesterFixture()
	semesters.semesters["sem-1"] = &model.Semester{SemesterID: "sem-1", Name: "Học kì 1", Year: "2023-2024"}

	if err := svc.Delete(context.Background(), "sem-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := semesters.semesters["sem-1"]; ok {
		t.Error("semester still present after delete")
	}
}

func TestValidSemesterYear(t *testing.T) {
	cases := map[string]bool{
		"2023-2024": true,
		"1999-2000": true,
		"2023-2023": false,
		"2023-2026": false,
		"23-24":     false,
		"":          false,
	}
	for year, want := range cases {
		if got := validSemesterYear(year); got != want {
			t.Errorf("validSemesterYear(%q) = %v, want %v", year, got, want)
		}
	}
}
