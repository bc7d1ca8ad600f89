package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/model"
)

func newClassFixture(settings *model.Settings) (*mockCourseClassRepo, CourseClassService) {
	classes := newMockCourseClassRepo()
	courses := newMockCourseRepo()
	semesters := newMockSemesterRepo()
	teachers := newMockTeacherRepo()
	settingsRepo := &mockSettingsRepo{settings: settings}

	courses.courses["course-1"] = &model.Course{CourseID: "course-1", Code: "HP01", Name: "Lập trình Go", Credits: 3, TotalLessons: 45}
	semesters.semesters["sem-1"] = &model.Semester{SemesterID: "sem-1", Name: "Học kì 1", Year: "2023-2024"}
	teachers.teachers["t-1"] = &model.Teacher{TeacherID: "t-1", Code: "GV001", Name: "Nguyễn Văn A"}

	svc := NewCourseClassService(classes, courses, semesters, teachers, settingsRepo, zap.NewNop())
	return classes, svc
}

func createClassReq(code, name, classType string) *dto.CreateCourseClassRequest {
	return &dto.CreateCourseClassRequest{
		CourseID:     "course-1",
		SemesterID:   "sem-1",
		TeacherID:    "t-1",
		Type:         classType,
		Code:         code,
		Name:         name,
		StudentCount: 40,
	}
}

func TestCourseClassCreateStampsCoefficientFromSettings(t *testing.T) {
	_, svc := newClassFixture(&model.Settings{
		Singleton:                true,
		BaseRate:                 50000,
		CoefficientNormal:        1.2,
		CoefficientSpecial:       1.7,
		CoefficientInternational: 2.5,
	})

	resp, err := svc.Create(context.Background(), createClassReq("CL01", "Lớp quốc tế", model.ClassTypeInternational))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.Coefficient != 2.5 {
		t.Errorf("Coefficient = %v, want 2.5", resp.Coefficient)
	}
}

func TestCourseClassCreateFallbackCoefficientWithoutSettings(t *testing.T) {
	cases := []struct {
		classType string
		want      float64
	}{
		{model.ClassTypeNormal, 1},
		{model.ClassTypeSpecial, 1.5},
		{model.ClassTypeInternational, 2},
	}
	for _, tc := range cases {
		t.Run(tc.classType, func(t *testing.T) {
			_, svc := newClassFixture(nil)
			resp, err := svc.Create(context.Background(), createClassReq("CL-"+tc.classType, "Lớp "+tc.classType, tc.classType))
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if resp.Coefficient != tc.want {
				t.Errorf("Coefficient = %v, want %v", resp.Coefficient, tc.want)
			}
		})
	}
}

func TestCourseClassCreateDefaultsToNormalType(t *testing.T) {
	_, svc := newClassFixture(nil)

	resp, err := svc.Create(context.Background(), createClassReq("CL01", "Lớp thường", ""))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.Type != model.ClassTypeNormal {
		t.Errorf("Type = %q, want normal", resp.Type)
	}
}

func TestCourseClassCreateRejectsDuplicateNameInsensitive(t *testing.T) {
	_, svc := newClassFixture(nil)

	if _, err := svc.Create(context.Background(), createClassReq("CL01", "Lớp Sáng", "")); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(context.Background(), createClassReq("CL02", "lớp sáng", ""))
	if !errors.Is(err, ErrClassNameTaken) {
		t.Fatalf("err = %v, want ErrClassNameTaken", err)
	}
}

func TestCourseClassCreateRejectsDuplicateCode(t *testing.T) {
	_, svc := newClassFixture(nil)

	if _, err := svc.Create(context.Background(), createClassReq("CL01", "Lớp A", "")); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(context.Background(), createClassReq("CL01", "Lớp B", ""))
	if !errors.Is(err, ErrClassCodeTaken) {
		t.Fatalf("err = %v, want ErrClassCodeTaken", err)
	}
}

func TestCourseClassCreateUnknownRefs(t *testing.T) {
	_, svc := newClassFixture(nil)

	req := createClassReq("CL01", "Lớp A", "")
	req.CourseID = "missing"
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("course err = %v, want ErrCourseNotFound", err)
	}

	req = createClassReq("CL01", "Lớp A", "")
	req.SemesterID = "missing"
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrSemesterNotFound) {
		t.Errorf("semester err = %v, want ErrSemesterNotFound", err)
	}

	req = createClassReq("CL01", "Lớp A", "")
	req.TeacherID = "missing"
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrTeacherNotFound) {
		t.Errorf("teacher err = %v, want ErrTeacherNotFound", err)
	}
}

func TestCourseClassUpdateTypeRestampsCoefficient(t *testing.T) {
	classes, svc := newClassFixture(&model.Settings{
		Singleton:                true,
		BaseRate:                 50000,
		CoefficientNormal:        1.0,
		CoefficientSpecial:       1.5,
		CoefficientInternational: 2.0,
	})

	created, err := svc.Create(context.Background(), createClassReq("CL01", "Lớp A", model.ClassTypeNormal))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newType := model.ClassTypeSpecial
	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateCourseClassRequest{Type: &newType})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Coefficient != 1.5 {
		t.Errorf("Coefficient = %v, want 1.5 after type change", updated.Coefficient)
	}

	// Updating without a type keeps the stamp.
	count := 50
	updated, err = svc.Update(context.Background(), created.ID, &dto.UpdateCourseClassRequest{StudentCount: &count})
	if err != nil {
		t.Fatalf("second Update: %v", err)
	}
	if updated.Coefficient != 1.5 {
		t.Errorf("Coefficient = %v, want unchanged 1.5", updated.Coefficient)
	}
	if len(classes.classes) != 1 {
		t.Fatalf("class count = %d", len(classes.classes))
	}
}

func TestCourseClassUpdateSameTypeRefreshesStaleCoefficient(t *testing.T) {
	classes, svc := newClassFixture(&model.Settings{
		Singleton:                true,
		BaseRate:                 50000,
		CoefficientNormal:        1.0,
		CoefficientSpecial:       1.5,
		CoefficientInternational: 2.0,
	})

	created, err := svc.Create(context.Background(), createClassReq("CL01", "Lớp A", model.ClassTypeSpecial))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Stamp drifted, e.g. a propagation that failed half way.
	classes.classes[0].Coefficient = 9.9

	sameType := model.ClassTypeSpecial
	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateCourseClassRequest{Type: &sameType})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Coefficient != 1.5 {
		t.Errorf("Coefficient = %v, want re-stamped 1.5", updated.Coefficient)
	}
}

func TestCourseClassDeleteMissing(t *testing.T) {
	_, svc := newClassFixture(nil)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("err = %v, want ErrClassNotFound", err)
	}
}
