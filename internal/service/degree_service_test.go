package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/model"
)

func newDegreeFixture() (*mockDegreeRepo, DegreeService) {
	degrees := newMockDegreeRepo()
	svc := NewDegreeService(degrees, zap.NewNop())
	return degrees, svc
}

func TestDegreeCreateRejectsDuplicateNameInsensitive(t *testing.T) {
	_, svc := newDegreeFixture()

	_, err := svc.Create(context.Background(), &dto.CreateDegreeRequest{Name: "Tiến sĩ", ShortName: "TS", Coefficient: 2.0})
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err = svc.Create(context.Background(), &dto.CreateDegreeRequest{Name: "tiến sĩ", ShortName: "TS2", Coefficient: 2.0})
	if !errors.Is(err, ErrDegreeNameTaken) {
		t.Fatalf("err = %v, want ErrDegreeNameTaken", err)
	}
}

func TestDegreeUpdatePartial(t *testing.T) {
	degrees, svc := newDegreeFixture()
	degrees.degrees["deg-1"] = &model.Degree{DegreeID: "deg-1", Name: "Thạc sĩ", ShortName: "ThS", Coefficient: 1.5}

	coefficient := 1.7
	resp, err := svc.Update(context.Background(), "deg-1", &dto.UpdateDegreeRequest{Coefficient: &coefficient})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.Coefficient != 1.7 {
		t.Errorf("Coefficient = %v, want 1.7", resp.Coefficient)
	}
	if resp.Name != "Thạc sĩ" {
		t.Errorf("Name changed unexpectedly: %s", resp.Name)
	}
}

func TestDegreeDeleteGuardedByTeachers(t *testing.T) {
	degrees, svc := newDegreeFixture()
	degrees.degrees["deg-1"] = &model.Degree{DegreeID: "deg-1", Name: "Thạc sĩ"}
	degrees.teacherCount = 3

	err := svc.Delete(context.Background(), "deg-1")
	var inUse *InUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("err = %v, want InUseError", err)
	}
	if inUse.Count != 3 {
		t.Errorf("Count = %d, want 3", inUse.Count)
	}
}
