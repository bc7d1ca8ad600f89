package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/model"
)

func newDepartmentFixture() (*mockDepartmentRepo, DepartmentService) {
	departments := newMockDepartmentRepo()
	svc := NewDepartmentService(departments, zap.NewNop())
	return departments, svc
}

func TestDepartmentCreateRejectsDuplicateNameInsensitive(t *testing.T) {
	_, svc := newDepartmentFixture()

	_, err := svc.Create(context.Background(), &dto.CreateDepartmentRequest{Name: "Khoa CNTT", ShortName: "CNTT"})
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err = svc.Create(context.Background(), &dto.CreateDepartmentRequest{Name: "khoa cntt", ShortName: "CNTT2"})
	if !errors.Is(err, ErrDepartmentNameTaken) {
		t.Fatalf("err = %v, want ErrDepartmentNameTaken", err)
	}
}

func TestDepartmentUpdateAllowsOwnName(t *testing.T) {
	departments, svc := newDepartmentFixture()
	departments.departments["dep-1"] = &model.Department{DepartmentID: "dep-1", Name: "Khoa CNTT", ShortName: "CNTT"}

	// Re-submitting the unchanged name must not trip the dedup.
	name := "Khoa CNTT"
	desc := "Khoa Công nghệ thông tin"
	resp, err := svc.Update(context.Background(), "dep-1", &dto.UpdateDepartmentRequest{Name: &name, Description: &desc})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.Description != desc {
		t.Errorf("Description = %s", resp.Description)
	}
}

func TestDepartmentDeleteGuardedByTeachers(t *testing.T) {
	departments, svc := newDepartmentFixture()
	departments.departments["dep-1"] = &model.Department{DepartmentID: "dep-1", Name: "Khoa CNTT"}
	departments.teacherCount = 5

	err := svc.Delete(context.Background(), "dep-1")
	var inUse *InUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("err = %v, want InUseError", err)
	}
	if inUse.Count != 5 {
		t.Errorf("Count = %d, want 5", inUse.Count)
	}
}

func TestDepartmentDeleteMissing(t *testing.T) {
	_, svc := newDepartmentFixture()

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrDepartmentNotFound) {
		t.Fatalf("err = %v, want ErrDepartmentNotFound", err)
	}
}
