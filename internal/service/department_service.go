package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/model"
	"github.com/duyvawss25/Do-An-Co-So/internal/repository"
)

var (
	ErrDepartmentNotFound  = errors.New("Không tìm thấy khoa")
	ErrDepartmentNameTaken = errors.New("Tên khoa đã tồn tại")
)

// DepartmentService manages departments.
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.DepartmentResponse, error)
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type departmentService struct {
	departments repository.DepartmentRepository
	logger      *zap.Logger
}

// NewDepartmentService builds the department service.
func NewDepartmentService(departments repository.DepartmentRepository, logger *zap.Logger) DepartmentService {
	return &departmentService{departments: departments, logger: logger}
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if err := s.checkNameFree(ctx, req.Name, ""); err != nil {
		return nil, err
	}

	department := &model.Department{
		Name:        req.Name,
		ShortName:   req.ShortName,
		Description: req.Description,
	}
	if err := s.departments.Create(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info("department created", zap.String("department_id", department.DepartmentID), zap.String("name", department.Name))

	return toDepartmentResponse(department), nil
}

func (s *departmentService) GetByID(ctx context.Context, id string) (*dto.DepartmentResponse, error) {
	department, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	return toDepartmentResponse(department), nil
}

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(departments))
	for i := range departments {
		out = append(out, *toDepartmentResponse(&departments[i]))
	}
	return out, nil
}

func (s *departmentService) Update(ctx context.Context, id string, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	department, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != department.Name {
		if err := s.checkNameFree(ctx, *req.Name, id); err != nil {
			return nil, err
		}
		department.Name = *req.Name
	}
	if req.ShortName != nil {
		department.ShortName = *req.ShortName
	}
	if req.Description != nil {
		department.Description = *req.Description
	}

	if err := s.departments.Update(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info("department updated", zap.String("department_id", department.DepartmentID))

	return toDepartmentResponse(department), nil
}

func (s *departmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.departments.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		return err
	}

	count, err := s.departments.CountTeachers(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return newInUseError("Không thể xóa khoa vì đang có %d giáo viên trực thuộc", count)
	}

	if err := s.departments.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("department deleted", zap.String("department_id", id))
	return nil
}

func (s *departmentService) checkNameFree(ctx context.Context, name, excludeID string) error {
	_, err := s.departments.FindByNameInsensitive(ctx, name, excludeID)
	if err == nil {
		return ErrDepartmentNameTaken
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func toDepartmentResponse(department *model.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:          department.DepartmentID,
		Name:        department.Name,
		ShortName:   department.ShortName,
		Description: department.Description,
		CreatedAt:   formatTime(department.CreatedAt),
		UpdatedAt:   formatTime(department.UpdatedAt),
	}
}
