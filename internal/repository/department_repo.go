package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/duyvawss25/Do-An-Co-So/internal/model"
)

// DepartmentRepository persists departments.
type DepartmentRepository interface {
	Create(ctx context.Context, department *model.Department) error
	GetByID(ctx context.Context, id string) (*model.Department, error)
	FindByNameInsensitive(ctx context.Context, name, excludeID string) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
	Update(ctx context.Context, department *model.Department) error
	Delete(ctx context.Context, id string) error
	CountTeachers(ctx context.Context, departmentID string) (int64, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository returns the GORM-backed department repository.
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *model.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*model.Department, error) {
	var department model.Department
	if err := r.db.WithContext(ctx).First(&department, "department_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindByNameInsensitive(ctx context.Context, name, excludeID string) (*model.Department, error) {
	query := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		query = query.Where("department_id <> ?", excludeID)
	}
	var department model.Department
	if err := query.First(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]model.Department, error) {
	var departments []model.Department
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) Update(ctx context.Context, department *model.Department) error {
	return r.db.WithContext(ctx).Save(department).Error
}

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Department{}, "department_id = ?", id).Error
}

func (r *departmentRepository) CountTeachers(ctx context.Context, departmentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Teacher{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}
