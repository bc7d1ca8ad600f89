package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/duyvawss25/Do-An-Co-So/internal/model"
)

// TeacherRepository persists teachers.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	// GetByID preloads Department and Degree.
	GetByID(ctx context.Context, id string) (*model.Teacher, error)
	// GetByCode matches on the unique teacher code, skipping excludeID
	// when non-empty.
	GetByCode(ctx context.Context, code, excludeID string) (*model.Teacher, error)
	List(ctx context.Context) ([]model.Teacher, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]model.Teacher, error)
	Update(ctx context.Context, teacher *model.Teacher) error
	Delete(ctx context.Context, id string) error
	CountClasses(ctx context.Context, teacherID string) (int64, error)
}

type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository returns the GORM-backed teacher repository.
func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepository) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Degree").
		First(&teacher, "teacher_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepository) GetByCode(ctx context.Context, code, excludeID string) (*model.Teacher, error) {
	query := r.db.WithContext(ctx).Where("code = ?", code)
	if excludeID != "" {
		query = query.Where("teacher_id <> ?", excludeID)
	}
	var teacher model.Teacher
	if err := query.First(&teacher).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepository) List(ctx context.Context) ([]model.Teacher, error) {
	var teachers []model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Degree").
		Order("created_at ASC").
		Find(&teachers).Error
	if err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *teacherRepository) ListByDepartment(ctx context.Context, departmentID string) ([]model.Teacher, error) {
	var teachers []model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Degree").
		Where("department_id = ?", departmentID).
		Order("created_at ASC").
		Find(&teachers).Error
	if err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *teacherRepository) Update(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Save(teacher).Error
}

func (r *teacherRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Teacher{}, "teacher_id = ?", id).Error
}

func (r *teacherRepository) CountClasses(ctx context.Context, teacherID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CourseClass{}).
		Where("teacher_id = ?", teacherID).
		Count(&count).Error
	return count, err
}
