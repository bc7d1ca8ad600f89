package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/duyvawss25/Do-An-Co-So/internal/model"
)

// CourseRepository persists courses.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id string) (*model.Course, error)
	GetByCode(ctx context.Context, code, excludeID string) (*model.Course, error)
	FindByNameInsensitive(ctx context.Context, name, excludeID string) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id string) error
	CountClasses(ctx context.Context, courseID string) (int64, error)
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository returns the GORM-backed course repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).First(&course, "course_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) GetByCode(ctx context.Context, code, excludeID string) (*model.Course, error) {
	query := r.db.WithContext(ctx).Where("code = ?", code)
	if excludeID != "" {
		query = query.Where("course_id <> ?", excludeID)
	}
	var course model.Course
	if err := query.First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByNameInsensitive(ctx context.Context, name, excludeID string) (*model.Course, error) {
	query := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		query = query.Where("course_id <> ?", excludeID)
	}
	var course model.Course
	if err := query.First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) Update(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Course{}, "course_id = ?", id).Error
}

func (r *courseRepository) CountClasses(ctx context.Context, courseID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CourseClass{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}
