package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/duyvawss25/Do-An-Co-So/internal/model"
)

// SemesterRepository persists semesters.
type SemesterRepository interface {
	Create(ctx context.Context, semester *model.Semester) error
	GetByID(ctx context.Context, id string) (*model.Semester, error)
	// GetByNameAndYear enforces the (name, year) uniqueness rule,
	// skipping excludeID when non-empty.
	GetByNameAndYear(ctx context.Context, name, year, excludeID string) (*model.Semester, error)
	List(ctx context.Context) ([]model.Semester, error)
	ListByYear(ctx context.Context, year string) ([]model.Semester, error)
	ListYears(ctx context.Context) ([]string, error)
	Update(ctx context.Context, semester *model.Semester) error
	Delete(ctx context.Context, id string) error
	CountClasses(ctx context.Context, semesterID string) (int64, error)
}

type semesterRepository struct {
	db *gorm.DB
}

// NewSemesterRepository returns the GORM-backed semester repository.
func NewSemesterRepository(db *gorm.DB) SemesterRepository {
	return &semesterRepository{db: db}
}

func (r *semesterRepository) Create(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Create(semester).Error
}

func (r *semesterRepository) GetByID(ctx context.Context, id string) (*model.Semester, error) {
	var semester model.Semester
	if err := r.db.WithContext(ctx).First(&semester, "semester_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepository) GetByNameAndYear(ctx context.Context, name, year, excludeID string) (*model.Semester, error) {
	query := r.db.WithContext(ctx).Where("name = ? AND year = ?", name, year)
	if excludeID != "" {
		query = query.Where("semester_id <> ?", excludeID)
	}
	var semester model.Semester
	if err := query.First(&semester).Error; err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepository) List(ctx context.Context) ([]model.Semester, error) {
	var semesters []model.Semester
	err := r.db.WithContext(ctx).
		Order("year DESC, name ASC").
		Find(&semesters).Error
	if err != nil {
		return nil, err
	}
	return semesters, nil
}

func (r *semesterRepository) ListByYear(ctx context.Context, year string) ([]model.Semester, error) {
	var semesters []model.Semester
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("name ASC").
		Find(&semesters).Error
	if err != nil {
		return nil, err
	}
	return semesters, nil
}

func (r *semesterRepository) ListYears(ctx context.Context) ([]string, error) {
	var years []string
	err := r.db.WithContext(ctx).Model(&model.Semester{}).
		Distinct("year").
		Order("year DESC").
		Pluck("year", &years).Error
	if err != nil {
		return nil, err
	}
	return years, nil
}

func (r *semesterRepository) Update(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Save(semester).Error
}

func (r *semesterRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Semester{}, "semester_id = ?", id).Error
}

func (r *semesterRepository) CountClasses(ctx context.Context, semesterID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CourseClass{}).
		Where("semester_id = ?", semesterID).
		Count(&count).Error
	return count, err
}
