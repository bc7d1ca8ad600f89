package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/duyvawss25/Do-An-Co-So/internal/model"
)

// DegreeRepository persists degrees.
type DegreeRepository interface {
	Create(ctx context.Context, degree *model.Degree) error
	GetByID(ctx context.Context, id string) (*model.Degree, error)
	// FindByNameInsensitive matches a degree by name, case-insensitive,
	// skipping excludeID when non-empty.
	FindByNameInsensitive(ctx context.Context, name, excludeID string) (*model.Degree, error)
	List(ctx context.Context) ([]model.Degree, error)
	Update(ctx context.Context, degree *model.Degree) error
	Delete(ctx context.Context, id string) error
	CountTeachers(ctx context.Context, degreeID string) (int64, error)
}

type degreeRepository struct {
	db *gorm.DB
}

// NewDegreeRepository returns the GORM-backed degree repository.
func NewDegreeRepository(db *gorm.DB) DegreeRepository {
	return &degreeRepository{db: db}
}

func (r *degreeRepository) Create(ctx context.Context, degree *model.Degree) error {
	return r.db.WithContext(ctx).Create(degree).Error
}

func (r *degreeRepository) GetByID(ctx context.Context, id string) (*model.Degree, error) {
	var degree model.Degree
	if err := r.db.WithContext(ctx).First(&degree, "degree_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &degree, nil
}

func (r *degreeRepository) FindByNameInsensitive(ctx context.Context, name, excludeID string) (*model.Degree, error) {
	query := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		query = query.Where("degree_id <> ?", excludeID)
	}
	var degree model.Degree
	if err := query.First(&degree).Error; err != nil {
		return nil, err
	}
	return &degree, nil
}

func (r *degreeRepository) List(ctx context.Context) ([]model.Degree, error) {
	var degrees []model.Degree
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&degrees).Error; err != nil {
		return nil, err
	}
	return degrees, nil
}

func (r *degreeRepository) Update(ctx context.Context, degree *model.Degree) error {
	return r.db.WithContext(ctx).Save(degree).Error
}

func (r *degreeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Degree{}, "degree_id = ?", id).Error
}

func (r *degreeRepository) CountTeachers(ctx context.Context, degreeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Teacher{}).
		Where("degree_id = ?", degreeID).
		Count(&count).Error
	return count, err
}
