package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/duyvawss25/Do-An-Co-So/internal/model"
)

// SettingsRepository persists the single settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	// Save upserts the singleton row.
	Save(ctx context.Context, settings *model.Settings) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository returns the GORM-backed settings repository.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	if err := r.db.WithContext(ctx).First(&settings, "singleton = ?", true).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *model.Settings) error {
	settings.Singleton = true
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "singleton"}},
			UpdateAll: true,
		}).
		Create(settings).Error
}
