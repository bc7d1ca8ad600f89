package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/model"
	"github.com/duyvawss25/Do-An-Co-So/internal/repository"
)

// SettingsService manages the single settings row and propagates
// coefficient changes to existing classes.
type SettingsService interface {
	// Get returns the settings, creating the default row on first read.
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	// Update saves new values and re-stamps the classes of every type
	// present in the request, whether or not the value changed, so a
	// re-submit repairs classes a failed propagation left stale.
	// Propagation failures are logged, not rolled back.
	Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
	// PropagateAll re-stamps every class from the current settings.
	PropagateAll(ctx context.Context) (*dto.PropagationResponse, error)
	// GetPaymentRate reads the rate without persisting a default row.
	GetPaymentRate(ctx context.Context) (*dto.PaymentRateResponse, error)
	UpdatePaymentRate(ctx context.Context, req *dto.UpdatePaymentRateRequest) (*dto.PaymentRateResponse, error)
}

type settingsService struct {
	settings repository.SettingsRepository
	classes  repository.CourseClassRepository
	logger   *zap.Logger
}

// NewSettingsService builds the settings service.
func NewSettingsService(
	settings repository.SettingsRepository,
	classes repository.CourseClassRepository,
	logger *zap.Logger,
) SettingsService {
	return &settingsService{settings: settings, classes: classes, logger: logger}
}

func (s *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := s.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func (s *settingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := s.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	// Every coefficient present in the request is propagated, even when
	// the value is unchanged, so classes left stale by an earlier failed
	// propagation get repaired on re-submit.
	provided := map[string]float64{}

	if req.BaseRate != nil {
		settings.BaseRate = *req.BaseRate
	}
	if req.CoefficientNormal != nil {
		settings.CoefficientNormal = *req.CoefficientNormal
		provided[model.ClassTypeNormal] = *req.CoefficientNormal
	}
	if req.CoefficientSpecial != nil {
		settings.CoefficientSpecial = *req.CoefficientSpecial
		provided[model.ClassTypeSpecial] = *req.CoefficientSpecial
	}
	if req.CoefficientInternational != nil {
		settings.CoefficientInternational = *req.CoefficientInternational
		provided[model.ClassTypeInternational] = *req.CoefficientInternational
	}

	if err := s.settings.Save(ctx, settings); err != nil {
		return nil, err
	}

	for _, classType := range model.ClassTypes {
		coefficient, ok := provided[classType]
		if !ok {
			continue
		}
		updated, err := s.classes.UpdateCoefficientByType(ctx, classType, coefficient)
		if err != nil {
			s.logger.Error("coefficient propagation failed",
				zap.String("type", classType),
				zap.Float64("coefficient", coefficient),
				zap.Error(err))
			continue
		}
		s.logger.Info("coefficient propagated",
			zap.String("type", classType),
			zap.Float64("coefficient", coefficient),
			zap.Int64("updated_classes", updated))
	}

	return toSettingsResponse(settings), nil
}

func (s *settingsService) PropagateAll(ctx context.Context) (*dto.PropagationResponse, error) {
	settings, err := s.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, classType := range model.ClassTypes {
		updated, err := s.classes.UpdateCoefficientByType(ctx, classType, settings.CoefficientFor(classType))
		if err != nil {
			s.logger.Error("coefficient propagation failed",
				zap.String("type", classType),
				zap.Error(err))
			continue
		}
		total += updated
	}

	return &dto.PropagationResponse{
		Message:        fmt.Sprintf("Đã cập nhật hệ số cho %d lớp học phần", total),
		UpdatedClasses: total,
	}, nil
}

func (s *settingsService) GetPaymentRate(ctx context.Context) (*dto.PaymentRateResponse, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.PaymentRateResponse{BaseRate: model.DefaultBaseRate}, nil
		}
		return nil, err
	}
	return &dto.PaymentRateResponse{BaseRate: settings.BaseRate}, nil
}

func (s *settingsService) UpdatePaymentRate(ctx context.Context, req *dto.UpdatePaymentRateRequest) (*dto.PaymentRateResponse, error) {
	settings, err := s.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	settings.BaseRate = req.BaseRate
	if err := s.settings.Save(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Info("payment rate updated", zap.Float64("base_rate", settings.BaseRate))

	return &dto.PaymentRateResponse{BaseRate: settings.BaseRate}, nil
}

func (s *settingsService) getOrCreate(ctx context.Context) (*model.Settings, error) {
	settings, err := s.settings.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = model.DefaultSettings()
	if err := s.settings.Save(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Info("default settings created")
	return settings, nil
}

func toSettingsResponse(settings *model.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		BaseRate:                 settings.BaseRate,
		CoefficientNormal:        settings.CoefficientNormal,
		CoefficientSpecial:       settings.CoefficientSpecial,
		CoefficientInternational: settings.CoefficientInternational,
		UpdatedAt:                formatTime(settings.UpdatedAt),
	}
}
