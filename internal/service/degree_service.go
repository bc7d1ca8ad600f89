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
	ErrDegreeNotFound  = errors.New("Không tìm thấy bằng cấp")
	ErrDegreeNameTaken = errors.New("Tên bằng cấp đã tồn tại")
)

// DegreeService manages degrees.
type DegreeService interface {
	Create(ctx context.Context, req *dto.CreateDegreeRequest) (*dto.DegreeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.DegreeResponse, error)
	List(ctx context.Context) ([]dto.DegreeResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateDegreeRequest) (*dto.DegreeResponse, error)
	Delete(ctx context.Context, id string) error
}

type degreeService struct {
	degrees repository.DegreeRepository
	logger  *zap.Logger
}

// NewDegreeService builds the degree service.
func NewDegreeService(degrees repository.DegreeRepository, logger *zap.Logger) DegreeService {
	return &degreeService{degrees: degrees, logger: logger}
}

func (s *degreeService) Create(ctx context.Context, req *dto.CreateDegreeRequest) (*dto.DegreeResponse, error) {
	if err := s.checkNameFree(ctx, req.Name, ""); err != nil {
		return nil, err
	}

	degree := &model.Degree{
		Name:        req.Name,
		ShortName:   req.ShortName,
		Coefficient: req.Coefficient,
	}
	if err := s.degrees.Create(ctx, degree); err != nil {
		return nil, err
	}

	s.logger.Info("degree created", zap.String("degree_id", degree.DegreeID), zap.String("name", degree.Name))

	return toDegreeResponse(degree), nil
}

func (s *degreeService) GetByID(ctx context.Context, id string) (*dto.DegreeResponse, error) {
	degree, err := s.degrees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDegreeNotFound
		}
		return nil, err
	}
	return toDegreeResponse(degree), nil
}

func (s *degreeService) List(ctx context.Context) ([]dto.DegreeResponse, error) {
	degrees, err := s.degrees.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DegreeResponse, 0, len(degrees))
	for i := range degrees {
		out = append(out, *toDegreeResponse(&degrees[i]))
	}
	return out, nil
}

func (s *degreeService) Update(ctx context.Context, id string, req *dto.UpdateDegreeRequest) (*dto.DegreeResponse, error) {
	degree, err := s.degrees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDegreeNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != degree.Name {
		if err := s.checkNameFree(ctx, *req.Name, id); err != nil {
			return nil, err
		}
		degree.Name = *req.Name
	}
	if req.ShortName != nil {
		degree.ShortName = *req.ShortName
	}
	if req.Coefficient != nil {
		degree.Coefficient = *req.Coefficient
	}

	if err := s.degrees.Update(ctx, degree); err != nil {
		return nil, err
	}

	s.logger.Info("degree updated", zap.String("degree_id", degree.DegreeID))

	return toDegreeResponse(degree), nil
}

func (s *degreeService) Delete(ctx context.Context, id string) error {
	if _, err := s.degrees.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDegreeNotFound
		}
		return err
	}

	count, err := s.degrees.CountTeachers(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return newInUseError("Không thể xóa bằng cấp vì đang có %d giáo viên sử dụng", count)
	}

	if err := s.degrees.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("degree deleted", zap.String("degree_id", id))
	return nil
}

// checkNameFree rejects a duplicate degree name, case-insensitive.
func (s *degreeService) checkNameFree(ctx context.Context, name, excludeID string) error {
	_, err := s.degrees.FindByNameInsensitive(ctx, name, excludeID)
	if err == nil {
		return ErrDegreeNameTaken
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func toDegreeResponse(degree *model.Degree) *dto.DegreeResponse {
	return &dto.DegreeResponse{
		ID:          degree.DegreeID,
		Name:        degree.Name,
		ShortName:   degree.ShortName,
		Coefficient: degree.Coefficient,
		CreatedAt:   formatTime(degree.CreatedAt),
		UpdatedAt:   formatTime(degree.UpdatedAt),
	}
}
