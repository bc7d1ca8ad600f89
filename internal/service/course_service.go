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
	ErrCourseNotFound  = errors.New("Không tìm thấy học phần")
	ErrCourseCodeTaken = errors.New("Mã học phần đã tồn tại")
	ErrCourseNameTaken = errors.New("Tên học phần đã tồn tại")
)

// CourseService manages courses.
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CourseResponse, error)
	List(ctx context.Context) ([]dto.CourseResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, id string) error
}

type courseService struct {
	courses repository.CourseRepository
	logger  *zap.Logger
}

// NewCourseService builds the course service.
func NewCourseService(courses repository.CourseRepository, logger *zap.Logger) CourseService {
	return &courseService{courses: courses, logger: logger}
}

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if err := s.checkCodeFree(ctx, req.Code, ""); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, req.Name, ""); err != nil {
		return nil, err
	}

	course := &model.Course{
		Code:         req.Code,
		Name:         req.Name,
		Credits:      req.Credits,
		TotalLessons: req.TotalLessons,
		Description:  req.Description,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info("course created", zap.String("course_id", course.CourseID), zap.String("code", course.Code))

	return toCourseResponse(course), nil
}

func (s *courseService) GetByID(ctx context.Context, id string) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return toCourseResponse(course), nil
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, *toCourseResponse(&courses[i]))
	}
	return out, nil
}

func (s *courseService) Update(ctx context.Context, id string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if req.Code != nil && *req.Code != course.Code {
		if err := s.checkCodeFree(ctx, *req.Code, id); err != nil {
			return nil, err
		}
		course.Code = *req.Code
	}
	if req.Name != nil && *req.Name != course.Name {
		if err := s.checkNameFree(ctx, *req.Name, id); err != nil {
			return nil, err
		}
		course.Name = *req.Name
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}
	if req.TotalLessons != nil {
		course.TotalLessons = *req.TotalLessons
	}
	if req.Description != nil {
		course.Description = *req.Description
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info("course updated", zap.String("course_id", course.CourseID))

	return toCourseResponse(course), nil
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	if _, err := s.courses.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	count, err := s.courses.CountClasses(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return newInUseError("Không thể xóa học phần vì đang có %d lớp học phần sử dụng", count)
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("course deleted", zap.String("course_id", id))
	return nil
}

func (s *courseService) checkCodeFree(ctx context.Context, code, excludeID string) error {
	_, err := s.courses.GetByCode(ctx, code, excludeID)
	if err == nil {
		return ErrCourseCodeTaken
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *courseService) checkNameFree(ctx context.Context, name, excludeID string) error {
	_, err := s.courses.FindByNameInsensitive(ctx, name, excludeID)
	if err == nil {
		return ErrCourseNameTaken
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func toCourseResponse(course *model.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		ID:           course.CourseID,
		Code:         course.Code,
		Name:         course.Name,
		Credits:      course.Credits,
		TotalLessons: course.TotalLessons,
		Description:  course.Description,
		CreatedAt:    formatTime(course.CreatedAt),
		UpdatedAt:    formatTime(course.UpdatedAt),
	}
}
