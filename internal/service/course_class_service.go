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
	ErrClassNotFound  = errors.New("Không tìm thấy lớp học phần")
	ErrClassCodeTaken = errors.New("Mã lớp học phần đã tồn tại")
	ErrClassNameTaken = errors.New("Tên lớp học phần đã tồn tại")
)

// CourseClassService manages course classes and serves the class
// statistics endpoints.
type CourseClassService interface {
	Create(ctx context.Context, req *dto.CreateCourseClassRequest) (*dto.CourseClassResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CourseClassResponse, error)
	List(ctx context.Context) ([]dto.CourseClassResponse, error)
	ListBySemester(ctx context.Context, semesterID string) ([]dto.CourseClassResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCourseClassRequest) (*dto.CourseClassResponse, error)
	Delete(ctx context.Context, id string) error
	StatsBySemester(ctx context.Context) ([]dto.SemesterClassStats, error)
	StatsByCourse(ctx context.Context) ([]dto.CourseClassStats, error)
	StatsBySemesterAndCourse(ctx context.Context, semesterID string) ([]dto.SemesterCourseStats, error)
	StatsByYear(ctx context.Context) ([]dto.YearClassStats, error)
}

type courseClassService struct {
	classes   repository.CourseClassRepository
	courses   repository.CourseRepository
	semesters repository.SemesterRepository
	teachers  repository.TeacherRepository
	settings  repository.SettingsRepository
	logger    *zap.Logger
}

// NewCourseClassService builds the class service.
func NewCourseClassService(
	classes repository.CourseClassRepository,
	courses repository.CourseRepository,
	semesters repository.SemesterRepository,
	teachers repository.TeacherRepository,
	settings repository.SettingsRepository,
	logger *zap.Logger,
) CourseClassService {
	return &courseClassService{
		classes:   classes,
		courses:   courses,
		semesters: semesters,
		teachers:  teachers,
		settings:  settings,
		logger:    logger,
	}
}

func (s *courseClassService) Create(ctx context.Context, req *dto.CreateCourseClassRequest) (*dto.CourseClassResponse, error) {
	if err := s.checkCodeFree(ctx, req.Code, ""); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, req.Name, ""); err != nil {
		return nil, err
	}
	if _, err := s.courses.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if _, err := s.semesters.GetByID(ctx, req.SemesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}
	if _, err := s.teachers.GetByID(ctx, req.TeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	classType := req.Type
	if classType == "" {
		classType = model.ClassTypeNormal
	}

	class := &model.CourseClass{
		CourseID:     req.CourseID,
		SemesterID:   req.SemesterID,
		TeacherID:    req.TeacherID,
		Type:         classType,
		Coefficient:  s.coefficientFor(ctx, classType),
		Code:         req.Code,
		Name:         req.Name,
		StudentCount: req.StudentCount,
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, err
	}

	s.logger.Info("course class created",
		zap.String("class_id", class.ClassID),
		zap.String("code", class.Code),
		zap.String("type", class.Type))

	return s.GetByID(ctx, class.ClassID)
}

func (s *courseClassService) GetByID(ctx context.Context, id string) (*dto.CourseClassResponse, error) {
	class, err := s.classes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return toCourseClassResponse(class), nil
}

func (s *courseClassService) List(ctx context.Context) ([]dto.CourseClassResponse, error) {
	classes, err := s.classes.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCourseClassResponses(classes), nil
}

func (s *courseClassService) ListBySemester(ctx context.Context, semesterID string) ([]dto.CourseClassResponse, error) {
	if _, err := s.semesters.GetByID(ctx, semesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}
	classes, err := s.classes.ListBySemester(ctx, semesterID)
	if err != nil {
		return nil, err
	}
	return toCourseClassResponses(classes), nil
}

func (s *courseClassService) Update(ctx context.Context, id string, req *dto.UpdateCourseClassRequest) (*dto.CourseClassResponse, error) {
	class, err := s.classes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	if req.Code != nil && *req.Code != class.Code {
		if err := s.checkCodeFree(ctx, *req.Code, id); err != nil {
			return nil, err
		}
		class.Code = *req.Code
	}
	if req.Name != nil && *req.Name != class.Name {
		if err := s.checkNameFree(ctx, *req.Name, id); err != nil {
			return nil, err
		}
		class.Name = *req.Name
	}
	if req.CourseID != nil {
		if _, err := s.courses.GetByID(ctx, *req.CourseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCourseNotFound
			}
			return nil, err
		}
		class.CourseID = *req.CourseID
	}
	if req.SemesterID != nil {
		if _, err := s.semesters.GetByID(ctx, *req.SemesterID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSemesterNotFound
			}
			return nil, err
		}
		class.SemesterID = *req.SemesterID
	}
	if req.TeacherID != nil {
		if _, err := s.teachers.GetByID(ctx, *req.TeacherID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTeacherNotFound
			}
			return nil, err
		}
		class.TeacherID = *req.TeacherID
	}
	if req.Type != nil {
		// Re-stamp whenever the type is present, so submitting the same
		// type refreshes a stale coefficient.
		class.Type = *req.Type
		class.Coefficient = s.coefficientFor(ctx, class.Type)
	}
	if req.StudentCount != nil {
		class.StudentCount = *req.StudentCount
	}

	class.Course = nil
	class.Semester = nil
	class.Teacher = nil

	if err := s.classes.Update(ctx, class); err != nil {
		return nil, err
	}

	s.logger.Info("course class updated", zap.String("class_id", class.ClassID))

	return s.GetByID(ctx, class.ClassID)
}

func (s *courseClassService) Delete(ctx context.Context, id string) error {
	if _, err := s.classes.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		return err
	}

	if err := s.classes.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("course class deleted", zap.String("class_id", id))
	return nil
}

func (s *courseClassService) StatsBySemester(ctx context.Context) ([]dto.SemesterClassStats, error) {
	rows, err := s.classes.StatsBySemester(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SemesterClassStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.SemesterClassStats{
			SemesterID:   row.SemesterID,
			SemesterName: row.SemesterName,
			Year:         row.Year,
			ClassCount:   row.ClassCount,
			StudentCount: row.StudentCount,
		})
	}
	return out, nil
}

func (s *courseClassService) StatsByCourse(ctx context.Context) ([]dto.CourseClassStats, error) {
	rows, err := s.classes.StatsByCourse(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CourseClassStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.CourseClassStats{
			CourseID:     row.CourseID,
			CourseCode:   row.CourseCode,
			CourseName:   row.CourseName,
			ClassCount:   row.ClassCount,
			StudentCount: row.StudentCount,
		})
	}
	return out, nil
}

func (s *courseClassService) StatsBySemesterAndCourse(ctx context.Context, semesterID string) ([]dto.SemesterCourseStats, error) {
	if _, err := s.semesters.GetByID(ctx, semesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}
	rows, err := s.classes.StatsBySemesterAndCourse(ctx, semesterID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SemesterCourseStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.SemesterCourseStats{
			CourseID:     row.CourseID,
			CourseCode:   row.CourseCode,
			CourseName:   row.CourseName,
			ClassCount:   row.ClassCount,
			StudentCount: row.StudentCount,
		})
	}
	return out, nil
}

func (s *courseClassService) StatsByYear(ctx context.Context) ([]dto.YearClassStats, error) {
	rows, err := s.classes.StatsByYear(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.YearClassStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.YearClassStats{
			Year:         row.Year,
			ClassCount:   row.ClassCount,
			StudentCount: row.StudentCount,
		})
	}
	return out, nil
}

// coefficientFor stamps the settings coefficient for a class type,
// falling back to the hard-coded table when no settings row exists.
func (s *courseClassService) coefficientFor(ctx context.Context, classType string) float64 {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("settings load failed, using fallback coefficient", zap.Error(err))
		}
		return model.FallbackCoefficient(classType)
	}
	return settings.CoefficientFor(classType)
}

func (s *courseClassService) checkCodeFree(ctx context.Context, code, excludeID string) error {
	_, err := s.classes.GetByCode(ctx, code, excludeID)
	if err == nil {
		return ErrClassCodeTaken
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *courseClassService) checkNameFree(ctx context.Context, name, excludeID string) error {
	_, err := s.classes.FindByNameInsensitive(ctx, name, excludeID)
	if err == nil {
		return ErrClassNameTaken
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func toCourseClassResponse(class *model.CourseClass) *dto.CourseClassResponse {
	resp := &dto.CourseClassResponse{
		ID:           class.ClassID,
		Code:         class.Code,
		Name:         class.Name,
		Type:         class.Type,
		Coefficient:  class.Coefficient,
		StudentCount: class.StudentCount,
		CreatedAt:    formatTime(class.CreatedAt),
		UpdatedAt:    formatTime(class.UpdatedAt),
	}
	if class.Course != nil {
		resp.Course = &dto.CourseRef{
			ID:           class.Course.CourseID,
			Code:         class.Course.Code,
			Name:         class.Course.Name,
			Credits:      class.Course.Credits,
			TotalLessons: class.Course.TotalLessons,
		}
	}
	if class.Semester != nil {
		resp.Semester = &dto.SemesterRef{
			ID:   class.Semester.SemesterID,
			Name: class.Semester.Name,
			Year: class.Semester.Year,
		}
	}
	if class.Teacher != nil {
		resp.Teacher = &dto.TeacherRef{
			ID:   class.Teacher.TeacherID,
			Code: class.Teacher.Code,
			Name: class.Teacher.Name,
		}
	}
	return resp
}

func toCourseClassResponses(classes []model.CourseClass) []dto.CourseClassResponse {
	out := make([]dto.CourseClassResponse, 0, len(classes))
	for i := range classes {
		out = append(out, *toCourseClassResponse(&classes[i]))
	}
	return out
}
