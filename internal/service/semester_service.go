package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/model"
	"github.com/duyvawss25/Do-An-Co-So/internal/repository"
)

var (
	ErrSemesterNotFound  = errors.New("Không tìm thấy kì học")
	ErrSemesterName      = errors.New("Tên kì học phải là Học kì 1, Học kì 2 hoặc Học kì 3")
	ErrSemesterYear      = errors.New("Năm học phải có dạng YYYY-YYYY với năm sau liền kề năm trước")
	ErrSemesterDates     = errors.New("Ngày bắt đầu phải trước ngày kết thúc")
	ErrSemesterDateForm  = errors.New("Ngày không hợp lệ, định dạng phải là YYYY-MM-DD")
	ErrSemesterDuplicate = errors.New("Kì học đã tồn tại trong năm học này")
)

var yearPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// SemesterService manages semesters.
type SemesterService interface {
	Create(ctx context.Context, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SemesterResponse, error)
	List(ctx context.Context) ([]dto.SemesterResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error)
	Delete(ctx context.Context, id string) error
}

type semesterService struct {
	semesters repository.SemesterRepository
	logger    *zap.Logger
}

// NewSemesterService builds the semester service.
func NewSemesterService(semesters repository.SemesterRepository, logger *zap.Logger) SemesterService {
	return &semesterService{semesters: semesters, logger: logger}
}

func (s *semesterService) Create(ctx context.Context, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error) {
	if !validSemesterName(req.Name) {
		return nil, ErrSemesterName
	}
	if !validSemesterYear(req.Year) {
		return nil, ErrSemesterYear
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, ErrSemesterDateForm
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, ErrSemesterDateForm
	}
	if !start.Before(end) {
		return nil, ErrSemesterDates
	}
	if err := s.checkUnique(ctx, req.Name, req.Year, ""); err != nil {
		return nil, err
	}

	semester := &model.Semester{
		Name:      req.Name,
		Year:      req.Year,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.semesters.Create(ctx, semester); err != nil {
		return nil, err
	}

	s.logger.Info("semester created",
		zap.String("semester_id", semester.SemesterID),
		zap.String("name", semester.Name),
		zap.String("year", semester.Year))

	return toSemesterResponse(semester), nil
}

func (s *semesterService) GetByID(ctx context.Context, id string) (*dto.SemesterResponse, error) {
	semester, err := s.semesters.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}
	return toSemesterResponse(semester), nil
}

func (s *semesterService) List(ctx context.Context) ([]dto.SemesterResponse, error) {
	semesters, err := s.semesters.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SemesterResponse, 0, len(semesters))
	for i := range semesters {
		out = append(out, *toSemesterResponse(&semesters[i]))
	}
	return out, nil
}

func (s *semesterService) Update(ctx context.Context, id string, req *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error) {
	semester, err := s.semesters.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}

	name := semester.Name
	year := semester.Year
	if req.Name != nil {
		if !validSemesterName(*req.Name) {
			return nil, ErrSemesterName
		}
		name = *req.Name
	}
	if req.Year != nil {
		if !validSemesterYear(*req.Year) {
			return nil, ErrSemesterYear
		}
		year = *req.Year
	}
	if name != semester.Name || year != semester.Year {
		if err := s.checkUnique(ctx, name, year, id); err != nil {
			return nil, err
		}
	}

	start := semester.StartDate
	end := semester.EndDate
	if req.StartDate != nil {
		start, err = parseDate(*req.StartDate)
		if err != nil {
			return nil, ErrSemesterDateForm
		}
	}
	if req.EndDate != nil {
		end, err = parseDate(*req.EndDate)
		if err != nil {
			return nil, ErrSemesterDateForm
		}
	}
	if !start.Before(end) {
		return nil, ErrSemesterDates
	}

	semester.Name = name
	semester.Year = year
	semester.StartDate = start
	semester.EndDate = end

	if err := s.semesters.Update(ctx, semester); err != nil {
		return nil, err
	}

	s.logger.Info("semester updated", zap.String("semester_id", semester.SemesterID))

	return toSemesterResponse(semester), nil
}

func (s *semesterService) Delete(ctx context.Context, id string) error {
	if _, err := s.semesters.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSemesterNotFound
		}
		return err
	}

	count, err := s.semesters.CountClasses(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return newInUseError("Không thể xóa kì học vì đang có %d lớp học phần thuộc kì này", count)
	}

	if err := s.semesters.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("semester deleted", zap.String("semester_id", id))
	return nil
}

func (s *semesterService) checkUnique(ctx context.Context, name, year, excludeID string) error {
	_, err := s.semesters.GetByNameAndYear(ctx, name, year, excludeID)
	if err == nil {
		return ErrSemesterDuplicate
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func validSemesterName(name string) bool {
	for _, n := range model.SemesterNames {
		if n == name {
			return true
		}
	}
	return false
}

// validSemesterYear accepts "YYYY-YYYY" where the second year is the
// first plus one, e.g. "2023-2024".
func validSemesterYear(year string) bool {
	if !yearPattern.MatchString(year) {
		return false
	}
	parts := strings.SplitN(year, "-", 2)
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	return end == start+1
}

func toSemesterResponse(semester *model.Semester) *dto.SemesterResponse {
	return &dto.SemesterResponse{
		ID:        semester.SemesterID,
		Name:      semester.Name,
		Year:      semester.Year,
		StartDate: formatDate(semester.StartDate),
		EndDate:   formatDate(semester.EndDate),
		CreatedAt: formatTime(semester.CreatedAt),
		UpdatedAt: formatTime(semester.UpdatedAt),
	}
}
