package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/model"
	"github.com/duyvawss25/Do-An-Co-So/internal/repository"
)

var (
	ErrTeacherNotFound   = errors.New("Không tìm thấy giáo viên")
	ErrTeacherCodeTaken  = errors.New("Mã giáo viên đã tồn tại")
	ErrTeacherTooYoung   = errors.New("Giáo viên phải đủ 22 tuổi")
	ErrTeacherDOBInvalid = errors.New("Ngày sinh không hợp lệ, định dạng phải là YYYY-MM-DD")
	ErrTeacherPhone      = errors.New("Số điện thoại phải gồm đúng 10 chữ số")
	ErrTeacherEmail      = errors.New("Email không hợp lệ")
)

// MinTeacherAge is checked on calendar years only, ignoring the exact
// birthday within the year.
const MinTeacherAge = 22

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// TeacherService manages teachers.
type TeacherService interface {
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TeacherResponse, error)
	List(ctx context.Context) ([]dto.TeacherResponse, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]dto.TeacherResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error)
	Delete(ctx context.Context, id string) error
}

type teacherService struct {
	teachers    repository.TeacherRepository
	departments repository.DepartmentRepository
	degrees     repository.DegreeRepository
	logger      *zap.Logger
}

// NewTeacherService builds the teacher service.
func NewTeacherService(
	teachers repository.TeacherRepository,
	departments repository.DepartmentRepository,
	degrees repository.DegreeRepository,
	logger *zap.Logger,
) TeacherService {
	return &teacherService{teachers: teachers, departments: departments, degrees: degrees, logger: logger}
}

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	dob, err := parseDate(req.DOB)
	if err != nil {
		return nil, ErrTeacherDOBInvalid
	}
	if err := validateTeacherFields(dob, req.Phone, req.Email); err != nil {
		return nil, err
	}
	if err := s.checkCodeFree(ctx, req.Code, ""); err != nil {
		return nil, err
	}
	if _, err := s.departments.GetByID(ctx, req.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	if _, err := s.degrees.GetByID(ctx, req.DegreeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDegreeNotFound
		}
		return nil, err
	}

	teacher := &model.Teacher{
		Code:         req.Code,
		Name:         req.Name,
		DOB:          dob,
		Phone:        req.Phone,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		DegreeID:     req.DegreeID,
	}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, err
	}

	s.logger.Info("teacher created", zap.String("teacher_id", teacher.TeacherID), zap.String("code", teacher.Code))

	// Reload with references populated.
	return s.GetByID(ctx, teacher.TeacherID)
}

func (s *teacherService) GetByID(ctx context.Context, id string) (*dto.TeacherResponse, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	return toTeacherResponse(teacher), nil
}

func (s *teacherService) List(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, err
	}
	return toTeacherResponses(teachers), nil
}

func (s *teacherService) ListByDepartment(ctx context.Context, departmentID string) ([]dto.TeacherResponse, error) {
	if _, err := s.departments.GetByID(ctx, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	teachers, err := s.teachers.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	return toTeacherResponses(teachers), nil
}

func (s *teacherService) Update(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	if req.Code != nil && *req.Code != teacher.Code {
		if err := s.checkCodeFree(ctx, *req.Code, id); err != nil {
			return nil, err
		}
		teacher.Code = *req.Code
	}
	if req.Name != nil {
		teacher.Name = *req.Name
	}
	dob := teacher.DOB
	if req.DOB != nil {
		dob, err = parseDate(*req.DOB)
		if err != nil {
			return nil, ErrTeacherDOBInvalid
		}
	}
	phone := teacher.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	email := teacher.Email
	if req.Email != nil {
		email = *req.Email
	}
	if err := validateTeacherFields(dob, phone, email); err != nil {
		return nil, err
	}
	teacher.DOB = dob
	teacher.Phone = phone
	teacher.Email = email

	if req.DepartmentID != nil {
		if _, err := s.departments.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDepartmentNotFound
			}
			return nil, err
		}
		teacher.DepartmentID = *req.DepartmentID
	}
	if req.DegreeID != nil {
		if _, err := s.degrees.GetByID(ctx, *req.DegreeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDegreeNotFound
			}
			return nil, err
		}
		teacher.DegreeID = *req.DegreeID
	}

	// Drop stale preloaded references before saving.
	teacher.Department = nil
	teacher.Degree = nil

	if err := s.teachers.Update(ctx, teacher); err != nil {
		return nil, err
	}

	s.logger.Info("teacher updated", zap.String("teacher_id", teacher.TeacherID))

	return s.GetByID(ctx, teacher.TeacherID)
}

func (s *teacherService) Delete(ctx context.Context, id string) error {
	if _, err := s.teachers.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		return err
	}

	count, err := s.teachers.CountClasses(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return newInUseError("Không thể xóa giáo viên vì đang được phân công %d lớp học phần", count)
	}

	if err := s.teachers.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("teacher deleted", zap.String("teacher_id", id))
	return nil
}

func (s *teacherService) checkCodeFree(ctx context.Context, code, excludeID string) error {
	_, err := s.teachers.GetByCode(ctx, code, excludeID)
	if err == nil {
		return ErrTeacherCodeTaken
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func validateTeacherFields(dob time.Time, phone, email string) error {
	if time.Now().Year()-dob.Year() < MinTeacherAge {
		return ErrTeacherTooYoung
	}
	if phone != "" && !phonePattern.MatchString(phone) {
		return ErrTeacherPhone
	}
	if email != "" && !emailPattern.MatchString(email) {
		return ErrTeacherEmail
	}
	return nil
}

func toTeacherResponse(teacher *model.Teacher) *dto.TeacherResponse {
	resp := &dto.TeacherResponse{
		ID:        teacher.TeacherID,
		Code:      teacher.Code,
		Name:      teacher.Name,
		DOB:       formatDate(teacher.DOB),
		Phone:     teacher.Phone,
		Email:     teacher.Email,
		CreatedAt: formatTime(teacher.CreatedAt),
		UpdatedAt: formatTime(teacher.UpdatedAt),
	}
	if teacher.Department != nil {
		resp.Department = &dto.DepartmentRef{
			ID:        teacher.Department.DepartmentID,
			Name:      teacher.Department.Name,
			ShortName: teacher.Department.ShortName,
		}
	}
	if teacher.Degree != nil {
		resp.Degree = &dto.DegreeRef{
			ID:          teacher.Degree.DegreeID,
			Name:        teacher.Degree.Name,
			ShortName:   teacher.Degree.ShortName,
			Coefficient: teacher.Degree.Coefficient,
		}
	}
	return resp
}

func toTeacherResponses(teachers []model.Teacher) []dto.TeacherResponse {
	out := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		out = append(out, *toTeacherResponse(&teachers[i]))
	}
	return out
}
