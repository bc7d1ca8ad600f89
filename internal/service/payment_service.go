package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/model"
	"github.com/duyvawss25/Do-An-Co-So/internal/repository"
)

var ErrRateNotConfigured = errors.New("Chưa thiết lập định mức tiền")

// PaymentService computes teaching pay. A class pays
// lessons × base rate × degree coefficient × class coefficient,
// where lessons come from the course and the class coefficient is the
// snapshot stamped on the class row.
type PaymentService interface {
	CalculateTeacherPayment(ctx context.Context, teacherID, semesterID string) (*dto.TeacherPaymentResponse, error)
	CalculateSemesterPayments(ctx context.Context, semesterID string) (*dto.SemesterPaymentsResponse, error)
	ReportYears(ctx context.Context) ([]string, error)
	ReportYear(ctx context.Context, year string) (*dto.YearReportResponse, error)
	ReportDepartment(ctx context.Context, departmentID, year string) (*dto.DepartmentReportResponse, error)
	ReportSchool(ctx context.Context, year string) (*dto.SchoolReportResponse, error)
}

type paymentService struct {
	teachers    repository.TeacherRepository
	semesters   repository.SemesterRepository
	departments repository.DepartmentRepository
	classes     repository.CourseClassRepository
	settings    repository.SettingsRepository
	logger      *zap.Logger
}

// NewPaymentService builds the payment service.
func NewPaymentService(
	teachers repository.TeacherRepository,
	semesters repository.SemesterRepository,
	departments repository.DepartmentRepository,
	classes repository.CourseClassRepository,
	settings repository.SettingsRepository,
	logger *zap.Logger,
) PaymentService {
	return &paymentService{
		teachers:    teachers,
		semesters:   semesters,
		departments: departments,
		classes:     classes,
		settings:    settings,
		logger:      logger,
	}
}

// computeAmount is the payment formula shared by every report.
func computeAmount(lessons int, baseRate, degreeCoefficient, classCoefficient float64) float64 {
	return float64(lessons) * baseRate * degreeCoefficient * classCoefficient
}

// loadRate returns the configured base rate or ErrRateNotConfigured
// when it was never set to a positive value.
func (s *paymentService) loadRate(ctx context.Context) (float64, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRateNotConfigured
		}
		return 0, err
	}
	if settings.BaseRate <= 0 {
		return 0, ErrRateNotConfigured
	}
	return settings.BaseRate, nil
}

func (s *paymentService) CalculateTeacherPayment(ctx context.Context, teacherID, semesterID string) (*dto.TeacherPaymentResponse, error) {
	baseRate, err := s.loadRate(ctx)
	if err != nil {
		return nil, err
	}

	teacher, err := s.teachers.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	semester, err := s.semesters.GetByID(ctx, semesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}

	classes, err := s.classes.ListByTeacherAndSemester(ctx, teacherID, semesterID)
	if err != nil {
		return nil, err
	}

	degreeCoefficient := 1.0
	degreeName := ""
	if teacher.Degree != nil {
		degreeCoefficient = teacher.Degree.Coefficient
		degreeName = teacher.Degree.Name
	}

	resp := &dto.TeacherPaymentResponse{
		TeacherID:    teacher.TeacherID,
		TeacherCode:  teacher.Code,
		TeacherName:  teacher.Name,
		DegreeName:   degreeName,
		SemesterID:   semester.SemesterID,
		SemesterName: semester.Name,
		Year:         semester.Year,
		Classes:      make([]dto.ClassPaymentDetail, 0, len(classes)),
	}

	for i := range classes {
		class := &classes[i]
		// A class whose course was deleted out from under it is left
		// out of the listing entirely.
		if class.Course == nil {
			continue
		}
		lessons := class.Course.TotalLessons
		amount := computeAmount(lessons, baseRate, degreeCoefficient, class.Coefficient)
		resp.Classes = append(resp.Classes, dto.ClassPaymentDetail{
			ClassID:           class.ClassID,
			ClassCode:         class.Code,
			ClassName:         class.Name,
			CourseName:        class.Course.Name,
			Lessons:           lessons,
			ClassCoefficient:  class.Coefficient,
			DegreeCoefficient: degreeCoefficient,
			BaseRate:          baseRate,
			Amount:            amount,
		})
		resp.TotalLessons += lessons
		resp.TotalAmount += amount
	}

	return resp, nil
}

func (s *paymentService) CalculateSemesterPayments(ctx context.Context, semesterID string) (*dto.SemesterPaymentsResponse, error) {
	baseRate, err := s.loadRate(ctx)
	if err != nil {
		return nil, err
	}

	semester, err := s.semesters.GetByID(ctx, semesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}

	classes, err := s.classes.ListForReport(ctx, []string{semesterID})
	if err != nil {
		return nil, err
	}

	// Group by teacher in first-seen order, then sort by total.
	order := make([]string, 0)
	byTeacher := make(map[string]*dto.TeacherPaymentResponse)

	for i := range classes {
		class := &classes[i]
		if class.Teacher == nil || class.Course == nil {
			continue
		}
		teacher := class.Teacher

		entry, ok := byTeacher[teacher.TeacherID]
		if !ok {
			degreeName := ""
			if teacher.Degree != nil {
				degreeName = teacher.Degree.Name
			}
			entry = &dto.TeacherPaymentResponse{
				TeacherID:    teacher.TeacherID,
				TeacherCode:  teacher.Code,
				TeacherName:  teacher.Name,
				DegreeName:   degreeName,
				SemesterID:   semester.SemesterID,
				SemesterName: semester.Name,
				Year:         semester.Year,
				Classes:      []dto.ClassPaymentDetail{},
			}
			byTeacher[teacher.TeacherID] = entry
			order = append(order, teacher.TeacherID)
		}

		lessons := class.Course.TotalLessons
		degreeCoefficient := 1.0
		if teacher.Degree != nil {
			degreeCoefficient = teacher.Degree.Coefficient
		}
		amount := computeAmount(lessons, baseRate, degreeCoefficient, class.Coefficient)
		entry.Classes = append(entry.Classes, dto.ClassPaymentDetail{
			ClassID:           class.ClassID,
			ClassCode:         class.Code,
			ClassName:         class.Name,
			CourseName:        class.Course.Name,
			Lessons:           lessons,
			ClassCoefficient:  class.Coefficient,
			DegreeCoefficient: degreeCoefficient,
			BaseRate:          baseRate,
			Amount:            amount,
		})
		entry.TotalLessons += lessons
		entry.TotalAmount += amount
	}

	resp := &dto.SemesterPaymentsResponse{
		SemesterID:   semester.SemesterID,
		SemesterName: semester.Name,
		Year:         semester.Year,
		Teachers:     make([]dto.TeacherPaymentResponse, 0, len(order)),
	}
	for _, id := range order {
		resp.Teachers = append(resp.Teachers, *byTeacher[id])
		resp.TotalAmount += byTeacher[id].TotalAmount
	}
	sortTeacherPayments(resp.Teachers)

	return resp, nil
}

func (s *paymentService) ReportYears(ctx context.Context) ([]string, error) {
	return s.semesters.ListYears(ctx)
}

func (s *paymentService) ReportYear(ctx context.Context, year string) (*dto.YearReportResponse, error) {
	rows, baseRate, err := s.buildYearRows(ctx, year, "")
	if err != nil {
		return nil, err
	}

	resp := &dto.YearReportResponse{
		Year:         year,
		BaseRate:     baseRate,
		TeacherCount: len(rows),
		Teachers:     rows,
	}
	for i := range rows {
		resp.TotalLessons += rows[i].TotalLessons
		resp.TotalAmount += rows[i].TotalAmount
	}
	return resp, nil
}

func (s *paymentService) ReportDepartment(ctx context.Context, departmentID, year string) (*dto.DepartmentReportResponse, error) {
	department, err := s.departments.GetByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}

	rows, baseRate, err := s.buildYearRows(ctx, year, departmentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DepartmentReportResponse{
		Year:           year,
		BaseRate:       baseRate,
		DepartmentID:   department.DepartmentID,
		DepartmentName: department.Name,
		TeacherCount:   len(rows),
		Teachers:       rows,
	}
	for i := range rows {
		resp.TotalLessons += rows[i].TotalLessons
		resp.TotalAmount += rows[i].TotalAmount
	}
	return resp, nil
}

func (s *paymentService) ReportSchool(ctx context.Context, year string) (*dto.SchoolReportResponse, error) {
	rows, baseRate, err := s.buildYearRows(ctx, year, "")
	if err != nil {
		return nil, err
	}

	// Group the teacher rows by department in first-seen order.
	order := make([]string, 0)
	byDepartment := make(map[string]*dto.DepartmentSummary)
	for i := range rows {
		row := rows[i]
		key := row.DepartmentID
		summary, ok := byDepartment[key]
		if !ok {
			summary = &dto.DepartmentSummary{
				DepartmentID:   row.DepartmentID,
				DepartmentName: row.DepartmentName,
				Teachers:       []dto.YearTeacherReport{},
			}
			byDepartment[key] = summary
			order = append(order, key)
		}
		summary.Teachers = append(summary.Teachers, row)
		summary.TeacherCount++
		summary.TotalLessons += row.TotalLessons
		summary.TotalAmount += row.TotalAmount
	}

	resp := &dto.SchoolReportResponse{
		Year:         year,
		BaseRate:     baseRate,
		TeacherCount: len(rows),
		Departments:  make([]dto.DepartmentSummary, 0, len(order)),
	}
	for _, key := range order {
		resp.Departments = append(resp.Departments, *byDepartment[key])
		resp.TotalLessons += byDepartment[key].TotalLessons
		resp.TotalAmount += byDepartment[key].TotalAmount
	}

	sort.SliceStable(resp.Departments, func(i, j int) bool {
		if resp.Departments[i].TotalAmount != resp.Departments[j].TotalAmount {
			return resp.Departments[i].TotalAmount > resp.Departments[j].TotalAmount
		}
		return resp.Departments[i].DepartmentName < resp.Departments[j].DepartmentName
	})

	return resp, nil
}

// buildYearRows aggregates classes into one row per teacher, with
// per-semester subtotals keyed by semester id. An empty year covers
// every semester; departmentID narrows the rows to one department
// when non-empty. A year with no semesters yields an empty row set,
// not an error.
func (s *paymentService) buildYearRows(ctx context.Context, year, departmentID string) ([]dto.YearTeacherReport, float64, error) {
	baseRate, err := s.loadRate(ctx)
	if err != nil {
		return nil, 0, err
	}

	var semesters []model.Semester
	if year == "" {
		semesters, err = s.semesters.List(ctx)
	} else {
		semesters, err = s.semesters.ListByYear(ctx, year)
	}
	if err != nil {
		return nil, 0, err
	}
	if len(semesters) == 0 {
		return []dto.YearTeacherReport{}, baseRate, nil
	}

	semesterIDs := make([]string, 0, len(semesters))
	byID := make(map[string]*model.Semester, len(semesters))
	for i := range semesters {
		semesterIDs = append(semesterIDs, semesters[i].SemesterID)
		byID[semesters[i].SemesterID] = &semesters[i]
	}

	classes, err := s.classes.ListForReport(ctx, semesterIDs)
	if err != nil {
		return nil, 0, err
	}

	order := make([]string, 0)
	byTeacher := make(map[string]*dto.YearTeacherReport)

	for i := range classes {
		class := &classes[i]
		if class.Teacher == nil || class.Course == nil {
			continue
		}
		teacher := class.Teacher
		if departmentID != "" && teacher.DepartmentID != departmentID {
			continue
		}

		row, ok := byTeacher[teacher.TeacherID]
		if !ok {
			departmentName := ""
			if teacher.Department != nil {
				departmentName = teacher.Department.Name
			}
			degreeName := ""
			if teacher.Degree != nil {
				degreeName = teacher.Degree.Name
			}
			row = &dto.YearTeacherReport{
				TeacherID:      teacher.TeacherID,
				TeacherCode:    teacher.Code,
				TeacherName:    teacher.Name,
				DepartmentID:   teacher.DepartmentID,
				DepartmentName: departmentName,
				DegreeName:     degreeName,
				Semesters:      make(map[string]*dto.SemesterSubtotal),
			}
			byTeacher[teacher.TeacherID] = row
			order = append(order, teacher.TeacherID)
		}

		lessons := class.Course.TotalLessons
		degreeCoefficient := 1.0
		if teacher.Degree != nil {
			degreeCoefficient = teacher.Degree.Coefficient
		}
		amount := computeAmount(lessons, baseRate, degreeCoefficient, class.Coefficient)

		// Keyed by id so same-named semesters of different years stay
		// separate in a no-year report.
		subtotal, ok := row.Semesters[class.SemesterID]
		if !ok {
			subtotal = &dto.SemesterSubtotal{}
			if semester := byID[class.SemesterID]; semester != nil {
				subtotal.SemesterName = semester.Name
				subtotal.Year = semester.Year
			}
			row.Semesters[class.SemesterID] = subtotal
		}
		subtotal.Lessons += lessons
		subtotal.Amount += amount
		row.TotalLessons += lessons
		row.TotalAmount += amount
	}

	rows := make([]dto.YearTeacherReport, 0, len(order))
	for _, id := range order {
		rows = append(rows, *byTeacher[id])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalAmount != rows[j].TotalAmount {
			return rows[i].TotalAmount > rows[j].TotalAmount
		}
		return rows[i].TeacherCode < rows[j].TeacherCode
	})
	return rows, baseRate, nil
}

// sortTeacherPayments orders by total amount descending, breaking
// ties on teacher code ascending.
func sortTeacherPayments(teachers []dto.TeacherPaymentResponse) {
	sort.SliceStable(teachers, func(i, j int) bool {
		if teachers[i].TotalAmount != teachers[j].TotalAmount {
			return teachers[i].TotalAmount > teachers[j].TotalAmount
		}
		return teachers[i].TeacherCode < teachers[j].TeacherCode
	})
}
