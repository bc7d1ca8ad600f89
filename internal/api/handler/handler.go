package handler

import (
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/service"
)

// msgInvalidBody is returned whenever request binding fails.
const msgInvalidBody = "Dữ liệu không hợp lệ. Vui lòng kiểm tra lại."

// Handler bundles every endpoint handler behind one handle for the
// router.
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Degree      *DegreeHandler
	Department  *DepartmentHandler
	Teacher     *TeacherHandler
	Course      *CourseHandler
	Semester    *SemesterHandler
	CourseClass *CourseClassHandler
	Settings    *SettingsHandler
	Payment     *PaymentHandler
	Export      *ExportHandler
}

// NewHandler wires every handler to its service.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth, logger),
		User:        NewUserHandler(svc.User, logger),
		Degree:      NewDegreeHandler(svc.Degree, logger),
		Department:  NewDepartmentHandler(svc.Department, logger),
		Teacher:     NewTeacherHandler(svc.Teacher, logger),
		Course:      NewCourseHandler(svc.Course, logger),
		Semester:    NewSemesterHandler(svc.Semester, logger),
		CourseClass: NewCourseClassHandler(svc.CourseClass, logger),
		Settings:    NewSettingsHandler(svc.Settings, logger),
		Payment:     NewPaymentHandler(svc.Payment, logger),
		Export:      NewExportHandler(svc.Export, logger),
	}
}
