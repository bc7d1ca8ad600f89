package service

import (
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/config"
	"github.com/duyvawss25/Do-An-Co-So/internal/repository"
	"github.com/duyvawss25/Do-An-Co-So/pkg/jwt"
	"github.com/duyvawss25/Do-An-Co-So/pkg/redis"
)

// Service bundles every domain service behind one handle so the
// handler layer takes a single dependency.
type Service struct {
	Auth        AuthService
	User        UserService
	Degree      DegreeService
	Department  DepartmentService
	Teacher     TeacherService
	Course      CourseService
	Semester    SemesterService
	CourseClass CourseClassService
	Settings    SettingsService
	Payment     PaymentService
	Export      ExportService
}

// NewService wires the domain services. rdb may be nil; token
// blacklisting is then skipped.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	settingsSvc := NewSettingsService(repo.Settings, repo.CourseClass, logger)
	paymentSvc := NewPaymentService(repo.Teacher, repo.Semester, repo.Department, repo.CourseClass, repo.Settings, logger)
	return &Service{
		Auth:        NewAuthService(repo.User, jwtMgr, rdb, logger),
		User:        NewUserService(repo.User, logger),
		Degree:      NewDegreeService(repo.Degree, logger),
		Department:  NewDepartmentService(repo.Department, logger),
		Teacher:     NewTeacherService(repo.Teacher, repo.Department, repo.Degree, logger),
		Course:      NewCourseService(repo.Course, logger),
		Semester:    NewSemesterService(repo.Semester, logger),
		CourseClass: NewCourseClassService(repo.CourseClass, repo.Course, repo.Semester, repo.Teacher, repo.Settings, logger),
		Settings:    settingsSvc,
		Payment:     paymentSvc,
		Export:      NewExportService(paymentSvc, logger),
	}
}
