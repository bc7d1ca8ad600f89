package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/config"
	"github.com/duyvawss25/Do-An-Co-So/internal/api/handler"
	"github.com/duyvawss25/Do-An-Co-So/internal/api/middleware"
	"github.com/duyvawss25/Do-An-Co-So/pkg/jwt"
	"github.com/duyvawss25/Do-An-Co-So/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// New assembles the gin engine: global middleware, the health probe
// and the /api/v1 route tree. Mutating routes require the admin role.
func New(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.BodyLimit(maxBodyBytes))
	engine.Use(middleware.Logger(logger))
	engine.Use(middleware.CORS(&cfg.Server.CORS))
	engine.Use(gin.Recovery())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	auth := api.Group("/auth")
	{
		loginLimit := middleware.RateLimit(rdb, "auth", 10, time.Minute)
		auth.POST("/register", loginLimit, h.Auth.Register)
		auth.POST("/login", loginLimit, h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", middleware.JWTAuth(jwtMgr, rdb), h.Auth.Logout)
	}

	authed := api.Group("")
	authed.Use(middleware.JWTAuth(jwtMgr, rdb))
	admin := middleware.RoleAuth("admin")

	users := authed.Group("/users")
	{
		users.GET("/me", h.User.GetProfile)
		users.PUT("/me", h.User.UpdateProfile)
		users.GET("", admin, h.User.List)
		users.DELETE("/:id", admin, h.User.Delete)
	}

	degrees := authed.Group("/degrees")
	{
		degrees.GET("", h.Degree.List)
		degrees.GET("/:id", h.Degree.GetByID)
		degrees.POST("", admin, h.Degree.Create)
		degrees.PUT("/:id", admin, h.Degree.Update)
		degrees.DELETE("/:id", admin, h.Degree.Delete)
	}

	departments := authed.Group("/departments")
	{
		departments.GET("", h.Department.List)
		departments.GET("/:id", h.Department.GetByID)
		departments.POST("", admin, h.Department.Create)
		departments.PUT("/:id", admin, h.Department.Update)
		departments.DELETE("/:id", admin, h.Department.Delete)
	}

	teachers := authed.Group("/teachers")
	{
		teachers.GET("", h.Teacher.List)
		teachers.GET("/:id", h.Teacher.GetByID)
		teachers.POST("", admin, h.Teacher.Create)
		teachers.PUT("/:id", admin, h.Teacher.Update)
		teachers.DELETE("/:id", admin, h.Teacher.Delete)
	}

	courses := authed.Group("/courses")
	{
		courses.GET("", h.Course.List)
		courses.GET("/:id", h.Course.GetByID)
		courses.POST("", admin, h.Course.Create)
		courses.PUT("/:id", admin, h.Course.Update)
		courses.DELETE("/:id", admin, h.Course.Delete)
	}

	semesters := authed.Group("/semesters")
	{
		semesters.GET("", h.Semester.List)
		semesters.GET("/:id", h.Semester.GetByID)
		semesters.POST("", admin, h.Semester.Create)
		semesters.PUT("/:id", admin, h.Semester.Update)
		semesters.DELETE("/:id", admin, h.Semester.Delete)
	}

	classes := authed.Group("/course-classes")
	{
		classes.GET("", h.CourseClass.List)
		classes.GET("/stats/by-semester", h.CourseClass.StatsBySemester)
		classes.GET("/stats/by-course", h.CourseClass.StatsByCourse)
		classes.GET("/stats/by-year", h.CourseClass.StatsByYear)
		classes.GET("/stats/semester/:semesterId/by-course", h.CourseClass.StatsBySemesterAndCourse)
		classes.GET("/:id", h.CourseClass.GetByID)
		classes.POST("", admin, h.CourseClass.Create)
		classes.PUT("/:id", admin, h.CourseClass.Update)
		classes.DELETE("/:id", admin, h.CourseClass.Delete)
	}

	settings := authed.Group("/settings")
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", admin, h.Settings.Update)
		settings.POST("/update-coefficients", admin, h.Settings.Propagate)
		settings.GET("/payment-rate", h.Settings.GetPaymentRate)
		settings.PUT("/payment-rate", admin, h.Settings.UpdatePaymentRate)
	}

	payments := authed.Group("/payments")
	{
		// The admin UI reads the rate from both trees.
		payments.GET("/settings/payment-rate", h.Settings.GetPaymentRate)
		payments.PUT("/settings/payment-rate", admin, h.Settings.UpdatePaymentRate)
		payments.GET("/calculate/teacher/:teacherId/semester/:semesterId", h.Payment.CalculateTeacher)
		payments.GET("/calculate/semester/:semesterId", h.Payment.CalculateSemester)
		payments.GET("/report/years", h.Payment.ReportYears)
		payments.GET("/report/year/:year", h.Payment.ReportYear)
		payments.GET("/report/department/:departmentId", h.Payment.ReportDepartment)
		payments.GET("/report/department/:departmentId/year/:year", h.Payment.ReportDepartment)
		payments.GET("/report/school", h.Payment.ReportSchool)
		payments.GET("/report/school/year/:year", h.Payment.ReportSchool)
	}

	export := authed.Group("/export")
	{
		export.GET("/payment-report", h.Export.PaymentReport)
	}

	return engine
}
