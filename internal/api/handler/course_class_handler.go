package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/service"
	"github.com/duyvawss25/Do-An-Co-So/pkg/response"
)

// CourseClassHandler serves /course-classes endpoints.
type CourseClassHandler struct {
	svc    service.CourseClassService
	logger *zap.Logger
}

// NewCourseClassHandler builds the class handler.
func NewCourseClassHandler(svc service.CourseClassService, logger *zap.Logger) *CourseClassHandler {
	return &CourseClassHandler{svc: svc, logger: logger}
}

// Create handles POST /course-classes.
func (h *CourseClassHandler) Create(c *gin.Context) {
	var req dto.CreateCourseClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleClassError(c, err)
		return
	}
	response.Created(c, resp)
}

// GetByID handles GET /course-classes/:id.
func (h *CourseClassHandler) GetByID(c *gin.Context) {
	resp, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleClassError(c, err)
		return
	}
	response.OK(c, resp)
}

// List handles GET /course-classes. An optional semester_id query
// narrows the listing to one semester.
func (h *CourseClassHandler) List(c *gin.Context) {
	if semesterID := c.Query("semester_id"); semesterID != "" {
		resp, err := h.svc.ListBySemester(c.Request.Context(), semesterID)
		if err != nil {
			h.handleClassError(c, err)
			return
		}
		response.OK(c, resp)
		return
	}

	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.handleClassError(c, err)
		return
	}
	response.OK(c, resp)
}

// Update handles PUT /course-classes/:id.
func (h *CourseClassHandler) Update(c *gin.Context) {
	var req dto.UpdateCourseClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleClassError(c, err)
		return
	}
	response.OK(c, resp)
}

// Delete handles DELETE /course-classes/:id.
func (h *CourseClassHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleClassError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Xóa lớp học phần thành công"})
}

// StatsBySemester handles GET /course-classes/stats/by-semester.
func (h *CourseClassHandler) StatsBySemester(c *gin.Context) {
	resp, err := h.svc.StatsBySemester(c.Request.Context())
	if err != nil {
		h.handleClassError(c, err)
		return
	}
	response.OK(c, resp)
}

// StatsByCourse handles GET /course-classes/stats/by-course.
func (h *CourseClassHandler) StatsByCourse(c *gin.Context) {
	resp, err := h.svc.StatsByCourse(c.Request.Context())
	if err != nil {
		h.handleClassError(c, err)
		return
	}
	response.OK(c, resp)
}

// StatsBySemesterAndCourse handles
// GET /course-classes/stats/semester/:semesterId/by-course.
func (h *CourseClassHandler) StatsBySemesterAndCourse(c *gin.Context) {
	resp, err := h.svc.StatsBySemesterAndCourse(c.Request.Context(), c.Param("semesterId"))
	if err != nil {
		h.handleClassError(c, err)
		return
	}
	response.OK(c, resp)
}

// StatsByYear handles GET /course-classes/stats/by-year.
func (h *CourseClassHandler) StatsByYear(c *gin.Context) {
	resp, err := h.svc.StatsByYear(c.Request.Context())
	if err != nil {
		h.handleClassError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *CourseClassHandler) handleClassError(c *gin.Context, err error) {
	var inUse *service.InUseError
	switch {
	case errors.Is(err, service.ErrClassNotFound),
		errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrSemesterNotFound),
		errors.Is(err, service.ErrTeacherNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrClassCodeTaken),
		errors.Is(err, service.ErrClassNameTaken):
		response.BadRequest(c, err.Error())
	case errors.As(err, &inUse):
		response.BadRequest(c, inUse.Message)
	default:
		h.logger.Error("course class error", zap.Error(err))
		response.InternalError(c)
	}
}
