package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/service"
	"github.com/duyvawss25/Do-An-Co-So/pkg/response"
)

// CourseHandler serves /courses endpoints.
type CourseHandler struct {
	svc    service.CourseService
	logger *zap.Logger
}

// NewCourseHandler builds the course handler.
func NewCourseHandler(svc service.CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{svc: svc, logger: logger}
}

// Create handles POST /courses.
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.Created(c, resp)
}

// GetByID handles GET /courses/:id.
func (h *CourseHandler) GetByID(c *gin.Context) {
	resp, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, resp)
}

// List handles GET /courses.
func (h *CourseHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, resp)
}

// Update handles PUT /courses/:id.
func (h *CourseHandler) Update(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, resp)
}

// Delete handles DELETE /courses/:id.
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Xóa học phần thành công"})
}

func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	var inUse *service.InUseError
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCourseCodeTaken),
		errors.Is(err, service.ErrCourseNameTaken):
		response.BadRequest(c, err.Error())
	case errors.As(err, &inUse):
		response.BadRequest(c, inUse.Message)
	default:
		h.logger.Error("course error", zap.Error(err))
		response.InternalError(c)
	}
}
