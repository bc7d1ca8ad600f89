package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/service"
	"github.com/duyvawss25/Do-An-Co-So/pkg/response"
)

// TeacherHandler serves /teachers endpoints.
type TeacherHandler struct {
	svc    service.TeacherService
	logger *zap.Logger
}

// NewTeacherHandler builds the teacher handler.
func NewTeacherHandler(svc service.TeacherService, logger *zap.Logger) *TeacherHandler {
	return &TeacherHandler{svc: svc, logger: logger}
}

// Create handles POST /teachers.
func (h *TeacherHandler) Create(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}
	response.Created(c, resp)
}

// GetByID handles GET /teachers/:id.
func (h *TeacherHandler) GetByID(c *gin.Context) {
	resp, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}
	response.OK(c, resp)
}

// List handles GET /teachers. An optional department_id query narrows
// the listing to one department.
func (h *TeacherHandler) List(c *gin.Context) {
	if departmentID := c.Query("department_id"); departmentID != "" {
		resp, err := h.svc.ListByDepartment(c.Request.Context(), departmentID)
		if err != nil {
			h.handleTeacherError(c, err)
			return
		}
		response.OK(c, resp)
		return
	}

	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}
	response.OK(c, resp)
}

// Update handles PUT /teachers/:id.
func (h *TeacherHandler) Update(c *gin.Context) {
	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}
	response.OK(c, resp)
}

// Delete handles DELETE /teachers/:id.
func (h *TeacherHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleTeacherError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Xóa giáo viên thành công"})
}

func (h *TeacherHandler) handleTeacherError(c *gin.Context, err error) {
	var inUse *service.InUseError
	switch {
	case errors.Is(err, service.ErrTeacherNotFound),
		errors.Is(err, service.ErrDepartmentNotFound),
		errors.Is(err, service.ErrDegreeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrTeacherCodeTaken),
		errors.Is(err, service.ErrTeacherTooYoung),
		errors.Is(err, service.ErrTeacherDOBInvalid),
		errors.Is(err, service.ErrTeacherPhone),
		errors.Is(err, service.ErrTeacherEmail):
		response.BadRequest(c, err.Error())
	case errors.As(err, &inUse):
		response.BadRequest(c, inUse.Message)
	default:
		h.logger.Error("teacher error", zap.Error(err))
		response.InternalError(c)
	}
}
