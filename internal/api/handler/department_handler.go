package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/service"
	"github.com/duyvawss25/Do-An-Co-So/pkg/response"
)

// DepartmentHandler serves /departments endpoints.
type DepartmentHandler struct {
	svc    service.DepartmentService
	logger *zap.Logger
}

// NewDepartmentHandler builds the department handler.
func NewDepartmentHandler(svc service.DepartmentService, logger *zap.Logger) *DepartmentHandler {
	return &DepartmentHandler{svc: svc, logger: logger}
}

// Create handles POST /departments.
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	response.Created(c, resp)
}

// GetByID handles GET /departments/:id.
func (h *DepartmentHandler) GetByID(c *gin.Context) {
	resp, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	response.OK(c, resp)
}

// List handles GET /departments.
func (h *DepartmentHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	response.OK(c, resp)
}

// Update handles PUT /departments/:id.
func (h *DepartmentHandler) Update(c *gin.Context) {
	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	response.OK(c, resp)
}

// Delete handles DELETE /departments/:id.
func (h *DepartmentHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Xóa khoa thành công"})
}

func (h *DepartmentHandler) handleDepartmentError(c *gin.Context, err error) {
	var inUse *service.InUseError
	switch {
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrDepartmentNameTaken):
		response.BadRequest(c, err.Error())
	case errors.As(err, &inUse):
		response.BadRequest(c, inUse.Message)
	default:
		h.logger.Error("department error", zap.Error(err))
		response.InternalError(c)
	}
}
