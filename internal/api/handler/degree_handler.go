package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/service"
	"github.com/duyvawss25/Do-An-Co-So/pkg/response"
)

// DegreeHandler serves /degrees endpoints.
type DegreeHandler struct {
	svc    service.DegreeService
	logger *zap.Logger
}

// NewDegreeHandler builds the degree handler.
func NewDegreeHandler(svc service.DegreeService, logger *zap.Logger) *DegreeHandler {
	return &DegreeHandler{svc: svc, logger: logger}
}

// Create handles POST /degrees.
func (h *DegreeHandler) Create(c *gin.Context) {
	var req dto.CreateDegreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDegreeError(c, err)
		return
	}
	response.Created(c, resp)
}

// GetByID handles GET /degrees/:id.
func (h *DegreeHandler) GetByID(c *gin.Context) {
	resp, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleDegreeError(c, err)
		return
	}
	response.OK(c, resp)
}

// List handles GET /degrees.
func (h *DegreeHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.handleDegreeError(c, err)
		return
	}
	response.OK(c, resp)
}

// Update handles PUT /degrees/:id.
func (h *DegreeHandler) Update(c *gin.Context) {
	var req dto.UpdateDegreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleDegreeError(c, err)
		return
	}
	response.OK(c, resp)
}

// Delete handles DELETE /degrees/:id.
func (h *DegreeHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleDegreeError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Xóa bằng cấp thành công"})
}

func (h *DegreeHandler) handleDegreeError(c *gin.Context, err error) {
	var inUse *service.InUseError
	switch {
	case errors.Is(err, service.ErrDegreeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrDegreeNameTaken):
		response.BadRequest(c, err.Error())
	case errors.As(err, &inUse):
		response.BadRequest(c, inUse.Message)
	default:
		h.logger.Error("degree error", zap.Error(err))
		response.InternalError(c)
	}
}
