package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/service"
	"github.com/duyvawss25/Do-An-Co-So/pkg/response"
)

// SemesterHandler serves /semesters endpoints.
type SemesterHandler struct {
	svc    service.SemesterService
	logger *zap.Logger
}

// NewSemesterHandler builds the semester handler.
func NewSemesterHandler(svc service.SemesterService, logger *zap.Logger) *SemesterHandler {
	return &SemesterHandler{svc: svc, logger: logger}
}

// Create handles POST /semesters.
func (h *SemesterHandler) Create(c *gin.Context) {
	var req dto.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}
	response.Created(c, resp)
}

// GetByID handles GET /semesters/:id.
func (h *SemesterHandler) GetByID(c *gin.Context) {
	resp, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}
	response.OK(c, resp)
}

// List handles GET /semesters.
func (h *SemesterHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}
	response.OK(c, resp)
}

// Update handles PUT /semesters/:id.
func (h *SemesterHandler) Update(c *gin.Context) {
	var req dto.UpdateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}
	response.OK(c, resp)
}

// Delete handles DELETE /semesters/:id.
func (h *SemesterHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleSemesterError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Xóa kì học thành công"})
}

func (h *SemesterHandler) handleSemesterError(c *gin.Context, err error) {
	var inUse *service.InUseError
	switch {
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrSemesterName),
		errors.Is(err, service.ErrSemesterYear),
		errors.Is(err, service.ErrSemesterDates),
		errors.Is(err, service.ErrSemesterDateForm),
		errors.Is(err, service.ErrSemesterDuplicate):
		response.BadRequest(c, err.Error())
	case errors.As(err, &inUse):
		response.BadRequest(c, inUse.Message)
	default:
		h.logger.Error("semester error", zap.Error(err))
		response.InternalError(c)
	}
}
