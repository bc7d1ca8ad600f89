package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/service"
	"github.com/duyvawss25/Do-An-Co-So/pkg/response"
)

// SettingsHandler serves /settings endpoints.
type SettingsHandler struct {
	svc    service.SettingsService
	logger *zap.Logger
}

// NewSettingsHandler builds the settings handler.
func NewSettingsHandler(svc service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, logger: logger}
}

// Get handles GET /settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}
	response.OK(c, resp)
}

// Update handles PUT /settings.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), &req)
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}
	response.OK(c, resp)
}

// Propagate handles POST /settings/update-coefficients.
func (h *SettingsHandler) Propagate(c *gin.Context) {
	resp, err := h.svc.PropagateAll(c.Request.Context())
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}
	response.OK(c, resp)
}

// GetPaymentRate handles GET /settings/payment-rate.
func (h *SettingsHandler) GetPaymentRate(c *gin.Context) {
	resp, err := h.svc.GetPaymentRate(c.Request.Context())
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}
	response.OK(c, resp)
}

// UpdatePaymentRate handles PUT /settings/payment-rate.
func (h *SettingsHandler) UpdatePaymentRate(c *gin.Context) {
	var req dto.UpdatePaymentRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	resp, err := h.svc.UpdatePaymentRate(c.Request.Context(), &req)
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *SettingsHandler) handleSettingsError(c *gin.Context, err error) {
	h.logger.Error("settings error", zap.Error(err))
	response.InternalError(c)
}
