package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/service"
	"github.com/duyvawss25/Do-An-Co-So/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves /export endpoints.
type ExportHandler struct {
	svc    service.ExportService
	logger *zap.Logger
}

// NewExportHandler builds the export handler.
func NewExportHandler(svc service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, logger: logger}
}

// PaymentReport handles GET /export/payment-report?year=YYYY-YYYY.
func (h *ExportHandler) PaymentReport(c *gin.Context) {
	year := c.Query("year")
	if year == "" {
		response.BadRequest(c, "Thiếu tham số năm học")
		return
	}

	data, filename, err := h.svc.PaymentReport(c.Request.Context(), year)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRateNotConfigured),
		errors.Is(err, service.ErrExportEmpty):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Error("export error", zap.Error(err))
		response.InternalError(c)
	}
}
