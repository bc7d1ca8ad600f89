package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/service"
	"github.com/duyvawss25/Do-An-Co-So/pkg/response"
)

// PaymentHandler serves /payments endpoints.
type PaymentHandler struct {
	svc    service.PaymentService
	logger *zap.Logger
}

// NewPaymentHandler builds the payment handler.
func NewPaymentHandler(svc service.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, logger: logger}
}

// CalculateTeacher handles
// GET /payments/calculate/teacher/:teacherId/semester/:semesterId.
func (h *PaymentHandler) CalculateTeacher(c *gin.Context) {
	resp, err := h.svc.CalculateTeacherPayment(c.Request.Context(), c.Param("teacherId"), c.Param("semesterId"))
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}
	response.OK(c, resp)
}

// CalculateSemester handles GET /payments/calculate/semester/:semesterId.
func (h *PaymentHandler) CalculateSemester(c *gin.Context) {
	resp, err := h.svc.CalculateSemesterPayments(c.Request.Context(), c.Param("semesterId"))
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}
	response.OK(c, resp)
}

// ReportYears handles GET /payments/report/years.
func (h *PaymentHandler) ReportYears(c *gin.Context) {
	years, err := h.svc.ReportYears(c.Request.Context())
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}
	response.OK(c, gin.H{"years": years})
}

// ReportYear handles GET /payments/report/year/:year.
func (h *PaymentHandler) ReportYear(c *gin.Context) {
	resp, err := h.svc.ReportYear(c.Request.Context(), c.Param("year"))
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}
	response.OK(c, resp)
}

// ReportDepartment handles
// GET /payments/report/department/:departmentId/year/:year and
// GET /payments/report/department/:departmentId?year=. Without a year
// the report covers every semester of the department.
func (h *PaymentHandler) ReportDepartment(c *gin.Context) {
	year := c.Param("year")
	if year == "" {
		year = c.Query("year")
	}
	resp, err := h.svc.ReportDepartment(c.Request.Context(), c.Param("departmentId"), year)
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}
	response.OK(c, resp)
}

// ReportSchool handles GET /payments/report/school/year/:year and
// GET /payments/report/school?year=.
func (h *PaymentHandler) ReportSchool(c *gin.Context) {
	year := c.Param("year")
	if year == "" {
		year = c.Query("year")
	}
	resp, err := h.svc.ReportSchool(c.Request.Context(), year)
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *PaymentHandler) handlePaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRateNotConfigured):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrTeacherNotFound),
		errors.Is(err, service.ErrSemesterNotFound),
		errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, err.Error())
	default:
		h.logger.Error("payment error", zap.Error(err))
		response.InternalError(c)
	}
}
