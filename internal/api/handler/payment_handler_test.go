package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/service"
)

type stubPaymentService struct {
	teacherResp  *dto.TeacherPaymentResponse
	semesterResp *dto.SemesterPaymentsResponse
	yearResp     *dto.YearReportResponse
	years        []string
	err          error
}

func (s *stubPaymentService) CalculateTeacherPayment(context.Context, string, string) (*dto.TeacherPaymentResponse, error) {
	return s.teacherResp, s.err
}

func (s *stubPaymentService) CalculateSemesterPayments(context.Context, string) (*dto.SemesterPaymentsResponse, error) {
	return s.semesterResp, s.err
}

func (s *stubPaymentService) ReportYears(context.Context) ([]string, error) {
	return s.years, s.err
}

func (s *stubPaymentService) ReportYear(context.Context, string) (*dto.YearReportResponse, error) {
	return s.yearResp, s.err
}

func (s *stubPaymentService) ReportDepartment(context.Context, string, string) (*dto.DepartmentReportResponse, error) {
	return nil, s.err
}

func (s *stubPaymentService) ReportSchool(context.Context, string) (*dto.SchoolReportResponse, error) {
	return nil, s.err
}

func newPaymentRouter(svc service.PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPaymentHandler(svc, zap.NewNop())
	r := gin.New()
	r.GET("/payments/calculate/teacher/:teacherId/semester/:semesterId", h.CalculateTeacher)
	r.GET("/payments/report/year/:year", h.ReportYear)
	return r
}

func TestCalculateTeacherRateNotConfigured(t *testing.T) {
	r := newPaymentRouter(&stubPaymentService{err: service.ErrRateNotConfigured})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments/calculate/teacher/t-1/semester/s-1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["message"] != "Chưa thiết lập định mức tiền" {
		t.Errorf("message = %q", got["message"])
	}
}

func TestReportYearEmptyReturnsZeroReport(t *testing.T) {
	r := newPaymentRouter(&stubPaymentService{yearResp: &dto.YearReportResponse{
		Year:     "1999-2000",
		BaseRate: 50000,
		Teachers: []dto.YearTeacherReport{},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments/report/year/1999-2000", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got dto.YearReportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.TeacherCount != 0 || got.TotalAmount != 0 || len(got.Teachers) != 0 {
		t.Errorf("zero report expected, got %+v", got)
	}
}

func TestCalculateTeacherOK(t *testing.T) {
	r := newPaymentRouter(&stubPaymentService{teacherResp: &dto.TeacherPaymentResponse{
		TeacherID:   "t-1",
		TeacherCode: "GV001",
		TotalAmount: 3375000,
		Classes:     []dto.ClassPaymentDetail{},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments/calculate/teacher/t-1/semester/s-1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got dto.TeacherPaymentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.TotalAmount != 3375000 {
		t.Errorf("TotalAmount = %v", got.TotalAmount)
	}
}
