package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/service"
)

type stubDegreeService struct {
	createResp *dto.DegreeResponse
	getResp    *dto.DegreeResponse
	listResp   []dto.DegreeResponse
	err        error
}

func (s *stubDegreeService) Create(context.Context, *dto.CreateDegreeRequest) (*dto.DegreeResponse, error) {
	return s.createResp, s.err
}

func (s *stubDegreeService) GetByID(context.Context, string) (*dto.DegreeResponse, error) {
	return s.getResp, s.err
}

func (s *stubDegreeService) List(context.Context) ([]dto.DegreeResponse, error) {
	return s.listResp, s.err
}

func (s *stubDegreeService) Update(context.Context, string, *dto.UpdateDegreeRequest) (*dto.DegreeResponse, error) {
	return s.getResp, s.err
}

func (s *stubDegreeService) Delete(context.Context, string) error {
	return s.err
}

func newDegreeRouter(svc service.DegreeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDegreeHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/degrees", h.Create)
	r.GET("/degrees/:id", h.GetByID)
	r.DELETE("/degrees/:id", h.Delete)
	return r
}

func TestDegreeCreateReturnsPayloadDirectly(t *testing.T) {
	svc := &stubDegreeService{createResp: &dto.DegreeResponse{
		ID: "deg-1", Name: "Thạc sĩ", ShortName: "ThS", Coefficient: 1.5,
	}}
	r := newDegreeRouter(svc)

	body := `{"name":"Thạc sĩ","short_name":"ThS","coefficient":1.5}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/degrees", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	// The payload is the resource itself, not wrapped in an envelope.
	var got map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["id"] != "deg-1" {
		t.Errorf("id = %v", got["id"])
	}
	if _, wrapped := got["data"]; wrapped {
		t.Error("response is wrapped in a data envelope")
	}
}

func TestDegreeCreateBadBody(t *testing.T) {
	r := newDegreeRouter(&stubDegreeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/degrees", strings.NewReader(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["message"] == "" {
		t.Error("error body has no message")
	}
}

func TestDegreeGetNotFound(t *testing.T) {
	r := newDegreeRouter(&stubDegreeService{err: service.ErrDegreeNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/degrees/missing", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDegreeDeleteInUse(t *testing.T) {
	r := newDegreeRouter(&stubDegreeService{err: &service.InUseError{
		Message: "Không thể xóa bằng cấp vì đang có 3 giáo viên sử dụng",
		Count:   3,
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/degrees/deg-1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(got["message"], "3") {
		t.Errorf("message lacks the reference count: %q", got["message"])
	}
}
