package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"repairdesk/internal/adapter/http/handlers/mocks"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestOutsourceHandler_AssignVendor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IOutsourceUseCase) *gin.Engine {
		h := NewOutsourceHandler(uc)
		r := gin.New()
		r.POST("/v1/jobs/:id/outsource", h.AssignVendor)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutsourceUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/outsource", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing vendor name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutsourceUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/outsource", bytes.NewBufferString(`{"cost":"300"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutsourceUseCase(ctrl)
		r := newRouter(uc)

		body := `{"vendor_name":"FixIt Co","cost":"cheap"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/outsource", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutsourceUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().AssignVendor(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, usecase.ErrInvalidTransition)

		body := `{"vendor_name":"FixIt Co","cost":"300"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/outsource", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutsourceUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().AssignVendor(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p usecase.AssignVendorParams) (entities.Job, error) {
				if p.VendorName != "FixIt Co" || p.VendorPhone != "111" {
					t.Fatalf("unexpected params: %+v", p)
				}
				if !p.Cost.Equal(decimal.NewFromInt(300)) {
					t.Fatalf("expected cost 300, got %s", p.Cost.String())
				}
				j := sampleJob(entities.JobStatusOutsourced)
				j.Outsourced = &entities.Outsourced{VendorName: "FixIt Co", VendorPhone: "111", Cost: p.Cost, AssignedAt: time.Now().UTC()}
				return j, nil
			},
		)

		body := `{"vendor_name":"FixIt Co","vendor_phone":"111","cost":"300"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/outsource", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["status"] != "outsourced" {
			t.Fatalf("unexpected status: %v", resp["status"])
		}
		if resp["outsourced"] == nil {
			t.Fatalf("expected outsourced record in response")
		}
	})
}

func TestOutsourceHandler_ReceiveBack(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IOutsourceUseCase) *gin.Engine {
		h := NewOutsourceHandler(uc)
		r := gin.New()
		r.POST("/v1/jobs/:id/receive-back", h.ReceiveBack)
		return r
	}

	t.Run("missing outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutsourceUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/receive-back", bytes.NewBufferString(`{"final_cost":"350"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("job not outsourced maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutsourceUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().ReceiveBack(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, usecase.ErrInvalidTransition)

		body := `{"outcome":"ready","final_cost":"350"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/receive-back", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutsourceUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().ReceiveBack(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p usecase.ReceiveBackParams) (entities.Job, error) {
				if p.Outcome != entities.JobStatusReady {
					t.Fatalf("expected outcome ready, got %s", p.Outcome)
				}
				if !p.FinalCost.Equal(decimal.NewFromInt(350)) {
					t.Fatalf("expected final cost 350, got %s", p.FinalCost.String())
				}
				return sampleJob(entities.JobStatusReady), nil
			},
		)

		body := `{"outcome":"ready","final_cost":"350"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/receive-back", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOutsourceHandler_GetVendor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IOutsourceUseCase) *gin.Engine {
		h := NewOutsourceHandler(uc)
		r := gin.New()
		r.GET("/v1/vendors/:name", h.GetVendor)
		return r
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutsourceUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetVendor(gomock.Any(), "Nobody").Return(entities.Vendor{}, usecase.ErrVendorNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/vendors/Nobody", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutsourceUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetVendor(gomock.Any(), "FixIt Co").Return(entities.Vendor{Name: "FixIt Co", Phone: "111"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/vendors/FixIt%20Co", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["name"] != "FixIt Co" {
			t.Fatalf("unexpected vendor: %v", resp)
		}
	})
}
