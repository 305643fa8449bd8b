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

func sampleJob(status entities.JobStatus) entities.Job {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	j := entities.Job{
		ID:            "job-1",
		CustomerName:  "Asha",
		Phone:         "9876543210",
		DeviceType:    "phone",
		ServiceType:   entities.ServiceTypeWalkIn,
		Status:        status,
		TotalAmount:   decimal.NewFromInt(1000),
		AdvanceAmount: decimal.NewFromInt(200),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	j.AppendHistory(entities.JobStatusReceived, now, entities.IntakeNote())
	return j
}

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IJobUseCase) *gin.Engine {
		h := NewJobHandler(uc)
		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"customer_name":"Asha"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newRouter(uc)

		body := `{"customer_name":"Asha","phone":"9876543210","device_type":"phone","service_type":"walk-in","total_amount":"abc"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(entities.Job{}, usecase.ErrMissingAddress)

		body := `{"customer_name":"Asha","phone":"9876543210","device_type":"phone","service_type":"home-service"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().CreateJob(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p usecase.CreateJobParams) (entities.Job, error) {
				if p.CustomerName != "Asha" || p.ServiceType != entities.ServiceTypeWalkIn {
					t.Fatalf("unexpected params: %+v", p)
				}
				if !p.TotalAmount.Equal(decimal.NewFromInt(1000)) {
					t.Fatalf("expected total 1000, got %s", p.TotalAmount.String())
				}
				return sampleJob(entities.JobStatusReceived), nil
			},
		)

		body := `{"customer_name":"Asha","phone":"9876543210","device_type":"phone","service_type":"walk-in","total_amount":"1000","advance_amount":"200"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["id"] != "job-1" || resp["status"] != "received" {
			t.Fatalf("unexpected response: %v", resp)
		}
		if resp["balance"] != "800" {
			t.Fatalf("expected derived balance 800, got %v", resp["balance"])
		}
	})
}

func TestJobHandler_GetJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IJobUseCase) *gin.Engine {
		h := NewJobHandler(uc)
		r := gin.New()
		r.GET("/v1/jobs/:id", h.GetJob)
		return r
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetJob(gomock.Any(), "missing").Return(entities.Job{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetJob(gomock.Any(), "job-1").Return(sampleJob(entities.JobStatusReady), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["status"] != "ready" {
			t.Fatalf("unexpected status: %v", resp["status"])
		}
	})
}

func TestJobHandler_UpdateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IJobUseCase) *gin.Engine {
		h := NewJobHandler(uc)
		r := gin.New()
		r.PATCH("/v1/jobs/:id", h.UpdateJob)
		return r
	}

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UpdateJob(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1", bytes.NewBufferString(`{"status":"delivered"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("concurrent modification maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UpdateJob(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, usecase.ErrConcurrentModification)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1", bytes.NewBufferString(`{"issue":"battery drain"}`))
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
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UpdateJob(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p usecase.UpdateJobParams) (entities.Job, error) {
				if p.Status == nil || *p.Status != entities.JobStatusInProgress {
					t.Fatalf("expected status param, got %+v", p.Status)
				}
				return sampleJob(entities.JobStatusInProgress), nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1", bytes.NewBufferString(`{"status":"in-progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_DeleteJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IJobUseCase) *gin.Engine {
		h := NewJobHandler(uc)
		r := gin.New()
		r.DELETE("/v1/jobs/:id", h.DeleteJob)
		return r
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().DeleteJob(gomock.Any(), "missing").Return(usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/jobs/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().DeleteJob(gomock.Any(), "job-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/jobs/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
