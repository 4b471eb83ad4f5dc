package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"coolseason/internal/adapter/http/handlers/mocks"
	"coolseason/internal/domain/entities"
	"coolseason/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleEstimate() entities.Estimate {
	return entities.Estimate{
		ID:             "est-1",
		EstimateNumber: "CS-001",
		Status:         entities.EstimateStatusPending,
		CustomerName:   "Pat Winters",
		Systems: []entities.EstimateSystem{{
			ID:            "sys-1",
			Enabled:       true,
			Name:          "System 1",
			Tonnage:       3,
			EquipmentType: entities.EquipmentACFurnace,
			Options: []entities.SystemOption{
				{ID: "opt-good", Tier: entities.TierGood, ShowToCustomer: true, Price: 9000},
				{ID: "opt-better", Tier: entities.TierBetter, ShowToCustomer: true, Price: 11000},
				{ID: "opt-best", Tier: entities.TierBest, ShowToCustomer: true, Price: 14000},
			},
		}},
		AddOns: []entities.AddOn{
			{ID: "add-1", TemplateID: "tpl-1", SystemID: "sys-1", Name: "WiFi Thermostat", Enabled: true, Price: 350},
		},
	}
}

func TestEstimateHandler_GetCurrentEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/current", h.GetCurrentEstimate)

		uc.EXPECT().Current(gomock.Any()).Return(sampleEstimate(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/current", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["estimate_number"] != "CS-001" {
			t.Fatalf("expected estimate_number CS-001, got %v", body["estimate_number"])
		}
	})

	t.Run("usecase failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/current", h.GetCurrentEstimate)

		uc.EXPECT().Current(gomock.Any()).Return(entities.Estimate{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/current", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_StartNewEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.StartNewEstimate)

		uc.EXPECT().StartNew(gomock.Any()).Return(sampleEstimate(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_LoadEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/current", h.LoadEstimate)

		req := httptest.NewRequest(http.MethodPut, "/v1/estimates/current", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown estimate maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/current", h.LoadEstimate)

		uc.EXPECT().Load(gomock.Any(), "nope").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/estimates/current", bytes.NewBufferString(`{"id":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/current", h.LoadEstimate)

		uc.EXPECT().Load(gomock.Any(), "est-1").Return(sampleEstimate(), nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/estimates/current", bytes.NewBufferString(`{"id":"est-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimates/current/status", h.SetStatus)

		uc.EXPECT().SetStatus(gomock.Any(), entities.EstimateStatus("archived")).Return(entities.Estimate{}, usecase.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/current/status", bytes.NewBufferString(`{"status":"archived"}`))
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
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimates/current/status", h.SetStatus)

		approved := sampleEstimate()
		approved.Status = entities.EstimateStatusApproved
		uc.EXPECT().SetStatus(gomock.Any(), entities.EstimateStatusApproved).Return(approved, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/current/status", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_AcceptProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/current/accept", h.AcceptProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/current/accept", bytes.NewBufferString(`{}`))
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
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/current/accept", h.AcceptProposal)

		uc.EXPECT().AcceptProposal(gomock.Any(), entities.TierBest).Return(sampleEstimate(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/current/accept", bytes.NewBufferString(`{"tier":"best"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_EnsureSystemCount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("count out of range maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/systems/count", h.EnsureSystemCount)

		uc.EXPECT().EnsureSystemCount(gomock.Any(), 99).Return(entities.Estimate{}, usecase.ErrInvalidSystemCount)

		req := httptest.NewRequest(http.MethodPut, "/v1/systems/count", bytes.NewBufferString(`{"count":99}`))
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
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/systems/count", h.EnsureSystemCount)

		uc.EXPECT().EnsureSystemCount(gomock.Any(), 2).Return(sampleEstimate(), nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/systems/count", bytes.NewBufferString(`{"count":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_AddSystem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing tonnage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/systems", h.AddSystem)

		req := httptest.NewRequest(http.MethodPost, "/v1/systems", bytes.NewBufferString(`{"equipment_type":"ac_furnace"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no matching template maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/systems", h.AddSystem)

		uc.EXPECT().AddSystem(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, usecase.ErrTemplateNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/systems", bytes.NewBufferString(`{"tonnage":3,"equipment_type":"ac_furnace"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/systems", h.AddSystem)

		want := usecase.AddSystemInput{Name: "Upstairs", Tonnage: 2.5, EquipmentType: entities.EquipmentHeatPumpAirHandler}
		uc.EXPECT().AddSystem(gomock.Any(), want).Return(sampleEstimate(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/systems", bytes.NewBufferString(`{"name":"Upstairs","tonnage":2.5,"equipment_type":"heat_pump_air_handler"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_UpdateSystemMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown equipment type is rejected before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/systems/:system_id", h.UpdateSystemMeta)

		req := httptest.NewRequest(http.MethodPatch, "/v1/systems/sys-1", bytes.NewBufferString(`{"equipment_type":"hydronic_boiler"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative tonnage is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/systems/:system_id", h.UpdateSystemMeta)

		req := httptest.NewRequest(http.MethodPatch, "/v1/systems/sys-1", bytes.NewBufferString(`{"tonnage":-2}`))
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
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/systems/:system_id", h.UpdateSystemMeta)

		uc.EXPECT().UpdateSystemMeta(gomock.Any(), "sys-1", gomock.Any()).Return(sampleEstimate(), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/systems/sys-1", bytes.NewBufferString(`{"tonnage":4,"equipment_type":"heat_pump_air_handler"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_SelectOption(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown option maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/systems/:system_id/options/:option_id/select", h.SelectOption)

		uc.EXPECT().SelectOption(gomock.Any(), "sys-1", "nope").Return(entities.Estimate{}, usecase.ErrOptionNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/systems/sys-1/options/nope/select", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/systems/:system_id/options/:option_id/select", h.SelectOption)

		uc.EXPECT().SelectOption(gomock.Any(), "sys-1", "opt-better").Return(sampleEstimate(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/systems/sys-1/options/opt-better/select", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_SetAddOnPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/addons/:addon_id/price", h.SetAddOnPrice)

		req := httptest.NewRequest(http.MethodPatch, "/v1/addons/add-1/price", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown add-on maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/addons/:addon_id/price", h.SetAddOnPrice)

		uc.EXPECT().SetAddOnPrice(gomock.Any(), "nope", 500.0).Return(entities.Estimate{}, usecase.ErrAddOnNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/addons/nope/price", bytes.NewBufferString(`{"price":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/addons/:addon_id/price", h.SetAddOnPrice)

		uc.EXPECT().SetAddOnPrice(gomock.Any(), "add-1", 500.0).Return(sampleEstimate(), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/addons/add-1/price", bytes.NewBufferString(`{"price":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GetTextSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/current/summary", h.GetTextSummary)

		uc.EXPECT().TextSummary(gomock.Any()).Return("CoolSeason HVAC Estimate\nCustomer: Pat Winters", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/current/summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Pat Winters")) {
			t.Fatalf("expected the summary body, got %q", w.Body.String())
		}
	})
}

func TestEstimateHandler_GetPDFSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("renders a pdf for the current estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/current/summary.pdf", h.GetPDFSummary)

		uc.EXPECT().Current(gomock.Any()).Return(sampleEstimate(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/current/summary.pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("expected application/pdf, got %s", ct)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("expected a pdf body")
		}
	})
}

func TestEstimateHandler_DeleteEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown estimate maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/estimates/:estimate_id", h.DeleteEstimate)

		uc.EXPECT().Delete(gomock.Any(), "nope").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns the promoted estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/estimates/:estimate_id", h.DeleteEstimate)

		uc.EXPECT().Delete(gomock.Any(), "est-1").Return(sampleEstimate(), nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
