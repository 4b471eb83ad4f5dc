package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coolseason/internal/adapter/http/handlers/mocks"
	"coolseason/internal/domain/entities"
	"coolseason/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSizingHandler_SizeFloors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engine := mocks.NewMockISizingEngine(ctrl)
		h := NewSizingHandler(engine)

		r := gin.New()
		r.POST("/v1/sizing", h.SizeFloors)

		req := httptest.NewRequest(http.MethodPost, "/v1/sizing", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing floors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engine := mocks.NewMockISizingEngine(ctrl)
		h := NewSizingHandler(engine)

		r := gin.New()
		r.POST("/v1/sizing", h.SizeFloors)

		req := httptest.NewRequest(http.MethodPost, "/v1/sizing", bytes.NewBufferString(`{"climate_zone":3,"floors":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("more than three floors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engine := mocks.NewMockISizingEngine(ctrl)
		h := NewSizingHandler(engine)

		r := gin.New()
		r.POST("/v1/sizing", h.SizeFloors)

		floor := `{"name":"F","square_footage":1000,"floor_type":"main","needs_cooling":true}`
		body := `{"climate_zone":3,"floors":[` + floor + `,` + floor + `,` + floor + `,` + floor + `]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sizing", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown climate zone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engine := mocks.NewMockISizingEngine(ctrl)
		h := NewSizingHandler(engine)

		r := gin.New()
		r.POST("/v1/sizing", h.SizeFloors)

		body := `{"climate_zone":9,"floors":[{"name":"Main","square_footage":1600,"floor_type":"main","needs_cooling":true}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sizing", bytes.NewBufferString(body))
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
		engine := mocks.NewMockISizingEngine(ctrl)
		h := NewSizingHandler(engine)

		r := gin.New()
		r.POST("/v1/sizing", h.SizeFloors)

		engine.EXPECT().SizeFloors(entities.Zone3, gomock.Any()).Return([]entities.FloorResult{{
			FloorName:             "Main",
			FloorType:             entities.FloorMain,
			RecommendedTonnage:    2.5,
			RecommendedFurnaceBTU: 70000,
			Explanation:           "1,600 sq ft falls in the 2.5-ton range.",
		}})

		body := `{"climate_zone":3,"floors":[{"name":"Main","square_footage":1600,"floor_type":"main","needs_cooling":true,"needs_heating":true}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sizing", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			ClimateZone int `json:"climate_zone"`
			Results     []struct {
				RecommendedTonnage    float64 `json:"recommended_tonnage"`
				RecommendedFurnaceBTU int     `json:"recommended_furnace_btu"`
			} `json:"results"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if resp.ClimateZone != 3 || len(resp.Results) != 1 {
			t.Fatalf("unexpected response shape: %s", w.Body.String())
		}
		if resp.Results[0].RecommendedTonnage != 2.5 || resp.Results[0].RecommendedFurnaceBTU != 70000 {
			t.Fatalf("unexpected recommendation: %s", w.Body.String())
		}
	})

	t.Run("engine is exercised end to end", func(t *testing.T) {
		h := NewSizingHandler(usecase.NewSizingEngine())

		r := gin.New()
		r.POST("/v1/sizing", h.SizeFloors)

		body := `{"climate_zone":3,"floors":[{"name":"Main","square_footage":1600,"floor_type":"main","needs_cooling":true}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sizing", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("2.5")) {
			t.Fatalf("expected a 2.5-ton recommendation, got %s", w.Body.String())
		}
	})
}
