package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gravitas_estimator/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

func catalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler()

	r := gin.New()
	r.GET("/v1/catalog/materials", h.ListMaterials)
	r.GET("/v1/catalog/materials/:id/price", h.GetMaterialPrice)
	r.GET("/v1/catalog/locations", h.ListLocations)
	r.GET("/v1/catalog/project-types", h.ListProjectTypes)
	r.GET("/v1/catalog/plans", h.ListPlans)
	return r
}

func TestCatalogHandler_ListMaterials(t *testing.T) {
	r := catalogRouter()

	t.Run("full catalog", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/materials", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var materials []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &materials); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(materials) != len(catalog.MaterialDatabase) {
			t.Fatalf("expected %d materials, got %d", len(catalog.MaterialDatabase), len(materials))
		}
	})

	t.Run("category filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/materials?category=concrete", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var materials []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &materials); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(materials) == 0 {
			t.Fatal("expected at least one concrete material")
		}
		for _, m := range materials {
			if m["category"] != "concrete" {
				t.Fatalf("unexpected category in filtered list: %v", m["category"])
			}
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/materials?category=antimatter", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_GetMaterialPrice(t *testing.T) {
	r := catalogRouter()

	t.Run("defaults to metro manila", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/materials/cement-40kg-ordinary/price", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["location"] != "metro_manila" {
			t.Fatalf("unexpected location: %v", resp["location"])
		}
		if resp["unit_price"].(float64) != 240 {
			t.Fatalf("unexpected unit price: %v", resp["unit_price"])
		}
	})

	t.Run("provincial multiplier applied", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/materials/cement-40kg-ordinary/price?location=cebu", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["multiplier"].(float64) != 0.95 {
			t.Fatalf("unexpected multiplier: %v", resp["multiplier"])
		}
		if resp["unit_price"].(float64) != 228 {
			t.Fatalf("unexpected unit price: %v", resp["unit_price"])
		}
	})

	t.Run("unknown material", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/materials/unobtainium/price", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_ListLocations(t *testing.T) {
	r := catalogRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/locations", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var locations []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &locations); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(locations) != len(catalog.LocationMultipliers) {
		t.Fatalf("expected %d locations, got %d", len(catalog.LocationMultipliers), len(locations))
	}
	for i := 1; i < len(locations); i++ {
		if locations[i-1]["id"].(string) > locations[i]["id"].(string) {
			t.Fatal("locations are not sorted by id")
		}
	}
}

func TestCatalogHandler_ListProjectTypes(t *testing.T) {
	r := catalogRouter()

	t.Run("full registry", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/project-types", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var types []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &types); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(types) != len(catalog.ProjectTypeDefinitions) {
			t.Fatalf("expected %d project types, got %d", len(catalog.ProjectTypeDefinitions), len(types))
		}
	})

	t.Run("category filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/project-types?category=Residential", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var types []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &types); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(types) == 0 {
			t.Fatal("expected residential project types")
		}
		for _, pt := range types {
			if pt["category"] != "Residential" {
				t.Fatalf("unexpected category: %v", pt["category"])
			}
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/project-types?category=Orbital", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_ListPlans(t *testing.T) {
	r := catalogRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/plans", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var plans []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &plans); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
	if plans[0]["id"] != "free" {
		t.Fatalf("expected free plan first, got %v", plans[0]["id"])
	}
	if plans[2]["id"] != "premium" {
		t.Fatalf("expected premium plan last, got %v", plans[2]["id"])
	}
}
