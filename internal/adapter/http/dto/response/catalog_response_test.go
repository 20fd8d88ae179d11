package response

import (
	"testing"

	"gravitas_estimator/internal/domain/catalog"
	"gravitas_estimator/internal/domain/entities"
)

func TestFromMaterialPrice(t *testing.T) {
	mat, ok := catalog.FindMaterial("cement-40kg-ordinary")
	if !ok {
		t.Fatal("expected cement-40kg-ordinary in the catalog")
	}

	resp := FromMaterialPrice(mat, catalog.Location("cebu"))
	if resp.MaterialID != "cement-40kg-ordinary" {
		t.Fatalf("unexpected material id: %q", resp.MaterialID)
	}
	if resp.LocationName != "Cebu" {
		t.Fatalf("unexpected location name: %q", resp.LocationName)
	}
	if resp.Multiplier != 0.95 {
		t.Fatalf("unexpected multiplier: %v", resp.Multiplier)
	}
	if resp.BasePrice != 240 || resp.UnitPrice != 228 {
		t.Fatalf("unexpected prices: base=%v unit=%v", resp.BasePrice, resp.UnitPrice)
	}
}

func TestFromLocation_UnknownFallsBackToParity(t *testing.T) {
	resp := FromLocation(catalog.Location("atlantis"))
	if resp.Multiplier != 1.0 {
		t.Fatalf("expected parity multiplier, got %v", resp.Multiplier)
	}
}

func TestFromProjectType(t *testing.T) {
	def, ok := catalog.FindProjectType(catalog.ProjectType("bungalow"))
	if !ok {
		t.Fatal("expected bungalow in the registry")
	}

	resp := FromProjectType(catalog.ProjectType("bungalow"), def)
	if resp.ID != "bungalow" {
		t.Fatalf("unexpected id: %q", resp.ID)
	}
	if resp.Category != "Residential" {
		t.Fatalf("unexpected category: %q", resp.Category)
	}
	if resp.Tier != "free" {
		t.Fatalf("unexpected tier: %q", resp.Tier)
	}
	if resp.DefaultMeasurements.Rooms != 3 {
		t.Fatalf("unexpected default rooms: %d", resp.DefaultMeasurements.Rooms)
	}
}

func TestFromPlan(t *testing.T) {
	resp := FromPlan(entities.SubscriptionPlans[catalog.TierPremium])
	if resp.ID != "premium" {
		t.Fatalf("unexpected id: %q", resp.ID)
	}
	if resp.Price != 1499 {
		t.Fatalf("unexpected price: %v", resp.Price)
	}
	if resp.MaxEstimates > 0 {
		t.Fatalf("premium should be unlimited, got %d", resp.MaxEstimates)
	}
}
