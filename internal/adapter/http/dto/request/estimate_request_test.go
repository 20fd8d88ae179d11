package request

import (
	"testing"

	"gravitas_estimator/internal/domain/catalog"
)

func TestCalculateEstimateRequest_ResolveUserID(t *testing.T) {
	r := CalculateEstimateRequest{UserID: " user-123 "}
	if got := r.ResolveUserID(); got != "user-123" {
		t.Fatalf("expected user-123, got %q", got)
	}

	r2 := CalculateEstimateRequest{UserID: "   "}
	if got := r2.ResolveUserID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestCalculateEstimateRequest_ToInputs(t *testing.T) {
	r := CalculateEstimateRequest{
		UserID:      "user-1",
		ProjectName: "Casa Verde",
		Location:    " cebu ",
		ProjectType: " bungalow ",
		Measurements: MeasurementsRequest{
			Unit:   "sqm",
			Area:   50,
			Length: 10,
			Width:  5,
			Floors: 2,
		},
		IncludeLabor:             true,
		LaborRate:                800,
		LaborDays:                30,
		OverheadPercent:          10,
		ProfitPercent:            15,
		ContingencyPercent:       5,
		EquipmentCost:            20000,
		SelectedMaterials:        []string{"chb-6in"},
		CustomMaterialQuantities: map[string]float64{"chb-6in": 500},
	}

	inputs := r.ToInputs()
	if inputs.Location != catalog.Location("cebu") {
		t.Fatalf("expected trimmed location, got %q", inputs.Location)
	}
	if inputs.ProjectType != catalog.ProjectType("bungalow") {
		t.Fatalf("expected trimmed project type, got %q", inputs.ProjectType)
	}
	if inputs.Measurements.Area != 50 || inputs.Measurements.Floors != 2 {
		t.Fatalf("measurements not carried over: %+v", inputs.Measurements)
	}
	if !inputs.IncludeLabor || inputs.LaborRate != 800 || inputs.LaborDays != 30 {
		t.Fatalf("labor fields not carried over: %+v", inputs)
	}
	if inputs.OverheadPercent != 10 || inputs.ProfitPercent != 15 || inputs.ContingencyPercent != 5 {
		t.Fatalf("percentage fields not carried over: %+v", inputs)
	}
	if len(inputs.SelectedMaterials) != 1 || inputs.SelectedMaterials[0] != "chb-6in" {
		t.Fatalf("selected materials not carried over: %v", inputs.SelectedMaterials)
	}
	if inputs.CustomMaterialQuantities["chb-6in"] != 500 {
		t.Fatalf("quantity overrides not carried over: %v", inputs.CustomMaterialQuantities)
	}
}

func TestBulkEstimateRequest_ToInputs(t *testing.T) {
	r := BulkEstimateRequest{
		UserID: " user-1 ",
		Projects: []BulkProjectRequest{
			{Area: 100, Location: " cebu ", Type: " bungalow "},
			{Area: 250, Location: "davao", Type: "warehouse"},
		},
	}

	if got := r.ResolveUserID(); got != "user-1" {
		t.Fatalf("expected user-1, got %q", got)
	}

	inputs := r.ToInputs()
	if len(inputs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(inputs))
	}
	if inputs[0].Location != catalog.Location("cebu") || inputs[0].Type != catalog.ProjectType("bungalow") {
		t.Fatalf("first entry not trimmed: %+v", inputs[0])
	}
	if inputs[1].Area != 250 {
		t.Fatalf("unexpected area: %v", inputs[1].Area)
	}
}
