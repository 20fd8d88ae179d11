package entities

import (
	"time"

	"gravitas_estimator/internal/domain/catalog"
)

// Measurements is the geometric input to an estimate. Area is the required
// driver; length/width/height are optional and, when absent, branches that
// need them fall back to a square footprint derived from sqrt(area).

type Measurements struct {
	Unit      string  `json:"unit"`
	Area      float64 `json:"area"`
	Length    float64 `json:"length,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Rooms     int     `json:"rooms,omitempty"`
	Floors    int     `json:"floors,omitempty"`
	Perimeter float64 `json:"perimeter,omitempty"`
}

// MaterialItem is one priced line in a calculation result. Items are created
// fresh on every calculation and never mutated afterwards.
type MaterialItem struct {
	MaterialID   string  `json:"material_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unit_price"`
	Total        float64 `json:"total"`
	Included     bool    `json:"included"`
	Customizable bool    `json:"customizable,omitempty"`
}

// EstimateInputs is the full calculation request. The premium cost-modifier
// bundle (labor, equipment, percentages) and the material allowlist/quantity
// overrides only take effect for premium users.
type EstimateInputs struct {
	ProjectName  string              `json:"project_name"`
	Location     catalog.Location    `json:"location"`
	ProjectType  catalog.ProjectType `json:"project_type"`
	Measurements Measurements        `json:"measurements"`

	IncludeLabor       bool    `json:"include_labor,omitempty"`
	LaborRate          float64 `json:"labor_rate,omitempty"`
	LaborDays          float64 `json:"labor_days,omitempty"`
	OverheadPercent    float64 `json:"overhead_percent,omitempty"`
	ProfitPercent      float64 `json:"profit_percent,omitempty"`
	ContingencyPercent float64 `json:"contingency_percent,omitempty"`
	EquipmentCost      float64 `json:"equipment_cost,omitempty"`

	SelectedMaterials        []string           `json:"selected_materials,omitempty"`
	CustomMaterialQuantities map[string]float64 `json:"custom_material_quantities,omitempty"`
}

// CalculationResult is the priced outcome of one estimate calculation.
//
// Optional components carry the observed falsy-means-absent semantics: a zero
// value means the component was not computed (zero rates/percentages suppress
// the component before it is ever calculated), and zero fields are omitted
// from JSON accordingly.
type CalculationResult struct {
	Materials         []MaterialItem `json:"materials"`
	MaterialsSubtotal float64        `json:"materials_subtotal"`
	LaborCost         float64        `json:"labor_cost,omitempty"`
	EquipmentCost     float64        `json:"equipment_cost,omitempty"`
	OverheadAmount    float64        `json:"overhead_amount,omitempty"`
	ContingencyAmount float64        `json:"contingency_amount,omitempty"`
	ProfitAmount      float64        `json:"profit_amount,omitempty"`
	GrandTotal        float64        `json:"grand_total"`
}

// BulkProjectInput is one entry of a portfolio batch.
type BulkProjectInput struct {
	Area     float64             `json:"area"`
	Location catalog.Location    `json:"location"`
	Type     catalog.ProjectType `json:"type"`
}

// BulkEstimateResult aggregates a portfolio batch.
type BulkEstimateResult struct {
	TotalMaterials float64 `json:"total_materials"`
	TotalLabor     float64 `json:"total_labor"`
	GrandTotal     float64 `json:"grand_total"`
	ProjectCount   int     `json:"project_count"`
}

type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSaved    EstimateStatus = "saved"
	EstimateStatusExported EstimateStatus = "exported"
)

// Estimate is a persisted calculation, keyed by user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type Estimate struct {
	ID           string              `json:"id"`
	UserID       string              `json:"user_id"`
	ProjectName  string              `json:"project_name"`
	Location     catalog.Location    `json:"location"`
	ProjectType  catalog.ProjectType `json:"project_type"`
	Measurements Measurements        `json:"measurements"`
	Result       CalculationResult   `json:"result"`
	Status       EstimateStatus      `json:"status"`
	Notes        string              `json:"notes,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
