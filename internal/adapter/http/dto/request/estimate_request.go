package request

import (
	"strings"

	"gravitas_estimator/internal/domain/catalog"
	"gravitas_estimator/internal/domain/entities"
)

type MeasurementsRequest struct {
	Unit      string  `json:"unit"`
	Area      float64 `json:"area"`
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Rooms     int     `json:"rooms"`
	Floors    int     `json:"floors"`
	Perimeter float64 `json:"perimeter"`
}

// CalculateEstimateRequest is the payload for stateless calculation previews.
// The premium-only fields are accepted from every caller and ignored by the
// engine below the premium tier.
type CalculateEstimateRequest struct {
	UserID                   string              `json:"user_id" binding:"required"`
	ProjectName              string              `json:"project_name" binding:"required"`
	Location                 string              `json:"location" binding:"required"`
	ProjectType              string              `json:"project_type" binding:"required"`
	Measurements             MeasurementsRequest `json:"measurements" binding:"required"`
	IncludeLabor             bool                `json:"include_labor"`
	LaborRate                float64             `json:"labor_rate"`
	LaborDays                float64             `json:"labor_days"`
	OverheadPercent          float64             `json:"overhead_percent"`
	ProfitPercent            float64             `json:"profit_percent"`
	ContingencyPercent       float64             `json:"contingency_percent"`
	EquipmentCost            float64             `json:"equipment_cost"`
	SelectedMaterials        []string            `json:"selected_materials"`
	CustomMaterialQuantities map[string]float64  `json:"custom_material_quantities"`
}

// CreateEstimateRequest saves the calculation under the user's account.
type CreateEstimateRequest struct {
	CalculateEstimateRequest
	Notes string `json:"notes"`
}

type BulkProjectRequest struct {
	Area     float64 `json:"area"`
	Location string  `json:"location"`
	Type     string  `json:"type"`
}

type BulkEstimateRequest struct {
	UserID   string               `json:"user_id" binding:"required"`
	Projects []BulkProjectRequest `json:"projects" binding:"required"`
}

func (r CalculateEstimateRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}

func (r CalculateEstimateRequest) ToInputs() entities.EstimateInputs {
	return entities.EstimateInputs{
		ProjectName: r.ProjectName,
		Location:    catalog.Location(strings.TrimSpace(r.Location)),
		ProjectType: catalog.ProjectType(strings.TrimSpace(r.ProjectType)),
		Measurements: entities.Measurements{
			Unit:      r.Measurements.Unit,
			Area:      r.Measurements.Area,
			Length:    r.Measurements.Length,
			Width:     r.Measurements.Width,
			Height:    r.Measurements.Height,
			Rooms:     r.Measurements.Rooms,
			Floors:    r.Measurements.Floors,
			Perimeter: r.Measurements.Perimeter,
		},
		IncludeLabor:             r.IncludeLabor,
		LaborRate:                r.LaborRate,
		LaborDays:                r.LaborDays,
		OverheadPercent:          r.OverheadPercent,
		ProfitPercent:            r.ProfitPercent,
		ContingencyPercent:       r.ContingencyPercent,
		EquipmentCost:            r.EquipmentCost,
		SelectedMaterials:        r.SelectedMaterials,
		CustomMaterialQuantities: r.CustomMaterialQuantities,
	}
}

func (r BulkEstimateRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}

func (r BulkEstimateRequest) ToInputs() []entities.BulkProjectInput {
	projects := make([]entities.BulkProjectInput, 0, len(r.Projects))
	for _, p := range r.Projects {
		projects = append(projects, entities.BulkProjectInput{
			Area:     p.Area,
			Location: catalog.Location(strings.TrimSpace(p.Location)),
			Type:     catalog.ProjectType(strings.TrimSpace(p.Type)),
		})
	}
	return projects
}
