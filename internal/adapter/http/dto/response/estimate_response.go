package response

import (
	"time"

	"gravitas_estimator/internal/calc"
	"gravitas_estimator/internal/domain/entities"
)

type MaterialItemResponse struct {
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

type CalculationResponse struct {
	Materials           []MaterialItemResponse `json:"materials"`
	MaterialsSubtotal   float64                `json:"materials_subtotal"`
	LaborCost           float64                `json:"labor_cost,omitempty"`
	EquipmentCost       float64                `json:"equipment_cost,omitempty"`
	OverheadAmount      float64                `json:"overhead_amount,omitempty"`
	ContingencyAmount   float64                `json:"contingency_amount,omitempty"`
	ProfitAmount        float64                `json:"profit_amount,omitempty"`
	GrandTotal          float64                `json:"grand_total"`
	GrandTotalFormatted string                 `json:"grand_total_formatted"`
}

type EstimateResponse struct {
	ID           string                `json:"id"`
	UserID       string                `json:"user_id"`
	ProjectName  string                `json:"project_name"`
	Location     string                `json:"location"`
	ProjectType  string                `json:"project_type"`
	Measurements entities.Measurements `json:"measurements"`
	Result       CalculationResponse   `json:"result"`
	Status       string                `json:"status"`
	Notes        string                `json:"notes,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

type BulkEstimateResponse struct {
	TotalMaterials      float64 `json:"total_materials"`
	TotalLabor          float64 `json:"total_labor"`
	GrandTotal          float64 `json:"grand_total"`
	GrandTotalFormatted string  `json:"grand_total_formatted"`
	ProjectCount        int     `json:"project_count"`
}

func FromCalculationResult(r entities.CalculationResult) CalculationResponse {
	materials := make([]MaterialItemResponse, 0, len(r.Materials))
	for _, item := range r.Materials {
		materials = append(materials, MaterialItemResponse{
			MaterialID:   item.MaterialID,
			Name:         item.Name,
			Category:     item.Category,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			UnitPrice:    item.UnitPrice,
			Total:        item.Total,
			Included:     item.Included,
			Customizable: item.Customizable,
		})
	}
	return CalculationResponse{
		Materials:           materials,
		MaterialsSubtotal:   r.MaterialsSubtotal,
		LaborCost:           r.LaborCost,
		EquipmentCost:       r.EquipmentCost,
		OverheadAmount:      r.OverheadAmount,
		ContingencyAmount:   r.ContingencyAmount,
		ProfitAmount:        r.ProfitAmount,
		GrandTotal:          r.GrandTotal,
		GrandTotalFormatted: calc.FormatCurrency(r.GrandTotal),
	}
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		ProjectName:  e.ProjectName,
		Location:     string(e.Location),
		ProjectType:  string(e.ProjectType),
		Measurements: e.Measurements,
		Result:       FromCalculationResult(e.Result),
		Status:       string(e.Status),
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func FromEstimates(estimates []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromEstimate(e))
	}
	return out
}

func FromBulkResult(r entities.BulkEstimateResult) BulkEstimateResponse {
	return BulkEstimateResponse{
		TotalMaterials:      r.TotalMaterials,
		TotalLabor:          r.TotalLabor,
		GrandTotal:          r.GrandTotal,
		GrandTotalFormatted: calc.FormatCurrency(r.GrandTotal),
		ProjectCount:        r.ProjectCount,
	}
}
