package calc

import (
	"gravitas_estimator/internal/domain/entities"
)

// CalculateBulkEstimate totals a batch of projects in one pass. Every entry
// runs through the same engine with stock measurements (3 rooms, 1 floor)
// and no premium modifiers beyond labor, so a batch of identical entries
// totals to an exact multiple of the single-entry result.
func CalculateBulkEstimate(projects []entities.BulkProjectInput, isPremium bool) entities.BulkEstimateResult {
	var totalMaterials, totalLabor float64

	for _, p := range projects {
		result := CalculateCompleteEstimate(entities.EstimateInputs{
			ProjectName: "Bulk Project",
			Location:    p.Location,
			ProjectType: p.Type,
			Measurements: entities.Measurements{
				Unit:   "sqm",
				Area:   p.Area,
				Rooms:  3,
				Floors: 1,
			},
		}, isPremium)
		totalMaterials += result.MaterialsSubtotal
		totalLabor += result.LaborCost
	}

	return entities.BulkEstimateResult{
		TotalMaterials: totalMaterials,
		TotalLabor:     totalLabor,
		GrandTotal:     totalMaterials + totalLabor,
		ProjectCount:   len(projects),
	}
}
