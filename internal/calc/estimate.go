package calc

import (
	"gravitas_estimator/internal/domain/entities"
)

// CalculateCompleteEstimate runs the full take-off and cost roll-up for one
// project. Premium-only modifiers (labor, equipment, overhead, contingency,
// profit, material selection and quantity overrides) are ignored for
// non-premium runs. A zero modifier means "not applied" and the matching
// component stays absent from the result.
func CalculateCompleteEstimate(inputs entities.EstimateInputs, isPremium bool) entities.CalculationResult {
	materials := CalculateProjectMaterials(
		inputs.ProjectType,
		inputs.Measurements,
		inputs.Location,
		isPremium,
		inputs.SelectedMaterials,
		inputs.CustomMaterialQuantities,
	)

	var subtotal float64
	for _, item := range materials {
		if item.Included {
			subtotal += item.Total
		}
	}

	result := entities.CalculationResult{
		Materials:         materials,
		MaterialsSubtotal: subtotal,
		GrandTotal:        subtotal,
	}
	if !isPremium {
		return result
	}

	var labor, equipment, overhead, contingency float64
	if inputs.IncludeLabor && inputs.LaborRate != 0 && inputs.LaborDays != 0 {
		labor = inputs.LaborRate * inputs.LaborDays
	}
	if inputs.EquipmentCost != 0 {
		equipment = inputs.EquipmentCost
	}
	if inputs.OverheadPercent != 0 {
		overhead = roundPeso(subtotal * inputs.OverheadPercent / 100)
	}
	if inputs.ContingencyPercent != 0 {
		contingency = roundPeso(subtotal * inputs.ContingencyPercent / 100)
	}

	// Profit compounds over every other component, so it is computed last.
	var profit float64
	if inputs.ProfitPercent != 0 {
		profit = roundPeso((subtotal + labor + equipment + overhead + contingency) * inputs.ProfitPercent / 100)
	}

	result.LaborCost = labor
	result.EquipmentCost = equipment
	result.OverheadAmount = overhead
	result.ContingencyAmount = contingency
	result.ProfitAmount = profit
	result.GrandTotal = subtotal + labor + equipment + overhead + contingency + profit
	return result
}
