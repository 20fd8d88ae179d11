package response

import (
	"gravitas_estimator/internal/calc"
	"gravitas_estimator/internal/domain/catalog"
	"gravitas_estimator/internal/domain/entities"
)

type MaterialResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Unit         string   `json:"unit"`
	BasePrice    float64  `json:"base_price"`
	Category     string   `json:"category"`
	Alternatives []string `json:"alternatives,omitempty"`
	Sizes        []string `json:"sizes,omitempty"`
	Grades       []string `json:"grades,omitempty"`
}

type MaterialPriceResponse struct {
	MaterialID   string  `json:"material_id"`
	Location     string  `json:"location"`
	LocationName string  `json:"location_name"`
	Multiplier   float64 `json:"multiplier"`
	BasePrice    float64 `json:"base_price"`
	UnitPrice    float64 `json:"unit_price"`
}

type LocationResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type ProjectTypeResponse struct {
	ID                  string                      `json:"id"`
	Name                string                      `json:"name"`
	Category            string                      `json:"category"`
	Tier                string                      `json:"tier"`
	Description         string                      `json:"description,omitempty"`
	DefaultMeasurements catalog.MeasurementDefaults `json:"default_measurements"`
}

type PlanResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	PriceFormatted string   `json:"price_formatted"`
	MaxEstimates   int      `json:"max_estimates"`
	Features       []string `json:"features,omitempty"`
}

func FromMaterial(m catalog.MaterialOption) MaterialResponse {
	return MaterialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Unit:         m.Unit,
		BasePrice:    m.BasePrice,
		Category:     m.Category,
		Alternatives: m.Alternatives,
		Sizes:        m.Sizes,
		Grades:       m.Grades,
	}
}

func FromMaterials(materials []catalog.MaterialOption) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, FromMaterial(m))
	}
	return out
}

func FromMaterialPrice(m catalog.MaterialOption, location catalog.Location) MaterialPriceResponse {
	return MaterialPriceResponse{
		MaterialID:   m.ID,
		Location:     string(location),
		LocationName: location.Name(),
		Multiplier:   location.Multiplier(),
		BasePrice:    m.BasePrice,
		UnitPrice:    calc.PriceWithLocation(m.BasePrice, location),
	}
}

func FromLocation(l catalog.Location) LocationResponse {
	return LocationResponse{
		ID:         string(l),
		Name:       l.Name(),
		Multiplier: l.Multiplier(),
	}
}

func FromProjectType(id catalog.ProjectType, def catalog.ProjectTypeDefinition) ProjectTypeResponse {
	return ProjectTypeResponse{
		ID:                  string(id),
		Name:                def.Name,
		Category:            def.Category,
		Tier:                string(def.Tier),
		Description:         def.Description,
		DefaultMeasurements: def.DefaultMeasurements,
	}
}

func FromPlan(p entities.SubscriptionPlan) PlanResponse {
	return PlanResponse{
		ID:             string(p.ID),
		Name:           p.Name,
		Price:          p.Price,
		PriceFormatted: p.PriceFormatted,
		MaxEstimates:   p.MaxEstimates,
		Features:       p.Features,
	}
}
