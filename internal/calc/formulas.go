// Package calc is the estimation engine: pure quantity formulas, the
// per-project-type material rules, and the cost roll-up. Everything here is
// deterministic and side-effect free; the only state it reads is the
// immutable catalog tables.
package calc

import (
	"math"

	"github.com/shopspring/decimal"

	"gravitas_estimator/internal/domain/catalog"
)

// WallThickness is the CHB nominal size class driving blocks-per-m².
type WallThickness string

const (
	Wall4in WallThickness = "4in"
	Wall6in WallThickness = "6in"
	Wall8in WallThickness = "8in"
)

// CHBCalculation is the masonry wall quantity take-off.
type CHBCalculation struct {
	Area        float64       `json:"area"`
	Thickness   WallThickness `json:"thickness"`
	CHBCount    float64       `json:"chb_count"`
	CementBags  float64       `json:"cement_bags"`
	SandVolume  float64       `json:"sand_volume"`
	RebarLength float64       `json:"rebar_length"`
	RebarPieces float64       `json:"rebar_pieces"`
}

// ConcreteCalculation is the Class A (1:2:4 mix) slab take-off.
type ConcreteCalculation struct {
	Length         float64 `json:"length"`
	Width          float64 `json:"width"`
	Thickness      float64 `json:"thickness"`
	Volume         float64 `json:"volume"`
	CementBags40kg float64 `json:"cement_bags_40kg"`
	CementBags50kg float64 `json:"cement_bags_50kg"`
	SandVolume     float64 `json:"sand_volume"`
	GravelVolume   float64 `json:"gravel_volume"`
}

// RebarCalculation is the reinforcement take-off for a slab area.
type RebarCalculation struct {
	Length   float64 `json:"length"`
	Pieces   float64 `json:"pieces"`
	Diameter int     `json:"diameter"`
}

// CalculateCHB computes masonry wall quantities for a wall area in m².
// The coefficients encode the standard Philippine CHB take-off (blocks per
// m² by thickness, 3 cement bags and 0.04 m³ sand per 100 blocks, 2.5 m of
// rebar per m² in 6 m stock lengths) and must not be altered.
func CalculateCHB(area float64, thickness WallThickness) CHBCalculation {
	blocksPerSqm := 10.0
	switch thickness {
	case Wall6in:
		blocksPerSqm = 13
	case Wall4in:
		blocksPerSqm = 17
	}
	chbCount := ceil(area * blocksPerSqm)
	cementBags := ceil(chbCount / 100 * 3)
	sandVolume := round2(chbCount / 100 * 0.04)
	rebarLength := ceil(area * 2.5)
	rebarPieces := ceil(rebarLength / 6)

	return CHBCalculation{
		Area:        area,
		Thickness:   thickness,
		CHBCount:    chbCount,
		CementBags:  cementBags,
		SandVolume:  sandVolume,
		RebarLength: rebarLength,
		RebarPieces: rebarPieces,
	}
}

// CalculateConcrete computes Class A concrete quantities for a
// length×width×thickness pour (all meters): 7 bags of 40 kg cement (or 5.6
// of 50 kg), 0.42 m³ sand and 0.83 m³ gravel per m³ of concrete.
func CalculateConcrete(length, width, thickness float64) ConcreteCalculation {
	volume := round2(length * width * thickness)
	return ConcreteCalculation{
		Length:         length,
		Width:          width,
		Thickness:      thickness,
		Volume:         volume,
		CementBags40kg: ceil(volume * 7),
		CementBags50kg: ceil(volume * 5.6),
		SandVolume:     round2(volume * 0.42),
		GravelVolume:   round2(volume * 0.83),
	}
}

// CalculateRebar computes reinforcement for a slab area: 2.5 m of bar per m²,
// cut from 6 m stock lengths.
func CalculateRebar(area float64, diameter int) RebarCalculation {
	length := ceil(area * 2.5)
	return RebarCalculation{
		Length:   length,
		Pieces:   ceil(length / 6),
		Diameter: diameter,
	}
}

// footprintSide derives an effective square side from an area, used whenever
// a branch needs explicit dimensions that the caller did not supply. The
// square-footprint assumption is deliberate; negative areas clamp to zero so
// no NaN can enter a take-off.
func footprintSide(area float64) float64 {
	if area <= 0 || math.IsNaN(area) {
		return 0
	}
	return math.Sqrt(area)
}

// ceil rounds up to a whole purchasable unit. Non-finite inputs collapse to
// zero rather than poisoning the totals.
func ceil(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Ceil(v)
}

// round2 rounds a continuous volume to 2 decimals, half up, using decimal
// arithmetic to avoid binary-float drift.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// roundPeso rounds a currency amount to the whole peso, half up.
func roundPeso(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(0).Float64()
	return f
}

// PriceWithLocation applies the regional multiplier to a base price and
// rounds to the whole peso.
func PriceWithLocation(basePrice float64, location catalog.Location) float64 {
	return roundPeso(basePrice * location.Multiplier())
}

// MaterialPrice resolves a material's location-adjusted unit price, or 0 for
// an unknown material id.
func MaterialPrice(materialID string, location catalog.Location) float64 {
	mat, ok := catalog.FindMaterial(materialID)
	if !ok {
		return 0
	}
	return PriceWithLocation(mat.BasePrice, location)
}
