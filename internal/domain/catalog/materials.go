package catalog

// MaterialOption is one purchasable catalog entry. Base prices are whole pesos
// for the reference region (Metro Manila); regional adjustment is applied by
// the pricing helpers, never by editing the catalog.
//
// The catalog is immutable static data, initialized once at process start.

type MaterialOption struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Unit         string   `json:"unit"`
	BasePrice    float64  `json:"base_price"`
	Category     string   `json:"category"`
	Alternatives []string `json:"alternatives,omitempty"`
	Sizes        []string `json:"sizes,omitempty"`
	Grades       []string `json:"grades,omitempty"`
}

// Material units of measure.
const (
	UnitPiece  = "piece"
	UnitBag    = "bag"
	UnitMeter  = "meter"
	UnitSqm    = "sqm"
	UnitCum    = "cu.m"
	UnitKg     = "kg"
	UnitGallon = "gallon"
	UnitBox    = "box"
	UnitSet    = "set"
	UnitPair   = "pair"
)

// MaterialDatabase lists every purchasable material. Prices and ids are the
// reference data the whole estimator is built on; treat entries as
// authoritative, not derivable.
var MaterialDatabase = []MaterialOption{
	// CHB - hollow blocks
	{ID: "chb-4in", Name: `CHB 4" (100mm)`, Unit: UnitPiece, BasePrice: 14, Category: "masonry", Sizes: []string{`4"`, `6"`, `8"`}},
	{ID: "chb-6in", Name: `CHB 6" (150mm)`, Unit: UnitPiece, BasePrice: 18, Category: "masonry", Sizes: []string{`4"`, `6"`, `8"`}},
	{ID: "chb-8in", Name: `CHB 8" (200mm)`, Unit: UnitPiece, BasePrice: 24, Category: "masonry", Sizes: []string{`4"`, `6"`, `8"`}},
	{ID: "chb-10in", Name: `CHB 10" (250mm)`, Unit: UnitPiece, BasePrice: 32, Category: "masonry"},

	// Cement
	{ID: "cement-40kg-ordinary", Name: "Ordinary Portland Cement 40kg", Unit: UnitBag, BasePrice: 240, Category: "concrete", Grades: []string{"Ordinary", "Premium", "Eco"}},
	{ID: "cement-50kg-ordinary", Name: "Ordinary Portland Cement 50kg", Unit: UnitBag, BasePrice: 300, Category: "concrete"},
	{ID: "cement-40kg-premium", Name: "Premium Portland Cement 40kg", Unit: UnitBag, BasePrice: 280, Category: "concrete"},
	{ID: "white-cement", Name: "White Cement 40kg", Unit: UnitBag, BasePrice: 450, Category: "concrete"},
	{ID: "masonry-cement", Name: "Masonry Cement 40kg", Unit: UnitBag, BasePrice: 260, Category: "concrete"},

	// Aggregates
	{ID: "sand-washed", Name: "Washed Sand (S1)", Unit: UnitCum, BasePrice: 5250, Category: "concrete"},
	{ID: "sand-ordinary", Name: "Ordinary Sand", Unit: UnitCum, BasePrice: 4500, Category: "concrete"},
	{ID: "gravel-3-4", Name: `Gravel 3/4" (G1)`, Unit: UnitCum, BasePrice: 4800, Category: "concrete"},
	{ID: "gravel-3-8", Name: `Gravel 3/8"`, Unit: UnitCum, BasePrice: 4900, Category: "concrete"},
	{ID: "crushed-rock", Name: "Crushed Rock (G2)", Unit: UnitCum, BasePrice: 5200, Category: "concrete"},
	{ID: "base-course", Name: "Base Course Material", Unit: UnitCum, BasePrice: 3500, Category: "concrete"},

	// Rebar - deformed bars
	{ID: "rebar-8mm", Name: "Rebar Ø8mm (6m)", Unit: UnitPiece, BasePrice: 145, Category: "steel", Sizes: []string{"8mm", "10mm", "12mm", "16mm", "20mm", "25mm", "32mm"}},
	{ID: "rebar-10mm", Name: "Rebar Ø10mm (6m)", Unit: UnitPiece, BasePrice: 221, Category: "steel"},
	{ID: "rebar-12mm", Name: "Rebar Ø12mm (6m)", Unit: UnitPiece, BasePrice: 318, Category: "steel"},
	{ID: "rebar-16mm", Name: "Rebar Ø16mm (6m)", Unit: UnitPiece, BasePrice: 565, Category: "steel"},
	{ID: "rebar-20mm", Name: "Rebar Ø20mm (6m)", Unit: UnitPiece, BasePrice: 885, Category: "steel"},
	{ID: "rebar-25mm", Name: "Rebar Ø25mm (6m)", Unit: UnitPiece, BasePrice: 1380, Category: "steel"},
	{ID: "rebar-32mm", Name: "Rebar Ø32mm (6m)", Unit: UnitPiece, BasePrice: 2250, Category: "steel"},
	{ID: "tie-wire", Name: "Tie Wire #16 (kg)", Unit: UnitKg, BasePrice: 145, Category: "steel"},

	// GI pipes
	{ID: "gi-pipe-1-2", Name: `GI Pipe 1/2" (6m)`, Unit: UnitPiece, BasePrice: 420, Category: "steel", Sizes: []string{`1/2"`, `3/4"`, `1"`, `1-1/4"`, `1-1/2"`, `2"`, `3"`, `4"`}},
	{ID: "gi-pipe-3-4", Name: `GI Pipe 3/4" (6m)`, Unit: UnitPiece, BasePrice: 550, Category: "steel"},
	{ID: "gi-pipe-1", Name: `GI Pipe 1" (6m)`, Unit: UnitPiece, BasePrice: 720, Category: "steel"},
	{ID: "gi-pipe-1-1-4", Name: `GI Pipe 1-1/4" (6m)`, Unit: UnitPiece, BasePrice: 950, Category: "steel"},
	{ID: "gi-pipe-2", Name: `GI Pipe 2" (6m)`, Unit: UnitPiece, BasePrice: 1450, Category: "steel"},
	{ID: "gi-pipe-3", Name: `GI Pipe 3" (6m)`, Unit: UnitPiece, BasePrice: 2850, Category: "steel"},
	{ID: "gi-pipe-4", Name: `GI Pipe 4" (6m)`, Unit: UnitPiece, BasePrice: 4200, Category: "steel"},

	// Structural steel
	{ID: "angle-bar-2x2", Name: `Angle Bar 2"x2"x3mm (6m)`, Unit: UnitPiece, BasePrice: 680, Category: "steel"},
	{ID: "angle-bar-2x3", Name: `Angle Bar 2"x3"x4mm (6m)`, Unit: UnitPiece, BasePrice: 850, Category: "steel"},
	{ID: "channel-bar-3", Name: `Channel Bar 3" (6m)`, Unit: UnitPiece, BasePrice: 1850, Category: "steel"},
	{ID: "channel-bar-4", Name: `Channel Bar 4" (6m)`, Unit: UnitPiece, BasePrice: 2450, Category: "steel"},
	{ID: "i-beam-6", Name: `I-Beam 6" (6m)`, Unit: UnitPiece, BasePrice: 4200, Category: "steel"},
	{ID: "i-beam-8", Name: `I-Beam 8" (6m)`, Unit: UnitPiece, BasePrice: 6500, Category: "steel"},
	{ID: "flat-bar", Name: `Flat Bar 1/4"x2" (6m)`, Unit: UnitPiece, BasePrice: 850, Category: "steel"},
	{ID: "square-tube-2", Name: `Square Tube 2"x2" (6m)`, Unit: UnitPiece, BasePrice: 950, Category: "steel"},
	{ID: "square-tube-3", Name: `Square Tube 3"x3" (6m)`, Unit: UnitPiece, BasePrice: 1450, Category: "steel"},

	// Lumber & wood
	{ID: "lumber-2x2", Name: `Lumber 2"x2"x8'`, Unit: UnitPiece, BasePrice: 120, Category: "wood"},
	{ID: "lumber-2x3", Name: `Lumber 2"x3"x8'`, Unit: UnitPiece, BasePrice: 180, Category: "wood"},
	{ID: "lumber-2x4", Name: `Lumber 2"x4"x8'`, Unit: UnitPiece, BasePrice: 280, Category: "wood"},
	{ID: "lumber-2x6", Name: `Lumber 2"x6"x8'`, Unit: UnitPiece, BasePrice: 420, Category: "wood"},
	{ID: "ply-1-4", Name: `Ordinary Plywood 1/4" (4x8)`, Unit: UnitPiece, BasePrice: 520, Category: "wood"},
	{ID: "ply-1-2", Name: `Ordinary Plywood 1/2" (4x8)`, Unit: UnitPiece, BasePrice: 850, Category: "wood"},
	{ID: "ply-3-4", Name: `Ordinary Plywood 3/4" (4x8)`, Unit: UnitPiece, BasePrice: 1200, Category: "wood"},
	{ID: "marine-ply", Name: `Marine Plywood 3/4" (4x8)`, Unit: UnitPiece, BasePrice: 1850, Category: "wood"},
	{ID: "mdf-board", Name: `MDF Board 3/4" (4x8)`, Unit: UnitPiece, BasePrice: 950, Category: "wood"},
	{ID: "particle-board", Name: `Particle Board 3/4" (4x8)`, Unit: UnitPiece, BasePrice: 650, Category: "wood"},

	// Roofing
	{ID: "roof-longspan-4", Name: "Longspan Roofing 0.4mm", Unit: UnitSqm, BasePrice: 380, Category: "roofing", Sizes: []string{"0.4mm", "0.5mm", "0.6mm"}},
	{ID: "roof-longspan-5", Name: "Longspan Roofing 0.5mm", Unit: UnitSqm, BasePrice: 450, Category: "roofing"},
	{ID: "roof-longspan-6", Name: "Longspan Roofing 0.6mm", Unit: UnitSqm, BasePrice: 550, Category: "roofing"},
	{ID: "gi-sheet-4", Name: "GI Sheet Corrugated 0.4mm", Unit: UnitSqm, BasePrice: 320, Category: "roofing"},
	{ID: "spanish-tile", Name: "Spanish Clay Tile", Unit: UnitPiece, BasePrice: 85, Category: "roofing"},
	{ID: "asphalt-shingle", Name: "Asphalt Shingles", Unit: UnitSqm, BasePrice: 520, Category: "roofing"},
	{ID: "roof-insulation", Name: "Roof Insulation Foil", Unit: UnitSqm, BasePrice: 85, Category: "roofing"},
	{ID: "gutter-pvc", Name: "PVC Gutter (4m)", Unit: UnitPiece, BasePrice: 380, Category: "roofing"},
	{ID: "gutter-metal", Name: "Metal Gutter (4m)", Unit: UnitPiece, BasePrice: 650, Category: "roofing"},
	{ID: "downspout-pvc", Name: "PVC Downspout (4m)", Unit: UnitPiece, BasePrice: 280, Category: "roofing"},
	{ID: "ridge-roll", Name: "Ridge Roll (4m)", Unit: UnitPiece, BasePrice: 185, Category: "roofing"},
	{ID: "flashing", Name: "Roof Flashing", Unit: UnitMeter, BasePrice: 125, Category: "roofing"},

	// Electrical
	{ID: "wire-14-2", Name: "THHN Wire #14/2 (meter)", Unit: UnitMeter, BasePrice: 25, Category: "electrical"},
	{ID: "wire-12-2", Name: "THHN Wire #12/2 (meter)", Unit: UnitMeter, BasePrice: 35, Category: "electrical"},
	{ID: "wire-10-2", Name: "THHN Wire #10/2 (meter)", Unit: UnitMeter, BasePrice: 52, Category: "electrical"},
	{ID: "wire-8-2", Name: "THHN Wire #8/2 (meter)", Unit: UnitMeter, BasePrice: 78, Category: "electrical"},
	{ID: "wire-6-2", Name: "THHN Wire #6/2 (meter)", Unit: UnitMeter, BasePrice: 125, Category: "electrical"},
	{ID: "conduit-pvc-1-2", Name: `PVC Conduit 1/2" (3m)`, Unit: UnitPiece, BasePrice: 85, Category: "electrical"},
	{ID: "conduit-pvc-3-4", Name: `PVC Conduit 3/4" (3m)`, Unit: UnitPiece, BasePrice: 110, Category: "electrical"},
	{ID: "conduit-pvc-1", Name: `PVC Conduit 1" (3m)`, Unit: UnitPiece, BasePrice: 145, Category: "electrical"},
	{ID: "outlet-universal", Name: "Universal Outlet", Unit: UnitPiece, BasePrice: 85, Category: "electrical"},
	{ID: "outlet-gfci", Name: "GFCI Outlet", Unit: UnitPiece, BasePrice: 450, Category: "electrical"},
	{ID: "switch-single", Name: "Single Switch", Unit: UnitPiece, BasePrice: 65, Category: "electrical"},
	{ID: "switch-three", Name: "Three-way Switch", Unit: UnitPiece, BasePrice: 120, Category: "electrical"},
	{ID: "breaker-20a", Name: "Circuit Breaker 20A", Unit: UnitPiece, BasePrice: 185, Category: "electrical"},
	{ID: "breaker-30a", Name: "Circuit Breaker 30A", Unit: UnitPiece, BasePrice: 250, Category: "electrical"},
	{ID: "breaker-60a", Name: "Circuit Breaker 60A", Unit: UnitPiece, BasePrice: 450, Category: "electrical"},
	{ID: "panel-board-8", Name: "Panel Board 8-circuit", Unit: UnitPiece, BasePrice: 2850, Category: "electrical"},
	{ID: "panel-board-12", Name: "Panel Board 12-circuit", Unit: UnitPiece, BasePrice: 3850, Category: "electrical"},
	{ID: "led-bulb-9w", Name: "LED Bulb 9W", Unit: UnitPiece, BasePrice: 125, Category: "electrical"},
	{ID: "led-bulb-12w", Name: "LED Bulb 12W", Unit: UnitPiece, BasePrice: 165, Category: "electrical"},
	{ID: "led-bulb-18w", Name: "LED Bulb 18W", Unit: UnitPiece, BasePrice: 245, Category: "electrical"},

	// Plumbing
	{ID: "pvc-pipe-1-2", Name: `PVC Pipe 1/2" (3m)`, Unit: UnitPiece, BasePrice: 185, Category: "plumbing"},
	{ID: "pvc-pipe-3-4", Name: `PVC Pipe 3/4" (3m)`, Unit: UnitPiece, BasePrice: 220, Category: "plumbing"},
	{ID: "pvc-pipe-1", Name: `PVC Pipe 1" (3m)`, Unit: UnitPiece, BasePrice: 280, Category: "plumbing"},
	{ID: "pvc-pipe-2", Name: `PVC Pipe 2" (3m)`, Unit: UnitPiece, BasePrice: 380, Category: "plumbing"},
	{ID: "pvc-pipe-3", Name: `PVC Pipe 3" (3m)`, Unit: UnitPiece, BasePrice: 520, Category: "plumbing"},
	{ID: "pvc-pipe-4", Name: `PVC Pipe 4" (3m)`, Unit: UnitPiece, BasePrice: 650, Category: "plumbing"},
	{ID: "pvc-pipe-6", Name: `PVC Pipe 6" (3m)`, Unit: UnitPiece, BasePrice: 1200, Category: "plumbing"},
	{ID: "faucet-standard", Name: "Standard Faucet", Unit: UnitPiece, BasePrice: 350, Category: "plumbing"},
	{ID: "faucet-mixer", Name: "Mixer Faucet", Unit: UnitPiece, BasePrice: 850, Category: "plumbing"},
	{ID: "shower-head", Name: "Shower Head Set", Unit: UnitPiece, BasePrice: 450, Category: "plumbing"},
	{ID: "water-closet", Name: "Water Closet (Toilet)", Unit: UnitPiece, BasePrice: 2850, Category: "plumbing"},
	{ID: "water-closet-premium", Name: "Premium Water Closet", Unit: UnitPiece, BasePrice: 5500, Category: "plumbing"},
	{ID: "sink-stainless", Name: "Stainless Sink", Unit: UnitPiece, BasePrice: 1850, Category: "plumbing"},
	{ID: "sink-ceramic", Name: "Ceramic Sink", Unit: UnitPiece, BasePrice: 2850, Category: "plumbing"},
	{ID: "water-heater", Name: "Electric Water Heater", Unit: UnitPiece, BasePrice: 4500, Category: "plumbing"},
	{ID: "water-tank-500", Name: "Water Tank 500L", Unit: UnitPiece, BasePrice: 3850, Category: "plumbing"},
	{ID: "water-tank-1000", Name: "Water Tank 1000L", Unit: UnitPiece, BasePrice: 6500, Category: "plumbing"},
	{ID: "water-tank-2000", Name: "Water Tank 2000L", Unit: UnitPiece, BasePrice: 11500, Category: "plumbing"},
	{ID: "septic-tank-3", Name: "Septic Tank 3-chamber", Unit: UnitPiece, BasePrice: 18500, Category: "plumbing"},

	// Tiles
	{ID: "tiles-60x60", Name: "Floor Tiles 60x60cm", Unit: UnitPiece, BasePrice: 125, Category: "tiles"},
	{ID: "tiles-50x50", Name: "Floor Tiles 50x50cm", Unit: UnitPiece, BasePrice: 95, Category: "tiles"},
	{ID: "tiles-40x40", Name: "Floor Tiles 40x40cm", Unit: UnitPiece, BasePrice: 65, Category: "tiles"},
	{ID: "tiles-30x30", Name: "Floor Tiles 30x30cm", Unit: UnitPiece, BasePrice: 45, Category: "tiles"},
	{ID: "wall-tiles-20x30", Name: "Wall Tiles 20x30cm", Unit: UnitPiece, BasePrice: 35, Category: "tiles"},
	{ID: "wall-tiles-20x25", Name: "Wall Tiles 20x25cm", Unit: UnitPiece, BasePrice: 28, Category: "tiles"},
	{ID: "tile-adhesive", Name: "Tile Adhesive 25kg", Unit: UnitBag, BasePrice: 285, Category: "tiles"},
	{ID: "tile-grout", Name: "Tile Grout 2kg", Unit: UnitBox, BasePrice: 125, Category: "tiles"},

	// Paint & finishing
	{ID: "paint-latex", Name: "Latex Paint 4L", Unit: UnitGallon, BasePrice: 650, Category: "paint"},
	{ID: "paint-enamel", Name: "Enamel Paint 4L", Unit: UnitGallon, BasePrice: 780, Category: "paint"},
	{ID: "paint-weatherguard", Name: "Weatherguard Paint 4L", Unit: UnitGallon, BasePrice: 950, Category: "paint"},
	{ID: "primer", Name: "Primer 4L", Unit: UnitGallon, BasePrice: 520, Category: "paint"},
	{ID: "thinner", Name: "Paint Thinner 4L", Unit: UnitGallon, BasePrice: 285, Category: "paint"},
	{ID: "cement-board", Name: "Cement Board 4x8", Unit: UnitPiece, BasePrice: 1250, Category: "finishing"},
	{ID: "gypsum-board", Name: "Gypsum Board 4x8", Unit: UnitPiece, BasePrice: 450, Category: "finishing"},

	// Hardware
	{ID: "nails-1", Name: `Common Nails 1" (kg)`, Unit: UnitKg, BasePrice: 85, Category: "hardware"},
	{ID: "nails-2", Name: `Common Nails 2" (kg)`, Unit: UnitKg, BasePrice: 92, Category: "hardware"},
	{ID: "nails-3", Name: `Common Nails 3" (kg)`, Unit: UnitKg, BasePrice: 98, Category: "hardware"},
	{ID: "concrete-nails", Name: "Concrete Nails (kg)", Unit: UnitKg, BasePrice: 125, Category: "hardware"},
	{ID: "door-knob", Name: "Door Knob Set", Unit: UnitSet, BasePrice: 450, Category: "hardware"},
	{ID: "door-knob-premium", Name: "Premium Door Knob Set", Unit: UnitSet, BasePrice: 1250, Category: "hardware"},
	{ID: "door-hinges", Name: "Door Hinges (pair)", Unit: UnitPair, BasePrice: 185, Category: "hardware"},
	{ID: "window-lock", Name: "Window Lock", Unit: UnitPiece, BasePrice: 125, Category: "hardware"},
	{ID: "cabinet-handle", Name: "Cabinet Handle", Unit: UnitPiece, BasePrice: 85, Category: "hardware"},
	{ID: "door-closer", Name: "Door Closer", Unit: UnitPiece, BasePrice: 850, Category: "hardware"},
	{ID: "padlock-heavy", Name: "Heavy Duty Padlock", Unit: UnitPiece, BasePrice: 285, Category: "hardware"},

	// Glass
	{ID: "glass-clear-4", Name: "Clear Glass 4mm", Unit: UnitSqm, BasePrice: 850, Category: "glass"},
	{ID: "glass-clear-6", Name: "Clear Glass 6mm", Unit: UnitSqm, BasePrice: 1250, Category: "glass"},
	{ID: "glass-tempered", Name: "Tempered Glass 10mm", Unit: UnitSqm, BasePrice: 2850, Category: "glass"},
	{ID: "glass-louver", Name: "Louver Glass", Unit: UnitPiece, BasePrice: 125, Category: "glass"},

	// Waterproofing
	{ID: "waterproofing-membrane", Name: "Waterproofing Membrane", Unit: UnitSqm, BasePrice: 185, Category: "waterproofing"},
	{ID: "waterproofing-cement", Name: "Waterproofing Cement", Unit: UnitKg, BasePrice: 125, Category: "waterproofing"},

	// Insulation
	{ID: "insulation-fiberglass", Name: "Fiberglass Insulation", Unit: UnitSqm, BasePrice: 145, Category: "insulation"},
	{ID: "insulation-foam", Name: "Foam Insulation", Unit: UnitSqm, BasePrice: 225, Category: "insulation"},
}

// MaterialCategory is a display grouping for the catalog surface.
type MaterialCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var MaterialCategories = []MaterialCategory{
	{ID: "concrete", Name: "Concrete & Aggregates"},
	{ID: "masonry", Name: "Masonry (CHB)"},
	{ID: "steel", Name: "Steel & Metal"},
	{ID: "wood", Name: "Wood & Lumber"},
	{ID: "roofing", Name: "Roofing"},
	{ID: "electrical", Name: "Electrical"},
	{ID: "plumbing", Name: "Plumbing"},
	{ID: "tiles", Name: "Tiles"},
	{ID: "paint", Name: "Paint & Coatings"},
	{ID: "finishing", Name: "Finishing Materials"},
	{ID: "hardware", Name: "Hardware"},
	{ID: "glass", Name: "Glass"},
	{ID: "waterproofing", Name: "Waterproofing"},
	{ID: "insulation", Name: "Insulation"},
}

var materialsByID = func() map[string]MaterialOption {
	m := make(map[string]MaterialOption, len(MaterialDatabase))
	for _, mat := range MaterialDatabase {
		m[mat.ID] = mat
	}
	return m
}()

// FindMaterial resolves a catalog entry by id. Callers are expected to skip
// unknown ids silently; a catalog miss means "not offered", never an error.
func FindMaterial(id string) (MaterialOption, bool) {
	mat, ok := materialsByID[id]
	return mat, ok
}

// MaterialsByCategory returns all catalog entries in a category, in catalog
// order.
func MaterialsByCategory(category string) []MaterialOption {
	var out []MaterialOption
	for _, mat := range MaterialDatabase {
		if mat.Category == category {
			out = append(out, mat)
		}
	}
	return out
}
