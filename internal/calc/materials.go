package calc

import (
	"gravitas_estimator/internal/domain/catalog"
	"gravitas_estimator/internal/domain/entities"
)

// materialList accumulates line items for one take-off run. It carries the
// pricing context so every add() applies the same location multiplier and
// premium gating.
type materialList struct {
	multiplier float64
	isPremium  bool
	selected   map[string]struct{}
	overrides  map[string]float64
	items      []entities.MaterialItem
}

func newMaterialList(location catalog.Location, isPremium bool, selectedIDs []string, overrides map[string]float64) *materialList {
	l := &materialList{
		multiplier: location.Multiplier(),
		isPremium:  isPremium,
		overrides:  overrides,
		items:      []entities.MaterialItem{},
	}
	if isPremium && selectedIDs != nil {
		l.selected = make(map[string]struct{}, len(selectedIDs))
		for _, id := range selectedIDs {
			l.selected[id] = struct{}{}
		}
	}
	return l
}

// add appends one line item. Unknown ids are skipped silently, and for
// premium runs a selection allowlist narrows the list while quantity
// overrides replace the computed quantity before pricing.
func (l *materialList) add(materialID string, quantity float64) {
	mat, ok := catalog.FindMaterial(materialID)
	if !ok {
		return
	}
	if l.selected != nil {
		if _, ok := l.selected[materialID]; !ok {
			return
		}
	}
	if l.isPremium {
		if q, ok := l.overrides[materialID]; ok {
			quantity = q
		}
	}
	price := mat.BasePrice * l.multiplier
	l.items = append(l.items, entities.MaterialItem{
		MaterialID:   materialID,
		Name:         mat.Name,
		Category:     mat.Category,
		Quantity:     quantity,
		Unit:         mat.Unit,
		UnitPrice:    roundPeso(price),
		Total:        roundPeso(quantity * price),
		Included:     true,
		Customizable: l.isPremium,
	})
}

// CalculateProjectMaterials produces the material take-off for a project
// type. Each branch encodes the take-off rules for that structure; project
// types without a dedicated branch fall through to the general residential
// build-up. Identical inputs always produce an identical item list.
func CalculateProjectMaterials(
	projectType catalog.ProjectType,
	m entities.Measurements,
	location catalog.Location,
	isPremium bool,
	selectedIDs []string,
	overrides map[string]float64,
) []entities.MaterialItem {
	list := newMaterialList(location, isPremium, selectedIDs, overrides)

	area := m.Area
	length := m.Length
	height := m.Height
	floors := float64(m.Floors)
	if floors == 0 {
		floors = 1
	}

	switch projectType {
	case "fence", "perimeter_wall", "compound_fence":
		wallHeight := height
		if wallHeight == 0 {
			wallHeight = 2
		}
		wallArea := length * wallHeight
		chb := CalculateCHB(wallArea, Wall6in)
		list.add("chb-6in", chb.CHBCount)
		list.add("cement-40kg-ordinary", chb.CementBags)
		list.add("sand-washed", chb.SandVolume)
		list.add("rebar-10mm", chb.RebarPieces)

		footing := CalculateConcrete(length*0.4, 0.4, 0.4)
		list.add("cement-40kg-ordinary", footing.CementBags40kg)
		list.add("gravel-3-4", footing.GravelVolume)

		list.add("cement-40kg-ordinary", ceil(wallArea*0.15))
		list.add("sand-washed", ceil(wallArea*0.02*100)/100)

	case "septic_tank":
		side := footprintSide(area)
		c := CalculateConcrete(side, side, 2)
		list.add("cement-40kg-ordinary", c.CementBags40kg*1.5)
		list.add("sand-washed", c.SandVolume*1.5)
		list.add("gravel-3-4", c.GravelVolume*1.5)
		list.add("rebar-12mm", ceil(area*2))
		list.add("pvc-pipe-4", 3)
		list.add("pvc-pipe-6", 2)
		list.add("septic-tank-3", 1)

	case "underground_parking":
		side := footprintSide(area)
		c := CalculateConcrete(side, side, 0.25)
		list.add("cement-40kg-ordinary", c.CementBags40kg*2)
		list.add("sand-washed", c.SandVolume*2)
		list.add("gravel-3-4", c.GravelVolume*2)
		list.add("rebar-16mm", ceil(area*3))
		list.add("rebar-20mm", ceil(area*1.5))
		list.add("waterproofing-membrane", area*1.2)
		list.add("conduit-pvc-1", ceil(area/20))
		list.add("led-bulb-18w", ceil(area/15))

	case "home_basement":
		side := footprintSide(area)
		c := CalculateConcrete(side, side, 0.2)
		list.add("cement-40kg-ordinary", c.CementBags40kg*2.5)
		list.add("sand-washed", c.SandVolume*2.5)
		list.add("gravel-3-4", c.GravelVolume*2.5)
		list.add("rebar-16mm", ceil(area*2.5))
		list.add("waterproofing-membrane", area*1.3)
		list.add("waterproofing-cement", ceil(area*2))
		list.add("insulation-fiberglass", area)
		list.add("conduit-pvc-3-4", ceil(area/15))
		list.add("outlet-universal", ceil(area/20))

	case "swimming_pool":
		side := footprintSide(area)
		c := CalculateConcrete(side, side, 0.3)
		list.add("cement-40kg-ordinary", c.CementBags40kg*2)
		list.add("sand-washed", c.SandVolume*2)
		list.add("gravel-3-4", c.GravelVolume*2)
		list.add("rebar-12mm", ceil(area*4))
		list.add("waterproofing-membrane", area*1.5)
		list.add("waterproofing-cement", ceil(area*3))
		list.add("pvc-pipe-2", ceil(area/10))
		list.add("pvc-pipe-3", 2)
		list.add("water-tank-1000", 1)

	case "driveway", "walkway":
		side := footprintSide(area)
		c := CalculateConcrete(side, side, 0.1)
		list.add("cement-40kg-ordinary", c.CementBags40kg)
		list.add("sand-washed", c.SandVolume)
		list.add("gravel-3-4", c.GravelVolume)
		list.add("base-course", area*0.15)

	case "carport", "garage":
		side := footprintSide(area)
		c := CalculateConcrete(side, side, 0.1)
		list.add("cement-40kg-ordinary", c.CementBags40kg)
		list.add("sand-washed", c.SandVolume)
		list.add("gravel-3-4", c.GravelVolume)
		list.add("rebar-10mm", ceil(area*1.5))
		list.add("roof-longspan-4", area*1.3)
		list.add("gi-pipe-2", 6)
		list.add("angle-bar-2x2", 8)

	case "dirty_kitchen":
		side := footprintSide(area)
		c := CalculateConcrete(side, side, 0.08)
		list.add("cement-40kg-ordinary", c.CementBags40kg)
		list.add("sand-washed", c.SandVolume)
		list.add("gravel-3-4", c.GravelVolume)
		list.add("chb-4in", ceil(area*12))
		list.add("rebar-10mm", ceil(area*0.5))
		list.add("roof-longspan-4", area*1.2)
		list.add("pvc-pipe-2", 2)
		list.add("outlet-universal", 2)

	default:
		// General residential build-up: walls at 2.5 m² of wall per m² of
		// floor per storey, a full ground slab, roofing, and rough-in
		// electrical, plumbing and finishes scaled off the floor area.
		wallArea := area * 2.5 * floors
		chb := CalculateCHB(wallArea, Wall6in)
		list.add("chb-6in", chb.CHBCount)
		list.add("cement-40kg-ordinary", chb.CementBags)
		list.add("sand-washed", chb.SandVolume)
		list.add("rebar-10mm", chb.RebarPieces)

		side := footprintSide(area)
		slab := CalculateConcrete(side, side, 0.15)
		list.add("cement-40kg-ordinary", slab.CementBags40kg)
		list.add("sand-washed", slab.SandVolume)
		list.add("gravel-3-4", slab.GravelVolume)

		list.add("roof-longspan-4", area*1.5*floors)
		list.add("ply-1-2", ceil(area/3.6))

		list.add("wire-14-2", area*3)
		list.add("outlet-universal", ceil(area/15))
		list.add("switch-single", ceil(area/20))

		list.add("pvc-pipe-1-2", area*0.5)
		list.add("pvc-pipe-3-4", area*0.3)
		list.add("faucet-standard", 2)
		list.add("water-closet", 1)

		list.add("tiles-30x30", ceil(area*8))
		list.add("paint-latex", ceil(area*0.3))
	}

	return list.items
}
