package calc

import (
	"reflect"
	"testing"

	"gravitas_estimator/internal/domain/catalog"
	"gravitas_estimator/internal/domain/entities"
)

func itemByID(items []entities.MaterialItem, id string) (entities.MaterialItem, bool) {
	for _, item := range items {
		if item.MaterialID == id {
			return item, true
		}
	}
	return entities.MaterialItem{}, false
}

func TestCalculateProjectMaterials(t *testing.T) {
	bungalow := entities.Measurements{Unit: "sqm", Area: 50, Rooms: 2, Floors: 1}

	t.Run("Should produce the residential build-up for a bungalow", func(t *testing.T) {
		items := CalculateProjectMaterials("bungalow", bungalow, "metro_manila", false, nil, nil)

		if len(items) == 0 {
			t.Fatal("expected a non-empty take-off")
		}
		chb, ok := itemByID(items, "chb-6in")
		if !ok {
			t.Fatal("expected chb-6in in the take-off")
		}
		// 50 sqm * 2.5 * 1 floor = 125 sqm of wall at 13 blocks per sqm.
		if chb.Quantity != 1625 {
			t.Errorf("expected 1625 blocks, got %v", chb.Quantity)
		}
		if chb.UnitPrice != 18 {
			t.Errorf("expected unit price 18, got %v", chb.UnitPrice)
		}
		if _, ok := itemByID(items, "water-closet"); !ok {
			t.Error("expected water-closet in the residential build-up")
		}
	})

	t.Run("Should fall back to the residential build-up for unknown project types", func(t *testing.T) {
		known := CalculateProjectMaterials("bungalow", bungalow, "metro_manila", false, nil, nil)
		unknown := CalculateProjectMaterials("tree_fort", bungalow, "metro_manila", false, nil, nil)

		if !reflect.DeepEqual(known, unknown) {
			t.Error("expected unknown project types to use the residential build-up")
		}
	})

	t.Run("Should default fence height to 2 meters", func(t *testing.T) {
		items := CalculateProjectMaterials("fence", entities.Measurements{Unit: "sqm", Length: 20}, "metro_manila", false, nil, nil)

		chb, ok := itemByID(items, "chb-6in")
		if !ok {
			t.Fatal("expected chb-6in in the take-off")
		}
		// 20 m * 2 m = 40 sqm of wall at 13 blocks per sqm.
		if chb.Quantity != 520 {
			t.Errorf("expected 520 blocks, got %v", chb.Quantity)
		}
	})

	t.Run("Should default floors to 1", func(t *testing.T) {
		withFloors := CalculateProjectMaterials("bungalow", bungalow, "metro_manila", false, nil, nil)
		noFloors := CalculateProjectMaterials("bungalow", entities.Measurements{Unit: "sqm", Area: 50, Rooms: 2}, "metro_manila", false, nil, nil)

		if !reflect.DeepEqual(withFloors, noFloors) {
			t.Error("expected a zero floor count to behave as 1 floor")
		}
	})

	t.Run("Should scale unit price but not quantity by location", func(t *testing.T) {
		manila := CalculateProjectMaterials("bungalow", bungalow, "metro_manila", false, nil, nil)
		cebu := CalculateProjectMaterials("bungalow", bungalow, "cebu", false, nil, nil)

		if len(manila) != len(cebu) {
			t.Fatalf("expected identical item lists, got %d vs %d", len(manila), len(cebu))
		}
		for i := range manila {
			if manila[i].Quantity != cebu[i].Quantity {
				t.Errorf("%s: quantity changed with location: %v vs %v", manila[i].MaterialID, manila[i].Quantity, cebu[i].Quantity)
			}
			if manila[i].UnitPrice <= cebu[i].UnitPrice {
				t.Errorf("%s: expected cebu unit price below metro manila, got %v vs %v", manila[i].MaterialID, cebu[i].UnitPrice, manila[i].UnitPrice)
			}
		}
	})

	t.Run("Should narrow the take-off to selected materials for premium", func(t *testing.T) {
		selected := []string{"chb-6in", "cement-40kg-ordinary"}
		items := CalculateProjectMaterials("bungalow", bungalow, "metro_manila", true, selected, nil)

		for _, item := range items {
			if item.MaterialID != "chb-6in" && item.MaterialID != "cement-40kg-ordinary" {
				t.Errorf("unexpected material %s in narrowed take-off", item.MaterialID)
			}
		}
		if _, ok := itemByID(items, "chb-6in"); !ok {
			t.Error("expected chb-6in to survive the narrowing")
		}
	})

	t.Run("Should ignore selection and overrides for non-premium", func(t *testing.T) {
		plain := CalculateProjectMaterials("bungalow", bungalow, "metro_manila", false, nil, nil)
		modified := CalculateProjectMaterials("bungalow", bungalow, "metro_manila", false,
			[]string{"chb-6in"}, map[string]float64{"chb-6in": 9999})

		if !reflect.DeepEqual(plain, modified) {
			t.Error("expected premium modifiers to be ignored for non-premium runs")
		}
		for _, item := range plain {
			if item.Customizable {
				t.Errorf("%s: expected customizable false for non-premium", item.MaterialID)
			}
		}
	})

	t.Run("Should apply quantity overrides before pricing for premium", func(t *testing.T) {
		items := CalculateProjectMaterials("bungalow", bungalow, "metro_manila", true,
			nil, map[string]float64{"water-closet": 3})

		wc, ok := itemByID(items, "water-closet")
		if !ok {
			t.Fatal("expected water-closet in the take-off")
		}
		if wc.Quantity != 3 {
			t.Errorf("expected overridden quantity 3, got %v", wc.Quantity)
		}
		if wc.Total != wc.UnitPrice*3 {
			t.Errorf("expected total repriced from the override, got %v", wc.Total)
		}
		if !wc.Customizable {
			t.Error("expected customizable true for premium")
		}
	})

	t.Run("Should skip unknown selected materials", func(t *testing.T) {
		items := CalculateProjectMaterials("bungalow", bungalow, "metro_manila", true,
			[]string{"unobtainium"}, nil)

		if len(items) != 0 {
			t.Errorf("expected an empty take-off, got %d items", len(items))
		}
	})

	t.Run("Should be deterministic across runs", func(t *testing.T) {
		first := CalculateProjectMaterials("swimming_pool", entities.Measurements{Unit: "sqm", Area: 32}, "cebu", true, nil, nil)
		second := CalculateProjectMaterials("swimming_pool", entities.Measurements{Unit: "sqm", Area: 32}, "cebu", true, nil, nil)

		if !reflect.DeepEqual(first, second) {
			t.Error("expected identical inputs to produce identical take-offs")
		}
	})
}

func TestCalculateProjectMaterialsBranches(t *testing.T) {
	m := entities.Measurements{Unit: "sqm", Area: 30}

	cases := []struct {
		projectType string
		wantID      string
	}{
		{"septic_tank", "septic-tank-3"},
		{"underground_parking", "waterproofing-membrane"},
		{"home_basement", "insulation-fiberglass"},
		{"swimming_pool", "water-tank-1000"},
		{"driveway", "base-course"},
		{"walkway", "base-course"},
		{"carport", "angle-bar-2x2"},
		{"garage", "gi-pipe-2"},
		{"dirty_kitchen", "chb-4in"},
	}
	for _, tc := range cases {
		t.Run("Should include "+tc.wantID+" for "+tc.projectType, func(t *testing.T) {
			got := CalculateProjectMaterials(catalog.ProjectType(tc.projectType), m, "metro_manila", false, nil, nil)
			if _, ok := itemByID(got, tc.wantID); !ok {
				t.Errorf("expected %s in the %s take-off", tc.wantID, tc.projectType)
			}
		})
	}
}
