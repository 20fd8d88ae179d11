package catalog

// Location is a first-level Philippine administrative division. Every location
// maps to exactly one price multiplier, applied multiplicatively to material
// base prices. Metro Manila is the reference region at 1.0.

type Location string

// LocationMultipliers covers all 82 provinces. Multipliers reflect typical
// regional material price spread against the Metro Manila reference.
var LocationMultipliers = map[Location]float64{
	// NCR and CALABARZON
	"metro_manila": 1.0,
	"cavite":       0.96,
	"laguna":       0.95,
	"batangas":     0.94,
	"rizal":        0.95,
	"quezon":       0.88,

	// Central Luzon
	"bataan":      0.93,
	"bulacan":     0.95,
	"pampanga":    0.94,
	"tarlac":      0.90,
	"zambales":    0.89,
	"nueva_ecija": 0.88,
	"aurora":      0.85,

	// Ilocos Region
	"ilocos_norte": 0.87,
	"ilocos_sur":   0.87,
	"la_union":     0.88,
	"pangasinan":   0.89,

	// Cagayan Valley
	"cagayan":       0.85,
	"isabela":       0.86,
	"nueva_vizcaya": 0.84,
	"quirino":       0.83,
	"batanes":       0.90,

	// Cordillera
	"baguio":            0.97,
	"benguet":           0.88,
	"mountain_province": 0.85,
	"ifugao":            0.84,
	"abra":              0.83,
	"kalinga":           0.84,
	"apayao":            0.83,

	// MIMAROPA
	"marinduque":         0.87,
	"occidental_mindoro": 0.86,
	"oriental_mindoro":   0.87,
	"palawan":            0.88,
	"romblon":            0.86,

	// Bicol
	"albay":           0.88,
	"camarines_norte": 0.87,
	"camarines_sur":   0.88,
	"catanduanes":     0.89,
	"masbate":         0.86,
	"sorsogon":        0.87,

	// Western Visayas
	"aklan":             0.89,
	"antique":           0.87,
	"capiz":             0.88,
	"guimaras":          0.89,
	"iloilo":            0.93,
	"negros_occidental": 0.92,

	// Central Visayas
	"bohol":           0.90,
	"cebu":            0.95,
	"davao":           0.92,
	"negros_oriental": 0.91,
	"siquijor":        0.88,

	// Eastern Visayas
	"biliran":        0.87,
	"eastern_samar":  0.86,
	"leyte":          0.89,
	"northern_samar": 0.85,
	"samar":          0.86,
	"southern_leyte": 0.87,

	// Zamboanga Peninsula
	"zamboanga_del_norte": 0.86,
	"zamboanga_del_sur":   0.87,
	"zamboanga_sibugay":   0.85,

	// Northern Mindanao
	"bukidnon":           0.88,
	"camiguin":           0.89,
	"lanao_del_norte":    0.87,
	"misamis_occidental": 0.88,
	"misamis_oriental":   0.89,

	// Davao Region
	"davao_de_oro":     0.89,
	"davao_del_norte":  0.90,
	"davao_del_sur":    0.91,
	"davao_occidental": 0.88,
	"davao_oriental":   0.87,

	// SOCCSKSARGEN
	"cotabato":       0.87,
	"sarangani":      0.86,
	"south_cotabato": 0.88,
	"sultan_kudarat": 0.86,

	// Caraga
	"agusan_del_norte":  0.88,
	"agusan_del_sur":    0.87,
	"dinagat_islands":   0.85,
	"surigao_del_norte": 0.87,
	"surigao_del_sur":   0.88,

	// BARMM
	"basilan":       0.85,
	"lanao_del_sur": 0.84,
	"maguindanao":   0.83,
	"sulu":          0.82,
	"tawi_tawi":     0.81,
}

var LocationNames = map[Location]string{
	"metro_manila":        "Metro Manila",
	"cavite":              "Cavite",
	"laguna":              "Laguna",
	"batangas":            "Batangas",
	"rizal":               "Rizal",
	"quezon":              "Quezon",
	"bataan":              "Bataan",
	"bulacan":             "Bulacan",
	"pampanga":            "Pampanga",
	"tarlac":              "Tarlac",
	"zambales":            "Zambales",
	"nueva_ecija":         "Nueva Ecija",
	"aurora":              "Aurora",
	"ilocos_norte":        "Ilocos Norte",
	"ilocos_sur":          "Ilocos Sur",
	"la_union":            "La Union",
	"pangasinan":          "Pangasinan",
	"cagayan":             "Cagayan",
	"isabela":             "Isabela",
	"nueva_vizcaya":       "Nueva Vizcaya",
	"quirino":             "Quirino",
	"batanes":             "Batanes",
	"baguio":              "Baguio",
	"benguet":             "Benguet",
	"mountain_province":   "Mountain Province",
	"ifugao":              "Ifugao",
	"abra":                "Abra",
	"kalinga":             "Kalinga",
	"apayao":              "Apayao",
	"marinduque":          "Marinduque",
	"occidental_mindoro":  "Occidental Mindoro",
	"oriental_mindoro":    "Oriental Mindoro",
	"palawan":             "Palawan",
	"romblon":             "Romblon",
	"albay":               "Albay",
	"camarines_norte":     "Camarines Norte",
	"camarines_sur":       "Camarines Sur",
	"catanduanes":         "Catanduanes",
	"masbate":             "Masbate",
	"sorsogon":            "Sorsogon",
	"aklan":               "Aklan",
	"antique":             "Antique",
	"capiz":               "Capiz",
	"guimaras":            "Guimaras",
	"iloilo":              "Iloilo",
	"negros_occidental":   "Negros Occidental",
	"bohol":               "Bohol",
	"cebu":                "Cebu",
	"davao":               "Davao",
	"negros_oriental":     "Negros Oriental",
	"siquijor":            "Siquijor",
	"biliran":             "Biliran",
	"eastern_samar":       "Eastern Samar",
	"leyte":               "Leyte",
	"northern_samar":      "Northern Samar",
	"samar":               "Samar",
	"southern_leyte":      "Southern Leyte",
	"zamboanga_del_norte": "Zamboanga del Norte",
	"zamboanga_del_sur":   "Zamboanga del Sur",
	"zamboanga_sibugay":   "Zamboanga Sibugay",
	"bukidnon":            "Bukidnon",
	"camiguin":            "Camiguin",
	"lanao_del_norte":     "Lanao del Norte",
	"misamis_occidental":  "Misamis Occidental",
	"misamis_oriental":    "Misamis Oriental",
	"davao_de_oro":        "Davao de Oro",
	"davao_del_norte":     "Davao del Norte",
	"davao_del_sur":       "Davao del Sur",
	"davao_occidental":    "Davao Occidental",
	"davao_oriental":      "Davao Oriental",
	"cotabato":            "Cotabato",
	"sarangani":           "Sarangani",
	"south_cotabato":      "South Cotabato",
	"sultan_kudarat":      "Sultan Kudarat",
	"agusan_del_norte":    "Agusan del Norte",
	"agusan_del_sur":      "Agusan del Sur",
	"dinagat_islands":     "Dinagat Islands",
	"surigao_del_norte":   "Surigao del Norte",
	"surigao_del_sur":     "Surigao del Sur",
	"basilan":             "Basilan",
	"lanao_del_sur":       "Lanao del Sur",
	"maguindanao":         "Maguindanao",
	"sulu":                "Sulu",
	"tawi_tawi":           "Tawi-Tawi",
}

// Multiplier returns the regional price multiplier for loc. Unrecognized
// locations default to 1.0; a calculation is never rejected over a region the
// table does not know.
func (l Location) Multiplier() float64 {
	if m, ok := LocationMultipliers[l]; ok {
		return m
	}
	return 1.0
}

// Name returns the display name for loc, or the raw value when unknown.
func (l Location) Name() string {
	if n, ok := LocationNames[l]; ok {
		return n
	}
	return string(l)
}
