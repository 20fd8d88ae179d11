package catalog

import "sort"

// Tier is a subscription level. Ordering is free < standard < premium.
type Tier string

const (
	TierFree     Tier = "free"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

var tierRank = map[Tier]int{TierFree: 0, TierStandard: 1, TierPremium: 2}

// AtLeast reports whether t grants access to features requiring min.
// Unknown tiers rank below free.
func (t Tier) AtLeast(min Tier) bool {
	return tierRank[t] >= tierRank[min]
}

// ProjectType is an enumerated construction project kind.
type ProjectType string

// MeasurementDefaults pre-populates the estimate builder when a project type
// is chosen. Zero fields mean "no default".
type MeasurementDefaults struct {
	Area   float64 `json:"area,omitempty"`
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Rooms  int     `json:"rooms,omitempty"`
	Floors int     `json:"floors,omitempty"`
}

// ProjectTypeDefinition is the registry entry for one project type: display
// metadata, the minimum subscription tier required to select it, and builder
// defaults. Tier eligibility is enforced at selection/creation time, not by
// the calculation engine.
type ProjectTypeDefinition struct {
	Name                string              `json:"name"`
	Category            string              `json:"category"`
	Tier                Tier                `json:"tier"`
	Description         string              `json:"description"`
	DefaultMeasurements MeasurementDefaults `json:"default_measurements"`
}

var ProjectTypeDefinitions = map[ProjectType]ProjectTypeDefinition{
	// Residential
	"bungalow":           {Name: "Bungalow (Single Storey)", Category: "Residential", Tier: TierFree, Description: "Single storey residential house", DefaultMeasurements: MeasurementDefaults{Floors: 1, Rooms: 3}},
	"two_storey":         {Name: "Two Storey House", Category: "Residential", Tier: TierFree, Description: "Two storey residential house", DefaultMeasurements: MeasurementDefaults{Floors: 2, Rooms: 4}},
	"three_storey":       {Name: "Three Storey House", Category: "Residential", Tier: TierStandard, Description: "Three storey residential house", DefaultMeasurements: MeasurementDefaults{Floors: 3, Rooms: 6}},
	"townhouse":          {Name: "Townhouse", Category: "Residential", Tier: TierStandard, Description: "Attached townhouse unit", DefaultMeasurements: MeasurementDefaults{Floors: 2, Rooms: 3}},
	"duplex":             {Name: "Duplex", Category: "Residential", Tier: TierStandard, Description: "Two-unit residential building", DefaultMeasurements: MeasurementDefaults{Floors: 2, Rooms: 4}},
	"apartment":          {Name: "Apartment Building", Category: "Residential", Tier: TierStandard, Description: "Multi-unit apartment building", DefaultMeasurements: MeasurementDefaults{Floors: 3, Rooms: 12}},
	"condominium":        {Name: "Condominium", Category: "Residential", Tier: TierPremium, Description: "High-rise condominium building", DefaultMeasurements: MeasurementDefaults{Floors: 10, Rooms: 40}},
	"home_basement":      {Name: "Home Basement", Category: "Residential", Tier: TierPremium, Description: "Basement construction or renovation", DefaultMeasurements: MeasurementDefaults{Area: 50, Floors: 1}},

	// Renovation
	"bedroom_addition":    {Name: "Bedroom Addition", Category: "Renovation", Tier: TierFree, Description: "Add a new bedroom to existing house", DefaultMeasurements: MeasurementDefaults{Area: 12, Rooms: 1}},
	"kitchen_renovation":  {Name: "Kitchen Renovation", Category: "Renovation", Tier: TierFree, Description: "Kitchen remodeling project", DefaultMeasurements: MeasurementDefaults{Area: 10, Rooms: 1}},
	"bathroom_renovation": {Name: "Bathroom Renovation", Category: "Renovation", Tier: TierFree, Description: "Bathroom remodeling project", DefaultMeasurements: MeasurementDefaults{Area: 5, Rooms: 1}},
	"roofing_replacement": {Name: "Roofing Replacement", Category: "Renovation", Tier: TierStandard, Description: "Complete roof replacement", DefaultMeasurements: MeasurementDefaults{Area: 80}},

	// Outdoor
	"dirty_kitchen":  {Name: "Dirty Kitchen", Category: "Outdoor", Tier: TierFree, Description: "Outdoor cooking area (kusina)", DefaultMeasurements: MeasurementDefaults{Area: 8, Rooms: 1}},
	"carport":        {Name: "Carport", Category: "Outdoor", Tier: TierFree, Description: "Open car shelter", DefaultMeasurements: MeasurementDefaults{Area: 15}},
	"garage":         {Name: "Garage (Enclosed)", Category: "Outdoor", Tier: TierStandard, Description: "Enclosed garage structure", DefaultMeasurements: MeasurementDefaults{Area: 20}},
	"fence":          {Name: "Fence / Wall", Category: "Outdoor", Tier: TierFree, Description: "Perimeter fence or wall", DefaultMeasurements: MeasurementDefaults{Length: 20, Height: 2}},
	"gate":           {Name: "Gate", Category: "Outdoor", Tier: TierFree, Description: "Main entrance gate", DefaultMeasurements: MeasurementDefaults{Area: 4}},
	"driveway":       {Name: "Driveway", Category: "Outdoor", Tier: TierFree, Description: "Concrete driveway", DefaultMeasurements: MeasurementDefaults{Area: 30}},
	"walkway":        {Name: "Walkway / Path", Category: "Outdoor", Tier: TierFree, Description: "Garden walkway or path", DefaultMeasurements: MeasurementDefaults{Area: 10}},
	"patio":          {Name: "Patio", Category: "Outdoor", Tier: TierStandard, Description: "Outdoor patio area", DefaultMeasurements: MeasurementDefaults{Area: 20}},
	"deck":           {Name: "Deck / Balcony Floor", Category: "Outdoor", Tier: TierStandard, Description: "Wooden or concrete deck", DefaultMeasurements: MeasurementDefaults{Area: 15}},
	"balcony":        {Name: "Balcony Addition", Category: "Outdoor", Tier: TierStandard, Description: "Add a balcony to existing structure", DefaultMeasurements: MeasurementDefaults{Area: 8}},
	"pergola":        {Name: "Pergola", Category: "Outdoor", Tier: TierStandard, Description: "Open outdoor structure with roof", DefaultMeasurements: MeasurementDefaults{Area: 12}},
	"gazebo":         {Name: "Gazebo", Category: "Outdoor", Tier: TierStandard, Description: "Standalone garden structure", DefaultMeasurements: MeasurementDefaults{Area: 9}},
	"swimming_pool":  {Name: "Swimming Pool", Category: "Outdoor", Tier: TierPremium, Description: "In-ground swimming pool", DefaultMeasurements: MeasurementDefaults{Area: 30}},
	"landscaping":    {Name: "Landscaping", Category: "Outdoor", Tier: TierStandard, Description: "Garden and landscape work", DefaultMeasurements: MeasurementDefaults{Area: 50}},
	"garden":         {Name: "Garden Features", Category: "Outdoor", Tier: TierFree, Description: "Garden walls, planters, etc.", DefaultMeasurements: MeasurementDefaults{Area: 20}},
	"retaining_wall": {Name: "Retaining Wall", Category: "Outdoor", Tier: TierStandard, Description: "Soil retention wall", DefaultMeasurements: MeasurementDefaults{Length: 10, Height: 1.5}},
	"guard_house":    {Name: "Guard House", Category: "Outdoor", Tier: TierStandard, Description: "Security post", DefaultMeasurements: MeasurementDefaults{Area: 6}},
	"perimeter_wall": {Name: "Perimeter Wall", Category: "Outdoor", Tier: TierStandard, Description: "Property boundary wall", DefaultMeasurements: MeasurementDefaults{Length: 100, Height: 2.5}},
	"compound_fence": {Name: "Compound Fence", Category: "Outdoor", Tier: TierStandard, Description: "Full perimeter fencing", DefaultMeasurements: MeasurementDefaults{Length: 200, Height: 2}},
	"materials_shed": {Name: "Materials Shed", Category: "Outdoor", Tier: TierFree, Description: "Construction materials storage", DefaultMeasurements: MeasurementDefaults{Area: 20}},
	"workers_quarters": {Name: "Workers Quarters", Category: "Outdoor", Tier: TierStandard, Description: "On-site worker housing", DefaultMeasurements: MeasurementDefaults{Area: 50, Rooms: 4}},

	// Commercial
	"commercial":      {Name: "Commercial Building (General)", Category: "Commercial", Tier: TierStandard, Description: "General commercial structure", DefaultMeasurements: MeasurementDefaults{Area: 200, Floors: 2}},
	"office_building": {Name: "Office Building", Category: "Commercial", Tier: TierPremium, Description: "Multi-storey office building", DefaultMeasurements: MeasurementDefaults{Area: 500, Floors: 5}},
	"retail_store":    {Name: "Retail Store / Shop", Category: "Commercial", Tier: TierStandard, Description: "Retail commercial space", DefaultMeasurements: MeasurementDefaults{Area: 50}},
	"restaurant":      {Name: "Restaurant / Cafe", Category: "Commercial", Tier: TierStandard, Description: "Food service establishment", DefaultMeasurements: MeasurementDefaults{Area: 100}},
	"hotel":           {Name: "Hotel / Inn", Category: "Commercial", Tier: TierPremium, Description: "Hospitality building", DefaultMeasurements: MeasurementDefaults{Area: 1000, Floors: 4, Rooms: 20}},
	"warehouse":       {Name: "Warehouse / Storage", Category: "Commercial", Tier: TierStandard, Description: "Industrial storage facility", DefaultMeasurements: MeasurementDefaults{Area: 300}},
	"showroom":        {Name: "Showroom / Display Center", Category: "Commercial", Tier: TierStandard, Description: "Product display space", DefaultMeasurements: MeasurementDefaults{Area: 150}},
	"bank":            {Name: "Bank / Financial Center", Category: "Commercial", Tier: TierPremium, Description: "Banking facility", DefaultMeasurements: MeasurementDefaults{Area: 200}},
	"gym":             {Name: "Gym / Fitness Center", Category: "Commercial", Tier: TierStandard, Description: "Fitness facility", DefaultMeasurements: MeasurementDefaults{Area: 150}},

	// Industrial
	"factory":    {Name: "Factory / Plant", Category: "Industrial", Tier: TierPremium, Description: "Manufacturing facility", DefaultMeasurements: MeasurementDefaults{Area: 1000}},
	"industrial": {Name: "Industrial Building", Category: "Industrial", Tier: TierPremium, Description: "General industrial structure", DefaultMeasurements: MeasurementDefaults{Area: 500}},

	// Infrastructure
	"road":                  {Name: "Road Construction", Category: "Infrastructure", Tier: TierPremium, Description: "Road or street construction", DefaultMeasurements: MeasurementDefaults{Length: 100, Width: 6}},
	"bridge":                {Name: "Bridge / Overpass", Category: "Infrastructure", Tier: TierPremium, Description: "Bridge structure", DefaultMeasurements: MeasurementDefaults{Length: 20, Width: 8}},
	"underground_parking":   {Name: "Underground Parking", Category: "Infrastructure", Tier: TierPremium, Description: "Basement parking structure", DefaultMeasurements: MeasurementDefaults{Area: 500}},
	"multi_storey_parking":  {Name: "Multi-Storey Parking", Category: "Infrastructure", Tier: TierPremium, Description: "Parking building", DefaultMeasurements: MeasurementDefaults{Area: 800, Floors: 3}},
	"septic_tank":           {Name: "Septic Tank / Sewage", Category: "Infrastructure", Tier: TierStandard, Description: "Waste management system", DefaultMeasurements: MeasurementDefaults{Area: 10}},
	"drainage":              {Name: "Drainage System", Category: "Infrastructure", Tier: TierStandard, Description: "Storm water drainage", DefaultMeasurements: MeasurementDefaults{Length: 50}},
	"water_system":          {Name: "Water Supply System", Category: "Infrastructure", Tier: TierStandard, Description: "Water distribution system", DefaultMeasurements: MeasurementDefaults{Length: 100}},
	"electrical_substation": {Name: "Electrical Substation", Category: "Infrastructure", Tier: TierPremium, Description: "Power distribution facility", DefaultMeasurements: MeasurementDefaults{Area: 50}},
	"solar_installation":    {Name: "Solar Panel Installation", Category: "Infrastructure", Tier: TierStandard, Description: "Solar power system", DefaultMeasurements: MeasurementDefaults{Area: 30}},
	"water_tower":           {Name: "Water Tower / Tank", Category: "Infrastructure", Tier: TierPremium, Description: "Elevated water storage", DefaultMeasurements: MeasurementDefaults{Height: 10}},
	"elevated_tank":         {Name: "Elevated Water Tank", Category: "Infrastructure", Tier: TierPremium, Description: "Rooftop or tower tank", DefaultMeasurements: MeasurementDefaults{Area: 15, Height: 8}},
	"pump_house":            {Name: "Pump House", Category: "Infrastructure", Tier: TierStandard, Description: "Water pump enclosure", DefaultMeasurements: MeasurementDefaults{Area: 8}},
	"generator_room":        {Name: "Generator Room", Category: "Infrastructure", Tier: TierStandard, Description: "Backup power room", DefaultMeasurements: MeasurementDefaults{Area: 12}},

	// Institutional
	"school":              {Name: "School Building", Category: "Institutional", Tier: TierPremium, Description: "Educational facility", DefaultMeasurements: MeasurementDefaults{Area: 1000, Floors: 2, Rooms: 12}},
	"hospital":            {Name: "Hospital / Clinic", Category: "Institutional", Tier: TierPremium, Description: "Medical facility", DefaultMeasurements: MeasurementDefaults{Area: 2000, Floors: 3, Rooms: 30}},
	"church":              {Name: "Church / Chapel", Category: "Institutional", Tier: TierPremium, Description: "Religious building", DefaultMeasurements: MeasurementDefaults{Area: 300}},
	"government_building": {Name: "Government Building", Category: "Institutional", Tier: TierPremium, Description: "Public office building", DefaultMeasurements: MeasurementDefaults{Area: 800, Floors: 3}},
	"community_center":    {Name: "Community Center", Category: "Institutional", Tier: TierPremium, Description: "Barangay or community hall", DefaultMeasurements: MeasurementDefaults{Area: 200}},
	"sports_complex":      {Name: "Sports Complex", Category: "Institutional", Tier: TierPremium, Description: "Sports facility", DefaultMeasurements: MeasurementDefaults{Area: 2000}},

	// Development
	"subdivision":      {Name: "Subdivision Development", Category: "Development", Tier: TierPremium, Description: "Housing subdivision project", DefaultMeasurements: MeasurementDefaults{Area: 5000, Rooms: 50}},
	"subdivision_road": {Name: "Subdivision Roads", Category: "Development", Tier: TierPremium, Description: "Internal road network", DefaultMeasurements: MeasurementDefaults{Length: 500, Width: 6}},
}

// ProjectCategory is a display grouping for project types.
type ProjectCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var ProjectCategories = []ProjectCategory{
	{ID: "Residential", Name: "Residential"},
	{ID: "Renovation", Name: "Renovation"},
	{ID: "Outdoor", Name: "Outdoor / Exterior"},
	{ID: "Commercial", Name: "Commercial"},
	{ID: "Industrial", Name: "Industrial"},
	{ID: "Infrastructure", Name: "Infrastructure"},
	{ID: "Institutional", Name: "Institutional"},
	{ID: "Development", Name: "Development"},
}

// FindProjectType resolves a registry entry. Callers that only need
// calculation behavior may ignore a miss: the engine treats unregistered
// types as the default residential branch.
func FindProjectType(t ProjectType) (ProjectTypeDefinition, bool) {
	def, ok := ProjectTypeDefinitions[t]
	return def, ok
}

// ProjectTypesByCategory returns the registered types in a category, sorted
// for stable API output.
func ProjectTypesByCategory(category string) []ProjectType {
	var out []ProjectType
	for t, def := range ProjectTypeDefinitions {
		if def.Category == category {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
