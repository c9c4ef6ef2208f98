package fief

type Business struct {
	ID               int64    `json:"id"`
	OwnerID          string   `json:"owner_id"`
	Name             string   `json:"name"`
	BuildingID       int64    `json:"building_id"`
	OwnerCitizenID   *int64   `json:"owner_citizen_id,omitempty"`
	Type             string   `json:"type"`
	Products         []string `json:"products"`
	EmployeeCapacity int      `json:"employee_capacity"`
	CurrentEmployees int      `json:"current_employees"`
	Treasury         int64    `json:"treasury"`
	Reputation       int      `json:"reputation"`
}

// BusinessType defines a catalog entry: what the business produces and
// how many workers it supports.
type BusinessType struct {
	ID       string
	Products []string
	Capacity int
}

var businessTypeCatalog = map[string]BusinessType{
	"farm":        {ID: "farm", Products: []string{"wheat"}, Capacity: 5},
	"ranch":       {ID: "ranch", Products: []string{"wool", "leather"}, Capacity: 4},
	"lumber_mill": {ID: "lumber_mill", Products: []string{"wood"}, Capacity: 6},
	"mine":        {ID: "mine", Products: []string{"iron_ore", "stone"}, Capacity: 8},
	"quarry":      {ID: "quarry", Products: []string{"stone", "clay"}, Capacity: 6},
	"bakery":      {ID: "bakery", Products: []string{"bread"}, Capacity: 3},
	"blacksmith":  {ID: "blacksmith", Products: []string{"iron_ingot", "tools"}, Capacity: 4},
	"tailor":      {ID: "tailor", Products: []string{"cloth"}, Capacity: 3},
	"carpenter":   {ID: "carpenter", Products: []string{"furniture"}, Capacity: 4},
	"potter":      {ID: "potter", Products: []string{"pottery"}, Capacity: 2},
	"brewery":     {ID: "brewery", Products: []string{"ale"}, Capacity: 4},
}

func BusinessTypeByID(id string) (BusinessType, bool) {
	bt, ok := businessTypeCatalog[id]
	return bt, ok
}

func AllBusinessTypes() []BusinessType {
	out := make([]BusinessType, 0, len(businessTypeCatalog))
	for _, bt := range businessTypeCatalog {
		out = append(out, bt)
	}
	return out
}

// businessSkills maps a business type to the skills its workers train
// on the job.
var businessSkills = map[string][]string{
	"farm":        {"Farming"},
	"ranch":       {"Farming"},
	"lumber_mill": {"Logging"},
	"mine":        {"Mining"},
	"quarry":      {"Mining"},
	"bakery":      {"Baking"},
	"blacksmith":  {"Smithing"},
	"tailor":      {"Weaving"},
	"carpenter":   {"Carpentry"},
	"potter":      {"Carpentry"},
	"brewery":     {"Brewing"},
}

// SkillsForBusinessType returns the skills trained by working a
// business of the given type.
func SkillsForBusinessType(businessType string) []string {
	return businessSkills[businessType]
}

func NewBusiness(ownerID, name string, buildingID int64, bt BusinessType) Business {
	products := make([]string, len(bt.Products))
	copy(products, bt.Products)
	return Business{
		OwnerID:          ownerID,
		Name:             name,
		BuildingID:       buildingID,
		Type:             bt.ID,
		Products:         products,
		EmployeeCapacity: bt.Capacity,
		Reputation:       50,
	}
}

// ProductionCapacity derives the [0,1] output multiplier from employee
// fill ratio and reputation.
func (b Business) ProductionCapacity() float64 {
	capacity := b.EmployeeCapacity
	if capacity < 1 {
		capacity = 1
	}
	employeeRatio := float64(b.CurrentEmployees) / float64(capacity)
	reputationBonus := float64(b.Reputation) / 100
	return employeeRatio * (0.5 + reputationBonus*0.5)
}

func (b Business) CanHire() bool {
	return b.CurrentEmployees < b.EmployeeCapacity
}

func (b *Business) AddTreasury(amount int64) {
	b.Treasury += amount
}

func (b *Business) SubtractTreasury(amount int64) bool {
	if b.Treasury < amount {
		return false
	}
	b.Treasury -= amount
	return true
}

func (b *Business) ModifyReputation(amount int) {
	b.Reputation = clampStat(b.Reputation + amount)
}
