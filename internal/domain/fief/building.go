package fief

const (
	BuildingHouse    = "house"
	BuildingBusiness = "business"
	BuildingPublic   = "public"
	BuildingFarm     = "farm"
	BuildingResource = "resource"
)

// OperationalThreshold is the condition below which a building stops
// functioning.
const OperationalThreshold = 20

type Building struct {
	ID               int64  `json:"id"`
	OwnerID          string `json:"owner_id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	TemplateID       string `json:"template_id"`
	AreaID           int64  `json:"area_id"`
	OwnerCitizenID   *int64 `json:"owner_citizen_id,omitempty"`
	Capacity         int    `json:"capacity"`
	Condition        int    `json:"condition"`
	ConstructionCost int64  `json:"construction_cost"`
	UpkeepCost       int64  `json:"upkeep_cost"`
	X                int    `json:"x"`
	Y                int    `json:"y"`
}

// BuildingTemplate is a catalog entry for constructible buildings.
// UnlockAchievement gates availability; empty means always available.
type BuildingTemplate struct {
	ID                string
	Type              string
	Capacity          int
	Cost              int64
	Upkeep            int64
	UnlockAchievement string
	Description       string
}

var buildingTemplateCatalog = map[string]BuildingTemplate{
	"cottage": {
		ID: "cottage", Type: BuildingHouse, Capacity: 4, Cost: 100, Upkeep: 5,
		Description: "A small dwelling for peasant families. Medieval cottages were typically single-room structures with thatched roofs, housing entire families alongside their livestock.",
	},
	"manor": {
		ID: "manor", Type: BuildingHouse, Capacity: 8, Cost: 500, Upkeep: 20, UnlockAchievement: "village",
		Description: "A noble residence and administrative center. The manor house was the heart of the feudal estate, where the lord collected rents and administered justice.",
	},
	"workshop": {
		ID: "workshop", Type: BuildingBusiness, Capacity: 3, Cost: 200, Upkeep: 10,
		Description: "A craftsman's workplace. Medieval workshops were where skilled artisans practiced trades passed down through apprenticeships, often living above their shops.",
	},
	"shop": {
		ID: "shop", Type: BuildingBusiness, Capacity: 2, Cost: 150, Upkeep: 8, UnlockAchievement: "entrepreneur",
		Description: "A merchant's storefront. Shops in medieval towns often had open fronts with shutters that folded down to create counters for displaying goods.",
	},
	"farm": {
		ID: "farm", Type: BuildingFarm, Capacity: 5, Cost: 250, Upkeep: 15,
		Description: "Agricultural land for growing crops. The three-field system was common in medieval Europe, rotating crops to maintain soil fertility.",
	},
	"mine": {
		ID: "mine", Type: BuildingResource, Capacity: 10, Cost: 400, Upkeep: 25, UnlockAchievement: "builder",
		Description: "An extraction site for ore and stone. Medieval mining was dangerous work, with miners using pickaxes and hand tools in cramped tunnels lit by candles.",
	},
	"lumber_mill": {
		ID: "lumber_mill", Type: BuildingResource, Capacity: 6, Cost: 300, Upkeep: 15, UnlockAchievement: "first_building",
		Description: "A facility for processing timber. Wood was essential for construction, fuel, and tools. Water-powered sawmills appeared in the 11th century.",
	},
	"church": {
		ID: "church", Type: BuildingPublic, Capacity: 50, Cost: 1000, Upkeep: 30, UnlockAchievement: "town",
		Description: "A place of worship and community gathering. The medieval church was central to daily life, marking time with bells and providing education and charity.",
	},
	"tavern": {
		ID: "tavern", Type: BuildingPublic, Capacity: 20, Cost: 400, Upkeep: 15, UnlockAchievement: "village",
		Description: "An establishment serving ale and food. Taverns served as social hubs where travelers shared news and locals conducted business over drinks.",
	},
	"market": {
		ID: "market", Type: BuildingPublic, Capacity: 30, Cost: 600, Upkeep: 20, UnlockAchievement: "entrepreneur",
		Description: "A trading center for goods. Market rights were valuable privileges granted by lords, with weekly markets forming the backbone of medieval commerce.",
	},
	"guild_hall": {
		ID: "guild_hall", Type: BuildingPublic, Capacity: 15, Cost: 800, Upkeep: 25, UnlockAchievement: "merchant_lord",
		Description: "Headquarters for trade guilds. Guilds regulated quality, prices, and training, wielding significant political power in medieval towns.",
	},
	"castle": {
		ID: "castle", Type: BuildingPublic, Capacity: 100, Cost: 5000, Upkeep: 100, UnlockAchievement: "city",
		Description: "A fortified residence and military stronghold. Castles evolved from wooden motte-and-bailey structures to imposing stone fortresses over centuries.",
	},
}

func BuildingTemplateByID(id string) (BuildingTemplate, bool) {
	t, ok := buildingTemplateCatalog[id]
	return t, ok
}

func AllBuildingTemplates() []BuildingTemplate {
	out := make([]BuildingTemplate, 0, len(buildingTemplateCatalog))
	for _, t := range buildingTemplateCatalog {
		out = append(out, t)
	}
	return out
}

// NewBuildingFromTemplate instantiates a building at full condition.
// Coordinate assignment is left to the caller, which knows the area's
// occupied grid.
func NewBuildingFromTemplate(ownerID, name string, areaID int64, t BuildingTemplate) Building {
	return Building{
		OwnerID:          ownerID,
		Name:             name,
		Type:             t.Type,
		TemplateID:       t.ID,
		AreaID:           areaID,
		Capacity:         t.Capacity,
		Condition:        100,
		ConstructionCost: t.Cost,
		UpkeepCost:       t.Upkeep,
	}
}

func (b *Building) Degrade(amount int) {
	b.Condition -= amount
	if b.Condition < 0 {
		b.Condition = 0
	}
}

func (b *Building) Repair(amount int) {
	b.Condition += amount
	if b.Condition > 100 {
		b.Condition = 100
	}
}

func (b Building) Operational() bool {
	return b.Condition > OperationalThreshold
}

// RepairCost is what the town treasury pays for a single repair pass.
func (b Building) RepairCost() int64 {
	cost := b.UpkeepCost * 2
	if cost < 10 {
		cost = 10
	}
	return cost
}

// Area is a named district: buildings live in an area and citizens pay
// its tax rate.
type Area struct {
	ID          int64   `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	TaxRate     float64 `json:"tax_rate"`
	MaxCapacity int     `json:"max_capacity"`
}

// NextCoords finds the first free cell in a 10-wide grid given the
// occupied coordinates of an area.
func NextCoords(occupied [][2]int) (int, int) {
	taken := make(map[[2]int]bool, len(occupied))
	for _, c := range occupied {
		taken[c] = true
	}
	const gridWidth = 10
	for y := 0; y < 100; y++ {
		for x := 0; x < gridWidth; x++ {
			if !taken[[2]int{x, y}] {
				return x, y
			}
		}
	}
	return 0, len(occupied)
}
