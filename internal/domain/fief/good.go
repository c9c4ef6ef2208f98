package fief

// Good is a tradeable resource or manufactured item. Manufactured goods
// consume a recipe of other goods when produced.
type Good struct {
	ID       string
	Name     string
	Price    int64
	Resource bool
	Recipe   map[string]int
}

// goodCatalog is the immutable good registry, keyed by stable id.
var goodCatalog = map[string]Good{
	"wood":     {ID: "wood", Name: "Wood", Price: 5, Resource: true},
	"stone":    {ID: "stone", Name: "Stone", Price: 8, Resource: true},
	"iron_ore": {ID: "iron_ore", Name: "Iron Ore", Price: 15, Resource: true},
	"wheat":    {ID: "wheat", Name: "Wheat", Price: 3, Resource: true},
	"wool":     {ID: "wool", Name: "Wool", Price: 6, Resource: true},
	"leather":  {ID: "leather", Name: "Leather", Price: 10, Resource: true},
	"clay":     {ID: "clay", Name: "Clay", Price: 4, Resource: true},

	"bread":      {ID: "bread", Name: "Bread", Price: 8, Recipe: map[string]int{"wheat": 2}},
	"iron_ingot": {ID: "iron_ingot", Name: "Iron Ingot", Price: 30, Recipe: map[string]int{"iron_ore": 2, "wood": 1}},
	"tools":      {ID: "tools", Name: "Tools", Price: 50, Recipe: map[string]int{"iron_ingot": 1, "wood": 2}},
	"cloth":      {ID: "cloth", Name: "Cloth", Price: 15, Recipe: map[string]int{"wool": 3}},
	"furniture":  {ID: "furniture", Name: "Furniture", Price: 40, Recipe: map[string]int{"wood": 4}},
	"pottery":    {ID: "pottery", Name: "Pottery", Price: 12, Recipe: map[string]int{"clay": 2}},
	"ale":        {ID: "ale", Name: "Ale", Price: 10, Recipe: map[string]int{"wheat": 3}},
}

// GoodByID looks up a good in the catalog.
func GoodByID(id string) (Good, bool) {
	g, ok := goodCatalog[id]
	return g, ok
}

// AllGoods returns the full good catalog. Callers must not mutate the
// returned values' recipes.
func AllGoods() []Good {
	out := make([]Good, 0, len(goodCatalog))
	for _, g := range goodCatalog {
		out = append(out, g)
	}
	return out
}

// StarterInventory is the stock granted to a brand-new fiefdom.
func StarterInventory() map[string]int {
	return map[string]int{
		"wood":     20,
		"stone":    10,
		"wheat":    30,
		"iron_ore": 5,
	}
}
