package stats

import (
	"context"

	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"
)

// PopulationStats breaks the living population down by life stage and
// situation.
type PopulationStats struct {
	Total           int64  `json:"total"`
	Children        int64  `json:"children"`
	Adults          int64  `json:"adults"`
	Elders          int64  `json:"elders"`
	Employed        int64  `json:"employed"`
	Housed          int64  `json:"housed"`
	Married         int64  `json:"married"`
	AvgHappiness    int64  `json:"avg_happiness"`
	AvgHealth       int64  `json:"avg_health"`
	EligibleMothers int64  `json:"eligible_mothers"`
	BirthModifier   int64  `json:"birth_rate_modifier"`
	GrowthPotential string `json:"growth_potential"`
}

// CitizenNeeds reports whether the town can feed and house its people.
// Status labels are "good", "warning", or "critical".
type CitizenNeeds struct {
	FoodBread      int    `json:"food_bread"`
	FoodWheat      int    `json:"food_wheat"`
	FoodDaysSupply int    `json:"food_days_supply"`
	FoodStatus     string `json:"food_status"`
	HomelessCount  int64  `json:"homeless_count"`
	HousingStatus  string `json:"housing_status"`
	UnhappyCount   int64  `json:"unhappy_count"`
	SickCount      int64  `json:"sick_count"`
}

type EconomyStats struct {
	Treasury              int64   `json:"treasury"`
	TotalCitizenWealth    int64   `json:"total_citizen_wealth"`
	TotalBusinessTreasury int64   `json:"total_business_treasury"`
	Businesses            int64   `json:"businesses"`
	ProductionCapacity    float64 `json:"production_capacity"`
}

// Dashboard is the full realm overview served to clients.
type Dashboard struct {
	Day         int             `json:"day"`
	Year        int             `json:"year"`
	Season      string          `json:"season"`
	DayInSeason int             `json:"day_in_season"`
	Treasury    int64           `json:"treasury"`
	Population  PopulationStats `json:"population"`
	Economy     EconomyStats    `json:"economy"`
	Buildings   int64           `json:"buildings"`
	Needs       CitizenNeeds    `json:"citizen_needs"`
	Inventory   map[string]int  `json:"inventory"`
	Events      []fief.Event    `json:"recent_events"`
}

type UseCase struct {
	Clocks     ports.ClockRepository
	Citizens   ports.CitizenRepository
	Businesses ports.BusinessRepository
	Buildings  ports.BuildingRepository
	Inventory  ports.InventoryRepository
	Events     ports.EventRepository
	Snapshots  ports.SnapshotRepository
}

// History returns the recorded daily series, newest first. A
// non-positive limit means one year.
func (u UseCase) History(ctx context.Context, ownerID string, limit int) ([]ports.DailySnapshot, error) {
	if limit <= 0 {
		limit = fief.DaysPerYear
	}
	return u.Snapshots.List(ctx, ownerID, limit)
}

func (u UseCase) Dashboard(ctx context.Context, ownerID string) (Dashboard, error) {
	clk, err := u.Clocks.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return Dashboard{}, err
	}

	citizens, err := u.Citizens.ListAlive(ctx, ownerID)
	if err != nil {
		return Dashboard{}, err
	}
	businesses, err := u.Businesses.List(ctx, ownerID)
	if err != nil {
		return Dashboard{}, err
	}
	buildings, err := u.Buildings.List(ctx, ownerID)
	if err != nil {
		return Dashboard{}, err
	}
	inventory, err := u.Inventory.All(ctx, ownerID)
	if err != nil {
		return Dashboard{}, err
	}
	recent, err := u.Events.ListRecent(ctx, ownerID, 20)
	if err != nil {
		return Dashboard{}, err
	}

	economy := EconomyStats{Treasury: clk.Treasury, Businesses: int64(len(businesses))}
	for _, b := range businesses {
		economy.TotalBusinessTreasury += b.Treasury
		economy.ProductionCapacity += b.ProductionCapacity()
	}
	pop := SummarizePopulation(citizens)
	economy.TotalCitizenWealth = totalWealth(citizens)

	return Dashboard{
		Day:         clk.Day,
		Year:        clk.Year,
		Season:      clk.Season(),
		DayInSeason: clk.DayInSeason(),
		Treasury:    clk.Treasury,
		Population:  pop,
		Economy:     economy,
		Buildings:   int64(len(buildings)),
		Needs:       SummarizeNeeds(citizens, inventory),
		Inventory:   inventory,
		Events:      recent,
	}, nil
}

// Collect builds the achievement evaluation snapshot for one fiefdom.
func (u UseCase) Collect(ctx context.Context, clk fief.Clock) (fief.AchievementStats, error) {
	citizens, err := u.Citizens.ListAlive(ctx, clk.OwnerID)
	if err != nil {
		return fief.AchievementStats{}, err
	}
	businesses, err := u.Businesses.List(ctx, clk.OwnerID)
	if err != nil {
		return fief.AchievementStats{}, err
	}
	buildings, err := u.Buildings.List(ctx, clk.OwnerID)
	if err != nil {
		return fief.AchievementStats{}, err
	}

	pop := SummarizePopulation(citizens)
	publicBuildings := int64(0)
	for _, b := range buildings {
		if b.Type == fief.BuildingPublic {
			publicBuildings++
		}
	}

	return fief.AchievementStats{
		Population:      pop.Total,
		Buildings:       int64(len(buildings)),
		PublicBuildings: publicBuildings,
		Businesses:      int64(len(businesses)),
		Treasury:        clk.Treasury,
		Year:            int64(clk.Year),
		Adults:          pop.Adults,
		Employed:        pop.Employed,
		Housed:          pop.Housed,
		Married:         pop.Married,
		AvgHappiness:    pop.AvgHappiness,
		AvgHealth:       pop.AvgHealth,
	}, nil
}

// SummarizePopulation folds living citizens into aggregate counts.
func SummarizePopulation(citizens []fief.Citizen) PopulationStats {
	s := PopulationStats{GrowthPotential: "stable"}
	s.Total = int64(len(citizens))
	if s.Total == 0 {
		return s
	}

	totalHappiness, totalHealth := int64(0), int64(0)
	for _, c := range citizens {
		switch {
		case c.Age < fief.AgeAdult:
			s.Children++
		case c.Age < fief.AgeElder:
			s.Adults++
		default:
			s.Elders++
		}
		if c.WorkBusinessID != nil {
			s.Employed++
		}
		if c.HomeBuildingID != nil {
			s.Housed++
		}
		if c.SpouseID != nil {
			s.Married++
		}
		if c.CanHaveChildren() {
			s.EligibleMothers++
		}
		totalHappiness += int64(c.Happiness)
		totalHealth += int64(c.Health)
	}
	s.AvgHappiness = totalHappiness / s.Total
	s.AvgHealth = totalHealth / s.Total

	if s.AvgHappiness >= 70 {
		s.BirthModifier += 5
	} else if s.AvgHappiness < 40 {
		s.BirthModifier -= 5
	}
	if s.AvgHealth < 50 {
		s.BirthModifier -= 5
	}

	switch {
	case s.EligibleMothers == 0:
		s.GrowthPotential = "none"
	case s.BirthModifier > 0:
		s.GrowthPotential = "high"
	case s.BirthModifier < 0:
		s.GrowthPotential = "low"
	}
	return s
}

// SummarizeNeeds folds citizens and the granary into a supply report.
// Two wheat substitute for one bread, matching the food round.
func SummarizeNeeds(citizens []fief.Citizen, inventory map[string]int) CitizenNeeds {
	n := CitizenNeeds{
		FoodBread: inventory["bread"],
		FoodWheat: inventory["wheat"],
	}

	for _, c := range citizens {
		if c.HomeBuildingID == nil {
			n.HomelessCount++
		}
		if c.Happiness < 40 {
			n.UnhappyCount++
		}
		if c.Health < 40 {
			n.SickCount++
		}
	}

	if foodPerDay := len(citizens); foodPerDay > 0 {
		n.FoodDaysSupply = n.FoodBread/foodPerDay + n.FoodWheat/(foodPerDay*2)
	}

	switch {
	case n.FoodDaysSupply >= 7:
		n.FoodStatus = "good"
	case n.FoodDaysSupply >= 3:
		n.FoodStatus = "warning"
	default:
		n.FoodStatus = "critical"
	}
	switch {
	case n.HomelessCount == 0:
		n.HousingStatus = "good"
	case n.HomelessCount < 3:
		n.HousingStatus = "warning"
	default:
		n.HousingStatus = "critical"
	}
	return n
}

func totalWealth(citizens []fief.Citizen) int64 {
	total := int64(0)
	for _, c := range citizens {
		total += c.Wealth
	}
	return total
}
