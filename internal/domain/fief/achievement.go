package fief

import "time"

const (
	AchievementCategoryPopulation = "population"
	AchievementCategoryBuilding   = "building"
	AchievementCategoryEconomy    = "economy"
	AchievementCategoryTime       = "time"
	AchievementCategorySpecial    = "special"
)

// Requirement types checked against an AchievementStats snapshot.
const (
	ReqPopulation      = "population"
	ReqBuildings       = "buildings"
	ReqBusinesses      = "businesses"
	ReqTreasury        = "treasury"
	ReqYears           = "years"
	ReqPublicBuildings = "public_buildings"
	ReqEmploymentRate  = "employment_rate"
	ReqHousingRate     = "housing_rate"
	ReqMarriedCouples  = "married_couples"
	ReqAvgHappiness    = "avg_happiness"
	ReqAvgHealth       = "avg_health"
)

type AchievementDef struct {
	ID          string
	Name        string
	Description string
	Category    string
	Icon        string
	ReqType     string
	ReqValue    int64
}

// Unlock records when an achievement was earned.
type Unlock struct {
	OwnerID       string    `json:"owner_id"`
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// achievementCatalog is declared in unlock-progression order so that
// listings come out stable.
var achievementCatalog = []AchievementDef{
	{ID: "first_citizen", Name: "First Citizen", Description: "Have at least 1 citizen in your fiefdom", Category: AchievementCategoryPopulation, Icon: "P", ReqType: ReqPopulation, ReqValue: 1},
	{ID: "village", Name: "Village", Description: "Grow your population to 25 citizens", Category: AchievementCategoryPopulation, Icon: "V", ReqType: ReqPopulation, ReqValue: 25},
	{ID: "town", Name: "Town", Description: "Grow your population to 50 citizens", Category: AchievementCategoryPopulation, Icon: "T", ReqType: ReqPopulation, ReqValue: 50},
	{ID: "city", Name: "City", Description: "Grow your population to 100 citizens", Category: AchievementCategoryPopulation, Icon: "C", ReqType: ReqPopulation, ReqValue: 100},

	{ID: "first_building", Name: "First Structure", Description: "Construct your first building", Category: AchievementCategoryBuilding, Icon: "B", ReqType: ReqBuildings, ReqValue: 1},
	{ID: "builder", Name: "Builder", Description: "Construct 10 buildings", Category: AchievementCategoryBuilding, Icon: "B", ReqType: ReqBuildings, ReqValue: 10},
	{ID: "architect", Name: "Master Architect", Description: "Construct 25 buildings", Category: AchievementCategoryBuilding, Icon: "A", ReqType: ReqBuildings, ReqValue: 25},
	{ID: "public_works", Name: "Public Works", Description: "Build a church, tavern, and market", Category: AchievementCategoryBuilding, Icon: "W", ReqType: ReqPublicBuildings, ReqValue: 3},

	{ID: "entrepreneur", Name: "Entrepreneur", Description: "Establish your first business", Category: AchievementCategoryEconomy, Icon: "E", ReqType: ReqBusinesses, ReqValue: 1},
	{ID: "merchant_lord", Name: "Merchant Lord", Description: "Establish 5 businesses", Category: AchievementCategoryEconomy, Icon: "M", ReqType: ReqBusinesses, ReqValue: 5},
	{ID: "wealthy", Name: "Wealthy", Description: "Accumulate 1,000 gold in treasury", Category: AchievementCategoryEconomy, Icon: "G", ReqType: ReqTreasury, ReqValue: 1000},
	{ID: "rich", Name: "Rich", Description: "Accumulate 5,000 gold in treasury", Category: AchievementCategoryEconomy, Icon: "R", ReqType: ReqTreasury, ReqValue: 5000},
	{ID: "full_employment", Name: "Full Employment", Description: "Have all working-age adults employed", Category: AchievementCategoryEconomy, Icon: "F", ReqType: ReqEmploymentRate, ReqValue: 100},

	{ID: "first_year", Name: "First Anniversary", Description: "Survive your first year", Category: AchievementCategoryTime, Icon: "Y", ReqType: ReqYears, ReqValue: 1},
	{ID: "five_years", Name: "Established", Description: "Rule for 5 years", Category: AchievementCategoryTime, Icon: "Y", ReqType: ReqYears, ReqValue: 5},
	{ID: "decade", Name: "A Decade of Rule", Description: "Rule for 10 years", Category: AchievementCategoryTime, Icon: "D", ReqType: ReqYears, ReqValue: 10},

	{ID: "matchmaker", Name: "Matchmaker", Description: "Have 5 married couples", Category: AchievementCategorySpecial, Icon: "H", ReqType: ReqMarriedCouples, ReqValue: 5},
	{ID: "all_housed", Name: "No Homeless", Description: "House all citizens", Category: AchievementCategorySpecial, Icon: "H", ReqType: ReqHousingRate, ReqValue: 100},
	{ID: "happy_realm", Name: "Happy Realm", Description: "Achieve average happiness above 80%", Category: AchievementCategorySpecial, Icon: "S", ReqType: ReqAvgHappiness, ReqValue: 80},
	{ID: "healthy_realm", Name: "Healthy Realm", Description: "Achieve average health above 80%", Category: AchievementCategorySpecial, Icon: "+", ReqType: ReqAvgHealth, ReqValue: 80},
}

func AllAchievements() []AchievementDef {
	out := make([]AchievementDef, len(achievementCatalog))
	copy(out, achievementCatalog)
	return out
}

func AchievementByID(id string) (AchievementDef, bool) {
	for _, a := range achievementCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return AchievementDef{}, false
}

// AchievementStats is the snapshot of realm metrics achievements are
// evaluated against.
type AchievementStats struct {
	Population      int64
	Buildings       int64
	PublicBuildings int64
	Businesses      int64
	Treasury        int64
	Year            int64
	Adults          int64
	Employed        int64
	Housed          int64
	Married         int64
	AvgHappiness    int64
	AvgHealth       int64
}

func (s AchievementStats) employmentRate() int64 {
	if s.Adults == 0 {
		return 0
	}
	return s.Employed * 100 / s.Adults
}

func (s AchievementStats) housingRate() int64 {
	if s.Population == 0 {
		return 0
	}
	return s.Housed * 100 / s.Population
}

func (s AchievementStats) current(reqType string) int64 {
	switch reqType {
	case ReqPopulation:
		return s.Population
	case ReqBuildings:
		return s.Buildings
	case ReqBusinesses:
		return s.Businesses
	case ReqTreasury:
		return s.Treasury
	case ReqYears:
		return s.Year
	case ReqPublicBuildings:
		return s.PublicBuildings
	case ReqEmploymentRate:
		return s.employmentRate()
	case ReqHousingRate:
		return s.housingRate()
	case ReqMarriedCouples:
		return s.Married / 2
	case ReqAvgHappiness:
		return s.AvgHappiness
	case ReqAvgHealth:
		return s.AvgHealth
	default:
		return 0
	}
}

// Met reports whether the stats satisfy the requirement. Year targets
// are strict: the first anniversary unlocks when the clock enters year
// two.
func (a AchievementDef) Met(s AchievementStats) bool {
	if a.ReqType == ReqYears {
		return s.Year > a.ReqValue
	}
	return s.current(a.ReqType) >= a.ReqValue
}

// Progress returns completion toward the requirement as a percentage
// capped at 100.
func (a AchievementDef) Progress(s AchievementStats) int {
	target := a.ReqValue
	if target < 1 {
		target = 1
	}
	p := s.current(a.ReqType) * 100 / target
	if p > 100 {
		p = 100
	}
	return int(p)
}
