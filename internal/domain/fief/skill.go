package fief

const (
	SkillCrafting  = "crafting"
	SkillGathering = "gathering"
	SkillCombat    = "combat"
	SkillSocial    = "social"
)

type Skill struct {
	Name        string
	Description string
	Type        string
}

var skillCatalog = []Skill{
	{Name: "Smithing", Description: "The art of forging metal into weapons, tools, and armor.", Type: SkillCrafting},
	{Name: "Carpentry", Description: "Woodworking and construction of furniture and buildings.", Type: SkillCrafting},
	{Name: "Weaving", Description: "Creating cloth and textiles from raw materials.", Type: SkillCrafting},
	{Name: "Brewing", Description: "The production of ale, mead, and other beverages.", Type: SkillCrafting},
	{Name: "Baking", Description: "Creating bread and other baked goods.", Type: SkillCrafting},

	{Name: "Farming", Description: "Cultivating crops and managing agricultural land.", Type: SkillGathering},
	{Name: "Mining", Description: "Extracting ore, stone, and minerals from the earth.", Type: SkillGathering},
	{Name: "Logging", Description: "Felling trees and processing timber.", Type: SkillGathering},
	{Name: "Fishing", Description: "Catching fish and other aquatic creatures.", Type: SkillGathering},
	{Name: "Hunting", Description: "Tracking and hunting wild game.", Type: SkillGathering},

	{Name: "Swordsmanship", Description: "Proficiency with bladed weapons.", Type: SkillCombat},
	{Name: "Archery", Description: "Skill with bows and ranged weapons.", Type: SkillCombat},
	{Name: "Defense", Description: "The ability to protect oneself and others.", Type: SkillCombat},

	{Name: "Trading", Description: "The art of negotiation and commerce.", Type: SkillSocial},
	{Name: "Leadership", Description: "The ability to inspire and direct others.", Type: SkillSocial},
	{Name: "Medicine", Description: "Healing arts and herbal remedies.", Type: SkillSocial},
}

func AllSkills() []Skill {
	out := make([]Skill, len(skillCatalog))
	copy(out, skillCatalog)
	return out
}

func SkillByName(name string) (Skill, bool) {
	for _, s := range skillCatalog {
		if s.Name == name {
			return s, true
		}
	}
	return Skill{}, false
}

// Role is a social station. Income and prestige color citizen flavor;
// wages come from businesses, not roles.
type Role struct {
	Name        string
	Description string
	BaseIncome  int64
	Prestige    int
}

var roleCatalog = []Role{
	{Name: "Lord", Description: "The ruler of the fiefdom, responsible for governance and protection.", BaseIncome: 100, Prestige: 50},
	{Name: "Steward", Description: "Manages the day-to-day affairs of the estate.", BaseIncome: 50, Prestige: 30},
	{Name: "Reeve", Description: "Oversees agricultural workers and land management.", BaseIncome: 30, Prestige: 20},

	{Name: "Knight", Description: "A mounted warrior sworn to protect the realm.", BaseIncome: 40, Prestige: 35},
	{Name: "Guard", Description: "Protects the settlement and maintains order.", BaseIncome: 15, Prestige: 10},
	{Name: "Archer", Description: "A skilled bowman for defense and hunting.", BaseIncome: 12, Prestige: 8},

	{Name: "Priest", Description: "Provides spiritual guidance and performs religious ceremonies.", BaseIncome: 25, Prestige: 25},
	{Name: "Monk", Description: "A member of a religious order, often involved in education and healing.", BaseIncome: 10, Prestige: 15},

	{Name: "Blacksmith", Description: "Forges metal tools, weapons, and armor.", BaseIncome: 20, Prestige: 12},
	{Name: "Carpenter", Description: "Works with wood to build structures and furniture.", BaseIncome: 18, Prestige: 10},
	{Name: "Mason", Description: "Works with stone for construction.", BaseIncome: 18, Prestige: 10},
	{Name: "Miller", Description: "Grinds grain into flour at the mill.", BaseIncome: 15, Prestige: 8},
	{Name: "Baker", Description: "Bakes bread and other goods for the community.", BaseIncome: 12, Prestige: 6},
	{Name: "Brewer", Description: "Produces ale and other beverages.", BaseIncome: 14, Prestige: 7},
	{Name: "Weaver", Description: "Creates cloth and textiles from raw fibers.", BaseIncome: 12, Prestige: 6},
	{Name: "Tanner", Description: "Processes animal hides into leather.", BaseIncome: 10, Prestige: 5},
	{Name: "Potter", Description: "Creates pottery and ceramic goods.", BaseIncome: 10, Prestige: 5},

	{Name: "Farmer", Description: "Works the land to grow crops.", BaseIncome: 8, Prestige: 3},
	{Name: "Miner", Description: "Extracts ore and minerals from the earth.", BaseIncome: 10, Prestige: 4},
	{Name: "Woodcutter", Description: "Fells trees and processes timber.", BaseIncome: 8, Prestige: 3},
	{Name: "Fisherman", Description: "Catches fish from rivers and seas.", BaseIncome: 8, Prestige: 3},
	{Name: "Shepherd", Description: "Tends to sheep and other livestock.", BaseIncome: 7, Prestige: 2},
	{Name: "Servant", Description: "Performs domestic duties in households.", BaseIncome: 5, Prestige: 1},

	{Name: "Merchant", Description: "Trades goods for profit.", BaseIncome: 25, Prestige: 15},
	{Name: "Innkeeper", Description: "Runs an establishment providing food and lodging.", BaseIncome: 20, Prestige: 12},

	{Name: "Healer", Description: "Provides medical care and herbal remedies.", BaseIncome: 20, Prestige: 18},
	{Name: "Scribe", Description: "Writes documents and keeps records.", BaseIncome: 15, Prestige: 15},
}

func AllRoles() []Role {
	out := make([]Role, len(roleCatalog))
	copy(out, roleCatalog)
	return out
}

func RoleByName(name string) (Role, bool) {
	for _, r := range roleCatalog {
		if r.Name == name {
			return r, true
		}
	}
	return Role{}, false
}
