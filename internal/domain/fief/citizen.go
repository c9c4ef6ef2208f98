package fief

import "fmt"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Life stage boundaries, in years.
const (
	AgeChild = 14
	AgeAdult = 18
	AgeElder = 60
	AgeMax   = 80
)

const (
	MinStat = 0
	MaxStat = 100
)

type Citizen struct {
	ID             int64          `json:"id"`
	OwnerID        string         `json:"owner_id"`
	Name           string         `json:"name"`
	Age            int            `json:"age"`
	Gender         string         `json:"gender"`
	Health         int            `json:"health"`
	Happiness      int            `json:"happiness"`
	Wealth         int64          `json:"wealth"`
	Alive          bool           `json:"alive"`
	Role           string         `json:"role,omitempty"`
	Skills         map[string]int `json:"skills,omitempty"`
	HomeBuildingID *int64         `json:"home_building_id,omitempty"`
	WorkBusinessID *int64         `json:"work_business_id,omitempty"`
	SpouseID       *int64         `json:"spouse_id,omitempty"`
}

func NewCitizen(ownerID, name string, age int, gender string, startingWealth int64) Citizen {
	return Citizen{
		OwnerID:   ownerID,
		Name:      name,
		Age:       age,
		Gender:    gender,
		Health:    MaxStat,
		Happiness: MaxStat,
		Wealth:    startingWealth,
		Alive:     true,
		Skills:    map[string]int{},
	}
}

func (c *Citizen) ModifyHealth(amount int) {
	c.Health = clampStat(c.Health + amount)
}

func (c *Citizen) ModifyHappiness(amount int) {
	c.Happiness = clampStat(c.Happiness + amount)
}

func (c *Citizen) ModifyWealth(amount int64) {
	c.Wealth += amount
	if c.Wealth < 0 {
		c.Wealth = 0
	}
}

func (c *Citizen) SkillLevel(skill string) int {
	return c.Skills[skill]
}

func (c *Citizen) SetSkillLevel(skill string, level int) {
	if c.Skills == nil {
		c.Skills = map[string]int{}
	}
	c.Skills[skill] = clampStat(level)
}

func (c Citizen) CanWork() bool {
	return c.Alive && c.Age >= AgeAdult && c.Age < AgeElder
}

func (c Citizen) CanMarry() bool {
	return c.Alive && c.Age >= AgeAdult && c.SpouseID == nil
}

func (c Citizen) CanHaveChildren() bool {
	return c.Alive && c.Gender == GenderFemale && c.Age >= AgeAdult && c.Age < 45 && c.SpouseID != nil
}

func (c Citizen) LifeStage() string {
	switch {
	case c.Age < AgeChild:
		return "child"
	case c.Age < AgeAdult:
		return "youth"
	case c.Age < AgeElder:
		return "adult"
	default:
		return "elder"
	}
}

// AgeOneYear advances age by one and returns life-stage events. Elders
// lose a little health every year.
func (c *Citizen) AgeOneYear(dice Dice) []Event {
	var events []Event
	c.Age++

	if c.Age == AgeAdult {
		events = append(events, Event{
			Type:    "coming_of_age",
			Message: fmt.Sprintf("%s has come of age and can now work.", c.Name),
		})
	}
	if c.Age == AgeElder {
		events = append(events, Event{
			Type:    "elder",
			Message: fmt.Sprintf("%s has become an elder.", c.Name),
		})
	}
	if c.Age >= AgeElder {
		c.ModifyHealth(-dice.Between(1, 5))
	}

	return events
}

// DeathRoll decides whether the citizen dies this year. Death is forced
// past AgeMax or at zero health; otherwise the chance grows with old age
// and failing health. The citizen is marked dead but the spouse link is
// left for the caller to sever, since the spouse lives in the repository.
func (c *Citizen) DeathRoll(dice Dice) *Event {
	if c.Age >= AgeMax {
		c.Alive = false
		return &Event{
			Type:    "death_old_age",
			Message: fmt.Sprintf("%s has passed away peacefully of old age at %d.", c.Name, c.Age),
		}
	}

	if c.Health <= 0 {
		c.Alive = false
		return &Event{
			Type:    "death_illness",
			Message: fmt.Sprintf("%s has succumbed to illness at age %d.", c.Name, c.Age),
		}
	}

	chance := 0.0
	if c.Age >= AgeElder {
		chance += float64(c.Age-AgeElder) * 0.5
	}
	if c.Health < 30 {
		chance += float64(30-c.Health) * 0.3
	}
	if chance > 0 && float64(dice.Roll(100)) <= chance {
		c.Alive = false
		return &Event{
			Type:    "death_natural",
			Message: fmt.Sprintf("%s has passed away at age %d.", c.Name, c.Age),
		}
	}

	return nil
}

func clampStat(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
