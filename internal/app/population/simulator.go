package population

import (
	"context"
	"fmt"

	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"
)

// Chances and modifiers per yearly pass.
const (
	marriageChancePercent  = 10
	birthChancePercent     = 15
	illnessChancePercent   = 10
	marriageHappinessGain  = 20
	birthHappinessGain     = 15
	widowhoodHappinessLoss = 20
)

// Summary reports what happened during one population tick.
type Summary struct {
	Births int
	Deaths int
}

// Simulator runs the citizen lifecycle: daily mood drift, yearly aging,
// marriage and birth rounds, and seasonal effects. It must be called
// inside a transaction.
type Simulator struct {
	Citizens ports.CitizenRepository
	Dice     fief.Dice
}

// RunDaily advances all living citizens by one day of the given clock.
func (s Simulator) RunDaily(ctx context.Context, clk *fief.Clock) ([]fief.Event, Summary, error) {
	var (
		events  []fief.Event
		summary Summary
	)

	citizens, err := s.Citizens.ListAlive(ctx, clk.OwnerID)
	if err != nil {
		return nil, summary, err
	}

	for i := range citizens {
		s.driftDailyMood(&citizens[i])
		if err := s.Citizens.Save(ctx, citizens[i]); err != nil {
			return nil, summary, err
		}
	}

	// Aging, death, marriage, and birth happen on new year's day.
	if clk.Day == 1 {
		yearly, deaths, err := s.runYearly(ctx, clk, citizens)
		if err != nil {
			return nil, summary, err
		}
		events = append(events, yearly...)
		summary.Deaths = deaths

		// Reload: the dead must not marry.
		citizens, err = s.Citizens.ListAlive(ctx, clk.OwnerID)
		if err != nil {
			return nil, summary, err
		}

		marriages, err := s.runMarriages(ctx, clk, citizens)
		if err != nil {
			return nil, summary, err
		}
		events = append(events, marriages...)

		births, born, err := s.runBirths(ctx, clk, citizens)
		if err != nil {
			return nil, summary, err
		}
		events = append(events, births...)
		summary.Births = born
	}

	if clk.DayInSeason() == 1 {
		seasonal, err := s.runSeasonal(ctx, clk)
		if err != nil {
			return nil, summary, err
		}
		events = append(events, seasonal...)
	}

	return events, summary, nil
}

func (s Simulator) driftDailyMood(c *fief.Citizen) {
	change := s.Dice.Between(-2, 2)

	if c.HomeBuildingID == nil {
		change -= 3
		c.ModifyHealth(-1)
	}
	if c.CanWork() && c.WorkBusinessID == nil {
		change -= 2
	}
	if c.Wealth < 10 {
		change -= 2
	}

	c.ModifyHappiness(change)
}

func (s Simulator) runYearly(ctx context.Context, clk *fief.Clock, citizens []fief.Citizen) ([]fief.Event, int, error) {
	var events []fief.Event
	var dead []fief.Citizen

	for i := range citizens {
		c := &citizens[i]

		for _, e := range c.AgeOneYear(s.Dice) {
			events = append(events, stamp(*clk, e, c.ID))
		}

		if death := c.DeathRoll(s.Dice); death != nil {
			dead = append(dead, *c)
			events = append(events, stamp(*clk, *death, c.ID))
		}

		if err := s.Citizens.Save(ctx, *c); err != nil {
			return nil, len(dead), err
		}
	}

	// Widowing runs after every save: a surviving spouse later in the
	// slice would otherwise overwrite the severed link with its stale
	// copy.
	for _, c := range dead {
		if err := s.severSpouse(ctx, clk.OwnerID, c); err != nil {
			return nil, len(dead), err
		}
	}

	return events, len(dead), nil
}

// severSpouse widows the deceased citizen's partner.
func (s Simulator) severSpouse(ctx context.Context, ownerID string, dead fief.Citizen) error {
	if dead.SpouseID == nil {
		return nil
	}
	spouse, err := s.Citizens.GetByID(ctx, ownerID, *dead.SpouseID)
	if err != nil {
		return err
	}
	spouse.SpouseID = nil
	spouse.ModifyHappiness(-widowhoodHappinessLoss)
	return s.Citizens.Save(ctx, spouse)
}

func (s Simulator) runMarriages(ctx context.Context, clk *fief.Clock, citizens []fief.Citizen) ([]fief.Event, error) {
	var males, females []fief.Citizen
	for _, c := range citizens {
		if !c.CanMarry() {
			continue
		}
		if c.Gender == fief.GenderMale {
			males = append(males, c)
		} else {
			females = append(females, c)
		}
	}

	s.Dice.Shuffle(len(males), func(i, j int) { males[i], males[j] = males[j], males[i] })
	s.Dice.Shuffle(len(females), func(i, j int) { females[i], females[j] = females[j], females[i] })

	pairs := len(males)
	if len(females) < pairs {
		pairs = len(females)
	}

	var events []fief.Event
	for i := 0; i < pairs; i++ {
		if !s.Dice.Chance(marriageChancePercent) {
			continue
		}
		groom, bride := males[i], females[i]
		groom.SpouseID = &bride.ID
		bride.SpouseID = &groom.ID
		groom.ModifyHappiness(marriageHappinessGain)
		bride.ModifyHappiness(marriageHappinessGain)

		if err := s.Citizens.Save(ctx, groom); err != nil {
			return nil, err
		}
		if err := s.Citizens.Save(ctx, bride); err != nil {
			return nil, err
		}

		events = append(events, fief.NewEvent(*clk, "marriage",
			fmt.Sprintf("%s and %s have been wed!", groom.Name, bride.Name)))
	}

	return events, nil
}

func (s Simulator) runBirths(ctx context.Context, clk *fief.Clock, citizens []fief.Citizen) ([]fief.Event, int, error) {
	chance := s.birthChance(citizens)

	var events []fief.Event
	births := 0
	for _, mother := range citizens {
		if !mother.CanHaveChildren() || !s.Dice.Chance(chance) {
			continue
		}

		gender := fief.RandomGender(s.Dice)
		name := fief.RandomFirstName(s.Dice, gender)
		baby := fief.NewCitizen(clk.OwnerID, name, 0, gender, 0)
		baby.HomeBuildingID = mother.HomeBuildingID
		if err := s.Citizens.Create(ctx, &baby); err != nil {
			return nil, births, err
		}
		births++

		mother.ModifyHappiness(birthHappinessGain)
		if err := s.Citizens.Save(ctx, mother); err != nil {
			return nil, births, err
		}
		if mother.SpouseID != nil {
			father, err := s.Citizens.GetByID(ctx, clk.OwnerID, *mother.SpouseID)
			if err == nil {
				father.ModifyHappiness(birthHappinessGain)
				if err := s.Citizens.Save(ctx, father); err != nil {
					return nil, births, err
				}
			}
		}

		e := fief.NewEvent(*clk, "birth",
			fmt.Sprintf("A child named %s has been born to %s!", name, mother.Name))
		e.CitizenID = &baby.ID
		events = append(events, e)
	}

	return events, births, nil
}

// birthChance adjusts the base rate by realm wellbeing and clamps it to
// [5, 30] percent.
func (s Simulator) birthChance(citizens []fief.Citizen) int {
	chance := birthChancePercent
	if len(citizens) == 0 {
		return chance
	}

	totalHappiness, totalHealth := 0, 0
	for _, c := range citizens {
		totalHappiness += c.Happiness
		totalHealth += c.Health
	}
	avgHappiness := totalHappiness / len(citizens)
	avgHealth := totalHealth / len(citizens)

	if avgHappiness >= 70 {
		chance += 5
	} else if avgHappiness < 40 {
		chance -= 5
	}
	if avgHealth < 50 {
		chance -= 5
	}

	if chance < 5 {
		chance = 5
	}
	if chance > 30 {
		chance = 30
	}
	return chance
}

func (s Simulator) runSeasonal(ctx context.Context, clk *fief.Clock) ([]fief.Event, error) {
	citizens, err := s.Citizens.ListAlive(ctx, clk.OwnerID)
	if err != nil {
		return nil, err
	}

	var events []fief.Event
	season := clk.Season()

	for i := range citizens {
		c := &citizens[i]

		switch season {
		case "Winter":
			if s.Dice.Chance(illnessChancePercent) {
				c.ModifyHealth(-s.Dice.Between(5, 15))
				e := fief.NewEvent(*clk, "illness",
					fmt.Sprintf("%s has fallen ill during the harsh winter.", c.Name))
				e.CitizenID = &c.ID
				events = append(events, e)
			}
		case "Spring":
			c.ModifyHealth(s.Dice.Between(1, 5))
			c.ModifyHappiness(s.Dice.Between(1, 5))
		case "Summer":
			c.ModifyHappiness(s.Dice.Between(0, 3))
		case "Autumn":
			if c.WorkBusinessID != nil {
				c.ModifyWealth(int64(s.Dice.Between(1, 10)))
			}
		}

		if err := s.Citizens.Save(ctx, *c); err != nil {
			return nil, err
		}
	}

	return events, nil
}

func stamp(clk fief.Clock, e fief.Event, citizenID int64) fief.Event {
	out := fief.NewEvent(clk, e.Type, e.Message)
	out.CitizenID = &citizenID
	return out
}
