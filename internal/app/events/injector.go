package events

import (
	"context"
	"fmt"
	"strings"

	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"
)

// Injector rolls the daily random event and applies its effects. Admin
// tooling can force a specific event through Trigger; both paths run
// the same handlers. Must be called inside a transaction.
type Injector struct {
	Citizens  ports.CitizenRepository
	Buildings ports.BuildingRepository
	Dice      fief.Dice
}

// MaybeFire rolls the daily event chance and, on a hit, draws a
// season-eligible event and applies it.
func (inj Injector) MaybeFire(ctx context.Context, clk *fief.Clock) ([]fief.Event, error) {
	if inj.Dice.Roll(100) > fief.BaseEventChance {
		return nil, nil
	}

	def, ok := fief.DrawRandomEvent(inj.Dice, clk.Season())
	if !ok {
		return nil, nil
	}
	return inj.apply(ctx, clk, def)
}

// Trigger forces the named event regardless of season or daily chance.
func (inj Injector) Trigger(ctx context.Context, clk *fief.Clock, eventID string) ([]fief.Event, error) {
	def, ok := fief.RandomEventByID(eventID)
	if !ok {
		return nil, ports.ErrUnknownEvent
	}
	return inj.apply(ctx, clk, def)
}

// effectFunc applies one catalog event's effect and returns the final
// message plus the citizen the event concerns, if any.
type effectFunc func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error)

// effectHandlers keys every event with a mechanical effect by catalog
// id; ids absent here (mysterious_stranger, wildlife_sighting) carry
// their message unchanged. Both the daily weighted draw and the admin
// trigger dispatch through this registry.
var effectHandlers = map[string]effectFunc{
	"traveling_merchant": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		gold := inj.Dice.Between(30, 80)
		clk.AddTreasury(int64(gold))
		return fmt.Sprintf("%s (+%d gold)", message, gold), nil, nil
	},
	"bountiful_harvest": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		gold := inj.Dice.Between(50, 150)
		clk.AddTreasury(int64(gold))
		err := inj.adjustAllHappiness(ctx, clk.OwnerID, 3)
		return fmt.Sprintf("%s (+%d gold, +3 happiness)", message, gold), nil, err
	},
	"skilled_immigrant": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		return inj.settleImmigrant(ctx, clk, message)
	},
	"festival": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		cost := inj.Dice.Between(10, 30)
		clk.SubtractTreasury(int64(cost))
		err := inj.adjustAllHappiness(ctx, clk.OwnerID, 8)
		return fmt.Sprintf("%s (+8 happiness, -%d gold)", message, cost), nil, err
	},
	"good_weather": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		gold := inj.Dice.Between(10, 30)
		clk.AddTreasury(int64(gold))
		return fmt.Sprintf("%s (+%d gold)", message, gold), nil, nil
	},
	"treasure_found": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		gold := inj.Dice.Between(100, 300)
		clk.AddTreasury(int64(gold))
		err := inj.adjustAllHappiness(ctx, clk.OwnerID, 5)
		return fmt.Sprintf("%s (+%d gold!)", message, gold), nil, err
	},
	"royal_favor": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		gold := inj.Dice.Between(200, 500)
		clk.AddTreasury(int64(gold))
		err := inj.adjustAllHappiness(ctx, clk.OwnerID, 10)
		return fmt.Sprintf("%s (+%d gold, +10 happiness)", message, gold), nil, err
	},
	"miraculous_recovery": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		err := inj.adjustAllHealth(ctx, clk.OwnerID, 15)
		return message + " (+15 health to all)", nil, err
	},
	"illness_outbreak": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		loss := inj.Dice.Between(5, 15)
		err := inj.damageRandomCitizens(ctx, clk.OwnerID, loss, 3)
		return fmt.Sprintf("%s (-%d health to some citizens)", message, loss), nil, err
	},
	"harsh_weather": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		gold := inj.Dice.Between(20, 50)
		clk.SubtractTreasury(int64(gold))
		err := inj.adjustAllHappiness(ctx, clk.OwnerID, -5)
		if err == nil {
			err = inj.damageRandomBuildings(ctx, clk.OwnerID, 10, 2)
		}
		return fmt.Sprintf("%s (-%d gold, -5 happiness)", message, gold), nil, err
	},
	"fire": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		gold := inj.Dice.Between(30, 80)
		clk.SubtractTreasury(int64(gold))
		err := inj.damageRandomBuildings(ctx, clk.OwnerID, 20, 1)
		return fmt.Sprintf("%s (-%d gold, building damage)", message, gold), nil, err
	},
	"theft": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		gold := inj.Dice.Between(25, 75)
		clk.SubtractTreasury(int64(gold))
		err := inj.adjustAllHappiness(ctx, clk.OwnerID, -3)
		return fmt.Sprintf("%s (-%d gold)", message, gold), nil, err
	},
	"crop_blight": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		gold := inj.Dice.Between(40, 100)
		clk.SubtractTreasury(int64(gold))
		return fmt.Sprintf("%s (-%d gold in lost produce)", message, gold), nil, nil
	},
	"building_collapse": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		gold := inj.Dice.Between(20, 60)
		err := inj.damageRandomBuildings(ctx, clk.OwnerID, 30, 1)
		clk.SubtractTreasury(int64(gold))
		return fmt.Sprintf("%s (Building damage, -%d gold repairs)", message, gold), nil, err
	},
	"worker_accident": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		err := inj.damageRandomCitizens(ctx, clk.OwnerID, 20, 1)
		if err == nil {
			err = inj.adjustAllHappiness(ctx, clk.OwnerID, -2)
		}
		return message + " (Citizen injured)", nil, err
	},
	"tax_collector": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		levy := clk.Treasury / 10
		if levy < 20 {
			levy = 20
		}
		if levy > 200 {
			levy = 200
		}
		clk.SubtractTreasury(levy)
		err := inj.adjustAllHappiness(ctx, clk.OwnerID, -5)
		return fmt.Sprintf("%s (-%d gold, -5 happiness)", message, levy), nil, err
	},
	"wandering_minstrel": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		err := inj.adjustAllHappiness(ctx, clk.OwnerID, 3)
		return message + " (+3 happiness)", nil, err
	},
	"market_day": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		gold := inj.Dice.Between(5, 20)
		clk.AddTreasury(int64(gold))
		return fmt.Sprintf("%s (+%d gold)", message, gold), nil, nil
	},
	"pilgrim_passage": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		err := inj.adjustAllHappiness(ctx, clk.OwnerID, 2)
		return message + " (+2 happiness)", nil, err
	},
	"comet_sighting": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		if inj.Dice.Chance(50) {
			err := inj.adjustAllHappiness(ctx, clk.OwnerID, 5)
			return message + " Citizens see it as a good omen! (+5 happiness)", nil, err
		}
		err := inj.adjustAllHappiness(ctx, clk.OwnerID, -5)
		return message + " Some fear it portends doom. (-5 happiness)", nil, err
	},
	"wandering_knight": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		gold := inj.Dice.Between(20, 40)
		clk.SubtractTreasury(int64(gold))
		err := inj.adjustAllHappiness(ctx, clk.OwnerID, 5)
		return fmt.Sprintf("%s (-%d gold for lodging, +5 happiness, citizens feel safer)", message, gold), nil, err
	},
	"ancient_discovery": func(inj Injector, ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
		gold := inj.Dice.Between(50, 150)
		clk.AddTreasury(int64(gold))
		err := inj.adjustAllHappiness(ctx, clk.OwnerID, 10)
		return fmt.Sprintf("%s (+%d gold in artifacts, +10 happiness)", message, gold), nil, err
	},
}

func (inj Injector) apply(ctx context.Context, clk *fief.Clock, def fief.RandomEventDef) ([]fief.Event, error) {
	message := def.PickMessage(inj.Dice)

	finalMessage := message
	var citizenID *int64
	if handler, ok := effectHandlers[def.ID]; ok {
		var err error
		finalMessage, citizenID, err = handler(inj, ctx, clk, message)
		if err != nil {
			return nil, err
		}
	}

	e := fief.NewEvent(*clk, def.ID, finalMessage)
	e.Category = def.Category
	e.CitizenID = citizenID
	return []fief.Event{e}, nil
}

// settleImmigrant creates an adult newcomer and fills the {name}
// placeholder in the message.
func (inj Injector) settleImmigrant(ctx context.Context, clk *fief.Clock, message string) (string, *int64, error) {
	gender := fief.RandomGender(inj.Dice)
	name := fief.RandomFullName(inj.Dice, gender)
	citizen := fief.NewCitizen(clk.OwnerID, name, inj.Dice.Between(22, 45), gender, 0)
	if err := inj.Citizens.Create(ctx, &citizen); err != nil {
		return "", nil, err
	}
	return strings.ReplaceAll(message, "{name}", name), &citizen.ID, nil
}

func (inj Injector) adjustAllHappiness(ctx context.Context, ownerID string, amount int) error {
	citizens, err := inj.Citizens.ListAlive(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, c := range citizens {
		c.ModifyHappiness(amount)
		if err := inj.Citizens.Save(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (inj Injector) adjustAllHealth(ctx context.Context, ownerID string, amount int) error {
	citizens, err := inj.Citizens.ListAlive(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, c := range citizens {
		c.ModifyHealth(amount)
		if err := inj.Citizens.Save(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (inj Injector) damageRandomCitizens(ctx context.Context, ownerID string, amount, count int) error {
	citizens, err := inj.Citizens.ListAlive(ctx, ownerID)
	if err != nil {
		return err
	}
	inj.Dice.Shuffle(len(citizens), func(i, j int) { citizens[i], citizens[j] = citizens[j], citizens[i] })
	if count > len(citizens) {
		count = len(citizens)
	}
	for i := 0; i < count; i++ {
		citizens[i].ModifyHealth(-amount)
		if err := inj.Citizens.Save(ctx, citizens[i]); err != nil {
			return err
		}
	}
	return nil
}

func (inj Injector) damageRandomBuildings(ctx context.Context, ownerID string, amount, count int) error {
	buildings, err := inj.Buildings.List(ctx, ownerID)
	if err != nil {
		return err
	}
	inj.Dice.Shuffle(len(buildings), func(i, j int) { buildings[i], buildings[j] = buildings[j], buildings[i] })
	if count > len(buildings) {
		count = len(buildings)
	}
	for i := 0; i < count; i++ {
		buildings[i].Degrade(amount)
		// Random damage never levels a building outright.
		if buildings[i].Condition < 1 {
			buildings[i].Condition = 1
		}
		if err := inj.Buildings.Save(ctx, buildings[i]); err != nil {
			return err
		}
	}
	return nil
}
