package economy

import (
	"context"
	"fmt"

	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"
)

const (
	baseWage        = 5
	consumptionRate = 0.3
	upkeepInterval  = 30
	// Taxes are due on the last day of every season.
	taxCollectionDay = fief.DaysPerSeason
	foodPerCitizen   = 1
)

// seasonalModifiers scale production output by business type. Types
// not listed use the season's default.
var seasonalModifiers = map[string]map[string]float64{
	"Spring": {"farm": 1.2, "ranch": 1.1, "default": 1.0},
	"Summer": {"farm": 1.5, "ranch": 1.2, "lumber_mill": 1.1, "default": 1.0},
	"Autumn": {"farm": 1.3, "ranch": 1.0, "default": 1.0},
	"Winter": {"farm": 0.3, "ranch": 0.7, "mine": 1.2, "default": 0.9},
}

// SeasonalModifier returns the production multiplier for a business
// type in a season.
func SeasonalModifier(season, businessType string) float64 {
	mods, ok := seasonalModifiers[season]
	if !ok {
		mods = seasonalModifiers["Spring"]
	}
	if m, ok := mods[businessType]; ok {
		return m
	}
	return mods["default"]
}

// Simulator runs the daily economic pipeline: production, wages, food,
// consumption, upkeep, and taxation. It must be called inside a
// transaction.
type Simulator struct {
	Citizens   ports.CitizenRepository
	Businesses ports.BusinessRepository
	Buildings  ports.BuildingRepository
	Areas      ports.AreaRepository
	Inventory  ports.InventoryRepository
	Dice       fief.Dice
}

func (s Simulator) RunDaily(ctx context.Context, clk *fief.Clock) ([]fief.Event, error) {
	var events []fief.Event

	production, err := s.runProduction(ctx, clk)
	if err != nil {
		return nil, err
	}
	events = append(events, production...)

	if err := s.runWages(ctx, clk); err != nil {
		return nil, err
	}

	food, err := s.runFood(ctx, clk)
	if err != nil {
		return nil, err
	}
	events = append(events, food...)

	if err := s.runConsumption(ctx, clk); err != nil {
		return nil, err
	}

	if clk.Day%upkeepInterval == 0 {
		upkeep, err := s.runUpkeep(ctx, clk)
		if err != nil {
			return nil, err
		}
		events = append(events, upkeep...)
	}

	if clk.DayInSeason() == taxCollectionDay {
		taxes, err := s.collectTaxes(ctx, clk)
		if err != nil {
			return nil, err
		}
		events = append(events, taxes...)
	}

	return events, nil
}

// runProduction has every operational business produce its goods,
// consuming recipe inputs from the shared stockpile and crediting the
// sale value to the business treasury.
func (s Simulator) runProduction(ctx context.Context, clk *fief.Clock) ([]fief.Event, error) {
	businesses, err := s.Businesses.List(ctx, clk.OwnerID)
	if err != nil {
		return nil, err
	}

	season := clk.Season()
	totalValue := int64(0)
	totalConsumed := 0

	for _, business := range businesses {
		building, err := s.Buildings.GetByID(ctx, clk.OwnerID, business.BuildingID)
		if err != nil || !building.Operational() {
			continue
		}

		mod := SeasonalModifier(season, business.Type)
		produced := false

		for _, goodID := range business.Products {
			good, ok := fief.GoodByID(goodID)
			if !ok {
				continue
			}

			if !good.Resource && len(good.Recipe) > 0 {
				consumed, err := s.consumeRecipe(ctx, clk.OwnerID, good.Recipe)
				if err != nil {
					return nil, err
				}
				if consumed < 0 {
					continue
				}
				totalConsumed += consumed
			}

			baseQty := 2
			if good.Resource {
				baseQty = 5
			}
			qty := int(float64(baseQty) * business.ProductionCapacity() * mod)
			if qty <= 0 {
				continue
			}

			if err := s.Inventory.Add(ctx, clk.OwnerID, goodID, qty); err != nil {
				return nil, err
			}
			value := int64(qty) * good.Price
			business.AddTreasury(value)
			totalValue += value
			produced = true
		}

		if produced && s.Dice.Chance(10) {
			business.ModifyReputation(1)
		}

		if err := s.Businesses.Save(ctx, business); err != nil {
			return nil, err
		}
	}

	if totalValue == 0 {
		return nil, nil
	}

	msg := fmt.Sprintf("Businesses produced goods worth %d gold today", totalValue)
	if totalConsumed > 0 {
		msg += fmt.Sprintf(" (consuming %d resources)", totalConsumed)
	}
	return []fief.Event{fief.NewEvent(*clk, "production", msg + ".")}, nil
}

// consumeRecipe takes the recipe inputs from stock. It returns the
// number of units consumed, or -1 when stock is short (nothing is
// consumed in that case).
func (s Simulator) consumeRecipe(ctx context.Context, ownerID string, recipe map[string]int) (int, error) {
	for goodID, qty := range recipe {
		have, err := s.Inventory.Quantity(ctx, ownerID, goodID)
		if err != nil {
			return 0, err
		}
		if have < qty {
			return -1, nil
		}
	}

	consumed := 0
	for goodID, qty := range recipe {
		if err := s.Inventory.Remove(ctx, ownerID, goodID, qty); err != nil {
			return 0, err
		}
		consumed += qty
	}
	return consumed, nil
}

// runWages pays every worker from their employer's treasury. Insolvent
// employers anger workers and lose reputation.
func (s Simulator) runWages(ctx context.Context, clk *fief.Clock) error {
	citizens, err := s.Citizens.ListAlive(ctx, clk.OwnerID)
	if err != nil {
		return err
	}

	for _, worker := range citizens {
		if worker.WorkBusinessID == nil {
			continue
		}
		business, err := s.Businesses.GetByID(ctx, clk.OwnerID, *worker.WorkBusinessID)
		if err != nil {
			continue
		}

		wage := int64(baseWage + business.Reputation/20)

		if business.SubtractTreasury(wage) {
			worker.ModifyWealth(wage)
			if s.Dice.Chance(15) {
				s.trainWorker(&worker, business.Type)
			}
			if s.Dice.Chance(5) {
				business.ModifyReputation(1)
			}
		} else {
			worker.ModifyHappiness(-5)
			business.ModifyReputation(-2)
		}

		if err := s.Citizens.Save(ctx, worker); err != nil {
			return err
		}
		if err := s.Businesses.Save(ctx, business); err != nil {
			return err
		}
	}

	return nil
}

// trainWorker gives the worker a shot at leveling the skills their
// trade exercises. Gains slow down at higher levels.
func (s Simulator) trainWorker(worker *fief.Citizen, businessType string) {
	for _, skill := range fief.SkillsForBusinessType(businessType) {
		level := worker.SkillLevel(skill)
		gainChance := 100 - level
		if gainChance < 10 {
			gainChance = 10
		}
		if s.Dice.Chance(gainChance) {
			worker.SetSkillLevel(skill, level+1)
		}
	}
}

// runFood feeds every citizen from the stockpile. Bread is preferred;
// wheat works at double quantity. Winter raises the need.
func (s Simulator) runFood(ctx context.Context, clk *fief.Clock) ([]fief.Event, error) {
	citizens, err := s.Citizens.ListAlive(ctx, clk.OwnerID)
	if err != nil {
		return nil, err
	}

	foodNeeded := foodPerCitizen
	if clk.Season() == "Winter" {
		foodNeeded = 2 // ceil(1 * 1.5)
	}

	hungry := 0
	for _, citizen := range citizens {
		fed := false

		if have, _ := s.Inventory.Quantity(ctx, clk.OwnerID, "bread"); have >= foodNeeded {
			if err := s.Inventory.Remove(ctx, clk.OwnerID, "bread", foodNeeded); err != nil {
				return nil, err
			}
			fed = true
			if s.Dice.Chance(20) {
				citizen.ModifyHappiness(1)
			}
		} else if have, _ := s.Inventory.Quantity(ctx, clk.OwnerID, "wheat"); have >= foodNeeded*2 {
			if err := s.Inventory.Remove(ctx, clk.OwnerID, "wheat", foodNeeded*2); err != nil {
				return nil, err
			}
			fed = true
		}

		if fed {
			if s.Dice.Chance(10) {
				citizen.ModifyHealth(1)
			}
		} else {
			hungry++
			citizen.ModifyHappiness(-5)
			citizen.ModifyHealth(-2)
		}

		if err := s.Citizens.Save(ctx, citizen); err != nil {
			return nil, err
		}
	}

	if hungry == 0 {
		return nil, nil
	}
	return []fief.Event{fief.NewEvent(*clk, "hunger",
		fmt.Sprintf("%d citizens went hungry today! Build farms and bakeries.", hungry))}, nil
}

// runConsumption has citizens spend a share of their wealth on daily
// needs.
func (s Simulator) runConsumption(ctx context.Context, clk *fief.Clock) error {
	citizens, err := s.Citizens.ListAlive(ctx, clk.OwnerID)
	if err != nil {
		return err
	}

	for _, citizen := range citizens {
		consumption := int64(float64(citizen.Wealth) * consumptionRate / 30)
		if consumption < 1 {
			consumption = 1
		}
		if consumption > 10 {
			consumption = 10
		}

		if citizen.Wealth >= consumption {
			citizen.ModifyWealth(-consumption)
			if s.Dice.Roll(10) <= 3 {
				citizen.ModifyHappiness(1)
			}
		} else {
			citizen.ModifyHappiness(-3)
			citizen.ModifyHealth(-1)
		}

		if err := s.Citizens.Save(ctx, citizen); err != nil {
			return err
		}
	}

	return nil
}

// runUpkeep debits monthly maintenance from the town treasury. Unpaid
// buildings degrade; any building can also decay naturally.
func (s Simulator) runUpkeep(ctx context.Context, clk *fief.Clock) ([]fief.Event, error) {
	buildings, err := s.Buildings.List(ctx, clk.OwnerID)
	if err != nil {
		return nil, err
	}

	totalUpkeep := int64(0)
	for _, building := range buildings {
		changed := false

		if building.UpkeepCost > 0 {
			if clk.SubtractTreasury(building.UpkeepCost) {
				totalUpkeep += building.UpkeepCost
			} else {
				building.Degrade(5)
				changed = true
			}
		}

		if s.Dice.Chance(10) {
			building.Degrade(1)
			changed = true
		}

		if changed {
			if err := s.Buildings.Save(ctx, building); err != nil {
				return nil, err
			}
		}
	}

	if totalUpkeep == 0 {
		return nil, nil
	}
	return []fief.Event{fief.NewEvent(*clk, "upkeep",
		fmt.Sprintf("Building upkeep cost %d gold this month.", totalUpkeep))}, nil
}

// collectTaxes levies each area's rate on the wealth of its housed
// citizens and credits the take to the town treasury.
func (s Simulator) collectTaxes(ctx context.Context, clk *fief.Clock) ([]fief.Event, error) {
	areas, err := s.Areas.List(ctx, clk.OwnerID)
	if err != nil {
		return nil, err
	}
	citizens, err := s.Citizens.ListAlive(ctx, clk.OwnerID)
	if err != nil {
		return nil, err
	}

	// Resolve each housed citizen's area through their home building.
	buildingArea := make(map[int64]int64)
	buildings, err := s.Buildings.List(ctx, clk.OwnerID)
	if err != nil {
		return nil, err
	}
	for _, b := range buildings {
		buildingArea[b.ID] = b.AreaID
	}

	rates := make(map[int64]float64, len(areas))
	for _, a := range areas {
		rates[a.ID] = a.TaxRate
	}

	totalTax := int64(0)
	for _, citizen := range citizens {
		if citizen.HomeBuildingID == nil {
			continue
		}
		areaID, ok := buildingArea[*citizen.HomeBuildingID]
		if !ok {
			continue
		}
		rate := rates[areaID]

		tax := int64(float64(citizen.Wealth) * rate)
		if tax <= 0 || citizen.Wealth < tax {
			continue
		}

		citizen.ModifyWealth(-tax)
		totalTax += tax
		if rate > 0.1 {
			citizen.ModifyHappiness(-2)
		}
		if err := s.Citizens.Save(ctx, citizen); err != nil {
			return nil, err
		}
	}

	if totalTax == 0 {
		return nil, nil
	}
	clk.AddTreasury(totalTax)
	return []fief.Event{fief.NewEvent(*clk, "tax_collection",
		fmt.Sprintf("Collected %d gold in taxes this season.", totalTax))}, nil
}
