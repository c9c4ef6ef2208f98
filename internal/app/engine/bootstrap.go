package engine

import (
	"context"
	"errors"
	"fmt"

	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"
)

const (
	starterPopulation = 10
	starterCottages   = 5
)

// BootstrapResult describes the fiefdom after the bootstrap pass.
// Founded is true only when this call created the realm.
type BootstrapResult struct {
	OwnerID    string `json:"owner_id"`
	Founded    bool   `json:"founded"`
	Treasury   int64  `json:"treasury"`
	Population int    `json:"population"`
	Buildings  int    `json:"buildings"`
	Areas      int    `json:"areas"`
}

// Bootstrap ensures a fiefdom exists and is liveable: the calendar,
// three districts, a handful of settlers, and a starting stockpile are
// created the first time, and every call houses homeless citizens and
// employs jobless adults where space remains. Safe to call repeatedly.
func (u *UseCase) Bootstrap(ctx context.Context, ownerID string) (BootstrapResult, error) {
	if ownerID == "" {
		return BootstrapResult{}, ErrInvalidRequest
	}

	var result BootstrapResult
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		var founded []fief.Event

		clk, err := u.Clocks.GetByOwnerID(txCtx, ownerID)
		if errors.Is(err, ports.ErrNotFound) {
			clk = fief.NewClock(ownerID)
			if err := u.Clocks.Create(txCtx, clk); err != nil {
				return err
			}
			for goodID, qty := range fief.StarterInventory() {
				if err := u.Inventory.Add(txCtx, ownerID, goodID, qty); err != nil {
					return err
				}
			}
			result.Founded = true
		} else if err != nil {
			return err
		}

		areas, err := u.Areas.List(txCtx, ownerID)
		if err != nil {
			return err
		}
		if len(areas) == 0 {
			areas = []fief.Area{
				{OwnerID: ownerID, Name: "Town Center", Description: "The heart of your fiefdom.", TaxRate: 0.05, MaxCapacity: 200},
				{OwnerID: ownerID, Name: "Farmlands", Description: "Fertile fields surrounding the town.", TaxRate: 0.05, MaxCapacity: 150},
				{OwnerID: ownerID, Name: "Market District", Description: "Where commerce happens.", TaxRate: 0.05, MaxCapacity: 100},
			}
			for i := range areas {
				if err := u.Areas.Create(txCtx, &areas[i]); err != nil {
					return err
				}
			}
			founded = append(founded, fief.NewEvent(clk, "area_created",
				"Your fiefdom has been founded with three districts."))
		}

		buildings, err := u.Buildings.List(txCtx, ownerID)
		if err != nil {
			return err
		}
		businesses, err := u.Businesses.List(txCtx, ownerID)
		if err != nil {
			return err
		}
		if len(buildings) == 0 {
			buildings, err = u.seedBuildings(txCtx, ownerID, areas)
			if err != nil {
				return err
			}
			businesses, err = u.seedBusinesses(txCtx, ownerID, buildings)
			if err != nil {
				return err
			}
		}

		citizens, err := u.Citizens.ListAlive(txCtx, ownerID)
		if err != nil {
			return err
		}
		if len(citizens) == 0 {
			if err := u.seedCitizens(txCtx, ownerID, buildings, businesses); err != nil {
				return err
			}
			founded = append(founded, fief.NewEvent(clk, "population_created",
				fmt.Sprintf("%d settlers have arrived to build a new life.", starterPopulation)))
			citizens, err = u.Citizens.ListAlive(txCtx, ownerID)
			if err != nil {
				return err
			}
		}

		if err := u.backfillHomes(txCtx, citizens, buildings); err != nil {
			return err
		}
		if err := u.backfillJobs(txCtx, citizens, businesses); err != nil {
			return err
		}

		if len(founded) > 0 {
			if err := u.Events.Append(txCtx, ownerID, founded); err != nil {
				return err
			}
		}

		result.OwnerID = ownerID
		result.Treasury = clk.Treasury
		result.Population = len(citizens)
		result.Buildings = len(buildings)
		result.Areas = len(areas)
		return nil
	})
	if err != nil {
		return BootstrapResult{}, err
	}
	if result.Founded {
		u.logger().Info("fiefdom founded", "owner_id", ownerID, "population", result.Population)
	}
	return result, nil
}

// backfillHomes moves homeless citizens into houses that still have
// room.
func (u *UseCase) backfillHomes(ctx context.Context, citizens []fief.Citizen, buildings []fief.Building) error {
	occupants := make(map[int64]int)
	for _, c := range citizens {
		if c.HomeBuildingID != nil {
			occupants[*c.HomeBuildingID]++
		}
	}

	var houses []*fief.Building
	for i := range buildings {
		if buildings[i].Type == fief.BuildingHouse {
			houses = append(houses, &buildings[i])
		}
	}

	for i := range citizens {
		c := &citizens[i]
		if c.HomeBuildingID != nil {
			continue
		}
		for _, house := range houses {
			if occupants[house.ID] >= house.Capacity {
				continue
			}
			c.HomeBuildingID = &house.ID
			occupants[house.ID]++
			if err := u.Citizens.Save(ctx, *c); err != nil {
				return err
			}
			break
		}
	}
	return nil
}

// backfillJobs places jobless working-age citizens into businesses
// with open positions.
func (u *UseCase) backfillJobs(ctx context.Context, citizens []fief.Citizen, businesses []fief.Business) error {
	hired := make(map[int64]bool)
	for i := range citizens {
		c := &citizens[i]
		if c.WorkBusinessID != nil || !c.CanWork() {
			continue
		}
		for j := range businesses {
			if !businesses[j].CanHire() {
				continue
			}
			c.WorkBusinessID = &businesses[j].ID
			businesses[j].CurrentEmployees++
			hired[businesses[j].ID] = true
			if err := u.Citizens.Save(ctx, *c); err != nil {
				return err
			}
			break
		}
	}
	for j := range businesses {
		if hired[businesses[j].ID] {
			if err := u.Businesses.Save(ctx, businesses[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (u *UseCase) seedBuildings(ctx context.Context, ownerID string, areas []fief.Area) ([]fief.Building, error) {
	town, farmland := areas[0], areas[1]

	type seed struct {
		template string
		name     string
		areaID   int64
	}
	var seeds []seed
	for i := 1; i <= starterCottages; i++ {
		seeds = append(seeds, seed{"cottage", fmt.Sprintf("Cottage %d", i), town.ID})
	}
	seeds = append(seeds,
		seed{"workshop", "Town Smithy", town.ID},
		seed{"farm", "Town Farm", farmland.ID},
	)

	occupied := make(map[int64][][2]int)
	out := make([]fief.Building, 0, len(seeds))
	for _, s := range seeds {
		template, ok := fief.BuildingTemplateByID(s.template)
		if !ok {
			return nil, ports.ErrUnknownTemplate
		}
		building := fief.NewBuildingFromTemplate(ownerID, s.name, s.areaID, template)
		building.X, building.Y = fief.NextCoords(occupied[s.areaID])
		occupied[s.areaID] = append(occupied[s.areaID], [2]int{building.X, building.Y})

		if err := u.Buildings.Create(ctx, &building); err != nil {
			return nil, err
		}
		out = append(out, building)
	}
	return out, nil
}

func (u *UseCase) seedBusinesses(ctx context.Context, ownerID string, buildings []fief.Building) ([]fief.Business, error) {
	var smithy, farm *fief.Building
	for i := range buildings {
		switch buildings[i].TemplateID {
		case "workshop":
			smithy = &buildings[i]
		case "farm":
			farm = &buildings[i]
		}
	}

	var out []fief.Business
	for _, s := range []struct {
		businessType string
		name         string
		building     *fief.Building
	}{
		{"blacksmith", "The Iron Anvil", smithy},
		{"farm", "Town Farm", farm},
	} {
		bt, ok := fief.BusinessTypeByID(s.businessType)
		if !ok || s.building == nil {
			return nil, ports.ErrUnknownTemplate
		}
		business := fief.NewBusiness(ownerID, s.name, s.building.ID, bt)
		if err := u.Businesses.Create(ctx, &business); err != nil {
			return nil, err
		}
		out = append(out, business)
	}
	return out, nil
}

func (u *UseCase) seedCitizens(ctx context.Context, ownerID string, buildings []fief.Building, businesses []fief.Business) error {
	var homes []*fief.Building
	for i := range buildings {
		if buildings[i].Type == fief.BuildingHouse {
			homes = append(homes, &buildings[i])
		}
	}
	homeLoad := make(map[int64]int)

	jobIdx := 0
	for i := 0; i < starterPopulation; i++ {
		gender := fief.RandomGender(u.Dice)
		citizen := fief.NewCitizen(ownerID, fief.RandomFullName(u.Dice, gender),
			u.Dice.Between(18, 45), gender, int64(u.Dice.Between(10, 100)))

		for _, home := range homes {
			if homeLoad[home.ID] < home.Capacity {
				citizen.HomeBuildingID = &home.ID
				homeLoad[home.ID]++
				break
			}
		}

		for jobIdx < len(businesses) && !businesses[jobIdx].CanHire() {
			jobIdx++
		}
		if jobIdx < len(businesses) {
			citizen.WorkBusinessID = &businesses[jobIdx].ID
			businesses[jobIdx].CurrentEmployees++
		}

		if err := u.Citizens.Create(ctx, &citizen); err != nil {
			return err
		}
	}

	for _, b := range businesses {
		if b.CurrentEmployees > 0 {
			if err := u.Businesses.Save(ctx, b); err != nil {
				return err
			}
		}
	}
	return nil
}
