package town

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fiefforge/internal/app/achievements"
	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"
)

var (
	ErrInvalidRequest = errors.New("invalid town request")
	ErrNotRepairable  = errors.New("building already in perfect condition")
)

const (
	recruitCost     = 50
	bulkRecruitCost = 40
	repairAmount    = 10
	// Selling back to the market pays below list price.
	sellPriceRatio = 0.8
)

var bulkRecruitCounts = map[int]bool{5: true, 10: true, 25: true}

// UseCase covers the lord's management actions: construction, business
// founding, recruitment, assignments, repairs, tax policy, and the
// market. Every mutation runs in its own transaction.
type UseCase struct {
	TxManager  ports.TxManager
	Clocks     ports.ClockRepository
	Citizens   ports.CitizenRepository
	Businesses ports.BusinessRepository
	Buildings  ports.BuildingRepository
	Areas      ports.AreaRepository
	Inventory  ports.InventoryRepository
	Events     ports.EventRepository
	Tracker    achievements.Tracker
	Dice       fief.Dice
}

// ConstructBuilding erects a template building in an area, charging the
// town treasury. Templates gated behind achievements stay locked until
// the achievement is earned.
func (u UseCase) ConstructBuilding(ctx context.Context, ownerID, templateID, name string, areaID int64) (fief.Building, error) {
	name = strings.TrimSpace(name)
	if ownerID == "" || name == "" {
		return fief.Building{}, ErrInvalidRequest
	}
	template, ok := fief.BuildingTemplateByID(templateID)
	if !ok {
		return fief.Building{}, ports.ErrUnknownTemplate
	}

	var out fief.Building
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if template.UnlockAchievement != "" {
			unlocked, err := u.Tracker.IsUnlocked(txCtx, ownerID, template.UnlockAchievement)
			if err != nil {
				return err
			}
			if !unlocked {
				return ports.ErrLocked
			}
		}

		if _, err := u.Areas.GetByID(txCtx, ownerID, areaID); err != nil {
			return err
		}

		clk, err := u.Clocks.GetByOwnerID(txCtx, ownerID)
		if err != nil {
			return err
		}
		if !clk.SubtractTreasury(template.Cost) {
			return ports.ErrInsufficientFunds
		}

		building := fief.NewBuildingFromTemplate(ownerID, name, areaID, template)
		siblings, err := u.Buildings.ListByArea(txCtx, ownerID, areaID)
		if err != nil {
			return err
		}
		occupied := make([][2]int, 0, len(siblings))
		for _, b := range siblings {
			occupied = append(occupied, [2]int{b.X, b.Y})
		}
		building.X, building.Y = fief.NextCoords(occupied)

		if err := u.Buildings.Create(txCtx, &building); err != nil {
			return err
		}
		if err := u.Clocks.SaveWithVersion(txCtx, clk, clk.Version); err != nil {
			return err
		}

		event := fief.NewEvent(clk, "buildings_created",
			fmt.Sprintf("%s has been constructed for %d gold.", name, template.Cost))
		if err := u.Events.Append(txCtx, ownerID, []fief.Event{event}); err != nil {
			return err
		}

		out = building
		return nil
	})
	return out, err
}

// FoundBusiness opens a business in a building. A building hosts at
// most one business.
func (u UseCase) FoundBusiness(ctx context.Context, ownerID, businessType, name string, buildingID int64) (fief.Business, error) {
	name = strings.TrimSpace(name)
	if ownerID == "" || name == "" {
		return fief.Business{}, ErrInvalidRequest
	}
	bt, ok := fief.BusinessTypeByID(businessType)
	if !ok {
		return fief.Business{}, ports.ErrUnknownTemplate
	}

	var out fief.Business
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := u.Buildings.GetByID(txCtx, ownerID, buildingID); err != nil {
			return err
		}
		existing, err := u.Businesses.List(txCtx, ownerID)
		if err != nil {
			return err
		}
		for _, b := range existing {
			if b.BuildingID == buildingID {
				return ports.ErrConflict
			}
		}

		business := fief.NewBusiness(ownerID, name, buildingID, bt)
		if err := u.Businesses.Create(txCtx, &business); err != nil {
			return err
		}
		out = business
		return nil
	})
	return out, err
}

// RecruitCitizen brings one named adult into the fiefdom for a flat
// fee.
func (u UseCase) RecruitCitizen(ctx context.Context, ownerID, name, gender string, age int) (fief.Citizen, error) {
	name = strings.TrimSpace(name)
	if ownerID == "" || name == "" || age < fief.AgeAdult || age > 50 {
		return fief.Citizen{}, ErrInvalidRequest
	}
	if gender != fief.GenderMale && gender != fief.GenderFemale {
		return fief.Citizen{}, ErrInvalidRequest
	}

	var out fief.Citizen
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		clk, err := u.Clocks.GetByOwnerID(txCtx, ownerID)
		if err != nil {
			return err
		}
		if !clk.SubtractTreasury(recruitCost) {
			return ports.ErrInsufficientFunds
		}

		citizen := fief.NewCitizen(ownerID, name, age, gender, 0)
		if err := u.Citizens.Create(txCtx, &citizen); err != nil {
			return err
		}
		if err := u.Clocks.SaveWithVersion(txCtx, clk, clk.Version); err != nil {
			return err
		}

		event := fief.NewEvent(clk, "citizen_recruited",
			fmt.Sprintf("%s has been recruited to your fiefdom.", name))
		event.CitizenID = &citizen.ID
		if err := u.Events.Append(txCtx, ownerID, []fief.Event{event}); err != nil {
			return err
		}

		out = citizen
		return nil
	})
	return out, err
}

// BulkSummary reports the outcome of a bulk recruitment drive.
type BulkSummary struct {
	Recruited int
	Housed    int
	Employed  int
	Cost      int64
}

// RecruitBulk brings in a batch of randomly generated settlers at a
// discounted rate, backfilling free homes and jobs as it goes.
func (u UseCase) RecruitBulk(ctx context.Context, ownerID string, count int) (BulkSummary, error) {
	if ownerID == "" || !bulkRecruitCounts[count] {
		return BulkSummary{}, ErrInvalidRequest
	}

	var summary BulkSummary
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		clk, err := u.Clocks.GetByOwnerID(txCtx, ownerID)
		if err != nil {
			return err
		}
		totalCost := int64(count * bulkRecruitCost)
		if !clk.SubtractTreasury(totalCost) {
			return ports.ErrInsufficientFunds
		}

		homes, err := u.freeHomes(txCtx, ownerID)
		if err != nil {
			return err
		}
		jobs, err := u.freeJobs(txCtx, ownerID)
		if err != nil {
			return err
		}

		for i := 0; i < count; i++ {
			gender := fief.RandomGender(u.Dice)
			citizen := fief.NewCitizen(ownerID, fief.RandomFullName(u.Dice, gender),
				u.Dice.Between(18, 45), gender, int64(u.Dice.Between(10, 100)))
			citizen.Health = u.Dice.Between(60, 100)
			citizen.Happiness = u.Dice.Between(50, 90)

			if len(homes) > 0 {
				citizen.HomeBuildingID = &homes[0].ID
				homes[0].free--
				if homes[0].free == 0 {
					homes = homes[1:]
				}
				summary.Housed++
			}
			if len(jobs) > 0 {
				citizen.WorkBusinessID = &jobs[0].business.ID
				jobs[0].business.CurrentEmployees++
				if !jobs[0].business.CanHire() {
					if err := u.Businesses.Save(txCtx, jobs[0].business); err != nil {
						return err
					}
					jobs = jobs[1:]
				}
				summary.Employed++
			}

			if err := u.Citizens.Create(txCtx, &citizen); err != nil {
				return err
			}
			summary.Recruited++
		}

		// Flush businesses that still have headroom but took hires.
		for i := range jobs {
			if err := u.Businesses.Save(txCtx, jobs[i].business); err != nil {
				return err
			}
		}

		if err := u.Clocks.SaveWithVersion(txCtx, clk, clk.Version); err != nil {
			return err
		}

		summary.Cost = totalCost
		event := fief.NewEvent(clk, "bulk_recruitment",
			fmt.Sprintf("%d new citizens have been recruited to your fiefdom. %d housed, %d employed.",
				summary.Recruited, summary.Housed, summary.Employed))
		return u.Events.Append(txCtx, ownerID, []fief.Event{event})
	})
	return summary, err
}

type homeSlot struct {
	ID   int64
	free int
}

type jobSlot struct {
	business fief.Business
}

func (u UseCase) freeHomes(ctx context.Context, ownerID string) ([]homeSlot, error) {
	buildings, err := u.Buildings.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	citizens, err := u.Citizens.ListAlive(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	residents := make(map[int64]int)
	for _, c := range citizens {
		if c.HomeBuildingID != nil {
			residents[*c.HomeBuildingID]++
		}
	}

	var out []homeSlot
	for _, b := range buildings {
		if b.Type != fief.BuildingHouse {
			continue
		}
		if free := b.Capacity - residents[b.ID]; free > 0 {
			out = append(out, homeSlot{ID: b.ID, free: free})
		}
	}
	return out, nil
}

func (u UseCase) freeJobs(ctx context.Context, ownerID string) ([]jobSlot, error) {
	businesses, err := u.Businesses.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var out []jobSlot
	for _, b := range businesses {
		if b.CanHire() {
			out = append(out, jobSlot{business: b})
		}
	}
	return out, nil
}

// AssignHome moves a citizen into a house, or out of housing when
// buildingID is zero.
func (u UseCase) AssignHome(ctx context.Context, ownerID string, citizenID, buildingID int64) error {
	return u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		citizen, err := u.Citizens.GetByID(txCtx, ownerID, citizenID)
		if err != nil {
			return err
		}

		if buildingID == 0 {
			citizen.HomeBuildingID = nil
			return u.Citizens.Save(txCtx, citizen)
		}

		building, err := u.Buildings.GetByID(txCtx, ownerID, buildingID)
		if err != nil {
			return err
		}
		if building.Type != fief.BuildingHouse {
			return ErrInvalidRequest
		}

		citizens, err := u.Citizens.ListAlive(txCtx, ownerID)
		if err != nil {
			return err
		}
		residents := 0
		for _, c := range citizens {
			if c.HomeBuildingID != nil && *c.HomeBuildingID == buildingID {
				residents++
			}
		}
		if residents >= building.Capacity {
			return ports.ErrNoCapacity
		}

		citizen.HomeBuildingID = &buildingID
		return u.Citizens.Save(txCtx, citizen)
	})
}

// AssignJob employs a work-eligible citizen at a business, or fires
// them when businessID is zero.
func (u UseCase) AssignJob(ctx context.Context, ownerID string, citizenID, businessID int64) error {
	return u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		citizen, err := u.Citizens.GetByID(txCtx, ownerID, citizenID)
		if err != nil {
			return err
		}

		if businessID == 0 {
			if citizen.WorkBusinessID != nil {
				if prev, err := u.Businesses.GetByID(txCtx, ownerID, *citizen.WorkBusinessID); err == nil {
					if prev.CurrentEmployees > 0 {
						prev.CurrentEmployees--
					}
					if err := u.Businesses.Save(txCtx, prev); err != nil {
						return err
					}
				}
			}
			citizen.WorkBusinessID = nil
			return u.Citizens.Save(txCtx, citizen)
		}

		if !citizen.CanWork() {
			return ErrInvalidRequest
		}

		business, err := u.Businesses.GetByID(txCtx, ownerID, businessID)
		if err != nil {
			return err
		}
		if !business.CanHire() {
			return ports.ErrNoCapacity
		}

		citizen.WorkBusinessID = &businessID
		business.CurrentEmployees++
		if err := u.Citizens.Save(txCtx, citizen); err != nil {
			return err
		}
		return u.Businesses.Save(txCtx, business)
	})
}

// RepairBuilding restores condition at the treasury's expense.
func (u UseCase) RepairBuilding(ctx context.Context, ownerID string, buildingID int64) (fief.Building, error) {
	var out fief.Building
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		building, err := u.Buildings.GetByID(txCtx, ownerID, buildingID)
		if err != nil {
			return err
		}
		if building.Condition >= 100 {
			return ErrNotRepairable
		}

		clk, err := u.Clocks.GetByOwnerID(txCtx, ownerID)
		if err != nil {
			return err
		}
		if !clk.SubtractTreasury(building.RepairCost()) {
			return ports.ErrInsufficientFunds
		}

		building.Repair(repairAmount)
		if err := u.Buildings.Save(txCtx, building); err != nil {
			return err
		}
		if err := u.Clocks.SaveWithVersion(txCtx, clk, clk.Version); err != nil {
			return err
		}
		out = building
		return nil
	})
	return out, err
}

// SetTaxRate updates an area's tax policy, clamped to [0, 0.5].
func (u UseCase) SetTaxRate(ctx context.Context, ownerID string, areaID int64, rate float64) (fief.Area, error) {
	if rate < 0 {
		rate = 0
	}
	if rate > 0.5 {
		rate = 0.5
	}

	var out fief.Area
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		area, err := u.Areas.GetByID(txCtx, ownerID, areaID)
		if err != nil {
			return err
		}
		area.TaxRate = rate
		if err := u.Areas.Save(txCtx, area); err != nil {
			return err
		}
		out = area
		return nil
	})
	return out, err
}

// MarketBuy purchases goods into the stockpile at list price.
func (u UseCase) MarketBuy(ctx context.Context, ownerID, goodID string, quantity int) (int64, error) {
	if quantity < 1 {
		return 0, ErrInvalidRequest
	}
	good, ok := fief.GoodByID(goodID)
	if !ok {
		return 0, ports.ErrNotFound
	}

	totalCost := good.Price * int64(quantity)
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		clk, err := u.Clocks.GetByOwnerID(txCtx, ownerID)
		if err != nil {
			return err
		}
		if !clk.SubtractTreasury(totalCost) {
			return ports.ErrInsufficientFunds
		}
		if err := u.Inventory.Add(txCtx, ownerID, goodID, quantity); err != nil {
			return err
		}
		return u.Clocks.SaveWithVersion(txCtx, clk, clk.Version)
	})
	return totalCost, err
}

// MarketSell liquidates stockpiled goods at a discount to list price.
func (u UseCase) MarketSell(ctx context.Context, ownerID, goodID string, quantity int) (int64, error) {
	if quantity < 1 {
		return 0, ErrInvalidRequest
	}
	good, ok := fief.GoodByID(goodID)
	if !ok {
		return 0, ports.ErrNotFound
	}

	proceeds := int64(float64(good.Price)*sellPriceRatio) * int64(quantity)
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.Inventory.Remove(txCtx, ownerID, goodID, quantity); err != nil {
			return err
		}
		clk, err := u.Clocks.GetByOwnerID(txCtx, ownerID)
		if err != nil {
			return err
		}
		clk.AddTreasury(proceeds)
		return u.Clocks.SaveWithVersion(txCtx, clk, clk.Version)
	})
	return proceeds, err
}
