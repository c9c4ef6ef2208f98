package town

import (
	"context"
	"errors"
	"testing"

	"fiefforge/internal/adapter/repo/memory"
	"fiefforge/internal/app/achievements"
	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"
)

func newTestUseCase(t *testing.T) (UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := UseCase{
		TxManager:  memory.NewTxManager(store),
		Clocks:     memory.NewClockRepo(store),
		Citizens:   memory.NewCitizenRepo(store),
		Businesses: memory.NewBusinessRepo(store),
		Buildings:  memory.NewBuildingRepo(store),
		Areas:      memory.NewAreaRepo(store),
		Inventory:  memory.NewInventoryRepo(store),
		Events:     memory.NewEventRepo(store),
		Tracker:    achievements.Tracker{Repo: memory.NewAchievementRepo(store)},
		Dice:       fief.NewDice(7),
	}
	return uc, store
}

func seedTown(t *testing.T, uc UseCase) (string, fief.Area) {
	t.Helper()
	ctx := context.Background()
	ownerID := "lord-1"
	if err := uc.Clocks.Create(ctx, fief.NewClock(ownerID)); err != nil {
		t.Fatalf("create clock: %v", err)
	}
	area := fief.Area{OwnerID: ownerID, Name: "Town Center", TaxRate: 0.05, MaxCapacity: 200}
	if err := uc.Areas.Create(ctx, &area); err != nil {
		t.Fatalf("create area: %v", err)
	}
	return ownerID, area
}

func TestConstructBuildingChargesTreasury(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ownerID, area := seedTown(t, uc)
	ctx := context.Background()

	building, err := uc.ConstructBuilding(ctx, ownerID, "cottage", "First Cottage", area.ID)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if building.TemplateID != "cottage" || building.Condition != 100 {
		t.Fatalf("unexpected building: %+v", building)
	}

	clk, err := uc.Clocks.GetByOwnerID(ctx, ownerID)
	if err != nil {
		t.Fatalf("get clock: %v", err)
	}
	if got, want := clk.Treasury, int64(fief.StartTreasury-100); got != want {
		t.Fatalf("treasury = %d, want %d", got, want)
	}

	events, err := uc.Events.ListRecent(ctx, ownerID, 10)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 1 || events[0].Type != "buildings_created" {
		t.Fatalf("events = %+v, want one buildings_created", events)
	}
}

func TestConstructBuildingLockedTemplate(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ownerID, area := seedTown(t, uc)
	ctx := context.Background()

	if _, err := uc.ConstructBuilding(ctx, ownerID, "castle", "Keep", area.ID); !errors.Is(err, ports.ErrLocked) {
		t.Fatalf("err = %v, want ErrLocked", err)
	}

	// Earning the gating achievement lifts the lock; funds become the
	// only obstacle.
	unlock := fief.Unlock{OwnerID: ownerID, AchievementID: "city"}
	if err := uc.Tracker.Repo.Unlock(ctx, unlock); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if _, err := uc.ConstructBuilding(ctx, ownerID, "castle", "Keep", area.ID); !errors.Is(err, ports.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
}

func TestConstructBuildingUnknownTemplate(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ownerID, area := seedTown(t, uc)

	if _, err := uc.ConstructBuilding(context.Background(), ownerID, "palace", "No", area.ID); !errors.Is(err, ports.ErrUnknownTemplate) {
		t.Fatalf("err = %v, want ErrUnknownTemplate", err)
	}
}

func TestFoundBusinessOnePerBuilding(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ownerID, area := seedTown(t, uc)
	ctx := context.Background()

	building, err := uc.ConstructBuilding(ctx, ownerID, "workshop", "Smith House", area.ID)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	business, err := uc.FoundBusiness(ctx, ownerID, "blacksmith", "Iron Anvil", building.ID)
	if err != nil {
		t.Fatalf("found: %v", err)
	}
	if business.Reputation != 50 || business.EmployeeCapacity != 4 {
		t.Fatalf("unexpected business: %+v", business)
	}

	if _, err := uc.FoundBusiness(ctx, ownerID, "bakery", "Second", building.ID); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestRecruitCitizen(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ownerID, _ := seedTown(t, uc)
	ctx := context.Background()

	citizen, err := uc.RecruitCitizen(ctx, ownerID, "Aldous Cooper", fief.GenderMale, 28)
	if err != nil {
		t.Fatalf("recruit: %v", err)
	}
	if citizen.ID == 0 || !citizen.Alive {
		t.Fatalf("unexpected citizen: %+v", citizen)
	}

	clk, _ := uc.Clocks.GetByOwnerID(ctx, ownerID)
	if got, want := clk.Treasury, int64(fief.StartTreasury-recruitCost); got != want {
		t.Fatalf("treasury = %d, want %d", got, want)
	}

	if _, err := uc.RecruitCitizen(ctx, ownerID, "Too Old", fief.GenderMale, 51); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
	if _, err := uc.RecruitCitizen(ctx, ownerID, "Too Young", fief.GenderFemale, 17); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestRecruitBulkAssignsHomesAndJobs(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ownerID, area := seedTown(t, uc)
	ctx := context.Background()

	cottage, err := uc.ConstructBuilding(ctx, ownerID, "cottage", "Row House", area.ID)
	if err != nil {
		t.Fatalf("construct cottage: %v", err)
	}
	workshop, err := uc.ConstructBuilding(ctx, ownerID, "workshop", "Mill House", area.ID)
	if err != nil {
		t.Fatalf("construct workshop: %v", err)
	}
	if _, err := uc.FoundBusiness(ctx, ownerID, "bakery", "Oven", workshop.ID); err != nil {
		t.Fatalf("found business: %v", err)
	}

	summary, err := uc.RecruitBulk(ctx, ownerID, 5)
	if err != nil {
		t.Fatalf("bulk: %v", err)
	}
	if summary.Recruited != 5 {
		t.Fatalf("recruited = %d, want 5", summary.Recruited)
	}
	// One cottage houses four, the bakery employs three.
	if summary.Housed != cottage.Capacity {
		t.Fatalf("housed = %d, want %d", summary.Housed, cottage.Capacity)
	}
	if summary.Employed != 3 {
		t.Fatalf("employed = %d, want 3", summary.Employed)
	}
	if summary.Cost != 5*bulkRecruitCost {
		t.Fatalf("cost = %d, want %d", summary.Cost, 5*bulkRecruitCost)
	}

	citizens, err := uc.Citizens.ListAlive(ctx, ownerID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(citizens) != 5 {
		t.Fatalf("population = %d, want 5", len(citizens))
	}
	for _, c := range citizens {
		if c.Age < 18 || c.Age > 45 {
			t.Fatalf("recruit age %d out of range", c.Age)
		}
	}

	businesses, _ := uc.Businesses.List(ctx, ownerID)
	if businesses[0].CurrentEmployees != 3 {
		t.Fatalf("employees = %d, want 3", businesses[0].CurrentEmployees)
	}
}

func TestRecruitBulkRejectsOddCounts(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ownerID, _ := seedTown(t, uc)

	if _, err := uc.RecruitBulk(context.Background(), ownerID, 7); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestAssignHomeCapacity(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ownerID, area := seedTown(t, uc)
	ctx := context.Background()

	cottage, err := uc.ConstructBuilding(ctx, ownerID, "cottage", "Small House", area.ID)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	var last int64
	for i := 0; i < cottage.Capacity; i++ {
		c := fief.NewCitizen(ownerID, "Resident", 30, fief.GenderMale, 10)
		if err := uc.Citizens.Create(ctx, &c); err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := uc.AssignHome(ctx, ownerID, c.ID, cottage.ID); err != nil {
			t.Fatalf("assign %d: %v", i, err)
		}
		last = c.ID
	}

	extra := fief.NewCitizen(ownerID, "Homeless", 30, fief.GenderFemale, 10)
	if err := uc.Citizens.Create(ctx, &extra); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := uc.AssignHome(ctx, ownerID, extra.ID, cottage.ID); !errors.Is(err, ports.ErrNoCapacity) {
		t.Fatalf("err = %v, want ErrNoCapacity", err)
	}

	// Evicting frees the slot.
	if err := uc.AssignHome(ctx, ownerID, last, 0); err != nil {
		t.Fatalf("evict: %v", err)
	}
	if err := uc.AssignHome(ctx, ownerID, extra.ID, cottage.ID); err != nil {
		t.Fatalf("assign after evict: %v", err)
	}
}

func TestAssignJobRequiresWorkingAge(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ownerID, area := seedTown(t, uc)
	ctx := context.Background()

	workshop, _ := uc.ConstructBuilding(ctx, ownerID, "workshop", "Mill", area.ID)
	business, err := uc.FoundBusiness(ctx, ownerID, "tailor", "Fine Threads", workshop.ID)
	if err != nil {
		t.Fatalf("found: %v", err)
	}

	child := fief.NewCitizen(ownerID, "Young Tom", 12, fief.GenderMale, 0)
	if err := uc.Citizens.Create(ctx, &child); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := uc.AssignJob(ctx, ownerID, child.ID, business.ID); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}

	adult := fief.NewCitizen(ownerID, "Mary Weaver", 25, fief.GenderFemale, 0)
	if err := uc.Citizens.Create(ctx, &adult); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := uc.AssignJob(ctx, ownerID, adult.ID, business.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	got, _ := uc.Businesses.GetByID(ctx, ownerID, business.ID)
	if got.CurrentEmployees != 1 {
		t.Fatalf("employees = %d, want 1", got.CurrentEmployees)
	}

	// Quitting releases the headcount.
	if err := uc.AssignJob(ctx, ownerID, adult.ID, 0); err != nil {
		t.Fatalf("quit: %v", err)
	}
	got, _ = uc.Businesses.GetByID(ctx, ownerID, business.ID)
	if got.CurrentEmployees != 0 {
		t.Fatalf("employees = %d after quit, want 0", got.CurrentEmployees)
	}
}

func TestRepairBuilding(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ownerID, area := seedTown(t, uc)
	ctx := context.Background()

	building, err := uc.ConstructBuilding(ctx, ownerID, "cottage", "Old House", area.ID)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	if _, err := uc.RepairBuilding(ctx, ownerID, building.ID); !errors.Is(err, ErrNotRepairable) {
		t.Fatalf("err = %v, want ErrNotRepairable at full condition", err)
	}

	building.Condition = 40
	if err := uc.Buildings.Save(ctx, building); err != nil {
		t.Fatalf("save: %v", err)
	}

	before, _ := uc.Clocks.GetByOwnerID(ctx, ownerID)
	repaired, err := uc.RepairBuilding(ctx, ownerID, building.ID)
	if err != nil {
		t.Fatalf("repair: %v", err)
	}
	if repaired.Condition != 50 {
		t.Fatalf("condition = %d, want 50", repaired.Condition)
	}
	after, _ := uc.Clocks.GetByOwnerID(ctx, ownerID)
	if got, want := before.Treasury-after.Treasury, building.RepairCost(); got != want {
		t.Fatalf("repair cost = %d, want %d", got, want)
	}
}

func TestSetTaxRateClamped(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ownerID, area := seedTown(t, uc)
	ctx := context.Background()

	got, err := uc.SetTaxRate(ctx, ownerID, area.ID, 0.9)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if got.TaxRate != 0.5 {
		t.Fatalf("rate = %v, want 0.5", got.TaxRate)
	}

	got, err = uc.SetTaxRate(ctx, ownerID, area.ID, -0.2)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if got.TaxRate != 0 {
		t.Fatalf("rate = %v, want 0", got.TaxRate)
	}
}

func TestMarketBuyAndSell(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ownerID, _ := seedTown(t, uc)
	ctx := context.Background()

	wheat, _ := fief.GoodByID("wheat")
	cost, err := uc.MarketBuy(ctx, ownerID, "wheat", 10)
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if cost != wheat.Price*10 {
		t.Fatalf("cost = %d, want %d", cost, wheat.Price*10)
	}
	qty, _ := uc.Inventory.Quantity(ctx, ownerID, "wheat")
	if qty != 10 {
		t.Fatalf("stock = %d, want 10", qty)
	}

	proceeds, err := uc.MarketSell(ctx, ownerID, "wheat", 4)
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	wantProceeds := int64(float64(wheat.Price)*sellPriceRatio) * 4
	if proceeds != wantProceeds {
		t.Fatalf("proceeds = %d, want %d", proceeds, wantProceeds)
	}
	qty, _ = uc.Inventory.Quantity(ctx, ownerID, "wheat")
	if qty != 6 {
		t.Fatalf("stock = %d, want 6", qty)
	}

	if _, err := uc.MarketSell(ctx, ownerID, "wheat", 100); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict for short stock", err)
	}
	if _, err := uc.MarketBuy(ctx, ownerID, "moonrock", 1); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for unknown good", err)
	}
}
