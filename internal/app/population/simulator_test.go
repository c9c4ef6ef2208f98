package population

import (
	"context"
	"testing"

	"fiefforge/internal/adapter/repo/memory"
	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"
)

// scriptedDice replays fixed values so stochastic rules can be pinned
// down in tests.
type scriptedDice struct {
	rolls    []int
	betweens []int
	chances  []bool
	indexes  []int
}

func (d *scriptedDice) Roll(sides int) int {
	if len(d.rolls) == 0 {
		return 1
	}
	v := d.rolls[0]
	d.rolls = d.rolls[1:]
	return v
}

func (d *scriptedDice) Between(lo, hi int) int {
	if len(d.betweens) == 0 {
		return lo
	}
	v := d.betweens[0]
	d.betweens = d.betweens[1:]
	return v
}

func (d *scriptedDice) Chance(percent int) bool {
	if len(d.chances) == 0 {
		return false
	}
	v := d.chances[0]
	d.chances = d.chances[1:]
	return v
}

func (d *scriptedDice) Index(n int) int {
	if len(d.indexes) == 0 {
		return 0
	}
	v := d.indexes[0]
	d.indexes = d.indexes[1:]
	return v
}

func (d *scriptedDice) Shuffle(n int, swap func(i, j int)) {}

func newRepo() ports.CitizenRepository {
	return memory.NewCitizenRepo(memory.NewStore())
}

func mustCreate(t *testing.T, repo ports.CitizenRepository, c fief.Citizen) fief.Citizen {
	t.Helper()
	if err := repo.Create(context.Background(), &c); err != nil {
		t.Fatalf("create citizen: %v", err)
	}
	return c
}

func TestRunDaily_HomelessLoseHealth(t *testing.T) {
	repo := newRepo()
	c := mustCreate(t, repo, fief.NewCitizen("o1", "Drifter", 30, fief.GenderMale, 50))

	clk := fief.NewClock("o1")
	clk.Day = 2 // avoid the yearly pass

	sim := Simulator{Citizens: repo, Dice: &scriptedDice{betweens: []int{0}}}
	if _, _, err := sim.RunDaily(context.Background(), &clk); err != nil {
		t.Fatalf("run daily: %v", err)
	}

	got, err := repo.GetByID(context.Background(), "o1", c.ID)
	if err != nil {
		t.Fatalf("get citizen: %v", err)
	}
	if got.Health != 99 {
		t.Fatalf("health got=%d want=99", got.Health)
	}
	// Homeless -3, jobless -2, drift 0: happiness drops by 5.
	if got.Happiness != 95 {
		t.Fatalf("happiness got=%d want=95", got.Happiness)
	}
}

func TestRunDaily_MarriageIsMutual(t *testing.T) {
	repo := newRepo()
	home := int64(1)
	groom := fief.NewCitizen("o1", "Tomas", 25, fief.GenderMale, 50)
	groom.HomeBuildingID = &home
	bride := fief.NewCitizen("o1", "Elena", 24, fief.GenderFemale, 50)
	bride.HomeBuildingID = &home
	groom = mustCreate(t, repo, groom)
	bride = mustCreate(t, repo, bride)

	clk := fief.NewClock("o1") // day 1, yearly pass runs

	// Chances drawn: marriage yes, then birth no.
	dice := &scriptedDice{chances: []bool{true, false}}
	sim := Simulator{Citizens: repo, Dice: dice}
	events, _, err := sim.RunDaily(context.Background(), &clk)
	if err != nil {
		t.Fatalf("run daily: %v", err)
	}

	g, _ := repo.GetByID(context.Background(), "o1", groom.ID)
	b, _ := repo.GetByID(context.Background(), "o1", bride.ID)
	if g.SpouseID == nil || *g.SpouseID != bride.ID {
		t.Fatalf("groom spouse = %v, want %d", g.SpouseID, bride.ID)
	}
	if b.SpouseID == nil || *b.SpouseID != groom.ID {
		t.Fatalf("bride spouse = %v, want %d", b.SpouseID, groom.ID)
	}

	found := false
	for _, e := range events {
		if e.Type == "marriage" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a marriage event")
	}
}

func TestRunDaily_DeathSeversSpouse(t *testing.T) {
	repo := newRepo()
	husband := fief.NewCitizen("o1", "Old Rolf", fief.AgeMax, fief.GenderMale, 50)
	wife := fief.NewCitizen("o1", "Greta", 60, fief.GenderFemale, 50)
	husband = mustCreate(t, repo, husband)
	wife = mustCreate(t, repo, wife)
	husband.SpouseID = &wife.ID
	wife.SpouseID = &husband.ID
	if err := repo.Save(context.Background(), husband); err != nil {
		t.Fatalf("save husband: %v", err)
	}
	if err := repo.Save(context.Background(), wife); err != nil {
		t.Fatalf("save wife: %v", err)
	}

	clk := fief.NewClock("o1")
	sim := Simulator{Citizens: repo, Dice: &scriptedDice{}}
	events, summary, err := sim.RunDaily(context.Background(), &clk)
	if err != nil {
		t.Fatalf("run daily: %v", err)
	}

	if summary.Deaths != 1 {
		t.Fatalf("deaths got=%d want=1", summary.Deaths)
	}
	// The husband has the lower ID, so the widow's own yearly save
	// lands after his death; severance must still stick.
	w, _ := repo.GetByID(context.Background(), "o1", wife.ID)
	if w.SpouseID != nil {
		t.Fatalf("widow still has spouse %d", *w.SpouseID)
	}
	// Drift -5, then -20 grief.
	if w.Happiness != 75 {
		t.Fatalf("widow happiness got=%d want=75", w.Happiness)
	}

	found := false
	for _, e := range events {
		if e.Type == "death_old_age" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a death_old_age event")
	}
}

func TestRunDaily_BirthInheritsHome(t *testing.T) {
	repo := newRepo()
	home := int64(7)
	mother := fief.NewCitizen("o1", "Mira", 28, fief.GenderFemale, 50)
	mother.HomeBuildingID = &home
	father := fief.NewCitizen("o1", "Jon", 30, fief.GenderMale, 50)
	father.HomeBuildingID = &home
	mother = mustCreate(t, repo, mother)
	father = mustCreate(t, repo, father)
	mother.SpouseID = &father.ID
	father.SpouseID = &mother.ID
	if err := repo.Save(context.Background(), mother); err != nil {
		t.Fatalf("save mother: %v", err)
	}
	if err := repo.Save(context.Background(), father); err != nil {
		t.Fatalf("save father: %v", err)
	}

	clk := fief.NewClock("o1")
	// Chance draws: birth yes. (Both spouses are married, so no
	// marriage candidates remain.)
	sim := Simulator{Citizens: repo, Dice: &scriptedDice{chances: []bool{true}}}
	events, summary, err := sim.RunDaily(context.Background(), &clk)
	if err != nil {
		t.Fatalf("run daily: %v", err)
	}

	if summary.Births != 1 {
		t.Fatalf("births got=%d want=1", summary.Births)
	}
	var babyID int64
	for _, e := range events {
		if e.Type == "birth" && e.CitizenID != nil {
			babyID = *e.CitizenID
		}
	}
	if babyID == 0 {
		t.Fatal("expected a birth event carrying the baby id")
	}
	baby, err := repo.GetByID(context.Background(), "o1", babyID)
	if err != nil {
		t.Fatalf("get baby: %v", err)
	}
	if baby.Age != 0 {
		t.Fatalf("baby age got=%d want=0", baby.Age)
	}
	if baby.HomeBuildingID == nil || *baby.HomeBuildingID != home {
		t.Fatalf("baby home = %v, want %d", baby.HomeBuildingID, home)
	}
}

func TestBirthChance_Clamped(t *testing.T) {
	sim := Simulator{}

	sad := []fief.Citizen{{Happiness: 10, Health: 20}, {Happiness: 20, Health: 30}}
	if got := sim.birthChance(sad); got != 5 {
		t.Fatalf("sad realm chance got=%d want=5", got)
	}

	happy := []fief.Citizen{{Happiness: 90, Health: 90}}
	if got := sim.birthChance(happy); got != 20 {
		t.Fatalf("happy realm chance got=%d want=20", got)
	}
}

func TestRunDaily_WinterIllness(t *testing.T) {
	repo := newRepo()
	home := int64(1)
	c := fief.NewCitizen("o1", "Pieter", 40, fief.GenderMale, 50)
	c.HomeBuildingID = &home
	work := int64(1)
	c.WorkBusinessID = &work
	c = mustCreate(t, repo, c)

	clk := fief.NewClock("o1")
	clk.Day = fief.DaysPerSeason*3 + 1 // first day of winter

	// Daily drift 0, then illness hits for 10.
	dice := &scriptedDice{betweens: []int{0, 10}, chances: []bool{true}}
	sim := Simulator{Citizens: repo, Dice: dice}
	events, _, err := sim.RunDaily(context.Background(), &clk)
	if err != nil {
		t.Fatalf("run daily: %v", err)
	}

	got, _ := repo.GetByID(context.Background(), "o1", c.ID)
	if got.Health != 90 {
		t.Fatalf("health got=%d want=90", got.Health)
	}
	found := false
	for _, e := range events {
		if e.Type == "illness" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an illness event")
	}
}
