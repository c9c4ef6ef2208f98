package httpadapter

import (
	"context"
	"encoding/json"
	"testing"

	"fiefforge/internal/adapter/repo/memory"
	"fiefforge/internal/app/achievements"
	"fiefforge/internal/app/economy"
	"fiefforge/internal/app/engine"
	"fiefforge/internal/app/events"
	"fiefforge/internal/app/population"
	"fiefforge/internal/app/ports"
	"fiefforge/internal/app/stats"
	"fiefforge/internal/app/town"
	"fiefforge/internal/domain/fief"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route/param"
)

func newTestHandler() Handler {
	store := memory.NewStore()
	dice := fief.NewDice(17)

	clocks := memory.NewClockRepo(store)
	citizens := memory.NewCitizenRepo(store)
	businesses := memory.NewBusinessRepo(store)
	buildings := memory.NewBuildingRepo(store)
	areas := memory.NewAreaRepo(store)
	inventory := memory.NewInventoryRepo(store)
	eventRepo := memory.NewEventRepo(store)
	tx := memory.NewTxManager(store)
	tracker := achievements.Tracker{Repo: memory.NewAchievementRepo(store)}

	statsUC := stats.UseCase{
		Clocks:     clocks,
		Citizens:   citizens,
		Businesses: businesses,
		Buildings:  buildings,
		Inventory:  inventory,
		Events:     eventRepo,
		Snapshots:  memory.NewSnapshotRepo(store),
	}

	return Handler{
		Engine: &engine.UseCase{
			TxManager:  tx,
			Clocks:     clocks,
			Citizens:   citizens,
			Businesses: businesses,
			Buildings:  buildings,
			Areas:      areas,
			Inventory:  inventory,
			Events:     eventRepo,
			Snapshots:  memory.NewSnapshotRepo(store),
			Population: population.Simulator{Citizens: citizens, Dice: dice},
			Economy: economy.Simulator{
				Citizens:   citizens,
				Businesses: businesses,
				Buildings:  buildings,
				Areas:      areas,
				Inventory:  inventory,
				Dice:       dice,
			},
			Injector: events.Injector{Citizens: citizens, Buildings: buildings, Dice: dice},
			Stats:    statsUC,
			Tracker:  tracker,
			Dice:     dice,
		},
		Town: town.UseCase{
			TxManager:  tx,
			Clocks:     clocks,
			Citizens:   citizens,
			Businesses: businesses,
			Buildings:  buildings,
			Areas:      areas,
			Inventory:  inventory,
			Events:     eventRepo,
			Tracker:    tracker,
			Dice:       dice,
		},
		Stats:        statsUC,
		Achievements: tracker,
		AdminToken:   "secret",
	}
}

func TestRequireOwner_FromHeader(t *testing.T) {
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(ownerIDHeader, "lord-1")

	ownerID, err := requireOwner(ctx)
	if err != nil {
		t.Fatalf("requireOwner error: %v", err)
	}
	if ownerID != "lord-1" {
		t.Fatalf("unexpected owner id: %q", ownerID)
	}
}

func TestRequireOwner_MissingHeader(t *testing.T) {
	ctx := &app.RequestContext{}
	if _, err := requireOwner(ctx); err != ErrMissingOwnerHeader {
		t.Fatalf("expected ErrMissingOwnerHeader, got %v", err)
	}
}

func TestRequireAdmin(t *testing.T) {
	h := Handler{AdminToken: "secret"}

	ctx := &app.RequestContext{}
	if err := h.requireAdmin(ctx); err != ErrInvalidAdminToken {
		t.Fatalf("expected ErrInvalidAdminToken without header, got %v", err)
	}

	ctx.Request.Header.Set(adminTokenHeader, "wrong")
	if err := h.requireAdmin(ctx); err != ErrInvalidAdminToken {
		t.Fatalf("expected ErrInvalidAdminToken for wrong token, got %v", err)
	}

	ctx.Request.Header.Set(adminTokenHeader, "secret")
	if err := h.requireAdmin(ctx); err != nil {
		t.Fatalf("requireAdmin error: %v", err)
	}

	// An unconfigured token rejects everything.
	open := Handler{}
	if err := open.requireAdmin(ctx); err != ErrInvalidAdminToken {
		t.Fatalf("expected ErrInvalidAdminToken when unconfigured, got %v", err)
	}
}

func TestBootstrapAndAdvanceHandlers(t *testing.T) {
	h := newTestHandler()

	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(ownerIDHeader, "lord-1")
	h.bootstrap(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusCreated {
		t.Fatalf("bootstrap status = %d, body = %s", got, ctx.Response.Body())
	}

	// Bootstrapping an existing realm answers 200, not 201.
	ctx = &app.RequestContext{}
	ctx.Request.Header.Set(ownerIDHeader, "lord-1")
	h.bootstrap(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("repeat bootstrap status = %d, body = %s", got, ctx.Response.Body())
	}

	ctx = &app.RequestContext{}
	ctx.Request.Header.Set(ownerIDHeader, "lord-1")
	ctx.Request.SetBody([]byte(`{"days":3}`))
	h.advance(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("advance status = %d, body = %s", got, ctx.Response.Body())
	}

	var payload struct {
		Days []engine.DayReport `json:"days"`
	}
	if err := json.Unmarshal(ctx.Response.Body(), &payload); err != nil {
		t.Fatalf("unmarshal advance body: %v", err)
	}
	if len(payload.Days) != 3 {
		t.Fatalf("days = %d, want 3", len(payload.Days))
	}
	if payload.Days[2].Day != 4 {
		t.Fatalf("final day = %d, want 4", payload.Days[2].Day)
	}
}

func TestDashboardHandler(t *testing.T) {
	h := newTestHandler()

	seed := &app.RequestContext{}
	seed.Request.Header.Set(ownerIDHeader, "lord-1")
	h.bootstrap(context.Background(), seed)

	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(ownerIDHeader, "lord-1")
	h.dashboard(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("dashboard status = %d", got)
	}

	var dash stats.Dashboard
	if err := json.Unmarshal(ctx.Response.Body(), &dash); err != nil {
		t.Fatalf("unmarshal dashboard: %v", err)
	}
	if dash.Population.Total != 10 || dash.Season != "Spring" {
		t.Fatalf("dashboard = %+v", dash)
	}
}

func TestDashboardHandler_UnknownOwner(t *testing.T) {
	h := newTestHandler()

	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(ownerIDHeader, "nobody")
	h.dashboard(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusNotFound {
		t.Fatalf("status = %d, want 404", got)
	}
}

func TestRepairHandler_PathID(t *testing.T) {
	h := newTestHandler()

	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(ownerIDHeader, "lord-1")
	ctx.Params = param.Params{{Key: "id", Value: "abc"}}
	h.repairBuilding(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for bad path id", got)
	}
}

func TestTriggerEventHandler(t *testing.T) {
	h := newTestHandler()

	seed := &app.RequestContext{}
	seed.Request.Header.Set(ownerIDHeader, "lord-1")
	h.bootstrap(context.Background(), seed)

	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"owner_id":"lord-1","event":"festival"}`))
	h.triggerEvent(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 without token", got)
	}

	ctx = &app.RequestContext{}
	ctx.Request.Header.Set(adminTokenHeader, "secret")
	ctx.Request.SetBody([]byte(`{"owner_id":"lord-1","event":"festival"}`))
	h.triggerEvent(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("status = %d, body = %s", got, ctx.Response.Body())
	}

	var payload struct {
		Events []fief.Event `json:"events"`
	}
	if err := json.Unmarshal(ctx.Response.Body(), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(payload.Events) == 0 || payload.Events[0].Type != "festival" {
		t.Fatalf("events = %+v, want festival", payload.Events)
	}
}

func TestWriteError_InsufficientFunds(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, ports.ErrInsufficientFunds)

	if got := ctx.Response.StatusCode(); got != consts.StatusConflict {
		t.Fatalf("status = %d, want 409", got)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Error.Code != "insufficient_funds" {
		t.Fatalf("code = %q, want insufficient_funds", body.Error.Code)
	}
}

func TestWriteError_Locked(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, ports.ErrLocked)
	if got := ctx.Response.StatusCode(); got != consts.StatusConflict {
		t.Fatalf("status = %d, want 409", got)
	}
}

func TestRegisterRoutes_AssignmentRoutesArePut(t *testing.T) {
	s := server.New()
	newTestHandler().RegisterRoutes(s)

	methods := map[string]string{}
	for _, r := range s.Routes() {
		methods[r.Path] = r.Method
	}
	for _, path := range []string{
		"/api/town/citizens/:id/home",
		"/api/town/citizens/:id/job",
		"/api/town/areas/:id/tax",
	} {
		if methods[path] != "PUT" {
			t.Fatalf("%s method = %q, want PUT", path, methods[path])
		}
	}
}
