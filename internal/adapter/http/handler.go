package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"fiefforge/internal/app/achievements"
	"fiefforge/internal/app/engine"
	"fiefforge/internal/app/ports"
	"fiefforge/internal/app/stats"
	"fiefforge/internal/app/town"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const ownerIDHeader = "X-Owner-ID"
const adminTokenHeader = "X-Admin-Token"

type Handler struct {
	Engine       *engine.UseCase
	Town         town.UseCase
	Stats        stats.UseCase
	Achievements achievements.Tracker
	KPI          kpiSnapshotProvider
	AdminToken   string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	game := s.Group("/api/game")
	game.POST("/bootstrap", h.bootstrap)
	game.POST("/advance", h.advance)
	game.GET("/dashboard", h.dashboard)
	game.GET("/events", h.events)
	game.GET("/achievements", h.achievements)
	game.GET("/history", h.history)

	t := s.Group("/api/town")
	t.POST("/citizens", h.recruitCitizen)
	t.POST("/citizens/bulk", h.recruitBulk)
	t.PUT("/citizens/:id/home", h.assignHome)
	t.PUT("/citizens/:id/job", h.assignJob)
	t.POST("/buildings", h.constructBuilding)
	t.POST("/buildings/:id/repair", h.repairBuilding)
	t.POST("/businesses", h.foundBusiness)
	t.PUT("/areas/:id/tax", h.setTaxRate)
	t.POST("/market/buy", h.marketBuy)
	t.POST("/market/sell", h.marketSell)

	s.POST("/api/admin/events/trigger", h.triggerEvent)
	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) bootstrap(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	result, err := h.Engine.Bootstrap(c, ownerID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	status := consts.StatusOK
	if result.Founded {
		status = consts.StatusCreated
	}
	ctx.JSON(status, result)
}

type advanceRequest struct {
	Days int `json:"days"`
}

func (h Handler) advance(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	body := advanceRequest{Days: 1}
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	reports, err := h.Engine.AdvanceDays(c, ownerID, body.Days)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"days": reports})
}

func (h Handler) dashboard(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	dash, err := h.Stats.Dashboard(c, ownerID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, dash)
}

func (h Handler) events(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	if limit <= 0 {
		limit = 50
	}
	events, err := h.Stats.Events.ListRecent(c, ownerID, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"events": events})
}

func (h Handler) achievements(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	clk, err := h.Stats.Clocks.GetByOwnerID(c, ownerID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	snapshot, err := h.Stats.Collect(c, clk)
	if err != nil {
		writeError(ctx, err)
		return
	}
	list, err := h.Achievements.ListWithStatus(c, ownerID, snapshot)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"achievements": list})
}

func (h Handler) history(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	series, err := h.Stats.History(c, ownerID, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"history": series})
}

type recruitRequest struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Age    int    `json:"age"`
}

func (h Handler) recruitCitizen(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body recruitRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	citizen, err := h.Town.RecruitCitizen(c, ownerID, body.Name, body.Gender, body.Age)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, citizen)
}

type bulkRecruitRequest struct {
	Count int `json:"count"`
}

func (h Handler) recruitBulk(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body bulkRecruitRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	summary, err := h.Town.RecruitBulk(c, ownerID, body.Count)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, summary)
}

type assignRequest struct {
	BuildingID int64 `json:"building_id"`
	BusinessID int64 `json:"business_id"`
}

func (h Handler) assignHome(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	citizenID, err := pathID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body assignRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := h.Town.AssignHome(c, ownerID, citizenID, body.BuildingID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"ok": true})
}

func (h Handler) assignJob(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	citizenID, err := pathID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body assignRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := h.Town.AssignJob(c, ownerID, citizenID, body.BusinessID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"ok": true})
}

type constructRequest struct {
	Template string `json:"template"`
	Name     string `json:"name"`
	AreaID   int64  `json:"area_id"`
}

func (h Handler) constructBuilding(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body constructRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	building, err := h.Town.ConstructBuilding(c, ownerID, body.Template, body.Name, body.AreaID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, building)
}

func (h Handler) repairBuilding(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	buildingID, err := pathID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	building, err := h.Town.RepairBuilding(c, ownerID, buildingID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, building)
}

type foundBusinessRequest struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	BuildingID int64  `json:"building_id"`
}

func (h Handler) foundBusiness(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body foundBusinessRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	business, err := h.Town.FoundBusiness(c, ownerID, body.Type, body.Name, body.BuildingID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, business)
}

type taxRequest struct {
	Rate float64 `json:"rate"`
}

func (h Handler) setTaxRate(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	areaID, err := pathID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body taxRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	area, err := h.Town.SetTaxRate(c, ownerID, areaID, body.Rate)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, area)
}

type tradeRequest struct {
	Good     string `json:"good"`
	Quantity int    `json:"quantity"`
}

func (h Handler) marketBuy(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body tradeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	cost, err := h.Town.MarketBuy(c, ownerID, body.Good, body.Quantity)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"spent": cost})
}

func (h Handler) marketSell(c context.Context, ctx *app.RequestContext) {
	ownerID, err := requireOwner(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body tradeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	proceeds, err := h.Town.MarketSell(c, ownerID, body.Good, body.Quantity)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"earned": proceeds})
}

type triggerEventRequest struct {
	OwnerID string `json:"owner_id"`
	Event   string `json:"event"`
}

func (h Handler) triggerEvent(c context.Context, ctx *app.RequestContext) {
	if err := h.requireAdmin(ctx); err != nil {
		writeError(ctx, err)
		return
	}
	var body triggerEventRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	fired, err := h.Engine.TriggerEvent(c, body.OwnerID, body.Event)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"events": fired})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingOwnerHeader = errors.New("missing x-owner-id header")
var ErrInvalidAdminToken = errors.New("invalid admin token")
var ErrInvalidPathID = errors.New("invalid id in path")

func requireOwner(ctx *app.RequestContext) (string, error) {
	ownerID := strings.TrimSpace(string(ctx.GetHeader(ownerIDHeader)))
	if ownerID == "" {
		return "", ErrMissingOwnerHeader
	}
	return ownerID, nil
}

func (h Handler) requireAdmin(ctx *app.RequestContext) error {
	token := strings.TrimSpace(string(ctx.GetHeader(adminTokenHeader)))
	if h.AdminToken == "" || token != h.AdminToken {
		return ErrInvalidAdminToken
	}
	return nil
}

func pathID(ctx *app.RequestContext) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidPathID
	}
	return id, nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingOwnerHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_owner_id", err.Error())
	case errors.Is(err, ErrInvalidAdminToken):
		writeErrorBody(ctx, consts.StatusUnauthorized, "invalid_admin_token", err.Error())
	case errors.Is(err, ErrInvalidPathID):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_path_id", err.Error())
	case errors.Is(err, ports.ErrInsufficientFunds):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_funds", err.Error())
	case errors.Is(err, ports.ErrLocked):
		writeErrorBody(ctx, consts.StatusConflict, "achievement_locked", err.Error())
	case errors.Is(err, ports.ErrNoCapacity):
		writeErrorBody(ctx, consts.StatusConflict, "no_capacity", err.Error())
	case errors.Is(err, town.ErrNotRepairable):
		writeErrorBody(ctx, consts.StatusConflict, "not_repairable", err.Error())
	case errors.Is(err, ports.ErrUnknownTemplate):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_template", err.Error())
	case errors.Is(err, ports.ErrUnknownEvent):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_event", err.Error())
	case errors.Is(err, town.ErrInvalidRequest),
		errors.Is(err, engine.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
