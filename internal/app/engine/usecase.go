package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"fiefforge/internal/app/achievements"
	"fiefforge/internal/app/economy"
	"fiefforge/internal/app/events"
	"fiefforge/internal/app/population"
	"fiefforge/internal/app/ports"
	"fiefforge/internal/app/stats"
	"fiefforge/internal/domain/fief"
)

var ErrInvalidRequest = errors.New("invalid engine request")

// MaxDaysPerAdvance caps a single advance request to one season.
const MaxDaysPerAdvance = fief.DaysPerSeason

// DayReport summarizes one simulated day.
type DayReport struct {
	Day      int          `json:"day"`
	Year     int          `json:"year"`
	Season   string       `json:"season"`
	Treasury int64        `json:"treasury"`
	Births   int          `json:"births"`
	Deaths   int          `json:"deaths"`
	Events   []fief.Event `json:"events"`
}

// UseCase drives the simulation: it owns the daily tick pipeline and
// the initial world setup. Ticks for the same fiefdom are serialized
// through a per-owner lock so concurrent advance requests cannot
// interleave.
type UseCase struct {
	TxManager  ports.TxManager
	Clocks     ports.ClockRepository
	Citizens   ports.CitizenRepository
	Businesses ports.BusinessRepository
	Buildings  ports.BuildingRepository
	Areas      ports.AreaRepository
	Inventory  ports.InventoryRepository
	Events     ports.EventRepository
	Snapshots  ports.SnapshotRepository
	Population population.Simulator
	Economy    economy.Simulator
	Injector   events.Injector
	Stats      stats.UseCase
	Tracker    achievements.Tracker
	Metrics    ports.TickMetrics
	Dice       fief.Dice
	Logger     *slog.Logger

	mu     sync.Mutex
	owners map[string]*sync.Mutex
}

func (u *UseCase) ownerLock(ownerID string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.owners == nil {
		u.owners = make(map[string]*sync.Mutex)
	}
	lock, ok := u.owners[ownerID]
	if !ok {
		lock = &sync.Mutex{}
		u.owners[ownerID] = lock
	}
	return lock
}

func (u *UseCase) logger() *slog.Logger {
	if u.Logger != nil {
		return u.Logger
	}
	return slog.Default()
}

// AdvanceDay runs one full simulation tick: calendar, population,
// economy, random events, achievements, and the daily stats snapshot,
// all inside a single transaction.
func (u *UseCase) AdvanceDay(ctx context.Context, ownerID string) (DayReport, error) {
	if ownerID == "" {
		return DayReport{}, ErrInvalidRequest
	}

	lock := u.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	started := time.Now()
	var report DayReport

	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		clk, err := u.Clocks.GetByOwnerID(txCtx, ownerID)
		if err != nil {
			return err
		}

		dayEvents := clk.Advance()

		popEvents, popSummary, err := u.Population.RunDaily(txCtx, &clk)
		if err != nil {
			return err
		}
		dayEvents = append(dayEvents, popEvents...)

		econEvents, err := u.Economy.RunDaily(txCtx, &clk)
		if err != nil {
			return err
		}
		dayEvents = append(dayEvents, econEvents...)

		randomEvents, err := u.Injector.MaybeFire(txCtx, &clk)
		if err != nil {
			return err
		}
		dayEvents = append(dayEvents, randomEvents...)

		snapshot, err := u.Stats.Collect(txCtx, clk)
		if err != nil {
			return err
		}
		achEvents, err := u.Tracker.Evaluate(txCtx, clk, snapshot)
		if err != nil {
			return err
		}
		dayEvents = append(dayEvents, achEvents...)

		if err := u.Events.Append(txCtx, ownerID, dayEvents); err != nil {
			return err
		}
		if err := u.Snapshots.Record(txCtx, ports.DailySnapshot{
			OwnerID:      ownerID,
			Day:          clk.Day,
			Year:         clk.Year,
			Population:   snapshot.Population,
			Treasury:     clk.Treasury,
			Buildings:    snapshot.Buildings,
			AvgHappiness: snapshot.AvgHappiness,
			AvgHealth:    snapshot.AvgHealth,
			RecordedAt:   time.Now(),
		}); err != nil {
			return err
		}
		if err := u.Clocks.SaveWithVersion(txCtx, clk, clk.Version); err != nil {
			return err
		}

		report = DayReport{
			Day:      clk.Day,
			Year:     clk.Year,
			Season:   clk.Season(),
			Treasury: clk.Treasury,
			Births:   popSummary.Births,
			Deaths:   popSummary.Deaths,
			Events:   dayEvents,
		}
		return nil
	})
	if err != nil {
		return DayReport{}, err
	}

	if u.Metrics != nil {
		u.Metrics.RecordTick(ownerID, time.Since(started).Milliseconds())
		u.Metrics.RecordEvents(ownerID, len(report.Events))
		u.Metrics.RecordDeaths(ownerID, report.Deaths)
		u.Metrics.RecordBirths(ownerID, report.Births)
	}
	u.logger().Info("day advanced",
		"owner_id", ownerID,
		"day", report.Day,
		"year", report.Year,
		"season", report.Season,
		"events", len(report.Events),
		"births", report.Births,
		"deaths", report.Deaths,
	)
	return report, nil
}

// AdvanceDays runs consecutive ticks, up to one season per call. Each
// day commits in its own transaction; a mid-run failure keeps the days
// already simulated.
func (u *UseCase) AdvanceDays(ctx context.Context, ownerID string, days int) ([]DayReport, error) {
	if days < 1 || days > MaxDaysPerAdvance {
		return nil, ErrInvalidRequest
	}

	reports := make([]DayReport, 0, days)
	for i := 0; i < days; i++ {
		report, err := u.AdvanceDay(ctx, ownerID)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// TriggerEvent fires a named random event outside the daily roll. The
// event's effects apply exactly as they would on a natural draw.
func (u *UseCase) TriggerEvent(ctx context.Context, ownerID, eventID string) ([]fief.Event, error) {
	if ownerID == "" || eventID == "" {
		return nil, ErrInvalidRequest
	}

	lock := u.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	var fired []fief.Event
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		clk, err := u.Clocks.GetByOwnerID(txCtx, ownerID)
		if err != nil {
			return err
		}
		triggered, err := u.Injector.Trigger(txCtx, &clk, eventID)
		if err != nil {
			return err
		}
		if err := u.Events.Append(txCtx, ownerID, triggered); err != nil {
			return err
		}
		if err := u.Clocks.SaveWithVersion(txCtx, clk, clk.Version); err != nil {
			return err
		}
		fired = triggered
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.logger().Info("event triggered", "owner_id", ownerID, "event", eventID)
	return fired, nil
}
