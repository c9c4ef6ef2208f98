// Package wire assembles the application object graph from a chosen
// repository backend. Both the HTTP server and fiefctl build the same
// graph, so the wiring lives here rather than in either main.
package wire

import (
	"log/slog"

	metricsinmem "fiefforge/internal/adapter/metrics/inmemory"
	gormrepo "fiefforge/internal/adapter/repo/gorm"
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

	"gorm.io/gorm"
)

// Repos bundles every persistence port a backend must provide.
type Repos struct {
	Clocks       ports.ClockRepository
	Citizens     ports.CitizenRepository
	Businesses   ports.BusinessRepository
	Buildings    ports.BuildingRepository
	Areas        ports.AreaRepository
	Inventory    ports.InventoryRepository
	Events       ports.EventRepository
	Achievements ports.AchievementRepository
	Snapshots    ports.SnapshotRepository
	TxManager    ports.TxManager
}

// GormRepos wires every repository against a Postgres-backed gorm DB.
func GormRepos(db *gorm.DB) Repos {
	return Repos{
		Clocks:       gormrepo.NewClockRepo(db),
		Citizens:     gormrepo.NewCitizenRepo(db),
		Businesses:   gormrepo.NewBusinessRepo(db),
		Buildings:    gormrepo.NewBuildingRepo(db),
		Areas:        gormrepo.NewAreaRepo(db),
		Inventory:    gormrepo.NewInventoryRepo(db),
		Events:       gormrepo.NewEventRepo(db),
		Achievements: gormrepo.NewAchievementRepo(db),
		Snapshots:    gormrepo.NewSnapshotRepo(db),
		TxManager:    gormrepo.NewTxManager(db),
	}
}

// MemoryRepos wires every repository against a single in-memory store.
func MemoryRepos(store *memory.Store) Repos {
	return Repos{
		Clocks:       memory.NewClockRepo(store),
		Citizens:     memory.NewCitizenRepo(store),
		Businesses:   memory.NewBusinessRepo(store),
		Buildings:    memory.NewBuildingRepo(store),
		Areas:        memory.NewAreaRepo(store),
		Inventory:    memory.NewInventoryRepo(store),
		Events:       memory.NewEventRepo(store),
		Achievements: memory.NewAchievementRepo(store),
		Snapshots:    memory.NewSnapshotRepo(store),
		TxManager:    memory.NewTxManager(store),
	}
}

// App is the fully wired application core.
type App struct {
	Engine  *engine.UseCase
	Town    town.UseCase
	Stats   stats.UseCase
	Tracker achievements.Tracker
	Metrics *metricsinmem.Recorder
}

// Build assembles the use cases on top of the given repositories.
func Build(r Repos, dice fief.Dice, logger *slog.Logger) App {
	tracker := achievements.Tracker{Repo: r.Achievements}

	statsUC := stats.UseCase{
		Clocks:     r.Clocks,
		Citizens:   r.Citizens,
		Businesses: r.Businesses,
		Buildings:  r.Buildings,
		Inventory:  r.Inventory,
		Events:     r.Events,
		Snapshots:  r.Snapshots,
	}

	metrics := metricsinmem.NewRecorder()

	eng := &engine.UseCase{
		TxManager:  r.TxManager,
		Clocks:     r.Clocks,
		Citizens:   r.Citizens,
		Businesses: r.Businesses,
		Buildings:  r.Buildings,
		Areas:      r.Areas,
		Inventory:  r.Inventory,
		Events:     r.Events,
		Snapshots:  r.Snapshots,
		Population: population.Simulator{Citizens: r.Citizens, Dice: dice},
		Economy: economy.Simulator{
			Citizens:   r.Citizens,
			Businesses: r.Businesses,
			Buildings:  r.Buildings,
			Areas:      r.Areas,
			Inventory:  r.Inventory,
			Dice:       dice,
		},
		Injector: events.Injector{Citizens: r.Citizens, Buildings: r.Buildings, Dice: dice},
		Stats:    statsUC,
		Tracker:  tracker,
		Metrics:  metrics,
		Dice:     dice,
		Logger:   logger,
	}

	return App{
		Engine: eng,
		Town: town.UseCase{
			TxManager:  r.TxManager,
			Clocks:     r.Clocks,
			Citizens:   r.Citizens,
			Businesses: r.Businesses,
			Buildings:  r.Buildings,
			Areas:      r.Areas,
			Inventory:  r.Inventory,
			Events:     r.Events,
			Tracker:    tracker,
			Dice:       dice,
		},
		Stats:   statsUC,
		Tracker: tracker,
		Metrics: metrics,
	}
}
