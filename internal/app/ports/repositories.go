package ports

import (
	"context"
	"time"

	"fiefforge/internal/domain/fief"
)

type ClockRepository interface {
	GetByOwnerID(ctx context.Context, ownerID string) (fief.Clock, error)
	Create(ctx context.Context, clock fief.Clock) error
	SaveWithVersion(ctx context.Context, clock fief.Clock, expectedVersion int64) error
}

type CitizenRepository interface {
	GetByID(ctx context.Context, ownerID string, id int64) (fief.Citizen, error)
	ListAlive(ctx context.Context, ownerID string) ([]fief.Citizen, error)
	// Create assigns the citizen's id.
	Create(ctx context.Context, citizen *fief.Citizen) error
	Save(ctx context.Context, citizen fief.Citizen) error
}

type BusinessRepository interface {
	GetByID(ctx context.Context, ownerID string, id int64) (fief.Business, error)
	List(ctx context.Context, ownerID string) ([]fief.Business, error)
	Create(ctx context.Context, business *fief.Business) error
	Save(ctx context.Context, business fief.Business) error
}

type BuildingRepository interface {
	GetByID(ctx context.Context, ownerID string, id int64) (fief.Building, error)
	List(ctx context.Context, ownerID string) ([]fief.Building, error)
	ListByArea(ctx context.Context, ownerID string, areaID int64) ([]fief.Building, error)
	Create(ctx context.Context, building *fief.Building) error
	Save(ctx context.Context, building fief.Building) error
}

type AreaRepository interface {
	GetByID(ctx context.Context, ownerID string, id int64) (fief.Area, error)
	List(ctx context.Context, ownerID string) ([]fief.Area, error)
	Create(ctx context.Context, area *fief.Area) error
	Save(ctx context.Context, area fief.Area) error
}

// InventoryRepository holds the fiefdom's shared stockpile, keyed by
// good id.
type InventoryRepository interface {
	Quantity(ctx context.Context, ownerID, goodID string) (int, error)
	// Add increases stock, creating the row if needed.
	Add(ctx context.Context, ownerID, goodID string, qty int) error
	// Remove decreases stock and fails with ErrConflict when stock is
	// short.
	Remove(ctx context.Context, ownerID, goodID string, qty int) error
	All(ctx context.Context, ownerID string) (map[string]int, error)
}

type EventRepository interface {
	Append(ctx context.Context, ownerID string, events []fief.Event) error
	ListRecent(ctx context.Context, ownerID string, limit int) ([]fief.Event, error)
}

type AchievementRepository interface {
	ListUnlocked(ctx context.Context, ownerID string) ([]fief.Unlock, error)
	// Unlock is idempotent: re-unlocking an achievement is a no-op.
	Unlock(ctx context.Context, unlock fief.Unlock) error
}

// DailySnapshot is one row of the historical stats series, recorded at
// most once per game day.
type DailySnapshot struct {
	OwnerID      string
	Day          int
	Year         int
	Population   int64
	Treasury     int64
	Buildings    int64
	AvgHappiness int64
	AvgHealth    int64
	RecordedAt   time.Time
}

type SnapshotRepository interface {
	// Record stores the snapshot unless one already exists for the
	// same owner and game day.
	Record(ctx context.Context, snap DailySnapshot) error
	Has(ctx context.Context, ownerID string, day, year int) (bool, error)
	List(ctx context.Context, ownerID string, limit int) ([]DailySnapshot, error)
}
