package gormrepo

import (
	"context"

	"fiefforge/internal/adapter/repo/gorm/model"
	"fiefforge/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnapshotRepo struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepo {
	return SnapshotRepo{db: db}
}

// Record stores at most one snapshot per owner and game day.
func (r SnapshotRepo) Record(ctx context.Context, snap ports.DailySnapshot) error {
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.DailySnapshot{
			OwnerID:      snap.OwnerID,
			Year:         int32(snap.Year),
			Day:          int32(snap.Day),
			Population:   snap.Population,
			Treasury:     snap.Treasury,
			Buildings:    snap.Buildings,
			AvgHappiness: snap.AvgHappiness,
			AvgHealth:    snap.AvgHealth,
			RecordedAt:   snap.RecordedAt,
		}).Error
}

func (r SnapshotRepo) Has(ctx context.Context, ownerID string, day, year int) (bool, error) {
	var count int64
	err := getDBFromCtx(ctx, r.db).Model(&model.DailySnapshot{}).
		Where("owner_id = ? AND day = ? AND year = ?", ownerID, int32(day), int32(year)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns the latest snapshots, newest first.
func (r SnapshotRepo) List(ctx context.Context, ownerID string, limit int) ([]ports.DailySnapshot, error) {
	var rows []model.DailySnapshot
	query := getDBFromCtx(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("year DESC, day DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ports.DailySnapshot, 0, len(rows))
	for _, m := range rows {
		out = append(out, ports.DailySnapshot{
			OwnerID:      m.OwnerID,
			Day:          int(m.Day),
			Year:         int(m.Year),
			Population:   m.Population,
			Treasury:     m.Treasury,
			Buildings:    m.Buildings,
			AvgHappiness: m.AvgHappiness,
			AvgHealth:    m.AvgHealth,
			RecordedAt:   m.RecordedAt,
		})
	}
	return out, nil
}
