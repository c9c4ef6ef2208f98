package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"fiefforge/internal/adapter/repo/gorm/model"
	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"

	"gorm.io/gorm"
)

type ClockRepo struct {
	db *gorm.DB
}

func NewClockRepo(db *gorm.DB) ClockRepo {
	return ClockRepo{db: db}
}

func (r ClockRepo) GetByOwnerID(ctx context.Context, ownerID string) (fief.Clock, error) {
	var m model.Clock
	if err := getDBFromCtx(ctx, r.db).Where("owner_id = ?", ownerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fief.Clock{}, ports.ErrNotFound
		}
		return fief.Clock{}, err
	}

	var settings map[string]string
	if len(m.Settings) > 0 {
		_ = json.Unmarshal(m.Settings, &settings)
	}
	return fief.Clock{
		OwnerID:  m.OwnerID,
		Day:      int(m.Day),
		Year:     int(m.Year),
		Treasury: m.Treasury,
		Settings: settings,
		Version:  m.Version,
	}, nil
}

func (r ClockRepo) Create(ctx context.Context, clock fief.Clock) error {
	settings, _ := json.Marshal(clock.Settings)
	m := model.Clock{
		OwnerID:  clock.OwnerID,
		Day:      int32(clock.Day),
		Year:     int32(clock.Year),
		Treasury: clock.Treasury,
		Settings: settings,
		Version:  clock.Version,
	}
	err := getDBFromCtx(ctx, r.db).Create(&m).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ports.ErrConflict
	}
	return err
}

// SaveWithVersion applies an optimistic-lock update: the row must still
// carry expectedVersion, and the stored version becomes expectedVersion+1.
func (r ClockRepo) SaveWithVersion(ctx context.Context, clock fief.Clock, expectedVersion int64) error {
	settings, _ := json.Marshal(clock.Settings)
	res := getDBFromCtx(ctx, r.db).Model(&model.Clock{}).
		Where("owner_id = ? AND version = ?", clock.OwnerID, expectedVersion).
		Updates(map[string]any{
			"day":      int32(clock.Day),
			"year":     int32(clock.Year),
			"treasury": clock.Treasury,
			"settings": settings,
			"version":  expectedVersion + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := getDBFromCtx(ctx, r.db).Model(&model.Clock{}).
			Where("owner_id = ?", clock.OwnerID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ports.ErrNotFound
		}
		return ports.ErrConflict
	}
	return nil
}
