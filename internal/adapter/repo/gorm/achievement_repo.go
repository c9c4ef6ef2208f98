package gormrepo

import (
	"context"

	"fiefforge/internal/adapter/repo/gorm/model"
	"fiefforge/internal/domain/fief"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepo struct {
	db *gorm.DB
}

func NewAchievementRepo(db *gorm.DB) AchievementRepo {
	return AchievementRepo{db: db}
}

func (r AchievementRepo) ListUnlocked(ctx context.Context, ownerID string) ([]fief.Unlock, error) {
	var rows []model.AchievementUnlock
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("unlocked_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]fief.Unlock, 0, len(rows))
	for _, m := range rows {
		out = append(out, fief.Unlock{
			OwnerID:       m.OwnerID,
			AchievementID: m.AchievementID,
			UnlockedAt:    m.UnlockedAt,
		})
	}
	return out, nil
}

// Unlock is idempotent: a second unlock of the same achievement is
// swallowed by the conflict clause.
func (r AchievementRepo) Unlock(ctx context.Context, unlock fief.Unlock) error {
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.AchievementUnlock{
			OwnerID:       unlock.OwnerID,
			AchievementID: unlock.AchievementID,
			UnlockedAt:    unlock.UnlockedAt,
		}).Error
}
