package gormrepo

import (
	"context"
	"errors"

	"fiefforge/internal/adapter/repo/gorm/model"
	"fiefforge/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepo {
	return InventoryRepo{db: db}
}

func (r InventoryRepo) Quantity(ctx context.Context, ownerID, goodID string) (int, error) {
	var m model.InventoryItem
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ? AND good_id = ?", ownerID, goodID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return int(m.Quantity), nil
}

func (r InventoryRepo) Add(ctx context.Context, ownerID, goodID string, qty int) error {
	if qty <= 0 {
		return nil
	}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_id"}, {Name: "good_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("inventory_items.quantity + ?", int32(qty)),
			}),
		}).
		Create(&model.InventoryItem{
			OwnerID:  ownerID,
			GoodID:   goodID,
			Quantity: int32(qty),
		}).Error
}

// Remove decrements stock, refusing to go below zero.
func (r InventoryRepo) Remove(ctx context.Context, ownerID, goodID string, qty int) error {
	if qty <= 0 {
		return nil
	}
	res := getDBFromCtx(ctx, r.db).Model(&model.InventoryItem{}).
		Where("owner_id = ? AND good_id = ? AND quantity >= ?", ownerID, goodID, int32(qty)).
		Update("quantity", gorm.Expr("quantity - ?", int32(qty)))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r InventoryRepo) All(ctx context.Context, ownerID string) (map[string]int, error) {
	var rows []model.InventoryItem
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, m := range rows {
		if m.Quantity > 0 {
			out[m.GoodID] = int(m.Quantity)
		}
	}
	return out, nil
}
