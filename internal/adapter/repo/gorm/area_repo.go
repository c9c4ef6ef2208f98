package gormrepo

import (
	"context"
	"errors"

	"fiefforge/internal/adapter/repo/gorm/model"
	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"

	"gorm.io/gorm"
)

type AreaRepo struct {
	db *gorm.DB
}

func NewAreaRepo(db *gorm.DB) AreaRepo {
	return AreaRepo{db: db}
}

func (r AreaRepo) GetByID(ctx context.Context, ownerID string, id int64) (fief.Area, error) {
	var m model.Area
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fief.Area{}, ports.ErrNotFound
		}
		return fief.Area{}, err
	}
	return areaFromModel(m), nil
}

func (r AreaRepo) List(ctx context.Context, ownerID string) ([]fief.Area, error) {
	var rows []model.Area
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]fief.Area, 0, len(rows))
	for _, m := range rows {
		out = append(out, areaFromModel(m))
	}
	return out, nil
}

func (r AreaRepo) Create(ctx context.Context, area *fief.Area) error {
	m := model.Area{
		OwnerID:     area.OwnerID,
		Name:        area.Name,
		Description: area.Description,
		TaxRate:     area.TaxRate,
		MaxCapacity: int32(area.MaxCapacity),
	}
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		return err
	}
	area.ID = m.ID
	return nil
}

func (r AreaRepo) Save(ctx context.Context, area fief.Area) error {
	res := getDBFromCtx(ctx, r.db).Model(&model.Area{}).
		Where("owner_id = ? AND id = ?", area.OwnerID, area.ID).
		Updates(map[string]any{
			"name":         area.Name,
			"description":  area.Description,
			"tax_rate":     area.TaxRate,
			"max_capacity": int32(area.MaxCapacity),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func areaFromModel(m model.Area) fief.Area {
	return fief.Area{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		TaxRate:     m.TaxRate,
		MaxCapacity: int(m.MaxCapacity),
	}
}
