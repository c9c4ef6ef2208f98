package gormrepo

import (
	"context"
	"errors"

	"fiefforge/internal/adapter/repo/gorm/model"
	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"

	"gorm.io/gorm"
)

type BuildingRepo struct {
	db *gorm.DB
}

func NewBuildingRepo(db *gorm.DB) BuildingRepo {
	return BuildingRepo{db: db}
}

func (r BuildingRepo) GetByID(ctx context.Context, ownerID string, id int64) (fief.Building, error) {
	var m model.Building
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fief.Building{}, ports.ErrNotFound
		}
		return fief.Building{}, err
	}
	return buildingFromModel(m), nil
}

func (r BuildingRepo) List(ctx context.Context, ownerID string) ([]fief.Building, error) {
	var rows []model.Building
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]fief.Building, 0, len(rows))
	for _, m := range rows {
		out = append(out, buildingFromModel(m))
	}
	return out, nil
}

func (r BuildingRepo) ListByArea(ctx context.Context, ownerID string, areaID int64) ([]fief.Building, error) {
	var rows []model.Building
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ? AND area_id = ?", ownerID, areaID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]fief.Building, 0, len(rows))
	for _, m := range rows {
		out = append(out, buildingFromModel(m))
	}
	return out, nil
}

func (r BuildingRepo) Create(ctx context.Context, building *fief.Building) error {
	m := buildingToModel(*building)
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		return err
	}
	building.ID = m.ID
	return nil
}

func (r BuildingRepo) Save(ctx context.Context, building fief.Building) error {
	m := buildingToModel(building)
	res := getDBFromCtx(ctx, r.db).Model(&model.Building{}).
		Where("owner_id = ? AND id = ?", building.OwnerID, building.ID).
		Updates(map[string]any{
			"name":             m.Name,
			"area_id":          m.AreaID,
			"owner_citizen_id": m.OwnerCitizenID,
			"capacity":         m.Capacity,
			"condition":        m.Condition,
			"upkeep_cost":      m.UpkeepCost,
			"x":                m.X,
			"y":                m.Y,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func buildingFromModel(m model.Building) fief.Building {
	return fief.Building{
		ID:               m.ID,
		OwnerID:          m.OwnerID,
		Name:             m.Name,
		Type:             m.Type,
		TemplateID:       m.TemplateID,
		AreaID:           m.AreaID,
		OwnerCitizenID:   m.OwnerCitizenID,
		Capacity:         int(m.Capacity),
		Condition:        int(m.Condition),
		ConstructionCost: m.ConstructionCost,
		UpkeepCost:       m.UpkeepCost,
		X:                int(m.X),
		Y:                int(m.Y),
	}
}

func buildingToModel(b fief.Building) model.Building {
	return model.Building{
		ID:               b.ID,
		OwnerID:          b.OwnerID,
		Name:             b.Name,
		Type:             b.Type,
		TemplateID:       b.TemplateID,
		AreaID:           b.AreaID,
		OwnerCitizenID:   b.OwnerCitizenID,
		Capacity:         int32(b.Capacity),
		Condition:        int32(b.Condition),
		ConstructionCost: b.ConstructionCost,
		UpkeepCost:       b.UpkeepCost,
		X:                int32(b.X),
		Y:                int32(b.Y),
	}
}
