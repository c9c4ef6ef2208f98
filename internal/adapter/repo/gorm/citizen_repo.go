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

type CitizenRepo struct {
	db *gorm.DB
}

func NewCitizenRepo(db *gorm.DB) CitizenRepo {
	return CitizenRepo{db: db}
}

func (r CitizenRepo) GetByID(ctx context.Context, ownerID string, id int64) (fief.Citizen, error) {
	var m model.Citizen
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fief.Citizen{}, ports.ErrNotFound
		}
		return fief.Citizen{}, err
	}
	return citizenFromModel(m), nil
}

func (r CitizenRepo) ListAlive(ctx context.Context, ownerID string) ([]fief.Citizen, error) {
	var rows []model.Citizen
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ? AND alive = ?", ownerID, true).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]fief.Citizen, 0, len(rows))
	for _, m := range rows {
		out = append(out, citizenFromModel(m))
	}
	return out, nil
}

func (r CitizenRepo) Create(ctx context.Context, citizen *fief.Citizen) error {
	m := citizenToModel(*citizen)
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		return err
	}
	citizen.ID = m.ID
	return nil
}

func (r CitizenRepo) Save(ctx context.Context, citizen fief.Citizen) error {
	m := citizenToModel(citizen)
	res := getDBFromCtx(ctx, r.db).Model(&model.Citizen{}).
		Where("owner_id = ? AND id = ?", citizen.OwnerID, citizen.ID).
		Updates(map[string]any{
			"name":             m.Name,
			"age":              m.Age,
			"gender":           m.Gender,
			"health":           m.Health,
			"happiness":        m.Happiness,
			"wealth":           m.Wealth,
			"alive":            m.Alive,
			"role":             m.Role,
			"skills":           m.Skills,
			"home_building_id": m.HomeBuildingID,
			"work_business_id": m.WorkBusinessID,
			"spouse_id":        m.SpouseID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func citizenFromModel(m model.Citizen) fief.Citizen {
	var skills map[string]int
	if len(m.Skills) > 0 {
		_ = json.Unmarshal(m.Skills, &skills)
	}
	if skills == nil {
		skills = map[string]int{}
	}
	return fief.Citizen{
		ID:             m.ID,
		OwnerID:        m.OwnerID,
		Name:           m.Name,
		Age:            int(m.Age),
		Gender:         m.Gender,
		Health:         int(m.Health),
		Happiness:      int(m.Happiness),
		Wealth:         m.Wealth,
		Alive:          m.Alive,
		Role:           m.Role,
		Skills:         skills,
		HomeBuildingID: m.HomeBuildingID,
		WorkBusinessID: m.WorkBusinessID,
		SpouseID:       m.SpouseID,
	}
}

func citizenToModel(c fief.Citizen) model.Citizen {
	skills, _ := json.Marshal(c.Skills)
	return model.Citizen{
		ID:             c.ID,
		OwnerID:        c.OwnerID,
		Name:           c.Name,
		Age:            int32(c.Age),
		Gender:         c.Gender,
		Health:         int32(c.Health),
		Happiness:      int32(c.Happiness),
		Wealth:         c.Wealth,
		Alive:          c.Alive,
		Role:           c.Role,
		Skills:         skills,
		HomeBuildingID: c.HomeBuildingID,
		WorkBusinessID: c.WorkBusinessID,
		SpouseID:       c.SpouseID,
	}
}
