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

type BusinessRepo struct {
	db *gorm.DB
}

func NewBusinessRepo(db *gorm.DB) BusinessRepo {
	return BusinessRepo{db: db}
}

func (r BusinessRepo) GetByID(ctx context.Context, ownerID string, id int64) (fief.Business, error) {
	var m model.Business
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fief.Business{}, ports.ErrNotFound
		}
		return fief.Business{}, err
	}
	return businessFromModel(m), nil
}

func (r BusinessRepo) List(ctx context.Context, ownerID string) ([]fief.Business, error) {
	var rows []model.Business
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]fief.Business, 0, len(rows))
	for _, m := range rows {
		out = append(out, businessFromModel(m))
	}
	return out, nil
}

func (r BusinessRepo) Create(ctx context.Context, business *fief.Business) error {
	m := businessToModel(*business)
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		return err
	}
	business.ID = m.ID
	return nil
}

func (r BusinessRepo) Save(ctx context.Context, business fief.Business) error {
	m := businessToModel(business)
	res := getDBFromCtx(ctx, r.db).Model(&model.Business{}).
		Where("owner_id = ? AND id = ?", business.OwnerID, business.ID).
		Updates(map[string]any{
			"name":              m.Name,
			"building_id":       m.BuildingID,
			"owner_citizen_id":  m.OwnerCitizenID,
			"type":              m.Type,
			"products":          m.Products,
			"employee_capacity": m.EmployeeCapacity,
			"current_employees": m.CurrentEmployees,
			"treasury":          m.Treasury,
			"reputation":        m.Reputation,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func businessFromModel(m model.Business) fief.Business {
	var products []string
	if len(m.Products) > 0 {
		_ = json.Unmarshal(m.Products, &products)
	}
	return fief.Business{
		ID:               m.ID,
		OwnerID:          m.OwnerID,
		Name:             m.Name,
		BuildingID:       m.BuildingID,
		OwnerCitizenID:   m.OwnerCitizenID,
		Type:             m.Type,
		Products:         products,
		EmployeeCapacity: int(m.EmployeeCapacity),
		CurrentEmployees: int(m.CurrentEmployees),
		Treasury:         m.Treasury,
		Reputation:       int(m.Reputation),
	}
}

func businessToModel(b fief.Business) model.Business {
	products, _ := json.Marshal(b.Products)
	return model.Business{
		ID:               b.ID,
		OwnerID:          b.OwnerID,
		Name:             b.Name,
		BuildingID:       b.BuildingID,
		OwnerCitizenID:   b.OwnerCitizenID,
		Type:             b.Type,
		Products:         products,
		EmployeeCapacity: int32(b.EmployeeCapacity),
		CurrentEmployees: int32(b.CurrentEmployees),
		Treasury:         b.Treasury,
		Reputation:       int32(b.Reputation),
	}
}
