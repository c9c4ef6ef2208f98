package gormrepo

import (
	"context"

	"fiefforge/internal/adapter/repo/gorm/model"
	"fiefforge/internal/domain/fief"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, ownerID string, events []fief.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.Event, 0, len(events))
	for _, e := range events {
		rows = append(rows, model.Event{
			OwnerID:   ownerID,
			Type:      e.Type,
			Message:   e.Message,
			Category:  e.Category,
			Day:       int32(e.Day),
			Year:      int32(e.Year),
			CitizenID: e.CitizenID,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListRecent(ctx context.Context, ownerID string, limit int) ([]fief.Event, error) {
	var rows []model.Event
	query := getDBFromCtx(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]fief.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, fief.Event{
			ID:        m.ID,
			OwnerID:   m.OwnerID,
			Type:      m.Type,
			Message:   m.Message,
			Category:  m.Category,
			Day:       int(m.Day),
			Year:      int(m.Year),
			CitizenID: m.CitizenID,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
