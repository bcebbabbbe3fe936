package eventrepo

import (
	"context"
	"time"

	"haul/internal/core/domain/model/order"
	"haul/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOrderEventRepository struct {
	db *gorm.DB
}

func NewGormOrderEventRepository(db *gorm.DB) *GormOrderEventRepository {
	return &GormOrderEventRepository{db: db}
}

// Append stores events in the given order.
func (r *GormOrderEventRepository) Append(ctx context.Context, events []order.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OrderEventDTO, 0, len(events))
	for _, e := range events {
		dto, err := fromDomain(e)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// FetchUnpublished must run inside a transaction for the row locks to hold
// until MarkPublished.
func (r *GormOrderEventRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxEvent, error) {
	var dtos []OrderEventDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]ports.OutboxEvent, 0, len(dtos))
	for _, dto := range dtos {
		e, convErr := toOutboxEvent(dto)
		if convErr != nil {
			return nil, convErr
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *GormOrderEventRepository) MarkPublished(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&OrderEventDTO{}).
		Where("id IN ?", ids).
		Update("published_at", at).Error
}
