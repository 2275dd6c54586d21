package repository

import (
	"context"

	"github.com/rashedq/repair-ops/internal/model"
	"github.com/rashedq/repair-ops/pkg/pg"
)

// MessageLogRepository is append-only: rows are created and listed, never
// updated or deleted.
type MessageLogRepository struct {
	*pg.DB
}

func NewMessageLogRepository(db *pg.DB) *MessageLogRepository {
	return &MessageLogRepository{
		db,
	}
}

func (r *MessageLogRepository) Create(ctx context.Context, log *model.MessageLog) (*model.MessageLog, error) {
	entity := toMessageLogEntity(log)

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toMessageLogModel(entity), nil
}

func (r *MessageLogRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*model.MessageLog, error) {
	var entities []*MessageLogEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("created_at DESC").
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}
	return toMessageLogModels(entities), nil
}
