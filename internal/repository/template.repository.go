package repository

import (
	"context"
	"errors"

	"github.com/rashedq/repair-ops/internal/model"
	"github.com/rashedq/repair-ops/pkg/pg"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTemplateNotFound = errors.New("message template not found")

type TemplateRepository struct {
	*pg.DB
}

func NewTemplateRepository(db *pg.DB) *TemplateRepository {
	return &TemplateRepository{
		db,
	}
}

func (r *TemplateRepository) GetByID(ctx context.Context, id int64) (*model.MessageTemplate, error) {
	var entity MessageTemplateEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return toTemplateModel(&entity), nil
}

func (r *TemplateRepository) GetByCode(ctx context.Context, code string) (*model.MessageTemplate, error) {
	var entity MessageTemplateEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("code = ?", code).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return toTemplateModel(&entity), nil
}

func (r *TemplateRepository) List(ctx context.Context) ([]*model.MessageTemplate, error) {
	var entities []*MessageTemplateEntity
	err := r.Read(ctx).WithContext(ctx).
		Order("code ASC").
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}
	return toTemplateModels(entities), nil
}

// Upsert creates the template or updates it in place, keyed by code.
func (r *TemplateRepository) Upsert(ctx context.Context, t *model.MessageTemplate) (*model.MessageTemplate, error) {
	entity := toTemplateEntity(t)
	err := r.Write(ctx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"channel", "title_ar", "body_ar", "enabled"}),
		}).
		Create(entity).
		Error
	if err != nil {
		return nil, err
	}
	return toTemplateModel(entity), nil
}
