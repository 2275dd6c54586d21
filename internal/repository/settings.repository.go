package repository

import (
	"context"
	"errors"

	"github.com/rashedq/repair-ops/internal/model"
	"github.com/rashedq/repair-ops/pkg/pg"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsID is the fixed key of the singleton row.
const settingsID = 1

var ErrSettingsNotFound = errors.New("settings row not found")

type SettingsRepository struct {
	*pg.DB
}

func NewSettingsRepository(db *pg.DB) *SettingsRepository {
	return &SettingsRepository{
		db,
	}
}

// Ping checks that the read side answers a trivial query. Used by the health
// endpoint.
func (r *SettingsRepository) Ping(ctx context.Context) error {
	var one int
	return r.Read(ctx).WithContext(ctx).Raw("SELECT 1").Scan(&one).Error
}

func (r *SettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	var entity SettingsEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("id = ?", settingsID).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return toSettingsModel(&entity), nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *model.Settings) (*model.Settings, error) {
	entity := toSettingsEntity(s)
	entity.ID = settingsID
	err := r.Write(ctx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"shop_name", "shop_phone", "vat_rate", "whatsapp_api_key", "sms_api_key"}),
		}).
		Create(entity).
		Error
	if err != nil {
		return nil, err
	}
	return toSettingsModel(entity), nil
}
