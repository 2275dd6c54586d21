package repository

import (
	"time"

	"github.com/rashedq/repair-ops/internal/model"
)

type MessageTemplateEntity struct {
	ID        int64     `db:"id"         gorm:"primaryKey;autoIncrement;column:id"`
	Code      string    `db:"code"       gorm:"column:code;not null;uniqueIndex"`
	Channel   string    `db:"channel"    gorm:"column:channel;not null"`
	TitleAr   string    `db:"title_ar"   gorm:"column:title_ar;not null"`
	BodyAr    string    `db:"body_ar"    gorm:"column:body_ar;not null"`
	Enabled   bool      `db:"enabled"    gorm:"column:enabled;not null;default:true"`
	CreatedAt time.Time `db:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `db:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (MessageTemplateEntity) TableName() string {
	return "message_templates"
}

func toTemplateEntity(m *model.MessageTemplate) *MessageTemplateEntity {
	if m == nil {
		return nil
	}
	return &MessageTemplateEntity{
		ID:        m.ID,
		Code:      m.Code,
		Channel:   string(m.Channel),
		TitleAr:   m.TitleAr,
		BodyAr:    m.BodyAr,
		Enabled:   m.Enabled,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toTemplateModel(e *MessageTemplateEntity) *model.MessageTemplate {
	if e == nil {
		return nil
	}
	return &model.MessageTemplate{
		ID:        e.ID,
		Code:      e.Code,
		Channel:   model.Channel(e.Channel),
		TitleAr:   e.TitleAr,
		BodyAr:    e.BodyAr,
		Enabled:   e.Enabled,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toTemplateModels(entities []*MessageTemplateEntity) []*model.MessageTemplate {
	if entities == nil {
		return nil
	}
	models := make([]*model.MessageTemplate, len(entities))
	for i, e := range entities {
		models[i] = toTemplateModel(e)
	}
	return models
}
