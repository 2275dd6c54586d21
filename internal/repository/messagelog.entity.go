package repository

import (
	"time"

	"github.com/rashedq/repair-ops/internal/model"
)

type MessageLogEntity struct {
	ID           int64     `db:"id"              gorm:"primaryKey;autoIncrement;column:id"`
	InvoiceID    string    `db:"invoice_id"      gorm:"column:invoice_id;not null;index"`
	Channel      string    `db:"channel"         gorm:"column:channel;not null"`
	TemplateCode *string   `db:"template_code"   gorm:"column:template_code"`
	ToMobile     string    `db:"to_mobile"       gorm:"column:to_mobile;not null"`
	MessageBody  string    `db:"message_body"    gorm:"column:message_body;not null"`
	Status       string    `db:"status"          gorm:"column:status;not null"`
	SentByUserID *string   `db:"sent_by_user_id" gorm:"column:sent_by_user_id"`
	CreatedAt    time.Time `db:"created_at"      gorm:"column:created_at;autoCreateTime"`
}

func (MessageLogEntity) TableName() string {
	return "message_logs"
}

func toMessageLogEntity(m *model.MessageLog) *MessageLogEntity {
	if m == nil {
		return nil
	}
	return &MessageLogEntity{
		ID:           m.ID,
		InvoiceID:    m.InvoiceID,
		Channel:      string(m.Channel),
		TemplateCode: m.TemplateCode,
		ToMobile:     m.ToMobile,
		MessageBody:  m.MessageBody,
		Status:       string(m.Status),
		SentByUserID: m.SentByUserID,
		CreatedAt:    m.CreatedAt,
	}
}

func toMessageLogModel(e *MessageLogEntity) *model.MessageLog {
	if e == nil {
		return nil
	}
	return &model.MessageLog{
		ID:           e.ID,
		InvoiceID:    e.InvoiceID,
		Channel:      model.Channel(e.Channel),
		TemplateCode: e.TemplateCode,
		ToMobile:     e.ToMobile,
		MessageBody:  e.MessageBody,
		Status:       model.MessageStatus(e.Status),
		SentByUserID: e.SentByUserID,
		CreatedAt:    e.CreatedAt,
	}
}

func toMessageLogModels(entities []*MessageLogEntity) []*model.MessageLog {
	if entities == nil {
		return nil
	}
	models := make([]*model.MessageLog, len(entities))
	for i, e := range entities {
		models[i] = toMessageLogModel(e)
	}
	return models
}
