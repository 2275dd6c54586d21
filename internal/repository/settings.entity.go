package repository

import (
	"github.com/rashedq/repair-ops/internal/model"
)

type SettingsEntity struct {
	ID             int64   `db:"id"               gorm:"primaryKey;column:id"`
	ShopName       string  `db:"shop_name"        gorm:"column:shop_name;not null"`
	ShopPhone      string  `db:"shop_phone"       gorm:"column:shop_phone;not null"`
	VatRate        float64 `db:"vat_rate"         gorm:"column:vat_rate;not null;default:0.15"`
	WhatsappAPIKey *string `db:"whatsapp_api_key" gorm:"column:whatsapp_api_key"`
	SmsAPIKey      *string `db:"sms_api_key"      gorm:"column:sms_api_key"`
}

func (SettingsEntity) TableName() string {
	return "settings"
}

func toSettingsEntity(m *model.Settings) *SettingsEntity {
	if m == nil {
		return nil
	}
	return &SettingsEntity{
		ID:             m.ID,
		ShopName:       m.ShopName,
		ShopPhone:      m.ShopPhone,
		VatRate:        m.VatRate,
		WhatsappAPIKey: m.WhatsappAPIKey,
		SmsAPIKey:      m.SmsAPIKey,
	}
}

func toSettingsModel(e *SettingsEntity) *model.Settings {
	if e == nil {
		return nil
	}
	return &model.Settings{
		ID:             e.ID,
		ShopName:       e.ShopName,
		ShopPhone:      e.ShopPhone,
		VatRate:        e.VatRate,
		WhatsappAPIKey: e.WhatsappAPIKey,
		SmsAPIKey:      e.SmsAPIKey,
	}
}
