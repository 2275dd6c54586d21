package model

// Settings is the singleton shop configuration row (id = 1).
type Settings struct {
	ID             int64   `json:"id"`
	ShopName       string  `json:"shop_name"`
	ShopPhone      string  `json:"shop_phone"`
	VatRate        float64 `json:"vat_rate"`
	WhatsappAPIKey *string `json:"whatsapp_api_key"`
	SmsAPIKey      *string `json:"sms_api_key"`
}

// SettingsUpdateRequest replaces the singleton row.
type SettingsUpdateRequest struct {
	ShopName       string   `json:"shop_name"`
	ShopPhone      string   `json:"shop_phone"`
	VatRate        *float64 `json:"vat_rate"`
	WhatsappAPIKey *string  `json:"whatsapp_api_key"`
	SmsAPIKey      *string  `json:"sms_api_key"`
}
