package model

import "time"

// MessageTemplate is a stored, reusable message body keyed by a unique code.
// Enabled is advisory only: rendering and sending do not check it.
type MessageTemplate struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Channel   Channel   `json:"channel"`
	TitleAr   string    `json:"title_ar"`
	BodyAr    string    `json:"body_ar"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TemplateUpsertRequest creates or replaces a template, keyed by code.
type TemplateUpsertRequest struct {
	Code    string  `json:"code"`
	Channel Channel `json:"channel"`
	TitleAr string  `json:"title_ar"`
	BodyAr  string  `json:"body_ar"`
	Enabled *bool   `json:"enabled"` // nil defaults to true
}
