package model

import "time"

// MessageLog is an append-only audit record of a rendered-and-opened message.
// Rows are never mutated after creation.
type MessageLog struct {
	ID           int64         `json:"id"`
	InvoiceID    string        `json:"invoice_id"`
	Channel      Channel       `json:"channel"`
	TemplateCode *string       `json:"template_code"` // nil for ad-hoc bodies
	ToMobile     string        `json:"to_mobile"`
	MessageBody  string        `json:"message_body"`
	Status       MessageStatus `json:"status"`
	SentByUserID *string       `json:"sent_by_user_id"`
	CreatedAt    time.Time     `json:"created_at"`
}

// ComposeRequest asks for an outbound deep link for one invoice.
type ComposeRequest struct {
	InvoiceID  string
	Channel    Channel
	TemplateID *int64 // stored template; nil means CustomBody is used
	CustomBody string
}

// ComposeResult carries the deep-link URL the client should open plus the
// persisted audit row.
type ComposeResult struct {
	URL string      `json:"url"`
	Log *MessageLog `json:"log"`
}
