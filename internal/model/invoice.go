package model

import (
	"errors"
	"strings"
	"time"
)

type Invoice struct {
	ID                string       `json:"id"`
	InvoiceNo         string       `json:"invoice_no"`
	CustomerName      *string      `json:"customer_name"`
	Mobile            *string      `json:"mobile"`
	DeviceType        *string      `json:"device_type"`
	Problem           *string      `json:"problem"`
	StaffReceiver     *string      `json:"staff_receiver"`
	Notes             *string      `json:"notes"`
	AgreedPrice       *float64     `json:"agreed_price"`
	TotalAmount       *float64     `json:"total_amount"`
	DeviceStatus      DeviceStatus `json:"device_status"`
	ContactedCustomer bool         `json:"contacted_customer"`
	IsDelivered       bool         `json:"is_delivered"`
	ReceiverName      *string      `json:"receiver_name"`
	DeliveredAt       *time.Time   `json:"delivered_at"`
	CreatedByUserID   *string      `json:"created_by_user_id"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// InvoiceCreateRequest is the intake payload for a new ticket.
type InvoiceCreateRequest struct {
	CustomerName  string
	Mobile        string
	DeviceType    string
	Problem       string
	StaffReceiver string
	Notes         string
	AgreedPrice   *float64
}

var ErrMinimalInfo = errors.New("provide at least two fields, or customer name with device type, or mobile with problem")

func hasValue(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Validate applies the minimal-information rule: a ticket is acceptable with
// incomplete data as long as staff captured enough to find the customer or
// the device again.
func (p InvoiceCreateRequest) Validate() error {
	comboA := hasValue(p.CustomerName) && hasValue(p.DeviceType)
	comboB := hasValue(p.Mobile) && hasValue(p.Problem)

	count := 0
	for _, v := range []string{p.CustomerName, p.Mobile, p.DeviceType, p.Problem} {
		if hasValue(v) {
			count++
		}
	}

	if comboA || comboB || count >= 2 {
		return nil
	}
	return ErrMinimalInfo
}

// InvoicePatch is a partial update. Nil pointer fields are left untouched;
// OptFloat fields additionally distinguish an explicit clear from absence.
type InvoicePatch struct {
	CustomerName      *string       `json:"customer_name"`
	Mobile            *string       `json:"mobile"`
	DeviceType        *string       `json:"device_type"`
	Problem           *string       `json:"problem"`
	StaffReceiver     *string       `json:"staff_receiver"`
	Notes             *string       `json:"notes"`
	DeviceStatus      *DeviceStatus `json:"device_status"`
	ContactedCustomer *bool         `json:"contacted_customer"`
	AgreedPrice       OptFloat      `json:"agreed_price"`
	TotalAmount       OptFloat      `json:"total_amount"`
	IsDelivered       *bool         `json:"is_delivered"`
	ReceiverName      *string       `json:"receiver_name"`
	DeliveredAt       *time.Time    `json:"delivered_at"`
}

// InvoiceFilter controls List queries.
type InvoiceFilter struct {
	Status      *DeviceStatus
	IsDelivered *bool
	Search      *string // matches customer name, mobile or invoice number
	Limit       int     // default 50
	Offset      int
	Desc        bool // order by updated_at
}
