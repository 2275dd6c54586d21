package repository

import (
	"time"

	"github.com/rashedq/repair-ops/internal/model"
)

type InvoiceEntity struct {
	ID                string     `db:"id"                 gorm:"primaryKey;column:id"`
	InvoiceNo         string     `db:"invoice_no"         gorm:"column:invoice_no;not null;uniqueIndex"`
	CustomerName      *string    `db:"customer_name"      gorm:"column:customer_name"`
	Mobile            *string    `db:"mobile"             gorm:"column:mobile"`
	DeviceType        *string    `db:"device_type"        gorm:"column:device_type"`
	Problem           *string    `db:"problem"            gorm:"column:problem"`
	StaffReceiver     *string    `db:"staff_receiver"     gorm:"column:staff_receiver"`
	Notes             *string    `db:"notes"              gorm:"column:notes"`
	AgreedPrice       *float64   `db:"agreed_price"       gorm:"column:agreed_price"`
	TotalAmount       *float64   `db:"total_amount"       gorm:"column:total_amount"`
	DeviceStatus      string     `db:"device_status"      gorm:"column:device_status;not null;default:NEW"`
	ContactedCustomer bool       `db:"contacted_customer" gorm:"column:contacted_customer;not null;default:false"`
	IsDelivered       bool       `db:"is_delivered"       gorm:"column:is_delivered;not null;default:false"`
	ReceiverName      *string    `db:"receiver_name"      gorm:"column:receiver_name"`
	DeliveredAt       *time.Time `db:"delivered_at"       gorm:"column:delivered_at"`
	CreatedByUserID   *string    `db:"created_by_user_id" gorm:"column:created_by_user_id;index"`
	CreatedAt         time.Time  `db:"created_at"         gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time  `db:"updated_at"         gorm:"column:updated_at;autoUpdateTime"`
}

func (InvoiceEntity) TableName() string {
	return "invoices"
}

func toInvoiceEntity(m *model.Invoice) *InvoiceEntity {
	if m == nil {
		return nil
	}
	return &InvoiceEntity{
		ID:                m.ID,
		InvoiceNo:         m.InvoiceNo,
		CustomerName:      m.CustomerName,
		Mobile:            m.Mobile,
		DeviceType:        m.DeviceType,
		Problem:           m.Problem,
		StaffReceiver:     m.StaffReceiver,
		Notes:             m.Notes,
		AgreedPrice:       m.AgreedPrice,
		TotalAmount:       m.TotalAmount,
		DeviceStatus:      string(m.DeviceStatus),
		ContactedCustomer: m.ContactedCustomer,
		IsDelivered:       m.IsDelivered,
		ReceiverName:      m.ReceiverName,
		DeliveredAt:       m.DeliveredAt,
		CreatedByUserID:   m.CreatedByUserID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toInvoiceModel(e *InvoiceEntity) *model.Invoice {
	if e == nil {
		return nil
	}
	return &model.Invoice{
		ID:                e.ID,
		InvoiceNo:         e.InvoiceNo,
		CustomerName:      e.CustomerName,
		Mobile:            e.Mobile,
		DeviceType:        e.DeviceType,
		Problem:           e.Problem,
		StaffReceiver:     e.StaffReceiver,
		Notes:             e.Notes,
		AgreedPrice:       e.AgreedPrice,
		TotalAmount:       e.TotalAmount,
		DeviceStatus:      model.DeviceStatus(e.DeviceStatus),
		ContactedCustomer: e.ContactedCustomer,
		IsDelivered:       e.IsDelivered,
		ReceiverName:      e.ReceiverName,
		DeliveredAt:       e.DeliveredAt,
		CreatedByUserID:   e.CreatedByUserID,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func toInvoiceModels(entities []*InvoiceEntity) []*model.Invoice {
	if entities == nil {
		return nil
	}
	models := make([]*model.Invoice, len(entities))
	for i, e := range entities {
		models[i] = toInvoiceModel(e)
	}
	return models
}

// InvoiceCounterEntity is the singleton numbering row. The key is fixed; the
// column name is kept from an earlier per-day numbering scheme.
type InvoiceCounterEntity struct {
	DateKey string `db:"date_key" gorm:"primaryKey;column:date_key"`
	Counter int64  `db:"counter"  gorm:"column:counter;not null"`
}

func (InvoiceCounterEntity) TableName() string {
	return "invoice_counters"
}
