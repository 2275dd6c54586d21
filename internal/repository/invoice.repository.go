package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rashedq/repair-ops/internal/model"
	"github.com/rashedq/repair-ops/pkg/pg"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// CounterKey is the singleton numbering row key.
	CounterKey = "GLOBAL"
	// CounterFloor is the value the counter row is seeded with; the first
	// issued invoice number is CounterFloor+1.
	CounterFloor = 10498
)

var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrCounterNotFound    = errors.New("invoice counter not found")
	ErrConcurrentUpdate   = errors.New("concurrent counter update detected")
	ErrDuplicateInvoiceNo = errors.New("invoice number already exists")
)

type InvoiceRepository struct {
	*pg.DB
}

func NewInvoiceRepository(db *pg.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db,
	}
}

// Create inserts the invoice row, assigning a fresh id. A unique violation on
// invoice_no comes back as ErrDuplicateInvoiceNo so the caller can retry the
// allocation.
func (r *InvoiceRepository) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	entity := toInvoiceEntity(inv)
	if entity.ID == "" {
		entity.ID = uuid.NewString()
	}

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateInvoiceNo
		}
		return nil, err
	}

	return toInvoiceModel(entity), nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*model.Invoice, error) {
	var entity InvoiceEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return toInvoiceModel(&entity), nil
}

func (r *InvoiceRepository) List(ctx context.Context, f model.InvoiceFilter) ([]*model.Invoice, int64, error) {
	q := r.Read(ctx).WithContext(ctx).Model(&InvoiceEntity{})

	if f.Status != nil {
		q = q.Where("device_status = ?", string(*f.Status))
	}
	if f.IsDelivered != nil {
		q = q.Where("is_delivered = ?", *f.IsDelivered)
	}
	if f.Search != nil && *f.Search != "" {
		like := "%" + *f.Search + "%"
		q = q.Where("customer_name LIKE ? OR mobile LIKE ? OR invoice_no LIKE ?", like, like, like)
	}

	// Count before pagination
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "updated_at"
	if f.Desc {
		order += " DESC"
	} else {
		order += " ASC"
	}

	limit := f.Limit
	if limit <= 0 || limit > 1000 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var entities []*InvoiceEntity
	if err := q.Order(order).Limit(limit).Offset(offset).Find(&entities).Error; err != nil {
		return nil, 0, err
	}

	return toInvoiceModels(entities), total, nil
}

// Update applies only the fields present in the patch. Nil pointers are
// no-ops; OptFloat fields write NULL when explicitly cleared. delivered_at
// follows the is_delivered flag and is cleared when the flag is reset.
func (r *InvoiceRepository) Update(ctx context.Context, id string, p model.InvoicePatch) (*model.Invoice, error) {
	updates := map[string]interface{}{}

	if p.CustomerName != nil {
		updates["customer_name"] = *p.CustomerName
	}
	if p.Mobile != nil {
		updates["mobile"] = *p.Mobile
	}
	if p.DeviceType != nil {
		updates["device_type"] = *p.DeviceType
	}
	if p.Problem != nil {
		updates["problem"] = *p.Problem
	}
	if p.StaffReceiver != nil {
		updates["staff_receiver"] = *p.StaffReceiver
	}
	if p.Notes != nil {
		updates["notes"] = *p.Notes
	}
	if p.DeviceStatus != nil {
		updates["device_status"] = string(*p.DeviceStatus)
	}
	if p.ContactedCustomer != nil {
		updates["contacted_customer"] = *p.ContactedCustomer
	}
	if p.AgreedPrice.Set {
		updates["agreed_price"] = p.AgreedPrice.Ptr()
	}
	if p.TotalAmount.Set {
		updates["total_amount"] = p.TotalAmount.Ptr()
	}
	if p.ReceiverName != nil {
		updates["receiver_name"] = *p.ReceiverName
	}
	if p.IsDelivered != nil {
		updates["is_delivered"] = *p.IsDelivered
		updates["delivered_at"] = p.DeliveredAt
	}

	if len(updates) > 0 {
		result := r.Write(ctx).WithContext(ctx).
			Model(&InvoiceEntity{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrInvoiceNotFound
		}
	}

	return r.getForWrite(ctx, id)
}

// getForWrite reloads through the write side so updates made inside an open
// transaction are visible.
func (r *InvoiceRepository) getForWrite(ctx context.Context, id string) (*model.Invoice, error) {
	var entity InvoiceEntity
	err := r.Write(ctx).WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return toInvoiceModel(&entity), nil
}

/* ---------------------------- counter primitives ---------------------------- */

// EnsureCounter creates the singleton counter row at the floor value when it
// does not exist yet. Safe to race: concurrent first-runs collapse into a
// no-op insert.
func (r *InvoiceRepository) EnsureCounter(ctx context.Context) error {
	return r.Write(ctx).WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&InvoiceCounterEntity{DateKey: CounterKey, Counter: CounterFloor}).
		Error
}

// GetCounter reads the current counter value.
func (r *InvoiceRepository) GetCounter(ctx context.Context) (int64, error) {
	var entity InvoiceCounterEntity
	err := r.Write(ctx).WithContext(ctx).
		Where("date_key = ?", CounterKey).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCounterNotFound
		}
		return 0, err
	}
	return entity.Counter, nil
}

// TryAdvanceCounter moves the counter from expected to next with a guarded
// update. A concurrent allocator that already advanced the row makes the
// guard miss, which surfaces as ErrConcurrentUpdate for the caller to retry.
func (r *InvoiceRepository) TryAdvanceCounter(ctx context.Context, expected, next int64) error {
	result := r.Write(ctx).WithContext(ctx).
		Model(&InvoiceCounterEntity{}).
		Where("date_key = ? AND counter = ?", CounterKey, expected).
		Update("counter", next)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}
	return nil
}
