package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rashedq/repair-ops/internal/model"
	"github.com/rashedq/repair-ops/internal/phone"
	"github.com/rashedq/repair-ops/internal/repository"
	"github.com/rashedq/repair-ops/pkg/prom"
)

var (
	ErrNotFound            = errors.New("invoice not found")
	ErrAllocationExhausted = errors.New("could not allocate invoice number")
)

// defaultCreateAttempts bounds the numbering retry loop. Two attempts match
// the contention actually seen at the counter row.
const defaultCreateAttempts = 2

type InvoiceRepository interface {
	Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)
	GetByID(ctx context.Context, id string) (*model.Invoice, error)
	List(ctx context.Context, f model.InvoiceFilter) ([]*model.Invoice, int64, error) // results, totalCount
	Update(ctx context.Context, id string, p model.InvoicePatch) (*model.Invoice, error)
	EnsureCounter(ctx context.Context) error
	GetCounter(ctx context.Context) (int64, error)
	TryAdvanceCounter(ctx context.Context, expected, next int64) error
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepository interface {
	UpsertActor(ctx context.Context, actor model.Actor) (*model.User, error)
}

type InvoiceService struct {
	invoiceRepo    InvoiceRepository
	userRepo       UserRepository
	createAttempts int
}

func NewInvoiceService(invoiceRepo InvoiceRepository, userRepo UserRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:    invoiceRepo,
		userRepo:       userRepo,
		createAttempts: defaultCreateAttempts,
	}
}

// WithCreateAttempts overrides the numbering retry bound. Zero or negative
// keeps the default.
func (s *InvoiceService) WithCreateAttempts(n int) *InvoiceService {
	if n > 0 {
		s.createAttempts = n
	}
	return s
}

// FormatInvoiceNo renders a counter value as the human-facing number. Values
// below 10000 are zero-padded to six digits; the floor keeps them unreachable
// in practice.
func FormatInvoiceNo(n int64) string {
	if n >= 10000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%06d", n)
}

// Create registers a new repair ticket. Numbering and row insertion happen in
// one transaction; a lost race on the counter or a duplicate invoice number
// restarts the whole transaction up to the attempt bound.
func (s *InvoiceService) Create(ctx context.Context, actor model.Actor, p model.InvoiceCreateRequest) (*model.Invoice, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < s.createAttempts; attempt++ {
		inv, err := s.createAttempt(ctx, actor, p)
		if err == nil {
			prom.IncCounter(prom.SystemInvoices, prom.MetricInvoiceCreated)
			return inv, nil
		}

		if errors.Is(err, repository.ErrConcurrentUpdate) || errors.Is(err, repository.ErrDuplicateInvoiceNo) {
			prom.IncCounter(prom.SystemInvoices, prom.MetricAllocationConflict)
			continue
		}

		// anything else is not a numbering race, propagate unchanged
		return nil, err
	}

	prom.IncCounter(prom.SystemInvoices, prom.MetricAllocationExhausted)
	return nil, ErrAllocationExhausted
}

func (s *InvoiceService) createAttempt(ctx context.Context, actor model.Actor, p model.InvoiceCreateRequest) (*model.Invoice, error) {
	var created *model.Invoice
	err := s.invoiceRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.invoiceRepo.EnsureCounter(ctx); err != nil {
			return fmt.Errorf("ensure counter: %w", err)
		}

		base, err := s.invoiceRepo.GetCounter(ctx)
		if err != nil {
			return fmt.Errorf("read counter: %w", err)
		}

		// the floor guards against a racing first-run seeding the row low
		next := base + 1
		if next < repository.CounterFloor+1 {
			next = repository.CounterFloor + 1
		}

		if err := s.invoiceRepo.TryAdvanceCounter(ctx, base, next); err != nil {
			return err
		}

		inv := &model.Invoice{
			InvoiceNo:     FormatInvoiceNo(next),
			CustomerName:  optText(p.CustomerName),
			DeviceType:    optText(p.DeviceType),
			Problem:       optText(p.Problem),
			StaffReceiver: optText(p.StaffReceiver),
			Notes:         optText(p.Notes),
			AgreedPrice:   p.AgreedPrice,
			DeviceStatus:  model.StatusNew,
		}

		if m := strings.TrimSpace(p.Mobile); m != "" {
			normalized := phone.Normalize(m)
			inv.Mobile = &normalized
		}

		if !actor.IsZero() && s.userRepo != nil {
			user, err := s.userRepo.UpsertActor(ctx, actor)
			if err != nil {
				return fmt.Errorf("upsert actor: %w", err)
			}
			inv.CreatedByUserID = &user.ID
		}

		created, err = s.invoiceRepo.Create(ctx, inv)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies a partial payload. Absent fields are left untouched. Setting
// the delivered flag forces the status to DELIVERED and stamps delivered_at;
// resetting it clears the stamp. Nothing else is guarded: staff may move a
// ticket backwards, including off DELIVERED, on purpose.
func (s *InvoiceService) Update(ctx context.Context, id string, p model.InvoicePatch) (*model.Invoice, error) {
	if p.IsDelivered != nil {
		if *p.IsDelivered {
			st := model.StatusDelivered
			p.DeviceStatus = &st
			if p.DeliveredAt == nil {
				now := time.Now()
				p.DeliveredAt = &now
			}
		} else {
			p.DeliveredAt = nil
		}
	}

	inv, err := s.invoiceRepo.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceService) Get(ctx context.Context, id string) (*model.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceService) List(ctx context.Context, f model.InvoiceFilter) ([]*model.Invoice, int64, error) {
	return s.invoiceRepo.List(ctx, f)
}

func optText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
