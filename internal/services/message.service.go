package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rashedq/repair-ops/internal/model"
	"github.com/rashedq/repair-ops/internal/phone"
	"github.com/rashedq/repair-ops/internal/repository"
	"github.com/rashedq/repair-ops/internal/template"
	"github.com/rashedq/repair-ops/pkg/logger"
	"github.com/rashedq/repair-ops/pkg/prom"
)

var (
	ErrSettingsMissing    = errors.New("shop settings are not configured")
	ErrNoMobile           = errors.New("invoice has no valid mobile number")
	ErrStatusInternalOnly = errors.New("invoice status is internal-only, messaging refused")
	ErrTemplateNotFound   = errors.New("message template not found")
)

type TemplateRepository interface {
	GetByID(ctx context.Context, id int64) (*model.MessageTemplate, error)
	GetByCode(ctx context.Context, code string) (*model.MessageTemplate, error)
	List(ctx context.Context) ([]*model.MessageTemplate, error)
	Upsert(ctx context.Context, t *model.MessageTemplate) (*model.MessageTemplate, error)
}

type MessageLogRepository interface {
	Create(ctx context.Context, log *model.MessageLog) (*model.MessageLog, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]*model.MessageLog, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (*model.Settings, error)
}

type MessageService struct {
	invoiceRepo  InvoiceRepository
	templateRepo TemplateRepository
	logRepo      MessageLogRepository
	settings     SettingsProvider
}

func NewMessageService(invoiceRepo InvoiceRepository, templateRepo TemplateRepository, logRepo MessageLogRepository, settings SettingsProvider) *MessageService {
	return &MessageService{
		invoiceRepo:  invoiceRepo,
		templateRepo: templateRepo,
		logRepo:      logRepo,
		settings:     settings,
	}
}

// Compose renders an outbound notification for one invoice and returns the
// deep link the client should open, plus the persisted audit row. "SENT"
// means the link was handed over; actual delivery is invisible to us.
func (s *MessageService) Compose(ctx context.Context, actor model.Actor, req model.ComposeRequest) (*model.ComposeResult, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, req.InvoiceID)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return nil, ErrSettingsMissing
		}
		return nil, err
	}

	if !inv.DeviceStatus.CanNotify() {
		prom.IncCounter(prom.SystemMessages, prom.MetricMessageComposeFailed)
		return nil, ErrStatusInternalOnly
	}

	if inv.Mobile == nil || !phone.IsValidKsaMobile(*inv.Mobile) {
		prom.IncCounter(prom.SystemMessages, prom.MetricMessageComposeFailed)
		return nil, ErrNoMobile
	}
	mobile := phone.Normalize(*inv.Mobile)

	body := req.CustomBody
	var templateCode *string
	switch {
	case req.TemplateID != nil:
		tpl, err := s.templateRepo.GetByID(ctx, *req.TemplateID)
		if err != nil {
			if errors.Is(err, repository.ErrTemplateNotFound) {
				return nil, ErrTemplateNotFound
			}
			return nil, err
		}
		body = tpl.BodyAr
		templateCode = &tpl.Code
	case strings.TrimSpace(req.CustomBody) == "":
		// no explicit template and no ad-hoc body, fall back to the
		// status-keyed default
		code := inv.DeviceStatus.TemplateCode()
		if code == "" {
			return nil, ErrTemplateNotFound
		}
		tpl, err := s.templateRepo.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrTemplateNotFound) {
				return nil, ErrTemplateNotFound
			}
			return nil, err
		}
		body = tpl.BodyAr
		templateCode = &tpl.Code
	}

	rendered := template.Render(body, inv, settings)
	link := deepLink(req.Channel, mobile, rendered)

	log := &model.MessageLog{
		InvoiceID:    inv.ID,
		Channel:      req.Channel,
		TemplateCode: templateCode,
		ToMobile:     mobile,
		MessageBody:  rendered,
		Status:       model.MessageStatusSent,
	}
	if actor.ID != "" {
		id := actor.ID
		log.SentByUserID = &id
	}

	persisted, err := s.logRepo.Create(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("persist message log: %w", err)
	}

	// staff initiated outreach, flag the ticket; a failure here must not undo
	// the compose itself
	contacted := true
	if _, err := s.invoiceRepo.Update(ctx, inv.ID, model.InvoicePatch{ContactedCustomer: &contacted}); err != nil {
		logger.Warn("failed to flag contacted customer", "invoice_id", inv.ID, "error", err)
	}

	prom.IncCounterVec(prom.SystemMessages, prom.MetricMessageComposed, string(req.Channel))

	return &model.ComposeResult{URL: link, Log: persisted}, nil
}

// History lists the audit log for one invoice, newest first.
func (s *MessageService) History(ctx context.Context, invoiceID string) ([]*model.MessageLog, error) {
	if _, err := s.invoiceRepo.GetByID(ctx, invoiceID); err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.logRepo.ListByInvoice(ctx, invoiceID)
}

// deepLink builds the channel URL that hands the rendered body to the
// messaging app. wa.me wants bare digits, the sms scheme the full E.164 form.
func deepLink(channel model.Channel, mobile, body string) string {
	encoded := encodeComponent(body)
	if channel == model.ChannelWhatsApp {
		return "https://wa.me/" + strings.TrimPrefix(mobile, "+") + "?text=" + encoded
	}
	return "sms:" + mobile + "?body=" + encoded
}

// encodeComponent escapes like JS encodeURIComponent: spaces become %20, not
// "+", which sms composers would show literally.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
