package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rashedq/repair-ops/internal/model"
	"github.com/rashedq/repair-ops/internal/repository"
	"github.com/rashedq/repair-ops/test/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) GetByID(ctx context.Context, id int64) (*model.MessageTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MessageTemplate), args.Error(1)
}

func (m *MockTemplateRepository) GetByCode(ctx context.Context, code string) (*model.MessageTemplate, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MessageTemplate), args.Error(1)
}

func (m *MockTemplateRepository) Upsert(ctx context.Context, tpl *model.MessageTemplate) (*model.MessageTemplate, error) {
	args := m.Called(ctx, tpl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MessageTemplate), args.Error(1)
}

func (m *MockTemplateRepository) List(ctx context.Context) ([]*model.MessageTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.MessageTemplate), args.Error(1)
}

type MockMessageLogRepository struct {
	mock.Mock
}

func (m *MockMessageLogRepository) Create(ctx context.Context, log *model.MessageLog) (*model.MessageLog, error) {
	args := m.Called(ctx, log)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, *model.MessageLog) *model.MessageLog); ok {
		return fn(ctx, log), args.Error(1)
	}
	return args.Get(0).(*model.MessageLog), args.Error(1)
}

func (m *MockMessageLogRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*model.MessageLog, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.MessageLog), args.Error(1)
}

type MockSettingsProvider struct {
	mock.Mock
}

func (m *MockSettingsProvider) Get(ctx context.Context) (*model.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

func newMessageServiceMocks() (*MockInvoiceRepository, *MockTemplateRepository, *MockMessageLogRepository, *MockSettingsProvider, *MessageService) {
	invoices := new(MockInvoiceRepository)
	templates := new(MockTemplateRepository)
	logs := new(MockMessageLogRepository)
	settings := new(MockSettingsProvider)
	service := NewMessageService(invoices, templates, logs, settings)
	return invoices, templates, logs, settings, service
}

func echoLog() interface{} {
	return func(ctx context.Context, log *model.MessageLog) *model.MessageLog { return log }
}

func TestMessageService_Compose_InvoiceNotFound(t *testing.T) {
	invoices, _, _, _, service := newMessageServiceMocks()
	ctx := context.Background()

	invoices.On("GetByID", ctx, "missing").Return(nil, repository.ErrInvoiceNotFound)

	result, err := service.Compose(ctx, model.Actor{}, model.ComposeRequest{
		InvoiceID: "missing",
		Channel:   model.ChannelWhatsApp,
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, result)
}

func TestMessageService_Compose_SettingsMissing(t *testing.T) {
	invoices, _, _, settings, service := newMessageServiceMocks()
	ctx := context.Background()

	inv := fixtures.NewTestInvoice("inv-1", "10499", model.StatusReady, fixtures.Ptr("+966512345678"))
	invoices.On("GetByID", ctx, "inv-1").Return(inv, nil)
	settings.On("Get", ctx).Return(nil, repository.ErrSettingsNotFound)

	result, err := service.Compose(ctx, model.Actor{}, model.ComposeRequest{
		InvoiceID:  "inv-1",
		Channel:    model.ChannelWhatsApp,
		CustomBody: "hello",
	})
	assert.ErrorIs(t, err, ErrSettingsMissing)
	assert.Nil(t, result)
}

func TestMessageService_Compose_InternalOnlyStatusRefused(t *testing.T) {
	invoices, _, logs, settings, service := newMessageServiceMocks()
	ctx := context.Background()

	inv := fixtures.NewTestInvoice("inv-1", "10499", model.StatusNoParts, fixtures.Ptr("+966512345678"))
	invoices.On("GetByID", ctx, "inv-1").Return(inv, nil)
	settings.On("Get", ctx).Return(&fixtures.TestSettings, nil)

	result, err := service.Compose(ctx, model.Actor{}, model.ComposeRequest{
		InvoiceID:  "inv-1",
		Channel:    model.ChannelWhatsApp,
		CustomBody: "hello",
	})
	assert.ErrorIs(t, err, ErrStatusInternalOnly)
	assert.Nil(t, result)

	logs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMessageService_Compose_NoMobile(t *testing.T) {
	invoices, _, _, settings, service := newMessageServiceMocks()
	ctx := context.Background()

	inv := fixtures.NewTestInvoice("inv-1", "10499", model.StatusReady, nil)
	invoices.On("GetByID", ctx, "inv-1").Return(inv, nil)
	settings.On("Get", ctx).Return(&fixtures.TestSettings, nil)

	result, err := service.Compose(ctx, model.Actor{}, model.ComposeRequest{
		InvoiceID:  "inv-1",
		Channel:    model.ChannelSMS,
		CustomBody: "hello",
	})
	assert.ErrorIs(t, err, ErrNoMobile)
	assert.Nil(t, result)
}

func TestMessageService_Compose_InvalidMobile(t *testing.T) {
	invoices, _, _, settings, service := newMessageServiceMocks()
	ctx := context.Background()

	inv := fixtures.NewTestInvoice("inv-1", "10499", model.StatusReady, fixtures.Ptr("12345"))
	invoices.On("GetByID", ctx, "inv-1").Return(inv, nil)
	settings.On("Get", ctx).Return(&fixtures.TestSettings, nil)

	result, err := service.Compose(ctx, model.Actor{}, model.ComposeRequest{
		InvoiceID:  "inv-1",
		Channel:    model.ChannelWhatsApp,
		CustomBody: "hello",
	})
	assert.ErrorIs(t, err, ErrNoMobile)
	assert.Nil(t, result)
}

func TestMessageService_Compose_WhatsAppDeepLink(t *testing.T) {
	invoices, _, logs, settings, service := newMessageServiceMocks()
	ctx := context.Background()

	inv := fixtures.NewTestInvoice("inv-1", "10499", model.StatusReady, fixtures.Ptr("0512345678"))
	invoices.On("GetByID", ctx, "inv-1").Return(inv, nil)
	settings.On("Get", ctx).Return(&fixtures.TestSettings, nil)
	logs.On("Create", ctx, mock.AnythingOfType("*model.MessageLog")).Return(echoLog(), nil)
	invoices.On("Update", ctx, "inv-1", mock.MatchedBy(func(p model.InvoicePatch) bool {
		return p.ContactedCustomer != nil && *p.ContactedCustomer
	})).Return(inv, nil)

	actor := fixtures.TestActorStaff
	result, err := service.Compose(ctx, actor, model.ComposeRequest{
		InvoiceID:  "inv-1",
		Channel:    model.ChannelWhatsApp,
		CustomBody: "order {invoice_no} ready",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "https://wa.me/966512345678?text=order%2010499%20ready", result.URL)

	require.NotNil(t, result.Log)
	assert.Equal(t, "inv-1", result.Log.InvoiceID)
	assert.Equal(t, model.ChannelWhatsApp, result.Log.Channel)
	assert.Equal(t, "+966512345678", result.Log.ToMobile)
	assert.Equal(t, "order 10499 ready", result.Log.MessageBody)
	assert.Equal(t, model.MessageStatusSent, result.Log.Status)
	assert.Nil(t, result.Log.TemplateCode)
	require.NotNil(t, result.Log.SentByUserID)
	assert.Equal(t, actor.ID, *result.Log.SentByUserID)

	invoices.AssertExpectations(t)
	logs.AssertExpectations(t)
}

func TestMessageService_Compose_SMSDeepLink(t *testing.T) {
	invoices, _, logs, settings, service := newMessageServiceMocks()
	ctx := context.Background()

	inv := fixtures.NewTestInvoice("inv-1", "10499", model.StatusReady, fixtures.Ptr("+966512345678"))
	invoices.On("GetByID", ctx, "inv-1").Return(inv, nil)
	settings.On("Get", ctx).Return(&fixtures.TestSettings, nil)
	logs.On("Create", ctx, mock.AnythingOfType("*model.MessageLog")).Return(echoLog(), nil)
	invoices.On("Update", ctx, "inv-1", mock.Anything).Return(inv, nil)

	result, err := service.Compose(ctx, model.Actor{}, model.ComposeRequest{
		InvoiceID:  "inv-1",
		Channel:    model.ChannelSMS,
		CustomBody: "ready for pickup",
	})
	require.NoError(t, err)
	assert.Equal(t, "sms:+966512345678?body=ready%20for%20pickup", result.URL)
	assert.Nil(t, result.Log.SentByUserID)
}

func TestMessageService_Compose_RendersStoredTemplate(t *testing.T) {
	invoices, templates, logs, settings, service := newMessageServiceMocks()
	ctx := context.Background()

	inv := fixtures.NewTestInvoice("inv-1", "10499", model.StatusReady, fixtures.Ptr("+966512345678"))
	tpl := fixtures.NewTestTemplate(3, "READY", model.ChannelWhatsApp, "invoice {invoice_no} at {shop_name}")

	invoices.On("GetByID", ctx, "inv-1").Return(inv, nil)
	settings.On("Get", ctx).Return(&fixtures.TestSettings, nil)
	templates.On("GetByID", ctx, int64(3)).Return(tpl, nil)
	logs.On("Create", ctx, mock.AnythingOfType("*model.MessageLog")).Return(echoLog(), nil)
	invoices.On("Update", ctx, "inv-1", mock.Anything).Return(inv, nil)

	result, err := service.Compose(ctx, model.Actor{}, model.ComposeRequest{
		InvoiceID:  "inv-1",
		Channel:    model.ChannelWhatsApp,
		TemplateID: fixtures.Ptr(int64(3)),
	})
	require.NoError(t, err)
	assert.Equal(t, "invoice 10499 at محل الصيانة", result.Log.MessageBody)
	require.NotNil(t, result.Log.TemplateCode)
	assert.Equal(t, "READY", *result.Log.TemplateCode)
}

func TestMessageService_Compose_StatusDefaultTemplate(t *testing.T) {
	invoices, templates, logs, settings, service := newMessageServiceMocks()
	ctx := context.Background()

	inv := fixtures.NewTestInvoice("inv-1", "10499", model.StatusReady, fixtures.Ptr("+966512345678"))
	tpl := fixtures.NewTestTemplate(4, "READY", model.ChannelWhatsApp, "invoice {invoice_no} is ready")

	invoices.On("GetByID", ctx, "inv-1").Return(inv, nil)
	settings.On("Get", ctx).Return(&fixtures.TestSettings, nil)
	templates.On("GetByCode", ctx, "READY").Return(tpl, nil)
	logs.On("Create", ctx, mock.AnythingOfType("*model.MessageLog")).Return(echoLog(), nil)
	invoices.On("Update", ctx, "inv-1", mock.Anything).Return(inv, nil)

	result, err := service.Compose(ctx, model.Actor{}, model.ComposeRequest{
		InvoiceID: "inv-1",
		Channel:   model.ChannelWhatsApp,
	})
	require.NoError(t, err)
	assert.Equal(t, "invoice 10499 is ready", result.Log.MessageBody)
	require.NotNil(t, result.Log.TemplateCode)
	assert.Equal(t, "READY", *result.Log.TemplateCode)
	templates.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestMessageService_Compose_StatusWithoutDefaultTemplate(t *testing.T) {
	invoices, templates, _, settings, service := newMessageServiceMocks()
	ctx := context.Background()

	inv := fixtures.NewTestInvoice("inv-1", "10499", model.StatusNew, fixtures.Ptr("+966512345678"))
	invoices.On("GetByID", ctx, "inv-1").Return(inv, nil)
	settings.On("Get", ctx).Return(&fixtures.TestSettings, nil)

	result, err := service.Compose(ctx, model.Actor{}, model.ComposeRequest{
		InvoiceID: "inv-1",
		Channel:   model.ChannelWhatsApp,
	})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.Nil(t, result)
	templates.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
}

func TestMessageService_Compose_TemplateNotFound(t *testing.T) {
	invoices, templates, _, settings, service := newMessageServiceMocks()
	ctx := context.Background()

	inv := fixtures.NewTestInvoice("inv-1", "10499", model.StatusReady, fixtures.Ptr("+966512345678"))
	invoices.On("GetByID", ctx, "inv-1").Return(inv, nil)
	settings.On("Get", ctx).Return(&fixtures.TestSettings, nil)
	templates.On("GetByID", ctx, int64(99)).Return(nil, repository.ErrTemplateNotFound)

	result, err := service.Compose(ctx, model.Actor{}, model.ComposeRequest{
		InvoiceID:  "inv-1",
		Channel:    model.ChannelWhatsApp,
		TemplateID: fixtures.Ptr(int64(99)),
	})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.Nil(t, result)
}

func TestMessageService_Compose_ContactedFlagFailureIsNonFatal(t *testing.T) {
	invoices, _, logs, settings, service := newMessageServiceMocks()
	ctx := context.Background()

	inv := fixtures.NewTestInvoice("inv-1", "10499", model.StatusReady, fixtures.Ptr("+966512345678"))
	invoices.On("GetByID", ctx, "inv-1").Return(inv, nil)
	settings.On("Get", ctx).Return(&fixtures.TestSettings, nil)
	logs.On("Create", ctx, mock.AnythingOfType("*model.MessageLog")).Return(echoLog(), nil)
	invoices.On("Update", ctx, "inv-1", mock.Anything).
		Return(nil, errors.New("connection reset"))

	result, err := service.Compose(ctx, model.Actor{}, model.ComposeRequest{
		InvoiceID:  "inv-1",
		Channel:    model.ChannelWhatsApp,
		CustomBody: "hello",
	})
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestMessageService_History(t *testing.T) {
	invoices, _, logs, _, service := newMessageServiceMocks()
	ctx := context.Background()

	inv := fixtures.NewTestInvoice("inv-1", "10499", model.StatusReady, nil)
	entries := []*model.MessageLog{{ID: 2, InvoiceID: "inv-1"}, {ID: 1, InvoiceID: "inv-1"}}

	invoices.On("GetByID", ctx, "inv-1").Return(inv, nil)
	logs.On("ListByInvoice", ctx, "inv-1").Return(entries, nil)

	result, err := service.History(ctx, "inv-1")
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestMessageService_History_InvoiceNotFound(t *testing.T) {
	invoices, _, _, _, service := newMessageServiceMocks()
	ctx := context.Background()

	invoices.On("GetByID", ctx, "missing").Return(nil, repository.ErrInvoiceNotFound)

	result, err := service.History(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, result)
}
