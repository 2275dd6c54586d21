package fixtures

import (
	"time"

	"github.com/rashedq/repair-ops/internal/model"
)

var (
	TestSettings = model.Settings{
		ID:        1,
		ShopName:  "محل الصيانة",
		ShopPhone: "+966500000000",
		VatRate:   0.15,
	}

	TestActorStaff = model.Actor{
		ID:    "11111111-1111-1111-1111-111111111111",
		Email: "staff@local.test",
		Name:  "Staff",
		Role:  model.RoleStaff,
	}

	TestActorAdmin = model.Actor{
		ID:    "22222222-2222-2222-2222-222222222222",
		Email: "admin@local.test",
		Name:  "Admin",
		Role:  model.RoleAdmin,
	}
)

func NewTestInvoice(id, invoiceNo string, status model.DeviceStatus, mobile *string) *model.Invoice {
	return &model.Invoice{
		ID:           id,
		InvoiceNo:    invoiceNo,
		Mobile:       mobile,
		DeviceStatus: status,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func NewTestCreateRequest(customerName, mobile, deviceType, problem string) model.InvoiceCreateRequest {
	return model.InvoiceCreateRequest{
		CustomerName: customerName,
		Mobile:       mobile,
		DeviceType:   deviceType,
		Problem:      problem,
	}
}

func NewTestTemplate(id int64, code string, channel model.Channel, body string) *model.MessageTemplate {
	return &model.MessageTemplate{
		ID:      id,
		Code:    code,
		Channel: channel,
		TitleAr: code,
		BodyAr:  body,
		Enabled: true,
	}
}

func Ptr[T any](v T) *T {
	return &v
}

var (
	ValidMobileNumbers = []string{
		"+966512345678",
		"0512345678",
		"00966512345678",
		"966512345678",
		"512345678",
	}

	InvalidMobileNumbers = []string{
		"",
		"12345",
		"+96651234567",
		"+9661234567890",
		"+971501234567",
	}
)
