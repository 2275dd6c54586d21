// Package template renders customer notification bodies by substituting
// {placeholder} tokens with invoice and shop fields.
package template

import (
	"strconv"
	"strings"

	"github.com/rashedq/repair-ops/internal/model"
)

const createdAtLayout = "2006-01-02 15:04"

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Render substitutes every recognized token in body, all occurrences, in any
// order (tokens are disjoint). Unknown tokens are left verbatim. The model,
// color, part-status and expected-arrival tokens are reserved for invoice
// fields that are not modeled yet and always render empty.
func Render(body string, invoice *model.Invoice, settings *model.Settings) string {
	finalCost := ""
	if invoice.AgreedPrice != nil {
		finalCost = strconv.FormatFloat(*invoice.AgreedPrice, 'f', -1, 64)
	}

	replacements := map[string]string{
		"{customer_name}":              deref(invoice.CustomerName),
		"{mobile}":                     deref(invoice.Mobile),
		"{invoice_no}":                 invoice.InvoiceNo,
		"{device_name}":                deref(invoice.DeviceType),
		"{model}":                      "",
		"{color}":                      "",
		"{problem}":                    deref(invoice.Problem),
		"{repair_status}":              string(invoice.DeviceStatus),
		"{part_status}":                "",
		"{expected_part_arrival_date}": "",
		"{shop_name}":                  settings.ShopName,
		"{shop_phone}":                 settings.ShopPhone,
		"{final_cost}":                 finalCost,
		"{created_at}":                 invoice.CreatedAt.Format(createdAtLayout),
	}

	for token, value := range replacements {
		body = strings.ReplaceAll(body, token, value)
	}
	return body
}
