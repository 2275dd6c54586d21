package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rashedq/repair-ops/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageLogRepository(t *testing.T) {
	db := setupTestDB(t)
	logs := NewMessageLogRepository(db)
	invoices := NewInvoiceRepository(db)
	ctx := context.Background()

	inv := createTestInvoice(t, invoices, "40001")

	t.Run("create assigns id", func(t *testing.T) {
		code := "READY"
		created, err := logs.Create(ctx, &model.MessageLog{
			InvoiceID:    inv.ID,
			Channel:      model.ChannelWhatsApp,
			TemplateCode: &code,
			ToMobile:     "+966512345678",
			MessageBody:  "جهازك جاهز",
			Status:       model.MessageStatusSent,
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, model.MessageStatusSent, created.Status)
	})

	t.Run("list newest first", func(t *testing.T) {
		// force distinct timestamps, sqlite stores them as given
		older := &MessageLogEntity{
			InvoiceID:   inv.ID,
			Channel:     string(model.ChannelSMS),
			ToMobile:    "+966512345678",
			MessageBody: "first",
			Status:      string(model.MessageStatusSent),
			CreatedAt:   time.Now().Add(-time.Hour),
		}
		require.NoError(t, db.Write(ctx).Create(older).Error)

		entries, err := logs.ListByInvoice(ctx, inv.ID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "جهازك جاهز", entries[0].MessageBody)
		assert.Equal(t, "first", entries[1].MessageBody)
	})

	t.Run("unknown invoice lists empty", func(t *testing.T) {
		entries, err := logs.ListByInvoice(ctx, "no-such-id")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
