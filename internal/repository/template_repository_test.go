package repository

import (
	"context"
	"testing"

	"github.com/rashedq/repair-ops/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTemplateRepository(db)
	ctx := context.Background()

	t.Run("create then update in place", func(t *testing.T) {
		created, err := repo.Upsert(ctx, &model.MessageTemplate{
			Code:    "READY",
			Channel: model.ChannelWhatsApp,
			TitleAr: "جاهز للاستلام",
			BodyAr:  "جهازك جاهز، فاتورة {invoice_no}",
			Enabled: true,
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		updated, err := repo.Upsert(ctx, &model.MessageTemplate{
			Code:    "READY",
			Channel: model.ChannelSMS,
			TitleAr: "جاهز",
			BodyAr:  "جاهز للاستلام {invoice_no}",
			Enabled: false,
		})
		require.NoError(t, err)

		loaded, err := repo.GetByCode(ctx, "READY")
		require.NoError(t, err)
		assert.Equal(t, created.ID, loaded.ID)
		assert.Equal(t, model.ChannelSMS, loaded.Channel)
		assert.Equal(t, updated.BodyAr, loaded.BodyAr)
		assert.False(t, loaded.Enabled)
	})
}

func TestTemplateRepository_Lookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTemplateRepository(db)
	ctx := context.Background()

	for _, code := range []string{"RECEIVED", "READY", "DELIVERED"} {
		_, err := repo.Upsert(ctx, &model.MessageTemplate{
			Code:    code,
			Channel: model.ChannelWhatsApp,
			TitleAr: code,
			BodyAr:  code,
			Enabled: true,
		})
		require.NoError(t, err)
	}

	t.Run("get by id", func(t *testing.T) {
		byCode, err := repo.GetByCode(ctx, "READY")
		require.NoError(t, err)

		byID, err := repo.GetByID(ctx, byCode.ID)
		require.NoError(t, err)
		assert.Equal(t, "READY", byID.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("missing code", func(t *testing.T) {
		_, err := repo.GetByCode(ctx, "NOPE")
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("list ordered by code", func(t *testing.T) {
		templates, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, templates, 3)
		assert.Equal(t, "DELIVERED", templates[0].Code)
		assert.Equal(t, "READY", templates[1].Code)
		assert.Equal(t, "RECEIVED", templates[2].Code)
	})
}
