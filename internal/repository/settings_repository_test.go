package repository

import (
	"context"
	"testing"

	"github.com/rashedq/repair-ops/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	t.Run("ping answers", func(t *testing.T) {
		assert.NoError(t, repo.Ping(ctx))
	})

	t.Run("empty table", func(t *testing.T) {
		_, err := repo.Get(ctx)
		assert.ErrorIs(t, err, ErrSettingsNotFound)
	})

	t.Run("upsert pins the singleton id", func(t *testing.T) {
		created, err := repo.Upsert(ctx, &model.Settings{
			ID:        42, // ignored, the row key is fixed
			ShopName:  "محل الصيانة",
			ShopPhone: "+966500000000",
			VatRate:   0.15,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)

		key := "wa-key"
		updated, err := repo.Upsert(ctx, &model.Settings{
			ShopName:       "ورشة الجوالات",
			ShopPhone:      "+966500000001",
			VatRate:        0.15,
			WhatsappAPIKey: &key,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), updated.ID)

		loaded, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ورشة الجوالات", loaded.ShopName)
		require.NotNil(t, loaded.WhatsappAPIKey)
		assert.Equal(t, key, *loaded.WhatsappAPIKey)
	})
}
