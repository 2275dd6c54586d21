package repository

import (
	"context"
	"testing"

	"github.com/rashedq/repair-ops/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_UpsertActor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("creates with defaults", func(t *testing.T) {
		user, err := repo.UpsertActor(ctx, model.Actor{Email: "staff@local.test"})
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "Admin", user.Name)
		assert.Equal(t, model.RoleAdmin, user.Role)
	})

	t.Run("conflicting email keeps the original id", func(t *testing.T) {
		first, err := repo.UpsertActor(ctx, model.Actor{Email: "sara@local.test", Name: "Sara", Role: model.RoleStaff})
		require.NoError(t, err)

		second, err := repo.UpsertActor(ctx, model.Actor{
			ID:    "different-id",
			Email: "sara@local.test",
			Name:  "Sara A.",
			Role:  model.RoleAdmin,
		})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Sara A.", second.Name)
		assert.Equal(t, model.RoleAdmin, second.Role)
	})
}
