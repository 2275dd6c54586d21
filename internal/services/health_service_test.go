package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHealthService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("reachable database", func(t *testing.T) {
		db := new(MockPinger)
		db.On("Ping", ctx).Return(nil)

		assert.NoError(t, NewHealthService(db).Get(ctx))
	})

	t.Run("unreachable database", func(t *testing.T) {
		db := new(MockPinger)
		dbErr := errors.New("connection refused")
		db.On("Ping", ctx).Return(dbErr)

		assert.ErrorIs(t, NewHealthService(db).Get(ctx), dbErr)
	})
}
