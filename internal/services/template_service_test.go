package services

import (
	"context"
	"testing"

	"github.com/rashedq/repair-ops/internal/model"
	"github.com/rashedq/repair-ops/test/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTemplateService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects missing code", func(t *testing.T) {
		repo := new(MockTemplateRepository)
		service := NewTemplateService(repo)

		result, err := service.Upsert(ctx, model.TemplateUpsertRequest{
			Channel: model.ChannelWhatsApp,
			BodyAr:  "جاهز للاستلام",
		})
		assert.ErrorIs(t, err, ErrTemplateInvalid)
		assert.Nil(t, result)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("rejects blank body", func(t *testing.T) {
		repo := new(MockTemplateRepository)
		service := NewTemplateService(repo)

		result, err := service.Upsert(ctx, model.TemplateUpsertRequest{
			Code:    "READY",
			Channel: model.ChannelWhatsApp,
			BodyAr:  "   ",
		})
		assert.ErrorIs(t, err, ErrTemplateInvalid)
		assert.Nil(t, result)
	})

	t.Run("rejects unknown channel", func(t *testing.T) {
		repo := new(MockTemplateRepository)
		service := NewTemplateService(repo)

		result, err := service.Upsert(ctx, model.TemplateUpsertRequest{
			Code:    "READY",
			Channel: model.Channel("PIGEON"),
			BodyAr:  "جاهز للاستلام",
		})
		assert.ErrorIs(t, err, ErrTemplateInvalid)
		assert.Nil(t, result)
	})

	t.Run("enabled defaults to true", func(t *testing.T) {
		repo := new(MockTemplateRepository)
		service := NewTemplateService(repo)

		saved := &model.MessageTemplate{ID: 4, Code: "READY", Channel: model.ChannelWhatsApp, BodyAr: "جاهز", Enabled: true}
		repo.On("Upsert", ctx, mock.MatchedBy(func(tpl *model.MessageTemplate) bool {
			return tpl.Code == "READY" && tpl.Enabled
		})).Return(saved, nil)

		result, err := service.Upsert(ctx, model.TemplateUpsertRequest{
			Code:    "READY",
			Channel: model.ChannelWhatsApp,
			BodyAr:  "جاهز",
		})
		require.NoError(t, err)
		assert.Equal(t, saved, result)
		repo.AssertExpectations(t)
	})

	t.Run("explicit disable is kept", func(t *testing.T) {
		repo := new(MockTemplateRepository)
		service := NewTemplateService(repo)

		saved := &model.MessageTemplate{ID: 5, Code: "READY_SMS", Enabled: false}
		repo.On("Upsert", ctx, mock.MatchedBy(func(tpl *model.MessageTemplate) bool {
			return !tpl.Enabled
		})).Return(saved, nil)

		result, err := service.Upsert(ctx, model.TemplateUpsertRequest{
			Code:    "READY_SMS",
			Channel: model.ChannelSMS,
			BodyAr:  "جاهز",
			Enabled: fixtures.Ptr(false),
		})
		require.NoError(t, err)
		assert.False(t, result.Enabled)
	})

	t.Run("trims the code", func(t *testing.T) {
		repo := new(MockTemplateRepository)
		service := NewTemplateService(repo)

		saved := &model.MessageTemplate{ID: 6, Code: "READY"}
		repo.On("Upsert", ctx, mock.MatchedBy(func(tpl *model.MessageTemplate) bool {
			return tpl.Code == "READY"
		})).Return(saved, nil)

		_, err := service.Upsert(ctx, model.TemplateUpsertRequest{
			Code:    "  READY  ",
			Channel: model.ChannelWhatsApp,
			BodyAr:  "جاهز",
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
