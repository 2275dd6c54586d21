package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rashedq/repair-ops/internal/model"
)

var ErrTemplateInvalid = errors.New("template code, channel and body are required")

type TemplateService struct {
	repo TemplateRepository
}

func NewTemplateService(repo TemplateRepository) *TemplateService {
	return &TemplateService{
		repo: repo,
	}
}

func (s *TemplateService) List(ctx context.Context) ([]*model.MessageTemplate, error) {
	return s.repo.List(ctx)
}

func (s *TemplateService) Get(ctx context.Context, id int64) (*model.MessageTemplate, error) {
	return s.repo.GetByID(ctx, id)
}

// Upsert creates or replaces a template by code. Enabled defaults to true
// when omitted.
func (s *TemplateService) Upsert(ctx context.Context, req model.TemplateUpsertRequest) (*model.MessageTemplate, error) {
	if strings.TrimSpace(req.Code) == "" || strings.TrimSpace(req.BodyAr) == "" {
		return nil, ErrTemplateInvalid
	}
	if req.Channel != model.ChannelWhatsApp && req.Channel != model.ChannelSMS {
		return nil, ErrTemplateInvalid
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	return s.repo.Upsert(ctx, &model.MessageTemplate{
		Code:    strings.TrimSpace(req.Code),
		Channel: req.Channel,
		TitleAr: req.TitleAr,
		BodyAr:  req.BodyAr,
		Enabled: enabled,
	})
}
