package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rashedq/repair-ops/internal/model"
	"github.com/rashedq/repair-ops/pkg/logger"
	"github.com/rashedq/repair-ops/pkg/redis"
)

const (
	settingsCacheKey = "settings"
	settingsCacheTTL = 5 * time.Minute
)

type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	Upsert(ctx context.Context, s *model.Settings) (*model.Settings, error)
}

// SettingsService reads the singleton shop settings through a redis cache.
// Settings are consulted on every message compose, so the row is cached with
// a short TTL and invalidated on update. A nil cache disables caching.
type SettingsService struct {
	repo  SettingsRepository
	cache redis.RedisAdapter
}

func NewSettingsService(repo SettingsRepository, cache redis.RedisAdapter) *SettingsService {
	return &SettingsService{
		repo:  repo,
		cache: cache,
	}
}

func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(settingsCacheKey); err == nil {
			var cached model.Settings
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
			// poisoned entry, drop it and fall through
			_ = s.cache.Del(settingsCacheKey)
		}
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(settings); err == nil {
			if err := s.cache.Set(settingsCacheKey, raw, settingsCacheTTL); err != nil {
				logger.Warn("failed to cache settings", "error", err)
			}
		}
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, req model.SettingsUpdateRequest) (*model.Settings, error) {
	vatRate := 0.15
	if req.VatRate != nil {
		vatRate = *req.VatRate
	}

	updated, err := s.repo.Upsert(ctx, &model.Settings{
		ShopName:       req.ShopName,
		ShopPhone:      req.ShopPhone,
		VatRate:        vatRate,
		WhatsappAPIKey: req.WhatsappAPIKey,
		SmsAPIKey:      req.SmsAPIKey,
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Del(settingsCacheKey); err != nil {
			logger.Warn("failed to invalidate settings cache", "error", err)
		}
	}
	return updated, nil
}
