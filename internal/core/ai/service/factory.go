package service

import (
	"context"
	"fmt"

	"foodprint/internal/core/ai/cache"
	"foodprint/internal/core/ai/provider"
	"foodprint/internal/infrastructure/config"
	"foodprint/internal/pkg/common"

	"go.uber.org/zap"
)

// FromConfig 依設定建立提供者與快取並組成 AI 服務
func FromConfig(ctx context.Context, cfg *config.Config) (*Service, error) {
	p, err := provider.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create ai provider: %w", err)
	}

	c, err := cache.New(&cfg.Cache)
	if err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	common.LogInfo("AI 服務已初始化",
		zap.String("provider", p.Name()),
		zap.String("model", p.GetModel()),
		zap.Bool("cache_enabled", c != nil),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Float64("requests_per_second", cfg.AI.RequestsPerSecond),
	)

	return NewService(p, Options{
		Cache:             c,
		RequestsPerSecond: cfg.AI.RequestsPerSecond,
		Burst:             cfg.AI.Burst,
		Workers:           cfg.Queue.Workers,
		MaxQueueSize:      cfg.Queue.MaxSize,
		Timeout:           cfg.AI.Timeout,
	}), nil
}
