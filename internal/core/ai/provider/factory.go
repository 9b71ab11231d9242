package provider

import (
	"context"
	"fmt"

	"foodprint/internal/infrastructure/config"
)

// New 依設定建立對應的提供者
func New(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.AI.Provider {
	case config.ProviderGemini:
		p, err := NewGeminiProvider(ctx, Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.AI.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.ProviderOpenRouter:
		return NewOpenRouterProvider(Config{
			APIKey:    cfg.OpenRouter.APIKey,
			Model:     cfg.OpenRouter.Model,
			MaxTokens: cfg.OpenRouter.MaxTokens,
			BaseURL:   cfg.OpenRouter.BaseURL,
			Timeout:   cfg.AI.Timeout,
		}), nil
	case config.ProviderOffline:
		return NewOfflineProvider(), nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.AI.Provider)
	}
}
