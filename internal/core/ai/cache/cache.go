package cache

import (
	"context"
	"fmt"

	"foodprint/internal/core/ai"
	"foodprint/internal/infrastructure/config"
	"foodprint/internal/pkg/common"
)

// Cache 模型回應快取，未命中時回傳 common.ErrCacheMiss
type Cache interface {
	Get(ctx context.Context, key string) (*ai.Response, error)
	Set(ctx context.Context, key string, resp *ai.Response) error
	Stats() Stats
	Close() error
}

// Stats 快取統計
type Stats struct {
	Backend   string `json:"backend"`
	Size      int    `json:"size"`
	MaxSize   int    `json:"max_size"`
	Hits      int64  `json:"hits"`
	Misses    int64  `json:"misses"`
	Evictions int64  `json:"evictions"`
}

// Key 生成緩存鍵，圖片以內容雜湊區分
func Key(prompt, imageHash string) string {
	if imageHash == "" {
		return fmt.Sprintf("text:%s", common.HashString(prompt))
	}
	return fmt.Sprintf("multimodal:%s:%s", common.HashString(prompt), imageHash)
}

// New 依設定建立快取，停用時回傳 nil
func New(cfg *config.CacheConfig) (Cache, error) {
	if !cfg.Enabled {
		common.LogInfo("Cache disabled")
		return nil, nil
	}
	switch cfg.Backend {
	case config.CacheBackendRedis:
		s, err := NewService(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		m, err := NewManager(cfg)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}
