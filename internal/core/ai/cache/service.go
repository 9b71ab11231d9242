package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"foodprint/internal/core/ai"
	"foodprint/internal/infrastructure/config"
	"foodprint/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// keyPrefix Redis 鍵前綴
const keyPrefix = "foodprint:ai:"

// Service Redis 快取，多個實例可共用
type Service struct {
	client  *redis.Client
	ttl     time.Duration
	maxSize int

	hits   atomic.Int64
	misses atomic.Int64
}

// NewService 創建緩存服務並測試連線
func NewService(cfg *config.CacheConfig) (*Service, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewServiceWithClient(client, cfg.TTL, cfg.MaxSize), nil
}

// NewServiceWithClient 以既有連線建立緩存服務
func NewServiceWithClient(client *redis.Client, ttl time.Duration, maxSize int) *Service {
	return &Service{client: client, ttl: ttl, maxSize: maxSize}
}

// Get 獲取緩存
func (s *Service) Get(ctx context.Context, key string) (*ai.Response, error) {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		s.misses.Add(1)
		if errors.Is(err, redis.Nil) {
			common.LogCacheMiss("redis", key)
			return nil, common.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var resp ai.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		s.misses.Add(1)
		return nil, fmt.Errorf("failed to unmarshal cache: %w", err)
	}

	s.hits.Add(1)
	common.LogCacheHit("redis", key)
	resp.CacheHit = true
	return &resp, nil
}

// Set 設置緩存
func (s *Service) Set(ctx context.Context, key string, resp *ai.Response) error {
	if resp == nil {
		return nil
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

// Stats 快取統計，大小由 Redis 管理不另外計算
func (s *Service) Stats() Stats {
	return Stats{
		Backend: config.CacheBackendRedis,
		MaxSize: s.maxSize,
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
	}
}

// Close 關閉連線
func (s *Service) Close() error {
	return s.client.Close()
}
