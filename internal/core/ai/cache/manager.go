package cache

import (
	"context"
	"sync/atomic"
	"time"

	"foodprint/internal/core/ai"
	"foodprint/internal/infrastructure/config"
	"foodprint/internal/pkg/common"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Manager 以 LRU 實作的記憶體快取
type Manager struct {
	store   *lru.Cache[string, cacheEntry]
	ttl     time.Duration
	maxSize int
	now     func() time.Time

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// cacheEntry 緩存條目
type cacheEntry struct {
	resp      ai.Response
	expiresAt time.Time
}

// NewManager 創建新的緩存管理器
func NewManager(cfg *config.CacheConfig) (*Manager, error) {
	m := &Manager{
		ttl:     cfg.TTL,
		maxSize: cfg.MaxSize,
		now:     time.Now,
	}

	store, err := lru.NewWithEvict[string, cacheEntry](cfg.MaxSize, func(string, cacheEntry) {
		m.evictions.Add(1)
	})
	if err != nil {
		return nil, err
	}
	m.store = store

	common.LogInfo("快取管理員已初始化",
		zap.Int("最大容量", cfg.MaxSize),
		zap.Duration("存活時間", cfg.TTL),
	)

	return m, nil
}

// Get 獲取緩存值
func (m *Manager) Get(ctx context.Context, key string) (*ai.Response, error) {
	entry, ok := m.store.Get(key)
	if !ok {
		m.misses.Add(1)
		common.LogCacheMiss("memory", key)
		return nil, common.ErrCacheMiss
	}

	if m.ttl > 0 && m.now().After(entry.expiresAt) {
		m.store.Remove(key)
		m.misses.Add(1)
		common.LogCacheMiss("memory", key)
		return nil, common.ErrCacheMiss
	}

	m.hits.Add(1)
	common.LogCacheHit("memory", key)

	resp := entry.resp
	resp.CacheHit = true
	return &resp, nil
}

// Set 設置緩存值
func (m *Manager) Set(ctx context.Context, key string, resp *ai.Response) error {
	if resp == nil {
		return nil
	}
	m.store.Add(key, cacheEntry{
		resp:      *resp,
		expiresAt: m.now().Add(m.ttl),
	})
	return nil
}

// Stats 獲取緩存統計信息
func (m *Manager) Stats() Stats {
	return Stats{
		Backend:   config.CacheBackendMemory,
		Size:      m.store.Len(),
		MaxSize:   m.maxSize,
		Hits:      m.hits.Load(),
		Misses:    m.misses.Load(),
		Evictions: m.evictions.Load(),
	}
}

// Close 關閉緩存管理器
func (m *Manager) Close() error {
	m.store.Purge()
	common.LogInfo("快取管理員已關閉",
		zap.Int64("命中次數", m.hits.Load()),
		zap.Int64("未命中次數", m.misses.Load()),
	)
	return nil
}
