package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"foodprint/internal/core/ai/provider"
	"foodprint/internal/pkg/common"

	"go.uber.org/zap"
)

var (
	// ErrQueueFull 隊列已滿
	ErrQueueFull = errors.New("queue is full")
	// ErrQueueClosed 隊列已關閉
	ErrQueueClosed = errors.New("queue manager is closed")
)

// job 隊列請求
type job struct {
	ctx    context.Context
	req    *provider.Request
	result chan result
}

// result 處理結果
type result struct {
	resp *provider.Response
	err  error
}

// Status 隊列狀態
type Status struct {
	QueueLength    int   `json:"queue_length"`
	ProcessedCount int64 `json:"processed_count"`
	MaxQueueSize   int   `json:"max_queue_size"`
	Workers        int   `json:"workers"`
}

// Manager 限制同時送往模型的請求數
type Manager struct {
	provider  provider.Provider
	queue     chan *job
	done      chan struct{}
	workers   int
	maxSize   int
	processed atomic.Int64
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewManager 創建隊列管理器並啟動 worker
func NewManager(p provider.Provider, workers, maxSize int) *Manager {
	if workers <= 0 {
		workers = 1
	}
	if maxSize <= 0 {
		maxSize = workers
	}
	m := &Manager{
		provider: p,
		queue:    make(chan *job, maxSize),
		done:     make(chan struct{}),
		workers:  workers,
		maxSize:  maxSize,
	}
	for i := 0; i < workers; i++ {
		m.wg.Add(1)
		go m.worker()
	}
	return m
}

func (m *Manager) worker() {
	defer m.wg.Done()
	for {
		select {
		case j := <-m.queue:
			m.handle(j)
		case <-m.done:
			return
		}
	}
}

func (m *Manager) handle(j *job) {
	defer m.processed.Add(1)
	if err := j.ctx.Err(); err != nil {
		j.result <- result{err: err}
		return
	}
	resp, err := m.provider.Generate(j.ctx, j.req)
	j.result <- result{resp: resp, err: err}
}

// Submit 將請求加入隊列並等待結果
func (m *Manager) Submit(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	j := &job{ctx: ctx, req: req, result: make(chan result, 1)}

	select {
	case <-m.done:
		return nil, ErrQueueClosed
	default:
	}

	select {
	case m.queue <- j:
	default:
		common.LogWarn("推論隊列已滿", zap.Int("max_queue_size", m.maxSize))
		return nil, ErrQueueFull
	}

	select {
	case r := <-j.result:
		return r.resp, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-m.done:
		return nil, ErrQueueClosed
	}
}

// Status 獲取隊列狀態
func (m *Manager) Status() Status {
	return Status{
		QueueLength:    len(m.queue),
		ProcessedCount: m.processed.Load(),
		MaxQueueSize:   m.maxSize,
		Workers:        m.workers,
	}
}

// Close 停止所有 worker
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
	})
	m.wg.Wait()
}
