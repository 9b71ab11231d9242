package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"foodprint/internal/core/ai"
	"foodprint/internal/core/ai/cache"
	"foodprint/internal/core/ai/image"
	"foodprint/internal/core/ai/provider"
	"foodprint/internal/core/ai/queue"
	"foodprint/internal/pkg/common"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Options AI 服務選項
type Options struct {
	Cache             cache.Cache // nil 表示不快取
	RequestsPerSecond float64     // 0 表示不限速
	Burst             int
	Workers           int
	MaxQueueSize      int
	Timeout           time.Duration
}

// Status 服務狀態
type Status struct {
	Provider string       `json:"provider"`
	Model    string       `json:"model"`
	Queue    queue.Status `json:"queue"`
	Cache    *cache.Stats `json:"cache,omitempty"`
}

// Service AI 服務：限速、快取與隊列都在這一層
type Service struct {
	provider provider.Provider
	queue    *queue.Manager
	cache    cache.Cache
	limiter  *rate.Limiter
	timeout  time.Duration
}

// NewService 創建 AI 服務
func NewService(p provider.Provider, opts Options) *Service {
	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return &Service{
		provider: p,
		queue:    queue.NewManager(p, opts.Workers, opts.MaxQueueSize),
		cache:    opts.Cache,
		limiter:  limiter,
		timeout:  opts.Timeout,
	}
}

// Infer 送出 prompt 與可選圖片，回傳模型輸出的原始文字
func (s *Service) Infer(ctx context.Context, prompt string, img *image.Payload) (string, error) {
	resp, err := s.Generate(ctx, prompt, img)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// Generate 統一對外方法
func (s *Service) Generate(ctx context.Context, prompt string, img *image.Payload) (*ai.Response, error) {
	prompt = strings.TrimSpace(prompt)
	key := cache.Key(prompt, img.Hash())

	if s.cache != nil {
		if resp, err := s.cache.Get(ctx, key); err == nil {
			return resp, nil
		} else if !errors.Is(err, common.ErrCacheMiss) {
			common.LogWarn("快取讀取失敗", zap.Error(err))
		}
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, common.ErrAIServiceError.Wrap(fmt.Errorf("rate limiter: %w", err))
		}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := s.queue.Submit(ctx, &provider.Request{
		Prompt:     prompt,
		Image:      img,
		JSONOutput: true,
	})
	common.LogAICall(s.provider.Name(), time.Since(start), err)
	if err != nil {
		return nil, common.ErrAIServiceError.Wrap(err)
	}

	resp := &ai.Response{
		Content:  out.Content,
		Provider: s.provider.Name(),
		Model:    s.provider.GetModel(),
		Usage: ai.Usage{
			PromptTokens:     out.Usage.PromptTokens,
			CompletionTokens: out.Usage.CompletionTokens,
			TotalTokens:      out.Usage.TotalTokens,
		},
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, resp); err != nil {
			common.LogWarn("快取寫入失敗", zap.Error(err))
		}
	}

	return resp, nil
}

// Status 回傳提供者、隊列與快取狀態
func (s *Service) Status() Status {
	st := Status{
		Provider: s.provider.Name(),
		Model:    s.provider.GetModel(),
		Queue:    s.queue.Status(),
	}
	if s.cache != nil {
		cs := s.cache.Stats()
		st.Cache = &cs
	}
	return st
}

// Close 關閉隊列、快取與提供者
func (s *Service) Close() error {
	s.queue.Close()
	var errs []error
	if s.cache != nil {
		errs = append(errs, s.cache.Close())
	}
	errs = append(errs, s.provider.Close())
	return errors.Join(errs...)
}
