package provider

import (
	"context"
	"time"
)

// OfflineProvider 未設定任何金鑰時使用，每次呼叫都失敗，由上層改用預設食材
type OfflineProvider struct{}

// NewOfflineProvider 創建離線提供者
func NewOfflineProvider() *OfflineProvider {
	return &OfflineProvider{}
}

// Generate 永遠回傳 ErrUnavailable
func (OfflineProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	return nil, ErrUnavailable
}

func (OfflineProvider) Name() string              { return "offline" }
func (OfflineProvider) GetModel() string          { return "" }
func (OfflineProvider) GetTimeout() time.Duration { return 0 }
func (OfflineProvider) Close() error              { return nil }
