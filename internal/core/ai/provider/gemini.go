package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	genai "google.golang.org/genai"
)

// GeminiProvider 透過官方 genai SDK 呼叫 Gemini
type GeminiProvider struct {
	cli     *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiProvider 創建 Gemini 提供者
func NewGeminiProvider(ctx context.Context, cfg Config) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrUnavailable)
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiProvider{cli: cli, model: cfg.Model, timeout: cfg.Timeout}, nil
}

// Generate 送出文字與可選的圖片，回傳模型輸出的文字
func (g *GeminiProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	parts := []*genai.Part{{Text: req.Prompt}}
	if req.Image != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{Data: req.Image.Data, MIMEType: req.Image.MIMEType},
		})
	}

	var genCfg *genai.GenerateContentConfig
	if req.JSONOutput {
		genCfg = &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: parts}},
		genCfg,
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: empty candidates")
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			sb.WriteString(p.Text)
		}
	}

	out := &Response{Content: sb.String()}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = Usage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	return out, nil
}

// Name 提供者名稱
func (g *GeminiProvider) Name() string { return "gemini" }

// GetModel 模型名稱
func (g *GeminiProvider) GetModel() string { return g.model }

// GetTimeout 請求超時
func (g *GeminiProvider) GetTimeout() time.Duration { return g.timeout }

// Close genai client 無需釋放資源
func (g *GeminiProvider) Close() error { return nil }
