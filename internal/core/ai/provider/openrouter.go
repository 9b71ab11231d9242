package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"foodprint/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultOpenRouterBaseURL OpenRouter API 位址
const DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider 以 OpenAI 相容格式呼叫 OpenRouter
type OpenRouterProvider struct {
	client    *resty.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
}

// NewOpenRouterProvider 創建 OpenRouter 提供者
func NewOpenRouterProvider(cfg Config) *OpenRouterProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultOpenRouterBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("HTTP-Referer", "https://foodprint.local").
		SetHeader("X-Title", "Foodprint")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &OpenRouterProvider{
		client:    client,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
	}
}

// Generate 生成回應
func (p *OpenRouterProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	parts := []contentPart{{Type: "text", Text: req.Prompt}}
	if req.Image != nil {
		parts = append(parts, contentPart{
			Type:     "image_url",
			ImageURL: &imageURL{URL: req.Image.DataURI()},
		})
	}

	body := chatRequest{
		Model:       p.model,
		Messages:    []chatMessage{{Role: "user", Content: parts}},
		MaxTokens:   p.maxTokens,
		Temperature: req.Temperature,
	}
	if req.MaxTokens > 0 {
		body.MaxTokens = req.MaxTokens
	}
	if req.JSONOutput {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	common.LogDebug("Sending request to OpenRouter",
		zap.String("model", p.model),
		zap.Bool("has_image", req.Image != nil),
	)

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("OpenRouter API returned error (status %d): %s", resp.StatusCode(), sanitizeBody(resp.String()))
	}

	var result chatResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}

	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no choices in OpenRouter response")
	}

	return &Response{
		Content: result.Choices[0].Message.Content,
		Usage:   result.Usage,
	}, nil
}

// sanitizeBody 移除錯誤訊息中可能回傳的圖片資料
func sanitizeBody(body string) string {
	if strings.Contains(body, "data:image/") || strings.Contains(body, "base64") {
		return "[IMAGE_DATA_REMOVED]"
	}
	if len(body) > 512 {
		return body[:512] + "..."
	}
	return body
}

// Name 提供者名稱
func (p *OpenRouterProvider) Name() string { return "openrouter" }

// GetModel 模型名稱
func (p *OpenRouterProvider) GetModel() string { return p.model }

// GetTimeout 請求超時
func (p *OpenRouterProvider) GetTimeout() time.Duration { return p.timeout }

// Close 關閉閒置連線
func (p *OpenRouterProvider) Close() error {
	p.client.GetClient().CloseIdleConnections()
	return nil
}
