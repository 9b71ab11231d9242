package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodprint/internal/core/ai/image"
	"foodprint/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRouterGenerate(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "[{\"ingredient\":\"rice\",\"weight_g\":200}]"}}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 8, "total_tokens": 20}
		}`))
	}))
	defer srv.Close()

	p := NewOpenRouterProvider(Config{APIKey: "test-key", Model: "test/model", MaxTokens: 256, BaseURL: srv.URL, Timeout: 5 * time.Second})
	defer p.Close()

	resp, err := p.Generate(context.Background(), &Request{
		Prompt:     "list ingredients",
		Image:      &image.Payload{Data: []byte{1, 2, 3}, MIMEType: "image/jpeg"},
		JSONOutput: true,
	})
	require.NoError(t, err)
	assert.Equal(t, `[{"ingredient":"rice","weight_g":200}]`, resp.Content)
	assert.Equal(t, 20, resp.Usage.TotalTokens)

	assert.Equal(t, "test/model", got.Model)
	assert.Equal(t, 256, got.MaxTokens)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
	require.Len(t, got.Messages, 1)
	require.Len(t, got.Messages[0].Content, 2)
	assert.Equal(t, "list ingredients", got.Messages[0].Content[0].Text)
	require.NotNil(t, got.Messages[0].Content[1].ImageURL)
	assert.Equal(t, "data:image/jpeg;base64,AQID", got.Messages[0].Content[1].ImageURL.URL)

	assert.Equal(t, "openrouter", p.Name())
	assert.Equal(t, "test/model", p.GetModel())
	assert.Equal(t, 5*time.Second, p.GetTimeout())
}

func TestOpenRouterErrors(t *testing.T) {
	t.Run("非 200 狀態", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limited"}`))
		}))
		defer srv.Close()

		p := NewOpenRouterProvider(Config{APIKey: "k", BaseURL: srv.URL})
		_, err := p.Generate(context.Background(), &Request{Prompt: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
		assert.Contains(t, err.Error(), "rate limited")
	})

	t.Run("沒有 choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		p := NewOpenRouterProvider(Config{APIKey: "k", BaseURL: srv.URL})
		_, err := p.Generate(context.Background(), &Request{Prompt: "x"})
		assert.Error(t, err)
	})
}

func TestSanitizeBody(t *testing.T) {
	assert.Equal(t, "[IMAGE_DATA_REMOVED]", sanitizeBody(`{"echo":"data:image/png;base64,AAAA"}`))
	assert.Equal(t, "plain", sanitizeBody("plain"))

	long := make([]byte, 600)
	for i := range long {
		long[i] = 'a'
	}
	assert.Len(t, sanitizeBody(string(long)), 515)
}

func TestOffline(t *testing.T) {
	p := NewOfflineProvider()
	_, err := p.Generate(context.Background(), &Request{Prompt: "x"})
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, "offline", p.Name())
	assert.NoError(t, p.Close())
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}

	cfg.AI.Provider = config.ProviderOffline
	p, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "offline", p.Name())

	cfg.AI.Provider = config.ProviderOpenRouter
	cfg.OpenRouter.APIKey = "k"
	cfg.OpenRouter.Model = "m"
	p, err = New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "openrouter", p.Name())
	assert.Equal(t, "m", p.GetModel())

	cfg.AI.Provider = config.ProviderGemini
	p, err = New(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, ErrUnavailable))

	cfg.AI.Provider = "bogus"
	_, err = New(context.Background(), cfg)
	assert.Error(t, err)
}
