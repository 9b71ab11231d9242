package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"foodprint/internal/pkg/common"
)

// dedupStore 記錄最近的請求指紋
type dedupStore struct {
	mu        sync.Mutex
	requests  map[string]time.Time
	window    time.Duration
	lastSweep time.Time
}

// seen 回傳指紋是否在 window 內出現過，並記錄這次請求
func (s *dedupStore) seen(fingerprint string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > 10*s.window {
		for k, t := range s.requests {
			if now.Sub(t) > s.window {
				delete(s.requests, k)
			}
		}
		s.lastSweep = now
	}

	if last, ok := s.requests[fingerprint]; ok && now.Sub(last) <= s.window {
		return true
	}
	s.requests[fingerprint] = now
	return false
}

// Deduplication 請求去重中間件，相同路徑與內容的 POST 在 window 內只處理一次
func Deduplication(window time.Duration) gin.HandlerFunc {
	if window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	store := &dedupStore{
		requests:  make(map[string]time.Time),
		window:    window,
		lastSweep: time.Now(),
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogWarn("Failed to read request body", zap.Error(err))
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, common.ErrorResponse{
						Code:    common.ErrCodeTooLarge,
						Message: "Request body too large",
					})
					return
				}
				c.AbortWithStatusJSON(http.StatusBadRequest, common.ErrorResponse{
					Code:    common.ErrCodeInvalidRequest,
					Message: "Failed to read request body",
				})
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			fingerprint += ":" + common.HashBytes(body)
		}

		if store.seen(fingerprint, time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.ErrorResponse{
				Code:    common.ErrCodeTooManyRequests,
				Message: "Request too frequent",
			})
			return
		}

		c.Next()
	}
}
