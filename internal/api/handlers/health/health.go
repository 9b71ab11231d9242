package health

import (
	"net/http"
	"runtime"
	"time"

	"foodprint/internal/api/handlers"
	"foodprint/internal/core/ai/service"
	"foodprint/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	AI        *service.Status        `json:"ai,omitempty"`
}

// Handler 健康檢查處理器
type Handler struct {
	version string
	ai      handlers.StatusReporter
}

// NewHandler 創建健康檢查處理器，ai 可為 nil
func NewHandler(version string, ai handlers.StatusReporter) *Handler {
	return &Handler{version: version, ai: ai}
}

// HealthCheck 健康檢查處理器
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}
	if h.ai != nil {
		st := h.ai.Status()
		response.AI = &st
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器，離線模式仍可回傳預設估算
func (h *Handler) ReadinessCheck(c *gin.Context) {
	resp := gin.H{"status": "ready"}
	if h.ai != nil {
		resp["provider"] = h.ai.Status().Provider
	}
	c.JSON(http.StatusOK, resp)
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
