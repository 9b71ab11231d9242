package handlers

import (
	"net/http"

	"foodprint/internal/core/ai/service"

	"github.com/gin-gonic/gin"
)

// StatusReporter 回報推論服務狀態
type StatusReporter interface {
	Status() service.Status
}

// AIHandler AI 處理器
type AIHandler struct {
	aiService StatusReporter
}

// NewAIHandler 創建 AI 處理器
func NewAIHandler(aiService StatusReporter) *AIHandler {
	return &AIHandler{
		aiService: aiService,
	}
}

// Status 回傳目前的提供者、隊列與快取狀態
func (h *AIHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.aiService.Status())
}
