package handlers

import (
	"github.com/gin-gonic/gin"

	"foodprint/internal/pkg/common"
)

// RespondError 將錯誤轉為統一的 JSON 錯誤回應，debug 時附上原始錯誤
func RespondError(c *gin.Context, err error, debug bool) {
	ce := common.AsCustomError(err)
	resp := common.ErrorResponse{
		Code:    ce.Code,
		Message: ce.Message,
	}
	if debug && ce.Err != nil {
		resp.Details = ce.Err.Error()
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(ce.Status, resp)
}

// RequestID 取得請求 ID，沒有時產生一個並寫回回應標頭
func RequestID(c *gin.Context) string {
	if id := c.Writer.Header().Get("X-Request-ID"); id != "" {
		return id
	}
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	id := common.GenerateUUID()
	c.Header("X-Request-ID", id)
	return id
}
