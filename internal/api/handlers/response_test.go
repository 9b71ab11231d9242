package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodprint/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		debug   bool
		status  int
		code    string
		details string
	}{
		{name: "業務錯誤", err: common.ErrDishRequired, status: http.StatusBadRequest, code: "DISH_REQUIRED"},
		{name: "包裝錯誤附細節", err: common.ErrAIServiceError.Wrap(errors.New("upstream down")), debug: true, status: http.StatusServiceUnavailable, code: "AI_SERVICE_ERROR", details: "upstream down"},
		{name: "正式環境隱藏細節", err: common.ErrAIServiceError.Wrap(errors.New("upstream down")), status: http.StatusServiceUnavailable, code: "AI_SERVICE_ERROR"},
		{name: "未知錯誤", err: errors.New("boom"), status: http.StatusInternalServerError, code: common.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondError(c, tt.err, tt.debug)

			assert.Equal(t, tt.status, w.Code)
			var resp common.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.details, resp.Details)
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Request-ID", "from-client")
	assert.Equal(t, "from-client", RequestID(c))

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	id := RequestID(c)
	assert.Len(t, id, 36)
	assert.Equal(t, id, RequestID(c))
}
