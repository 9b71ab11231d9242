package factor

import (
	"net/http"

	"foodprint/internal/api/handlers"
	"foodprint/internal/core/emission"
	"foodprint/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// ListResponse 係數表回應
type ListResponse struct {
	Count   int               `json:"count"`
	Default float64           `json:"default_factor"`
	Factors []emission.Factor `json:"factors"`
}

// HandleList 處理 GET /api/factors
func HandleList(c *gin.Context) {
	factors := emission.Factors()
	c.JSON(http.StatusOK, ListResponse{
		Count:   len(factors),
		Default: emission.DefaultFactor,
		Factors: factors,
	})
}

// HandleResolve 處理 GET /api/factors/resolve?name=，說明名稱如何對應到係數
func HandleResolve(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, ok := c.GetQuery("name")
		if !ok {
			handlers.RespondError(c, common.NewError(common.ErrCodeInvalidRequest, "Query parameter `name` is required", http.StatusBadRequest, nil), debug)
			return
		}
		c.JSON(http.StatusOK, emission.Resolve(name))
	}
}
