package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"foodprint/internal/api/handlers"
	"foodprint/internal/core/emission"
	"foodprint/internal/core/estimate"
	"foodprint/internal/pkg/common"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 工具名稱
const (
	ToolEstimateDish  = "estimate_dish_carbon"
	ToolResolveFactor = "resolve_emission_factor"
)

// DishEstimator 依菜名估算碳排
type DishEstimator interface {
	EstimateDish(ctx context.Context, dish string, servings float64) (*estimate.Result, error)
}

// EstimateParams estimate_dish_carbon 參數
type EstimateParams struct {
	Dish     string      `json:"dish" description:"Dish name, e.g. chicken biryani"`
	Servings interface{} `json:"servings,omitempty" description:"Number of servings (1-25)"`
}

// ResolveParams resolve_emission_factor 參數
type ResolveParams struct {
	Name string `json:"name" description:"Ingredient name"`
}

// Handler MCP 工具呼叫端點
type Handler struct {
	svc   DishEstimator
	debug bool
}

// NewHandler 創建 MCP 處理器
func NewHandler(svc DishEstimator, debug bool) *Handler {
	return &Handler{svc: svc, debug: debug}
}

// Handle 處理 POST /mcp
func (h *Handler) Handle(c *gin.Context) {
	var req protocol.CallToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.RespondError(c, common.ErrInvalidRequest.Wrap(err), h.debug)
		return
	}

	common.LogInfo("MCP 工具呼叫", zap.String("tool", req.Name))

	var (
		result *protocol.CallToolResult
		err    error
	)
	switch req.Name {
	case ToolEstimateDish:
		result, err = h.estimateDish(c.Request.Context(), &req)
	case ToolResolveFactor:
		result, err = h.resolveFactor(&req)
	default:
		err = common.ErrUnknownTool.Wrap(fmt.Errorf("unknown tool: %s", req.Name))
	}
	if err != nil {
		handlers.RespondError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) estimateDish(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params EstimateParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	res, err := h.svc.EstimateDish(ctx, params.Dish, emission.ParseServings(params.Servings))
	if err != nil {
		return nil, err
	}
	return jsonResult(res)
}

func (h *Handler) resolveFactor(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ResolveParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	return jsonResult(emission.Resolve(params.Name))
}

// extractParams 將 Arguments 轉為參數結構，不接受未宣告的參數
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	data, err := json.Marshal(req.Arguments)
	if err != nil {
		return common.ErrInvalidRequest.Wrap(fmt.Errorf("failed to marshal arguments: %w", err))
	}
	if err := common.ParseJSONStrict(string(data), target); err != nil {
		return common.ErrInvalidRequest.Wrap(fmt.Errorf("invalid parameters: %w", err))
	}
	return nil
}

func jsonResult(data interface{}) (*protocol.CallToolResult, error) {
	text, err := common.ToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}, nil
}
