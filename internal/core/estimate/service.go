package estimate

import (
	"context"
	"strings"

	"foodprint/internal/core/ai/image"
	"foodprint/internal/core/emission"
	"foodprint/internal/core/ingredient"
	"foodprint/internal/pkg/common"

	"go.uber.org/zap"
)

// Result 單次估算的回應內容
type Result struct {
	Dish              string                   `json:"dish"`
	Servings          int                      `json:"servings"`
	EstimatedCarbonKg float64                  `json:"estimated_carbon_kg"`
	Ingredients       []emission.BreakdownItem `json:"ingredients"`
	Equivalents       *emission.Equivalents    `json:"equivalents,omitempty"`
}

// IngredientSource 取得食材清單，失敗時自行回退
type IngredientSource interface {
	FromDish(ctx context.Context, dish string) []common.Ingredient
	FromImage(ctx context.Context, img *image.Payload) (string, []common.Ingredient)
}

// Service 碳排估算服務
type Service struct {
	source IngredientSource
}

// NewService 創建估算服務
func NewService(source IngredientSource) *Service {
	return &Service{source: source}
}

// EstimateDish 依菜名估算碳排，菜名空白時回傳 ErrDishRequired
func (s *Service) EstimateDish(ctx context.Context, dish string, servings float64) (*Result, error) {
	dish = strings.TrimSpace(dish)
	if dish == "" {
		return nil, common.ErrDishRequired
	}

	items := s.source.FromDish(ctx, dish)
	return FromIngredients(dish, items, servings), nil
}

// EstimateImage 依圖片估算碳排
func (s *Service) EstimateImage(ctx context.Context, img *image.Payload, servings float64) (*Result, error) {
	if img == nil || len(img.Data) == 0 {
		return nil, common.ErrImageRequired
	}

	dish, items := s.source.FromImage(ctx, img)
	return FromIngredients(dish, items, servings), nil
}

// FromIngredients 以已知食材直接估算
func FromIngredients(dish string, items []common.Ingredient, servings float64) *Result {
	est := emission.Estimate(items, servings)

	common.LogDebug("碳排估算完成",
		zap.String("dish", dish),
		zap.String("ingredients", common.FormatIngredients(items)),
		zap.Float64("estimated_carbon_kg", est.EstimatedCarbonKg),
	)

	return &Result{
		Dish:              dish,
		Servings:          est.Servings,
		EstimatedCarbonKg: est.EstimatedCarbonKg,
		Ingredients:       est.Ingredients,
		Equivalents:       emission.Equivalence(est.EstimatedCarbonKg),
	}
}

// FromRawList 解析食材 JSON（陣列或 {"ingredients": [...]}），清理後估算
func FromRawList(dish, data string, servings float64) *Result {
	items := ingredient.Normalize(ingredient.ToIngredients(ingredient.ParseIngredientList(data)))
	return FromIngredients(dish, items, servings)
}
