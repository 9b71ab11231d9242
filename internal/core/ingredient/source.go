package ingredient

import (
	"context"
	"fmt"

	"foodprint/internal/core/ai/image"
	"foodprint/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	// TargetCount 清單少於此數量時請模型補充
	TargetCount = 18
	// ExpandAttempts 補充請求的固定次數上限
	ExpandAttempts = 2
)

// Inferrer 外部推論能力，回傳模型的原始文字
type Inferrer interface {
	Infer(ctx context.Context, prompt string, img *image.Payload) (string, error)
}

// Source 透過模型取得食材清單，失敗時改用預設清單
type Source struct {
	inferrer Inferrer
}

// NewSource 創建食材來源
func NewSource(inferrer Inferrer) *Source {
	return &Source{inferrer: inferrer}
}

// FromDish 依菜名推論食材，不會回傳錯誤
func (s *Source) FromDish(ctx context.Context, dish string) []common.Ingredient {
	items, err := s.fromDish(ctx, dish)
	if err != nil {
		common.LogWarn("菜名推論失敗，改用預設食材", zap.String("dish", dish), zap.Error(err))
		return Fallback()
	}
	if len(items) == 0 {
		common.LogWarn("菜名推論無結果，改用預設食材", zap.String("dish", dish))
		return Fallback()
	}
	common.LogInfo("食材推論完成",
		zap.String("dish", dish),
		zap.Int("count", len(items)),
	)
	return items
}

func (s *Source) fromDish(ctx context.Context, dish string) ([]common.Ingredient, error) {
	text, err := s.inferrer.Infer(ctx, dishPrompt(dish), nil)
	if err != nil {
		return nil, err
	}

	items := Normalize(ToIngredients(ParseIngredientList(text)))
	common.LogDebug("初始食材", zap.Int("count", len(items)))

	return s.expandAll(ctx, dish, items)
}

// FromImage 依圖片辨識菜名與食材，失敗時菜名為 Meal
func (s *Source) FromImage(ctx context.Context, img *image.Payload) (string, []common.Ingredient) {
	dish, items, err := s.fromImage(ctx, img)
	if err != nil {
		common.LogWarn("圖片推論失敗，改用預設食材", zap.Error(err))
		return FallbackDish, Fallback()
	}
	if len(items) == 0 {
		common.LogWarn("圖片推論無結果，改用預設食材", zap.String("dish", dish))
		return FallbackDish, Fallback()
	}
	common.LogInfo("圖片食材推論完成",
		zap.String("dish", dish),
		zap.Int("count", len(items)),
	)
	return dish, items
}

func (s *Source) fromImage(ctx context.Context, img *image.Payload) (string, []common.Ingredient, error) {
	if img == nil {
		return "", nil, fmt.Errorf("image payload is nil")
	}

	text, err := s.inferrer.Infer(ctx, imagePrompt, img)
	if err != nil {
		return "", nil, err
	}

	dish, raw := ParseImageResponse(text)
	items, err := s.expandAll(ctx, dish, Normalize(ToIngredients(raw)))
	if err != nil {
		return "", nil, err
	}
	return dish, items, nil
}

// expandAll 固定嘗試 ExpandAttempts 次，每次只在清單不足時呼叫模型
func (s *Source) expandAll(ctx context.Context, dish string, items []common.Ingredient) ([]common.Ingredient, error) {
	var err error
	for i := 0; i < ExpandAttempts; i++ {
		items, err = s.expand(ctx, dish, items)
		if err != nil {
			return nil, fmt.Errorf("expand attempt %d: %w", i+1, err)
		}
	}
	return items, nil
}

func (s *Source) expand(ctx context.Context, dish string, current []common.Ingredient) ([]common.Ingredient, error) {
	if len(current) >= TargetCount {
		return current, nil
	}

	common.LogDebug("補充食材", zap.Int("count", len(current)), zap.Int("target", TargetCount))

	text, err := s.inferrer.Infer(ctx, expandPrompt(dish, BuildSeed(current)), nil)
	if err != nil {
		return nil, err
	}

	merged := append(append([]common.Ingredient{}, current...), ToIngredients(ParseIngredientList(text))...)
	return Normalize(merged), nil
}
