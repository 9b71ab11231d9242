package ingredient

import "foodprint/internal/pkg/common"

// FallbackDish 圖片辨識失敗時的菜名
const FallbackDish = "Meal"

// Fallback 推論失敗時使用的基本食材清單
func Fallback() []common.Ingredient {
	return []common.Ingredient{
		{Name: "rice", WeightKg: common.Float64(0.2)},
		{Name: "vegetables", WeightKg: common.Float64(0.15)},
		{Name: "oil", WeightKg: common.Float64(0.02)},
		{Name: "salt", WeightKg: common.Float64(0.005)},
		{Name: "spices", WeightKg: common.Float64(0.01)},
	}
}
