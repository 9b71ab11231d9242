package common

import (
	"fmt"
	"strings"
)

// Ingredient 食材，重量以公斤計，可缺省
type Ingredient struct {
	Name     string   `json:"name"`
	WeightKg *float64 `json:"weight_kg,omitempty"`
}

// Float64 回傳數值指標，方便建立可缺省的重量
func Float64(v float64) *float64 {
	return &v
}

// FormatIngredients 格式化食材列表（用於日誌）
func FormatIngredients(ingredients []Ingredient) string {
	parts := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing.WeightKg != nil {
			parts = append(parts, fmt.Sprintf("%s(%.3fkg)", ing.Name, *ing.WeightKg))
			continue
		}
		parts = append(parts, ing.Name)
	}
	return strings.Join(parts, "、")
}
