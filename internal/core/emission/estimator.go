package emission

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"foodprint/internal/pkg/common"
)

const (
	// MinServings 份數下限
	MinServings = 1
	// MaxServings 份數上限
	MaxServings = 25
	// DefaultWeightKg 缺少重量時的預設單位重量
	DefaultWeightKg = 0.1
)

// BreakdownItem 單一食材的碳排明細
type BreakdownItem struct {
	Name     string  `json:"name"`
	CarbonKg float64 `json:"carbon_kg"`
}

// Result 碳排估算結果
type Result struct {
	EstimatedCarbonKg float64         `json:"estimated_carbon_kg"`
	Servings          int             `json:"servings"`
	Ingredients       []BreakdownItem `json:"ingredients"`
}

// Estimate 依食材清單與份數計算碳排。
// 每項先四捨五入至小數三位再加總，總和再四捨五入一次。
func Estimate(ingredients []common.Ingredient, servings float64) Result {
	n := ClampServings(servings)

	breakdown := make([]BreakdownItem, 0, len(ingredients))
	total := 0.0
	for _, ing := range ingredients {
		weight := DefaultWeightKg
		if ing.WeightKg != nil && *ing.WeightKg > 0 && !math.IsInf(*ing.WeightKg, 1) {
			weight = *ing.WeightKg
		}
		carbon := Round3(capFinite(ResolveFactor(ing.Name) * weight * float64(n)))
		breakdown = append(breakdown, BreakdownItem{Name: ing.Name, CarbonKg: carbon})
		total = capFinite(total + carbon)
	}

	return Result{
		EstimatedCarbonKg: Round3(total),
		Servings:          n,
		Ingredients:       breakdown,
	}
}

// capFinite 溢位時以 math.MaxFloat64 表示，確保結果可序列化為 JSON
func capFinite(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > math.MaxFloat64 {
		return math.MaxFloat64
	}
	return x
}

// ClampServings 將份數四捨五入後限制在 [1, 25]，非數值視為 1
func ClampServings(servings float64) int {
	if math.IsNaN(servings) {
		return MinServings
	}
	// 0.5 一律進位
	rounded := math.Floor(servings + 0.5)
	if rounded < MinServings {
		return MinServings
	}
	if rounded > MaxServings {
		return MaxServings
	}
	return int(rounded)
}

// ParseServings 將請求中的 servings 欄位轉為數值。
// 缺少、無法解析或為 0 時回傳 1。
func ParseServings(v interface{}) float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return 1
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		parsed, err := strconv.ParseFloat(x.String(), 64)
		if err != nil {
			return 1
		}
		f = parsed
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 1
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 1
		}
		f = parsed
	case bool:
		if x {
			f = 1
		}
	default:
		return 1
	}
	if math.IsNaN(f) || f == 0 {
		return 1
	}
	return f
}

// Round3 四捨五入至小數三位，兩數等距時取較大者。
// 以二進位浮點的精確值計算，避免 x*1000 的誤差。
func Round3(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f := new(big.Float).SetPrec(256).SetFloat64(x)
	f.Mul(f, big.NewFloat(1000))
	f.Add(f, big.NewFloat(0.5))

	n, acc := f.Int(nil)
	if acc == big.Above {
		n.Sub(n, big.NewInt(1))
	}
	out, _ := new(big.Rat).SetFrac(n, big.NewInt(1000)).Float64()
	return out
}
