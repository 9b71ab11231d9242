package ingredient

import (
	"bytes"
	"encoding/json"
	"math"

	"foodprint/internal/pkg/common"
)

// UnknownDish 模型未回傳菜名時使用
const UnknownDish = "Unknown Dish"

// RawIngredient 模型回傳的單一食材，欄位名稱與型別都不固定
type RawIngredient struct {
	Name       string
	Ingredient string
	WeightKg   *float64
	WeightG    *float64
}

// UnmarshalJSON 只接受字串名稱與數值重量，其他型別視為缺少
func (r *RawIngredient) UnmarshalJSON(data []byte) error {
	*r = RawIngredient{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// 非物件項目當作空白食材
		return nil
	}

	r.Name = stringField(fields["name"])
	r.Ingredient = stringField(fields["ingredient"])
	r.WeightKg = numberField(fields["weight_kg"])
	r.WeightG = numberField(fields["weight_g"])
	return nil
}

// ToIngredient 取名稱並換算重量為公斤
func (r RawIngredient) ToIngredient() common.Ingredient {
	name := r.Name
	if name == "" {
		name = r.Ingredient
	}

	var weight *float64
	switch {
	case r.WeightKg != nil:
		weight = common.Float64(*r.WeightKg)
	case r.WeightG != nil:
		weight = common.Float64(*r.WeightG / 1000)
	}

	return common.Ingredient{Name: name, WeightKg: weight}
}

// ToIngredients 批次轉換
func ToIngredients(raw []RawIngredient) []common.Ingredient {
	out := make([]common.Ingredient, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.ToIngredient())
	}
	return out
}

func stringField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func numberField(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	return &f
}

// listEnvelope 物件形式的回應
type listEnvelope struct {
	Dish        json.RawMessage `json:"dish"`
	DishName    json.RawMessage `json:"dishName"`
	Ingredients json.RawMessage `json:"ingredients"`
}

// decodeResponse 去除 code fence 後解析，失敗時回傳 nil
func decodeResponse(text string) json.RawMessage {
	var raw json.RawMessage
	if err := common.ParseJSON(common.StripCodeFence(text), &raw); err != nil {
		return nil
	}
	return raw
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func decodeList(raw json.RawMessage) []RawIngredient {
	if !isArray(raw) {
		return nil
	}
	var items []RawIngredient
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// ParseIngredientList 解析菜名或擴充回應：頂層陣列或 {"ingredients": [...]}，失敗時回傳空清單
func ParseIngredientList(text string) []RawIngredient {
	raw := decodeResponse(text)
	switch {
	case isArray(raw):
		return decodeList(raw)
	case isObject(raw):
		var env listEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil
		}
		return decodeList(env.Ingredients)
	default:
		return nil
	}
}

// ParseImageResponse 解析圖片辨識回應 {"dish": ..., "ingredients": [...]}
func ParseImageResponse(text string) (string, []RawIngredient) {
	raw := decodeResponse(text)
	if !isObject(raw) {
		return UnknownDish, nil
	}

	var env listEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return UnknownDish, nil
	}

	dish := stringField(env.Dish)
	if dish == "" {
		dish = stringField(env.DishName)
	}
	if dish == "" {
		dish = UnknownDish
	}
	return dish, decodeList(env.Ingredients)
}

// seedItem 擴充請求的種子格式
type seedItem struct {
	Ingredient string  `json:"ingredient"`
	WeightG    float64 `json:"weight_g"`
}

// BuildSeed 將目前清單轉為公克表示的 JSON，缺少重量時以 0.1 公斤計
func BuildSeed(items []common.Ingredient) string {
	seed := make([]seedItem, 0, len(items))
	for _, item := range items {
		kg := 0.1
		if item.WeightKg != nil {
			kg = *item.WeightKg
		}
		seed = append(seed, seedItem{
			Ingredient: item.Name,
			WeightG:    math.Max(-math.MaxFloat64, math.Min(math.MaxFloat64, math.Floor(kg*1000+0.5))),
		})
	}
	out, err := common.ToJSON(seed)
	if err != nil {
		return "[]"
	}
	return out
}
