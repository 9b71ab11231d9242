package emission

import (
	"encoding/json"
	"math"
	"testing"

	"foodprint/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	t.Run("單一食材", func(t *testing.T) {
		r := Estimate([]common.Ingredient{{Name: "rice", WeightKg: common.Float64(0.2)}}, 1)
		assert.Equal(t, 1, r.Servings)
		assert.Equal(t, 0.54, r.EstimatedCarbonKg)
		require.Len(t, r.Ingredients, 1)
		assert.Equal(t, BreakdownItem{Name: "rice", CarbonKg: 0.54}, r.Ingredients[0])
	})

	t.Run("份數相乘", func(t *testing.T) {
		r := Estimate([]common.Ingredient{{Name: "beef", WeightKg: common.Float64(0.1)}}, 2)
		assert.Equal(t, 2, r.Servings)
		assert.Equal(t, 19.896, r.EstimatedCarbonKg)
	})

	t.Run("缺少重量使用預設值", func(t *testing.T) {
		r := Estimate([]common.Ingredient{{Name: "salt"}}, 1)
		assert.Equal(t, 0.022, r.EstimatedCarbonKg)
	})

	t.Run("重量為零使用預設值", func(t *testing.T) {
		r := Estimate([]common.Ingredient{{Name: "salt", WeightKg: common.Float64(0)}}, 1)
		assert.Equal(t, 0.022, r.EstimatedCarbonKg)
	})

	t.Run("逐項四捨五入後加總", func(t *testing.T) {
		r := Estimate([]common.Ingredient{
			{Name: "rice", WeightKg: common.Float64(0.2)},
			{Name: "vegetables", WeightKg: common.Float64(0.15)},
			{Name: "oil", WeightKg: common.Float64(0.02)},
			{Name: "salt", WeightKg: common.Float64(0.005)},
			{Name: "spices", WeightKg: common.Float64(0.01)},
		}, 1)
		assert.Equal(t, 0.826, r.EstimatedCarbonKg)
		assert.Equal(t, []BreakdownItem{
			{Name: "rice", CarbonKg: 0.54},
			{Name: "vegetables", CarbonKg: 0.15},
			{Name: "oil", CarbonKg: 0.12},
			{Name: "salt", CarbonKg: 0.001},
			{Name: "spices", CarbonKg: 0.015},
		}, r.Ingredients)
	})

	t.Run("重量過大時不溢位", func(t *testing.T) {
		r := Estimate([]common.Ingredient{
			{Name: "beef", WeightKg: common.Float64(1e307)},
			{Name: "lamb", WeightKg: common.Float64(1e307)},
		}, 25)
		assert.Equal(t, math.MaxFloat64, r.EstimatedCarbonKg)
		for _, item := range r.Ingredients {
			assert.False(t, math.IsInf(item.CarbonKg, 0), item.Name)
		}
		_, err := json.Marshal(r)
		require.NoError(t, err)
	})

	t.Run("份數超過上限等同 25 份", func(t *testing.T) {
		ings := []common.Ingredient{
			{Name: "rice", WeightKg: common.Float64(0.2)},
			{Name: "chicken", WeightKg: common.Float64(0.15)},
			{Name: "ghee"},
		}
		assert.Equal(t, Estimate(ings, 25), Estimate(ings, 100))
		assert.Equal(t, 25, Estimate(ings, 100).Servings)
	})

	t.Run("空清單", func(t *testing.T) {
		r := Estimate(nil, 3)
		assert.Equal(t, 0.0, r.EstimatedCarbonKg)
		assert.Equal(t, 3, r.Servings)
		assert.NotNil(t, r.Ingredients)
		assert.Empty(t, r.Ingredients)
	})
}

func TestClampServings(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{in: 0, want: 1},
		{in: -3, want: 1},
		{in: 1, want: 1},
		{in: 2.4, want: 2},
		{in: 2.5, want: 3},
		{in: 25, want: 25},
		{in: 30, want: 25},
		{in: math.NaN(), want: 1},
		{in: math.Inf(1), want: 25},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampServings(tt.in), "servings %v", tt.in)
	}
}

func TestParseServings(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
	}{
		{name: "nil", in: nil, want: 1},
		{name: "數值", in: 4.0, want: 4},
		{name: "整數", in: 3, want: 3},
		{name: "JSON 數值", in: json.Number("2"), want: 2},
		{name: "字串", in: "3", want: 3},
		{name: "空字串", in: "  ", want: 1},
		{name: "無效字串", in: "abc", want: 1},
		{name: "零", in: 0.0, want: 1},
		{name: "true", in: true, want: 1},
		{name: "false", in: false, want: 1},
		{name: "物件", in: map[string]interface{}{}, want: 1},
		{name: "負數", in: -2.0, want: -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseServings(tt.in))
		})
	}
}

func TestRound3(t *testing.T) {
	assert.Equal(t, 0.54, Round3(2.7*0.2))
	assert.Equal(t, 0.001, Round3(0.0011))
	assert.Equal(t, 0.001, Round3(0.0005))
	assert.Equal(t, 1.0, Round3(1.0005))
	assert.Equal(t, 0.0, Round3(0.0004))
	assert.Equal(t, 12.346, Round3(12.3456))
	assert.True(t, math.IsNaN(Round3(math.NaN())))
}
