package ingredient

import (
	"fmt"
	"testing"

	"foodprint/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Fresh Basil (chopped)", "basil"},
		{"ground cumin seeds", "cumin"},
		{"Chili Powder", "chili"},
		{"  Olive   Oil ", "olive oil"},
		{"tomatoes (ripe, diced)", "tomatoes"},
		{"large onion, sliced", "onion,"},
		{"groundnut oil", "groundnut oil"},
		{"fresh", ""},
		{"(optional)", ""},
		{"Minced Garlic (2 cloves)", "garlic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in), "input %q", tt.in)
	}
}

func TestNormalize(t *testing.T) {
	t.Run("去重保留第一筆", func(t *testing.T) {
		out := Normalize([]common.Ingredient{
			{Name: "Basil", WeightKg: common.Float64(0.01)},
			{Name: "basil (thai)", WeightKg: common.Float64(0.5)},
			{Name: "Rice"},
		})
		require.Len(t, out, 2)
		assert.Equal(t, "basil", out[0].Name)
		require.NotNil(t, out[0].WeightKg)
		assert.Equal(t, 0.01, *out[0].WeightKg)
		assert.Equal(t, "rice", out[1].Name)
		assert.Nil(t, out[1].WeightKg)
	})

	t.Run("略過空白名稱", func(t *testing.T) {
		out := Normalize([]common.Ingredient{{Name: ""}, {Name: "fresh"}, {Name: "salt"}})
		require.Len(t, out, 1)
		assert.Equal(t, "salt", out[0].Name)
	})

	t.Run("數量上限", func(t *testing.T) {
		items := make([]common.Ingredient, 0, 40)
		for i := 0; i < 40; i++ {
			items = append(items, common.Ingredient{Name: fmt.Sprintf("item %d", i)})
		}
		out := Normalize(items)
		require.Len(t, out, MaxIngredients)
		assert.Equal(t, "item 0", out[0].Name)
		assert.Equal(t, "item 29", out[MaxIngredients-1].Name)
	})

	t.Run("空輸入", func(t *testing.T) {
		assert.Empty(t, Normalize(nil))
	})
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := [][]common.Ingredient{
		{{Name: "Fresh Basil (chopped)"}, {Name: "basil"}, {Name: "  Ground  Cumin "}},
		{{Name: "large onion, sliced"}, {Name: "onion,"}, {Name: "Olive Oil"}},
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}
