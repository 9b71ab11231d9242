package ingredient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"foodprint/internal/core/ai/image"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedInferrer 依呼叫順序回傳預設的回應
type scriptedInferrer struct {
	mu        sync.Mutex
	responses []string
	errs      map[int]error
	prompts   []string
	images    []*image.Payload
}

func (f *scriptedInferrer) Infer(_ context.Context, prompt string, img *image.Payload) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	f.images = append(f.images, img)

	if err, ok := f.errs[call]; ok {
		return "", err
	}
	if call < len(f.responses) {
		return f.responses[call], nil
	}
	return "[]", nil
}

func (f *scriptedInferrer) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func listOf(prefix string, n int) string {
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, fmt.Sprintf(`{"ingredient":"%s %d","weight_g":10}`, prefix, i))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func TestSourceFromDish(t *testing.T) {
	t.Run("補充兩次後合併", func(t *testing.T) {
		f := &scriptedInferrer{responses: []string{
			`[{"ingredient":"Basmati Rice","weight_g":150},{"ingredient":"chicken","weight_g":120}]`,
			`[{"ingredient":"basmati rice","weight_g":999},{"ingredient":"ghee","weight_g":15}]`,
			"```json\n[{\"ingredient\":\"saffron\",\"weight_g\":0.2}]\n```",
		}}
		items := NewSource(f).FromDish(context.Background(), "Biryani")

		require.Equal(t, 3, f.calls())
		assert.Contains(t, f.prompts[0], "Dish: Biryani.")
		assert.Contains(t, f.prompts[1], "single serving of Biryani")
		assert.Contains(t, f.prompts[1], `{"ingredient":"basmati rice","weight_g":150}`)
		assert.Nil(t, f.images[0])

		names := make([]string, 0, len(items))
		for _, it := range items {
			names = append(names, it.Name)
		}
		assert.Equal(t, []string{"basmati rice", "chicken", "ghee", "saffron"}, names)
		assert.Equal(t, 0.15, *items[0].WeightKg)
	})

	t.Run("清單足夠時不補充", func(t *testing.T) {
		f := &scriptedInferrer{responses: []string{listOf("item", TargetCount)}}
		items := NewSource(f).FromDish(context.Background(), "Thali")

		assert.Equal(t, 1, f.calls())
		assert.Len(t, items, TargetCount)
	})

	t.Run("第一次補充後足夠", func(t *testing.T) {
		f := &scriptedInferrer{responses: []string{listOf("a", 10), listOf("b", 10)}}
		items := NewSource(f).FromDish(context.Background(), "Thali")

		assert.Equal(t, 2, f.calls())
		assert.Len(t, items, 20)
	})

	t.Run("推論失敗使用預設清單", func(t *testing.T) {
		f := &scriptedInferrer{errs: map[int]error{0: errors.New("boom")}}
		items := NewSource(f).FromDish(context.Background(), "Biryani")

		assert.Equal(t, Fallback(), items)
		assert.Equal(t, 1, f.calls())
	})

	t.Run("補充失敗使用預設清單", func(t *testing.T) {
		f := &scriptedInferrer{
			responses: []string{listOf("item", 3)},
			errs:      map[int]error{2: errors.New("timeout")},
		}
		items := NewSource(f).FromDish(context.Background(), "Biryani")

		assert.Equal(t, Fallback(), items)
		assert.Equal(t, 3, f.calls())
	})

	t.Run("補充回應格式不符時保留現有清單", func(t *testing.T) {
		f := &scriptedInferrer{responses: []string{listOf("item", 3), `{"ingredients":"none"}`, `[null]`}}
		items := NewSource(f).FromDish(context.Background(), "Biryani")

		assert.Equal(t, 3, f.calls())
		require.Len(t, items, 3)
		assert.Equal(t, "item 0", items[0].Name)
	})

	t.Run("無結果使用預設清單", func(t *testing.T) {
		f := &scriptedInferrer{responses: []string{"not json", "[]", `{"ingredients":"none"}`}}
		items := NewSource(f).FromDish(context.Background(), "Mystery")

		assert.Equal(t, Fallback(), items)
		assert.Equal(t, 3, f.calls())
	})
}

func TestSourceFromImage(t *testing.T) {
	img := &image.Payload{Data: []byte{0xff, 0xd8}, MIMEType: "image/jpeg"}

	t.Run("辨識菜名與食材", func(t *testing.T) {
		f := &scriptedInferrer{responses: []string{
			`{"dishName":"Pad Thai","ingredients":[{"name":"Rice Noodles","weight_kg":0.12},{"name":"shrimp"}]}`,
			`[{"ingredient":"peanuts","weight_g":20}]`,
		}}
		dish, items := NewSource(f).FromImage(context.Background(), img)

		assert.Equal(t, "Pad Thai", dish)
		require.Equal(t, 3, f.calls())
		assert.Same(t, img, f.images[0])
		assert.Nil(t, f.images[1])
		assert.Contains(t, f.prompts[1], "single serving of Pad Thai")

		require.Len(t, items, 3)
		assert.Equal(t, "rice noodles", items[0].Name)
		assert.Equal(t, "shrimp", items[1].Name)
		assert.Nil(t, items[1].WeightKg)
		assert.Equal(t, "peanuts", items[2].Name)
	})

	t.Run("推論失敗", func(t *testing.T) {
		f := &scriptedInferrer{errs: map[int]error{0: errors.New("unavailable")}}
		dish, items := NewSource(f).FromImage(context.Background(), img)

		assert.Equal(t, FallbackDish, dish)
		assert.Equal(t, Fallback(), items)
	})

	t.Run("無食材", func(t *testing.T) {
		f := &scriptedInferrer{responses: []string{`{"dish":"Soup","ingredients":[]}`}}
		dish, items := NewSource(f).FromImage(context.Background(), img)

		assert.Equal(t, FallbackDish, dish)
		assert.Equal(t, Fallback(), items)
	})

	t.Run("缺少圖片", func(t *testing.T) {
		f := &scriptedInferrer{}
		dish, items := NewSource(f).FromImage(context.Background(), nil)

		assert.Equal(t, FallbackDish, dish)
		assert.Equal(t, Fallback(), items)
		assert.Equal(t, 0, f.calls())
	})
}
