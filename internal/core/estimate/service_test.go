package estimate

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"foodprint/internal/core/ai/image"
	"foodprint/internal/core/ai/provider"
	"foodprint/internal/core/ai/service"
	"foodprint/internal/core/emission"
	"foodprint/internal/core/ingredient"
	"foodprint/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offlineEstimator 使用離線提供者，所有推論都會回退到預設食材
func offlineEstimator(t *testing.T) *Service {
	t.Helper()
	ai := service.NewService(provider.NewOfflineProvider(), service.Options{Workers: 1, MaxQueueSize: 4})
	t.Cleanup(func() { _ = ai.Close() })
	return NewService(ingredient.NewSource(ai))
}

func TestEstimateDishFallback(t *testing.T) {
	svc := offlineEstimator(t)

	res, err := svc.EstimateDish(context.Background(), "  Chicken Biryani ", 1)
	require.NoError(t, err)
	assert.Equal(t, "Chicken Biryani", res.Dish)
	assert.Equal(t, 1, res.Servings)
	assert.Equal(t, 0.826, res.EstimatedCarbonKg)
	require.Len(t, res.Ingredients, 5)
	assert.Equal(t, emission.BreakdownItem{Name: "rice", CarbonKg: 0.54}, res.Ingredients[0])
	require.NotNil(t, res.Equivalents)
	assert.Equal(t, 4.3, res.Equivalents.MilesDriven)
	assert.Equal(t, 100.0, res.Equivalents.SmartphonesCharged)

	res, err = svc.EstimateDish(context.Background(), "Chicken Biryani", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Servings)
	assert.Equal(t, 1.652, res.EstimatedCarbonKg)

	res, err = svc.EstimateDish(context.Background(), "Chicken Biryani", 99)
	require.NoError(t, err)
	assert.Equal(t, emission.MaxServings, res.Servings)
}

func TestEstimateDishRequired(t *testing.T) {
	svc := offlineEstimator(t)

	_, err := svc.EstimateDish(context.Background(), "   ", 1)
	assert.True(t, errors.Is(err, common.ErrDishRequired))
}

func TestEstimateImage(t *testing.T) {
	svc := offlineEstimator(t)

	res, err := svc.EstimateImage(context.Background(), &image.Payload{Data: []byte{1}, MIMEType: "image/jpeg"}, 1)
	require.NoError(t, err)
	assert.Equal(t, ingredient.FallbackDish, res.Dish)
	assert.Equal(t, 0.826, res.EstimatedCarbonKg)

	_, err = svc.EstimateImage(context.Background(), nil, 1)
	assert.True(t, errors.Is(err, common.ErrImageRequired))

	_, err = svc.EstimateImage(context.Background(), &image.Payload{}, 1)
	assert.True(t, errors.Is(err, common.ErrImageRequired))
}

func TestFromRawList(t *testing.T) {
	res := FromRawList("Burger", `{"ingredients":[{"ingredient":"Beef (minced)","weight_g":100},{"name":"beef"}]}`, 2)
	assert.Equal(t, "Burger", res.Dish)
	assert.Equal(t, 2, res.Servings)
	require.Len(t, res.Ingredients, 1)
	assert.Equal(t, "beef", res.Ingredients[0].Name)
	assert.Equal(t, 19.896, res.EstimatedCarbonKg)
}

func TestFromIngredientsEmpty(t *testing.T) {
	res := FromIngredients("Water", []common.Ingredient{{Name: "water", WeightKg: common.Float64(0.5)}}, 1)
	assert.Equal(t, 0.0, res.EstimatedCarbonKg)
	assert.Nil(t, res.Equivalents)
}

func TestFromIngredientsHugeWeight(t *testing.T) {
	r := FromIngredients("x", []common.Ingredient{{Name: "beef", WeightKg: common.Float64(1e307)}}, 25)
	assert.Equal(t, math.MaxFloat64, r.EstimatedCarbonKg)
	require.NotNil(t, r.Equivalents)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"estimated_carbon_kg":1.7976931348623157e+308`)
}
