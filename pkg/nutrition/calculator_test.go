package nutrition

import (
	"testing"

	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/entities"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func basmatiRice() *entities.Food {
	return &entities.Food{
		ID:       1,
		Name:     "Basmati Rice",
		Category: "Grains",
		Calories: 130,
		Protein:  2.7,
		Carbs:    28,
		Fat:      0.3,
		Fiber:    floatPtr(0.4),
	}
}

func cupServing() *entities.FoodServing {
	return &entities.FoodServing{
		ID:           10,
		FoodID:       1,
		ServingName:  "1 cup",
		Unit:         "cup",
		GramsPerUnit: 195,
	}
}

func TestResolveGramsGrams(t *testing.T) {
	grams, err := ResolveGrams(basmatiRice(), domain.UnitTypeGrams, 195, nil)
	assert.NoError(t, err)
	assert.Equal(t, 195.0, grams)
}

func TestResolveGramsServing(t *testing.T) {
	grams, err := ResolveGrams(basmatiRice(), domain.UnitTypeServing, 1, cupServing())
	assert.NoError(t, err)
	assert.Equal(t, 195.0, grams)
}

func TestResolveGramsNonPositiveQuantity(t *testing.T) {
	_, err := ResolveGrams(basmatiRice(), domain.UnitTypeGrams, 0, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = ResolveGrams(basmatiRice(), domain.UnitTypeServing, -1.5, cupServing())
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestResolveGramsUnknownUnit(t *testing.T) {
	_, err := ResolveGrams(basmatiRice(), "ounces", 2, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)
}

func TestResolveGramsServingMissing(t *testing.T) {
	_, err := ResolveGrams(basmatiRice(), domain.UnitTypeServing, 1, nil)
	assert.ErrorIs(t, err, domain.ErrServingRequired)
}

func TestResolveGramsServingMismatch(t *testing.T) {
	other := cupServing()
	other.FoodID = 99

	_, err := ResolveGrams(basmatiRice(), domain.UnitTypeServing, 1, other)
	assert.ErrorIs(t, err, domain.ErrServingMismatch)
}

func TestCalculateScalesPer100g(t *testing.T) {
	snapshot, err := Calculate(basmatiRice(), 195)
	assert.NoError(t, err)

	assert.InDelta(t, 253.5, snapshot.Calories, 1e-9)
	assert.InDelta(t, 2.7*1.95, snapshot.Protein, 1e-9)
	assert.InDelta(t, 28*1.95, snapshot.Carbs, 1e-9)
	assert.InDelta(t, 0.3*1.95, snapshot.Fat, 1e-9)

	if assert.NotNil(t, snapshot.Fiber) {
		assert.InDelta(t, 0.4*1.95, *snapshot.Fiber, 1e-9)
	}
}

func TestCalculateNilNutrientsPropagate(t *testing.T) {
	food := basmatiRice()
	food.Fiber = nil

	snapshot, err := Calculate(food, 150)
	assert.NoError(t, err)
	assert.Nil(t, snapshot.Fiber)
	assert.Nil(t, snapshot.Sugar)
	assert.Nil(t, snapshot.Sodium)
}

func TestCalculateRejectsNonPositiveGrams(t *testing.T) {
	_, err := Calculate(basmatiRice(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// Logging one cup must match logging the cup's gram weight directly.
func TestLogMealGramsServingEquivalence(t *testing.T) {
	food := basmatiRice()
	serving := cupServing()

	servingGrams, servingSnap, err := LogMeal(food, domain.UnitTypeServing, 1, serving)
	assert.NoError(t, err)

	directGrams, directSnap, err := LogMeal(food, domain.UnitTypeGrams, 195, nil)
	assert.NoError(t, err)

	assert.Equal(t, directGrams, servingGrams)
	assert.Equal(t, directSnap, servingSnap)
	assert.InDelta(t, 253.5, servingSnap.Calories, 1e-9)
}

func TestLogMealFractionalServings(t *testing.T) {
	grams, snapshot, err := LogMeal(basmatiRice(), domain.UnitTypeServing, 1.5, cupServing())
	assert.NoError(t, err)
	assert.InDelta(t, 292.5, grams, 1e-9)
	assert.InDelta(t, 130*2.925, snapshot.Calories, 1e-9)
}

func TestLogMealPropagatesResolveError(t *testing.T) {
	_, _, err := LogMeal(basmatiRice(), domain.UnitTypeServing, 1, nil)
	assert.ErrorIs(t, err, domain.ErrServingRequired)
}
