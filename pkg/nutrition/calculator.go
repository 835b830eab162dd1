package nutrition

import (
	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/entities"
)

// Snapshot holds the computed nutrition values for a logged amount of food.
// Fiber, sugar and sodium stay nil when the food does not declare them, so
// "unknown" never collapses into "zero".
type Snapshot struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    *float64
	Sugar    *float64
	Sodium   *float64
}

// ResolveGrams converts a logging request into the authoritative gram amount.
// For unit type "grams" the quantity already is the gram amount; for
// "serving" it is a multiple of the serving's grams_per_unit and the serving
// must belong to the food.
func ResolveGrams(food *entities.Food, unitType string, quantity float64, serving *entities.FoodServing) (float64, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}

	switch unitType {
	case domain.UnitTypeGrams:
		return quantity, nil
	case domain.UnitTypeServing:
		if serving == nil {
			return 0, domain.ErrServingRequired
		}
		if serving.FoodID != food.ID {
			return 0, domain.ErrServingMismatch
		}
		return quantity * serving.GramsPerUnit, nil
	default:
		return 0, domain.ErrInvalidUnit
	}
}

// Calculate scales the food's per-100g profile to the given gram amount.
// No rounding is applied; presentation rounding belongs to the HTTP layer.
func Calculate(food *entities.Food, grams float64) (Snapshot, error) {
	if grams <= 0 {
		return Snapshot{}, domain.ErrInvalidQuantity
	}

	factor := grams / 100.0

	return Snapshot{
		Calories: food.Calories * factor,
		Protein:  food.Protein * factor,
		Carbs:    food.Carbs * factor,
		Fat:      food.Fat * factor,
		Fiber:    scaleOptional(food.Fiber, factor),
		Sugar:    scaleOptional(food.Sugar, factor),
		Sodium:   scaleOptional(food.Sodium, factor),
	}, nil
}

// LogMeal is the single entry point for meal logging: it resolves grams and
// computes the snapshot in one step so the two can never drift apart.
func LogMeal(food *entities.Food, unitType string, quantity float64, serving *entities.FoodServing) (float64, Snapshot, error) {
	grams, err := ResolveGrams(food, unitType, quantity, serving)
	if err != nil {
		return 0, Snapshot{}, err
	}

	snapshot, err := Calculate(food, grams)
	if err != nil {
		return 0, Snapshot{}, err
	}

	return grams, snapshot, nil
}

func scaleOptional(v *float64, factor float64) *float64 {
	if v == nil {
		return nil
	}
	scaled := *v * factor
	return &scaled
}
