package domain

import (
	"errors"
)

// Recognized unit types for a meal log entry.
const (
	UnitTypeGrams   = "grams"
	UnitTypeServing = "serving"
)

var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

var (
	MessageSuccessLogMeal         = "meal logged successfully"
	MessageSuccessUpdateMealLog   = "meal log updated successfully"
	MessageSuccessDeleteMealLog   = "meal log deleted successfully"
	MessageSuccessGetMealLogs     = "meal logs retrieved successfully"
	MessageSuccessGetDailySummary = "daily summary retrieved successfully"

	MessageFailedLogMeal         = "failed to log meal"
	MessageFailedUpdateMealLog   = "failed to update meal log"
	MessageFailedDeleteMealLog   = "failed to delete meal log"
	MessageFailedGetMealLogs     = "failed to retrieve meal logs"
	MessageFailedGetDailySummary = "failed to retrieve daily summary"

	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
	ErrInvalidUnit     = errors.New("unit_type must be either grams or serving")
	ErrInvalidMealType = errors.New("meal_type must be one of: breakfast, lunch, dinner, snack")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrServingRequired = errors.New("serving_id is required when unit_type is serving")
	ErrMealLogNotFound = errors.New("meal log not found")
)

type (
	LogMealRequest struct {
		FoodID    uint    `json:"food_id" validate:"required"`
		UnitType  string  `json:"unit_type" validate:"required,oneof=grams serving"`
		Quantity  float64 `json:"quantity" validate:"required"`
		ServingID *uint   `json:"serving_id"`
		MealType  string  `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
		Date      string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	}

	UpdateMealLogRequest struct {
		FoodID    *uint    `json:"food_id"`
		UnitType  string   `json:"unit_type" validate:"omitempty,oneof=grams serving"`
		Quantity  *float64 `json:"quantity"`
		ServingID *uint    `json:"serving_id"`
		MealType  string   `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack"`
		Date      string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	}

	NutritionBreakdown struct {
		Calories float64  `json:"calories"`
		Protein  float64  `json:"protein"`
		Carbs    float64  `json:"carbs"`
		Fat      float64  `json:"fat"`
		Fiber    *float64 `json:"fiber"`
		Sugar    *float64 `json:"sugar"`
		Sodium   *float64 `json:"sodium"`
	}

	MealLogResponse struct {
		ID               uint               `json:"id"`
		FoodID           uint               `json:"food_id"`
		FoodName         string             `json:"food_name,omitempty"`
		ServingID        *uint              `json:"serving_id"`
		ServingName      string             `json:"serving_name,omitempty"`
		UnitType         string             `json:"unit_type"`
		OriginalQuantity float64            `json:"original_quantity"`
		LoggedGrams      float64            `json:"logged_grams"`
		MealType         string             `json:"meal_type"`
		Date             string             `json:"date"`
		Nutrition        NutritionBreakdown `json:"nutrition"`
	}

	DailySummaryResponse struct {
		Date     string             `json:"date"`
		Consumed NutritionBreakdown `json:"consumed"`
		Goal     *GoalResponse      `json:"goal,omitempty"`
		Meals    []MealLogResponse  `json:"meals"`
	}
)
