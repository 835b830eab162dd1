package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFood     = "food added successfully"
	MessageSuccessUpdateFood  = "food updated successfully"
	MessageSuccessDeleteFood  = "food deleted successfully"
	MessageSuccessGetFoods    = "foods retrieved successfully"
	MessageSuccessGetFood     = "food details retrieved successfully"

	MessageFailedAddFood    = "failed to add food"
	MessageFailedUpdateFood = "failed to update food"
	MessageFailedDeleteFood = "failed to delete food"
	MessageFailedGetFoods   = "failed to retrieve foods"
	MessageFailedGetFood    = "failed to retrieve food details"

	ErrFoodNotFound        = errors.New("food not found")
	ErrInvalidNutrition    = errors.New("nutrition values must not be negative")
	ErrFoodNameRequired    = errors.New("food name is required")
	ErrFoodHasMealLogs     = errors.New("food is referenced by meal logs")
	ErrCategoryRequired    = errors.New("food category is required")
)

type (
	AddFoodRequest struct {
		Name        string   `json:"name" validate:"required,max=100"`
		Brand       string   `json:"brand" validate:"omitempty,max=50"`
		Category    string   `json:"category" validate:"required,max=50"`
		Description string   `json:"description" validate:"omitempty"`
		Calories    float64  `json:"calories" validate:"min=0"`
		Protein     float64  `json:"protein" validate:"min=0"`
		Carbs       float64  `json:"carbs" validate:"min=0"`
		Fat         float64  `json:"fat" validate:"min=0"`
		Fiber       *float64 `json:"fiber" validate:"omitempty,min=0"`
		Sugar       *float64 `json:"sugar" validate:"omitempty,min=0"`
		Sodium      *float64 `json:"sodium" validate:"omitempty,min=0"`
		ServingSize float64  `json:"serving_size" validate:"omitempty,gt=0"`
		IsVerified  bool     `json:"is_verified"`
	}

	UpdateFoodRequest struct {
		Name        string   `json:"name" validate:"omitempty,max=100"`
		Brand       *string  `json:"brand" validate:"omitempty,max=50"`
		Category    string   `json:"category" validate:"omitempty,max=50"`
		Description *string  `json:"description"`
		Calories    *float64 `json:"calories" validate:"omitempty,min=0"`
		Protein     *float64 `json:"protein" validate:"omitempty,min=0"`
		Carbs       *float64 `json:"carbs" validate:"omitempty,min=0"`
		Fat         *float64 `json:"fat" validate:"omitempty,min=0"`
		Fiber       *float64 `json:"fiber" validate:"omitempty,min=0"`
		Sugar       *float64 `json:"sugar" validate:"omitempty,min=0"`
		Sodium      *float64 `json:"sodium" validate:"omitempty,min=0"`
		IsVerified  *bool    `json:"is_verified"`
	}

	FoodResponse struct {
		ID               uint      `json:"id"`
		Name             string    `json:"name"`
		Brand            string    `json:"brand,omitempty"`
		Category         string    `json:"category"`
		Description      string    `json:"description,omitempty"`
		Calories         float64   `json:"calories"`
		Protein          float64   `json:"protein"`
		Carbs            float64   `json:"carbs"`
		Fat              float64   `json:"fat"`
		Fiber            *float64  `json:"fiber"`
		Sugar            *float64  `json:"sugar"`
		Sodium           *float64  `json:"sodium"`
		ServingSize      float64   `json:"serving_size"`
		IsVerified       bool      `json:"is_verified"`
		DefaultServingID *uint     `json:"default_serving_id"`
		CreatedAt        time.Time `json:"created_at"`
	}

	FoodDetailResponse struct {
		FoodResponse
		Servings []ServingResponse `json:"servings"`
	}
)
