package domain

import (
	"errors"
	"time"
)

// Standard serving created by EnsureStandardServing for every food.
const (
	StandardServingName  = "100 g"
	StandardServingUnit  = "gram"
	StandardServingGrams = 100.0
)

var (
	MessageSuccessAddServing        = "serving added successfully"
	MessageSuccessUpdateServing     = "serving updated successfully"
	MessageSuccessDeleteServing     = "serving deleted successfully"
	MessageSuccessGetServings       = "servings retrieved successfully"
	MessageSuccessSetDefaultServing = "default serving updated successfully"
	MessageSuccessEnsureStandard    = "standard serving ensured successfully"

	MessageFailedAddServing        = "failed to add serving"
	MessageFailedUpdateServing     = "failed to update serving"
	MessageFailedDeleteServing     = "failed to delete serving"
	MessageFailedGetServings       = "failed to retrieve servings"
	MessageFailedSetDefaultServing = "failed to set default serving"
	MessageFailedEnsureStandard    = "failed to ensure standard serving"

	ErrServingNotFound  = errors.New("serving not found")
	ErrInvalidGrams     = errors.New("grams per unit must be greater than 0")
	ErrDuplicateServing = errors.New("serving with the same name and unit already exists for this food")
	ErrServingMismatch  = errors.New("serving does not belong to the given food")
	ErrServingIsDefault = errors.New("serving is the food's default and cannot be deleted")
	ErrServingNameEmpty = errors.New("serving name is required")
	ErrServingUnitEmpty = errors.New("serving unit is required")
)

type (
	AddServingRequest struct {
		ServingName  string  `json:"serving_name" validate:"required,max=50"`
		Unit         string  `json:"unit" validate:"required,max=20"`
		GramsPerUnit float64 `json:"grams_per_unit" validate:"required"`
	}

	UpdateServingRequest struct {
		ServingName  string   `json:"serving_name" validate:"omitempty,max=50"`
		Unit         string   `json:"unit" validate:"omitempty,max=20"`
		GramsPerUnit *float64 `json:"grams_per_unit"`
	}

	SetDefaultServingRequest struct {
		ServingID *uint `json:"serving_id"`
	}

	ServingResponse struct {
		ID           uint      `json:"id"`
		FoodID       uint      `json:"food_id"`
		ServingName  string    `json:"serving_name"`
		Unit         string    `json:"unit"`
		GramsPerUnit float64   `json:"grams_per_unit"`
		IsDefault    bool      `json:"is_default"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
