package domain

import (
	"errors"
)

var (
	MessageSuccessSetGoal     = "nutrition goal saved successfully"
	MessageSuccessGetGoal     = "nutrition goal retrieved successfully"
	MessageSuccessGetProgress = "goal progress retrieved successfully"
	MessageSuccessDeleteGoal  = "nutrition goal deleted successfully"

	MessageFailedSetGoal     = "failed to save nutrition goal"
	MessageFailedGetGoal     = "failed to retrieve nutrition goal"
	MessageFailedGetProgress = "failed to retrieve goal progress"
	MessageFailedDeleteGoal  = "failed to delete nutrition goal"

	ErrGoalNotFound    = errors.New("no active nutrition goal")
	ErrInvalidGoalType = errors.New("goal_type must be one of: lose, maintain, gain")
	ErrInvalidTargets  = errors.New("goal targets must be greater than 0")
)

type (
	SetGoalRequest struct {
		TargetCalories float64  `json:"target_calories" validate:"required,gt=0"`
		TargetProtein  float64  `json:"target_protein" validate:"required,gt=0"`
		TargetCarbs    *float64 `json:"target_carbs" validate:"omitempty,gt=0"`
		TargetFat      *float64 `json:"target_fat" validate:"omitempty,gt=0"`
		TargetFiber    *float64 `json:"target_fiber" validate:"omitempty,gt=0"`
		GoalType       string   `json:"goal_type" validate:"required,oneof=lose maintain gain"`
	}

	GoalResponse struct {
		ID             uint     `json:"id"`
		TargetCalories float64  `json:"target_calories"`
		TargetProtein  float64  `json:"target_protein"`
		TargetCarbs    *float64 `json:"target_carbs"`
		TargetFat      *float64 `json:"target_fat"`
		TargetFiber    *float64 `json:"target_fiber"`
		GoalType       string   `json:"goal_type"`
		IsActive       bool     `json:"is_active"`
	}

	GoalProgressResponse struct {
		Date              string       `json:"date"`
		Goal              GoalResponse `json:"goal"`
		ConsumedCalories  float64      `json:"consumed_calories"`
		ConsumedProtein   float64      `json:"consumed_protein"`
		ConsumedCarbs     float64      `json:"consumed_carbs"`
		ConsumedFat       float64      `json:"consumed_fat"`
		RemainingCalories float64      `json:"remaining_calories"`
		RemainingProtein  float64      `json:"remaining_protein"`
	}
)
