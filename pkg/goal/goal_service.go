package goal

import (
	"context"
	"errors"
	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/entities"
	"nutri-tracker-backend/pkg/meal"
	"time"

	"gorm.io/gorm"
)

type (
	GoalService interface {
		SetGoal(ctx context.Context, req domain.SetGoalRequest, userID uint) (domain.GoalResponse, error)
		GetActiveGoal(ctx context.Context, userID uint) (domain.GoalResponse, error)
		GetProgress(ctx context.Context, userID uint, date time.Time) (domain.GoalProgressResponse, error)
		ClearGoal(ctx context.Context, userID uint) error
	}

	goalService struct {
		goalRepository GoalRepository
		mealRepository meal.MealRepository
	}
)

func NewGoalService(goalRepository GoalRepository, mealRepository meal.MealRepository) GoalService {
	return &goalService{
		goalRepository: goalRepository,
		mealRepository: mealRepository,
	}
}

func (s *goalService) SetGoal(ctx context.Context, req domain.SetGoalRequest, userID uint) (domain.GoalResponse, error) {
	if req.TargetCalories <= 0 || req.TargetProtein <= 0 {
		return domain.GoalResponse{}, domain.ErrInvalidTargets
	}

	switch req.GoalType {
	case "lose", "maintain", "gain":
	default:
		return domain.GoalResponse{}, domain.ErrInvalidGoalType
	}

	goal := &entities.NutritionGoal{
		UserID:         userID,
		TargetCalories: req.TargetCalories,
		TargetProtein:  req.TargetProtein,
		TargetCarbs:    req.TargetCarbs,
		TargetFat:      req.TargetFat,
		TargetFiber:    req.TargetFiber,
		GoalType:       req.GoalType,
	}

	if err := s.goalRepository.CreateGoal(ctx, goal); err != nil {
		return domain.GoalResponse{}, err
	}

	return toGoalResponse(goal), nil
}

func (s *goalService) GetActiveGoal(ctx context.Context, userID uint) (domain.GoalResponse, error) {
	goal, err := s.goalRepository.GetActiveGoal(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GoalResponse{}, domain.ErrGoalNotFound
		}
		return domain.GoalResponse{}, err
	}
	return toGoalResponse(goal), nil
}

func (s *goalService) GetProgress(ctx context.Context, userID uint, date time.Time) (domain.GoalProgressResponse, error) {
	goal, err := s.goalRepository.GetActiveGoal(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GoalProgressResponse{}, domain.ErrGoalNotFound
		}
		return domain.GoalProgressResponse{}, err
	}

	totals, err := s.mealRepository.SumNutritionByUserAndDate(ctx, userID, date)
	if err != nil {
		return domain.GoalProgressResponse{}, err
	}

	return domain.GoalProgressResponse{
		Date:              date.Format("2006-01-02"),
		Goal:              toGoalResponse(goal),
		ConsumedCalories:  totals.Calories,
		ConsumedProtein:   totals.Protein,
		ConsumedCarbs:     totals.Carbs,
		ConsumedFat:       totals.Fat,
		RemainingCalories: goal.TargetCalories - totals.Calories,
		RemainingProtein:  goal.TargetProtein - totals.Protein,
	}, nil
}

func (s *goalService) ClearGoal(ctx context.Context, userID uint) error {
	return s.goalRepository.DeactivateGoals(ctx, userID)
}

func toGoalResponse(goal *entities.NutritionGoal) domain.GoalResponse {
	return domain.GoalResponse{
		ID:             goal.ID,
		TargetCalories: goal.TargetCalories,
		TargetProtein:  goal.TargetProtein,
		TargetCarbs:    goal.TargetCarbs,
		TargetFat:      goal.TargetFat,
		TargetFiber:    goal.TargetFiber,
		GoalType:       goal.GoalType,
		IsActive:       goal.IsActive,
	}
}
