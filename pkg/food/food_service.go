package food

import (
	"context"
	"errors"
	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/entities"
	"strings"

	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.AddFoodRequest, createdBy *uint) (domain.FoodResponse, error)
		UpdateFood(ctx context.Context, id uint, req domain.UpdateFoodRequest) (domain.FoodResponse, error)
		DeleteFood(ctx context.Context, id uint) error
		GetFoods(ctx context.Context, search, category string, page, limit int) ([]domain.FoodResponse, int64, error)
		GetFoodDetail(ctx context.Context, id uint) (domain.FoodDetailResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func (s *foodService) AddFood(ctx context.Context, req domain.AddFoodRequest, createdBy *uint) (domain.FoodResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.FoodResponse{}, domain.ErrFoodNameRequired
	}
	if strings.TrimSpace(req.Category) == "" {
		return domain.FoodResponse{}, domain.ErrCategoryRequired
	}
	if req.Calories < 0 || req.Protein < 0 || req.Carbs < 0 || req.Fat < 0 {
		return domain.FoodResponse{}, domain.ErrInvalidNutrition
	}

	servingSize := req.ServingSize
	if servingSize <= 0 {
		servingSize = 100
	}

	food := &entities.Food{
		Name:                    strings.TrimSpace(req.Name),
		Brand:                   strings.TrimSpace(req.Brand),
		Category:                strings.TrimSpace(req.Category),
		Description:             req.Description,
		Calories:                req.Calories,
		Protein:                 req.Protein,
		Carbs:                   req.Carbs,
		Fat:                     req.Fat,
		Fiber:                   req.Fiber,
		Sugar:                   req.Sugar,
		Sodium:                  req.Sodium,
		ServingSize:             servingSize,
		DefaultServingSizeGrams: servingSize,
		IsVerified:              req.IsVerified,
		CreatedBy:               createdBy,
	}

	if err := s.foodRepository.AddFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(food), nil
}

func (s *foodService) UpdateFood(ctx context.Context, id uint, req domain.UpdateFoodRequest) (domain.FoodResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}

	if req.Name != "" {
		food.Name = strings.TrimSpace(req.Name)
	}
	if req.Brand != nil {
		food.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.Category != "" {
		food.Category = strings.TrimSpace(req.Category)
	}
	if req.Description != nil {
		food.Description = *req.Description
	}
	if req.Calories != nil {
		food.Calories = *req.Calories
	}
	if req.Protein != nil {
		food.Protein = *req.Protein
	}
	if req.Carbs != nil {
		food.Carbs = *req.Carbs
	}
	if req.Fat != nil {
		food.Fat = *req.Fat
	}
	if req.Fiber != nil {
		food.Fiber = req.Fiber
	}
	if req.Sugar != nil {
		food.Sugar = req.Sugar
	}
	if req.Sodium != nil {
		food.Sodium = req.Sodium
	}
	if req.IsVerified != nil {
		food.IsVerified = *req.IsVerified
	}

	if food.Calories < 0 || food.Protein < 0 || food.Carbs < 0 || food.Fat < 0 {
		return domain.FoodResponse{}, domain.ErrInvalidNutrition
	}

	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(food), nil
}

func (s *foodService) DeleteFood(ctx context.Context, id uint) error {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}

	// Foods referenced by meal logs keep their history; block the delete.
	logs, err := s.foodRepository.CountMealLogs(ctx, food.ID)
	if err != nil {
		return err
	}
	if logs > 0 {
		return domain.ErrFoodHasMealLogs
	}

	return s.foodRepository.DeleteFood(ctx, food.ID)
}

func (s *foodService) GetFoods(ctx context.Context, search, category string, page, limit int) ([]domain.FoodResponse, int64, error) {
	foods, count, err := s.foodRepository.GetFoods(ctx, search, category, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.FoodResponse, 0, len(foods))
	for _, food := range foods {
		result = append(result, toFoodResponse(food))
	}

	return result, count, nil
}

func (s *foodService) GetFoodDetail(ctx context.Context, id uint) (domain.FoodDetailResponse, error) {
	food, err := s.foodRepository.GetFoodWithServings(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodDetailResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodDetailResponse{}, err
	}

	servings := make([]domain.ServingResponse, 0, len(food.Servings))
	for _, serving := range food.Servings {
		servings = append(servings, domain.ServingResponse{
			ID:           serving.ID,
			FoodID:       serving.FoodID,
			ServingName:  serving.ServingName,
			Unit:         serving.Unit,
			GramsPerUnit: serving.GramsPerUnit,
			IsDefault:    food.DefaultServingID != nil && *food.DefaultServingID == serving.ID,
			CreatedAt:    serving.CreatedAt,
		})
	}

	return domain.FoodDetailResponse{
		FoodResponse: toFoodResponse(food),
		Servings:     servings,
	}, nil
}

func toFoodResponse(food *entities.Food) domain.FoodResponse {
	return domain.FoodResponse{
		ID:               food.ID,
		Name:             food.Name,
		Brand:            food.Brand,
		Category:         food.Category,
		Description:      food.Description,
		Calories:         food.Calories,
		Protein:          food.Protein,
		Carbs:            food.Carbs,
		Fat:              food.Fat,
		Fiber:            food.Fiber,
		Sugar:            food.Sugar,
		Sodium:           food.Sodium,
		ServingSize:      food.ServingSize,
		IsVerified:       food.IsVerified,
		DefaultServingID: food.DefaultServingID,
		CreatedAt:        food.CreatedAt,
	}
}
