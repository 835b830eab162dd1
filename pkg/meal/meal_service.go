package meal

import (
	"context"
	"errors"
	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/entities"
	"nutri-tracker-backend/pkg/food"
	"nutri-tracker-backend/pkg/nutrition"
	"nutri-tracker-backend/pkg/serving"
	"time"

	"gorm.io/gorm"
)

type (
	MealService interface {
		LogMeal(ctx context.Context, req domain.LogMealRequest, userID uint) (domain.MealLogResponse, error)
		UpdateMealLog(ctx context.Context, id uint, req domain.UpdateMealLogRequest, userID uint) (domain.MealLogResponse, error)
		DeleteMealLog(ctx context.Context, id uint, userID uint) error
		GetMealLogs(ctx context.Context, userID uint, date time.Time) ([]domain.MealLogResponse, error)
		GetDailySummary(ctx context.Context, userID uint, date time.Time) (domain.DailySummaryResponse, error)
	}

	mealService struct {
		mealRepository    MealRepository
		foodRepository    food.FoodRepository
		servingRepository serving.ServingRepository
	}
)

func NewMealService(mealRepository MealRepository, foodRepository food.FoodRepository, servingRepository serving.ServingRepository) MealService {
	return &mealService{
		mealRepository:    mealRepository,
		foodRepository:    foodRepository,
		servingRepository: servingRepository,
	}
}

func (s *mealService) LogMeal(ctx context.Context, req domain.LogMealRequest, userID uint) (domain.MealLogResponse, error) {
	if !isValidMealType(req.MealType) {
		return domain.MealLogResponse{}, domain.ErrInvalidMealType
	}

	mealDate, err := parseMealDate(req.Date)
	if err != nil {
		return domain.MealLogResponse{}, err
	}

	foodEntity, err := s.foodRepository.GetFoodByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealLogResponse{}, domain.ErrFoodNotFound
		}
		return domain.MealLogResponse{}, err
	}

	servingEntity, err := s.resolveServing(ctx, req.UnitType, req.ServingID)
	if err != nil {
		return domain.MealLogResponse{}, err
	}

	grams, snapshot, err := nutrition.LogMeal(foodEntity, req.UnitType, req.Quantity, servingEntity)
	if err != nil {
		return domain.MealLogResponse{}, err
	}

	log := &entities.MealLog{
		UserID:           userID,
		FoodID:           foodEntity.ID,
		UnitType:         req.UnitType,
		OriginalQuantity: req.Quantity,
		LoggedGrams:      grams,
		Calories:         snapshot.Calories,
		Protein:          snapshot.Protein,
		Carbs:            snapshot.Carbs,
		Fat:              snapshot.Fat,
		Fiber:            snapshot.Fiber,
		Sugar:            snapshot.Sugar,
		Sodium:           snapshot.Sodium,
		MealType:         req.MealType,
		Date:             mealDate,
	}
	if servingEntity != nil {
		log.ServingID = &servingEntity.ID
	}

	if err := s.mealRepository.CreateMealLog(ctx, log); err != nil {
		return domain.MealLogResponse{}, err
	}

	log.Food = foodEntity
	log.Serving = servingEntity
	return toMealLogResponse(log), nil
}

func (s *mealService) UpdateMealLog(ctx context.Context, id uint, req domain.UpdateMealLogRequest, userID uint) (domain.MealLogResponse, error) {
	log, err := s.mealRepository.GetMealLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealLogResponse{}, domain.ErrMealLogNotFound
		}
		return domain.MealLogResponse{}, err
	}

	if log.UserID != userID {
		return domain.MealLogResponse{}, domain.ErrUserNotAllowed
	}

	if req.FoodID != nil {
		log.FoodID = *req.FoodID
	}
	if req.UnitType != "" {
		log.UnitType = req.UnitType
	}
	if req.Quantity != nil {
		log.OriginalQuantity = *req.Quantity
	}
	if req.ServingID != nil {
		log.ServingID = req.ServingID
	}
	if req.MealType != "" {
		if !isValidMealType(req.MealType) {
			return domain.MealLogResponse{}, domain.ErrInvalidMealType
		}
		log.MealType = req.MealType
	}
	if req.Date != "" {
		mealDate, err := parseMealDate(req.Date)
		if err != nil {
			return domain.MealLogResponse{}, err
		}
		log.Date = mealDate
	}

	// Any edit reruns the full calculation; the snapshot is never patched
	// piecemeal.
	foodEntity, err := s.foodRepository.GetFoodByID(ctx, log.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealLogResponse{}, domain.ErrFoodNotFound
		}
		return domain.MealLogResponse{}, err
	}

	var servingEntity *entities.FoodServing
	if log.UnitType == domain.UnitTypeServing {
		servingEntity, err = s.resolveServing(ctx, log.UnitType, log.ServingID)
		if err != nil {
			return domain.MealLogResponse{}, err
		}
	} else {
		log.ServingID = nil
	}

	grams, snapshot, err := nutrition.LogMeal(foodEntity, log.UnitType, log.OriginalQuantity, servingEntity)
	if err != nil {
		return domain.MealLogResponse{}, err
	}

	log.LoggedGrams = grams
	log.Calories = snapshot.Calories
	log.Protein = snapshot.Protein
	log.Carbs = snapshot.Carbs
	log.Fat = snapshot.Fat
	log.Fiber = snapshot.Fiber
	log.Sugar = snapshot.Sugar
	log.Sodium = snapshot.Sodium

	if err := s.mealRepository.UpdateMealLog(ctx, log); err != nil {
		return domain.MealLogResponse{}, err
	}

	log.Food = foodEntity
	log.Serving = servingEntity
	return toMealLogResponse(log), nil
}

func (s *mealService) DeleteMealLog(ctx context.Context, id uint, userID uint) error {
	log, err := s.mealRepository.GetMealLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealLogNotFound
		}
		return err
	}

	if log.UserID != userID {
		return domain.ErrUserNotAllowed
	}

	return s.mealRepository.DeleteMealLog(ctx, log.ID)
}

func (s *mealService) GetMealLogs(ctx context.Context, userID uint, date time.Time) ([]domain.MealLogResponse, error) {
	logs, err := s.mealRepository.GetMealLogsByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MealLogResponse, 0, len(logs))
	for _, log := range logs {
		result = append(result, toMealLogResponse(log))
	}

	return result, nil
}

func (s *mealService) GetDailySummary(ctx context.Context, userID uint, date time.Time) (domain.DailySummaryResponse, error) {
	logs, err := s.mealRepository.GetMealLogsByUserAndDate(ctx, userID, date)
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	totals, err := s.mealRepository.SumNutritionByUserAndDate(ctx, userID, date)
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	meals := make([]domain.MealLogResponse, 0, len(logs))
	for _, log := range logs {
		meals = append(meals, toMealLogResponse(log))
	}

	fiber := totals.Fiber
	sugar := totals.Sugar
	sodium := totals.Sodium

	return domain.DailySummaryResponse{
		Date: date.Format("2006-01-02"),
		Consumed: domain.NutritionBreakdown{
			Calories: totals.Calories,
			Protein:  totals.Protein,
			Carbs:    totals.Carbs,
			Fat:      totals.Fat,
			Fiber:    &fiber,
			Sugar:    &sugar,
			Sodium:   &sodium,
		},
		Meals: meals,
	}, nil
}

// resolveServing loads the serving for serving-based logs. Food membership
// is checked by the calculator, not here.
func (s *mealService) resolveServing(ctx context.Context, unitType string, servingID *uint) (*entities.FoodServing, error) {
	if unitType != domain.UnitTypeServing {
		return nil, nil
	}
	if servingID == nil {
		return nil, domain.ErrServingRequired
	}

	servingEntity, err := s.servingRepository.GetServingByID(ctx, *servingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrServingNotFound
		}
		return nil, err
	}
	return servingEntity, nil
}

func isValidMealType(mealType string) bool {
	for _, t := range domain.MealTypes {
		if t == mealType {
			return true
		}
	}
	return false
}

func parseMealDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return parsed, nil
}

func toMealLogResponse(log *entities.MealLog) domain.MealLogResponse {
	res := domain.MealLogResponse{
		ID:               log.ID,
		FoodID:           log.FoodID,
		ServingID:        log.ServingID,
		UnitType:         log.UnitType,
		OriginalQuantity: log.OriginalQuantity,
		LoggedGrams:      log.LoggedGrams,
		MealType:         log.MealType,
		Date:             log.Date.Format("2006-01-02"),
		Nutrition: domain.NutritionBreakdown{
			Calories: log.Calories,
			Protein:  log.Protein,
			Carbs:    log.Carbs,
			Fat:      log.Fat,
			Fiber:    log.Fiber,
			Sugar:    log.Sugar,
			Sodium:   log.Sodium,
		},
	}

	if log.Food != nil {
		res.FoodName = log.Food.Name
	}
	if log.Serving != nil {
		res.ServingName = log.Serving.ServingName
	}

	return res
}
