package serving

import (
	"context"
	"errors"
	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/entities"
	"nutri-tracker-backend/pkg/food"
	"strings"

	"gorm.io/gorm"
)

type (
	ServingService interface {
		AddServing(ctx context.Context, foodID uint, req domain.AddServingRequest, createdBy *uint) (domain.ServingResponse, error)
		UpdateServing(ctx context.Context, servingID uint, req domain.UpdateServingRequest) (domain.ServingResponse, error)
		DeleteServing(ctx context.Context, servingID uint) error
		GetServings(ctx context.Context, foodID uint) ([]domain.ServingResponse, error)
		SetDefaultServing(ctx context.Context, foodID uint, servingID *uint) error
		EnsureStandardServing(ctx context.Context, foodID uint) (domain.ServingResponse, error)
	}

	servingService struct {
		servingRepository ServingRepository
		foodRepository    food.FoodRepository
	}
)

func NewServingService(servingRepository ServingRepository, foodRepository food.FoodRepository) ServingService {
	return &servingService{
		servingRepository: servingRepository,
		foodRepository:    foodRepository,
	}
}

func (s *servingService) AddServing(ctx context.Context, foodID uint, req domain.AddServingRequest, createdBy *uint) (domain.ServingResponse, error) {
	if req.GramsPerUnit <= 0 {
		return domain.ServingResponse{}, domain.ErrInvalidGrams
	}

	servingName := strings.TrimSpace(req.ServingName)
	unit := strings.TrimSpace(req.Unit)
	if servingName == "" {
		return domain.ServingResponse{}, domain.ErrServingNameEmpty
	}
	if unit == "" {
		return domain.ServingResponse{}, domain.ErrServingUnitEmpty
	}

	foodEntity, err := s.foodRepository.GetFoodByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ServingResponse{}, domain.ErrFoodNotFound
		}
		return domain.ServingResponse{}, err
	}

	serving := &entities.FoodServing{
		FoodID:       foodEntity.ID,
		ServingName:  servingName,
		Unit:         unit,
		GramsPerUnit: req.GramsPerUnit,
		CreatedBy:    createdBy,
	}

	// The unique index on (food_id, serving_name, unit) is the source of
	// truth; a concurrent insert surfaces here as a duplicated-key error.
	if err := s.servingRepository.AddServing(ctx, serving); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ServingResponse{}, domain.ErrDuplicateServing
		}
		return domain.ServingResponse{}, err
	}

	return s.toServingResponse(serving, foodEntity), nil
}

func (s *servingService) UpdateServing(ctx context.Context, servingID uint, req domain.UpdateServingRequest) (domain.ServingResponse, error) {
	serving, err := s.servingRepository.GetServingByID(ctx, servingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ServingResponse{}, domain.ErrServingNotFound
		}
		return domain.ServingResponse{}, err
	}

	if req.ServingName != "" {
		serving.ServingName = strings.TrimSpace(req.ServingName)
	}
	if req.Unit != "" {
		serving.Unit = strings.TrimSpace(req.Unit)
	}
	if req.GramsPerUnit != nil {
		if *req.GramsPerUnit <= 0 {
			return domain.ServingResponse{}, domain.ErrInvalidGrams
		}
		serving.GramsPerUnit = *req.GramsPerUnit
	}

	if err := s.servingRepository.UpdateServing(ctx, serving); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ServingResponse{}, domain.ErrDuplicateServing
		}
		return domain.ServingResponse{}, err
	}

	foodEntity, err := s.foodRepository.GetFoodByID(ctx, serving.FoodID)
	if err != nil {
		return domain.ServingResponse{}, err
	}

	return s.toServingResponse(serving, foodEntity), nil
}

func (s *servingService) DeleteServing(ctx context.Context, servingID uint) error {
	serving, err := s.servingRepository.GetServingByID(ctx, servingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrServingNotFound
		}
		return err
	}

	foodEntity, err := s.foodRepository.GetFoodByID(ctx, serving.FoodID)
	if err != nil {
		return err
	}

	if foodEntity.DefaultServingID != nil && *foodEntity.DefaultServingID == serving.ID {
		return domain.ErrServingIsDefault
	}

	return s.servingRepository.DeleteServing(ctx, serving.ID)
}

func (s *servingService) GetServings(ctx context.Context, foodID uint) ([]domain.ServingResponse, error) {
	foodEntity, err := s.foodRepository.GetFoodByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}

	servings, err := s.servingRepository.GetServingsByFood(ctx, foodEntity.ID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ServingResponse, 0, len(servings))
	for _, serving := range servings {
		result = append(result, s.toServingResponse(serving, foodEntity))
	}

	return result, nil
}

// SetDefaultServing points the food's default at one of its own servings,
// or clears it when servingID is nil. A serving of another food is refused.
func (s *servingService) SetDefaultServing(ctx context.Context, foodID uint, servingID *uint) error {
	foodEntity, err := s.foodRepository.GetFoodByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}

	if servingID == nil {
		return s.servingRepository.SetDefaultServing(ctx, foodEntity.ID, nil)
	}

	serving, err := s.servingRepository.GetServingByID(ctx, *servingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrServingNotFound
		}
		return err
	}

	if serving.FoodID != foodEntity.ID {
		return domain.ErrServingMismatch
	}

	return s.servingRepository.SetDefaultServing(ctx, foodEntity.ID, &serving.ID)
}

// EnsureStandardServing guarantees the food has a "100 g" serving and a
// default serving. Safe to call repeatedly; the natural-key lookup and the
// unique index keep it from ever creating a second one.
func (s *servingService) EnsureStandardServing(ctx context.Context, foodID uint) (domain.ServingResponse, error) {
	foodEntity, err := s.foodRepository.GetFoodByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ServingResponse{}, domain.ErrFoodNotFound
		}
		return domain.ServingResponse{}, err
	}

	standard, err := s.servingRepository.GetServingByNaturalKey(ctx, foodEntity.ID, domain.StandardServingName, domain.StandardServingUnit)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		standard = &entities.FoodServing{
			FoodID:       foodEntity.ID,
			ServingName:  domain.StandardServingName,
			Unit:         domain.StandardServingUnit,
			GramsPerUnit: domain.StandardServingGrams,
		}
		if err := s.servingRepository.AddServing(ctx, standard); err != nil {
			// Lost a race against another creator; the row now exists.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				standard, err = s.servingRepository.GetServingByNaturalKey(ctx, foodEntity.ID, domain.StandardServingName, domain.StandardServingUnit)
				if err != nil {
					return domain.ServingResponse{}, err
				}
			} else {
				return domain.ServingResponse{}, err
			}
		}
	} else if err != nil {
		return domain.ServingResponse{}, err
	}

	if foodEntity.DefaultServingID == nil {
		if err := s.servingRepository.SetDefaultServing(ctx, foodEntity.ID, &standard.ID); err != nil {
			return domain.ServingResponse{}, err
		}
		foodEntity.DefaultServingID = &standard.ID
	}

	return s.toServingResponse(standard, foodEntity), nil
}

func (s *servingService) toServingResponse(serving *entities.FoodServing, foodEntity *entities.Food) domain.ServingResponse {
	return domain.ServingResponse{
		ID:           serving.ID,
		FoodID:       serving.FoodID,
		ServingName:  serving.ServingName,
		Unit:         serving.Unit,
		GramsPerUnit: serving.GramsPerUnit,
		IsDefault:    foodEntity.DefaultServingID != nil && *foodEntity.DefaultServingID == serving.ID,
		CreatedAt:    serving.CreatedAt,
	}
}
