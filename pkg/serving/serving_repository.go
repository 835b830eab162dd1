package serving

import (
	"context"
	"nutri-tracker-backend/entities"

	"gorm.io/gorm"
)

type (
	ServingRepository interface {
		AddServing(ctx context.Context, serving *entities.FoodServing) error
		GetServingByID(ctx context.Context, id uint) (*entities.FoodServing, error)
		GetServingByNaturalKey(ctx context.Context, foodID uint, servingName, unit string) (*entities.FoodServing, error)
		GetServingsByFood(ctx context.Context, foodID uint) ([]*entities.FoodServing, error)
		UpdateServing(ctx context.Context, serving *entities.FoodServing) error
		DeleteServing(ctx context.Context, id uint) error
		SetDefaultServing(ctx context.Context, foodID uint, servingID *uint) error
	}

	servingRepository struct {
		db *gorm.DB
	}
)

func NewServingRepository(db *gorm.DB) ServingRepository {
	return &servingRepository{db: db}
}

func (r *servingRepository) AddServing(ctx context.Context, serving *entities.FoodServing) error {
	return r.db.WithContext(ctx).Create(serving).Error
}

func (r *servingRepository) GetServingByID(ctx context.Context, id uint) (*entities.FoodServing, error) {
	var serving entities.FoodServing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&serving).Error; err != nil {
		return nil, err
	}
	return &serving, nil
}

func (r *servingRepository) GetServingByNaturalKey(ctx context.Context, foodID uint, servingName, unit string) (*entities.FoodServing, error) {
	var serving entities.FoodServing
	if err := r.db.WithContext(ctx).
		Where("food_id = ? AND serving_name = ? AND unit = ?", foodID, servingName, unit).
		First(&serving).Error; err != nil {
		return nil, err
	}
	return &serving, nil
}

func (r *servingRepository) GetServingsByFood(ctx context.Context, foodID uint) ([]*entities.FoodServing, error) {
	var servings []*entities.FoodServing
	if err := r.db.WithContext(ctx).
		Where("food_id = ?", foodID).
		Order("serving_name asc").
		Find(&servings).Error; err != nil {
		return nil, err
	}
	return servings, nil
}

func (r *servingRepository) UpdateServing(ctx context.Context, serving *entities.FoodServing) error {
	return r.db.WithContext(ctx).Save(serving).Error
}

func (r *servingRepository) DeleteServing(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodServing{}).Error
}

func (r *servingRepository) SetDefaultServing(ctx context.Context, foodID uint, servingID *uint) error {
	return r.db.WithContext(ctx).Model(&entities.Food{}).
		Where("id = ?", foodID).
		Update("default_serving_id", servingID).Error
}
