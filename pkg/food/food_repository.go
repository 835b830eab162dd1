package food

import (
	"context"
	"nutri-tracker-backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id uint) (*entities.Food, error)
		GetFoodWithServings(ctx context.Context, id uint) (*entities.Food, error)
		UpdateFood(ctx context.Context, food *entities.Food) error
		DeleteFood(ctx context.Context, id uint) error
		GetFoods(ctx context.Context, search, category string, page, limit int) ([]*entities.Food, int64, error)
		CountMealLogs(ctx context.Context, foodID uint) (int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id uint) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetFoodWithServings(ctx context.Context, id uint) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).
		Preload("Servings", func(db *gorm.DB) *gorm.DB {
			return db.Order("serving_name asc")
		}).
		Where("id = ?", id).
		First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) DeleteFood(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("Servings").Delete(&entities.Food{ID: id}).Error
}

func (r *foodRepository) GetFoods(ctx context.Context, search, category string, page, limit int) ([]*entities.Food, int64, error) {
	var foods []*entities.Food
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Food{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR brand ILIKE ?", pattern, pattern)
	}
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&foods).Error; err != nil {
		return nil, 0, err
	}

	return foods, count, nil
}

func (r *foodRepository) CountMealLogs(ctx context.Context, foodID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.MealLog{}).
		Where("food_id = ?", foodID).
		Count(&count).Error
	return count, err
}
