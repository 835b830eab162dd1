package goal

import (
	"context"
	"nutri-tracker-backend/entities"

	"gorm.io/gorm"
)

type (
	GoalRepository interface {
		CreateGoal(ctx context.Context, goal *entities.NutritionGoal) error
		GetActiveGoal(ctx context.Context, userID uint) (*entities.NutritionGoal, error)
		DeactivateGoals(ctx context.Context, userID uint) error
		DeleteGoal(ctx context.Context, id uint) error
	}

	goalRepository struct {
		db *gorm.DB
	}
)

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

// CreateGoal inserts the new goal and retires any previously active one in
// the same transaction, keeping at most one active goal per user.
func (r *goalRepository) CreateGoal(ctx context.Context, goal *entities.NutritionGoal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.NutritionGoal{}).
			Where("user_id = ? AND is_active = ?", goal.UserID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		goal.IsActive = true
		return tx.Create(goal).Error
	})
}

func (r *goalRepository) GetActiveGoal(ctx context.Context, userID uint) (*entities.NutritionGoal, error) {
	var goal entities.NutritionGoal
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepository) DeactivateGoals(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&entities.NutritionGoal{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false).Error
}

func (r *goalRepository) DeleteGoal(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.NutritionGoal{}).Error
}
