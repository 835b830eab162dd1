package meal

import (
	"context"
	"nutri-tracker-backend/entities"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// NutritionTotals aggregates the snapshot columns over a set of logs.
	NutritionTotals struct {
		Calories float64
		Protein  float64
		Carbs    float64
		Fat      float64
		Fiber    float64
		Sugar    float64
		Sodium   float64
	}

	MealRepository interface {
		CreateMealLog(ctx context.Context, log *entities.MealLog) error
		GetMealLogByID(ctx context.Context, id uint) (*entities.MealLog, error)
		UpdateMealLog(ctx context.Context, log *entities.MealLog) error
		DeleteMealLog(ctx context.Context, id uint) error
		GetMealLogsByUserAndDate(ctx context.Context, userID uint, date time.Time) ([]*entities.MealLog, error)
		GetMealLogsByUserAndRange(ctx context.Context, userID uint, start, end time.Time) ([]*entities.MealLog, error)
		SumNutritionByUserAndDate(ctx context.Context, userID uint, date time.Time) (NutritionTotals, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) CreateMealLog(ctx context.Context, log *entities.MealLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *mealRepository) GetMealLogByID(ctx context.Context, id uint) (*entities.MealLog, error) {
	var log entities.MealLog
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Serving").
		Where("id = ?", id).
		First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *mealRepository) UpdateMealLog(ctx context.Context, log *entities.MealLog) error {
	// Preloaded associations stay read-only; only the log row is written.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(log).Error
}

func (r *mealRepository) DeleteMealLog(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MealLog{}).Error
}

func (r *mealRepository) GetMealLogsByUserAndDate(ctx context.Context, userID uint, date time.Time) ([]*entities.MealLog, error) {
	var logs []*entities.MealLog
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Serving").
		Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).
		Order("created_at asc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *mealRepository) GetMealLogsByUserAndRange(ctx context.Context, userID uint, start, end time.Time) ([]*entities.MealLog, error) {
	var logs []*entities.MealLog
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Serving").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("date asc, created_at asc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *mealRepository) SumNutritionByUserAndDate(ctx context.Context, userID uint, date time.Time) (NutritionTotals, error) {
	var totals NutritionTotals
	err := r.db.WithContext(ctx).Model(&entities.MealLog{}).
		Select(
			"COALESCE(SUM(calories), 0) AS calories, " +
				"COALESCE(SUM(protein), 0) AS protein, " +
				"COALESCE(SUM(carbs), 0) AS carbs, " +
				"COALESCE(SUM(fat), 0) AS fat, " +
				"COALESCE(SUM(fiber), 0) AS fiber, " +
				"COALESCE(SUM(sugar), 0) AS sugar, " +
				"COALESCE(SUM(sodium), 0) AS sodium",
		).
		Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).
		Scan(&totals).Error
	return totals, err
}
