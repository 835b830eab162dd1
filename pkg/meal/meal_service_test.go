package meal

import (
	"context"
	"os"
	"testing"

	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/entities"
	"nutri-tracker-backend/pkg/food"
	"nutri-tracker-backend/pkg/serving"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMealTestDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	err = db.AutoMigrate(&entities.User{}, &entities.Food{}, &entities.FoodServing{}, &entities.MealLog{})
	assert.NoError(t, err)

	db.Exec("DELETE FROM meal_logs")
	db.Exec("UPDATE foods SET default_serving_id = NULL")
	db.Exec("DELETE FROM food_servings")
	db.Exec("DELETE FROM foods")
	db.Exec("DELETE FROM users")

	return db
}

type mealFixture struct {
	service MealService
	db      *gorm.DB
	user    *entities.User
	food    *entities.Food
	cup     *entities.FoodServing
}

func newMealFixture(t *testing.T) mealFixture {
	db := setupMealTestDB(t)

	u := &entities.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	assert.NoError(t, db.Create(u).Error)

	f := &entities.Food{Name: "Basmati Rice", Category: "Grains", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3}
	assert.NoError(t, db.Create(f).Error)

	cup := &entities.FoodServing{FoodID: f.ID, ServingName: "1 cup", Unit: "cup", GramsPerUnit: 195}
	assert.NoError(t, db.Create(cup).Error)

	service := NewMealService(
		NewMealRepository(db),
		food.NewFoodRepository(db),
		serving.NewServingRepository(db),
	)

	return mealFixture{service: service, db: db, user: u, food: f, cup: cup}
}

func TestLogMealGramsAndServingEquivalent(t *testing.T) {
	fx := newMealFixture(t)
	ctx := context.Background()

	byGrams, err := fx.service.LogMeal(ctx, domain.LogMealRequest{
		FoodID:   fx.food.ID,
		UnitType: domain.UnitTypeGrams,
		Quantity: 253.5,
		MealType: "lunch",
		Date:     "2026-09-01",
	}, fx.user.ID)
	assert.NoError(t, err)

	byServing, err := fx.service.LogMeal(ctx, domain.LogMealRequest{
		FoodID:    fx.food.ID,
		UnitType:  domain.UnitTypeServing,
		Quantity:  1.3,
		ServingID: &fx.cup.ID,
		MealType:  "dinner",
		Date:      "2026-09-01",
	}, fx.user.ID)
	assert.NoError(t, err)

	assert.Equal(t, 253.5, byGrams.LoggedGrams)
	assert.InDelta(t, 253.5, byServing.LoggedGrams, 1e-9)
	assert.InDelta(t, byGrams.Nutrition.Calories, byServing.Nutrition.Calories, 1e-9)
	assert.InDelta(t, byGrams.Nutrition.Protein, byServing.Nutrition.Protein, 1e-9)

	// What the user typed survives the conversion.
	assert.Equal(t, 253.5, byGrams.OriginalQuantity)
	assert.Equal(t, 1.3, byServing.OriginalQuantity)
	assert.Equal(t, "1 cup", byServing.ServingName)
}

func TestLogMealServingRequiresServingID(t *testing.T) {
	fx := newMealFixture(t)

	_, err := fx.service.LogMeal(context.Background(), domain.LogMealRequest{
		FoodID:   fx.food.ID,
		UnitType: domain.UnitTypeServing,
		Quantity: 1,
		MealType: "lunch",
	}, fx.user.ID)
	assert.ErrorIs(t, err, domain.ErrServingRequired)
}

func TestUpdateMealLogRecomputesSnapshot(t *testing.T) {
	fx := newMealFixture(t)
	ctx := context.Background()

	logged, err := fx.service.LogMeal(ctx, domain.LogMealRequest{
		FoodID:    fx.food.ID,
		UnitType:  domain.UnitTypeServing,
		Quantity:  1,
		ServingID: &fx.cup.ID,
		MealType:  "lunch",
		Date:      "2026-09-01",
	}, fx.user.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 253.5, logged.Nutrition.Calories, 1e-9)

	two := 2.0
	updated, err := fx.service.UpdateMealLog(ctx, logged.ID, domain.UpdateMealLogRequest{
		Quantity: &two,
	}, fx.user.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 390, updated.LoggedGrams, 1e-9)
	assert.InDelta(t, 507, updated.Nutrition.Calories, 1e-9)

	// Switching to grams drops the serving reference.
	hundred := 100.0
	updated, err = fx.service.UpdateMealLog(ctx, logged.ID, domain.UpdateMealLogRequest{
		UnitType: domain.UnitTypeGrams,
		Quantity: &hundred,
	}, fx.user.ID)
	assert.NoError(t, err)
	assert.Nil(t, updated.ServingID)
	assert.InDelta(t, 130, updated.Nutrition.Calories, 1e-9)
}

func TestDeleteMealLogOwnership(t *testing.T) {
	fx := newMealFixture(t)
	ctx := context.Background()

	other := &entities.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}
	assert.NoError(t, fx.db.Create(other).Error)

	logged, err := fx.service.LogMeal(ctx, domain.LogMealRequest{
		FoodID:   fx.food.ID,
		UnitType: domain.UnitTypeGrams,
		Quantity: 100,
		MealType: "snack",
	}, fx.user.ID)
	assert.NoError(t, err)

	err = fx.service.DeleteMealLog(ctx, logged.ID, other.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	assert.NoError(t, fx.service.DeleteMealLog(ctx, logged.ID, fx.user.ID))

	err = fx.service.DeleteMealLog(ctx, logged.ID, fx.user.ID)
	assert.ErrorIs(t, err, domain.ErrMealLogNotFound)
}

func TestGetDailySummaryTotals(t *testing.T) {
	fx := newMealFixture(t)
	ctx := context.Background()

	_, err := fx.service.LogMeal(ctx, domain.LogMealRequest{
		FoodID:   fx.food.ID,
		UnitType: domain.UnitTypeGrams,
		Quantity: 100,
		MealType: "breakfast",
		Date:     "2026-09-01",
	}, fx.user.ID)
	assert.NoError(t, err)

	_, err = fx.service.LogMeal(ctx, domain.LogMealRequest{
		FoodID:    fx.food.ID,
		UnitType:  domain.UnitTypeServing,
		Quantity:  1,
		ServingID: &fx.cup.ID,
		MealType:  "lunch",
		Date:      "2026-09-01",
	}, fx.user.ID)
	assert.NoError(t, err)

	// A log on another day stays out of the summary.
	_, err = fx.service.LogMeal(ctx, domain.LogMealRequest{
		FoodID:   fx.food.ID,
		UnitType: domain.UnitTypeGrams,
		Quantity: 500,
		MealType: "dinner",
		Date:     "2026-09-02",
	}, fx.user.ID)
	assert.NoError(t, err)

	date, err := parseMealDate("2026-09-01")
	assert.NoError(t, err)

	summary, err := fx.service.GetDailySummary(ctx, fx.user.ID, date)
	assert.NoError(t, err)
	assert.Equal(t, "2026-09-01", summary.Date)
	assert.Len(t, summary.Meals, 2)
	assert.InDelta(t, 130+253.5, summary.Consumed.Calories, 1e-9)
	assert.InDelta(t, 2.7+2.7*1.95, summary.Consumed.Protein, 1e-9)
}
