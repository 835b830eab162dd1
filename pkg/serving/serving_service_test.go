package serving

import (
	"context"
	"os"
	"testing"

	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/entities"
	"nutri-tracker-backend/pkg/food"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupServingTestDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	err = db.AutoMigrate(&entities.Food{}, &entities.FoodServing{})
	assert.NoError(t, err)

	db.Exec("UPDATE foods SET default_serving_id = NULL")
	db.Exec("DELETE FROM food_servings")
	db.Exec("DELETE FROM foods")

	return db
}

func newServingFixture(t *testing.T) (ServingService, food.FoodRepository, *gorm.DB) {
	db := setupServingTestDB(t)
	foodRepository := food.NewFoodRepository(db)
	servingRepository := NewServingRepository(db)
	return NewServingService(servingRepository, foodRepository), foodRepository, db
}

func createTestFood(t *testing.T, db *gorm.DB, name string) *entities.Food {
	f := &entities.Food{
		Name:     name,
		Category: "Grains",
		Calories: 130,
		Protein:  2.7,
		Carbs:    28,
		Fat:      0.3,
	}
	assert.NoError(t, db.Create(f).Error)
	return f
}

func TestAddServingRejectsNonPositiveGrams(t *testing.T) {
	service, _, db := newServingFixture(t)
	f := createTestFood(t, db, "Basmati Rice")

	_, err := service.AddServing(context.Background(), f.ID, domain.AddServingRequest{
		ServingName:  "1 cup",
		Unit:         "cup",
		GramsPerUnit: 0,
	}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidGrams)

	_, err = service.AddServing(context.Background(), f.ID, domain.AddServingRequest{
		ServingName:  "1 cup",
		Unit:         "cup",
		GramsPerUnit: -5,
	}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidGrams)
}

func TestAddServingDuplicateNaturalKey(t *testing.T) {
	service, _, db := newServingFixture(t)
	f := createTestFood(t, db, "Basmati Rice")

	req := domain.AddServingRequest{
		ServingName:  "1 cup",
		Unit:         "cup",
		GramsPerUnit: 195,
	}

	_, err := service.AddServing(context.Background(), f.ID, req, nil)
	assert.NoError(t, err)

	_, err = service.AddServing(context.Background(), f.ID, req, nil)
	assert.ErrorIs(t, err, domain.ErrDuplicateServing)

	// Same name and unit on another food is a different natural key.
	other := createTestFood(t, db, "Jasmine Rice")
	_, err = service.AddServing(context.Background(), other.ID, req, nil)
	assert.NoError(t, err)
}

func TestEnsureStandardServingIdempotent(t *testing.T) {
	service, foodRepository, db := newServingFixture(t)
	f := createTestFood(t, db, "Basmati Rice")

	first, err := service.EnsureStandardServing(context.Background(), f.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.StandardServingName, first.ServingName)
	assert.Equal(t, domain.StandardServingUnit, first.Unit)
	assert.Equal(t, domain.StandardServingGrams, first.GramsPerUnit)
	assert.True(t, first.IsDefault)

	second, err := service.EnsureStandardServing(context.Background(), f.ID)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	servings, err := service.GetServings(context.Background(), f.ID)
	assert.NoError(t, err)
	assert.Len(t, servings, 1)

	reloaded, err := foodRepository.GetFoodByID(context.Background(), f.ID)
	assert.NoError(t, err)
	assert.NotNil(t, reloaded.DefaultServingID)
	assert.Equal(t, first.ID, *reloaded.DefaultServingID)
}

func TestEnsureStandardServingKeepsExistingDefault(t *testing.T) {
	service, foodRepository, db := newServingFixture(t)
	f := createTestFood(t, db, "Basmati Rice")

	cup, err := service.AddServing(context.Background(), f.ID, domain.AddServingRequest{
		ServingName:  "1 cup",
		Unit:         "cup",
		GramsPerUnit: 195,
	}, nil)
	assert.NoError(t, err)
	assert.NoError(t, service.SetDefaultServing(context.Background(), f.ID, &cup.ID))

	_, err = service.EnsureStandardServing(context.Background(), f.ID)
	assert.NoError(t, err)

	reloaded, err := foodRepository.GetFoodByID(context.Background(), f.ID)
	assert.NoError(t, err)
	assert.NotNil(t, reloaded.DefaultServingID)
	assert.Equal(t, cup.ID, *reloaded.DefaultServingID)
}

func TestSetDefaultServingCrossFood(t *testing.T) {
	service, _, db := newServingFixture(t)
	rice := createTestFood(t, db, "Basmati Rice")
	bread := createTestFood(t, db, "Wheat Bread")

	slice, err := service.AddServing(context.Background(), bread.ID, domain.AddServingRequest{
		ServingName:  "1 slice",
		Unit:         "slice",
		GramsPerUnit: 25,
	}, nil)
	assert.NoError(t, err)

	err = service.SetDefaultServing(context.Background(), rice.ID, &slice.ID)
	assert.ErrorIs(t, err, domain.ErrServingMismatch)
}

func TestSetDefaultServingClear(t *testing.T) {
	service, foodRepository, db := newServingFixture(t)
	f := createTestFood(t, db, "Basmati Rice")

	cup, err := service.AddServing(context.Background(), f.ID, domain.AddServingRequest{
		ServingName:  "1 cup",
		Unit:         "cup",
		GramsPerUnit: 195,
	}, nil)
	assert.NoError(t, err)

	assert.NoError(t, service.SetDefaultServing(context.Background(), f.ID, &cup.ID))
	assert.NoError(t, service.SetDefaultServing(context.Background(), f.ID, nil))

	reloaded, err := foodRepository.GetFoodByID(context.Background(), f.ID)
	assert.NoError(t, err)
	assert.Nil(t, reloaded.DefaultServingID)
}

func TestDeleteDefaultServingBlocked(t *testing.T) {
	service, _, db := newServingFixture(t)
	f := createTestFood(t, db, "Basmati Rice")

	cup, err := service.AddServing(context.Background(), f.ID, domain.AddServingRequest{
		ServingName:  "1 cup",
		Unit:         "cup",
		GramsPerUnit: 195,
	}, nil)
	assert.NoError(t, err)
	assert.NoError(t, service.SetDefaultServing(context.Background(), f.ID, &cup.ID))

	err = service.DeleteServing(context.Background(), cup.ID)
	assert.ErrorIs(t, err, domain.ErrServingIsDefault)

	// Clearing the default unblocks the delete.
	assert.NoError(t, service.SetDefaultServing(context.Background(), f.ID, nil))
	assert.NoError(t, service.DeleteServing(context.Background(), cup.ID))
}

func TestUpdateServingValidatesGrams(t *testing.T) {
	service, _, db := newServingFixture(t)
	f := createTestFood(t, db, "Basmati Rice")

	cup, err := service.AddServing(context.Background(), f.ID, domain.AddServingRequest{
		ServingName:  "1 cup",
		Unit:         "cup",
		GramsPerUnit: 195,
	}, nil)
	assert.NoError(t, err)

	bad := -1.0
	_, err = service.UpdateServing(context.Background(), cup.ID, domain.UpdateServingRequest{GramsPerUnit: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidGrams)

	good := 200.0
	updated, err := service.UpdateServing(context.Background(), cup.ID, domain.UpdateServingRequest{GramsPerUnit: &good})
	assert.NoError(t, err)
	assert.Equal(t, 200.0, updated.GramsPerUnit)
}
