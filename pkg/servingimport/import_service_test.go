package servingimport

import (
	"context"
	"os"
	"strconv"
	"strings"
	"testing"

	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/entities"
	"nutri-tracker-backend/pkg/food"
	"nutri-tracker-backend/pkg/serving"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestParseCSVMissingHeader(t *testing.T) {
	_, err := parseCSV(strings.NewReader("food_key,serving_name,unit\n1,1 cup,cup\n"))
	assert.ErrorIs(t, err, domain.ErrMissingCSVHeader)
}

func TestParseCSVEmpty(t *testing.T) {
	_, err := parseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrEmptyCSV)

	_, err = parseCSV(strings.NewReader("food_key,serving_name,unit,grams_per_unit\n"))
	assert.ErrorIs(t, err, domain.ErrEmptyCSV)
}

func TestParseCSVOptionalIsDefault(t *testing.T) {
	rows, err := parseCSV(strings.NewReader(
		"food_key,serving_name,unit,grams_per_unit\n1,1 cup,cup,195\n"))
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.False(t, rows[0].IsDefault)

	rows, err = parseCSV(strings.NewReader(
		"food_key,serving_name,unit,grams_per_unit,is_default\n1,1 cup,cup,195,true\n2,1 slice,slice,25,0\n"))
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.True(t, rows[0].IsDefault)
	assert.False(t, rows[1].IsDefault)
}

func foodKey(f *entities.Food) string {
	return strconv.FormatUint(uint64(f.ID), 10)
}

func setupImportTestDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	err = db.AutoMigrate(&entities.Food{}, &entities.FoodServing{}, &entities.ServingImportJob{})
	assert.NoError(t, err)

	db.Exec("UPDATE foods SET default_serving_id = NULL")
	db.Exec("DELETE FROM food_servings")
	db.Exec("DELETE FROM foods")
	db.Exec("DELETE FROM serving_import_jobs")

	return db
}

func newImportFixture(t *testing.T) (ImportService, serving.ServingRepository, *gorm.DB) {
	db := setupImportTestDB(t)
	foodRepository := food.NewFoodRepository(db)
	servingRepository := serving.NewServingRepository(db)
	jobRepository := NewImportJobRepository(db)
	return NewImportService(jobRepository, servingRepository, foodRepository), servingRepository, db
}

func TestImportServingsPartialFailure(t *testing.T) {
	service, _, db := newImportFixture(t)

	f := &entities.Food{Name: "Basmati Rice", Category: "Grains", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3}
	assert.NoError(t, db.Create(f).Error)

	csvBody := "food_key,serving_name,unit,grams_per_unit,is_default\n" +
		foodKey(f) + ",1 cup,cup,195,true\n" +
		"999999,1 slice,slice,25,false\n" +
		foodKey(f) + ",1 bowl,bowl,-10,false\n"

	result, err := service.ImportServings(context.Background(), strings.NewReader(csvBody), "servings.csv", nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 2, result.Failed)

	// Row numbers are file line numbers: the header is line 1.
	assert.Len(t, result.Errors, 2)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, 4, result.Errors[1].Row)

	var count int64
	db.Model(&entities.FoodServing{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestImportServingsIdempotentUpsert(t *testing.T) {
	service, servingRepository, db := newImportFixture(t)

	f := &entities.Food{Name: "Basmati Rice", Category: "Grains", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3}
	assert.NoError(t, db.Create(f).Error)

	csvBody := "food_key,serving_name,unit,grams_per_unit\n" + foodKey(f) + ",1 cup,cup,195\n"

	first, err := service.ImportServings(context.Background(), strings.NewReader(csvBody), "servings.csv", nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Succeeded)

	// Re-running with a corrected value updates in place.
	corrected := "food_key,serving_name,unit,grams_per_unit\n" + foodKey(f) + ",1 cup,cup,200\n"
	second, err := service.ImportServings(context.Background(), strings.NewReader(corrected), "servings.csv", nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, second.Succeeded)

	var count int64
	db.Model(&entities.FoodServing{}).Count(&count)
	assert.EqualValues(t, 1, count)

	row, err := servingRepository.GetServingByNaturalKey(context.Background(), f.ID, "1 cup", "cup")
	assert.NoError(t, err)
	assert.Equal(t, 200.0, row.GramsPerUnit)
}

func TestImportServingsJobPersisted(t *testing.T) {
	service, _, db := newImportFixture(t)

	f := &entities.Food{Name: "Basmati Rice", Category: "Grains", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3}
	assert.NoError(t, db.Create(f).Error)

	csvBody := "food_key,serving_name,unit,grams_per_unit\n" +
		foodKey(f) + ",1 cup,cup,195\n" +
		"999999,1 slice,slice,25\n"

	result, err := service.ImportServings(context.Background(), strings.NewReader(csvBody), "servings.csv", nil)
	assert.NoError(t, err)

	job, err := service.GetImportJob(context.Background(), result.JobID)
	assert.NoError(t, err)
	assert.Equal(t, "completed", job.Status)
	assert.Equal(t, 2, job.Total)
	assert.Equal(t, 1, job.Succeeded)
	assert.Equal(t, 1, job.Failed)
	assert.Len(t, job.Errors, 1)
	assert.Equal(t, "servings.csv", job.Filename)
	assert.NotNil(t, job.FinishedAt)
}

func TestGetImportJobNotFound(t *testing.T) {
	service, _, _ := newImportFixture(t)

	_, err := service.GetImportJob(context.Background(), "7f9c24e8-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrImportJobNotFound)
}
