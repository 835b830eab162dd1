package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/internal/utils/storage"
	"nutri-tracker-backend/pkg/food"
	"nutri-tracker-backend/pkg/meal"
	"strconv"
	"time"
)

type (
	ExportService interface {
		ExportMealLogs(ctx context.Context, userID uint, start, end time.Time) (domain.ExportResponse, error)
		ExportFoodCatalog(ctx context.Context) (domain.ExportResponse, error)
	}

	exportService struct {
		mealRepository meal.MealRepository
		foodRepository food.FoodRepository
		s3             storage.AwsS3
	}
)

func NewExportService(mealRepository meal.MealRepository, foodRepository food.FoodRepository, s3 storage.AwsS3) ExportService {
	return &exportService{
		mealRepository: mealRepository,
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func (s *exportService) ExportMealLogs(ctx context.Context, userID uint, start, end time.Time) (domain.ExportResponse, error) {
	logs, err := s.mealRepository.GetMealLogsByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return domain.ExportResponse{}, err
	}
	if len(logs) == 0 {
		return domain.ExportResponse{}, domain.ErrEmptyExport
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "meal_type", "food", "unit_type", "original_quantity", "logged_grams", "calories", "protein", "carbs", "fat", "fiber", "sugar", "sodium"}
	if err := w.Write(header); err != nil {
		return domain.ExportResponse{}, err
	}

	for _, log := range logs {
		foodName := ""
		if log.Food != nil {
			foodName = log.Food.Name
		}

		record := []string{
			log.Date.Format("2006-01-02"),
			log.MealType,
			foodName,
			log.UnitType,
			formatFloat(log.OriginalQuantity),
			formatFloat(log.LoggedGrams),
			formatFloat(log.Calories),
			formatFloat(log.Protein),
			formatFloat(log.Carbs),
			formatFloat(log.Fat),
			formatOptional(log.Fiber),
			formatOptional(log.Sugar),
			formatOptional(log.Sodium),
		}
		if err := w.Write(record); err != nil {
			return domain.ExportResponse{}, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return domain.ExportResponse{}, err
	}

	key := fmt.Sprintf("exports/meal-logs/%d-%d.csv", userID, time.Now().UnixNano())
	url, err := s.s3.UploadFile(ctx, key, &buf, "text/csv")
	if err != nil {
		return domain.ExportResponse{}, err
	}

	return domain.ExportResponse{FileURL: url, RowCount: len(logs)}, nil
}

func (s *exportService) ExportFoodCatalog(ctx context.Context) (domain.ExportResponse, error) {
	// Walk the whole catalog in pages to keep memory bounded.
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "name", "brand", "category", "calories", "protein", "carbs", "fat", "fiber", "sugar", "sodium", "default_serving_id"}
	if err := w.Write(header); err != nil {
		return domain.ExportResponse{}, err
	}

	rows := 0
	for page := 1; ; page++ {
		foods, _, err := s.foodRepository.GetFoods(ctx, "", "", page, 500)
		if err != nil {
			return domain.ExportResponse{}, err
		}
		if len(foods) == 0 {
			break
		}

		for _, f := range foods {
			defaultServing := ""
			if f.DefaultServingID != nil {
				defaultServing = strconv.FormatUint(uint64(*f.DefaultServingID), 10)
			}

			record := []string{
				strconv.FormatUint(uint64(f.ID), 10),
				f.Name,
				f.Brand,
				f.Category,
				formatFloat(f.Calories),
				formatFloat(f.Protein),
				formatFloat(f.Carbs),
				formatFloat(f.Fat),
				formatOptional(f.Fiber),
				formatOptional(f.Sugar),
				formatOptional(f.Sodium),
				defaultServing,
			}
			if err := w.Write(record); err != nil {
				return domain.ExportResponse{}, err
			}
			rows++
		}
	}

	if rows == 0 {
		return domain.ExportResponse{}, domain.ErrEmptyExport
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return domain.ExportResponse{}, err
	}

	key := fmt.Sprintf("exports/foods/catalog-%d.csv", time.Now().UnixNano())
	url, err := s.s3.UploadFile(ctx, key, &buf, "text/csv")
	if err != nil {
		return domain.ExportResponse{}, err
	}

	return domain.ExportResponse{FileURL: url, RowCount: rows}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
