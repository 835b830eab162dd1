package servingimport

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/entities"
	"nutri-tracker-backend/pkg/food"
	"nutri-tracker-backend/pkg/serving"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ImportService interface {
		ImportServings(ctx context.Context, r io.Reader, filename string, createdBy *uint) (domain.BatchResult, error)
		GetImportJob(ctx context.Context, jobID string) (domain.ImportJobResponse, error)
	}

	importService struct {
		jobRepository     ImportJobRepository
		servingRepository serving.ServingRepository
		foodRepository    food.FoodRepository
	}
)

func NewImportService(jobRepository ImportJobRepository, servingRepository serving.ServingRepository, foodRepository food.FoodRepository) ImportService {
	return &importService{
		jobRepository:     jobRepository,
		servingRepository: servingRepository,
		foodRepository:    foodRepository,
	}
}

// ImportServings reconciles a CSV of serving definitions against the
// registry. Rows are upserted on the (food_id, serving_name, unit) natural
// key, so re-running the same file corrects values without creating
// duplicates. Row-level problems are collected and reported; only an
// unreadable input fails the batch.
func (s *importService) ImportServings(ctx context.Context, r io.Reader, filename string, createdBy *uint) (domain.BatchResult, error) {
	rows, err := parseCSV(r)
	if err != nil {
		return domain.BatchResult{}, err
	}

	result := domain.BatchResult{
		JobID: uuid.New().String(),
		Total: len(rows),
	}

	for i, row := range rows {
		// Row numbers are 1-based and skip the header line.
		rowNumber := i + 2
		if err := s.processRow(ctx, row, createdBy); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, domain.RowError{
				Row:     rowNumber,
				Message: err.Error(),
			})
			continue
		}
		result.Succeeded++
	}

	if err := s.persistJob(ctx, result, filename, createdBy); err != nil {
		return domain.BatchResult{}, err
	}

	return result, nil
}

func (s *importService) processRow(ctx context.Context, row domain.ServingImportRow, createdBy *uint) error {
	servingName := strings.TrimSpace(row.ServingName)
	unit := strings.TrimSpace(row.Unit)

	if servingName == "" {
		return domain.ErrServingNameEmpty
	}
	if unit == "" {
		return domain.ErrServingUnitEmpty
	}
	if row.GramsPerUnit <= 0 {
		return domain.ErrInvalidGrams
	}

	foodID, err := strconv.ParseUint(strings.TrimSpace(row.FoodKey), 10, 32)
	if err != nil {
		return domain.ErrUnknownFoodKey
	}

	foodEntity, err := s.foodRepository.GetFoodByID(ctx, uint(foodID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUnknownFoodKey
		}
		return err
	}

	existing, err := s.servingRepository.GetServingByNaturalKey(ctx, foodEntity.ID, servingName, unit)
	switch {
	case err == nil:
		existing.GramsPerUnit = row.GramsPerUnit
		if err := s.servingRepository.UpdateServing(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		existing = &entities.FoodServing{
			FoodID:       foodEntity.ID,
			ServingName:  servingName,
			Unit:         unit,
			GramsPerUnit: row.GramsPerUnit,
			CreatedBy:    createdBy,
		}
		if err := s.servingRepository.AddServing(ctx, existing); err != nil {
			// A concurrent import won the insert; fall back to update.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				existing, err = s.servingRepository.GetServingByNaturalKey(ctx, foodEntity.ID, servingName, unit)
				if err != nil {
					return err
				}
				existing.GramsPerUnit = row.GramsPerUnit
				if err := s.servingRepository.UpdateServing(ctx, existing); err != nil {
					return err
				}
			} else {
				return err
			}
		}
	default:
		return err
	}

	if row.IsDefault {
		if err := s.servingRepository.SetDefaultServing(ctx, foodEntity.ID, &existing.ID); err != nil {
			return err
		}
	}

	return nil
}

func (s *importService) persistJob(ctx context.Context, result domain.BatchResult, filename string, createdBy *uint) error {
	rowErrors, err := json.Marshal(result.Errors)
	if err != nil {
		return err
	}

	now := time.Now()
	job := &entities.ServingImportJob{
		JobID:         uuid.MustParse(result.JobID),
		Filename:      filename,
		TotalRows:     result.Total,
		SucceededRows: result.Succeeded,
		FailedRows:    result.Failed,
		Status:        "completed",
		RowErrors:     string(rowErrors),
		CreatedBy:     createdBy,
		FinishedAt:    &now,
	}

	return s.jobRepository.CreateJob(ctx, job)
}

func (s *importService) GetImportJob(ctx context.Context, jobID string) (domain.ImportJobResponse, error) {
	job, err := s.jobRepository.GetJobByJobID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ImportJobResponse{}, domain.ErrImportJobNotFound
		}
		return domain.ImportJobResponse{}, err
	}

	var rowErrors []domain.RowError
	if job.RowErrors != "" {
		if err := json.Unmarshal([]byte(job.RowErrors), &rowErrors); err != nil {
			return domain.ImportJobResponse{}, err
		}
	}

	return domain.ImportJobResponse{
		JobID:      job.JobID.String(),
		Filename:   job.Filename,
		Total:      job.TotalRows,
		Succeeded:  job.SucceededRows,
		Failed:     job.FailedRows,
		Status:     job.Status,
		Errors:     rowErrors,
		FinishedAt: job.FinishedAt,
	}, nil
}

func parseCSV(r io.Reader) ([]domain.ServingImportRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domain.ErrEmptyCSV
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range domain.ServingImportHeaders {
		if required == "is_default" {
			continue // optional column
		}
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingCSVHeader, required)
		}
	}

	var rows []domain.ServingImportRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := domain.ServingImportRow{
			FoodKey:     field(record, index, "food_key"),
			ServingName: field(record, index, "serving_name"),
			Unit:        field(record, index, "unit"),
			IsDefault:   isTruthy(field(record, index, "is_default")),
		}
		// A non-numeric grams value flows through as zero and is rejected
		// per row, not per batch.
		row.GramsPerUnit, _ = strconv.ParseFloat(strings.TrimSpace(field(record, index, "grams_per_unit")), 64)

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, domain.ErrEmptyCSV
	}

	return rows, nil
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "y":
		return true
	default:
		return false
	}
}
