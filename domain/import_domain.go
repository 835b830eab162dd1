package domain

import (
	"errors"
	"time"
)

var ServingImportHeaders = []string{"food_key", "serving_name", "unit", "grams_per_unit", "is_default"}

var (
	MessageSuccessImportServings = "serving import completed"
	MessageSuccessGetImportJob   = "import job retrieved successfully"

	MessageFailedImportServings = "failed to import servings"
	MessageFailedGetImportJob   = "failed to retrieve import job"

	ErrUnknownFoodKey    = errors.New("food key does not match any food")
	ErrMissingCSVHeader  = errors.New("csv is missing required headers")
	ErrEmptyCSV          = errors.New("csv contains no data rows")
	ErrImportJobNotFound = errors.New("import job not found")
)

type (
	// ServingImportRow is one parsed line of a serving upload file.
	ServingImportRow struct {
		FoodKey      string
		ServingName  string
		Unit         string
		GramsPerUnit float64
		IsDefault    bool
	}

	RowError struct {
		Row     int    `json:"row"`
		Message string `json:"message"`
	}

	BatchResult struct {
		JobID     string     `json:"job_id"`
		Total     int        `json:"total"`
		Succeeded int        `json:"succeeded"`
		Failed    int        `json:"failed"`
		Errors    []RowError `json:"errors"`
	}

	ImportJobResponse struct {
		JobID      string     `json:"job_id"`
		Filename   string     `json:"filename,omitempty"`
		Total      int        `json:"total"`
		Succeeded  int        `json:"succeeded"`
		Failed     int        `json:"failed"`
		Status     string     `json:"status"`
		Errors     []RowError `json:"errors"`
		FinishedAt *time.Time `json:"finished_at,omitempty"`
	}
)
