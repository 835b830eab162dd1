package domain

import (
	"errors"
)

var (
	MessageSuccessExportMealLogs = "meal log export generated successfully"
	MessageSuccessExportFoods    = "food catalog export generated successfully"

	MessageFailedExportMealLogs = "failed to export meal logs"
	MessageFailedExportFoods    = "failed to export food catalog"

	ErrEmptyExport = errors.New("no rows to export")
)

type (
	ExportMealLogsRequest struct {
		StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
		EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	}

	ExportResponse struct {
		FileURL  string `json:"file_url"`
		RowCount int    `json:"row_count"`
	}
)
