package handlers

import (
	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/internal/api/presenters"
	"nutri-tracker-backend/pkg/export"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ExportHandler interface {
		ExportMealLogs(c *fiber.Ctx) error
		ExportFoodCatalog(c *fiber.Ctx) error
	}

	exportHandler struct {
		exportService export.ExportService
		validator     *validator.Validate
	}
)

func NewExportHandler(exportService export.ExportService, validator *validator.Validate) ExportHandler {
	return &exportHandler{
		exportService: exportService,
		validator:     validator,
	}
}

func (h *exportHandler) ExportMealLogs(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedExportMealLogs, err)
	}

	req := new(domain.ExportMealLogsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportMealLogs, err)
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportMealLogs, domain.ErrInvalidDate)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportMealLogs, domain.ErrInvalidDate)
	}

	res, err := h.exportService.ExportMealLogs(c.Context(), userID, start, end)
	if err != nil {
		code := fiber.StatusInternalServerError
		if err == domain.ErrEmptyExport {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedExportMealLogs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExportMealLogs)
}

func (h *exportHandler) ExportFoodCatalog(c *fiber.Ctx) error {
	res, err := h.exportService.ExportFoodCatalog(c.Context())
	if err != nil {
		code := fiber.StatusInternalServerError
		if err == domain.ErrEmptyExport {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedExportFoods, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExportFoods)
}
