package handlers

import (
	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/internal/api/presenters"
	"nutri-tracker-backend/pkg/servingimport"

	"github.com/gofiber/fiber/v2"
)

type (
	ImportHandler interface {
		ImportServings(c *fiber.Ctx) error
		GetImportJob(c *fiber.Ctx) error
	}

	importHandler struct {
		importService servingimport.ImportService
	}
)

func NewImportHandler(importService servingimport.ImportService) ImportHandler {
	return &importHandler{importService: importService}
}

func (h *importHandler) ImportServings(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportServings, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportServings, err)
	}
	defer file.Close()

	var createdBy *uint
	if userID, err := currentUserID(c); err == nil {
		createdBy = &userID
	}

	res, err := h.importService.ImportServings(c.Context(), file, fileHeader.Filename, createdBy)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportServings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessImportServings)
}

func (h *importHandler) GetImportJob(c *fiber.Ctx) error {
	jobID := c.Params("jobId")

	res, err := h.importService.GetImportJob(c.Context(), jobID)
	if err != nil {
		code := fiber.StatusInternalServerError
		if err == domain.ErrImportJobNotFound {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedGetImportJob, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetImportJob)
}
