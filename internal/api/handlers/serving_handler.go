package handlers

import (
	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/internal/api/presenters"
	"nutri-tracker-backend/pkg/serving"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ServingHandler interface {
		AddServing(c *fiber.Ctx) error
		UpdateServing(c *fiber.Ctx) error
		DeleteServing(c *fiber.Ctx) error
		GetServings(c *fiber.Ctx) error
		SetDefaultServing(c *fiber.Ctx) error
		EnsureStandardServing(c *fiber.Ctx) error
	}

	servingHandler struct {
		servingService serving.ServingService
		validator      *validator.Validate
	}
)

func NewServingHandler(servingService serving.ServingService, validator *validator.Validate) ServingHandler {
	return &servingHandler{
		servingService: servingService,
		validator:      validator,
	}
}

func servingErrorCode(err error) int {
	switch err {
	case domain.ErrFoodNotFound, domain.ErrServingNotFound:
		return fiber.StatusNotFound
	case domain.ErrDuplicateServing:
		return fiber.StatusConflict
	case domain.ErrServingIsDefault:
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

func (h *servingHandler) AddServing(c *fiber.Ctx) error {
	foodID, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddServing, err)
	}

	req := new(domain.AddServingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddServing, err)
	}

	var createdBy *uint
	if userID, err := currentUserID(c); err == nil {
		createdBy = &userID
	}

	res, err := h.servingService.AddServing(c.Context(), foodID, *req, createdBy)
	if err != nil {
		return presenters.ErrorResponse(c, servingErrorCode(err), domain.MessageFailedAddServing, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddServing)
}

func (h *servingHandler) UpdateServing(c *fiber.Ctx) error {
	servingID, err := paramID(c, "servingId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateServing, err)
	}

	req := new(domain.UpdateServingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateServing, err)
	}

	res, err := h.servingService.UpdateServing(c.Context(), servingID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, servingErrorCode(err), domain.MessageFailedUpdateServing, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateServing)
}

func (h *servingHandler) DeleteServing(c *fiber.Ctx) error {
	servingID, err := paramID(c, "servingId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteServing, err)
	}

	if err := h.servingService.DeleteServing(c.Context(), servingID); err != nil {
		return presenters.ErrorResponse(c, servingErrorCode(err), domain.MessageFailedDeleteServing, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteServing)
}

func (h *servingHandler) GetServings(c *fiber.Ctx) error {
	foodID, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetServings, err)
	}

	res, err := h.servingService.GetServings(c.Context(), foodID)
	if err != nil {
		return presenters.ErrorResponse(c, servingErrorCode(err), domain.MessageFailedGetServings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetServings)
}

func (h *servingHandler) SetDefaultServing(c *fiber.Ctx) error {
	foodID, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetDefaultServing, err)
	}

	req := new(domain.SetDefaultServingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.servingService.SetDefaultServing(c.Context(), foodID, req.ServingID); err != nil {
		return presenters.ErrorResponse(c, servingErrorCode(err), domain.MessageFailedSetDefaultServing, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetDefaultServing)
}

func (h *servingHandler) EnsureStandardServing(c *fiber.Ctx) error {
	foodID, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEnsureStandard, err)
	}

	res, err := h.servingService.EnsureStandardServing(c.Context(), foodID)
	if err != nil {
		return presenters.ErrorResponse(c, servingErrorCode(err), domain.MessageFailedEnsureStandard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEnsureStandard)
}
