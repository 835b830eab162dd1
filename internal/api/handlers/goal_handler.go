package handlers

import (
	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/internal/api/presenters"
	"nutri-tracker-backend/pkg/goal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GoalHandler interface {
		SetGoal(c *fiber.Ctx) error
		GetActiveGoal(c *fiber.Ctx) error
		GetProgress(c *fiber.Ctx) error
		ClearGoal(c *fiber.Ctx) error
	}

	goalHandler struct {
		goalService goal.GoalService
		validator   *validator.Validate
	}
)

func NewGoalHandler(goalService goal.GoalService, validator *validator.Validate) GoalHandler {
	return &goalHandler{
		goalService: goalService,
		validator:   validator,
	}
}

func (h *goalHandler) SetGoal(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedSetGoal, err)
	}

	req := new(domain.SetGoalRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetGoal, err)
	}

	res, err := h.goalService.SetGoal(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetGoal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSetGoal)
}

func (h *goalHandler) GetActiveGoal(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetGoal, err)
	}

	res, err := h.goalService.GetActiveGoal(c.Context(), userID)
	if err != nil {
		code := fiber.StatusInternalServerError
		if err == domain.ErrGoalNotFound {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedGetGoal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGoal)
}

func (h *goalHandler) GetProgress(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetProgress, err)
	}

	date, err := queryDate(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProgress, err)
	}

	res, err := h.goalService.GetProgress(c.Context(), userID, date)
	if err != nil {
		code := fiber.StatusInternalServerError
		if err == domain.ErrGoalNotFound {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedGetProgress, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProgress)
}

func (h *goalHandler) ClearGoal(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedDeleteGoal, err)
	}

	if err := h.goalService.ClearGoal(c.Context(), userID); err != nil {
		code := fiber.StatusInternalServerError
		if err == domain.ErrGoalNotFound {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedDeleteGoal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGoal)
}
