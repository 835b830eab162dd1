package handlers

import (
	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/internal/api/presenters"
	"nutri-tracker-backend/pkg/goal"
	"nutri-tracker-backend/pkg/meal"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		LogMeal(c *fiber.Ctx) error
		UpdateMealLog(c *fiber.Ctx) error
		DeleteMealLog(c *fiber.Ctx) error
		GetMealLogs(c *fiber.Ctx) error
		GetDailySummary(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		goalService goal.GoalService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, goalService goal.GoalService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		goalService: goalService,
		validator:   validator,
	}
}

func mealErrorCode(err error) int {
	switch err {
	case domain.ErrFoodNotFound, domain.ErrServingNotFound, domain.ErrMealLogNotFound:
		return fiber.StatusNotFound
	case domain.ErrUserNotAllowed:
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}

// queryDate parses the optional ?date= query, defaulting to today (UTC).
func queryDate(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return date, nil
}

func (h *mealHandler) LogMeal(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogMeal, err)
	}

	req := new(domain.LogMealRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogMeal, err)
	}

	res, err := h.mealService.LogMeal(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, mealErrorCode(err), domain.MessageFailedLogMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogMeal)
}

func (h *mealHandler) UpdateMealLog(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedUpdateMealLog, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealLog, err)
	}

	req := new(domain.UpdateMealLogRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealLog, err)
	}

	res, err := h.mealService.UpdateMealLog(c.Context(), id, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, mealErrorCode(err), domain.MessageFailedUpdateMealLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMealLog)
}

func (h *mealHandler) DeleteMealLog(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedDeleteMealLog, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMealLog, err)
	}

	if err := h.mealService.DeleteMealLog(c.Context(), id, userID); err != nil {
		return presenters.ErrorResponse(c, mealErrorCode(err), domain.MessageFailedDeleteMealLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealLog)
}

func (h *mealHandler) GetMealLogs(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetMealLogs, err)
	}

	date, err := queryDate(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealLogs, err)
	}

	res, err := h.mealService.GetMealLogs(c.Context(), userID, date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMealLogs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealLogs)
}

func (h *mealHandler) GetDailySummary(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetDailySummary, err)
	}

	date, err := queryDate(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDailySummary, err)
	}

	res, err := h.mealService.GetDailySummary(c.Context(), userID, date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDailySummary, err)
	}

	// Attach the active goal when the user has one; a summary without a
	// goal is still a valid summary.
	if goalRes, err := h.goalService.GetActiveGoal(c.Context(), userID); err == nil {
		res.Goal = &goalRes
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDailySummary)
}
