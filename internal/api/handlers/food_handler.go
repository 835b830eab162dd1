package handlers

import (
	"nutri-tracker-backend/domain"
	"nutri-tracker-backend/internal/api/presenters"
	"nutri-tracker-backend/pkg/food"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFood(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		GetFoods(c *fiber.Ctx) error
		GetFoodDetail(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	req := new(domain.AddFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	var createdBy *uint
	if userID, err := currentUserID(c); err == nil {
		createdBy = &userID
	}

	res, err := h.foodService.AddFood(c.Context(), *req, createdBy)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFood)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
	}

	req := new(domain.UpdateFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
	}

	res, err := h.foodService.UpdateFood(c.Context(), id, *req)
	if err != nil {
		code := fiber.StatusBadRequest
		if err == domain.ErrFoodNotFound {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedUpdateFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFood)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFood, err)
	}

	if err := h.foodService.DeleteFood(c.Context(), id); err != nil {
		code := fiber.StatusBadRequest
		switch err {
		case domain.ErrFoodNotFound:
			code = fiber.StatusNotFound
		case domain.ErrFoodHasMealLogs:
			code = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedDeleteFood, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	foods, total, err := h.foodService.GetFoods(c.Context(), c.Query("search"), c.Query("category"), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"foods": foods,
		"total": total,
		"page":  page,
		"limit": limit,
	}, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFoodDetail(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFood, err)
	}

	res, err := h.foodService.GetFoodDetail(c.Context(), id)
	if err != nil {
		code := fiber.StatusInternalServerError
		if err == domain.ErrFoodNotFound {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedGetFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFood)
}
