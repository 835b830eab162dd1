package handlers

import (
	"nutri-tracker-backend/domain"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// currentUserID reads the authenticated user's id placed in Locals by the
// auth middleware.
func currentUserID(c *fiber.Ctx) (uint, error) {
	raw, _ := c.Locals("user_id").(string)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return uint(id), nil
}

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return uint(id), nil
}
