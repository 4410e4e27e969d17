package validate

import (
	"movie_booking/constants"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateShowtime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateShowtimeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if input.Price.IsNegative() || input.Price.IsZero() {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Price must be positive", nil)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateShowtime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateShowtimeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if input.Price != nil && (input.Price.IsNegative() || input.Price.IsZero()) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Price must be positive", nil)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func FilterShowtime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FilterShowtimeInput
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("filter", input)
		return c.Next()
	}
}
