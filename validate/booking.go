package validate

import (
	"movie_booking/constants"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		seen := make(map[uint]struct{}, len(input.SeatIds))
		for _, id := range input.SeatIds {
			if _, dup := seen[id]; dup {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Seat ids must be distinct", nil)
			}
			seen[id] = struct{}{}
		}

		c.Locals("input", input)
		return c.Next()
	}
}
