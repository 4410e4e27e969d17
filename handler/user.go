package handler

import (
	"errors"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/helper"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func Me(c *fiber.Ctx) error {
	claim, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}

	var user model.User
	if err := database.DB.First(&user, claim.UserId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func GetMyBookings(c *fiber.Ctx) error {
	claim, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}

	var bookings []model.Booking
	err = database.DB.
		Preload("Tickets").
		Preload("Tickets.Seat").
		Preload("Tickets.Showtime").
		Preload("Tickets.Showtime.Movie").
		Preload("Tickets.Showtime.Screen").
		Preload("Tickets.Showtime.Screen.Theater").
		Where("user_id = ?", claim.UserId).
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookings": bookings,
		"total":    len(bookings),
	})
}

func GetMyBookingById(c *fiber.Ctx) error {
	claim, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}
	bookingId := c.Locals("inputId").(uint)

	var bkg model.Booking
	err = database.DB.
		Preload("Tickets").
		Preload("Tickets.Seat").
		Preload("Tickets.Showtime").
		Preload("Tickets.Showtime.Movie").
		Preload("Tickets.Showtime.Screen").
		Preload("Tickets.Showtime.Screen.Theater").
		First(&bkg, bookingId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if bkg.UserId != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BOOKING_OWNER, errors.New("not owner"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bkg)
}
