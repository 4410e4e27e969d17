package handler

import (
	"fmt"
	"strings"

	"movie_booking/constants"
	"movie_booking/helper"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking(c *fiber.Ctx) error {
	claim, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}
	input := c.Locals("input").(model.CreateBookingInput)

	bkg, err := bookingEngine.CreateBooking(c.Context(), claim.UserId, input.ShowtimeId, input.SeatIds)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	invalidateSeatCache(input.ShowtimeId)

	if claim.Email != "" && len(bkg.Tickets) > 0 {
		sendBookingConfirmation(claim.Email, bkg)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, bkg)
}

func CancelBooking(c *fiber.Ctx) error {
	claim, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}
	bookingId := c.Locals("inputId").(uint)

	bkg, err := bookingEngine.CancelBooking(c.Context(), bookingId, claim.UserId)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	// Tickets survive cancellation, so the seat map is unchanged and the
	// cache stays valid.
	return utils.SuccessResponse(c, fiber.StatusOK, bkg)
}

func sendBookingConfirmation(email string, bkg *model.Booking) {
	first := bkg.Tickets[0]

	var seatLabels []string
	var ticketCodes []string
	for _, t := range bkg.Tickets {
		seatLabels = append(seatLabels, fmt.Sprintf("%s%d", t.Seat.Row, t.Seat.Number))
		ticketCodes = append(ticketCodes, t.TicketCode)
	}

	utils.SendBookingConfirmationEmail(email, utils.BookingConfirmationData{
		BookingCode: bkg.PublicCode,
		MovieTitle:  first.Showtime.Movie.Title,
		Showtime:    first.Showtime.StartTime.Format("02/01/2006 15:04"),
		Seats:       strings.Join(seatLabels, ", "),
		Total:       bkg.Total.StringFixed(2),
	}, ticketCodes)
}
