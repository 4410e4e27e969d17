package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"movie_booking/booking"
	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seat maps are cached briefly; the view is advisory anyway and the cache is
// dropped whenever a booking lands on the showtime.
const seatCacheTTL = 30 * time.Second

func seatCacheKey(showtimeID uint) string {
	return fmt.Sprintf("seats:%d", showtimeID)
}

func invalidateSeatCache(showtimeID uint) {
	if database.Redis == nil {
		return
	}
	if err := database.Redis.Del(context.Background(), seatCacheKey(showtimeID)).Err(); err != nil {
		log.Printf("seat cache: failed to invalidate showtime %d: %v", showtimeID, err)
	}
}

// CreateSeats bulk-creates rows x seatsPerRow seats for a screen, skipping
// ones that already exist.
func CreateSeats(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateSeatsInput)

	db := database.DB
	var screen model.Screen
	if err := db.First(&screen, input.ScreenId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCREEN_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var seats []model.Seat
	for _, row := range input.Rows {
		for num := 1; num <= input.SeatsPerRow; num++ {
			seats = append(seats, model.Seat{
				Row:      strings.ToUpper(row),
				Number:   num,
				ScreenId: input.ScreenId,
			})
		}
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seats)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	log.Printf("seat: created %d seats for screen %d", result.RowsAffected, input.ScreenId)
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"count":       result.RowsAffected,
		"screenId":    input.ScreenId,
		"rows":        input.Rows,
		"seatsPerRow": input.SeatsPerRow,
	})
}

func GetSeatsByScreen(c *fiber.Ctx) error {
	screenId := c.Locals("inputId").(uint)

	var seats []model.Seat
	err := database.DB.
		Where("screen_id = ?", screenId).
		Order("row asc, number asc").
		Find(&seats).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"seats": seats,
		"total": len(seats),
	})
}

// GetAvailableSeats serves the per-showtime seat map, redis-cached.
func GetAvailableSeats(c *fiber.Ctx) error {
	showtimeId := c.Locals("inputId").(uint)

	if database.Redis != nil {
		cached, err := database.Redis.Get(c.Context(), seatCacheKey(showtimeId)).Result()
		if err == nil {
			var view booking.SeatAvailability
			if jsonErr := json.Unmarshal([]byte(cached), &view); jsonErr == nil {
				return utils.SuccessResponse(c, fiber.StatusOK, view)
			}
		}
	}

	view, err := bookingEngine.AvailableSeats(c.Context(), showtimeId)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if database.Redis != nil {
		if payload, jsonErr := json.Marshal(view); jsonErr == nil {
			if err := database.Redis.Set(c.Context(), seatCacheKey(showtimeId), payload, seatCacheTTL).Err(); err != nil {
				log.Printf("seat cache: failed to store showtime %d: %v", showtimeId, err)
			}
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, view)
}
