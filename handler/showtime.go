package handler

import (
	"errors"
	"log"
	"time"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetShowtimes(c *fiber.Ctx) error {
	filter := c.Locals("filter").(model.FilterShowtimeInput)

	db := database.DB
	condition := db.Model(&model.Showtime{}).
		Preload("Movie").
		Preload("Screen").
		Preload("Screen.Theater")

	if filter.MovieId > 0 {
		condition = condition.Where("movie_id = ?", filter.MovieId)
	}
	if filter.ScreenId > 0 {
		condition = condition.Where("screen_id = ?", filter.ScreenId)
	}
	if filter.Date != "" {
		day, err := time.Parse("2006-01-02", filter.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		condition = condition.Where("start_time >= ? AND start_time < ?", day, day.AddDate(0, 0, 1))
	}

	var totalCount int64
	condition.Count(&totalCount)

	var showtimes []model.Showtime
	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)
	if err := condition.Order("start_time asc").Find(&showtimes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       showtimes,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetShowtimeById(c *fiber.Ctx) error {
	showtimeId := c.Locals("inputId").(uint)

	var showtime model.Showtime
	err := database.DB.
		Preload("Movie").
		Preload("Screen").
		Preload("Screen.Theater").
		Preload("Screen.Seats", func(db *gorm.DB) *gorm.DB {
			return db.Order("seats.row asc, seats.number asc")
		}).
		First(&showtime, showtimeId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

func CreateShowtime(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateShowtimeInput)

	db := database.DB
	var movie model.Movie
	if err := db.First(&movie, input.MovieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var screen model.Screen
	if err := db.First(&screen, input.ScreenId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCREEN_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := bookingEngine.CheckShowtimeSlot(c.Context(), input.ScreenId, input.StartTime, input.EndTime, 0); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	showtime := model.Showtime{
		MovieId:   input.MovieId,
		ScreenId:  input.ScreenId,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Price:     input.Price,
		Status:    model.ShowtimeScheduled,
	}
	if err := db.Create(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	db.Preload("Movie").Preload("Screen").Preload("Screen.Theater").First(&showtime, showtime.ID)

	log.Printf("showtime: created %d for movie %d on screen %d", showtime.ID, showtime.MovieId, showtime.ScreenId)
	return utils.SuccessResponse(c, fiber.StatusCreated, showtime)
}

func UpdateShowtime(c *fiber.Ctx) error {
	showtimeId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.UpdateShowtimeInput)

	db := database.DB
	var showtime model.Showtime
	if err := db.First(&showtime, showtimeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	timesMoved := false
	if input.StartTime != nil {
		showtime.StartTime = *input.StartTime
		timesMoved = true
	}
	if input.EndTime != nil {
		showtime.EndTime = *input.EndTime
		timesMoved = true
	}
	if input.Price != nil {
		showtime.Price = *input.Price
	}

	if !showtime.EndTime.After(showtime.StartTime) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "End time must be after start time", nil)
	}

	if timesMoved {
		err := bookingEngine.CheckShowtimeSlot(c.Context(), showtime.ScreenId, showtime.StartTime, showtime.EndTime, showtime.ID)
		if err != nil {
			return utils.AppErrorResponse(c, err)
		}
	}

	if err := db.Save(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	db.Preload("Movie").Preload("Screen").Preload("Screen.Theater").First(&showtime, showtime.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

func DeleteShowtime(c *fiber.Ctx) error {
	showtimeId := c.Locals("inputId").(uint)

	db := database.DB
	var showtime model.Showtime
	if err := db.First(&showtime, showtimeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var ticketCount int64
	if err := db.Model(&model.Ticket{}).Where("showtime_id = ?", showtimeId).Count(&ticketCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if ticketCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SHOWTIME_HAS_TICKETS, errors.New("tickets exist"))
	}

	if err := db.Delete(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	log.Printf("showtime: deleted %d", showtimeId)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": showtimeId})
}
