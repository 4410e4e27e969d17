package handler

import (
	"errors"
	"log"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetTheaters(c *fiber.Ctx) error {
	var theaters []model.Theater
	if err := database.DB.Preload("Screens").Find(&theaters).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, theaters)
}

func GetTheaterById(c *fiber.Ctx) error {
	theaterId := c.Locals("inputId").(uint)

	var theater model.Theater
	err := database.DB.
		Preload("Screens").
		Preload("Screens.Seats").
		First(&theater, theaterId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.THEATER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, theater)
}

func CreateTheater(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTheaterInput)

	var theater model.Theater
	copier.Copy(&theater, &input)

	if err := database.DB.Create(&theater).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	log.Printf("theater: created %d (%s)", theater.ID, theater.Name)
	return utils.SuccessResponse(c, fiber.StatusCreated, theater)
}

func UpdateTheater(c *fiber.Ctx) error {
	theaterId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.UpdateTheaterInput)

	var theater model.Theater
	if err := database.DB.First(&theater, theaterId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.THEATER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	copier.CopyWithOption(&theater, &input, copier.Option{IgnoreEmpty: true})
	if err := database.DB.Save(&theater).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, theater)
}

func DeleteTheater(c *fiber.Ctx) error {
	theaterId := c.Locals("inputId").(uint)

	result := database.DB.Delete(&model.Theater{}, theaterId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.THEATER_NOT_FOUND, errors.New("no rows"))
	}

	log.Printf("theater: deleted %d", theaterId)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": theaterId})
}
