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

func GetScreens(c *fiber.Ctx) error {
	var screens []model.Screen
	if err := database.DB.Preload("Theater").Find(&screens).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, screens)
}

func GetScreenById(c *fiber.Ctx) error {
	screenId := c.Locals("inputId").(uint)

	var screen model.Screen
	err := database.DB.
		Preload("Theater").
		Preload("Seats").
		First(&screen, screenId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCREEN_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, screen)
}

func CreateScreen(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateScreenInput)

	db := database.DB
	var theater model.Theater
	if err := db.First(&theater, input.TheaterId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.THEATER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var screen model.Screen
	copier.Copy(&screen, &input)

	if err := db.Create(&screen).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Screen name already used in this theater", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	log.Printf("screen: created %d (%s) in theater %d", screen.ID, screen.Name, screen.TheaterId)
	return utils.SuccessResponse(c, fiber.StatusCreated, screen)
}

func UpdateScreen(c *fiber.Ctx) error {
	screenId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.UpdateScreenInput)

	var screen model.Screen
	if err := database.DB.First(&screen, screenId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCREEN_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	copier.CopyWithOption(&screen, &input, copier.Option{IgnoreEmpty: true})
	if err := database.DB.Save(&screen).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Screen name already used in this theater", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, screen)
}

func DeleteScreen(c *fiber.Ctx) error {
	screenId := c.Locals("inputId").(uint)

	result := database.DB.Delete(&model.Screen{}, screenId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCREEN_NOT_FOUND, errors.New("no rows"))
	}

	log.Printf("screen: deleted %d", screenId)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": screenId})
}
