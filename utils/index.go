package utils

import (
	"movie_booking/apperror"
	"movie_booking/constants"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

// AppErrorResponse maps a tagged apperror onto its HTTP status, attaching the
// colliding seat ids when present. Anything else becomes a 500.
func AppErrorResponse(c *fiber.Ctx, err error) error {
	if ae, ok := apperror.From(err); ok {
		body := fiber.Map{
			"message": ae.Message,
			"kind":    ae.Kind,
		}
		if len(ae.SeatIDs) > 0 {
			body["seatIds"] = ae.SeatIDs
		}
		return c.Status(ae.Status).JSON(body)
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}

	return query
}

func Ptr[T any](v T) *T {
	return &v
}
