package validate

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"movie_booking/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Post("/bookings", CreateBooking(), func(c *fiber.Ctx) error {
		input, ok := c.Locals("input").(model.CreateBookingInput)
		require.True(t, ok)
		require.NotZero(t, input.ShowtimeId)
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestCreateBookingValidInput(t *testing.T) {
	app := bookingTestApp(t)

	status, _ := postJSON(t, app, "/bookings", `{"showtimeId": 10, "seatIds": [1, 2, 3]}`)
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestCreateBookingRejectsEmptySeats(t *testing.T) {
	app := bookingTestApp(t)

	status, _ := postJSON(t, app, "/bookings", `{"showtimeId": 10, "seatIds": []}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateBookingRejectsMissingShowtime(t *testing.T) {
	app := bookingTestApp(t)

	status, _ := postJSON(t, app, "/bookings", `{"seatIds": [1]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateBookingRejectsDuplicateSeats(t *testing.T) {
	app := bookingTestApp(t)

	status, body := postJSON(t, app, "/bookings", `{"showtimeId": 10, "seatIds": [4, 4]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "distinct")
}

func TestCreateBookingRejectsZeroSeatId(t *testing.T) {
	app := bookingTestApp(t)

	status, _ := postJSON(t, app, "/bookings", `{"showtimeId": 10, "seatIds": [0]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateBookingRejectsMalformedJSON(t *testing.T) {
	app := bookingTestApp(t)

	status, _ := postJSON(t, app, "/bookings", `{"showtimeId": `)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetByIdParsesParam(t *testing.T) {
	app := fiber.New()
	app.Get("/things/:thingId", GetById("thingId"), func(c *fiber.Ctx) error {
		id := c.Locals("inputId").(uint)
		assert.Equal(t, uint(17), id)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/things/17", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/things/zero", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest("GET", "/things/-3", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
