package router

import (
	"movie_booking/handler"
	"movie_booking/middleware"
	"movie_booking/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)

	users := v1.Group("/users", middleware.Protected())
	users.Get("/me", handler.Me)
	users.Get("/me/bookings", handler.GetMyBookings)
	users.Get("/me/bookings/:bookingId", validate.GetById("bookingId"), handler.GetMyBookingById)

	movies := v1.Group("/movies")
	movies.Get("/", handler.GetMovies)
	movies.Get("/:movieId", validate.GetById("movieId"), handler.GetMovieById)
	movies.Post("/", middleware.Protected(), middleware.RequireAdmin(), validate.CreateMovie(), handler.CreateMovie)
	movies.Put("/:movieId", middleware.Protected(), middleware.RequireAdmin(), validate.GetById("movieId"), validate.UpdateMovie(), handler.UpdateMovie)
	movies.Delete("/:movieId", middleware.Protected(), middleware.RequireAdmin(), validate.GetById("movieId"), handler.DeleteMovie)
	movies.Post("/poster-signature", middleware.Protected(), middleware.RequireAdmin(), handler.GeneratePosterSignature)

	theaters := v1.Group("/theaters")
	theaters.Get("/", handler.GetTheaters)
	theaters.Get("/:theaterId", validate.GetById("theaterId"), handler.GetTheaterById)
	theaters.Post("/", middleware.Protected(), middleware.RequireAdmin(), validate.CreateTheater(), handler.CreateTheater)
	theaters.Put("/:theaterId", middleware.Protected(), middleware.RequireAdmin(), validate.GetById("theaterId"), validate.UpdateTheater(), handler.UpdateTheater)
	theaters.Delete("/:theaterId", middleware.Protected(), middleware.RequireAdmin(), validate.GetById("theaterId"), handler.DeleteTheater)

	screens := v1.Group("/screens")
	screens.Get("/", handler.GetScreens)
	screens.Get("/:screenId", validate.GetById("screenId"), handler.GetScreenById)
	screens.Post("/", middleware.Protected(), middleware.RequireAdmin(), validate.CreateScreen(), handler.CreateScreen)
	screens.Put("/:screenId", middleware.Protected(), middleware.RequireAdmin(), validate.GetById("screenId"), validate.UpdateScreen(), handler.UpdateScreen)
	screens.Delete("/:screenId", middleware.Protected(), middleware.RequireAdmin(), validate.GetById("screenId"), handler.DeleteScreen)

	seats := v1.Group("/seats")
	seats.Post("/", middleware.Protected(), middleware.RequireAdmin(), validate.CreateSeats(), handler.CreateSeats)
	seats.Get("/screen/:screenId", validate.GetById("screenId"), handler.GetSeatsByScreen)
	seats.Get("/available/:showtimeId", validate.GetById("showtimeId"), handler.GetAvailableSeats)

	showtimes := v1.Group("/showtimes")
	showtimes.Get("/", validate.FilterShowtime(), handler.GetShowtimes)
	showtimes.Get("/:showtimeId", validate.GetById("showtimeId"), handler.GetShowtimeById)
	showtimes.Post("/", middleware.Protected(), middleware.RequireAdmin(), validate.CreateShowtime(), handler.CreateShowtime)
	showtimes.Put("/:showtimeId", middleware.Protected(), middleware.RequireAdmin(), validate.GetById("showtimeId"), validate.UpdateShowtime(), handler.UpdateShowtime)
	showtimes.Delete("/:showtimeId", middleware.Protected(), middleware.RequireAdmin(), validate.GetById("showtimeId"), handler.DeleteShowtime)

	bookings := v1.Group("/bookings", middleware.Protected())
	bookings.Post("/", validate.CreateBooking(), handler.CreateBooking)
	bookings.Patch("/:bookingId/cancel", validate.GetById("bookingId"), handler.CancelBooking)
}
