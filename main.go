package main

import (
	"log"

	"movie_booking/config"
	"movie_booking/database"
	"movie_booking/handler"
	"movie_booking/helper"
	"movie_booking/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		AppName: "movie_booking",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.ConfigDefault("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
		MaxAge:       600,
	}))

	database.ConnectDB()
	database.ConnectRedis()
	handler.InitBookingEngine()

	helper.StartShowtimeScheduler()
	defer helper.StopShowtimeScheduler()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigDefault("PORT", "8002")))
}
