package handler

import (
	"movie_booking/booking"
	"movie_booking/database"
)

var bookingEngine *booking.Engine

// InitBookingEngine wires the engine to the live database. Called from main
// after the DB connection exists; tests construct engines with fake stores.
func InitBookingEngine() {
	bookingEngine = booking.NewEngine(booking.NewGormStore(database.DB))
}
