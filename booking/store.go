package booking

import (
	"context"
	"errors"
	"time"

	"movie_booking/model"
)

// ErrSeatTaken is returned by Store.CreateBookingWithTickets when the insert
// loses a race and hits the (showtime_id, seat_id) unique constraint.
var ErrSeatTaken = errors.New("seat already ticketed for showtime")

// Store is the unit-of-work boundary of the booking engine. Inside Transact
// the engine receives a Store bound to the transaction; reads and the
// booking+tickets insert there commit or roll back together.
type Store interface {
	Transact(ctx context.Context, fn func(tx Store) error) error

	// GetShowtime returns (nil, nil) when the showtime does not exist.
	GetShowtime(ctx context.Context, id uint) (*model.Showtime, error)

	// LockSeats row-locks the given seats of a screen for the duration of the
	// surrounding transaction and returns those that exist on that screen.
	LockSeats(ctx context.Context, screenID uint, seatIDs []uint) ([]model.Seat, error)

	GetSeatsForScreen(ctx context.Context, screenID uint) ([]model.Seat, error)
	FindTicketsByShowtimeAndSeats(ctx context.Context, showtimeID uint, seatIDs []uint) ([]model.Ticket, error)
	FindTicketsByShowtime(ctx context.Context, showtimeID uint) ([]model.Ticket, error)

	// CreateBookingWithTickets inserts the booking together with b.Tickets.
	CreateBookingWithTickets(ctx context.Context, b *model.Booking) error

	// GetBooking returns (nil, nil) when the booking does not exist.
	GetBooking(ctx context.Context, id uint) (*model.Booking, error)

	// GetBookingDetail loads the booking with tickets, their seats and the
	// showtime joined to its movie.
	GetBookingDetail(ctx context.Context, id uint) (*model.Booking, error)

	UpdateBookingStatus(ctx context.Context, id uint, status string, cancelledAt *time.Time) error

	// FindOverlappingShowtime returns (nil, nil) when the screen has no
	// showtime with start <= end AND end >= start (inclusive on both bounds).
	// excludeID, when non-zero, leaves that showtime out of the check.
	FindOverlappingShowtime(ctx context.Context, screenID uint, start, end time.Time, excludeID uint) (*model.Showtime, error)
}
