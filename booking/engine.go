// Package booking converts a (user, showtime, seat-list) request into a
// durable, conflict-free booking. Two concurrent bookings over overlapping
// seat sets on one showtime are serialized by row-locking the seats inside
// the transaction; the (showtime_id, seat_id) unique index on tickets is the
// safety net when the lock path is bypassed.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"movie_booking/apperror"
	"movie_booking/constants"
	"movie_booking/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// CreateBooking books the given seats for a showtime as one atomic unit:
// showtime lookup, seat lock, existing-ticket check and booking+ticket insert
// all happen inside a single store transaction.
func (e *Engine) CreateBooking(ctx context.Context, userID, showtimeID uint, seatIDs []uint) (*model.Booking, error) {
	if len(seatIDs) == 0 {
		return nil, apperror.Validation("at least one seat is required")
	}
	if dup := firstDuplicate(seatIDs); dup != 0 {
		return nil, apperror.ValidationSeats("duplicate seat id requested", []uint{dup})
	}

	log.Printf("booking: user %d booking seats %v for showtime %d", userID, seatIDs, showtimeID)

	var created *model.Booking
	err := e.store.Transact(ctx, func(tx Store) error {
		showtime, err := tx.GetShowtime(ctx, showtimeID)
		if err != nil {
			return err
		}
		if showtime == nil {
			return apperror.NotFound(constants.SHOWTIME_NOT_FOUND)
		}

		seats, err := tx.LockSeats(ctx, showtime.ScreenId, seatIDs)
		if err != nil {
			return err
		}
		if len(seats) != len(seatIDs) {
			return apperror.ValidationSeats("seat(s) not found on this screen", missingSeatIDs(seatIDs, seats))
		}

		existing, err := tx.FindTicketsByShowtimeAndSeats(ctx, showtimeID, seatIDs)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			taken := make([]uint, 0, len(existing))
			for _, t := range existing {
				taken = append(taken, t.SeatId)
			}
			return apperror.SeatConflict(constants.SEATS_ALREADY_BOOKED, taken)
		}

		total := showtime.Price.Mul(decimal.NewFromInt(int64(len(seatIDs))))

		bkg := model.Booking{
			PublicCode: "BKG-" + strings.ToUpper(uuid.New().String()[:8]),
			UserId:     userID,
			Total:      total,
			Status:     model.BookingPending,
		}
		for _, seatID := range seatIDs {
			bkg.Tickets = append(bkg.Tickets, model.Ticket{
				TicketCode: "TKT-" + strings.ToUpper(uuid.New().String()[:10]),
				ShowtimeId: showtimeID,
				SeatId:     seatID,
			})
		}

		if err := tx.CreateBookingWithTickets(ctx, &bkg); err != nil {
			// A concurrent transaction won the insert between our check and
			// commit; surface it as the same conflict the check produces.
			if errors.Is(err, ErrSeatTaken) {
				return apperror.SeatConflict(constants.SEATS_ALREADY_BOOKED, seatIDs)
			}
			return err
		}

		created, err = tx.GetBookingDetail(ctx, bkg.ID)
		if err != nil {
			return err
		}
		if created == nil {
			return fmt.Errorf("booking %d vanished after insert", bkg.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("booking: created %s (total %s) for user %d", created.PublicCode, created.Total, userID)
	return created, nil
}

// CancelBooking flips the booking to CANCELLED. Only the owning user may
// cancel. Tickets are intentionally kept: a cancelled booking's seats stay
// booked for the showtime and still collide on rebooking.
func (e *Engine) CancelBooking(ctx context.Context, bookingID, userID uint) (*model.Booking, error) {
	bkg, err := e.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if bkg == nil {
		return nil, apperror.NotFound(constants.BOOKING_NOT_FOUND)
	}
	if bkg.UserId != userID {
		log.Printf("booking: user %d denied cancel of booking %d owned by %d", userID, bookingID, bkg.UserId)
		return nil, apperror.Forbidden(constants.NOT_BOOKING_OWNER)
	}

	now := time.Now()
	if err := e.store.UpdateBookingStatus(ctx, bookingID, model.BookingCancelled, &now); err != nil {
		return nil, err
	}

	log.Printf("booking: cancelled %d for user %d", bookingID, userID)
	return e.store.GetBookingDetail(ctx, bookingID)
}

// SeatStatus is a screen seat annotated with its availability for a showtime.
type SeatStatus struct {
	model.Seat
	IsAvailable bool `json:"isAvailable"`
}

type SeatAvailability struct {
	ShowtimeId     uint         `json:"showtimeId"`
	ScreenId       uint         `json:"screenId"`
	TotalSeats     int          `json:"totalSeats"`
	AvailableCount int          `json:"availableCount"`
	BookedCount    int          `json:"bookedCount"`
	Seats          []SeatStatus `json:"seats"`
}

// AvailableSeats reports which of the showtime's screen seats are still free.
// Advisory read: no locking, the answer can be stale by the time it is used.
func (e *Engine) AvailableSeats(ctx context.Context, showtimeID uint) (*SeatAvailability, error) {
	showtime, err := e.store.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	if showtime == nil {
		return nil, apperror.NotFound(constants.SHOWTIME_NOT_FOUND)
	}

	seats, err := e.store.GetSeatsForScreen(ctx, showtime.ScreenId)
	if err != nil {
		return nil, err
	}
	tickets, err := e.store.FindTicketsByShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	booked := make(map[uint]struct{}, len(tickets))
	for _, t := range tickets {
		booked[t.SeatId] = struct{}{}
	}

	view := &SeatAvailability{
		ShowtimeId: showtimeID,
		ScreenId:   showtime.ScreenId,
		TotalSeats: len(seats),
		Seats:      make([]SeatStatus, 0, len(seats)),
	}
	for _, seat := range seats {
		_, taken := booked[seat.ID]
		if taken {
			view.BookedCount++
		} else {
			view.AvailableCount++
		}
		view.Seats = append(view.Seats, SeatStatus{Seat: seat, IsAvailable: !taken})
	}
	return view, nil
}

// CheckShowtimeSlot fails with Conflict when the screen already has a
// showtime touching [start, end]. Boundary-touching slots count as overlap.
func (e *Engine) CheckShowtimeSlot(ctx context.Context, screenID uint, start, end time.Time, excludeID uint) error {
	overlapping, err := e.store.FindOverlappingShowtime(ctx, screenID, start, end, excludeID)
	if err != nil {
		return err
	}
	if overlapping != nil {
		return apperror.Conflict(constants.SHOWTIME_OVERLAP)
	}
	return nil
}

func firstDuplicate(ids []uint) uint {
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id
		}
		seen[id] = struct{}{}
	}
	return 0
}

func missingSeatIDs(requested []uint, found []model.Seat) []uint {
	have := make(map[uint]struct{}, len(found))
	for _, s := range found {
		have[s.ID] = struct{}{}
	}
	var missing []uint
	for _, id := range requested {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
