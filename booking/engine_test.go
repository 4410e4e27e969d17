package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"movie_booking/apperror"
	"movie_booking/booking"
	"movie_booking/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store. Transact serializes units of work with a
// mutex and rolls written rows back when the unit fails, mirroring what the
// database transaction gives the real store.
type fakeStore struct {
	mu sync.Mutex

	showtimes map[uint]model.Showtime
	seats     map[uint]model.Seat
	bookings  map[uint]model.Booking
	tickets   []model.Ticket
	movies    map[uint]model.Movie

	nextBookingID uint
	nextTicketID  uint

	createErr error // forced failure for CreateBookingWithTickets
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		showtimes: make(map[uint]model.Showtime),
		seats:     make(map[uint]model.Seat),
		bookings:  make(map[uint]model.Booking),
		movies:    make(map[uint]model.Movie),
	}
}

func (s *fakeStore) Transact(ctx context.Context, fn func(tx booking.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticketsBackup := append([]model.Ticket(nil), s.tickets...)
	bookingsBackup := make(map[uint]model.Booking, len(s.bookings))
	for k, v := range s.bookings {
		bookingsBackup[k] = v
	}

	if err := fn(s); err != nil {
		s.tickets = ticketsBackup
		s.bookings = bookingsBackup
		return err
	}
	return nil
}

func (s *fakeStore) GetShowtime(ctx context.Context, id uint) (*model.Showtime, error) {
	st, ok := s.showtimes[id]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (s *fakeStore) LockSeats(ctx context.Context, screenID uint, seatIDs []uint) ([]model.Seat, error) {
	var out []model.Seat
	for _, id := range seatIDs {
		seat, ok := s.seats[id]
		if ok && seat.ScreenId == screenID {
			out = append(out, seat)
		}
	}
	return out, nil
}

func (s *fakeStore) GetSeatsForScreen(ctx context.Context, screenID uint) ([]model.Seat, error) {
	var out []model.Seat
	for _, seat := range s.seats {
		if seat.ScreenId == screenID {
			out = append(out, seat)
		}
	}
	return out, nil
}

func (s *fakeStore) FindTicketsByShowtimeAndSeats(ctx context.Context, showtimeID uint, seatIDs []uint) ([]model.Ticket, error) {
	wanted := make(map[uint]struct{}, len(seatIDs))
	for _, id := range seatIDs {
		wanted[id] = struct{}{}
	}
	var out []model.Ticket
	for _, t := range s.tickets {
		if t.ShowtimeId != showtimeID {
			continue
		}
		if _, ok := wanted[t.SeatId]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeStore) FindTicketsByShowtime(ctx context.Context, showtimeID uint) ([]model.Ticket, error) {
	var out []model.Ticket
	for _, t := range s.tickets {
		if t.ShowtimeId == showtimeID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeStore) CreateBookingWithTickets(ctx context.Context, b *model.Booking) error {
	if s.createErr != nil {
		return s.createErr
	}
	for _, nt := range b.Tickets {
		for _, t := range s.tickets {
			if t.ShowtimeId == nt.ShowtimeId && t.SeatId == nt.SeatId {
				return booking.ErrSeatTaken
			}
		}
	}

	s.nextBookingID++
	b.ID = s.nextBookingID
	for i := range b.Tickets {
		s.nextTicketID++
		b.Tickets[i].ID = s.nextTicketID
		b.Tickets[i].BookingId = b.ID
	}
	s.bookings[b.ID] = *b
	s.tickets = append(s.tickets, b.Tickets...)
	return nil
}

func (s *fakeStore) GetBooking(ctx context.Context, id uint) (*model.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, nil
	}
	b.Tickets = nil
	return &b, nil
}

func (s *fakeStore) GetBookingDetail(ctx context.Context, id uint) (*model.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, nil
	}
	b.Tickets = nil
	for _, t := range s.tickets {
		if t.BookingId != id {
			continue
		}
		t.Seat = s.seats[t.SeatId]
		st := s.showtimes[t.ShowtimeId]
		st.Movie = s.movies[st.MovieId]
		t.Showtime = st
		b.Tickets = append(b.Tickets, t)
	}
	return &b, nil
}

func (s *fakeStore) UpdateBookingStatus(ctx context.Context, id uint, status string, cancelledAt *time.Time) error {
	b, ok := s.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	b.CancelledAt = cancelledAt
	s.bookings[id] = b
	return nil
}

func (s *fakeStore) FindOverlappingShowtime(ctx context.Context, screenID uint, start, end time.Time, excludeID uint) (*model.Showtime, error) {
	for _, st := range s.showtimes {
		if st.ScreenId != screenID || st.ID == excludeID {
			continue
		}
		// start_time <= end AND end_time >= start
		if !st.StartTime.After(end) && !st.EndTime.Before(start) {
			found := st
			return &found, nil
		}
	}
	return nil, nil
}

func seedStore(t *testing.T) *fakeStore {
	t.Helper()
	store := newFakeStore()

	store.movies[1] = model.Movie{DTO: model.DTO{ID: 1}, Title: "Interstellar"}

	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	store.showtimes[10] = model.Showtime{
		DTO:       model.DTO{ID: 10},
		MovieId:   1,
		ScreenId:  5,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Price:     decimal.RequireFromString("12.50"),
		Status:    model.ShowtimeScheduled,
	}

	rows := []string{"A", "B"}
	id := uint(0)
	for _, row := range rows {
		for num := 1; num <= 3; num++ {
			id++
			store.seats[id] = model.Seat{DTO: model.DTO{ID: id}, Row: row, Number: num, ScreenId: 5}
		}
	}
	return store
}

func TestCreateBooking_Success(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	bkg, err := engine.CreateBooking(context.Background(), 7, 10, []uint{1, 2, 3})

	require.NoError(t, err)
	require.NotNil(t, bkg)
	assert.Equal(t, model.BookingPending, bkg.Status)
	assert.Equal(t, uint(7), bkg.UserId)
	assert.Len(t, bkg.Tickets, 3)
	assert.NotEmpty(t, bkg.PublicCode)
	assert.Equal(t, "Interstellar", bkg.Tickets[0].Showtime.Movie.Title)
	assert.Equal(t, "A", bkg.Tickets[0].Seat.Row)
}

func TestCreateBooking_TotalIsExactDecimal(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	bkg, err := engine.CreateBooking(context.Background(), 7, 10, []uint{1, 2, 3})

	require.NoError(t, err)
	// 12.50 x 3 must be exactly 37.50, not 37.499999...
	assert.True(t, bkg.Total.Equal(decimal.RequireFromString("37.50")),
		"expected total 37.50, got %s", bkg.Total)
	assert.Equal(t, "37.50", bkg.Total.StringFixed(2))
}

func TestCreateBooking_ShowtimeNotFound(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	bkg, err := engine.CreateBooking(context.Background(), 7, 999, []uint{1})

	require.Error(t, err)
	assert.Nil(t, bkg)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.Empty(t, store.tickets, "no rows may be written before the showtime check")
	assert.Empty(t, store.bookings)
}

func TestCreateBooking_ConflictOnBookedSeat(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	_, err := engine.CreateBooking(context.Background(), 7, 10, []uint{2})
	require.NoError(t, err)

	bkg, err := engine.CreateBooking(context.Background(), 8, 10, []uint{1, 2})

	require.Error(t, err)
	assert.Nil(t, bkg)
	ae, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindConflict, ae.Kind)
	assert.Equal(t, []uint{2}, ae.SeatIDs, "the conflict must name the colliding seat")
	assert.Len(t, store.tickets, 1, "the losing request must not persist rows")
}

func TestCreateBooking_SameSeatDifferentShowtime(t *testing.T) {
	store := seedStore(t)
	other := store.showtimes[10]
	other.ID = 11
	other.StartTime = other.StartTime.Add(3 * time.Hour)
	other.EndTime = other.EndTime.Add(3 * time.Hour)
	store.showtimes[11] = other
	engine := booking.NewEngine(store)

	_, err := engine.CreateBooking(context.Background(), 7, 10, []uint{1})
	require.NoError(t, err)

	// The same seat is free for a different showtime.
	bkg, err := engine.CreateBooking(context.Background(), 7, 11, []uint{1})
	require.NoError(t, err)
	assert.Len(t, bkg.Tickets, 1)
}

func TestCreateBooking_RaceLostMapsToConflict(t *testing.T) {
	store := seedStore(t)
	store.createErr = booking.ErrSeatTaken
	engine := booking.NewEngine(store)

	bkg, err := engine.CreateBooking(context.Background(), 7, 10, []uint{1})

	require.Error(t, err)
	assert.Nil(t, bkg)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict),
		"losing the insert race must surface as the same Conflict as the pre-check")
}

func TestCreateBooking_TransientErrorPropagates(t *testing.T) {
	store := seedStore(t)
	transient := errors.New("connection reset by peer")
	store.createErr = transient
	engine := booking.NewEngine(store)

	_, err := engine.CreateBooking(context.Background(), 7, 10, []uint{1})

	require.Error(t, err)
	assert.ErrorIs(t, err, transient)
	_, isTagged := apperror.From(err)
	assert.False(t, isTagged, "transient store errors must not be downgraded to a taxonomy kind")
	assert.Empty(t, store.tickets)
}

func TestCreateBooking_UnknownSeatRejected(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	_, err := engine.CreateBooking(context.Background(), 7, 10, []uint{1, 42})

	require.Error(t, err)
	ae, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, ae.Kind)
	assert.Equal(t, []uint{42}, ae.SeatIDs)
}

func TestCreateBooking_DuplicateSeatIdsRejected(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	_, err := engine.CreateBooking(context.Background(), 7, 10, []uint{1, 1})

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestCreateBooking_EmptySeatListRejected(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	_, err := engine.CreateBooking(context.Background(), 7, 10, nil)

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestCreateBooking_ConcurrentDisjointSetsBothSucceed(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	sets := [][]uint{{1, 2}, {3, 4}}

	for i := range sets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.CreateBooking(context.Background(), uint(100+i), 10, sets[i])
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Len(t, store.tickets, 4)
	assert.Len(t, store.bookings, 2)

	seen := make(map[uint]int)
	for _, tk := range store.tickets {
		seen[tk.SeatId]++
	}
	for seatID, n := range seen {
		assert.Equal(t, 1, n, "seat %d ticketed more than once", seatID)
	}
}

func TestCreateBooking_ConcurrentOverlappingSetsOneWins(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	sets := [][]uint{{1, 2}, {2, 3}}

	for i := range sets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.CreateBooking(context.Background(), uint(100+i), 10, sets[i])
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case apperror.IsKind(err, apperror.KindConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes, "exactly one overlapping booking may win")
	assert.Equal(t, 1, conflicts)
	assert.Len(t, store.tickets, 2, "only the winner's tickets persist")
	assert.Len(t, store.bookings, 1)
}

func TestCancelBooking_OwnerCancels(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	created, err := engine.CreateBooking(context.Background(), 7, 10, []uint{1, 2})
	require.NoError(t, err)

	cancelled, err := engine.CancelBooking(context.Background(), created.ID, 7)

	require.NoError(t, err)
	assert.Equal(t, model.BookingCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)
	assert.Len(t, store.tickets, 2, "cancellation must not delete tickets")
}

func TestCancelBooking_SeatsStayBurnedAfterCancel(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	created, err := engine.CreateBooking(context.Background(), 7, 10, []uint{1})
	require.NoError(t, err)
	_, err = engine.CancelBooking(context.Background(), created.ID, 7)
	require.NoError(t, err)

	// Current behavior: a cancelled booking's seats remain claimed.
	view, err := engine.AvailableSeats(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, view.BookedCount)

	_, err = engine.CreateBooking(context.Background(), 8, 10, []uint{1})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestCancelBooking_ForbiddenForOtherUser(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	created, err := engine.CreateBooking(context.Background(), 7, 10, []uint{1})
	require.NoError(t, err)

	bkg, err := engine.CancelBooking(context.Background(), created.ID, 99)

	require.Error(t, err)
	assert.Nil(t, bkg)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	assert.Equal(t, model.BookingPending, store.bookings[created.ID].Status, "status must be unchanged")
}

func TestCancelBooking_NotFound(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	_, err := engine.CancelBooking(context.Background(), 12345, 7)

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestAvailableSeats_Counts(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	_, err := engine.CreateBooking(context.Background(), 7, 10, []uint{1, 4})
	require.NoError(t, err)

	view, err := engine.AvailableSeats(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 6, view.TotalSeats)
	assert.Equal(t, 4, view.AvailableCount)
	assert.Equal(t, 2, view.BookedCount)
	assert.Len(t, view.Seats, 6)

	for _, seat := range view.Seats {
		if seat.ID == 1 || seat.ID == 4 {
			assert.False(t, seat.IsAvailable, "seat %d should be booked", seat.ID)
		} else {
			assert.True(t, seat.IsAvailable, "seat %d should be free", seat.ID)
		}
	}
}

func TestAvailableSeats_ShowtimeNotFound(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	_, err := engine.AvailableSeats(context.Background(), 404)

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestCheckShowtimeSlot_OverlapRejected(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	existing := store.showtimes[10]

	err := engine.CheckShowtimeSlot(context.Background(), 5,
		existing.StartTime.Add(30*time.Minute), existing.EndTime.Add(30*time.Minute), 0)

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestCheckShowtimeSlot_BackToBackRejected(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	existing := store.showtimes[10]

	// Starting exactly when the existing showtime ends counts as overlap.
	err := engine.CheckShowtimeSlot(context.Background(), 5,
		existing.EndTime, existing.EndTime.Add(2*time.Hour), 0)

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestCheckShowtimeSlot_GapAccepted(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	existing := store.showtimes[10]

	err := engine.CheckShowtimeSlot(context.Background(), 5,
		existing.EndTime.Add(time.Minute), existing.EndTime.Add(2*time.Hour), 0)
	assert.NoError(t, err)
}

func TestCheckShowtimeSlot_OtherScreenIgnored(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	existing := store.showtimes[10]

	err := engine.CheckShowtimeSlot(context.Background(), 6, existing.StartTime, existing.EndTime, 0)
	assert.NoError(t, err)
}

func TestCheckShowtimeSlot_ExcludesSelfOnUpdate(t *testing.T) {
	store := seedStore(t)
	engine := booking.NewEngine(store)

	existing := store.showtimes[10]

	err := engine.CheckShowtimeSlot(context.Background(), 5, existing.StartTime, existing.EndTime, existing.ID)
	assert.NoError(t, err)
}
