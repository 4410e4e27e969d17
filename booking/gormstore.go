package booking

import (
	"context"
	"errors"
	"time"

	"movie_booking/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on a Postgres-backed *gorm.DB.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transact(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) GetShowtime(ctx context.Context, id uint) (*model.Showtime, error) {
	var st model.Showtime
	if err := s.db.WithContext(ctx).First(&st, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

func (s *GormStore) LockSeats(ctx context.Context, screenID uint, seatIDs []uint) ([]model.Seat, error) {
	var seats []model.Seat
	// Locked in id order so two bookings over the same seats cannot deadlock.
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("screen_id = ? AND id IN ?", screenID, seatIDs).
		Order("id").
		Find(&seats).Error
	if err != nil {
		return nil, err
	}
	return seats, nil
}

func (s *GormStore) GetSeatsForScreen(ctx context.Context, screenID uint) ([]model.Seat, error) {
	var seats []model.Seat
	err := s.db.WithContext(ctx).
		Where("screen_id = ?", screenID).
		Order("row asc, number asc").
		Find(&seats).Error
	return seats, err
}

func (s *GormStore) FindTicketsByShowtimeAndSeats(ctx context.Context, showtimeID uint, seatIDs []uint) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := s.db.WithContext(ctx).
		Where("showtime_id = ? AND seat_id IN ?", showtimeID, seatIDs).
		Find(&tickets).Error
	return tickets, err
}

func (s *GormStore) FindTicketsByShowtime(ctx context.Context, showtimeID uint) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := s.db.WithContext(ctx).
		Where("showtime_id = ?", showtimeID).
		Find(&tickets).Error
	return tickets, err
}

func (s *GormStore) CreateBookingWithTickets(ctx context.Context, b *model.Booking) error {
	if err := s.db.WithContext(ctx).Create(b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSeatTaken
		}
		return err
	}
	return nil
}

func (s *GormStore) GetBooking(ctx context.Context, id uint) (*model.Booking, error) {
	var b model.Booking
	if err := s.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (s *GormStore) GetBookingDetail(ctx context.Context, id uint) (*model.Booking, error) {
	var b model.Booking
	err := s.db.WithContext(ctx).
		Preload("Tickets").
		Preload("Tickets.Seat").
		Preload("Tickets.Showtime").
		Preload("Tickets.Showtime.Movie").
		First(&b, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (s *GormStore) UpdateBookingStatus(ctx context.Context, id uint, status string, cancelledAt *time.Time) error {
	updates := map[string]any{"status": status}
	if cancelledAt != nil {
		updates["cancelled_at"] = cancelledAt
	}
	return s.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (s *GormStore) FindOverlappingShowtime(ctx context.Context, screenID uint, start, end time.Time, excludeID uint) (*model.Showtime, error) {
	var st model.Showtime
	// Inclusive bounds: a showtime starting exactly when another ends counts
	// as overlapping, so back-to-back slots on one screen are rejected.
	q := s.db.WithContext(ctx).
		Where("screen_id = ? AND start_time <= ? AND end_time >= ?", screenID, end, start)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}
