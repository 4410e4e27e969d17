package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
)

type Booking struct {
	DTO
	PublicCode  string          `gorm:"size:20;uniqueIndex" json:"publicCode"`
	UserId      uint            `gorm:"not null;index" json:"userId"`
	Total       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	Status      string          `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	CancelledAt *time.Time      `json:"cancelledAt,omitempty"`

	User    User     `gorm:"foreignKey:UserId" json:"-"`
	Tickets []Ticket `gorm:"foreignKey:BookingId" json:"tickets,omitempty"`
}

type CreateBookingInput struct {
	ShowtimeId uint   `json:"showtimeId" validate:"required,gt=0"`
	SeatIds    []uint `json:"seatIds" validate:"required,min=1,dive,gt=0"`
}
