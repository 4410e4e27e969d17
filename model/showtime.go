package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ShowtimeScheduled = "SCHEDULED"
	ShowtimeEnded     = "ENDED"
)

type Showtime struct {
	DTO
	StartTime time.Time       `gorm:"not null;index" json:"startTime"`
	EndTime   time.Time       `gorm:"not null" json:"endTime"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Status    string          `gorm:"size:20;not null;default:'SCHEDULED'" json:"status"`
	MovieId   uint            `gorm:"not null;index" json:"movieId"`
	ScreenId  uint            `gorm:"not null;index" json:"screenId"`
	Movie     Movie           `gorm:"foreignKey:MovieId" json:"movie,omitempty"`
	Screen    Screen          `gorm:"foreignKey:ScreenId" json:"screen,omitempty"`

	Tickets []Ticket `gorm:"foreignKey:ShowtimeId" json:"-"`
}

type CreateShowtimeInput struct {
	MovieId   uint            `json:"movieId" validate:"required,gt=0"`
	ScreenId  uint            `json:"screenId" validate:"required,gt=0"`
	StartTime time.Time       `json:"startTime" validate:"required"`
	EndTime   time.Time       `json:"endTime" validate:"required,gtfield=StartTime"`
	Price     decimal.Decimal `json:"price" validate:"required"`
}

type UpdateShowtimeInput struct {
	StartTime *time.Time       `json:"startTime"`
	EndTime   *time.Time       `json:"endTime"`
	Price     *decimal.Decimal `json:"price"`
}

type FilterShowtimeInput struct {
	Pagination
	MovieId  uint   `query:"movieId" json:"movieId" validate:"omitempty,gt=0"`
	ScreenId uint   `query:"screenId" json:"screenId" validate:"omitempty,gt=0"`
	Date     string `query:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
}
