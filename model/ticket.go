package model

// Ticket records one seat claimed for one showtime. The composite unique index
// on (showtime_id, seat_id) is the schema-level guarantee that a seat can be
// ticketed at most once per showtime, whatever the transaction interleaving.
type Ticket struct {
	DTO
	TicketCode string `gorm:"size:20;uniqueIndex" json:"ticketCode"`
	BookingId  uint   `gorm:"not null;index" json:"bookingId"`
	ShowtimeId uint   `gorm:"not null;uniqueIndex:uq_ticket_showtime_seat" json:"showtimeId"`
	SeatId     uint   `gorm:"not null;uniqueIndex:uq_ticket_showtime_seat" json:"seatId"`

	Booking  Booking  `gorm:"foreignKey:BookingId" json:"-"`
	Showtime Showtime `gorm:"foreignKey:ShowtimeId" json:"showtime,omitempty"`
	Seat     Seat     `gorm:"foreignKey:SeatId" json:"seat,omitempty"`
}
