package model

type Seat struct {
	DTO
	Row      string `gorm:"size:5;not null;uniqueIndex:uq_seat_screen_row_number" json:"row"`    // e.g., "A", "B"
	Number   int    `gorm:"not null;uniqueIndex:uq_seat_screen_row_number" json:"number"`        // e.g., 1, 2
	ScreenId uint   `gorm:"not null;uniqueIndex:uq_seat_screen_row_number" json:"screenId"`
	Screen   Screen `gorm:"foreignKey:ScreenId" json:"-"`
}

type CreateSeatsInput struct {
	ScreenId    uint     `json:"screenId" validate:"required,gt=0"`
	Rows        []string `json:"rows" validate:"required,min=1,dive,required,alpha"`
	SeatsPerRow int      `json:"seatsPerRow" validate:"required,gt=0,lte=100"`
}
