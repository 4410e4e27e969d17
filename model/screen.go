package model

type Screen struct {
	DTO
	Name       string  `gorm:"size:100;not null;uniqueIndex:uq_screen_theater_name" json:"name"`
	Capacity   int     `json:"capacity"`
	TheaterId  uint    `gorm:"not null;uniqueIndex:uq_screen_theater_name" json:"theaterId"`
	Theater    Theater `gorm:"foreignKey:TheaterId" json:"theater,omitempty"`

	Seats     []Seat     `gorm:"foreignKey:ScreenId;constraint:OnDelete:CASCADE" json:"seats,omitempty"`
	Showtimes []Showtime `gorm:"foreignKey:ScreenId" json:"-"`
}

type CreateScreenInput struct {
	Name      string `json:"name" validate:"required"`
	Capacity  int    `json:"capacity" validate:"omitempty,gte=0"`
	TheaterId uint   `json:"theaterId" validate:"required,gt=0"`
}

type UpdateScreenInput struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Capacity *int    `json:"capacity" validate:"omitempty,gte=0"`
}
