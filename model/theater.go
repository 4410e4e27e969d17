package model

type Theater struct {
	DTO
	Name    string `gorm:"size:255;not null" json:"name"`
	City    string `gorm:"size:100" json:"city"`
	Address string `gorm:"size:255" json:"address"`

	Screens []Screen `gorm:"foreignKey:TheaterId;constraint:OnDelete:CASCADE" json:"screens,omitempty"`
}

type CreateTheaterInput struct {
	Name    string `json:"name" validate:"required"`
	City    string `json:"city" validate:"omitempty"`
	Address string `json:"address" validate:"omitempty"`
}

type UpdateTheaterInput struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	City    *string `json:"city"`
	Address *string `json:"address"`
}
