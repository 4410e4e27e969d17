package model

import "time"

type Movie struct {
	DTO
	Title       string     `gorm:"size:255;not null" json:"title"`
	Slug        string     `gorm:"size:255;uniqueIndex" json:"slug"`
	Description string     `json:"description"`
	DurationMin int        `json:"durationMin"`
	Genre       string     `gorm:"size:100" json:"genre"`
	Rating      string     `gorm:"size:10" json:"rating"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
	PosterUrl   *string    `json:"posterUrl,omitempty"`

	Showtimes []Showtime `gorm:"foreignKey:MovieId" json:"-"`
}

type CreateMovieInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"omitempty"`
	DurationMin int        `json:"durationMin" validate:"required,gt=0"`
	Genre       string     `json:"genre" validate:"omitempty"`
	Rating      string     `json:"rating" validate:"omitempty"`
	ReleaseDate *time.Time `json:"releaseDate" validate:"omitempty"`
	PosterUrl   *string    `json:"posterUrl" validate:"omitempty,url"`
}

type UpdateMovieInput struct {
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	DurationMin *int       `json:"durationMin" validate:"omitempty,gt=0"`
	Genre       *string    `json:"genre"`
	Rating      *string    `json:"rating"`
	ReleaseDate *time.Time `json:"releaseDate"`
	PosterUrl   *string    `json:"posterUrl" validate:"omitempty,url"`
}

type FilterMovieInput struct {
	Pagination
	Genre  string `query:"genre" json:"genre"`
	Search string `query:"search" json:"search"`
}
