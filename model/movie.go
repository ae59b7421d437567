package model

type Movie struct {
	DTO
	Title       string `gorm:"size:255;not null" validate:"required" json:"title"`
	Slug        string `gorm:"uniqueIndex;size:255" json:"slug"`
	Duration    int    `gorm:"not null" validate:"required,gt=0" json:"duration"` // minutes
	Genre       string `gorm:"size:50" json:"genre"`
	Rating      string `gorm:"size:10" json:"rating"`
	Description string `json:"description"`
	PosterUrl   string `json:"posterUrl"`
	Status      string `gorm:"size:20;default:'COMING_SOON'" json:"status"` // COMING_SOON, NOW_SHOWING, ENDED

	Shows []Show `gorm:"foreignKey:MovieId" json:"shows,omitempty"`
}

type CreateMovieInput struct {
	Title       string `json:"title" validate:"required"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	Genre       string `json:"genre" validate:"required"`
	Rating      string `json:"rating" validate:"omitempty"`
	Description string `json:"description"`
	PosterUrl   string `json:"posterUrl" validate:"omitempty,url"`
}

type FilterMovieInput struct {
	Pagination
	Genre  string `query:"genre"`
	Status string `query:"status" validate:"omitempty,oneof=COMING_SOON NOW_SHOWING ENDED"`
}
