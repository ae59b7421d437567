package model

import "time"

const (
	ShowStatusScheduled = "SCHEDULED"
	ShowStatusFinished  = "FINISHED"
)

type Show struct {
	DTO
	MovieId   uint      `json:"movieId"`
	Movie     Movie     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:MovieId" json:"movie"`
	Screen    string    `gorm:"size:20;not null" validate:"required" json:"screen"`
	StartTime time.Time `gorm:"not null" validate:"required" json:"startTime"`
	Status    string    `gorm:"size:20;default:'SCHEDULED'" json:"status"`

	Seats []Seat `gorm:"foreignKey:ShowId" json:"seats,omitempty"`
}

// Seat belongs to exactly one show. The grid is created in bulk at show
// creation and rows are only ever mutated to flip Booked to true.
type Seat struct {
	DTO
	ShowId uint   `gorm:"not null;uniqueIndex:idx_show_seat_label" json:"showId"`
	Row    string `gorm:"size:2;not null" json:"row"`
	Column int    `gorm:"not null" json:"column"`
	Label  string `gorm:"size:4;not null;uniqueIndex:idx_show_seat_label" json:"label"`
	Booked bool   `gorm:"default:false" json:"booked"`
}

type CreateShowInput struct {
	MovieId   uint      `json:"movieId" validate:"required,gt=0"`
	Screen    string    `json:"screen" validate:"required"`
	StartTime time.Time `json:"startTime" validate:"required"`
}

type FilterShowInput struct {
	Pagination
	MovieId uint   `query:"movieId" validate:"omitempty,gt=0"`
	Status  string `query:"status" validate:"omitempty,oneof=SCHEDULED FINISHED"`
}
