package helper

import (
	"cinebook/model"
	"fmt"

	"gorm.io/gorm"
)

// Fixed seating layout for every show.
const (
	SeatRows    = 8 // rows A-H
	SeatColumns = 8 // columns 1-8
)

// BuildSeatGrid returns the full seat grid for a show: rows A-H by
// columns 1-8, labels "A1".."H8", all unbooked.
func BuildSeatGrid(showId uint) []model.Seat {
	seats := make([]model.Seat, 0, SeatRows*SeatColumns)
	for r := 0; r < SeatRows; r++ {
		row := string(rune('A' + r))
		for col := 1; col <= SeatColumns; col++ {
			seats = append(seats, model.Seat{
				ShowId: showId,
				Row:    row,
				Column: col,
				Label:  fmt.Sprintf("%s%d", row, col),
				Booked: false,
			})
		}
	}
	return seats
}

// CreateShowSeats bulk-inserts the seat grid inside the show-creation
// transaction so a show is never visible with partial seating.
func CreateShowSeats(tx *gorm.DB, showId uint) error {
	seats := BuildSeatGrid(showId)
	return tx.Create(&seats).Error
}
