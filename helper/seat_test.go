package helper

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSeatGrid_Size(t *testing.T) {
	seats := BuildSeatGrid(42)

	assert.Len(t, seats, 64)
	for _, seat := range seats {
		assert.Equal(t, uint(42), seat.ShowId)
		assert.False(t, seat.Booked)
	}
}

func TestBuildSeatGrid_Labels(t *testing.T) {
	seats := BuildSeatGrid(1)

	// A1..A8, B1..B8, ..., H1..H8 in grid order.
	i := 0
	for r := 0; r < SeatRows; r++ {
		row := string(rune('A' + r))
		for col := 1; col <= SeatColumns; col++ {
			assert.Equal(t, row, seats[i].Row)
			assert.Equal(t, col, seats[i].Column)
			assert.Equal(t, fmt.Sprintf("%s%d", row, col), seats[i].Label)
			i++
		}
	}

	assert.Equal(t, "A1", seats[0].Label)
	assert.Equal(t, "H8", seats[63].Label)
}

func TestBuildSeatGrid_UniqueLabels(t *testing.T) {
	seats := BuildSeatGrid(7)

	seen := make(map[string]bool, len(seats))
	for _, seat := range seats {
		assert.False(t, seen[seat.Label], "duplicate label %s", seat.Label)
		seen[seat.Label] = true
	}
}
