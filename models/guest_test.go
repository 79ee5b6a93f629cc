package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStayDatesPinsTimes(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	guest := Guest{
		CheckInDate:  time.Date(2026, 3, 10, 18, 30, 45, 123, loc),
		CheckOutDate: time.Date(2026, 3, 12, 7, 5, 9, 456, loc),
	}

	guest.NormalizeStayDates()

	assert.Equal(t, time.Date(2026, 3, 10, 12, 0, 0, 0, loc), guest.CheckInDate)
	assert.Equal(t, time.Date(2026, 3, 12, 11, 59, 0, 0, loc), guest.CheckOutDate)
}

func TestNormalizeStayDatesKeepsCalendarDay(t *testing.T) {
	// A check-in after noon still lands on the same calendar day.
	guest := Guest{
		CheckInDate:  time.Date(2026, 3, 10, 23, 45, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 11, 0, 10, 0, 0, time.UTC),
	}

	guest.NormalizeStayDates()

	assert.Equal(t, 10, guest.CheckInDate.Day())
	assert.Equal(t, 11, guest.CheckOutDate.Day())
}

func TestValidRoomStatus(t *testing.T) {
	assert.True(t, ValidRoomStatus(RoomStatusVacant))
	assert.True(t, ValidRoomStatus(RoomStatusBooked))
	assert.True(t, ValidRoomStatus(RoomStatusNeedsHousekeeping))
	assert.False(t, ValidRoomStatus("Occupied"))
	assert.False(t, ValidRoomStatus(""))
}
