package models

import (
	"time"

	"gorm.io/gorm"
)

// Availability statuses a room can be in. Transitions are owned by the
// lifecycle service; the only manual edit is the housekeeping reset back
// to vacant.
const (
	RoomStatusVacant            = "Vacant"
	RoomStatusBooked            = "Booked"
	RoomStatusNeedsHousekeeping = "Needs Housekeeping"
)

type Room struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomNumber  string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Category    string `json:"category" gorm:"type:varchar(100)"`
	Floor       string `json:"floor" gorm:"type:varchar(10)"`
	Description string `json:"description" gorm:"type:text"`

	AvailabilityStatus string `json:"availability_status" gorm:"column:availability_status;type:varchar(32);default:'Vacant'"`
}

// ValidRoomStatus reports whether s is one of the known availability values.
func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusVacant, RoomStatusBooked, RoomStatusNeedsHousekeeping:
		return true
	}
	return false
}
