package models

import (
	"time"
)

// Guest is the booking record: one row per stay, owning a single room for
// its duration. A guest stays "active" until a CheckoutSummary references it.
type Guest struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address" gorm:"type:text"`

	CheckInDate  time.Time `json:"check_in_date" gorm:"column:check_in_date"`
	CheckOutDate time.Time `json:"check_out_date" gorm:"column:check_out_date"`

	RoomID *uint `gorm:"index;column:room_id" json:"room_id"`
	Room   Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// Front-desk cutover times. Check-in opens at noon; check-out closes a
// minute before so the same calendar day can be sold twice.
const (
	checkInHour    = 12
	checkOutHour   = 11
	checkOutMinute = 59
)

// NormalizeStayDates pins the time-of-day of both stay boundaries,
// overwriting whatever the client sent: check-in becomes 12:00:00 and
// check-out becomes 11:59:00 on their respective dates.
func (g *Guest) NormalizeStayDates() {
	g.CheckInDate = atTimeOfDay(g.CheckInDate, checkInHour, 0, 0)
	g.CheckOutDate = atTimeOfDay(g.CheckOutDate, checkOutHour, checkOutMinute, 0)
}

func atTimeOfDay(t time.Time, hour, min, sec int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, min, sec, 0, t.Location())
}
