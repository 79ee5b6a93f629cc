package models

import (
	"time"

	"gorm.io/datatypes"
)

// FoodOrder is an ancillary billing line with no room-lifecycle impact.
type FoodOrder struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Item       string  `json:"item" gorm:"type:varchar(150)"`
	Quantity   int     `json:"quantity"`
	Amount     float64 `json:"amount"`
	RoomNumber string  `json:"roomNumber" gorm:"column:room_number;type:varchar(50)"`

	Date datatypes.Date `json:"date"`
}

// NewFoodOrder stamps the order with the server's current date. Any
// client-supplied date is ignored on purpose.
func NewFoodOrder(item string, quantity int, amount float64, roomNumber string) FoodOrder {
	if quantity <= 0 {
		quantity = 1
	}
	return FoodOrder{
		Item:       item,
		Quantity:   quantity,
		Amount:     amount,
		RoomNumber: roomNumber,
		Date:       datatypes.Date(time.Now()),
	}
}
