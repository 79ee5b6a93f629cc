package models

import (
	"time"

	"gorm.io/datatypes"
)

// OtherCost covers miscellaneous charges (laundry, transport, damages).
type OtherCost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Description string  `json:"description" gorm:"type:varchar(255)"`
	Amount      float64 `json:"amount"`

	Date datatypes.Date `json:"date"`
}

// NewOtherCost stamps the record with the server's current date, ignoring
// any client-supplied value.
func NewOtherCost(description string, amount float64) OtherCost {
	return OtherCost{
		Description: description,
		Amount:      amount,
		Date:        datatypes.Date(time.Now()),
	}
}
