package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutSummary records one checkout event for a guest.
type CheckoutSummary struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	GuestID uint  `gorm:"index;column:guest_id" json:"guest_id"`
	Guest   Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`

	PaymentStatus string `json:"payment_status" gorm:"column:payment_status;type:varchar(32)"`
	BillBy        string `json:"bill_by" gorm:"column:bill_by;type:varchar(100)"`
	ReceiptNumber string `json:"receipt_number" gorm:"column:receipt_number;type:varchar(64)"`
}

// NewCheckoutSummary assigns the receipt number at the call site rather than
// in a persistence hook.
func NewCheckoutSummary(guestID uint, paymentStatus, billBy string) CheckoutSummary {
	return CheckoutSummary{
		GuestID:       guestID,
		PaymentStatus: paymentStatus,
		BillBy:        billBy,
		ReceiptNumber: uuid.NewString(),
	}
}
