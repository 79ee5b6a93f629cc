package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewFoodOrderStampsTodayAndDefaultsQuantity(t *testing.T) {
	order := NewFoodOrder("Club Sandwich", 0, 450, "204")

	assert.Equal(t, "Club Sandwich", order.Item)
	assert.Equal(t, 1, order.Quantity)
	assert.Equal(t, 450.0, order.Amount)
	assert.Equal(t, time.Now().Format("2006-01-02"), time.Time(order.Date).Format("2006-01-02"))
}

func TestNewFoodOrderKeepsExplicitQuantity(t *testing.T) {
	order := NewFoodOrder("Masala Chai", 3, 90, "110")
	assert.Equal(t, 3, order.Quantity)
}

func TestNewOtherCostStampsToday(t *testing.T) {
	cost := NewOtherCost("Laundry", 120)

	assert.Equal(t, "Laundry", cost.Description)
	assert.Equal(t, 120.0, cost.Amount)
	assert.Equal(t, time.Now().Format("2006-01-02"), time.Time(cost.Date).Format("2006-01-02"))
}

func TestNewCheckoutSummaryAssignsUniqueReceipts(t *testing.T) {
	a := NewCheckoutSummary(1, "paid", "frontdesk1")
	b := NewCheckoutSummary(1, "paid", "frontdesk1")

	assert.NotEmpty(t, a.ReceiptNumber)
	assert.NotEmpty(t, b.ReceiptNumber)
	assert.NotEqual(t, a.ReceiptNumber, b.ReceiptNumber)
	assert.Equal(t, uint(1), a.GuestID)
}
