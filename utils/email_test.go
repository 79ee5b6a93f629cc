package utils

import (
	"testing"
	"time"

	"circuithouse-backend/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGuest() models.Guest {
	roomID := uint(7)
	return models.Guest{
		ID:           42,
		Name:         "Arjun Mehta",
		Email:        "arjun@example.com",
		CheckInDate:  time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 12, 11, 59, 0, 0, time.UTC),
		RoomID:       &roomID,
		Room:         models.Room{ID: 7, RoomNumber: "204"},
	}
}

func TestRenderBookingEmail(t *testing.T) {
	m := NewMailer(SMTPConfig{}, "Circuit House", zerolog.Nop())

	plain, html, err := m.renderBookingEmail(testGuest())
	require.NoError(t, err)

	assert.Contains(t, plain, "Arjun Mehta")
	assert.Contains(t, plain, "Circuit House")
	assert.Contains(t, plain, "204")
	assert.Contains(t, plain, "2026-03-10 12:00")
	assert.Contains(t, plain, "2026-03-12 11:59")

	assert.Contains(t, html, "Arjun Mehta")
	assert.Contains(t, html, "Circuit House")
	assert.Contains(t, html, "204")
}

func TestRenderCheckoutEmail(t *testing.T) {
	m := NewMailer(SMTPConfig{}, "Circuit House", zerolog.Nop())

	plain, html, err := m.renderCheckoutEmail(testGuest())
	require.NoError(t, err)

	assert.Contains(t, plain, "Arjun Mehta")
	assert.Contains(t, plain, "Thank you for staying with us")
	assert.Contains(t, html, "Checkout Complete")
}

func TestSendWithoutSMTPConfigIsMocked(t *testing.T) {
	// No SMTP credentials: the mailer logs a mock line and reports success
	// so booking flows never fail on mail infrastructure.
	m := NewMailer(SMTPConfig{}, "Circuit House", zerolog.Nop())

	assert.NoError(t, m.SendBookingConfirmation(testGuest()))
	assert.NoError(t, m.SendCheckoutConfirmation(testGuest()))
}

func TestSendRequiresRecipient(t *testing.T) {
	m := NewMailer(SMTPConfig{}, "Circuit House", zerolog.Nop())

	guest := testGuest()
	guest.Email = "   "
	assert.Error(t, m.SendBookingConfirmation(guest))
}
