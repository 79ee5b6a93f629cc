package services

import "circuithouse-backend/models"

// Notifier delivers guest-facing confirmation messages. Implementations are
// expected to be best-effort: the lifecycle service logs failures but never
// rolls back state because of them.
type Notifier interface {
	SendBookingConfirmation(guest models.Guest) error
	SendCheckoutConfirmation(guest models.Guest) error
}
