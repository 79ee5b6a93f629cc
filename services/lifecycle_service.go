package services

import (
	"context"
	"fmt"

	apperrors "circuithouse-backend/errors"
	"circuithouse-backend/models"
	"circuithouse-backend/repository"

	"github.com/rs/zerolog"
)

// LifecycleService keeps Room.availability_status consistent with booking
// and checkout events and triggers guest notifications. Each operation runs
// its guest and room writes inside one transaction with the room row locked,
// so concurrent requests against the same room serialize.
type LifecycleService struct {
	store    repository.Store
	notifier Notifier
	logger   zerolog.Logger
}

func NewLifecycleService(store repository.Store, notifier Notifier, logger zerolog.Logger) *LifecycleService {
	return &LifecycleService{store: store, notifier: notifier, logger: logger}
}

func validateBookingFields(guest models.Guest) error {
	if guest.RoomID == nil || *guest.RoomID == 0 {
		return apperrors.Validation("room reference is required")
	}
	if guest.Name == "" {
		return apperrors.Validation("guest name is required")
	}
	if guest.Email == "" {
		return apperrors.Validation("guest email is required")
	}
	if guest.CheckInDate.IsZero() || guest.CheckOutDate.IsZero() {
		return apperrors.Validation("check-in and check-out dates are required")
	}
	if guest.CheckOutDate.Before(guest.CheckInDate) {
		return apperrors.Validation("check-out date is before check-in date")
	}
	return nil
}

// CreateBooking registers a stay: times are normalized (check-in 12:00:00,
// check-out 11:59:00), the guest is persisted and the room flips to Booked,
// all atomically. Booking a room that is not vacant fails with a conflict.
func (s *LifecycleService) CreateBooking(ctx context.Context, guest models.Guest) (models.Guest, error) {
	if err := validateBookingFields(guest); err != nil {
		return models.Guest{}, err
	}

	guest.NormalizeStayDates()
	guest.Room = models.Room{}

	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		room, err := tx.Rooms().FindByIDForUpdate(ctx, *guest.RoomID)
		if err != nil {
			return err
		}
		if room.AvailabilityStatus != models.RoomStatusVacant {
			return apperrors.Conflict(fmt.Sprintf("room %s is not vacant", room.RoomNumber))
		}
		if err := tx.Guests().Create(ctx, &guest); err != nil {
			return err
		}
		return tx.Rooms().UpdateStatus(ctx, room.ID, models.RoomStatusBooked)
	})
	if err != nil {
		return models.Guest{}, err
	}

	created, err := s.store.Guests().FindByID(ctx, guest.ID)
	if err != nil {
		s.logger.Error().Err(err).Uint("guest_id", guest.ID).Msg("reload created booking failed")
		created = guest
	}

	if err := s.notifier.SendBookingConfirmation(created); err != nil {
		s.logger.Error().Err(err).Uint("guest_id", created.ID).Msg("booking confirmation not sent")
	}

	s.logger.Info().Uint("guest_id", created.ID).Uint("room_id", *created.RoomID).
		Msg("booking created")
	return created, nil
}

// UpdateBooking replaces the guest's booking details. When the room
// reference changes, the previous room is released to Vacant and the new one
// flips to Booked; an unchanged room causes no status writes at all.
func (s *LifecycleService) UpdateBooking(ctx context.Context, id uint, changes models.Guest) (models.Guest, error) {
	if err := validateBookingFields(changes); err != nil {
		return models.Guest{}, err
	}

	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		current, err := tx.Guests().FindByID(ctx, id)
		if err != nil {
			return err
		}

		previousRoomID := current.RoomID
		roomChanged := previousRoomID == nil || *previousRoomID != *changes.RoomID

		if roomChanged {
			next, err := tx.Rooms().FindByIDForUpdate(ctx, *changes.RoomID)
			if err != nil {
				return err
			}
			if next.AvailabilityStatus != models.RoomStatusVacant {
				return apperrors.Conflict(fmt.Sprintf("room %s is not vacant", next.RoomNumber))
			}
		}

		current.Name = changes.Name
		current.Email = changes.Email
		current.Phone = changes.Phone
		current.Address = changes.Address
		current.CheckInDate = changes.CheckInDate
		current.CheckOutDate = changes.CheckOutDate
		current.RoomID = changes.RoomID
		current.NormalizeStayDates()
		current.Room = models.Room{}

		if err := tx.Guests().Save(ctx, &current); err != nil {
			return err
		}

		if roomChanged {
			if previousRoomID != nil {
				if err := tx.Rooms().UpdateStatus(ctx, *previousRoomID, models.RoomStatusVacant); err != nil {
					return err
				}
			}
			if err := tx.Rooms().UpdateStatus(ctx, *changes.RoomID, models.RoomStatusBooked); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Guest{}, err
	}

	return s.store.Guests().FindByID(ctx, id)
}

// GetBooking loads one guest with its room.
func (s *LifecycleService) GetBooking(ctx context.Context, id uint) (models.Guest, error) {
	return s.store.Guests().FindByID(ctx, id)
}

// DeleteBooking removes a guest record. When the guest was still in-house
// (no checkout recorded) the room is released back to Vacant in the same
// transaction.
func (s *LifecycleService) DeleteBooking(ctx context.Context, id uint) error {
	return s.store.WithTx(ctx, func(tx repository.Store) error {
		guest, err := tx.Guests().FindByID(ctx, id)
		if err != nil {
			return err
		}
		checkedOut, err := tx.Checkouts().ExistsForGuest(ctx, id)
		if err != nil {
			return err
		}
		if !checkedOut && guest.RoomID != nil {
			if err := tx.Rooms().UpdateStatus(ctx, *guest.RoomID, models.RoomStatusVacant); err != nil {
				return err
			}
		}
		return tx.Guests().Delete(ctx, id)
	})
}

// RecordCheckout creates the checkout summary for a guest and flips their
// room to Needs Housekeeping, atomically. An unknown guest fails not-found
// without touching any room; a repeated checkout fails with a conflict.
func (s *LifecycleService) RecordCheckout(ctx context.Context, guestID uint, paymentStatus, billBy string) (models.CheckoutSummary, error) {
	if guestID == 0 {
		return models.CheckoutSummary{}, apperrors.Validation("guest_id is required")
	}
	if paymentStatus == "" {
		return models.CheckoutSummary{}, apperrors.Validation("payment status is required")
	}

	var summary models.CheckoutSummary
	var guest models.Guest
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		guest, err = tx.Guests().FindByID(ctx, guestID)
		if err != nil {
			return err
		}

		exists, err := tx.Checkouts().ExistsForGuest(ctx, guestID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.Conflict("guest has already checked out")
		}
		if guest.RoomID == nil {
			return apperrors.Validation("guest has no room assigned")
		}

		summary = models.NewCheckoutSummary(guest.ID, paymentStatus, billBy)
		if err := tx.Checkouts().Create(ctx, &summary); err != nil {
			return err
		}

		room, err := tx.Rooms().FindByIDForUpdate(ctx, *guest.RoomID)
		if err != nil {
			return err
		}
		return tx.Rooms().UpdateStatus(ctx, room.ID, models.RoomStatusNeedsHousekeeping)
	})
	if err != nil {
		return models.CheckoutSummary{}, err
	}

	summary.Guest = guest

	if err := s.notifier.SendCheckoutConfirmation(guest); err != nil {
		s.logger.Error().Err(err).Uint("guest_id", guest.ID).Msg("checkout confirmation not sent")
	}

	s.logger.Info().Uint("guest_id", guest.ID).Str("receipt", summary.ReceiptNumber).
		Msg("checkout recorded")
	return summary, nil
}

// ListBookableGuests returns guests with no checkout summary: those still
// in-house or pending checkout.
func (s *LifecycleService) ListBookableGuests(ctx context.Context) ([]models.Guest, error) {
	return s.store.Guests().ListWithoutCheckout(ctx)
}

// ListAllGuests returns every guest record, newest first.
func (s *LifecycleService) ListAllGuests(ctx context.Context) ([]models.Guest, error) {
	return s.store.Guests().ListAll(ctx)
}

// ListCheckouts returns checkout summaries, newest first.
func (s *LifecycleService) ListCheckouts(ctx context.Context) ([]models.CheckoutSummary, error) {
	return s.store.Checkouts().ListNewestFirst(ctx)
}
