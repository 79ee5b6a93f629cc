package services

import (
	"context"
	"strings"

	apperrors "circuithouse-backend/errors"
	"circuithouse-backend/models"
	"circuithouse-backend/repository"
)

type RoomService struct {
	store repository.Store
}

func NewRoomService(store repository.Store) *RoomService {
	return &RoomService{store: store}
}

func (s *RoomService) GetAll(ctx context.Context) ([]models.Room, error) {
	return s.store.Rooms().List(ctx)
}

func (s *RoomService) GetByID(ctx context.Context, id uint) (models.Room, error) {
	return s.store.Rooms().FindByID(ctx, id)
}

func (s *RoomService) Create(ctx context.Context, room models.Room) (models.Room, error) {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return models.Room{}, apperrors.Validation("room number is required")
	}
	if room.AvailabilityStatus == "" {
		room.AvailabilityStatus = models.RoomStatusVacant
	}
	if !models.ValidRoomStatus(room.AvailabilityStatus) {
		return models.Room{}, apperrors.Validation("unknown availability status: " + room.AvailabilityStatus)
	}
	if err := s.store.Rooms().Create(ctx, &room); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

// Update applies a partial field update. Protected columns are stripped and
// a status edit must name a known value (this is how housekeeping resets a
// room back to Vacant).
func (s *RoomService) Update(ctx context.Context, id uint, fields map[string]interface{}) (models.Room, error) {
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "createdAt")
	delete(fields, "updated_at")
	delete(fields, "updatedAt")
	delete(fields, "deleted_at")

	if raw, ok := fields["availability_status"]; ok {
		status, _ := raw.(string)
		if !models.ValidRoomStatus(status) {
			return models.Room{}, apperrors.Validation("unknown availability status")
		}
	}
	if len(fields) == 0 {
		return models.Room{}, apperrors.Validation("no updatable fields in payload")
	}

	if err := s.store.Rooms().Updates(ctx, id, fields); err != nil {
		return models.Room{}, err
	}
	return s.store.Rooms().FindByID(ctx, id)
}

// Delete refuses to remove a room that still has an in-house guest.
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	return s.store.WithTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Rooms().FindByID(ctx, id); err != nil {
			return err
		}
		active, err := tx.Guests().HasActiveForRoom(ctx, id)
		if err != nil {
			return err
		}
		if active {
			return apperrors.Conflict("room is assigned to an active guest")
		}
		return tx.Rooms().Delete(ctx, id)
	})
}
