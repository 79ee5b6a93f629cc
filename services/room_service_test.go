package services

import (
	"context"
	"testing"

	apperrors "circuithouse-backend/errors"
	"circuithouse-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoomCreateDefaultsToVacant(t *testing.T) {
	store := newMockStore()
	svc := NewRoomService(store)

	store.rooms.On("Create", mock.Anything, mock.AnythingOfType("*models.Room")).Return(nil)

	created, err := svc.Create(context.Background(), models.Room{RoomNumber: " 204 "})
	require.NoError(t, err)
	assert.Equal(t, "204", created.RoomNumber)
	assert.Equal(t, models.RoomStatusVacant, created.AvailabilityStatus)
}

func TestRoomCreateRejectsUnknownStatus(t *testing.T) {
	store := newMockStore()
	svc := NewRoomService(store)

	_, err := svc.Create(context.Background(), models.Room{
		RoomNumber:         "204",
		AvailabilityStatus: "Occupied",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	store.rooms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRoomUpdateStripsProtectedFields(t *testing.T) {
	store := newMockStore()
	svc := NewRoomService(store)

	store.rooms.On("Updates", mock.Anything, uint(3), map[string]interface{}{
		"floor": "2",
	}).Return(nil)
	store.rooms.On("FindByID", mock.Anything, uint(3)).
		Return(models.Room{ID: 3, Floor: "2"}, nil)

	_, err := svc.Update(context.Background(), 3, map[string]interface{}{
		"id":         99,
		"created_at": "2020-01-01",
		"floor":      "2",
	})
	require.NoError(t, err)
	store.rooms.AssertExpectations(t)
}

func TestRoomUpdateValidatesStatusValue(t *testing.T) {
	store := newMockStore()
	svc := NewRoomService(store)

	_, err := svc.Update(context.Background(), 3, map[string]interface{}{
		"availability_status": "Occupied",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestRoomUpdateAllowsHousekeepingReset(t *testing.T) {
	store := newMockStore()
	svc := NewRoomService(store)

	store.rooms.On("Updates", mock.Anything, uint(3), map[string]interface{}{
		"availability_status": models.RoomStatusVacant,
	}).Return(nil)
	store.rooms.On("FindByID", mock.Anything, uint(3)).
		Return(models.Room{ID: 3, AvailabilityStatus: models.RoomStatusVacant}, nil)

	room, err := svc.Update(context.Background(), 3, map[string]interface{}{
		"availability_status": models.RoomStatusVacant,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusVacant, room.AvailabilityStatus)
}

func TestRoomDeleteBlockedByActiveGuest(t *testing.T) {
	store := newMockStore()
	svc := NewRoomService(store)

	store.rooms.On("FindByID", mock.Anything, uint(3)).Return(models.Room{ID: 3}, nil)
	store.guests.On("HasActiveForRoom", mock.Anything, uint(3)).Return(true, nil)

	err := svc.Delete(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	store.rooms.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRoomDeleteSucceedsWhenFree(t *testing.T) {
	store := newMockStore()
	svc := NewRoomService(store)

	store.rooms.On("FindByID", mock.Anything, uint(3)).Return(models.Room{ID: 3}, nil)
	store.guests.On("HasActiveForRoom", mock.Anything, uint(3)).Return(false, nil)
	store.rooms.On("Delete", mock.Anything, uint(3)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 3))
	store.assertExpectations(t)
}
