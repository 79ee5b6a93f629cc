package services

import (
	"context"
	"testing"
	"time"

	apperrors "circuithouse-backend/errors"
	"circuithouse-backend/models"
	"circuithouse-backend/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRoomStore struct{ mock.Mock }

func (m *mockRoomStore) List(ctx context.Context) ([]models.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *mockRoomStore) FindByID(ctx context.Context, id uint) (models.Room, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Room), args.Error(1)
}

func (m *mockRoomStore) FindByIDForUpdate(ctx context.Context, id uint) (models.Room, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Room), args.Error(1)
}

func (m *mockRoomStore) Create(ctx context.Context, room *models.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *mockRoomStore) Updates(ctx context.Context, id uint, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *mockRoomStore) UpdateStatus(ctx context.Context, id uint, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockRoomStore) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockGuestStore struct{ mock.Mock }

func (m *mockGuestStore) FindByID(ctx context.Context, id uint) (models.Guest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Guest), args.Error(1)
}

func (m *mockGuestStore) ListWithoutCheckout(ctx context.Context) ([]models.Guest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Guest), args.Error(1)
}

func (m *mockGuestStore) ListAll(ctx context.Context) ([]models.Guest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Guest), args.Error(1)
}

func (m *mockGuestStore) HasActiveForRoom(ctx context.Context, roomID uint) (bool, error) {
	args := m.Called(ctx, roomID)
	return args.Bool(0), args.Error(1)
}

func (m *mockGuestStore) Create(ctx context.Context, guest *models.Guest) error {
	return m.Called(ctx, guest).Error(0)
}

func (m *mockGuestStore) Save(ctx context.Context, guest *models.Guest) error {
	return m.Called(ctx, guest).Error(0)
}

func (m *mockGuestStore) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockCheckoutStore struct{ mock.Mock }

func (m *mockCheckoutStore) Create(ctx context.Context, summary *models.CheckoutSummary) error {
	return m.Called(ctx, summary).Error(0)
}

func (m *mockCheckoutStore) ListNewestFirst(ctx context.Context) ([]models.CheckoutSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CheckoutSummary), args.Error(1)
}

func (m *mockCheckoutStore) ExistsForGuest(ctx context.Context, guestID uint) (bool, error) {
	args := m.Called(ctx, guestID)
	return args.Bool(0), args.Error(1)
}

// mockStore runs WithTx callbacks against itself, so transactional code paths
// exercise the same mocks as non-transactional ones.
type mockStore struct {
	rooms     *mockRoomStore
	guests    *mockGuestStore
	checkouts *mockCheckoutStore
}

func newMockStore() *mockStore {
	return &mockStore{
		rooms:     &mockRoomStore{},
		guests:    &mockGuestStore{},
		checkouts: &mockCheckoutStore{},
	}
}

func (m *mockStore) Rooms() repository.RoomStore         { return m.rooms }
func (m *mockStore) Guests() repository.GuestStore       { return m.guests }
func (m *mockStore) Checkouts() repository.CheckoutStore { return m.checkouts }

func (m *mockStore) WithTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(m)
}

func (m *mockStore) assertExpectations(t *testing.T) {
	m.rooms.AssertExpectations(t)
	m.guests.AssertExpectations(t)
	m.checkouts.AssertExpectations(t)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) SendBookingConfirmation(guest models.Guest) error {
	return m.Called(guest).Error(0)
}

func (m *mockNotifier) SendCheckoutConfirmation(guest models.Guest) error {
	return m.Called(guest).Error(0)
}

func uintPtr(v uint) *uint { return &v }

func validGuest(roomID uint) models.Guest {
	return models.Guest{
		Name:         "Arjun Mehta",
		Email:        "arjun@example.com",
		Phone:        "555-0101",
		CheckInDate:  time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC),
		RoomID:       uintPtr(roomID),
	}
}

func newLifecycleForTest(store *mockStore, notifier *mockNotifier) *LifecycleService {
	return NewLifecycleService(store, notifier, zerolog.Nop())
}

func TestCreateBookingMarksRoomBookedAndNormalizesTimes(t *testing.T) {
	store := newMockStore()
	notifier := &mockNotifier{}
	svc := newLifecycleForTest(store, notifier)

	store.rooms.On("FindByIDForUpdate", mock.Anything, uint(7)).
		Return(models.Room{ID: 7, RoomNumber: "204", AvailabilityStatus: models.RoomStatusVacant}, nil)
	store.guests.On("Create", mock.Anything, mock.AnythingOfType("*models.Guest")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Guest).ID = 42
		}).
		Return(nil)
	store.rooms.On("UpdateStatus", mock.Anything, uint(7), models.RoomStatusBooked).Return(nil)

	reloaded := validGuest(7)
	reloaded.ID = 42
	store.guests.On("FindByID", mock.Anything, uint(42)).Return(reloaded, nil)
	notifier.On("SendBookingConfirmation", mock.AnythingOfType("models.Guest")).Return(nil)

	created, err := svc.CreateBooking(context.Background(), validGuest(7))
	require.NoError(t, err)
	assert.Equal(t, uint(42), created.ID)

	persisted := store.guests.Calls[0].Arguments.Get(1).(*models.Guest)
	assert.Equal(t, 12, persisted.CheckInDate.Hour())
	assert.Equal(t, 0, persisted.CheckInDate.Minute())
	assert.Equal(t, 0, persisted.CheckInDate.Second())
	assert.Equal(t, 11, persisted.CheckOutDate.Hour())
	assert.Equal(t, 59, persisted.CheckOutDate.Minute())
	assert.Equal(t, 0, persisted.CheckOutDate.Second())

	store.assertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateBookingRejectsOccupiedRoom(t *testing.T) {
	store := newMockStore()
	notifier := &mockNotifier{}
	svc := newLifecycleForTest(store, notifier)

	store.rooms.On("FindByIDForUpdate", mock.Anything, uint(7)).
		Return(models.Room{ID: 7, RoomNumber: "204", AvailabilityStatus: models.RoomStatusBooked}, nil)

	_, err := svc.CreateBooking(context.Background(), validGuest(7))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	store.guests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	store.rooms.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendBookingConfirmation", mock.Anything)
}

func TestCreateBookingValidation(t *testing.T) {
	store := newMockStore()
	notifier := &mockNotifier{}
	svc := newLifecycleForTest(store, notifier)

	cases := map[string]func(*models.Guest){
		"missing room":  func(g *models.Guest) { g.RoomID = nil },
		"missing name":  func(g *models.Guest) { g.Name = "" },
		"missing email": func(g *models.Guest) { g.Email = "" },
		"reversed dates": func(g *models.Guest) {
			g.CheckInDate, g.CheckOutDate = g.CheckOutDate, g.CheckInDate.Add(-72*time.Hour)
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			guest := validGuest(7)
			mutate(&guest)
			_, err := svc.CreateBooking(context.Background(), guest)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}

	store.rooms.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything)
}

func TestUpdateBookingMovesRooms(t *testing.T) {
	store := newMockStore()
	notifier := &mockNotifier{}
	svc := newLifecycleForTest(store, notifier)

	current := validGuest(1)
	current.ID = 42
	store.guests.On("FindByID", mock.Anything, uint(42)).Return(current, nil).Once()
	store.rooms.On("FindByIDForUpdate", mock.Anything, uint(2)).
		Return(models.Room{ID: 2, RoomNumber: "301", AvailabilityStatus: models.RoomStatusVacant}, nil)
	store.guests.On("Save", mock.Anything, mock.AnythingOfType("*models.Guest")).Return(nil)
	store.rooms.On("UpdateStatus", mock.Anything, uint(1), models.RoomStatusVacant).Return(nil)
	store.rooms.On("UpdateStatus", mock.Anything, uint(2), models.RoomStatusBooked).Return(nil)

	moved := validGuest(2)
	moved.ID = 42
	store.guests.On("FindByID", mock.Anything, uint(42)).Return(moved, nil).Once()

	updated, err := svc.UpdateBooking(context.Background(), 42, validGuest(2))
	require.NoError(t, err)
	assert.Equal(t, uint(2), *updated.RoomID)
	store.assertExpectations(t)
}

func TestUpdateBookingSameRoomSkipsStatusWrites(t *testing.T) {
	store := newMockStore()
	notifier := &mockNotifier{}
	svc := newLifecycleForTest(store, notifier)

	current := validGuest(1)
	current.ID = 42
	store.guests.On("FindByID", mock.Anything, uint(42)).Return(current, nil)
	store.guests.On("Save", mock.Anything, mock.AnythingOfType("*models.Guest")).Return(nil)

	changes := validGuest(1)
	changes.Name = "Arjun K. Mehta"

	_, err := svc.UpdateBooking(context.Background(), 42, changes)
	require.NoError(t, err)

	store.rooms.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything)
	store.rooms.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteBookingReleasesRoomWhenInHouse(t *testing.T) {
	store := newMockStore()
	svc := newLifecycleForTest(store, &mockNotifier{})

	guest := validGuest(5)
	guest.ID = 9
	store.guests.On("FindByID", mock.Anything, uint(9)).Return(guest, nil)
	store.checkouts.On("ExistsForGuest", mock.Anything, uint(9)).Return(false, nil)
	store.rooms.On("UpdateStatus", mock.Anything, uint(5), models.RoomStatusVacant).Return(nil)
	store.guests.On("Delete", mock.Anything, uint(9)).Return(nil)

	require.NoError(t, svc.DeleteBooking(context.Background(), 9))
	store.assertExpectations(t)
}

func TestDeleteBookingLeavesRoomAfterCheckout(t *testing.T) {
	store := newMockStore()
	svc := newLifecycleForTest(store, &mockNotifier{})

	guest := validGuest(5)
	guest.ID = 9
	store.guests.On("FindByID", mock.Anything, uint(9)).Return(guest, nil)
	store.checkouts.On("ExistsForGuest", mock.Anything, uint(9)).Return(true, nil)
	store.guests.On("Delete", mock.Anything, uint(9)).Return(nil)

	require.NoError(t, svc.DeleteBooking(context.Background(), 9))
	store.rooms.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordCheckoutCreatesSummaryAndFlagsHousekeeping(t *testing.T) {
	store := newMockStore()
	notifier := &mockNotifier{}
	svc := newLifecycleForTest(store, notifier)

	guest := validGuest(3)
	guest.ID = 11
	store.guests.On("FindByID", mock.Anything, uint(11)).Return(guest, nil)
	store.checkouts.On("ExistsForGuest", mock.Anything, uint(11)).Return(false, nil)
	store.checkouts.On("Create", mock.Anything, mock.AnythingOfType("*models.CheckoutSummary")).Return(nil)
	store.rooms.On("FindByIDForUpdate", mock.Anything, uint(3)).
		Return(models.Room{ID: 3, RoomNumber: "110", AvailabilityStatus: models.RoomStatusBooked}, nil)
	store.rooms.On("UpdateStatus", mock.Anything, uint(3), models.RoomStatusNeedsHousekeeping).Return(nil)
	notifier.On("SendCheckoutConfirmation", mock.AnythingOfType("models.Guest")).Return(nil)

	summary, err := svc.RecordCheckout(context.Background(), 11, "paid", "frontdesk1")
	require.NoError(t, err)
	assert.Equal(t, uint(11), summary.GuestID)
	assert.Equal(t, "paid", summary.PaymentStatus)
	assert.Equal(t, "frontdesk1", summary.BillBy)
	assert.NotEmpty(t, summary.ReceiptNumber)
	assert.Equal(t, guest.Email, summary.Guest.Email)

	store.assertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRecordCheckoutUnknownGuestTouchesNothing(t *testing.T) {
	store := newMockStore()
	notifier := &mockNotifier{}
	svc := newLifecycleForTest(store, notifier)

	store.guests.On("FindByID", mock.Anything, uint(99)).
		Return(models.Guest{}, apperrors.NotFound("guest not found"))

	_, err := svc.RecordCheckout(context.Background(), 99, "paid", "frontdesk1")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	store.checkouts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	store.rooms.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendCheckoutConfirmation", mock.Anything)
}

func TestRecordCheckoutIsRejectedTwice(t *testing.T) {
	store := newMockStore()
	svc := newLifecycleForTest(store, &mockNotifier{})

	guest := validGuest(3)
	guest.ID = 11
	store.guests.On("FindByID", mock.Anything, uint(11)).Return(guest, nil)
	store.checkouts.On("ExistsForGuest", mock.Anything, uint(11)).Return(true, nil)

	_, err := svc.RecordCheckout(context.Background(), 11, "paid", "frontdesk1")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	store.checkouts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordCheckoutRequiresPaymentStatus(t *testing.T) {
	store := newMockStore()
	svc := newLifecycleForTest(store, &mockNotifier{})

	_, err := svc.RecordCheckout(context.Background(), 11, "", "frontdesk1")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	store.guests.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestListBookableGuestsExcludesCheckedOut(t *testing.T) {
	store := newMockStore()
	svc := newLifecycleForTest(store, &mockNotifier{})

	inHouse := []models.Guest{{ID: 1, Name: "Arjun Mehta"}}
	store.guests.On("ListWithoutCheckout", mock.Anything).Return(inHouse, nil)

	guests, err := svc.ListBookableGuests(context.Background())
	require.NoError(t, err)
	assert.Equal(t, inHouse, guests)
}
