package repository

import (
	"context"

	"circuithouse-backend/models"
)

// RoomStore persists rooms. FindByIDForUpdate must only be called inside a
// transaction started with Store.WithTx; it locks the row until commit so
// concurrent bookings against the same room serialize.
type RoomStore interface {
	List(ctx context.Context) ([]models.Room, error)
	FindByID(ctx context.Context, id uint) (models.Room, error)
	FindByIDForUpdate(ctx context.Context, id uint) (models.Room, error)
	Create(ctx context.Context, room *models.Room) error
	Updates(ctx context.Context, id uint, fields map[string]interface{}) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type GuestStore interface {
	FindByID(ctx context.Context, id uint) (models.Guest, error)
	// ListWithoutCheckout returns guests that have no checkout summary yet,
	// i.e. guests still in-house or pending checkout.
	ListWithoutCheckout(ctx context.Context) ([]models.Guest, error)
	ListAll(ctx context.Context) ([]models.Guest, error)
	// HasActiveForRoom reports whether a not-yet-checked-out guest holds the
	// given room.
	HasActiveForRoom(ctx context.Context, roomID uint) (bool, error)
	Create(ctx context.Context, guest *models.Guest) error
	Save(ctx context.Context, guest *models.Guest) error
	Delete(ctx context.Context, id uint) error
}

type CheckoutStore interface {
	Create(ctx context.Context, summary *models.CheckoutSummary) error
	ListNewestFirst(ctx context.Context) ([]models.CheckoutSummary, error)
	ExistsForGuest(ctx context.Context, guestID uint) (bool, error)
}

// Store groups the per-entity stores behind a single unit of work.
type Store interface {
	Rooms() RoomStore
	Guests() GuestStore
	Checkouts() CheckoutStore

	// WithTx runs fn inside one database transaction. Every store obtained
	// from the Store passed to fn operates on that transaction; returning an
	// error rolls everything back.
	WithTx(ctx context.Context, fn func(Store) error) error
}
