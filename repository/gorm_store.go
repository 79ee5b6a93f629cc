package repository

import (
	"context"
	"errors"

	apperrors "circuithouse-backend/errors"
	"circuithouse-backend/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const mysqlDuplicateEntry = 1062

// GormStore is the MySQL-backed Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Rooms() RoomStore         { return &roomStore{db: s.db} }
func (s *GormStore) Guests() GuestStore       { return &guestStore{db: s.db} }
func (s *GormStore) Checkouts() CheckoutStore { return &checkoutStore{db: s.db} }

func (s *GormStore) WithTx(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// translate maps driver errors to typed app errors so callers never have to
// string-match.
func translate(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(notFoundMsg)
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return apperrors.Wrap(apperrors.KindConflict, "record already exists", err)
	}
	return apperrors.Internal("database error", err)
}

// ---------------- rooms ----------------

type roomStore struct {
	db *gorm.DB
}

func (s *roomStore) List(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := s.db.WithContext(ctx).Order("room_number").Find(&rooms).Error
	return rooms, translate(err, "room not found")
}

func (s *roomStore) FindByID(ctx context.Context, id uint) (models.Room, error) {
	var room models.Room
	err := s.db.WithContext(ctx).First(&room, id).Error
	return room, translate(err, "room not found")
}

func (s *roomStore) FindByIDForUpdate(ctx context.Context, id uint) (models.Room, error) {
	var room models.Room
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error
	return room, translate(err, "room not found")
}

func (s *roomStore) Create(ctx context.Context, room *models.Room) error {
	return translate(s.db.WithContext(ctx).Create(room).Error, "room not found")
}

func (s *roomStore) Updates(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := s.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error, "room not found")
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Count(&count).Error; err == nil && count == 0 {
			return apperrors.NotFound("room not found")
		}
	}
	return nil
}

func (s *roomStore) UpdateStatus(ctx context.Context, id uint, status string) error {
	err := s.db.WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ?", id).
		Update("availability_status", status).Error
	return translate(err, "room not found")
}

func (s *roomStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Room{}, id)
	if res.Error != nil {
		return translate(res.Error, "room not found")
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("room not found")
	}
	return nil
}

// ---------------- guests ----------------

type guestStore struct {
	db *gorm.DB
}

func (s *guestStore) FindByID(ctx context.Context, id uint) (models.Guest, error) {
	var guest models.Guest
	err := s.db.WithContext(ctx).Preload("Room").First(&guest, id).Error
	return guest, translate(err, "guest not found")
}

func (s *guestStore) ListWithoutCheckout(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	checkedOut := s.db.Model(&models.CheckoutSummary{}).Select("guest_id")
	err := s.db.WithContext(ctx).
		Preload("Room").
		Where("id NOT IN (?)", checkedOut).
		Order("check_in_date").
		Find(&guests).Error
	return guests, translate(err, "guest not found")
}

func (s *guestStore) ListAll(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	err := s.db.WithContext(ctx).Preload("Room").Order("created_at DESC").Find(&guests).Error
	return guests, translate(err, "guest not found")
}

func (s *guestStore) HasActiveForRoom(ctx context.Context, roomID uint) (bool, error) {
	checkedOut := s.db.Model(&models.CheckoutSummary{}).Select("guest_id")
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Guest{}).
		Where("room_id = ?", roomID).
		Where("id NOT IN (?)", checkedOut).
		Count(&count).Error
	return count > 0, translate(err, "guest not found")
}

func (s *guestStore) Create(ctx context.Context, guest *models.Guest) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(guest).Error
	return translate(err, "guest not found")
}

func (s *guestStore) Save(ctx context.Context, guest *models.Guest) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Save(guest).Error
	return translate(err, "guest not found")
}

func (s *guestStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Guest{}, id)
	if res.Error != nil {
		return translate(res.Error, "guest not found")
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("guest not found")
	}
	return nil
}

// ---------------- checkouts ----------------

type checkoutStore struct {
	db *gorm.DB
}

func (s *checkoutStore) Create(ctx context.Context, summary *models.CheckoutSummary) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(summary).Error
	return translate(err, "checkout not found")
}

func (s *checkoutStore) ListNewestFirst(ctx context.Context) ([]models.CheckoutSummary, error) {
	var summaries []models.CheckoutSummary
	err := s.db.WithContext(ctx).
		Preload("Guest").
		Preload("Guest.Room").
		Order("created_at DESC").
		Find(&summaries).Error
	return summaries, translate(err, "checkout not found")
}

func (s *checkoutStore) ExistsForGuest(ctx context.Context, guestID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.CheckoutSummary{}).
		Where("guest_id = ?", guestID).
		Count(&count).Error
	return count > 0, translate(err, "checkout not found")
}
