package services

import (
	"context"
	"strings"

	apperrors "circuithouse-backend/errors"
	"circuithouse-backend/models"

	"gorm.io/gorm"
)

// BillingService handles the ancillary charges: food orders and other costs.
// Both stamp date = today at creation through the model factories, whatever
// the client sent.
type BillingService struct {
	DB *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{DB: db}
}

func (s *BillingService) CreateFoodOrder(ctx context.Context, item string, quantity int, amount float64, roomNumber string) (models.FoodOrder, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return models.FoodOrder{}, apperrors.Validation("item is required")
	}
	if amount < 0 {
		return models.FoodOrder{}, apperrors.Validation("amount must not be negative")
	}

	order := models.NewFoodOrder(item, quantity, amount, strings.TrimSpace(roomNumber))
	if err := s.DB.WithContext(ctx).Create(&order).Error; err != nil {
		return models.FoodOrder{}, apperrors.Internal("failed to create food order", err)
	}
	return order, nil
}

func (s *BillingService) ListFoodOrders(ctx context.Context) ([]models.FoodOrder, error) {
	var orders []models.FoodOrder
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, apperrors.Internal("database error", err)
	}
	return orders, nil
}

func (s *BillingService) DeleteFoodOrder(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.FoodOrder{}, id)
	if res.Error != nil {
		return apperrors.Internal("failed to delete food order", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("food order not found")
	}
	return nil
}

func (s *BillingService) CreateOtherCost(ctx context.Context, description string, amount float64) (models.OtherCost, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.OtherCost{}, apperrors.Validation("description is required")
	}
	if amount < 0 {
		return models.OtherCost{}, apperrors.Validation("amount must not be negative")
	}

	cost := models.NewOtherCost(description, amount)
	if err := s.DB.WithContext(ctx).Create(&cost).Error; err != nil {
		return models.OtherCost{}, apperrors.Internal("failed to create cost record", err)
	}
	return cost, nil
}

func (s *BillingService) ListOtherCosts(ctx context.Context) ([]models.OtherCost, error) {
	var costs []models.OtherCost
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&costs).Error; err != nil {
		return nil, apperrors.Internal("database error", err)
	}
	return costs, nil
}

func (s *BillingService) DeleteOtherCost(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.OtherCost{}, id)
	if res.Error != nil {
		return apperrors.Internal("failed to delete cost record", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("cost record not found")
	}
	return nil
}
