package services

import (
	"context"
	"errors"
	"strings"

	apperrors "circuithouse-backend/errors"
	"circuithouse-backend/models"

	"gorm.io/gorm"
)

type PricingService struct {
	DB *gorm.DB
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{DB: db}
}

func (s *PricingService) GetAll(ctx context.Context) ([]models.Pricing, error) {
	var prices []models.Pricing
	if err := s.DB.WithContext(ctx).Order("category").Find(&prices).Error; err != nil {
		return nil, apperrors.Internal("database error", err)
	}
	return prices, nil
}

func (s *PricingService) GetByID(ctx context.Context, id uint) (models.Pricing, error) {
	var price models.Pricing
	if err := s.DB.WithContext(ctx).First(&price, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pricing{}, apperrors.NotFound("pricing not found")
		}
		return models.Pricing{}, apperrors.Internal("database error", err)
	}
	return price, nil
}

func (s *PricingService) Create(ctx context.Context, price models.Pricing) (models.Pricing, error) {
	price.Category = strings.TrimSpace(price.Category)
	if price.Category == "" {
		return models.Pricing{}, apperrors.Validation("category is required")
	}
	if price.DailyRate <= 0 {
		return models.Pricing{}, apperrors.Validation("daily rate must be positive")
	}
	if err := s.DB.WithContext(ctx).Create(&price).Error; err != nil {
		return models.Pricing{}, apperrors.Internal("failed to create pricing", err)
	}
	return price, nil
}

func (s *PricingService) Update(ctx context.Context, id uint, price models.Pricing) (models.Pricing, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Pricing{}, err
	}

	if strings.TrimSpace(price.Category) != "" {
		existing.Category = strings.TrimSpace(price.Category)
	}
	if price.DailyRate > 0 {
		existing.DailyRate = price.DailyRate
	}
	if price.ExtraBedRate >= 0 {
		existing.ExtraBedRate = price.ExtraBedRate
	}
	if price.Description != "" {
		existing.Description = price.Description
	}

	if err := s.DB.WithContext(ctx).Save(&existing).Error; err != nil {
		return models.Pricing{}, apperrors.Internal("failed to update pricing", err)
	}
	return existing, nil
}

func (s *PricingService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Pricing{}, id)
	if res.Error != nil {
		return apperrors.Internal("failed to delete pricing", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("pricing not found")
	}
	return nil
}
