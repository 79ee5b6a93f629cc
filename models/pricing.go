package models

import (
	"time"

	"gorm.io/gorm"
)

// Pricing holds the nightly rates for a room category. It has no coupling
// to the room lifecycle.
type Pricing struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Category     string  `json:"category" gorm:"type:varchar(100);uniqueIndex"`
	DailyRate    float64 `json:"daily_rate" gorm:"column:daily_rate"`
	ExtraBedRate float64 `json:"extra_bed_rate" gorm:"column:extra_bed_rate"`
	Description  string  `json:"description" gorm:"type:text"`
}
