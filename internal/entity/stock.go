package entity

import (
	"time"

	"gorm.io/gorm"
)

// Stock is a watchlist entry analyzed on the configured schedule.
type Stock struct {
	ID        uint           `gorm:"primaryKey"`
	Code      string         `gorm:"unique;not null"`
	Name      string         `gorm:"not null"`
	Sector    string         `gorm:"not null"`
	IsActive  bool           `gorm:"default:true"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Stock) TableName() string {
	return "stocks"
}
