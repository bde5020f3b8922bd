package pricebook

import (
	"time"

	"gorm.io/gorm"
)

const (
	tableName = "price_books"
	createdAt = "CreatedAt"
	updatedAt = "UpdatedAt"
)

// PriceBook is a saved set of vendor $/GPU-hour rates for ROI scoring.
type PriceBook struct {
	ID            uint    `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"unique;not null"`
	NvidiaHourly  float64 `gorm:"not null"`
	HuaweiHourly  float64 `gorm:"not null"`
	AmdHourly     float64 `gorm:"not null"`
	DefaultHourly float64 `gorm:"not null;default:2.5"`
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PriceBook) TableName() string {
	return tableName
}

func (PriceBook) BeforeCreate(tx *gorm.DB) (err error) {
	tx.Statement.SetColumn(createdAt, time.Now())
	return
}

func (PriceBook) BeforeUpdate(tx *gorm.DB) (err error) {
	tx.Statement.SetColumn(updatedAt, time.Now())
	return
}
