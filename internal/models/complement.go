package models

import "time"

type ProductComplement struct {
	ID                      uint   `gorm:"primaryKey"`
	ProductComplementTypeID uint   `gorm:"index;not null"`
	Name                    string `gorm:"size:100;not null"`
	Increment               bool   `gorm:"not null"` // derived: price > 0
	IsDisabled              bool   `gorm:"not null"`
	Price                   int64  `gorm:"not null"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
