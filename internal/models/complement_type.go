package models

import "time"

// UnlimitedSelectable marks a group with no selection cap.
const UnlimitedSelectable = -1

type ProductComplementType struct {
	ID            uint   `gorm:"primaryKey"`
	WorkspaceID   uint   `gorm:"index;not null"`
	Name          string `gorm:"size:100;not null"`
	Required      bool   `gorm:"not null"`
	MaxSelectable int    `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Complements []ProductComplement
}

// ProductComplementTypeLink attaches a complement group to a product.
// A group can be shared by any number of products.
type ProductComplementTypeLink struct {
	ID                      uint `gorm:"primaryKey"`
	ProductID               uint `gorm:"uniqueIndex:idx_product_complement_type;not null"`
	ProductComplementTypeID uint `gorm:"uniqueIndex:idx_product_complement_type;not null"`
	CreatedAt               time.Time
}
