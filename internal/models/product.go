package models

import "time"

type ProductType string

const (
	ProductTypeRegular      ProductType = "REGULAR"
	ProductTypeComplemented ProductType = "COMPLEMENTED"
	ProductTypeCombo        ProductType = "COMBO"
)

// SanitizeProductType maps unknown type tags to REGULAR.
func SanitizeProductType(t string) ProductType {
	switch ProductType(t) {
	case ProductTypeRegular, ProductTypeComplemented, ProductTypeCombo:
		return ProductType(t)
	default:
		return ProductTypeRegular
	}
}

type Product struct {
	ID              uint        `gorm:"primaryKey"`
	WorkspaceID     uint        `gorm:"index;not null"`
	ParentProductID *uint       `gorm:"index"`
	Parent          *Product    `gorm:"foreignKey:ParentProductID"`
	Name            string      `gorm:"size:100;not null"`
	Description     string      `gorm:"size:255;not null"`
	Price           int64       `gorm:"not null"` // minor currency units
	Content         *string     `gorm:"size:255"`
	ImageURL        *string     `gorm:"size:512"`
	Type            ProductType `gorm:"size:20;not null;default:REGULAR"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
