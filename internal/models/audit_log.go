package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionLink   AuditAction = "link"
)

// AuditLog records one catalog mutation for the workspace trail.
type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	WorkspaceID uint `gorm:"index;not null"`
	UserID      uint `gorm:"index;not null"`

	// e.g. "product", "complement_type", "complement"
	EntityType string `gorm:"size:50;index;not null"`
	EntityID   uint   `gorm:"index"`

	Action      AuditAction `gorm:"size:20;not null"`
	Description string      `gorm:"size:255"`
}
