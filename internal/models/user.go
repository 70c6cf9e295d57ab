package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	FirstName    string `gorm:"size:100;not null"`
	LastName     string `gorm:"size:100"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserWorkspace is the membership join between users and workspaces.
type UserWorkspace struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"uniqueIndex:idx_user_workspace;not null"`
	WorkspaceID uint `gorm:"uniqueIndex:idx_user_workspace;not null"`
	CreatedAt   time.Time
}
