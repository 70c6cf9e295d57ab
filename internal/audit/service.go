package audit

import (
	"log"

	"carta-backend/internal/models"

	"gorm.io/gorm"
)

// Recorder writes the workspace mutation trail. Entries are best effort:
// a failed insert is logged and never fails the mutation it describes.
type Recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

type LogOptions struct {
	WorkspaceID uint
	UserID      uint
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
}

func (r *Recorder) Record(opts LogOptions) {
	entry := models.AuditLog{
		WorkspaceID: opts.WorkspaceID,
		UserID:      opts.UserID,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
	}

	if err := r.db.Create(&entry).Error; err != nil {
		log.Printf("audit log write failed: %v", err)
	}
}
