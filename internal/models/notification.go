package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification rows are created by any feature that wants to alert a
// user and mutated only to flip the read/archived flags; a periodic
// worker prunes expired and stale rows.
type Notification struct {
	BaseModel
	UserID   string               `gorm:"not null;index" json:"user_id"`
	ActorID  *string              `gorm:"index" json:"actor_id"` // triggering user, if any
	Type     string               `gorm:"not null;index" json:"type"`
	Priority NotificationPriority `gorm:"type:varchar(10);default:'normal'" json:"priority"`
	Title    string               `gorm:"not null" json:"title"`
	Message  string               `json:"message"`

	// Optional reference to the entity the notification is about.
	EntityType *EntityType `gorm:"type:varchar(20)" json:"entity_type"`
	EntityID   *string     `json:"entity_id"`

	Data       datatypes.JSON `gorm:"type:jsonb" json:"data"` // free-form metadata
	IsRead     bool           `gorm:"default:false;index" json:"is_read"`
	IsArchived bool           `gorm:"default:false" json:"is_archived"`
	ReadAt     *time.Time     `json:"read_at"`
	ExpiresAt  *time.Time     `gorm:"index" json:"expires_at"`
}
