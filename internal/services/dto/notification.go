package dto

import (
	"encoding/json"
	"time"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
)

// NotificationDTO is the wire shape used by both the REST listing and
// the websocket push, so a client renders them identically.
type NotificationDTO struct {
	ID         string                      `json:"id"`
	Type       string                      `json:"type"`
	Priority   models.NotificationPriority `json:"priority"`
	Title      string                      `json:"title"`
	Message    string                      `json:"message,omitempty"`
	ActorID    *string                     `json:"actor_id,omitempty"`
	EntityType *models.EntityType          `json:"entity_type,omitempty"`
	EntityID   *string                     `json:"entity_id,omitempty"`
	Data       json.RawMessage             `json:"data,omitempty"`
	IsRead     bool                        `json:"is_read"`
	ReadAt     *time.Time                  `json:"read_at,omitempty"`
	ExpiresAt  *time.Time                  `json:"expires_at,omitempty"`
	CreatedAt  time.Time                   `json:"created_at"`
}

func ToNotificationDTO(n *models.Notification) NotificationDTO {
	return NotificationDTO{
		ID:         n.ID,
		Type:       n.Type,
		Priority:   n.Priority,
		Title:      n.Title,
		Message:    n.Message,
		ActorID:    n.ActorID,
		EntityType: n.EntityType,
		EntityID:   n.EntityID,
		Data:       json.RawMessage(n.Data),
		IsRead:     n.IsRead,
		ReadAt:     n.ReadAt,
		ExpiresAt:  n.ExpiresAt,
		CreatedAt:  n.CreatedAt,
	}
}

type NotificationListRequest struct {
	UnreadOnly      bool   `form:"unread_only"`
	IncludeArchived bool   `form:"include_archived"`
	Type            string `form:"type" binding:"omitempty,is-notification-type"`
	Page            int    `form:"page" binding:"omitempty,min=1"`
	PageSize        int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type NotificationListResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
	Total         int64             `json:"total"`
	UnreadCount   int64             `json:"unread_count"`
}

// CreateNotificationInput is the service-level input; features build
// these, never handlers.
type CreateNotificationInput struct {
	UserID     string
	ActorID    *string
	Type       string
	Priority   models.NotificationPriority
	Title      string
	Message    string
	EntityType *models.EntityType
	EntityID   *string
	Data       map[string]any
	// ExpiresAt marks the row for the cleanup worker; nil means it only
	// ages out through the retention window.
	ExpiresAt *time.Time
}
