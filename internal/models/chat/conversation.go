package chat

import "time"

type ConversationType string

const (
	ConversationDirect ConversationType = "direct"
	ConversationGroup  ConversationType = "group"
)

// Conversation is created on first direct message or on group creation.
// It is soft-deactivated, never hard-deleted.
type Conversation struct {
	ID            string           `gorm:"primaryKey;type:uuid" json:"id"`
	Type          ConversationType `gorm:"type:varchar(10);not null;default:'direct'" json:"type"`
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	ImageURL      *string          `json:"image_url"`
	LastMessageID *string          `gorm:"index" json:"last_message_id"`
	IsActive      bool             `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	Participants []ConversationParticipant `gorm:"foreignKey:ConversationID" json:"participants,omitempty"`
	LastMessage  *Message                  `gorm:"foreignKey:LastMessageID" json:"last_message,omitempty"`
}

func (Conversation) TableName() string {
	return "chat_conversations"
}
