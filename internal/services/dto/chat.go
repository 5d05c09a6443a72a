package dto

import (
	"time"

	chatmodels "github.com/semihsari152/CoreGameApp-sub006/internal/models/chat"
)

// CreateConversationInput opens a direct or group conversation.
// ParticipantIDs excludes the creator, who is always added as the
// first participant (admin for group chats).
type CreateConversationInput struct {
	Type           string   `json:"type" binding:"required,is-conversation-type"`
	ParticipantIDs []string `json:"participant_ids" binding:"required,min=1,dive,uuid"`
	Title          *string  `json:"title" binding:"omitempty,max=120"`
	Description    *string  `json:"description" binding:"omitempty,max=500"`
	ImageURL       *string  `json:"image_url" binding:"omitempty,url"`
}

// SendMessageInput carries a chat message. MediaHint is the client's
// MIME-ish hint classified server-side into a MediaType.
type SendMessageInput struct {
	ConversationID string  `json:"conversation_id" binding:"required,uuid"`
	Content        string  `json:"content" binding:"omitempty,max=4000"`
	MediaURL       string  `json:"media_url" binding:"omitempty,url"`
	MediaHint      string  `json:"media_hint"`
	ReplyToID      *string `json:"reply_to_id" binding:"omitempty,uuid"`
}

type EditMessageInput struct {
	Content string `json:"content" binding:"required,max=4000"`
}

type MarkReadInput struct {
	MessageID string `json:"message_id" binding:"required,uuid"`
}

type ToggleReactionInput struct {
	MessageID string `json:"message_id" binding:"required,uuid"`
	Emoji     string `json:"emoji" binding:"required,max=16"`
}

type MessageListRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// UserSummary is the sender projection embedded in message payloads so
// clients render without a second lookup.
type UserSummary struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// ReplySummary is a trimmed view of the quoted message.
type ReplySummary struct {
	ID       string `json:"id"`
	SenderID string `json:"sender_id"`
	Content  string `json:"content"`
}

// MessageDTO is the wire shape shared by REST history and websocket
// broadcast.
type MessageDTO struct {
	ID             string               `json:"id"`
	ConversationID string               `json:"conversation_id"`
	Sender         UserSummary          `json:"sender"`
	Content        string               `json:"content"`
	MediaURL       string               `json:"media_url,omitempty"`
	MediaType      chatmodels.MediaType `json:"media_type"`
	ReplyTo        *ReplySummary        `json:"reply_to,omitempty"`
	IsEdited       bool                 `json:"is_edited"`
	IsDeleted      bool                 `json:"is_deleted"`
	CreatedAt      time.Time            `json:"created_at"`
}

type ConversationDTO struct {
	ID           string                      `json:"id"`
	Type         chatmodels.ConversationType `json:"type"`
	Title        *string                     `json:"title,omitempty"`
	Description  *string                     `json:"description,omitempty"`
	ImageURL     *string                     `json:"image_url,omitempty"`
	Participants []ParticipantDTO            `json:"participants,omitempty"`
	LastMessage  *MessageDTO                 `json:"last_message,omitempty"`
	UnreadCount  int64                       `json:"unread_count"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

type ParticipantDTO struct {
	UserID            string     `json:"user_id"`
	Role              string     `json:"role"`
	JoinedAt          time.Time  `json:"joined_at"`
	LeftAt            *time.Time `json:"left_at,omitempty"`
	LastReadMessageID *string    `json:"last_read_message_id,omitempty"`
	IsMuted           bool       `json:"is_muted"`
}
