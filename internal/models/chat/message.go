package chat

import "time"

// MediaType classified from the client-provided MIME-ish hint.
type MediaType string

const (
	MediaText  MediaType = "text"
	MediaImage MediaType = "image"
	MediaGif   MediaType = "gif"
	MediaVideo MediaType = "video"
)

type Message struct {
	ID             string    `gorm:"primaryKey;type:uuid" json:"id"`
	ConversationID string    `gorm:"index;not null" json:"conversation_id"`
	SenderID       string    `gorm:"index;not null" json:"sender_id"`
	Content        string    `gorm:"type:text" json:"content"`
	MediaURL       *string   `json:"media_url"`
	MediaType      MediaType `gorm:"type:varchar(10);default:'text'" json:"media_type"`
	ReplyToID      *string   `gorm:"index" json:"reply_to_id"`
	IsDeleted      bool      `gorm:"default:false" json:"is_deleted"`
	IsEdited       bool      `gorm:"default:false" json:"is_edited"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	ReplyTo   *Message          `gorm:"foreignKey:ReplyToID" json:"reply_to,omitempty"`
	Reactions []MessageReaction `gorm:"foreignKey:MessageID" json:"reactions,omitempty"`
	Reads     []MessageRead     `gorm:"foreignKey:MessageID" json:"reads,omitempty"`
}

func (Message) TableName() string {
	return "chat_messages"
}

// ClassifyMedia maps a MIME-ish hint ("image/png", "gif", "video/mp4")
// to a MediaType. Plain text is the default.
func ClassifyMedia(hint string) MediaType {
	switch {
	case hint == "":
		return MediaText
	case hint == "gif" || hint == "image/gif":
		return MediaGif
	case len(hint) >= 5 && hint[:5] == "image":
		return MediaImage
	case len(hint) >= 5 && hint[:5] == "video":
		return MediaVideo
	default:
		return MediaText
	}
}
