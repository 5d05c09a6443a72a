package chat

import "time"

// MessageReaction is unique on (message, user, emoji) and toggled:
// insert when absent, delete when present.
type MessageReaction struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	MessageID string    `gorm:"index;not null;uniqueIndex:uniq_message_reaction" json:"message_id"`
	UserID    string    `gorm:"index;not null;uniqueIndex:uniq_message_reaction" json:"user_id"`
	Emoji     string    `gorm:"type:varchar(16);not null;uniqueIndex:uniq_message_reaction" json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
}

func (MessageReaction) TableName() string {
	return "chat_message_reactions"
}
