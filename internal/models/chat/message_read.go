package chat

import "time"

// MessageRead records when a participant first read a message.
// The (message, user) pair is unique; re-reads do not add rows.
type MessageRead struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	MessageID string    `gorm:"index;not null;uniqueIndex:uniq_message_read" json:"message_id"`
	UserID    string    `gorm:"index;not null;uniqueIndex:uniq_message_read" json:"user_id"`
	ReadAt    time.Time `json:"read_at"`
}

func (MessageRead) TableName() string {
	return "chat_message_reads"
}
