package chat

import "time"

// ConversationParticipant has one row per (conversation, user); the row
// is reactivated (LeftAt cleared) rather than duplicated on rejoin.
type ConversationParticipant struct {
	ID                string     `gorm:"primaryKey;type:uuid" json:"id"`
	ConversationID    string     `gorm:"index;not null;uniqueIndex:uniq_conv_participant" json:"conversation_id"`
	UserID            string     `gorm:"index;not null;uniqueIndex:uniq_conv_participant" json:"user_id"`
	Role              string     `gorm:"type:varchar(10);default:'member'" json:"role"` // member, admin
	JoinedAt          time.Time  `json:"joined_at"`
	LeftAt            *time.Time `json:"left_at"`
	LastReadMessageID *string    `json:"last_read_message_id"`
	IsMuted           bool       `gorm:"default:false" json:"is_muted"`
	TypingUntil       *time.Time `json:"-"`
}

func (ConversationParticipant) TableName() string {
	return "chat_conversation_participants"
}

// Active reports whether the participant currently belongs to the
// conversation.
func (p *ConversationParticipant) Active() bool {
	return p.LeftAt == nil
}
