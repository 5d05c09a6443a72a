package chat

import (
	"errors"
	"time"

	"gorm.io/gorm"

	chatmodels "github.com/semihsari152/CoreGameApp-sub006/internal/models/chat"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository struct {
	DB            *gorm.DB
	conversations *ConversationRepository
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db, conversations: NewConversationRepository(db)}
}

// CreateAndTouchConversation inserts the message and updates the
// conversation's denormalized last-message pointer in one transaction,
// closing the torn-write window between the two writes.
func (r *MessageRepository) CreateAndTouchConversation(message *chatmodels.Message) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return r.conversations.TouchLastMessage(tx, message.ConversationID, message.ID, time.Now())
	})
}

func (r *MessageRepository) FindByID(id string) (*chatmodels.Message, error) {
	var msg chatmodels.Message
	err := r.DB.Preload("ReplyTo").First(&msg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}

// ListByConversation returns non-deleted messages, oldest first.
func (r *MessageRepository) ListByConversation(conversationID string, limit, offset int) ([]chatmodels.Message, error) {
	var messages []chatmodels.Message
	q := r.DB.
		Where("conversation_id = ? AND is_deleted = ?", conversationID, false).
		Preload("ReplyTo").
		Preload("Reactions").
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) CountByConversation(conversationID string) (int64, error) {
	var count int64
	err := r.DB.Model(&chatmodels.Message{}).
		Where("conversation_id = ? AND is_deleted = ?", conversationID, false).
		Count(&count).Error
	return count, err
}

func (r *MessageRepository) UpdateContent(messageID, content string) error {
	return r.DB.Model(&chatmodels.Message{}).Where("id = ?", messageID).
		Updates(map[string]interface{}{
			"content":   content,
			"is_edited": true,
		}).Error
}

// SoftDelete flags the message; the row stays for reply references.
func (r *MessageRepository) SoftDelete(messageID string) error {
	return r.DB.Model(&chatmodels.Message{}).Where("id = ?", messageID).
		Update("is_deleted", true).Error
}

// UnreadCount counts messages in the conversation the user has not read
// and did not send.
func (r *MessageRepository) UnreadCount(userID, conversationID string) (int64, error) {
	var count int64
	err := r.DB.Raw(`
		SELECT COUNT(*) FROM chat_messages m
		WHERE m.conversation_id = ?
		AND m.is_deleted = ?
		AND m.sender_id <> ?
		AND NOT EXISTS (
			SELECT 1 FROM chat_message_reads r
			WHERE r.message_id = m.id AND r.user_id = ?
		)`, conversationID, false, userID, userID).
		Scan(&count).Error
	return count, err
}
