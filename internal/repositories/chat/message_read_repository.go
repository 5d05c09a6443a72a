package chat

import (
	"gorm.io/gorm"

	chatmodels "github.com/semihsari152/CoreGameApp-sub006/internal/models/chat"
)

type MessageReadRepository struct {
	DB *gorm.DB
}

func NewMessageReadRepository(db *gorm.DB) *MessageReadRepository {
	return &MessageReadRepository{DB: db}
}

func (r *MessageReadRepository) Create(read *chatmodels.MessageRead) error {
	return r.DB.Create(read).Error
}

func (r *MessageReadRepository) CreateMany(reads []chatmodels.MessageRead) error {
	if len(reads) == 0 {
		return nil
	}
	return r.DB.Create(&reads).Error
}

// Exists reports whether the user already has a read record for the
// message; mark-as-read is idempotent on top of this.
func (r *MessageReadRepository) Exists(userID, messageID string) (bool, error) {
	var count int64
	err := r.DB.Model(&chatmodels.MessageRead{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error
	return count > 0, err
}

func (r *MessageReadRepository) GetByMessageID(messageID string) ([]chatmodels.MessageRead, error) {
	var reads []chatmodels.MessageRead
	err := r.DB.Where("message_id = ?", messageID).Find(&reads).Error
	return reads, err
}

func (r *MessageReadRepository) GetByUserAndConversation(userID, conversationID string) ([]chatmodels.MessageRead, error) {
	var reads []chatmodels.MessageRead
	err := r.DB.
		Joins("JOIN chat_messages m ON m.id = chat_message_reads.message_id").
		Where("m.conversation_id = ? AND chat_message_reads.user_id = ?", conversationID, userID).
		Find(&reads).Error
	return reads, err
}

func (r *MessageReadRepository) DeleteByUserID(userID string) error {
	return r.DB.Where("user_id = ?", userID).Delete(&chatmodels.MessageRead{}).Error
}
