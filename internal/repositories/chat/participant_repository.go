package chat

import (
	"errors"
	"time"

	"gorm.io/gorm"

	chatmodels "github.com/semihsari152/CoreGameApp-sub006/internal/models/chat"
)

type ParticipantRepository struct {
	DB *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

func (r *ParticipantRepository) CreateMany(participants []chatmodels.ConversationParticipant) error {
	return r.DB.Create(&participants).Error
}

// IsActiveParticipant reports whether the user currently belongs to the
// conversation (has a row and has not left).
func (r *ParticipantRepository) IsActiveParticipant(userID, conversationID string) (bool, error) {
	var count int64
	err := r.DB.Model(&chatmodels.ConversationParticipant{}).
		Where("user_id = ? AND conversation_id = ? AND left_at IS NULL", userID, conversationID).
		Count(&count).Error
	return count > 0, err
}

func (r *ParticipantRepository) GetParticipants(conversationID string) ([]chatmodels.ConversationParticipant, error) {
	var participants []chatmodels.ConversationParticipant
	err := r.DB.Where("conversation_id = ? AND left_at IS NULL", conversationID).Find(&participants).Error
	return participants, err
}

// Find returns the participant row for the pair, left or not.
func (r *ParticipantRepository) Find(userID, conversationID string) (*chatmodels.ConversationParticipant, error) {
	var p chatmodels.ConversationParticipant
	err := r.DB.Where("user_id = ? AND conversation_id = ?", userID, conversationID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Reactivate clears LeftAt on rejoin instead of inserting a second row.
func (r *ParticipantRepository) Reactivate(userID, conversationID string) error {
	return r.DB.Model(&chatmodels.ConversationParticipant{}).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Updates(map[string]interface{}{
			"left_at":   nil,
			"joined_at": time.Now(),
		}).Error
}

func (r *ParticipantRepository) Leave(userID, conversationID string) error {
	now := time.Now()
	return r.DB.Model(&chatmodels.ConversationParticipant{}).
		Where("user_id = ? AND conversation_id = ? AND left_at IS NULL", userID, conversationID).
		Update("left_at", now).Error
}

func (r *ParticipantRepository) UpdateLastRead(userID, conversationID, messageID string) error {
	return r.DB.Model(&chatmodels.ConversationParticipant{}).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Update("last_read_message_id", messageID).Error
}

func (r *ParticipantRepository) SetMuted(userID, conversationID string, muted bool) error {
	return r.DB.Model(&chatmodels.ConversationParticipant{}).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Update("is_muted", muted).Error
}

func (r *ParticipantRepository) SetTypingUntil(userID, conversationID string, until time.Time) error {
	return r.DB.Model(&chatmodels.ConversationParticipant{}).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Update("typing_until", until).Error
}

func (r *ParticipantRepository) UpdateRole(userID, conversationID, role string) error {
	return r.DB.Model(&chatmodels.ConversationParticipant{}).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Update("role", role).Error
}

// ActiveConversationIDs lists the conversations the user belongs to;
// the chat hub joins one group per entry on connect.
func (r *ParticipantRepository) ActiveConversationIDs(userID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&chatmodels.ConversationParticipant{}).
		Where("user_id = ? AND left_at IS NULL", userID).
		Pluck("conversation_id", &ids).Error
	return ids, err
}
