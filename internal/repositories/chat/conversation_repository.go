package chat

import (
	"errors"
	"time"

	"gorm.io/gorm"

	chatmodels "github.com/semihsari152/CoreGameApp-sub006/internal/models/chat"
)

var ErrConversationNotFound = errors.New("conversation not found")

type ConversationRepository struct {
	DB *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{DB: db}
}

// FindByID returns the conversation with participants and last message.
func (r *ConversationRepository) FindByID(id string) (*chatmodels.Conversation, error) {
	var conv chatmodels.Conversation
	err := r.DB.Preload("Participants").Preload("LastMessage").First(&conv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conv, nil
}

// FindDirectBetween looks up an existing direct conversation between two
// users, regardless of whether either has left it since.
func (r *ConversationRepository) FindDirectBetween(userA, userB string) (*chatmodels.Conversation, error) {
	var conv chatmodels.Conversation
	err := r.DB.Raw(`
		SELECT c.* FROM chat_conversations c
		JOIN chat_conversation_participants p1 ON p1.conversation_id = c.id AND p1.user_id = ?
		JOIN chat_conversation_participants p2 ON p2.conversation_id = c.id AND p2.user_id = ?
		WHERE c.type = 'direct'
		LIMIT 1`, userA, userB).Scan(&conv).Error
	if err != nil {
		return nil, err
	}
	if conv.ID == "" {
		return nil, ErrConversationNotFound
	}
	return &conv, nil
}

func (r *ConversationRepository) Create(conv *chatmodels.Conversation) error {
	return r.DB.Create(conv).Error
}

func (r *ConversationRepository) Update(conv *chatmodels.Conversation) error {
	return r.DB.Save(conv).Error
}

// Deactivate soft-disables the conversation; rows are never hard-deleted.
func (r *ConversationRepository) Deactivate(conversationID string) error {
	return r.DB.Model(&chatmodels.Conversation{}).Where("id = ?", conversationID).
		Update("is_active", false).Error
}

// FindAllByUser returns every active conversation the user currently
// participates in, newest activity first.
func (r *ConversationRepository) FindAllByUser(userID string) ([]chatmodels.Conversation, error) {
	var convs []chatmodels.Conversation
	err := r.DB.
		Joins("JOIN chat_conversation_participants p ON p.conversation_id = chat_conversations.id").
		Where("p.user_id = ? AND p.left_at IS NULL AND chat_conversations.is_active = ?", userID, true).
		Preload("Participants").
		Preload("LastMessage").
		Order("chat_conversations.updated_at DESC").
		Find(&convs).Error
	return convs, err
}

// TouchLastMessage updates the denormalized last-message pointer and the
// activity timestamp. Callers wrap it in the same transaction as the
// message insert.
func (r *ConversationRepository) TouchLastMessage(tx *gorm.DB, conversationID, messageID string, at time.Time) error {
	return tx.Model(&chatmodels.Conversation{}).Where("id = ?", conversationID).
		Updates(map[string]interface{}{
			"last_message_id": messageID,
			"updated_at":      at,
		}).Error
}
