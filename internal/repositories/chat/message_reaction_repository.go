package chat

import (
	"errors"

	"gorm.io/gorm"

	chatmodels "github.com/semihsari152/CoreGameApp-sub006/internal/models/chat"
)

type MessageReactionRepository struct {
	DB *gorm.DB
}

func NewMessageReactionRepository(db *gorm.DB) *MessageReactionRepository {
	return &MessageReactionRepository{DB: db}
}

// Toggle adds the reaction when absent and removes it when present.
// The returned bool is the end state: true when the reaction now exists.
func (r *MessageReactionRepository) Toggle(messageID, userID, emoji string) (bool, error) {
	var existing chatmodels.MessageReaction
	err := r.DB.Where("message_id = ? AND user_id = ? AND emoji = ?", messageID, userID, emoji).
		First(&existing).Error
	if err == nil {
		if delErr := r.DB.Delete(&existing).Error; delErr != nil {
			return true, delErr
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	reaction := chatmodels.MessageReaction{
		MessageID: messageID,
		UserID:    userID,
		Emoji:     emoji,
	}
	if createErr := r.DB.Create(&reaction).Error; createErr != nil {
		return false, createErr
	}
	return true, nil
}

func (r *MessageReactionRepository) GetByMessageID(messageID string) ([]chatmodels.MessageReaction, error) {
	var reactions []chatmodels.MessageReaction
	err := r.DB.Where("message_id = ?", messageID).
		Order("created_at ASC").
		Find(&reactions).Error
	return reactions, err
}

// ReactionSummary is the grouped per-emoji view broadcast after every
// toggle, so all clients converge on the same set.
type ReactionSummary struct {
	Emoji   string   `json:"emoji"`
	Count   int      `json:"count"`
	UserIDs []string `json:"user_ids"`
}

func (r *MessageReactionRepository) Summarize(messageID string) ([]ReactionSummary, error) {
	reactions, err := r.GetByMessageID(messageID)
	if err != nil {
		return nil, err
	}

	order := make([]string, 0, 4)
	grouped := make(map[string]*ReactionSummary)
	for _, reaction := range reactions {
		summary, ok := grouped[reaction.Emoji]
		if !ok {
			summary = &ReactionSummary{Emoji: reaction.Emoji}
			grouped[reaction.Emoji] = summary
			order = append(order, reaction.Emoji)
		}
		summary.Count++
		summary.UserIDs = append(summary.UserIDs, reaction.UserID)
	}

	summaries := make([]ReactionSummary, 0, len(order))
	for _, emoji := range order {
		summaries = append(summaries, *grouped[emoji])
	}
	return summaries, nil
}

func (r *MessageReactionRepository) DeleteByUserID(userID string) error {
	return r.DB.Where("user_id = ?", userID).Delete(&chatmodels.MessageReaction{}).Error
}
