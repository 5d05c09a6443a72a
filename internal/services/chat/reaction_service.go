package chat

import (
	repoChat "github.com/semihsari152/CoreGameApp-sub006/internal/repositories/chat"
)

type ReactionService struct {
	Reactions    *repoChat.MessageReactionRepository
	Messages     *repoChat.MessageRepository
	Participants *repoChat.ParticipantRepository

	broadcaster Broadcaster
}

func NewReactionService(
	reactions *repoChat.MessageReactionRepository,
	messages *repoChat.MessageRepository,
	participants *repoChat.ParticipantRepository,
) *ReactionService {
	return &ReactionService{
		Reactions:    reactions,
		Messages:     messages,
		Participants: participants,
	}
}

func (s *ReactionService) SetBroadcaster(b Broadcaster) { s.broadcaster = b }

// Toggle flips the user's reaction and rebroadcasts the message's full
// recomputed reaction set, so clients never apply deltas out of order.
func (s *ReactionService) Toggle(userID, messageID, emoji string) ([]repoChat.ReactionSummary, error) {
	message, err := s.Messages.FindByID(messageID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.Participants.IsActiveParticipant(userID, message.ConversationID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotParticipant
	}

	if _, err := s.Reactions.Toggle(messageID, userID, emoji); err != nil {
		return nil, err
	}

	summaries, err := s.Reactions.Summarize(messageID)
	if err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToConversation(message.ConversationID, EventMessageReactions, map[string]any{
			"conversation_id": message.ConversationID,
			"message_id":      messageID,
			"reactions":       summaries,
		})
	}
	return summaries, nil
}

// GetByMessageID returns the grouped reactions for one message.
func (s *ReactionService) GetByMessageID(messageID string) ([]repoChat.ReactionSummary, error) {
	return s.Reactions.Summarize(messageID)
}
