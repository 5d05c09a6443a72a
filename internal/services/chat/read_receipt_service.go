package chat

import (
	"time"

	chatmodels "github.com/semihsari152/CoreGameApp-sub006/internal/models/chat"
	repoChat "github.com/semihsari152/CoreGameApp-sub006/internal/repositories/chat"
)

type ReadReceiptService struct {
	Reads        *repoChat.MessageReadRepository
	Messages     *repoChat.MessageRepository
	Participants *repoChat.ParticipantRepository

	broadcaster Broadcaster
}

func NewReadReceiptService(
	reads *repoChat.MessageReadRepository,
	messages *repoChat.MessageRepository,
	participants *repoChat.ParticipantRepository,
) *ReadReceiptService {
	return &ReadReceiptService{
		Reads:        reads,
		Messages:     messages,
		Participants: participants,
	}
}

func (s *ReadReceiptService) SetBroadcaster(b Broadcaster) { s.broadcaster = b }

// MarkAsRead records the receipt once. A second call for the same
// message is a no-op, and reading your own message never broadcasts.
func (s *ReadReceiptService) MarkAsRead(userID, messageID string) error {
	message, err := s.Messages.FindByID(messageID)
	if err != nil {
		return err
	}

	isMember, err := s.Participants.IsActiveParticipant(userID, message.ConversationID)
	if err != nil {
		return err
	}
	if !isMember {
		return ErrNotParticipant
	}

	exists, err := s.Reads.Exists(userID, messageID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	read := &chatmodels.MessageRead{
		MessageID: messageID,
		UserID:    userID,
		ReadAt:    time.Now(),
	}
	if err := s.Reads.Create(read); err != nil {
		return err
	}
	if err := s.Participants.UpdateLastRead(userID, message.ConversationID, messageID); err != nil {
		return err
	}

	if message.SenderID != userID && s.broadcaster != nil {
		s.broadcaster.BroadcastToConversation(message.ConversationID, EventMessageRead, map[string]any{
			"conversation_id": message.ConversationID,
			"message_id":      messageID,
			"user_id":         userID,
			"read_at":         read.ReadAt,
		})
	}
	return nil
}

// MarkAllAsRead backfills receipts for everything in the conversation
// the user has not read yet. Used when a conversation is opened.
func (s *ReadReceiptService) MarkAllAsRead(userID, conversationID string) error {
	isMember, err := s.Participants.IsActiveParticipant(userID, conversationID)
	if err != nil {
		return err
	}
	if !isMember {
		return ErrNotParticipant
	}

	messages, err := s.Messages.ListByConversation(conversationID, 0, 0)
	if err != nil {
		return err
	}

	var reads []chatmodels.MessageRead
	var lastID string
	now := time.Now()
	for _, msg := range messages {
		exists, err := s.Reads.Exists(userID, msg.ID)
		if err != nil {
			return err
		}
		if !exists {
			reads = append(reads, chatmodels.MessageRead{
				MessageID: msg.ID,
				UserID:    userID,
				ReadAt:    now,
			})
		}
		lastID = msg.ID
	}

	if len(reads) > 0 {
		if err := s.Reads.CreateMany(reads); err != nil {
			return err
		}
	}
	if lastID != "" {
		if err := s.Participants.UpdateLastRead(userID, conversationID, lastID); err != nil {
			return err
		}
	}
	return nil
}

// GetReaders returns who has read a message.
func (s *ReadReceiptService) GetReaders(messageID string) ([]chatmodels.MessageRead, error) {
	return s.Reads.GetByMessageID(messageID)
}
