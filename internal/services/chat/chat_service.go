package chat

import (
	"errors"
	"time"

	chatmodels "github.com/semihsari152/CoreGameApp-sub006/internal/models/chat"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	repoChat "github.com/semihsari152/CoreGameApp-sub006/internal/repositories/chat"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

var (
	ErrNotParticipant       = errors.New("user is not a participant of the conversation")
	ErrNotFriends           = errors.New("direct messages require an accepted friendship")
	ErrConversationInactive = errors.New("conversation is inactive")
	ErrNotMessageOwner      = errors.New("message belongs to another user")
	ErrEmptyMessage         = errors.New("message has no content or media")
)

// Events pushed to conversation groups.
const (
	EventMessageNew       = "message:new"
	EventMessageEdited    = "message:edited"
	EventMessageDeleted   = "message:deleted"
	EventMessageRead      = "message:read"
	EventMessageReactions = "message:reactions"
	EventTypingStarted    = "typing:started"
	EventTypingStopped    = "typing:stopped"
)

// Broadcaster delivers events to live connections. The ws manager
// implements it; it is attached after construction so the service
// package never imports the hub.
type Broadcaster interface {
	BroadcastToConversation(conversationID, event string, payload any)
	PushToUser(userID, event string, payload any)
}

// MessageNotifier creates the persistent new-message notification for
// recipients. Implemented by the notification service.
type MessageNotifier interface {
	NotifyNewMessage(recipientID, senderID, conversationID, preview string)
}

type ChatService struct {
	Conversations *repoChat.ConversationRepository
	Participants  *repoChat.ParticipantRepository
	Messages      *repoChat.MessageRepository
	Reads         *repoChat.MessageReadRepository
	Reactions     *repoChat.MessageReactionRepository
	Users         repositories.UserRepository
	Friendships   repositories.FriendshipRepository

	broadcaster Broadcaster
	notifier    MessageNotifier
}

func NewChatService(
	conversations *repoChat.ConversationRepository,
	participants *repoChat.ParticipantRepository,
	messages *repoChat.MessageRepository,
	reads *repoChat.MessageReadRepository,
	reactions *repoChat.MessageReactionRepository,
	users repositories.UserRepository,
	friendships repositories.FriendshipRepository,
) *ChatService {
	return &ChatService{
		Conversations: conversations,
		Participants:  participants,
		Messages:      messages,
		Reads:         reads,
		Reactions:     reactions,
		Users:         users,
		Friendships:   friendships,
	}
}

func (s *ChatService) SetBroadcaster(b Broadcaster) { s.broadcaster = b }
func (s *ChatService) SetNotifier(n MessageNotifier) { s.notifier = n }

// CreateConversation opens a conversation. A direct conversation with
// the same pair is deduplicated: the existing row is returned and left
// participants are reactivated instead of creating a second thread.
func (s *ChatService) CreateConversation(creatorID string, in dto.CreateConversationInput) (*chatmodels.Conversation, error) {
	convType := chatmodels.ConversationType(in.Type)

	if convType == chatmodels.ConversationDirect {
		if len(in.ParticipantIDs) != 1 || in.ParticipantIDs[0] == creatorID {
			return nil, errors.New("direct conversation needs exactly one other participant")
		}
		otherID := in.ParticipantIDs[0]

		accepted, err := s.Friendships.AreFriends(creatorID, otherID)
		if err != nil {
			return nil, err
		}
		if !accepted {
			return nil, ErrNotFriends
		}

		existing, err := s.Conversations.FindDirectBetween(creatorID, otherID)
		if err != nil && !errors.Is(err, repoChat.ErrConversationNotFound) {
			return nil, err
		}
		if existing != nil {
			for _, uid := range []string{creatorID, otherID} {
				if err := s.Participants.Reactivate(uid, existing.ID); err != nil {
					return nil, err
				}
			}
			return existing, nil
		}
	}

	conv := &chatmodels.Conversation{
		Type:        convType,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		IsActive:    true,
	}
	if err := s.Conversations.Create(conv); err != nil {
		return nil, err
	}

	now := time.Now()
	creatorRole := "member"
	if convType == chatmodels.ConversationGroup {
		creatorRole = "admin"
	}
	participants := make([]chatmodels.ConversationParticipant, 0, len(in.ParticipantIDs)+1)
	participants = append(participants, chatmodels.ConversationParticipant{
		ConversationID: conv.ID,
		UserID:         creatorID,
		Role:           creatorRole,
		JoinedAt:       now,
	})
	for _, pid := range in.ParticipantIDs {
		if pid == creatorID {
			continue
		}
		participants = append(participants, chatmodels.ConversationParticipant{
			ConversationID: conv.ID,
			UserID:         pid,
			Role:           "member",
			JoinedAt:       now,
		})
	}
	if err := s.Participants.CreateMany(participants); err != nil {
		return nil, err
	}
	conv.Participants = participants

	return conv, nil
}

// SendMessage persists and fans out a chat message. The message insert
// and the conversation's last-message pointer move in one transaction
// so history and the conversation list cannot disagree.
func (s *ChatService) SendMessage(senderID string, in dto.SendMessageInput) (*dto.MessageDTO, error) {
	if in.Content == "" && in.MediaURL == "" {
		return nil, ErrEmptyMessage
	}

	isMember, err := s.Participants.IsActiveParticipant(senderID, in.ConversationID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotParticipant
	}

	conv, err := s.Conversations.FindByID(in.ConversationID)
	if err != nil {
		return nil, err
	}
	if !conv.IsActive {
		return nil, ErrConversationInactive
	}

	// Direct messages are friends-only. This is the one chat failure
	// surfaced to the caller instead of being silently dropped.
	if conv.Type == chatmodels.ConversationDirect {
		otherID := ""
		for _, p := range conv.Participants {
			if p.UserID != senderID {
				otherID = p.UserID
				break
			}
		}
		if otherID != "" {
			accepted, err := s.Friendships.AreFriends(senderID, otherID)
			if err != nil {
				return nil, err
			}
			if !accepted {
				return nil, ErrNotFriends
			}
		}
	}

	message := &chatmodels.Message{
		ConversationID: in.ConversationID,
		SenderID:       senderID,
		Content:        in.Content,
		MediaType:      chatmodels.ClassifyMedia(in.MediaHint),
		ReplyToID:      in.ReplyToID,
	}
	if in.MediaURL != "" {
		message.MediaURL = &in.MediaURL
	}

	if err := s.Messages.CreateAndTouchConversation(message); err != nil {
		return nil, err
	}

	// The sender has trivially read their own message.
	_ = s.Reads.Create(&chatmodels.MessageRead{
		MessageID: message.ID,
		UserID:    senderID,
		ReadAt:    time.Now(),
	})

	msgDTO, err := s.toMessageDTO(message)
	if err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToConversation(in.ConversationID, EventMessageNew, msgDTO)
	}
	if s.notifier != nil {
		preview := in.Content
		if preview == "" {
			preview = string(message.MediaType)
		}
		for _, p := range conv.Participants {
			if p.UserID == senderID || !p.Active() || p.IsMuted {
				continue
			}
			s.notifier.NotifyNewMessage(p.UserID, senderID, in.ConversationID, preview)
		}
	}

	return msgDTO, nil
}

// GetMessages returns a page of conversation history, newest page
// first but each page in chronological order.
func (s *ChatService) GetMessages(userID, conversationID string, page, pageSize int) ([]dto.MessageDTO, int64, error) {
	isMember, err := s.Participants.IsActiveParticipant(userID, conversationID)
	if err != nil {
		return nil, 0, err
	}
	if !isMember {
		return nil, 0, ErrNotParticipant
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	messages, err := s.Messages.ListByConversation(conversationID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Messages.CountByConversation(conversationID)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.MessageDTO, 0, len(messages))
	for i := range messages {
		msgDTO, err := s.toMessageDTO(&messages[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *msgDTO)
	}
	return out, total, nil
}

// ListConversations returns the user's active conversations with their
// unread counts.
func (s *ChatService) ListConversations(userID string) ([]dto.ConversationDTO, error) {
	conversations, err := s.Conversations.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ConversationDTO, 0, len(conversations))
	for i := range conversations {
		conv := &conversations[i]
		unread, err := s.Messages.UnreadCount(userID, conv.ID)
		if err != nil {
			return nil, err
		}

		convDTO := dto.ConversationDTO{
			ID:          conv.ID,
			Type:        conv.Type,
			Title:       conv.Title,
			Description: conv.Description,
			ImageURL:    conv.ImageURL,
			UnreadCount: unread,
			UpdatedAt:   conv.UpdatedAt,
		}
		for _, p := range conv.Participants {
			convDTO.Participants = append(convDTO.Participants, dto.ParticipantDTO{
				UserID:            p.UserID,
				Role:              p.Role,
				JoinedAt:          p.JoinedAt,
				LeftAt:            p.LeftAt,
				LastReadMessageID: p.LastReadMessageID,
				IsMuted:           p.IsMuted,
			})
		}
		if conv.LastMessage != nil {
			lastDTO, err := s.toMessageDTO(conv.LastMessage)
			if err != nil {
				return nil, err
			}
			convDTO.LastMessage = lastDTO
		}
		out = append(out, convDTO)
	}
	return out, nil
}

// EditMessage rewrites the content of the caller's own message and
// rebroadcasts it.
func (s *ChatService) EditMessage(userID, messageID, content string) (*dto.MessageDTO, error) {
	message, err := s.Messages.FindByID(messageID)
	if err != nil {
		return nil, err
	}
	if message.SenderID != userID {
		return nil, ErrNotMessageOwner
	}

	if err := s.Messages.UpdateContent(messageID, content); err != nil {
		return nil, err
	}
	message.Content = content
	message.IsEdited = true

	msgDTO, err := s.toMessageDTO(message)
	if err != nil {
		return nil, err
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToConversation(message.ConversationID, EventMessageEdited, msgDTO)
	}
	return msgDTO, nil
}

// DeleteMessage soft-deletes the caller's own message; the row stays so
// replies keep their anchor.
func (s *ChatService) DeleteMessage(userID, messageID string) error {
	message, err := s.Messages.FindByID(messageID)
	if err != nil {
		return err
	}
	if message.SenderID != userID {
		return ErrNotMessageOwner
	}

	if err := s.Messages.SoftDelete(messageID); err != nil {
		return err
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToConversation(message.ConversationID, EventMessageDeleted, map[string]string{
			"message_id":      messageID,
			"conversation_id": message.ConversationID,
		})
	}
	return nil
}

func (s *ChatService) LeaveConversation(userID, conversationID string) error {
	return s.Participants.Leave(userID, conversationID)
}

func (s *ChatService) UnreadCount(userID, conversationID string) (int64, error) {
	return s.Messages.UnreadCount(userID, conversationID)
}

// SetTyping broadcasts a typing indicator; nothing is persisted beyond
// the participant's typing deadline.
func (s *ChatService) SetTyping(userID, conversationID string, typing bool) error {
	isMember, err := s.Participants.IsActiveParticipant(userID, conversationID)
	if err != nil || !isMember {
		return err
	}

	event := EventTypingStopped
	if typing {
		event = EventTypingStarted
		_ = s.Participants.SetTypingUntil(userID, conversationID, time.Now().Add(10*time.Second))
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToConversation(conversationID, event, map[string]string{
			"conversation_id": conversationID,
			"user_id":         userID,
		})
	}
	return nil
}

func (s *ChatService) toMessageDTO(m *chatmodels.Message) (*dto.MessageDTO, error) {
	out := &dto.MessageDTO{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Content:        m.Content,
		MediaType:      m.MediaType,
		IsEdited:       m.IsEdited,
		IsDeleted:      m.IsDeleted,
		CreatedAt:      m.CreatedAt,
	}
	if m.IsDeleted {
		out.Content = ""
	}
	if m.MediaURL != nil {
		out.MediaURL = *m.MediaURL
	}

	sender, err := s.Users.FindByID(m.SenderID)
	if err != nil {
		return nil, err
	}
	out.Sender = dto.UserSummary{
		ID:          sender.ID,
		Username:    sender.Username,
		DisplayName: sender.DisplayName,
		AvatarURL:   sender.AvatarURL,
	}

	if m.ReplyToID != nil {
		replyTo := m.ReplyTo
		if replyTo == nil {
			replyTo, err = s.Messages.FindByID(*m.ReplyToID)
			if err != nil && !errors.Is(err, repoChat.ErrMessageNotFound) {
				return nil, err
			}
		}
		if replyTo != nil {
			out.ReplyTo = &dto.ReplySummary{
				ID:       replyTo.ID,
				SenderID: replyTo.SenderID,
				Content:  replyTo.Content,
			}
		}
	}
	return out, nil
}
