package services

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/semihsari152/CoreGameApp-sub006/internal/logger"
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

// Events pushed to a user's private notification group.
const (
	EventNotificationNew         = "notification:new"
	EventNotificationUnreadCount = "notification:unread_count"
)

// RealtimeNotifier pushes events to a user's live connections. The ws
// manager implements it; an offline user is a silent no-op. It is
// attached after construction so services never import the hub.
type RealtimeNotifier interface {
	PushToUser(userID, event string, payload any)
}

type NotificationService interface {
	Create(in dto.CreateNotificationInput) (*dto.NotificationDTO, error)
	CreateBulk(userIDs []string, in dto.CreateNotificationInput) error
	NotifyFollowers(userID string, in dto.CreateNotificationInput) error

	GetUserNotifications(userID string, req dto.NotificationListRequest) (*dto.NotificationListResponse, error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) error
	Archive(userID, notificationID string) error
	Delete(userID, notificationID string) error
	GetUnreadCount(userID string) (int64, error)

	// Factory methods used by the feature services.
	NotifyLike(ownerID, actorID string, entityType models.EntityType, entityID string) error
	NotifyComment(ownerID, actorID string, entityType models.EntityType, entityID string) error
	NotifyFriendRequest(addresseeID, requesterID string) error
	NotifyFriendAccepted(requesterID, addresseeID string) error
	NotifyNewFollower(followeeID, followerID string) error
	NotifyContentReported(moderatorID, reportID string) error
	NotifyNewMessage(recipientID, senderID, conversationID, preview string)

	// Cleanup removes expired rows and rows past the retention horizon.
	// The retention worker runs it on a ticker; admins can trigger it.
	Cleanup(retentionDays int) (int64, error)

	SetRealtimeNotifier(n RealtimeNotifier)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	followRepo       repositories.FollowRepository

	realtime RealtimeNotifier
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		followRepo:       followRepo,
	}
}

func (s *notificationService) SetRealtimeNotifier(n RealtimeNotifier) {
	s.realtime = n
}

// Create persists the notification and pushes it plus the new unread
// count to the target's live connections.
func (s *notificationService) Create(in dto.CreateNotificationInput) (*dto.NotificationDTO, error) {
	notification, err := s.build(in.UserID, in)
	if err != nil {
		return nil, err
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}

	out := dto.ToNotificationDTO(notification)
	s.push(in.UserID, &out)
	return &out, nil
}

func (s *notificationService) CreateBulk(userIDs []string, in dto.CreateNotificationInput) error {
	if len(userIDs) == 0 {
		return nil
	}

	notifications := make([]*models.Notification, 0, len(userIDs))
	for _, uid := range userIDs {
		notification, err := s.build(uid, in)
		if err != nil {
			return err
		}
		notifications = append(notifications, notification)
	}
	if err := s.notificationRepo.CreateBulk(notifications); err != nil {
		return err
	}

	for _, notification := range notifications {
		out := dto.ToNotificationDTO(notification)
		s.push(notification.UserID, &out)
	}
	return nil
}

// NotifyFollowers fans the notification out to every active follower
// of userID.
func (s *notificationService) NotifyFollowers(userID string, in dto.CreateNotificationInput) error {
	followerIDs, err := s.followRepo.FindFollowerIDs(userID)
	if err != nil {
		return err
	}
	return s.CreateBulk(followerIDs, in)
}

func (s *notificationService) GetUserNotifications(userID string, req dto.NotificationListRequest) (*dto.NotificationListResponse, error) {
	criteria := repositories.NotificationCriteria{
		UnreadOnly:      req.UnreadOnly,
		IncludeArchived: req.IncludeArchived,
		Type:            req.Type,
		Page:            req.Page,
		PageSize:        req.PageSize,
	}

	notifications, total, err := s.notificationRepo.FindUserNotifications(userID, criteria)
	if err != nil {
		return nil, err
	}
	unread, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.NotificationDTO, 0, len(notifications))
	for i := range notifications {
		out = append(out, dto.ToNotificationDTO(&notifications[i]))
	}
	return &dto.NotificationListResponse{
		Notifications: out,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) MarkAsRead(userID, notificationID string) error {
	if err := s.ownedBy(userID, notificationID); err != nil {
		return err
	}
	if err := s.notificationRepo.MarkAsRead(notificationID); err != nil {
		return err
	}
	s.pushUnreadCount(userID)
	return nil
}

func (s *notificationService) MarkAllAsRead(userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(userID); err != nil {
		return err
	}
	s.pushUnreadCount(userID)
	return nil
}

func (s *notificationService) Archive(userID, notificationID string) error {
	if err := s.ownedBy(userID, notificationID); err != nil {
		return err
	}
	if err := s.notificationRepo.Archive(notificationID); err != nil {
		return err
	}
	s.pushUnreadCount(userID)
	return nil
}

func (s *notificationService) Delete(userID, notificationID string) error {
	if err := s.ownedBy(userID, notificationID); err != nil {
		return err
	}
	if err := s.notificationRepo.Delete(notificationID); err != nil {
		return err
	}
	s.pushUnreadCount(userID)
	return nil
}

func (s *notificationService) GetUnreadCount(userID string) (int64, error) {
	return s.notificationRepo.GetUnreadCount(userID)
}

func (s *notificationService) Cleanup(retentionDays int) (int64, error) {
	expired, err := s.notificationRepo.DeleteExpired()
	if err != nil {
		return expired, err
	}
	stale, err := s.notificationRepo.DeleteOlderThan(time.Now().AddDate(0, 0, -retentionDays))
	return expired + stale, err
}

// ---------------- Factory methods ----------------

func (s *notificationService) NotifyLike(ownerID, actorID string, entityType models.EntityType, entityID string) error {
	if ownerID == actorID {
		return nil
	}
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return err
	}
	_, err = s.Create(dto.CreateNotificationInput{
		UserID:     ownerID,
		ActorID:    &actorID,
		Type:       models.NotificationTypeLike,
		Priority:   models.NotificationPriorityLow,
		Title:      "New like",
		Message:    fmt.Sprintf("%s liked your %s", displayName(actor), entityLabel(entityType)),
		EntityType: &entityType,
		EntityID:   &entityID,
	})
	return err
}

func (s *notificationService) NotifyComment(ownerID, actorID string, entityType models.EntityType, entityID string) error {
	if ownerID == actorID {
		return nil
	}
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return err
	}
	_, err = s.Create(dto.CreateNotificationInput{
		UserID:     ownerID,
		ActorID:    &actorID,
		Type:       models.NotificationTypeComment,
		Priority:   models.NotificationPriorityNormal,
		Title:      "New comment",
		Message:    fmt.Sprintf("%s commented on your %s", displayName(actor), entityLabel(entityType)),
		EntityType: &entityType,
		EntityID:   &entityID,
	})
	return err
}

func (s *notificationService) NotifyFriendRequest(addresseeID, requesterID string) error {
	requester, err := s.userRepo.FindByID(requesterID)
	if err != nil {
		return err
	}
	_, err = s.Create(dto.CreateNotificationInput{
		UserID:   addresseeID,
		ActorID:  &requesterID,
		Type:     models.NotificationTypeFriendRequest,
		Priority: models.NotificationPriorityNormal,
		Title:    "Friend request",
		Message:  fmt.Sprintf("%s sent you a friend request", displayName(requester)),
	})
	return err
}

func (s *notificationService) NotifyFriendAccepted(requesterID, addresseeID string) error {
	addressee, err := s.userRepo.FindByID(addresseeID)
	if err != nil {
		return err
	}
	_, err = s.Create(dto.CreateNotificationInput{
		UserID:   requesterID,
		ActorID:  &addresseeID,
		Type:     models.NotificationTypeFriendAccepted,
		Priority: models.NotificationPriorityNormal,
		Title:    "Friend request accepted",
		Message:  fmt.Sprintf("%s accepted your friend request", displayName(addressee)),
	})
	return err
}

func (s *notificationService) NotifyNewFollower(followeeID, followerID string) error {
	follower, err := s.userRepo.FindByID(followerID)
	if err != nil {
		return err
	}
	_, err = s.Create(dto.CreateNotificationInput{
		UserID:   followeeID,
		ActorID:  &followerID,
		Type:     models.NotificationTypeNewFollower,
		Priority: models.NotificationPriorityLow,
		Title:    "New follower",
		Message:  fmt.Sprintf("%s started following you", displayName(follower)),
	})
	return err
}

func (s *notificationService) NotifyContentReported(moderatorID, reportID string) error {
	_, err := s.Create(dto.CreateNotificationInput{
		UserID:   moderatorID,
		Type:     models.NotificationTypeContentReported,
		Priority: models.NotificationPriorityHigh,
		Title:    "Content reported",
		Message:  "A new report is waiting for review",
		Data:     map[string]any{"report_id": reportID},
	})
	return err
}

// NotifyNewMessage implements the chat notifier contract. Failures are
// logged and swallowed; a lost notification must never fail a send.
func (s *notificationService) NotifyNewMessage(recipientID, senderID, conversationID, preview string) {
	sender, err := s.userRepo.FindByID(senderID)
	if err != nil {
		logger.WithError(err).Warn("notify new message: sender lookup failed", "sender_id", senderID)
		return
	}
	if len(preview) > 80 {
		preview = preview[:77] + "..."
	}
	_, err = s.Create(dto.CreateNotificationInput{
		UserID:   recipientID,
		ActorID:  &senderID,
		Type:     models.NotificationTypeNewMessage,
		Priority: models.NotificationPriorityNormal,
		Title:    fmt.Sprintf("New message from %s", displayName(sender)),
		Message:  preview,
		Data:     map[string]any{"conversation_id": conversationID},
	})
	if err != nil {
		logger.WithError(err).Warn("notify new message: create failed", "recipient_id", recipientID)
	}
}

// ---------------- helpers ----------------

func (s *notificationService) build(userID string, in dto.CreateNotificationInput) (*models.Notification, error) {
	var dataJSON datatypes.JSON
	if in.Data != nil {
		raw, err := json.Marshal(in.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification data: %w", err)
		}
		dataJSON = datatypes.JSON(raw)
	}

	priority := in.Priority
	if priority == "" {
		priority = models.NotificationPriorityNormal
	}

	return &models.Notification{
		UserID:     userID,
		ActorID:    in.ActorID,
		Type:       in.Type,
		Priority:   priority,
		Title:      in.Title,
		Message:    in.Message,
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		Data:       dataJSON,
		ExpiresAt:  in.ExpiresAt,
	}, nil
}

func (s *notificationService) ownedBy(userID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return repositories.ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) push(userID string, n *dto.NotificationDTO) {
	if s.realtime == nil {
		return
	}
	s.realtime.PushToUser(userID, EventNotificationNew, n)
	s.pushUnreadCount(userID)
}

func (s *notificationService) pushUnreadCount(userID string) {
	if s.realtime == nil {
		return
	}
	count, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		logger.WithError(err).Warn("unread count push failed", "user_id", userID)
		return
	}
	s.realtime.PushToUser(userID, EventNotificationUnreadCount, map[string]int64{"unread_count": count})
}

func displayName(u *models.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

func entityLabel(t models.EntityType) string {
	switch t {
	case models.EntityTypeBlogPost:
		return "blog post"
	case models.EntityTypeForumTopic:
		return "forum topic"
	case models.EntityTypeForumPost:
		return "forum post"
	default:
		return string(t)
	}
}
