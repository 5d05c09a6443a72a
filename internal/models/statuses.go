package models

// UserRole mirrors the RBAC roles in internal/auth.
type UserRole string

const (
	UserRoleUser      UserRole = "user"
	UserRoleModerator UserRole = "moderator"
	UserRoleAdmin     UserRole = "admin"
)

type UserStatus string

const (
	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
	UserStatusBanned  UserStatus = "banned"
)

// FriendshipStatus of a requester/addressee pair.
type FriendshipStatus string

const (
	FriendshipStatusPending  FriendshipStatus = "pending"
	FriendshipStatusAccepted FriendshipStatus = "accepted"
	FriendshipStatusDeclined FriendshipStatus = "declined"
	FriendshipStatusBlocked  FriendshipStatus = "blocked"
)

// EntityType is the discriminator of the polymorphic
// comment/like/favorite/report reference (type tag + id pair).
type EntityType string

const (
	EntityTypeGame       EntityType = "game"
	EntityTypeBlogPost   EntityType = "blog_post"
	EntityTypeGuide      EntityType = "guide"
	EntityTypeForumTopic EntityType = "forum_topic"
	EntityTypeForumPost  EntityType = "forum_post"
	EntityTypeComment    EntityType = "comment"
)

// ValidEntityType reports whether t is a known discriminator value.
func ValidEntityType(t EntityType) bool {
	switch t {
	case EntityTypeGame, EntityTypeBlogPost, EntityTypeGuide,
		EntityTypeForumTopic, EntityTypeForumPost, EntityTypeComment:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportStatusOpen      ReportStatus = "open"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// NotificationType values produced by the platform features.
const (
	NotificationTypeLike            = "like"
	NotificationTypeComment         = "comment"
	NotificationTypeNewMessage      = "new_message"
	NotificationTypeFriendRequest   = "friend_request"
	NotificationTypeFriendAccepted  = "friend_accepted"
	NotificationTypeNewFollower     = "new_follower"
	NotificationTypeContentReported = "content_reported"
	NotificationTypeSystem          = "system"
)

type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityNormal NotificationPriority = "normal"
	NotificationPriorityHigh   NotificationPriority = "high"
)
