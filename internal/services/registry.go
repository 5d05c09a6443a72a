package services

import (
	"github.com/semihsari152/CoreGameApp-sub006/internal/email"
	"github.com/semihsari152/CoreGameApp-sub006/internal/gamemeta"
	chatservice "github.com/semihsari152/CoreGameApp-sub006/internal/services/chat"
)

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	FriendshipService   FriendshipService
	FollowService       FollowService
	GameService         GameService
	BlogService         BlogService
	GuideService        GuideService
	ForumService        ForumService
	CommentService      CommentService
	LikeService         LikeService
	ReportService       ReportService
	NotificationService NotificationService

	ChatService        *chatservice.ChatService
	ReactionService    *chatservice.ReactionService
	ReadReceiptService *chatservice.ReadReceiptService

	EmailService   email.Provider
	GameMetaClient gamemeta.Client
}
