package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/semihsari152/CoreGameApp-sub006/internal/services"
	"github.com/semihsari152/CoreGameApp-sub006/internal/validator"
)

// AppHandlers groups every HTTP handler so route registration stays in
// one place.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Friendship   *FriendshipHandler
	Game         *GameHandler
	Blog         *BlogHandler
	Guide        *GuideHandler
	Forum        *ForumHandler
	Comment      *CommentHandler
	Like         *LikeHandler
	Report       *ReportHandler
	Notification *NotificationHandler
	Chat         *ChatHandler
}

func NewAppHandlers(v *validator.Validator, sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, sc.AuthService),
		User:         NewUserHandler(base, sc.UserService),
		Friendship:   NewFriendshipHandler(base, sc.FriendshipService, sc.FollowService),
		Game:         NewGameHandler(base, sc.GameService, sc.GameMetaClient),
		Blog:         NewBlogHandler(base, sc.BlogService),
		Guide:        NewGuideHandler(base, sc.GuideService),
		Forum:        NewForumHandler(base, sc.ForumService),
		Comment:      NewCommentHandler(base, sc.CommentService),
		Like:         NewLikeHandler(base, sc.LikeService),
		Report:       NewReportHandler(base, sc.ReportService),
		Notification: NewNotificationHandler(base, sc.NotificationService),
		Chat:         NewChatHandler(base, sc.ChatService, sc.ReadReceiptService, sc.ReactionService),
	}
}

// RegisterAll mounts every handler group under the given router group.
func (a *AppHandlers) RegisterAll(rg *gin.RouterGroup) {
	a.Auth.RegisterRoutes(rg)
	a.User.RegisterRoutes(rg)
	a.Friendship.RegisterRoutes(rg)
	a.Game.RegisterRoutes(rg)
	a.Blog.RegisterRoutes(rg)
	a.Guide.RegisterRoutes(rg)
	a.Forum.RegisterRoutes(rg)
	a.Comment.RegisterRoutes(rg)
	a.Like.RegisterRoutes(rg)
	a.Report.RegisterRoutes(rg)
	a.Notification.RegisterRoutes(rg)
	a.Chat.RegisterRoutes(rg)
}
