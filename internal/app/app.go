package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/database"
	"github.com/semihsari152/CoreGameApp-sub006/internal/config"
	"github.com/semihsari152/CoreGameApp-sub006/internal/email"
	"github.com/semihsari152/CoreGameApp-sub006/internal/gamemeta"
	"github.com/semihsari152/CoreGameApp-sub006/internal/handlers"
	"github.com/semihsari152/CoreGameApp-sub006/internal/logger"
	"github.com/semihsari152/CoreGameApp-sub006/internal/middleware"
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/presence"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	repoChat "github.com/semihsari152/CoreGameApp-sub006/internal/repositories/chat"
	"github.com/semihsari152/CoreGameApp-sub006/internal/routes"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services"
	chatservice "github.com/semihsari152/CoreGameApp-sub006/internal/services/chat"
	"github.com/semihsari152/CoreGameApp-sub006/internal/validator"
	"github.com/semihsari152/CoreGameApp-sub006/internal/workers"
	"github.com/semihsari152/CoreGameApp-sub006/ws"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full engine: services, hubs, workers, routes.
// Tests call it with their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	sc, deps := initializeServices(cfg, gormDB)

	appHandlers := initializeHandlers(sc)

	wsHandler := initializeHubs(cfg, sc, deps)

	worker := workers.NewNotificationWorker(
		deps.notificationRepo,
		time.Duration(cfg.Notifications.CleanupHours)*time.Hour,
		cfg.Notifications.RetentionDays,
	)
	go worker.Start(context.Background())

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter
}

// serviceDeps carries the few repositories that outlive service
// construction: the hubs and the cleanup worker need them directly.
type serviceDeps struct {
	notificationRepo repositories.NotificationRepository
	participantRepo  *repoChat.ParticipantRepository
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) (*services.ServiceContainer, serviceDeps) {
	var emailService email.Provider
	if cfg.Server.Env == "production" {
		emailService = email.NewGomailProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			BaseURL:   fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port),
		}, email.NewHTMLRenderer())
	} else {
		logger.Warn("Using mock email provider outside production")
		emailService = email.NewMockProvider()
	}

	userRepo := repositories.NewUserRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	friendshipRepo := repositories.NewFriendshipRepository(gormDB)
	followRepo := repositories.NewFollowRepository(gormDB)
	gameRepo := repositories.NewGameRepository(gormDB)
	blogRepo := repositories.NewBlogRepository(gormDB)
	guideRepo := repositories.NewGuideRepository(gormDB)
	forumRepo := repositories.NewForumRepository(gormDB)
	commentRepo := repositories.NewCommentRepository(gormDB)
	likeRepo := repositories.NewLikeRepository(gormDB)
	reportRepo := repositories.NewReportRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	conversationRepo := repoChat.NewConversationRepository(gormDB)
	participantRepo := repoChat.NewParticipantRepository(gormDB)
	messageRepo := repoChat.NewMessageRepository(gormDB)
	messageReadRepo := repoChat.NewMessageReadRepository(gormDB)
	reactionRepo := repoChat.NewMessageReactionRepository(gormDB)

	resolver := services.NewEntityResolver(gameRepo, blogRepo, guideRepo, forumRepo, commentRepo)

	notificationService := services.NewNotificationService(notificationRepo, userRepo, followRepo)
	authService := services.NewAuthService(userRepo, refreshTokenRepo, emailService)
	userService := services.NewUserService(userRepo, refreshTokenRepo)
	friendshipService := services.NewFriendshipService(friendshipRepo, userRepo, notificationService)
	followService := services.NewFollowService(followRepo, userRepo, notificationService)
	gameService := services.NewGameService(gameRepo)
	blogService := services.NewBlogService(blogRepo)
	guideService := services.NewGuideService(guideRepo, gameRepo)
	forumService := services.NewForumService(forumRepo)
	commentService := services.NewCommentService(commentRepo, resolver, notificationService)
	likeService := services.NewLikeService(likeRepo, resolver, notificationService)
	reportService := services.NewReportService(reportRepo, userRepo, resolver, notificationService)

	chatService := chatservice.NewChatService(
		conversationRepo, participantRepo, messageRepo,
		messageReadRepo, reactionRepo,
		userRepo, friendshipRepo,
	)
	chatService.SetNotifier(notificationService)
	reactionService := chatservice.NewReactionService(reactionRepo, messageRepo, participantRepo)
	readReceiptService := chatservice.NewReadReceiptService(messageReadRepo, messageRepo, participantRepo)

	sc := &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		FriendshipService:   friendshipService,
		FollowService:       followService,
		GameService:         gameService,
		BlogService:         blogService,
		GuideService:        guideService,
		ForumService:        forumService,
		CommentService:      commentService,
		LikeService:         likeService,
		ReportService:       reportService,
		NotificationService: notificationService,
		ChatService:         chatService,
		ReactionService:     reactionService,
		ReadReceiptService:  readReceiptService,
		EmailService:        emailService,
		GameMetaClient:      gamemeta.NewHTTPClient(cfg.GameMeta.BaseURL, cfg.GameMeta.APIKey),
	}

	return sc, serviceDeps{
		notificationRepo: notificationRepo,
		participantRepo:  participantRepo,
	}
}

// initializeHubs starts the chat and notification hubs and closes the
// service/hub loop: services broadcast through the hubs, the friendship
// service reads presence, the chat hub auto-joins active conversations.
func initializeHubs(cfg *config.Config, sc *services.ServiceContainer, deps serviceDeps) *ws.Handler {
	presenceReg := presence.NewRegistry()

	chatManager := ws.NewManager(
		"chat",
		presenceReg,
		time.Duration(cfg.Chat.PresenceGraceSeconds)*time.Second,
		cfg.Chat.SendQueueSize,
	)
	chatManager.SetConversationSource(deps.participantRepo)

	notificationManager := ws.NewManager(
		"notifications",
		presenceReg,
		0,
		cfg.Notifications.DispatchBufSize,
	)

	sc.ChatService.SetBroadcaster(chatManager)
	sc.ReactionService.SetBroadcaster(chatManager)
	sc.ReadReceiptService.SetBroadcaster(chatManager)
	sc.NotificationService.SetRealtimeNotifier(notificationManager)
	sc.FriendshipService.SetPresence(presenceReg)

	go chatManager.Run()
	go notificationManager.Run()

	return ws.NewHandler(chatManager, notificationManager, sc.ChatService, sc.ReactionService, sc.ReadReceiptService)
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	return handlers.NewAppHandlers(validator.New(), sc)
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		Username:     "admin",
		DisplayName:  "Administrator",
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
