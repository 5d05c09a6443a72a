package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/internal/config"
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	chatmodels "github.com/semihsari152/CoreGameApp-sub006/internal/models/chat"
)

var gormDB *gorm.DB

// ConnectGorm opens the connection from config and caches the handle.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model, chat tables included.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Friendship{},
		&models.Follow{},
		&models.Game{},
		&models.GameRating{},
		&models.BlogPost{},
		&models.Guide{},
		&models.ForumCategory{},
		&models.ForumTopic{},
		&models.ForumPost{},
		&models.Comment{},
		&models.Like{},
		&models.Favorite{},
		&models.Report{},
		&models.Notification{},
		// chat module
		&chatmodels.Conversation{},
		&chatmodels.ConversationParticipant{},
		&chatmodels.Message{},
		&chatmodels.MessageRead{},
		&chatmodels.MessageReaction{},
	)
}
