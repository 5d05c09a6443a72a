package helpers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/semihsari152/CoreGameApp-sub006/database"
	"github.com/semihsari152/CoreGameApp-sub006/internal/auth"
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
)

// NewTestDB opens a fresh in-memory database and migrates all tables.
// Each call gets its own database, so tests stay isolated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// CreateUser inserts an active, verified user. The raw password is
// "password123" unless overridden through the user's PasswordHash field.
func CreateUser(t *testing.T, db *gorm.DB, username string, role models.UserRole) *models.User {
	t.Helper()

	password := "password123"

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        fmt.Sprintf("%s@test.local", username),
		Username:     username,
		DisplayName:  username,
		PasswordHash: hash,
		Role:         role,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}

	return user
}

// MakeFriends inserts an accepted friendship between two users.
func MakeFriends(t *testing.T, db *gorm.DB, a, b *models.User) {
	t.Helper()

	friendship := &models.Friendship{
		RequesterID: a.ID,
		AddresseeID: b.ID,
		Status:      models.FriendshipStatusAccepted,
	}
	if err := db.Create(friendship).Error; err != nil {
		t.Fatalf("failed to create friendship: %v", err)
	}
}
