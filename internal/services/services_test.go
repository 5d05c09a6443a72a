package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/semihsari152/CoreGameApp-sub006/database"
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        username + "@test.local",
		Username:     username,
		DisplayName:  username,
		PasswordHash: "x",
		Role:         models.UserRoleUser,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newNotificationService(db *gorm.DB) NotificationService {
	return NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewFollowRepository(db),
	)
}

type pushRecord struct {
	UserID  string
	Event   string
	Payload any
}

// recordingRealtime captures hub pushes for assertions.
type recordingRealtime struct {
	mu     sync.Mutex
	Pushes []pushRecord
}

func (r *recordingRealtime) PushToUser(userID, event string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Pushes = append(r.Pushes, pushRecord{UserID: userID, Event: event, Payload: payload})
}

func (r *recordingRealtime) eventsFor(userID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, p := range r.Pushes {
		if p.UserID == userID {
			out = append(out, p.Event)
		}
	}
	return out
}
