package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

func TestNotificationCreate_PushesToLiveConnections(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	realtime := &recordingRealtime{}
	svc.SetRealtimeNotifier(realtime)

	user := createTestUser(t, db, "alice")

	created, err := svc.Create(dto.CreateNotificationInput{
		UserID:  user.ID,
		Type:    models.NotificationTypeSystem,
		Title:   "Welcome",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "Welcome", created.Title)

	events := realtime.eventsFor(user.ID)
	assert.Contains(t, events, EventNotificationNew)
	assert.Contains(t, events, EventNotificationUnreadCount)

	count, err := svc.GetUnreadCount(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNotificationCreate_OfflineIsSilent(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	// No realtime notifier attached: persistence still works.

	user := createTestUser(t, db, "alice")

	_, err := svc.Create(dto.CreateNotificationInput{
		UserID:  user.ID,
		Type:    models.NotificationTypeSystem,
		Title:   "Queued",
		Message: "read me later",
	})
	require.NoError(t, err)

	count, err := svc.GetUnreadCount(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNotificationMarkAllAsRead(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	user := createTestUser(t, db, "alice")

	for i := 0; i < 3; i++ {
		_, err := svc.Create(dto.CreateNotificationInput{
			UserID:  user.ID,
			Type:    models.NotificationTypeSystem,
			Title:   "n",
			Message: "m",
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.MarkAllAsRead(user.ID))

	count, err := svc.GetUnreadCount(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNotificationOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	created, err := svc.Create(dto.CreateNotificationInput{
		UserID:  alice.ID,
		Type:    models.NotificationTypeSystem,
		Title:   "private",
		Message: "m",
	})
	require.NoError(t, err)

	// Another user cannot touch it.
	assert.ErrorIs(t, svc.MarkAsRead(bob.ID, created.ID), repositories.ErrNotificationNotFound)
	assert.ErrorIs(t, svc.Delete(bob.ID, created.ID), repositories.ErrNotificationNotFound)

	require.NoError(t, svc.MarkAsRead(alice.ID, created.ID))
	require.NoError(t, svc.Delete(alice.ID, created.ID))
}

func TestNotifyFollowers_FansOut(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	author := createTestUser(t, db, "author")
	fan1 := createTestUser(t, db, "fan1")
	fan2 := createTestUser(t, db, "fan2")

	for _, fan := range []*models.User{fan1, fan2} {
		require.NoError(t, db.Create(&models.Follow{
			FollowerID: fan.ID,
			FolloweeID: author.ID,
		}).Error)
	}

	require.NoError(t, svc.NotifyFollowers(author.ID, dto.CreateNotificationInput{
		Type:    models.NotificationTypeSystem,
		Title:   "New post",
		Message: "author published something",
	}))

	for _, fan := range []*models.User{fan1, fan2} {
		count, err := svc.GetUnreadCount(fan.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	}

	// The author gets nothing.
	count, err := svc.GetUnreadCount(author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNotifyLike_SkipsSelf(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	alice := createTestUser(t, db, "alice")

	require.NoError(t, svc.NotifyLike(alice.ID, alice.ID, models.EntityTypeBlogPost, alice.ID))

	count, err := svc.GetUnreadCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGetUserNotifications_FiltersUnread(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	user := createTestUser(t, db, "alice")

	first, err := svc.Create(dto.CreateNotificationInput{
		UserID: user.ID, Type: models.NotificationTypeSystem, Title: "a", Message: "m",
	})
	require.NoError(t, err)
	_, err = svc.Create(dto.CreateNotificationInput{
		UserID: user.ID, Type: models.NotificationTypeSystem, Title: "b", Message: "m",
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkAsRead(user.ID, first.ID))

	resp, err := svc.GetUserNotifications(user.ID, dto.NotificationListRequest{UnreadOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, int64(1), resp.UnreadCount)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "b", resp.Notifications[0].Title)
}
