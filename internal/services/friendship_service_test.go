package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
)

type stubPresence struct {
	online map[string]bool
}

func (s *stubPresence) IsOnline(userID string) bool { return s.online[userID] }

func newFriendshipService(db *gorm.DB) FriendshipService {
	return NewFriendshipService(
		repositories.NewFriendshipRepository(db),
		repositories.NewUserRepository(db),
		newNotificationService(db),
	)
}

func TestFriendRequestLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newFriendshipService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	request, err := svc.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusPending, request.Status)

	// A duplicate request is rejected.
	_, err = svc.SendRequest(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrFriendshipExists)

	// Only the addressee may respond.
	_, err = svc.Respond(alice.ID, request.ID, true)
	assert.ErrorIs(t, err, ErrNotAddressee)

	accepted, err := svc.Respond(bob.ID, request.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusAccepted, accepted.Status)

	isFriends, err := svc.AreFriends(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, isFriends)

	// Acceptance produced a notification for the requester.
	notifSvc := newNotificationService(db)
	count, err := notifSvc.GetUnreadCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFriendRequest_DeclinedPairCanRetry(t *testing.T) {
	db := newTestDB(t)
	svc := newFriendshipService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	request, err := svc.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	declined, err := svc.Respond(bob.ID, request.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusDeclined, declined.Status)

	// The pair can start over after a decline.
	retry, err := svc.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusPending, retry.Status)
	assert.NotEqual(t, request.ID, retry.ID)
}

func TestBlock_ReplacesRelationshipAndStopsRequests(t *testing.T) {
	db := newTestDB(t)
	svc := newFriendshipService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	request, err := svc.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = svc.Respond(bob.ID, request.ID, true)
	require.NoError(t, err)

	require.NoError(t, svc.Block(bob.ID, alice.ID))

	isFriends, err := svc.AreFriends(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, isFriends)

	_, err = svc.SendRequest(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrFriendshipBlocked)
}

func TestSendRequest_SelfRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newFriendshipService(db)

	alice := createTestUser(t, db, "alice")

	_, err := svc.SendRequest(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFriendship)
}

func TestListFriends_DecoratesPresence(t *testing.T) {
	db := newTestDB(t)
	svc := newFriendshipService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	for _, other := range []*models.User{bob, carol} {
		request, err := svc.SendRequest(alice.ID, other.ID)
		require.NoError(t, err)
		_, err = svc.Respond(other.ID, request.ID, true)
		require.NoError(t, err)
	}

	svc.SetPresence(&stubPresence{online: map[string]bool{bob.ID: true}})

	friends, err := svc.ListFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 2)

	byID := map[string]bool{}
	for _, f := range friends {
		byID[f.ID] = f.IsOnline
	}
	assert.True(t, byID[bob.ID])
	assert.False(t, byID[carol.ID])
}
