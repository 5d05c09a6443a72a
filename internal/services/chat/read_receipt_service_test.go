package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	repoChat "github.com/semihsari152/CoreGameApp-sub006/internal/repositories/chat"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

func newReadReceiptService(t *testing.T, db *gorm.DB) (*ReadReceiptService, *recordingBroadcaster) {
	t.Helper()

	svc := NewReadReceiptService(
		repoChat.NewMessageReadRepository(db),
		repoChat.NewMessageRepository(db),
		repoChat.NewParticipantRepository(db),
	)
	broadcaster := &recordingBroadcaster{}
	svc.SetBroadcaster(broadcaster)
	return svc, broadcaster
}

func TestMarkAsRead_IsIdempotent(t *testing.T) {
	db := newTestDB(t)
	chatSvc, convID, messageID, _, bobID := seedConversationWithMessage(t, db)
	svc, broadcaster := newReadReceiptService(t, db)

	require.NoError(t, svc.MarkAsRead(bobID, messageID))
	require.NoError(t, svc.MarkAsRead(bobID, messageID))

	readers, err := svc.GetReaders(messageID)
	require.NoError(t, err)

	// One receipt from bob plus the sender's implicit self-read.
	assert.Len(t, readers, 2)

	// Only the first call broadcasts.
	count := 0
	for _, name := range broadcaster.eventNames() {
		if name == EventMessageRead {
			count++
		}
	}
	assert.Equal(t, 1, count)

	unread, err := chatSvc.UnreadCount(bobID, convID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}

func TestMarkAsRead_OwnMessageDoesNotBroadcast(t *testing.T) {
	db := newTestDB(t)
	_, _, messageID, aliceID, _ := seedConversationWithMessage(t, db)
	svc, broadcaster := newReadReceiptService(t, db)

	require.NoError(t, svc.MarkAsRead(aliceID, messageID))
	assert.NotContains(t, broadcaster.eventNames(), EventMessageRead)
}

func TestMarkAllAsRead_BackfillsConversation(t *testing.T) {
	db := newTestDB(t)
	chatSvc, convID, _, aliceID, bobID := seedConversationWithMessage(t, db)
	svc, _ := newReadReceiptService(t, db)

	for i := 0; i < 4; i++ {
		_, err := chatSvc.SendMessage(aliceID, dto.SendMessageInput{
			ConversationID: convID,
			Content:        "more",
		})
		require.NoError(t, err)
	}

	unread, err := chatSvc.UnreadCount(bobID, convID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), unread)

	require.NoError(t, svc.MarkAllAsRead(bobID, convID))

	unread, err = chatSvc.UnreadCount(bobID, convID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)

	// Repeat runs stay clean.
	require.NoError(t, svc.MarkAllAsRead(bobID, convID))
}

func TestMarkAsRead_NonParticipantRejected(t *testing.T) {
	db := newTestDB(t)
	_, _, messageID, _, _ := seedConversationWithMessage(t, db)
	svc, _ := newReadReceiptService(t, db)

	mallory := createTestUser(t, db, "mallory")

	assert.ErrorIs(t, svc.MarkAsRead(mallory.ID, messageID), ErrNotParticipant)
}
