package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	chatmodels "github.com/semihsari152/CoreGameApp-sub006/internal/models/chat"
	repoChat "github.com/semihsari152/CoreGameApp-sub006/internal/repositories/chat"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

func newReactionService(t *testing.T, db *gorm.DB) (*ReactionService, *recordingBroadcaster) {
	t.Helper()

	svc := NewReactionService(
		repoChat.NewMessageReactionRepository(db),
		repoChat.NewMessageRepository(db),
		repoChat.NewParticipantRepository(db),
	)
	broadcaster := &recordingBroadcaster{}
	svc.SetBroadcaster(broadcaster)
	return svc, broadcaster
}

func seedConversationWithMessage(t *testing.T, db *gorm.DB) (svc *ChatService, convID, messageID, aliceID, bobID string) {
	t.Helper()

	chatSvc, _, _ := newChatService(t, db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	makeFriends(t, db, alice, bob)

	conv, err := chatSvc.CreateConversation(alice.ID, dto.CreateConversationInput{
		Type:           string(chatmodels.ConversationDirect),
		ParticipantIDs: []string{bob.ID},
	})
	require.NoError(t, err)

	msg, err := chatSvc.SendMessage(alice.ID, dto.SendMessageInput{
		ConversationID: conv.ID,
		Content:        "react to me",
	})
	require.NoError(t, err)

	return chatSvc, conv.ID, msg.ID, alice.ID, bob.ID
}

func TestToggleReaction_AddAndRemove(t *testing.T) {
	db := newTestDB(t)
	_, _, messageID, aliceID, bobID := seedConversationWithMessage(t, db)
	svc, broadcaster := newReactionService(t, db)

	summary, err := svc.Toggle(bobID, messageID, "👍")
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "👍", summary[0].Emoji)
	assert.Equal(t, 1, summary[0].Count)
	assert.Equal(t, []string{bobID}, summary[0].UserIDs)

	summary, err = svc.Toggle(aliceID, messageID, "👍")
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, 2, summary[0].Count)

	// Second toggle by the same user removes the reaction.
	summary, err = svc.Toggle(bobID, messageID, "👍")
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, 1, summary[0].Count)
	assert.Equal(t, []string{aliceID}, summary[0].UserIDs)

	// Every toggle rebroadcasts the full recomputed set.
	count := 0
	for _, name := range broadcaster.eventNames() {
		if name == EventMessageReactions {
			count++
		}
	}
	assert.Equal(t, 3, count)
}

func TestToggleReaction_NonParticipantRejected(t *testing.T) {
	db := newTestDB(t)
	_, _, messageID, _, _ := seedConversationWithMessage(t, db)
	svc, _ := newReactionService(t, db)

	mallory := createTestUser(t, db, "mallory")

	_, err := svc.Toggle(mallory.ID, messageID, "👍")
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestToggleReaction_MultipleEmojis(t *testing.T) {
	db := newTestDB(t)
	_, _, messageID, aliceID, bobID := seedConversationWithMessage(t, db)
	svc, _ := newReactionService(t, db)

	_, err := svc.Toggle(bobID, messageID, "👍")
	require.NoError(t, err)
	summary, err := svc.Toggle(aliceID, messageID, "🎉")
	require.NoError(t, err)

	require.Len(t, summary, 2)
	emojis := []string{summary[0].Emoji, summary[1].Emoji}
	assert.Contains(t, emojis, "👍")
	assert.Contains(t, emojis, "🎉")
}
