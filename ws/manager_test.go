package ws

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semihsari152/CoreGameApp-sub006/internal/presence"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager("test", presence.NewRegistry(), 0, 32)
	go m.Run()
	return m
}

func newTestClient(m *Manager, userID string, sendBuf int) *Client {
	return &Client{
		ID:      uuid.NewString(),
		UserID:  userID,
		Send:    make(chan Event, sendBuf),
		groups:  make(map[string]struct{}),
		manager: m,
	}
}

func recvEvent(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case ev := <-c.Send:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func assertNoEvent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case ev := <-c.Send:
		t.Fatalf("unexpected event %q", ev.Event)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestManager_PushToUser_AllConnections(t *testing.T) {
	m := newTestManager(t)
	tabA := newTestClient(m, "alice", 8)
	tabB := newTestClient(m, "alice", 8)
	other := newTestClient(m, "bob", 8)
	m.register <- tabA
	m.register <- tabB
	m.register <- other

	m.PushToUser("alice", "notification:new", map[string]string{"id": "n1"})

	assert.Equal(t, "notification:new", recvEvent(t, tabA).Event)
	assert.Equal(t, "notification:new", recvEvent(t, tabB).Event)
	assertNoEvent(t, other)
}

func TestManager_PushToUser_OfflineIsNoop(t *testing.T) {
	m := newTestManager(t)
	online := newTestClient(m, "alice", 8)
	m.register <- online

	// no group for the user means the envelope lands nowhere
	m.PushToUser("ghost", "notification:new", nil)
	assertNoEvent(t, online)
}

func TestManager_AnonymousReceivesNothing(t *testing.T) {
	m := newTestManager(t)
	anon := newTestClient(m, "", 8)
	m.register <- anon

	m.PushToUser("", "notification:new", nil)
	assertNoEvent(t, anon)
	assert.Eventually(t, func() bool { return m.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestManager_ConversationBroadcast(t *testing.T) {
	m := newTestManager(t)
	alice := newTestClient(m, "alice", 8)
	bob := newTestClient(m, "bob", 8)
	outsider := newTestClient(m, "carol", 8)
	m.register <- alice
	m.register <- bob
	m.register <- outsider

	m.JoinConversation(alice, "conv-1")
	m.JoinConversation(bob, "conv-1")

	m.BroadcastToConversation("conv-1", "message:new", map[string]string{"id": "m1"})

	assert.Equal(t, "message:new", recvEvent(t, alice).Event)
	assert.Equal(t, "message:new", recvEvent(t, bob).Event)
	assertNoEvent(t, outsider)

	m.LeaveConversation(bob, "conv-1")
	m.BroadcastToConversation("conv-1", "message:new", nil)

	assert.Equal(t, "message:new", recvEvent(t, alice).Event)
	assertNoEvent(t, bob)
}

func TestManager_TopicGroupFanOut(t *testing.T) {
	m := newTestManager(t)
	alice := newTestClient(m, "alice", 8)
	bob := newTestClient(m, "bob", 8)
	outsider := newTestClient(m, "carol", 8)
	m.register <- alice
	m.register <- bob
	m.register <- outsider

	m.JoinGroup(alice, "patch-notes")
	m.JoinGroup(bob, "patch-notes")

	m.SendToGroup("patch-notes", "announcement:new", map[string]string{"title": "1.2 live"})

	assert.Equal(t, "announcement:new", recvEvent(t, alice).Event)
	assert.Equal(t, "announcement:new", recvEvent(t, bob).Event)
	assertNoEvent(t, outsider)

	m.LeaveGroup(bob, "patch-notes")
	m.SendToGroup("patch-notes", "announcement:new", nil)

	assert.Equal(t, "announcement:new", recvEvent(t, alice).Event)
	assertNoEvent(t, bob)
}

func TestManager_TopicGroupCannotShadowConversation(t *testing.T) {
	m := newTestManager(t)
	alice := newTestClient(m, "alice", 8)
	eavesdropper := newTestClient(m, "bob", 8)
	m.register <- alice
	m.register <- eavesdropper

	m.JoinConversation(alice, "conv-1")
	// a topic named like a conversation ID lands in a different group
	m.JoinGroup(eavesdropper, "conv-1")

	m.BroadcastToConversation("conv-1", "message:new", nil)

	assert.Equal(t, "message:new", recvEvent(t, alice).Event)
	assertNoEvent(t, eavesdropper)
}

func TestManager_AutoJoinFromConversationSource(t *testing.T) {
	m := newTestManager(t)
	m.SetConversationSource(stubConversationSource{"alice": {"conv-7"}})

	alice := newTestClient(m, "alice", 8)
	m.register <- alice

	m.BroadcastToConversation("conv-7", "message:new", nil)
	assert.Equal(t, "message:new", recvEvent(t, alice).Event)
}

func TestManager_SlowConsumerDropsEvent(t *testing.T) {
	m := newTestManager(t)
	slow := newTestClient(m, "alice", 1)
	sentinel := newTestClient(m, "bob", 8)
	m.register <- slow
	m.register <- sentinel

	m.PushToUser("alice", "first", nil)
	m.PushToUser("alice", "second", nil)
	m.PushToUser("alice", "third", nil)
	m.PushToUser("bob", "done", nil)

	// the sentinel proves all four envelopes have been delivered
	assert.Equal(t, "done", recvEvent(t, sentinel).Event)

	// buffer holds one event; the rest are shed, never retried
	assert.Equal(t, "first", recvEvent(t, slow).Event)
	assertNoEvent(t, slow)
}

func TestManager_UnregisterClosesAndGoesOffline(t *testing.T) {
	reg := presence.NewRegistry()
	m := NewManager("test", reg, 0, 32)
	go m.Run()

	alice := newTestClient(m, "alice", 8)
	m.register <- alice
	require.True(t, reg.IsOnline("alice"))

	m.unregister <- alice

	select {
	case _, open := <-alice.Send:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("send channel was not closed")
	}
	assert.False(t, reg.IsOnline("alice"))
	assert.Equal(t, 0, m.ClientCount())
}

type stubConversationSource map[string][]string

func (s stubConversationSource) ActiveConversationIDs(userID string) ([]string, error) {
	return s[userID], nil
}
