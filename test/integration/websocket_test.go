package integration_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/test/helpers"
)

func dialWS(t *testing.T, ts *helpers.TestServer, path, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.Server.URL, "http") + path + "?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err, "websocket dial failed")
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readWSEvent(t *testing.T, conn *websocket.Conn) (string, json.RawMessage) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var frame struct {
		Event string          `json:"event"`
		Data  json.RawMessage `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&frame))
	return frame.Event, frame.Data
}

// waitOnline polls the friends list until the target shows as online,
// proving the hub finished registering their socket.
func waitOnline(t *testing.T, ts *helpers.TestServer, viewerToken, username string) {
	t.Helper()
	require.Eventually(t, func() bool {
		_, body := ts.SendRequest(t, http.MethodGet, "/api/v1/friends", viewerToken, nil)
		var list struct {
			Friends []struct {
				Username string `json:"username"`
				IsOnline bool   `json:"is_online"`
			} `json:"friends"`
		}
		if json.Unmarshal([]byte(body), &list) != nil {
			return false
		}
		for _, f := range list.Friends {
			if f.Username == username && f.IsOnline {
				return true
			}
		}
		return false
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWebSocket_ChatMessageDelivery(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	aliceToken, alice := helpers.CreateAndLoginUser(t, ts, "alice", models.UserRoleUser)
	bobToken, bob := helpers.CreateAndLoginUser(t, ts, "bob", models.UserRoleUser)
	helpers.MakeFriends(t, ts.DB, alice, bob)

	_, body := ts.SendRequest(t, http.MethodPost, "/api/v1/chat/conversations", aliceToken, map[string]interface{}{
		"type":            "direct",
		"participant_ids": []string{bob.ID},
	})
	var conv struct {
		ID string `json:"id"`
	}
	decode(t, body, &conv)

	// bob connects after the conversation exists, so the hub joins his
	// socket to it on register
	conn := dialWS(t, ts, "/ws/chat", bobToken)
	waitOnline(t, ts, aliceToken, "bob")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/chat/messages", aliceToken, map[string]interface{}{
		"conversation_id": conv.ID,
		"content":         "ping over the wire",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	event, data := readWSEvent(t, conn)
	assert.Equal(t, "message:new", event)
	var msg struct {
		ConversationID string `json:"conversation_id"`
		Content        string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, conv.ID, msg.ConversationID)
	assert.Equal(t, "ping over the wire", msg.Content)
}

func TestWebSocket_NotificationPush(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	aliceToken, _ := helpers.CreateAndLoginUser(t, ts, "alice", models.UserRoleUser)
	bobToken, bob := helpers.CreateAndLoginUser(t, ts, "bob", models.UserRoleUser)
	carolToken, carol := helpers.CreateAndLoginUser(t, ts, "carol", models.UserRoleUser)
	helpers.MakeFriends(t, ts.DB, carol, bob)

	conn := dialWS(t, ts, "/ws/notifications", bobToken)
	waitOnline(t, ts, carolToken, "bob")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/friends/requests", aliceToken, map[string]interface{}{
		"addressee_id": bob.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// the notification itself, then the refreshed unread counter
	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		event, _ := readWSEvent(t, conn)
		seen[event] = true
	}
	assert.True(t, seen["notification:new"])
	assert.True(t, seen["notification:unread_count"])
}

func TestWebSocket_NotFriendsErrorSurfaced(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	aliceToken, alice := helpers.CreateAndLoginUser(t, ts, "alice", models.UserRoleUser)
	bobToken, bob := helpers.CreateAndLoginUser(t, ts, "bob", models.UserRoleUser)
	helpers.MakeFriends(t, ts.DB, alice, bob)

	_, body := ts.SendRequest(t, http.MethodPost, "/api/v1/chat/conversations", aliceToken, map[string]interface{}{
		"type":            "direct",
		"participant_ids": []string{bob.ID},
	})
	var conv struct {
		ID string `json:"id"`
	}
	decode(t, body, &conv)

	conn := dialWS(t, ts, "/ws/chat", aliceToken)
	waitOnline(t, ts, bobToken, "alice")

	// the friendship ends; messaging into the old conversation now
	// bounces back to the sender
	require.NoError(t, ts.DB.Where("requester_id = ? OR addressee_id = ?", alice.ID, alice.ID).
		Delete(&models.Friendship{}).Error)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"action": "send_message",
		"data": map[string]interface{}{
			"conversation_id": conv.ID,
			"content":         "still there?",
		},
	}))

	event, data := readWSEvent(t, conn)
	assert.Equal(t, "error", event)
	var payload struct {
		Action string `json:"action"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "send_message", payload.Action)
}

func TestWebSocket_AnonymousHeartbeatOnly(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	url := "ws" + strings.TrimPrefix(ts.Server.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// an anonymous socket may not act on conversations; the frame is
	// dropped without a reply
	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"action": "send_message",
		"data":   map[string]interface{}{"content": "hi"},
	}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(500*time.Millisecond)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err, "expected no frames for an anonymous sender")
}
