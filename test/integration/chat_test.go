package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/test/helpers"
)

func TestDirectMessageFlow(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	aliceToken, alice := helpers.CreateAndLoginUser(t, ts, "alice", models.UserRoleUser)
	bobToken, bob := helpers.CreateAndLoginUser(t, ts, "bob", models.UserRoleUser)
	helpers.MakeFriends(t, ts.DB, alice, bob)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/chat/conversations", aliceToken, map[string]interface{}{
		"type":            "direct",
		"participant_ids": []string{bob.ID},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var conv struct {
		ID string `json:"id"`
	}
	decode(t, body, &conv)
	require.NotEmpty(t, conv.ID)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/chat/messages", aliceToken, map[string]interface{}{
		"conversation_id": conv.ID,
		"content":         "hey bob",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	// bob sees the message and one unread
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/chat/conversations/"+conv.ID+"/messages", bobToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var history struct {
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
		Total int64 `json:"total"`
	}
	decode(t, body, &history)
	require.Len(t, history.Messages, 1)
	assert.Equal(t, "hey bob", history.Messages[0].Content)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/chat/conversations/"+conv.ID+"/unread-count", bobToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"count":1`)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/chat/conversations/"+conv.ID+"/read-all", bobToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	_, body = ts.SendRequest(t, http.MethodGet, "/api/v1/chat/conversations/"+conv.ID+"/unread-count", bobToken, nil)
	assert.Contains(t, body, `"count":0`)
}

func TestDirectConversation_RequiresFriendship(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	aliceToken, _ := helpers.CreateAndLoginUser(t, ts, "alice", models.UserRoleUser)
	_, bob := helpers.CreateAndLoginUser(t, ts, "bob", models.UserRoleUser)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/chat/conversations", aliceToken, map[string]interface{}{
		"type":            "direct",
		"participant_ids": []string{bob.ID},
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestDirectConversation_Deduplicated(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	aliceToken, alice := helpers.CreateAndLoginUser(t, ts, "alice", models.UserRoleUser)
	bobToken, bob := helpers.CreateAndLoginUser(t, ts, "bob", models.UserRoleUser)
	helpers.MakeFriends(t, ts.DB, alice, bob)

	payload := map[string]interface{}{
		"type":            "direct",
		"participant_ids": []string{bob.ID},
	}
	_, body := ts.SendRequest(t, http.MethodPost, "/api/v1/chat/conversations", aliceToken, payload)
	var first struct {
		ID string `json:"id"`
	}
	decode(t, body, &first)

	// bob opening the same pair lands in the existing conversation
	_, body = ts.SendRequest(t, http.MethodPost, "/api/v1/chat/conversations", bobToken, map[string]interface{}{
		"type":            "direct",
		"participant_ids": []string{alice.ID},
	})
	var second struct {
		ID string `json:"id"`
	}
	decode(t, body, &second)
	assert.Equal(t, first.ID, second.ID)
}

func TestGroupConversation_LeaveCutsAccess(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	aliceToken, _ := helpers.CreateAndLoginUser(t, ts, "alice", models.UserRoleUser)
	bobToken, bob := helpers.CreateAndLoginUser(t, ts, "bob", models.UserRoleUser)
	_, carol := helpers.CreateAndLoginUser(t, ts, "carol", models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/chat/conversations", aliceToken, map[string]interface{}{
		"type":            "group",
		"title":           "raid night",
		"participant_ids": []string{bob.ID, carol.ID},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var conv struct {
		ID string `json:"id"`
	}
	decode(t, body, &conv)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/chat/conversations/"+conv.ID+"/leave", bobToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/chat/messages", bobToken, map[string]interface{}{
		"conversation_id": conv.ID,
		"content":         "am I still here?",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestEditAndDeleteMessage_OwnerOnly(t *testing.T) {
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

	_, body = ts.SendRequest(t, http.MethodPost, "/api/v1/chat/messages", aliceToken, map[string]interface{}{
		"conversation_id": conv.ID,
		"content":         "tpyo",
	})
	var msg struct {
		ID string `json:"id"`
	}
	decode(t, body, &msg)

	res, _ := ts.SendRequest(t, http.MethodPatch, "/api/v1/chat/messages/"+msg.ID, bobToken, map[string]interface{}{
		"content": "not yours to edit",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/chat/messages/"+msg.ID, aliceToken, map[string]interface{}{
		"content": "typo",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"is_edited":true`)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/chat/messages/"+msg.ID, aliceToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
