package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/test/helpers"
)

func TestFriendshipLifecycle(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	aliceToken, alice := helpers.CreateAndLoginUser(t, ts, "alice", models.UserRoleUser)
	bobToken, bob := helpers.CreateAndLoginUser(t, ts, "bob", models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/friends/requests", aliceToken, map[string]interface{}{
		"addressee_id": bob.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var friendship struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decode(t, body, &friendship)
	assert.Equal(t, string(models.FriendshipStatusPending), friendship.Status)

	// bob sees the pending request; alice has no inbound requests
	_, body = ts.SendRequest(t, http.MethodGet, "/api/v1/friends/pending", bobToken, nil)
	assert.Contains(t, body, friendship.ID)
	_, body = ts.SendRequest(t, http.MethodGet, "/api/v1/friends/pending", aliceToken, nil)
	assert.NotContains(t, body, friendship.ID)

	// only the addressee may respond
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/friends/requests/"+friendship.ID+"/respond", aliceToken, map[string]interface{}{
		"accept": true,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/friends/requests/"+friendship.ID+"/respond", bobToken, map[string]interface{}{
		"accept": true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	_, body = ts.SendRequest(t, http.MethodGet, "/api/v1/friends", aliceToken, nil)
	assert.Contains(t, body, bob.Username)
	_, body = ts.SendRequest(t, http.MethodGet, "/api/v1/friends", bobToken, nil)
	assert.Contains(t, body, alice.Username)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/friends/"+bob.ID, aliceToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	_, body = ts.SendRequest(t, http.MethodGet, "/api/v1/friends", aliceToken, nil)
	assert.NotContains(t, body, bob.Username)
}

func TestFriendRequest_SelfRejected(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	aliceToken, alice := helpers.CreateAndLoginUser(t, ts, "alice", models.UserRoleUser)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/friends/requests", aliceToken, map[string]interface{}{
		"addressee_id": alice.ID,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestBlock_StopsNewRequests(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	aliceToken, _ := helpers.CreateAndLoginUser(t, ts, "alice", models.UserRoleUser)
	bobToken, bob := helpers.CreateAndLoginUser(t, ts, "bob", models.UserRoleUser)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/friends/block/"+bob.ID, aliceToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var aliceUser models.User
	require.NoError(t, ts.DB.Where("username = ?", "alice").First(&aliceUser).Error)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/friends/requests", bobToken, map[string]interface{}{
		"addressee_id": aliceUser.ID,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestFollowFlow(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	aliceToken, alice := helpers.CreateAndLoginUser(t, ts, "alice", models.UserRoleUser)
	_, bob := helpers.CreateAndLoginUser(t, ts, "bob", models.UserRoleUser)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/follows/"+bob.ID, aliceToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// following is idempotent
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/follows/"+bob.ID, aliceToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	_, body := ts.SendRequest(t, http.MethodGet, "/api/v1/users/"+bob.ID+"/followers", "", nil)
	assert.Contains(t, body, alice.Username)
	assert.Contains(t, body, `"total":1`)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/follows/"+bob.ID, aliceToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	_, body = ts.SendRequest(t, http.MethodGet, "/api/v1/users/"+bob.ID+"/followers", "", nil)
	assert.NotContains(t, body, alice.Username)
}
