package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/test/helpers"
)

func TestForumFlow(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	modToken, _ := helpers.CreateAndLoginUser(t, ts, "mod", models.UserRoleModerator)
	userToken, _ := helpers.CreateAndLoginUser(t, ts, "poster", models.UserRoleUser)

	// categories are moderator-managed
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/forum/categories", userToken, map[string]interface{}{
		"name": "Sneaky Category",
	})
	require.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/forum/categories", modToken, map[string]interface{}{
		"name":        "General Discussion",
		"description": "Anything goes",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var category struct {
		ID string `json:"id"`
	}
	decode(t, body, &category)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/forum/topics", userToken, map[string]interface{}{
		"category_id": category.ID,
		"title":       "Best co-op games of the year?",
		"content":     "Looking for recommendations.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var topic struct {
		ID string `json:"id"`
	}
	decode(t, body, &topic)

	// the opening post exists
	_, body = ts.SendRequest(t, http.MethodGet, "/api/v1/forum/topics/"+topic.ID+"/posts", "", nil)
	assert.Contains(t, body, "Looking for recommendations.")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/forum/topics/"+topic.ID+"/posts", userToken, map[string]interface{}{
		"content": "Deep Rock, easily.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	_, body = ts.SendRequest(t, http.MethodGet, "/api/v1/forum/categories/"+category.ID+"/topics", "", nil)
	assert.Contains(t, body, topic.ID)
}

func TestForumTopic_LockStopsReplies(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	modToken, _ := helpers.CreateAndLoginUser(t, ts, "mod", models.UserRoleModerator)
	userToken, _ := helpers.CreateAndLoginUser(t, ts, "poster", models.UserRoleUser)

	_, body := ts.SendRequest(t, http.MethodPost, "/api/v1/forum/categories", modToken, map[string]interface{}{
		"name": "Announcements",
	})
	var category struct {
		ID string `json:"id"`
	}
	decode(t, body, &category)

	_, body = ts.SendRequest(t, http.MethodPost, "/api/v1/forum/topics", userToken, map[string]interface{}{
		"category_id": category.ID,
		"title":       "Server maintenance",
		"content":     "Scheduled downtime tonight.",
	})
	var topic struct {
		ID string `json:"id"`
	}
	decode(t, body, &topic)

	res, _ := ts.SendRequest(t, http.MethodPatch, "/api/v1/forum/topics/"+topic.ID+"/moderate", modToken, map[string]interface{}{
		"is_locked": true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/forum/topics/"+topic.ID+"/posts", userToken, map[string]interface{}{
		"content": "One more thing",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}
