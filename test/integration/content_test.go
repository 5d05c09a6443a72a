package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/test/helpers"
)

func TestGameCatalog_AdminAndRating(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "admin1", models.UserRoleAdmin)
	playerToken, _ := helpers.CreateAndLoginUser(t, ts, "player", models.UserRoleUser)

	// plain users cannot touch the admin surface
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/games", playerToken, map[string]interface{}{
		"title": "Smuggled Game",
	})
	require.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/games", adminToken, map[string]interface{}{
		"title":     "Hollow Depths",
		"developer": "Cave Studio",
		"genres":    []string{"metroidvania"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var game struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
	}
	decode(t, body, &game)
	assert.Equal(t, "hollow-depths", game.Slug)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/games/"+game.Slug+"/rate", playerToken, map[string]interface{}{
		"score": 9,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"user_score":9`)

	// the public rating view carries the aggregate, not a viewer score
	_, body = ts.SendRequest(t, http.MethodGet, "/api/v1/games/"+game.Slug+"/rating", "", nil)
	assert.Contains(t, body, `"rating_avg":9`)
	assert.Contains(t, body, `"rating_count":1`)

	_, body = ts.SendRequest(t, http.MethodGet, "/api/v1/games?search=Hollow", "", nil)
	assert.Contains(t, body, game.ID)
}

func TestBlogLifecycle(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	authorToken, _ := helpers.CreateAndLoginUser(t, ts, "author", models.UserRoleUser)
	strangerToken, _ := helpers.CreateAndLoginUser(t, ts, "stranger", models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/blog", authorToken, map[string]interface{}{
		"title":   "Patch Notes Deep Dive",
		"content": "The balance changes explained.",
		"publish": true,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var post struct {
		Slug string `json:"slug"`
	}
	decode(t, body, &post)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/blog/"+post.Slug, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Patch Notes Deep Dive")

	// only the author edits or removes it
	res, _ = ts.SendRequest(t, http.MethodPatch, "/api/v1/blog/"+post.Slug, strangerToken, map[string]interface{}{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/blog/"+post.Slug, authorToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/blog/"+post.Slug, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCommentsAndLikes(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	authorToken, _ := helpers.CreateAndLoginUser(t, ts, "author", models.UserRoleUser)
	readerToken, _ := helpers.CreateAndLoginUser(t, ts, "reader", models.UserRoleUser)

	_, body := ts.SendRequest(t, http.MethodPost, "/api/v1/blog", authorToken, map[string]interface{}{
		"title":   "Commented Post",
		"content": "body",
		"publish": true,
	})
	var post struct {
		ID string `json:"id"`
	}
	decode(t, body, &post)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/comments", readerToken, map[string]interface{}{
		"entity_type": "blog_post",
		"entity_id":   post.ID,
		"content":     "great write-up",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	_, body = ts.SendRequest(t, http.MethodGet, "/api/v1/comments?entity_type=blog_post&entity_id="+post.ID, "", nil)
	assert.Contains(t, body, "great write-up")
	assert.Contains(t, body, `"total":1`)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/likes/toggle", readerToken, map[string]interface{}{
		"entity_type": "blog_post",
		"entity_id":   post.ID,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"active":true`)
	assert.Contains(t, body, `"count":1`)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/likes/toggle", readerToken, map[string]interface{}{
		"entity_type": "blog_post",
		"entity_id":   post.ID,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"active":false`)
}

func TestReportFlow_ModeratorResolves(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	authorToken, _ := helpers.CreateAndLoginUser(t, ts, "author", models.UserRoleUser)
	reporterToken, _ := helpers.CreateAndLoginUser(t, ts, "reporter", models.UserRoleUser)
	modToken, _ := helpers.CreateAndLoginUser(t, ts, "mod", models.UserRoleModerator)

	_, body := ts.SendRequest(t, http.MethodPost, "/api/v1/blog", authorToken, map[string]interface{}{
		"title":   "Reported Post",
		"content": "spam spam spam",
		"publish": true,
	})
	var post struct {
		ID string `json:"id"`
	}
	decode(t, body, &post)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/reports", reporterToken, map[string]interface{}{
		"entity_type": "blog_post",
		"entity_id":   post.ID,
		"reason":      "spam",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var report struct {
		ID string `json:"id"`
	}
	decode(t, body, &report)

	// the report queue is staff only
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/reports", reporterToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/reports", modToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, report.ID)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/reports/"+report.ID+"/resolve", modToken, map[string]interface{}{
		"status":     "resolved",
		"resolution": "content removed",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// resolved reports leave the default open queue
	_, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/reports", modToken, nil)
	assert.NotContains(t, body, report.ID)
}
