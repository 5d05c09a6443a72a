package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/test/helpers"
)

func TestAuthFlow(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "alice@example.com",
		"username": "alice",
		"password": "super_password123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var reg struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		User         struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Status   string `json:"status"`
		} `json:"user"`
	}
	decode(t, body, &reg)
	assert.NotEmpty(t, reg.AccessToken)
	assert.Equal(t, "alice", reg.User.Username)
	assert.Equal(t, string(models.UserStatusPending), reg.User.Status)

	// the freshly issued token opens the protected surface
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", reg.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "alice@example.com")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "super_password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	payload := map[string]interface{}{
		"email":    "dup@example.com",
		"username": "first",
		"password": "super_password123",
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	payload["username"] = "second"
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", payload)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	ts := newServer(t)
	user := helpers.CreateUser(t, ts.DB, "bob", models.UserRoleUser)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "definitely-wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestVerifyEmail(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "carol@example.com",
		"username": "carol",
		"password": "super_password123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var user models.User
	require.NoError(t, ts.DB.Where("email = ?", "carol@example.com").First(&user).Error)
	require.NotEmpty(t, user.VerificationToken)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/verify-email", "", map[string]interface{}{
		"token": user.VerificationToken,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	require.NoError(t, ts.DB.First(&user, "id = ?", user.ID).Error)
	assert.True(t, user.IsVerified)
	assert.Equal(t, models.UserStatusActive, user.Status)
}

func TestRefreshToken_Rotation(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	_, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "dave@example.com",
		"username": "dave",
		"password": "super_password123",
	})
	var reg struct {
		RefreshToken string `json:"refresh_token"`
	}
	decode(t, body, &reg)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": reg.RefreshToken,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var refreshed struct {
		RefreshToken string `json:"refresh_token"`
	}
	decode(t, body, &refreshed)
	assert.NotEqual(t, reg.RefreshToken, refreshed.RefreshToken)

	// the presented token is burned; replaying it fails
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": reg.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestProtectedRoute_RequiresToken(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
