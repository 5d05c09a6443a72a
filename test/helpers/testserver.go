package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/internal/app"
	"github.com/semihsari152/CoreGameApp-sub006/internal/config"
	"github.com/semihsari152/CoreGameApp-sub006/internal/logger"
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
)

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// TestConfig installs a self-contained configuration so nothing reads
// config files or the environment during tests.
func TestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Chat.PresenceGraceSeconds = 0
	cfg.Chat.SendQueueSize = 64
	cfg.Notifications.RetentionDays = 90
	cfg.Notifications.CleanupHours = 6
	cfg.Notifications.DispatchBufSize = 64

	config.AppConfig = cfg
	return cfg
}

// NewTestServer boots the full router on an in-memory database.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	cfg := TestConfig()
	logger.Init(cfg.Server.Env)

	db := NewTestDB(t)
	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// SendRequest issues a JSON request and returns the response plus body.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "failed to encode request body")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err, "failed to build request")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err, "request failed")

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err, "failed to read response body")
	res.Body.Close()

	return res, string(resBody)
}

// CreateAndLoginUser creates an active user and logs in through the API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, username string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := CreateUser(t, ts.DB, username, role)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed: %s", body)

	var loginResponse struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)

	return loginResponse.AccessToken, user
}
