package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/internal/handlers"
	"github.com/semihsari152/CoreGameApp-sub006/internal/logger"
	"github.com/semihsari152/CoreGameApp-sub006/pkg/contextkeys"
	"github.com/semihsari152/CoreGameApp-sub006/ws"
)

// RegisterRoutes mounts the HTTP API and the websocket endpoints.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.Handler,
) {
	ginRouter.GET("/healthz", healthz)

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.RegisterAll(api)
	}

	// The websocket upgrade authenticates through ?token=, so no auth
	// middleware here. Anonymous sockets are accepted and restricted
	// inside the hub.
	wsGroup := ginRouter.Group("/ws")
	{
		wsGroup.GET("/chat", wsHandler.ServeChatWS)
		wsGroup.GET("/notifications", wsHandler.ServeNotificationWS)
	}
	logger.Info("WebSocket routes /ws/chat and /ws/notifications registered")
}

// healthz pings the request-scoped database handle.
func healthz(c *gin.Context) {
	val, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "no database"})
		return
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "no database"})
		return
	}

	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unreachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
