package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/semihsari152/CoreGameApp-sub006/internal/auth"
	"github.com/semihsari152/CoreGameApp-sub006/internal/logger"
	chatservice "github.com/semihsari152/CoreGameApp-sub006/internal/services/chat"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Browser clients come from the configured CORS origins; the
		// socket itself is gated by the JWT, not the origin.
		return true
	},
}

// Handler upgrades HTTP requests onto the chat and notification hubs.
type Handler struct {
	ChatManager         *Manager
	NotificationManager *Manager

	chatService        *chatservice.ChatService
	reactionService    *chatservice.ReactionService
	readReceiptService *chatservice.ReadReceiptService
}

func NewHandler(
	chatManager, notificationManager *Manager,
	chatSvc *chatservice.ChatService,
	reactionSvc *chatservice.ReactionService,
	readReceiptSvc *chatservice.ReadReceiptService,
) *Handler {
	return &Handler{
		ChatManager:         chatManager,
		NotificationManager: notificationManager,
		chatService:         chatSvc,
		reactionService:     reactionSvc,
		readReceiptService:  readReceiptSvc,
	}
}

// ServeChatWS handles GET /ws/chat.
func (h *Handler) ServeChatWS(c *gin.Context) {
	h.serve(c, h.ChatManager)
}

// ServeNotificationWS handles GET /ws/notifications.
func (h *Handler) ServeNotificationWS(c *gin.Context) {
	h.serve(c, h.NotificationManager)
}

func (h *Handler) serve(c *gin.Context, manager *Manager) {
	// Identity comes from the auth middleware when the client can set
	// headers, or from a token query parameter for plain browser
	// websockets. A socket with neither is accepted but anonymous.
	userID := resolveUserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithError(err).Warn("websocket upgrade failed")
		return
	}

	client := &Client{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Conn:               conn,
		Send:               make(chan Event, 64),
		groups:             make(map[string]struct{}),
		manager:            manager,
		chatService:        h.chatService,
		reactionService:    h.reactionService,
		readReceiptService: h.readReceiptService,
	}

	manager.register <- client

	go client.readPump()
	go client.writePump()
}

func resolveUserID(c *gin.Context) string {
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	if token := c.Query("token"); token != "" {
		claims, err := auth.ParseToken(token)
		if err == nil {
			return claims.UserID
		}
	}
	return ""
}
