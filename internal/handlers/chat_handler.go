package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/semihsari152/CoreGameApp-sub006/internal/middleware"
	chatservice "github.com/semihsari152/CoreGameApp-sub006/internal/services/chat"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

// ChatHandler is the REST mirror of the websocket chat surface. History,
// conversation management and moderation go through here; live traffic
// goes through the hub.
type ChatHandler struct {
	*BaseHandler
	chatService        *chatservice.ChatService
	readReceiptService *chatservice.ReadReceiptService
	reactionService    *chatservice.ReactionService
}

func NewChatHandler(base *BaseHandler, chat *chatservice.ChatService, reads *chatservice.ReadReceiptService, reactions *chatservice.ReactionService) *ChatHandler {
	return &ChatHandler{
		BaseHandler:        base,
		chatService:        chat,
		readReceiptService: reads,
		reactionService:    reactions,
	}
}

func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	chat := rg.Group("/chat")
	chat.Use(middleware.AuthMiddleware())
	{
		chat.GET("/conversations", h.ListConversations)
		chat.POST("/conversations", h.CreateConversation)
		chat.GET("/conversations/:id/messages", h.GetMessages)
		chat.POST("/conversations/:id/read-all", h.MarkAllAsRead)
		chat.GET("/conversations/:id/unread-count", h.UnreadCount)
		chat.DELETE("/conversations/:id/leave", h.LeaveConversation)
		chat.POST("/messages", h.SendMessage)
		chat.PATCH("/messages/:id", h.EditMessage)
		chat.DELETE("/messages/:id", h.DeleteMessage)
		chat.GET("/messages/:id/reactions", h.GetReactions)
		chat.GET("/messages/:id/readers", h.GetReaders)
	}
}

func (h *ChatHandler) ListConversations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	conversations, err := h.chatService.ListConversations(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

func (h *ChatHandler) CreateConversation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateConversationInput
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	conversation, err := h.chatService.CreateConversation(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, conversation)
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)

	messages, total, err := h.chatService.GetMessages(userID, c.Param("id"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages, "total": total})
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageInput
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message, err := h.chatService.SendMessage(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *ChatHandler) EditMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.EditMessageInput
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message, err := h.chatService.EditMessage(userID, c.Param("id"), req.Content)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}

func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.chatService.DeleteMessage(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}

func (h *ChatHandler) MarkAllAsRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.readReceiptService.MarkAllAsRead(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Conversation read"})
}

func (h *ChatHandler) UnreadCount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	count, err := h.chatService.UnreadCount(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *ChatHandler) LeaveConversation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.chatService.LeaveConversation(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left conversation"})
}

func (h *ChatHandler) GetReactions(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	reactions, err := h.reactionService.GetByMessageID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reactions": reactions})
}

func (h *ChatHandler) GetReaders(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	readers, err := h.readReceiptService.GetReaders(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"readers": readers})
}
