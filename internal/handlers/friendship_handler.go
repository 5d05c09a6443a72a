package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/semihsari152/CoreGameApp-sub006/internal/middleware"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

type FriendshipHandler struct {
	*BaseHandler
	friendshipService services.FriendshipService
	followService     services.FollowService
}

func NewFriendshipHandler(base *BaseHandler, friendshipService services.FriendshipService, followService services.FollowService) *FriendshipHandler {
	return &FriendshipHandler{
		BaseHandler:       base,
		friendshipService: friendshipService,
		followService:     followService,
	}
}

func (h *FriendshipHandler) RegisterRoutes(rg *gin.RouterGroup) {
	friends := rg.Group("/friends")
	friends.Use(middleware.AuthMiddleware())
	{
		friends.GET("", h.ListFriends)
		friends.GET("/pending", h.ListPending)
		friends.POST("/requests", h.SendRequest)
		friends.POST("/requests/:id/respond", h.Respond)
		friends.POST("/block/:userId", h.Block)
		friends.DELETE("/:userId", h.Unfriend)
	}

	follows := rg.Group("/follows")
	follows.Use(middleware.AuthMiddleware())
	{
		follows.POST("/:userId", h.Follow)
		follows.DELETE("/:userId", h.Unfollow)
	}

	users := rg.Group("/users")
	{
		users.GET("/:id/followers", h.ListFollowers)
		users.GET("/:id/following", h.ListFollowing)
	}
}

func (h *FriendshipHandler) ListFriends(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	friends, err := h.friendshipService.ListFriends(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

func (h *FriendshipHandler) ListPending(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	pending, err := h.friendshipService.ListPending(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": pending})
}

func (h *FriendshipHandler) SendRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.FriendRequestInput
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	friendship, err := h.friendshipService.SendRequest(userID, req.AddresseeID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, friendship)
}

func (h *FriendshipHandler) Respond(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RespondFriendRequestInput
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	friendship, err := h.friendshipService.Respond(userID, c.Param("id"), req.Accept)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, friendship)
}

func (h *FriendshipHandler) Block(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.friendshipService.Block(userID, c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User blocked"})
}

func (h *FriendshipHandler) Unfriend(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.friendshipService.Unfriend(userID, c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend removed"})
}

func (h *FriendshipHandler) Follow(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.followService.Follow(userID, c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Following"})
}

func (h *FriendshipHandler) Unfollow(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.followService.Unfollow(userID, c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed"})
}

func (h *FriendshipHandler) ListFollowers(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	followers, err := h.followService.ListFollowers(c.Param("id"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	count, err := h.followService.CountFollowers(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"followers": followers, "total": count})
}

func (h *FriendshipHandler) ListFollowing(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	following, err := h.followService.ListFollowing(c.Param("id"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": following})
}
