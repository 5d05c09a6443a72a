package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/semihsari152/CoreGameApp-sub006/internal/middleware"
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

type ForumHandler struct {
	*BaseHandler
	forumService services.ForumService
}

func NewForumHandler(base *BaseHandler, forumService services.ForumService) *ForumHandler {
	return &ForumHandler{
		BaseHandler:  base,
		forumService: forumService,
	}
}

func (h *ForumHandler) RegisterRoutes(rg *gin.RouterGroup) {
	forum := rg.Group("/forum")
	{
		forum.GET("/categories", h.ListCategories)
		forum.GET("/categories/:id/topics", h.ListTopics)
		forum.GET("/topics/:id", h.GetTopic)
		forum.GET("/topics/:id/posts", h.ListPosts)
	}

	authed := rg.Group("/forum")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/topics", h.CreateTopic)
		authed.DELETE("/topics/:id", h.DeleteTopic)
		authed.POST("/topics/:id/posts", h.CreatePost)
		authed.PATCH("/posts/:id", h.UpdatePost)
		authed.DELETE("/posts/:id", h.DeletePost)
	}

	mod := rg.Group("/forum")
	mod.Use(middleware.AuthMiddleware())
	mod.Use(middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleModerator))
	{
		mod.POST("/categories", h.CreateCategory)
		mod.PATCH("/categories/:id", h.UpdateCategory)
		mod.DELETE("/categories/:id", h.DeleteCategory)
		mod.PATCH("/topics/:id/moderate", h.ModerateTopic)
	}
}

func (h *ForumHandler) ListCategories(c *gin.Context) {
	categories, err := h.forumService.ListCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *ForumHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.forumService.CreateCategory(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *ForumHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.forumService.UpdateCategory(c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *ForumHandler) DeleteCategory(c *gin.Context) {
	if err := h.forumService.DeleteCategory(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

func (h *ForumHandler) CreateTopic(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTopicRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	topic, err := h.forumService.CreateTopic(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, topic)
}

func (h *ForumHandler) GetTopic(c *gin.Context) {
	topic, err := h.forumService.GetTopic(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, topic)
}

func (h *ForumHandler) ListTopics(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	topics, total, err := h.forumService.ListTopics(c.Param("id"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics, "total": total})
}

func (h *ForumHandler) ModerateTopic(c *gin.Context) {
	var req dto.ModerateTopicRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	topic, err := h.forumService.ModerateTopic(c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, topic)
}

func (h *ForumHandler) DeleteTopic(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	isStaff := isStaffRole(middleware.GetUserRole(c))
	if err := h.forumService.DeleteTopic(userID, isStaff, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Topic deleted"})
}

func (h *ForumHandler) CreatePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateForumPostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.forumService.CreatePost(userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *ForumHandler) ListPosts(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	posts, total, err := h.forumService.ListPosts(c.Param("id"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": total})
}

func (h *ForumHandler) UpdatePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateForumPostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.forumService.UpdatePost(userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *ForumHandler) DeletePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	isStaff := isStaffRole(middleware.GetUserRole(c))
	if err := h.forumService.DeletePost(userID, isStaff, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
