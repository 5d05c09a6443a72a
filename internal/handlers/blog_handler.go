package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/semihsari152/CoreGameApp-sub006/internal/middleware"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

type BlogHandler struct {
	*BaseHandler
	blogService services.BlogService
}

func NewBlogHandler(base *BaseHandler, blogService services.BlogService) *BlogHandler {
	return &BlogHandler{
		BaseHandler: base,
		blogService: blogService,
	}
}

func (h *BlogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	blog := rg.Group("/blog")
	{
		blog.GET("", h.List)
		blog.GET("/:slug", h.GetBySlug)
	}

	authed := rg.Group("/blog")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", h.Create)
		authed.PATCH("/:slug", h.Update)
		authed.DELETE("/:slug", h.Delete)
	}
}

func (h *BlogHandler) List(c *gin.Context) {
	var req dto.ContentListRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	posts, total, err := h.blogService.List(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": total})
}

func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.blogService.GetBySlug(c.Param("slug"), true)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBlogPostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.blogService.Create(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *BlogHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBlogPostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.blogService.GetBySlug(c.Param("slug"), false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	updated, err := h.blogService.Update(userID, post.ID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	post, err := h.blogService.GetBySlug(c.Param("slug"), false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	isStaff := isStaffRole(middleware.GetUserRole(c))
	if err := h.blogService.Delete(userID, isStaff, post.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
