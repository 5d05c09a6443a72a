package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/semihsari152/CoreGameApp-sub006/internal/middleware"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

type CommentHandler struct {
	*BaseHandler
	commentService services.CommentService
}

func NewCommentHandler(base *BaseHandler, commentService services.CommentService) *CommentHandler {
	return &CommentHandler{
		BaseHandler:    base,
		commentService: commentService,
	}
}

func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	comments := rg.Group("/comments")
	{
		comments.GET("", h.ListByEntity)
	}

	authed := rg.Group("/comments")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", h.Create)
		authed.PATCH("/:id", h.Update)
		authed.DELETE("/:id", h.Delete)
	}
}

func (h *CommentHandler) ListByEntity(c *gin.Context) {
	var req dto.CommentListRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	comments, total, err := h.commentService.ListByEntity(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments, "total": total})
}

func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	comment, err := h.commentService.Create(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	comment, err := h.commentService.Update(userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	isStaff := isStaffRole(middleware.GetUserRole(c))
	if err := h.commentService.Delete(userID, isStaff, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
