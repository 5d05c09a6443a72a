package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/semihsari152/CoreGameApp-sub006/internal/middleware"
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
	"github.com/semihsari152/CoreGameApp-sub006/pkg/apperrors"
)

type LikeHandler struct {
	*BaseHandler
	likeService services.LikeService
}

func NewLikeHandler(base *BaseHandler, likeService services.LikeService) *LikeHandler {
	return &LikeHandler{
		BaseHandler: base,
		likeService: likeService,
	}
}

func (h *LikeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authed := rg.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/likes/toggle", h.ToggleLike)
		authed.POST("/favorites/toggle", h.ToggleFavorite)
		authed.GET("/favorites", h.ListFavorites)
	}
}

func (h *LikeHandler) ToggleLike(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ToggleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.likeService.ToggleLike(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *LikeHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ToggleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.likeService.ToggleFavorite(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *LikeHandler) ListFavorites(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	entityType := models.EntityType(c.Query("entity_type"))
	if entityType != "" && !models.ValidEntityType(entityType) {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid entity_type"))
		return
	}

	favorites, err := h.likeService.ListFavorites(userID, entityType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}
