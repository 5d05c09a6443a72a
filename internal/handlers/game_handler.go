package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/semihsari152/CoreGameApp-sub006/internal/gamemeta"
	"github.com/semihsari152/CoreGameApp-sub006/internal/middleware"
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
	"github.com/semihsari152/CoreGameApp-sub006/pkg/apperrors"
)

type GameHandler struct {
	*BaseHandler
	gameService services.GameService
	metaClient  gamemeta.Client
}

func NewGameHandler(base *BaseHandler, gameService services.GameService, metaClient gamemeta.Client) *GameHandler {
	return &GameHandler{
		BaseHandler: base,
		gameService: gameService,
		metaClient:  metaClient,
	}
}

func (h *GameHandler) RegisterRoutes(rg *gin.RouterGroup) {
	games := rg.Group("/games")
	{
		games.GET("", h.List)
		games.GET("/:slug", h.GetBySlug)
		games.GET("/:slug/rating", h.GetRating)
	}

	authed := rg.Group("/games")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/:slug/rate", h.Rate)
	}

	admin := rg.Group("/admin/games")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleModerator))
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.GET("/meta/search", h.SearchMeta)
	}
}

func (h *GameHandler) List(c *gin.Context) {
	var req dto.GameListRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	games, total, err := h.gameService.List(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"games": games, "total": total})
}

func (h *GameHandler) GetBySlug(c *gin.Context) {
	game, err := h.gameService.GetBySlug(c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) Rate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RateGameRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	game, err := h.gameService.GetBySlug(c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	rating, err := h.gameService.Rate(game.ID, userID, req.Score)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

func (h *GameHandler) GetRating(c *gin.Context) {
	game, err := h.gameService.GetBySlug(c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Viewer score only when authenticated.
	userID := middleware.GetUserID(c)

	rating, err := h.gameService.GetRating(game.ID, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

func (h *GameHandler) Create(c *gin.Context) {
	var req dto.CreateGameRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	game, err := h.gameService.Create(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

func (h *GameHandler) Update(c *gin.Context) {
	var req dto.UpdateGameRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	game, err := h.gameService.Update(c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) Delete(c *gin.Context) {
	if err := h.gameService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

func (h *GameHandler) SearchMeta(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("query parameter q is required"))
		return
	}

	results, err := h.metaClient.Search(c.Request.Context(), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
