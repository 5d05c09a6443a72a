package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/semihsari152/CoreGameApp-sub006/internal/middleware"
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/search", h.Search)
		users.GET("/by-username/:username", h.GetByUsername)
	}

	authed := rg.Group("/users")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/me", h.Me)
		authed.PATCH("/me", h.UpdateProfile)
		authed.POST("/me/change-password", h.ChangePassword)
		authed.GET("/:id", h.GetByID)
	}

	admin := rg.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.PATCH("/:id", h.AdminUpdate)
		admin.DELETE("/:id", h.AdminDelete)
	}
}

func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(userID, true)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userService.GetByID(c.Param("id"), false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetByUsername(c *gin.Context) {
	user, err := h.userService.GetByUsername(c.Param("username"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.ChangePassword(userID, req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

func (h *UserHandler) Search(c *gin.Context) {
	var req dto.UserSearchRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.userService.Search(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) AdminUpdate(c *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.AdminUpdate(c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) AdminDelete(c *gin.Context) {
	if err := h.userService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
