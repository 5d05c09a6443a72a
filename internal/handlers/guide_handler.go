package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/semihsari152/CoreGameApp-sub006/internal/middleware"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

type GuideHandler struct {
	*BaseHandler
	guideService services.GuideService
}

func NewGuideHandler(base *BaseHandler, guideService services.GuideService) *GuideHandler {
	return &GuideHandler{
		BaseHandler:  base,
		guideService: guideService,
	}
}

func (h *GuideHandler) RegisterRoutes(rg *gin.RouterGroup) {
	guides := rg.Group("/guides")
	{
		guides.GET("", h.List)
		guides.GET("/:slug", h.GetBySlug)
	}

	authed := rg.Group("/guides")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", h.Create)
		authed.PATCH("/:slug", h.Update)
		authed.DELETE("/:slug", h.Delete)
	}
}

func (h *GuideHandler) List(c *gin.Context) {
	var req dto.ContentListRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	guides, total, err := h.guideService.List(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"guides": guides, "total": total})
}

func (h *GuideHandler) GetBySlug(c *gin.Context) {
	guide, err := h.guideService.GetBySlug(c.Param("slug"), true)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, guide)
}

func (h *GuideHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGuideRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	guide, err := h.guideService.Create(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, guide)
}

func (h *GuideHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateGuideRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	guide, err := h.guideService.GetBySlug(c.Param("slug"), false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	updated, err := h.guideService.Update(userID, guide.ID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *GuideHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	guide, err := h.guideService.GetBySlug(c.Param("slug"), false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	isStaff := isStaffRole(middleware.GetUserRole(c))
	if err := h.guideService.Delete(userID, isStaff, guide.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Guide deleted"})
}
