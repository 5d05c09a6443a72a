package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/semihsari152/CoreGameApp-sub006/internal/middleware"
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

type ReportHandler struct {
	*BaseHandler
	reportService services.ReportService
}

func NewReportHandler(base *BaseHandler, reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   base,
		reportService: reportService,
	}
}

func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authed := rg.Group("/reports")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", h.Create)
	}

	mod := rg.Group("/admin/reports")
	mod.Use(middleware.AuthMiddleware())
	mod.Use(middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleModerator))
	{
		mod.GET("", h.List)
		mod.POST("/:id/resolve", h.Resolve)
	}
}

func (h *ReportHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReportRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	report, err := h.reportService.Create(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

func (h *ReportHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	status := models.ReportStatus(c.DefaultQuery("status", string(models.ReportStatusOpen)))

	reports, total, err := h.reportService.ListByStatus(status, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports, "total": total})
}

func (h *ReportHandler) Resolve(c *gin.Context) {
	reviewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ResolveReportRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.reportService.Resolve(reviewerID, c.Param("id"), req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report resolved"})
}
