package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/internal/logger"
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	repoChat "github.com/semihsari152/CoreGameApp-sub006/internal/repositories/chat"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services"
	chatservice "github.com/semihsari152/CoreGameApp-sub006/internal/services/chat"
	"github.com/semihsari152/CoreGameApp-sub006/internal/validator"
	"github.com/semihsari152/CoreGameApp-sub006/pkg/apperrors"
	"github.com/semihsari152/CoreGameApp-sub006/pkg/contextkeys"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// GetDB returns the request-scoped gorm handle set by DBMiddleware.
// Tests swap in a per-request transaction through the same key.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.runValidation(c, obj)
}

func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}

	return h.runValidation(c, obj)
}

func (h *BaseHandler) runValidation(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError maps service sentinel errors onto HTTP statuses.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error", "error", appErr.Message, "path", c.Request.URL.Path)
		apperrors.HandleError(c, appErr)
		return
	}

	switch {
	case isNotFound(err):
		apperrors.HandleError(c, apperrors.NewNotFoundError("request", err.Error()))
	case isConflict(err):
		apperrors.HandleError(c, apperrors.NewConflictError("request", err.Error()))
	case isForbidden(err):
		apperrors.HandleError(c, apperrors.NewForbiddenError(err.Error()))
	case isUnauthorized(err):
		apperrors.HandleError(c, apperrors.NewUnauthorizedError(err.Error()))
	case isBadRequest(err):
		apperrors.HandleError(c, apperrors.NewBadRequestError(err.Error()))
	default:
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

func isNotFound(err error) bool {
	for _, target := range []error{
		repositories.ErrUserNotFound,
		repositories.ErrGameNotFound,
		repositories.ErrBlogPostNotFound,
		repositories.ErrGuideNotFound,
		repositories.ErrForumCategoryNotFound,
		repositories.ErrForumTopicNotFound,
		repositories.ErrForumPostNotFound,
		repositories.ErrCommentNotFound,
		repositories.ErrReportNotFound,
		repositories.ErrFriendshipNotFound,
		repositories.ErrNotificationNotFound,
		repositories.ErrRefreshTokenNotFound,
		repoChat.ErrConversationNotFound,
		repoChat.ErrMessageNotFound,
		services.ErrEntityNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isConflict(err error) bool {
	return errors.Is(err, repositories.ErrUserAlreadyExists) ||
		errors.Is(err, services.ErrFriendshipExists) ||
		errors.Is(err, services.ErrTopicLocked)
}

func isForbidden(err error) bool {
	return errors.Is(err, services.ErrNotAuthor) ||
		errors.Is(err, services.ErrNotAddressee) ||
		errors.Is(err, services.ErrFriendshipBlocked) ||
		errors.Is(err, services.ErrAccountBanned) ||
		errors.Is(err, chatservice.ErrNotParticipant) ||
		errors.Is(err, chatservice.ErrNotFriends) ||
		errors.Is(err, chatservice.ErrNotMessageOwner)
}

func isUnauthorized(err error) bool {
	return errors.Is(err, services.ErrInvalidCredentials)
}

func isBadRequest(err error) bool {
	return errors.Is(err, services.ErrSelfFriendship) ||
		errors.Is(err, services.ErrSelfFollow) ||
		errors.Is(err, services.ErrWrongPassword) ||
		errors.Is(err, services.ErrInvalidResetToken) ||
		errors.Is(err, chatservice.ErrEmptyMessage) ||
		errors.Is(err, chatservice.ErrConversationInactive)
}

// GetAndAuthorizeUserID pulls the authenticated user from the context
// or writes a 401.
func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok || userIDStr == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid user ID in context"))
		return "", false
	}

	return userIDStr, true
}

func isStaffRole(role models.UserRole) bool {
	return role == models.UserRoleAdmin || role == models.UserRoleModerator
}

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func ParsePagination(c *gin.Context) (page int, pageSize int) {
	const defaultPage = 1
	const defaultPageSize = 20
	const maxPageSize = 100

	page = ParseQueryInt(c, "page", defaultPage)
	if page <= 0 {
		page = defaultPage
	}

	pageSize = ParseQueryInt(c, "page_size", defaultPageSize)
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return page, pageSize
}
