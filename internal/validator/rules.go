package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	chatmodels "github.com/semihsari152/CoreGameApp-sub006/internal/models/chat"
)

// registerCustomRules registers the platform's enum validations on the
// validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error, not
			// something to limp past.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-entity-type", validateEntityType)
	mustRegister("is-notification-type", validateNotificationType)
	mustRegister("is-friendship-status", validateFriendshipStatus)
	mustRegister("is-report-status", validateReportStatus)
	mustRegister("is-media-type", validateMediaType)
	mustRegister("is-conversation-type", validateConversationType)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is 'required' territory
	}
	switch models.UserRole(value) {
	case models.UserRoleAdmin, models.UserRoleModerator, models.UserRoleUser:
		return true
	default:
		return false
	}
}

func validateEntityType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidEntityType(models.EntityType(value))
}

func validateNotificationType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case models.NotificationTypeLike, models.NotificationTypeComment,
		models.NotificationTypeNewMessage, models.NotificationTypeFriendRequest,
		models.NotificationTypeFriendAccepted, models.NotificationTypeNewFollower,
		models.NotificationTypeContentReported, models.NotificationTypeSystem:
		return true
	default:
		return false
	}
}

func validateFriendshipStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.FriendshipStatus(value) {
	case models.FriendshipStatusPending, models.FriendshipStatusAccepted,
		models.FriendshipStatusDeclined, models.FriendshipStatusBlocked:
		return true
	default:
		return false
	}
}

func validateReportStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ReportStatus(value) {
	case models.ReportStatusOpen, models.ReportStatusResolved,
		models.ReportStatusDismissed:
		return true
	default:
		return false
	}
}

func validateMediaType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch chatmodels.MediaType(value) {
	case chatmodels.MediaText, chatmodels.MediaImage,
		chatmodels.MediaGif, chatmodels.MediaVideo:
		return true
	default:
		return false
	}
}

func validateConversationType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch chatmodels.ConversationType(value) {
	case chatmodels.ConversationDirect, chatmodels.ConversationGroup:
		return true
	default:
		return false
	}
}
