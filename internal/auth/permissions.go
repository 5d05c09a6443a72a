package auth

import "errors"

// RBAC roles
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

// Permissions per role
var Permissions = map[string][]string{
	RoleAdmin: {
		"users:read",
		"users:write",
		"users:delete",
		"games:write",
		"content:read",
		"content:write",
		"content:delete",
		"reports:review",
		"system:admin",
	},
	RoleModerator: {
		"users:read",
		"content:read",
		"content:write",
		"content:delete",
		"reports:review",
	},
	RoleUser: {
		"users:read:self",
		"users:write:self",
		"content:read",
		"content:write:self",
		"content:delete:self",
	},
}

// HasPermission reports whether the role grants the permission.
func HasPermission(role, permission string) bool {
	permissions, exists := Permissions[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the claims belong to an administrator.
func IsAdmin(claims *Claims) bool {
	return claims.Role == RoleAdmin
}

// IsModeratorOrHigher reports whether the claims have moderation rights.
func IsModeratorOrHigher(claims *Claims) bool {
	return claims.Role == RoleModerator || claims.Role == RoleAdmin
}

// ValidateRole rejects unknown role values.
func ValidateRole(role string) error {
	switch role {
	case RoleAdmin, RoleModerator, RoleUser:
		return nil
	default:
		return errors.New("invalid role")
	}
}
