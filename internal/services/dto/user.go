package dto

// UpdateProfileRequest carries the fields a user may change on their
// own profile.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=60"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,url"`
	Bio         *string `json:"bio" binding:"omitempty,max=2000"`
	Country     *string `json:"country" binding:"omitempty,len=2"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// AdminUpdateUserRequest is the moderation surface over an account.
type AdminUpdateUserRequest struct {
	Role   *string `json:"role" binding:"omitempty,is-user-role"`
	Status *string `json:"status" binding:"omitempty,oneof=pending active banned"`
}

type UserSearchRequest struct {
	Query    string `form:"q" binding:"required,min=2"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// UserListResponse pairs a page of users with the total for paging UI.
type UserListResponse struct {
	Users    []UserDTO `json:"users"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}
