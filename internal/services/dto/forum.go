package dto

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,max=80"`
	Description string  `json:"description" binding:"omitempty,max=500"`
	Position    int     `json:"position" binding:"omitempty,min=0"`
	GameID      *string `json:"game_id" binding:"omitempty,uuid"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=80"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Position    *int    `json:"position" binding:"omitempty,min=0"`
}

type CreateTopicRequest struct {
	CategoryID string `json:"category_id" binding:"required,uuid"`
	Title      string `json:"title" binding:"required,max=200"`
	// Content becomes the topic's opening post.
	Content string `json:"content" binding:"required"`
}

// ModerateTopicRequest pins or locks a topic; moderator only.
type ModerateTopicRequest struct {
	IsPinned *bool `json:"is_pinned"`
	IsLocked *bool `json:"is_locked"`
}

type CreateForumPostRequest struct {
	Content   string  `json:"content" binding:"required"`
	ReplyToID *string `json:"reply_to_id" binding:"omitempty,uuid"`
}

type UpdateForumPostRequest struct {
	Content string `json:"content" binding:"required"`
}

type TopicListRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}
