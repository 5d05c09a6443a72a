package dto

// CreateBlogPostRequest creates a draft unless publish is set.
type CreateBlogPostRequest struct {
	Title    string   `json:"title" binding:"required,max=200"`
	Content  string   `json:"content" binding:"required"`
	CoverURL string   `json:"cover_url" binding:"omitempty,url"`
	Tags     []string `json:"tags" binding:"omitempty,max=10,dive,max=40"`
	Publish  bool     `json:"publish"`
}

type UpdateBlogPostRequest struct {
	Title    *string  `json:"title" binding:"omitempty,max=200"`
	Content  *string  `json:"content"`
	CoverURL *string  `json:"cover_url" binding:"omitempty,url"`
	Tags     []string `json:"tags" binding:"omitempty,max=10,dive,max=40"`
	Publish  *bool    `json:"publish"`
}

type CreateGuideRequest struct {
	GameID  string   `json:"game_id" binding:"required,uuid"`
	Title   string   `json:"title" binding:"required,max=200"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags" binding:"omitempty,max=10,dive,max=40"`
	Publish bool     `json:"publish"`
}

type UpdateGuideRequest struct {
	Title   *string  `json:"title" binding:"omitempty,max=200"`
	Content *string  `json:"content"`
	Tags    []string `json:"tags" binding:"omitempty,max=10,dive,max=40"`
	Publish *bool    `json:"publish"`
}

// ContentListRequest filters published content listings.
type ContentListRequest struct {
	AuthorID string `form:"author_id" binding:"omitempty,uuid"`
	GameID   string `form:"game_id" binding:"omitempty,uuid"`
	Tag      string `form:"tag"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}
