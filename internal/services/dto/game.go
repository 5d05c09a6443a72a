package dto

import "time"

type CreateGameRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"omitempty,max=5000"`
	CoverURL    string     `json:"cover_url" binding:"omitempty,url"`
	ReleaseDate *time.Time `json:"release_date"`
	Developer   string     `json:"developer" binding:"omitempty,max=120"`
	Publisher   string     `json:"publisher" binding:"omitempty,max=120"`
	Genres      []string   `json:"genres" binding:"omitempty,max=10,dive,max=40"`
	ExternalID  string     `json:"external_id"`
}

type UpdateGameRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=5000"`
	CoverURL    *string    `json:"cover_url" binding:"omitempty,url"`
	ReleaseDate *time.Time `json:"release_date"`
	Developer   *string    `json:"developer" binding:"omitempty,max=120"`
	Publisher   *string    `json:"publisher" binding:"omitempty,max=120"`
	Genres      []string   `json:"genres" binding:"omitempty,max=10,dive,max=40"`
}

type GameListRequest struct {
	Search   string `form:"search"`
	Genre    string `form:"genre"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// RateGameRequest records a 1..10 score; re-rating replaces the old
// score.
type RateGameRequest struct {
	Score int `json:"score" binding:"required,min=1,max=10"`
}

type GameRatingResponse struct {
	GameID      string  `json:"game_id"`
	UserScore   int     `json:"user_score,omitempty"`
	RatingAvg   float64 `json:"rating_avg"`
	RatingCount int64   `json:"rating_count"`
}
