package models

import (
	"time"

	"gorm.io/datatypes"
)

// Game is a catalog entry. External metadata imports only fill the same
// columns; ExternalID links back to the metadata provider.
type Game struct {
	BaseModelWithDeleted
	Title       string         `gorm:"not null;index" json:"title"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	CoverURL    string         `json:"cover_url"`
	ReleaseDate *time.Time     `json:"release_date"`
	Developer   string         `json:"developer"`
	Publisher   string         `json:"publisher"`
	Genres      datatypes.JSON `gorm:"type:jsonb" json:"genres"` // ["rpg", "roguelike"]
	ExternalID  string         `gorm:"index" json:"external_id"`

	// Denormalized rating aggregate, recomputed on every rating write.
	RatingAvg   float64 `gorm:"default:0" json:"rating_avg"`
	RatingCount int64   `gorm:"default:0" json:"rating_count"`
}

// GameRating is one user's score for a game, upserted on re-rate.
type GameRating struct {
	BaseModel
	GameID string `gorm:"not null;index;uniqueIndex:uniq_game_rating" json:"game_id"`
	UserID string `gorm:"not null;index;uniqueIndex:uniq_game_rating" json:"user_id"`
	Score  int    `gorm:"not null" json:"score"` // 1..10
}
