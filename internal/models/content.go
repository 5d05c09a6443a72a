package models

import (
	"time"

	"gorm.io/datatypes"
)

// BlogPost is a member-authored article.
type BlogPost struct {
	BaseModelWithDeleted
	AuthorID    string         `gorm:"not null;index" json:"author_id"`
	Title       string         `gorm:"not null" json:"title"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Content     string         `gorm:"type:text" json:"content"`
	CoverURL    string         `json:"cover_url"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	IsPublished bool           `gorm:"default:false;index" json:"is_published"`
	PublishedAt *time.Time     `json:"published_at"`
	ViewCount   int64          `gorm:"default:0" json:"view_count"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// Guide is a game-specific walkthrough or how-to.
type Guide struct {
	BaseModelWithDeleted
	AuthorID    string         `gorm:"not null;index" json:"author_id"`
	GameID      string         `gorm:"not null;index" json:"game_id"`
	Title       string         `gorm:"not null" json:"title"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Content     string         `gorm:"type:text" json:"content"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	IsPublished bool           `gorm:"default:false;index" json:"is_published"`
	PublishedAt *time.Time     `json:"published_at"`
	ViewCount   int64          `gorm:"default:0" json:"view_count"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Game   *Game `gorm:"foreignKey:GameID" json:"game,omitempty"`
}
