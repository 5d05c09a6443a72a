package models

import "time"

type ForumCategory struct {
	BaseModel
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Slug        string `gorm:"not null;uniqueIndex" json:"slug"`
	Description string `json:"description"`
	Position    int    `gorm:"default:0" json:"position"`
	GameID      *string `gorm:"index" json:"game_id"` // optional per-game board
}

type ForumTopic struct {
	BaseModelWithDeleted
	CategoryID string `gorm:"not null;index" json:"category_id"`
	AuthorID   string `gorm:"not null;index" json:"author_id"`
	Title      string `gorm:"not null" json:"title"`
	IsPinned   bool   `gorm:"default:false" json:"is_pinned"`
	IsLocked   bool   `gorm:"default:false" json:"is_locked"`

	// Denormalized counters bumped on post create.
	PostCount  int64      `gorm:"default:0" json:"post_count"`
	LastPostAt *time.Time `json:"last_post_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

type ForumPost struct {
	BaseModelWithDeleted
	TopicID  string  `gorm:"not null;index" json:"topic_id"`
	AuthorID string  `gorm:"not null;index" json:"author_id"`
	Content  string  `gorm:"type:text;not null" json:"content"`
	ReplyToID *string `gorm:"index" json:"reply_to_id"`
	IsEdited bool    `gorm:"default:false" json:"is_edited"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
