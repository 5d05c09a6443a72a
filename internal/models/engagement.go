package models

// Comment attaches to any commentable entity via the (EntityType,
// EntityID) tagged pair. ParentID allows one level of threading.
type Comment struct {
	BaseModelWithDeleted
	EntityType EntityType `gorm:"type:varchar(20);not null;index:idx_comment_entity" json:"entity_type"`
	EntityID   string     `gorm:"not null;index:idx_comment_entity" json:"entity_id"`
	UserID     string     `gorm:"not null;index" json:"user_id"`
	ParentID   *string    `gorm:"index" json:"parent_id"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	IsEdited   bool       `gorm:"default:false" json:"is_edited"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// Like is a toggle; uniqueness is on (entity_type, entity_id, user_id).
type Like struct {
	BaseModel
	EntityType EntityType `gorm:"type:varchar(20);not null;uniqueIndex:uniq_like" json:"entity_type"`
	EntityID   string     `gorm:"not null;uniqueIndex:uniq_like" json:"entity_id"`
	UserID     string     `gorm:"not null;index;uniqueIndex:uniq_like" json:"user_id"`
}

// Favorite bookmarks an entity for a user; same toggle semantics as Like.
type Favorite struct {
	BaseModel
	EntityType EntityType `gorm:"type:varchar(20);not null;uniqueIndex:uniq_favorite" json:"entity_type"`
	EntityID   string     `gorm:"not null;uniqueIndex:uniq_favorite" json:"entity_id"`
	UserID     string     `gorm:"not null;index;uniqueIndex:uniq_favorite" json:"user_id"`
}

// Report flags an entity for moderator review.
type Report struct {
	BaseModel
	EntityType EntityType   `gorm:"type:varchar(20);not null;index:idx_report_entity" json:"entity_type"`
	EntityID   string       `gorm:"not null;index:idx_report_entity" json:"entity_id"`
	ReporterID string       `gorm:"not null;index" json:"reporter_id"`
	Reason     string       `gorm:"type:text;not null" json:"reason"`
	Status     ReportStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	ReviewerID *string      `json:"reviewer_id"`
	Resolution string       `json:"resolution"`
}
