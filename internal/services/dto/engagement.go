package dto

import (
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
)

// EntityRef is the tagged reference used by comments, likes, favorites
// and reports.
type EntityRef struct {
	EntityType string `json:"entity_type" binding:"required,is-entity-type"`
	EntityID   string `json:"entity_id" binding:"required,uuid"`
}

type CreateCommentRequest struct {
	EntityRef
	ParentID *string `json:"parent_id" binding:"omitempty,uuid"`
	Content  string  `json:"content" binding:"required,max=5000"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

type CommentListRequest struct {
	EntityType string `form:"entity_type" binding:"required,is-entity-type"`
	EntityID   string `form:"entity_id" binding:"required,uuid"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToggleRequest flips a like or favorite on an entity.
type ToggleRequest struct {
	EntityRef
}

// ToggleResponse reports the end state after the flip.
type ToggleResponse struct {
	Active bool  `json:"active"`
	Count  int64 `json:"count,omitempty"`
}

type CreateReportRequest struct {
	EntityRef
	Reason string `json:"reason" binding:"required,max=2000"`
}

// ResolveReportRequest closes out a report; moderator only.
type ResolveReportRequest struct {
	Status     models.ReportStatus `json:"status" binding:"required,oneof=resolved dismissed"`
	Resolution string              `json:"resolution" binding:"omitempty,max=2000"`
}
