package dto

import (
	"time"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
)

type FriendRequestInput struct {
	AddresseeID string `json:"addressee_id" binding:"required,uuid"`
}

// RespondFriendRequestInput accepts or declines a pending request.
type RespondFriendRequestInput struct {
	Accept bool `json:"accept"`
}

type FriendshipDTO struct {
	ID          string                  `json:"id"`
	RequesterID string                  `json:"requester_id"`
	AddresseeID string                  `json:"addressee_id"`
	Status      models.FriendshipStatus `json:"status"`
	RespondedAt *time.Time              `json:"responded_at,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	Requester   *UserDTO                `json:"requester,omitempty"`
}

func ToFriendshipDTO(f *models.Friendship) FriendshipDTO {
	out := FriendshipDTO{
		ID:          f.ID,
		RequesterID: f.RequesterID,
		AddresseeID: f.AddresseeID,
		Status:      f.Status,
		RespondedAt: f.RespondedAt,
		CreatedAt:   f.CreatedAt,
	}
	if f.Requester != nil {
		requester := ToUserDTO(f.Requester, false)
		out.Requester = &requester
	}
	return out
}

type FollowInput struct {
	FolloweeID string `json:"followee_id" binding:"required,uuid"`
}
