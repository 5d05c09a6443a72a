package models

import "time"

// Friendship holds one row per user pair. RequesterID is the user who
// sent the request; the accepted status gates direct messaging.
type Friendship struct {
	BaseModel
	RequesterID string           `gorm:"not null;index;uniqueIndex:uniq_friend_pair" json:"requester_id"`
	AddresseeID string           `gorm:"not null;index;uniqueIndex:uniq_friend_pair" json:"addressee_id"`
	Status      FriendshipStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	RespondedAt *time.Time       `json:"responded_at"`

	Requester *User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Addressee *User `gorm:"foreignKey:AddresseeID" json:"addressee,omitempty"`
}

// Follow is a one-directional subscription used for follower fan-out.
type Follow struct {
	BaseModel
	FollowerID string `gorm:"not null;index;uniqueIndex:uniq_follow_pair" json:"follower_id"`
	FolloweeID string `gorm:"not null;index;uniqueIndex:uniq_follow_pair" json:"followee_id"`
}
