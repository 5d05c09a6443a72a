package services

import (
	"errors"
	"time"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

var (
	ErrSelfFriendship    = errors.New("cannot send a friend request to yourself")
	ErrFriendshipExists  = errors.New("friendship already exists")
	ErrFriendshipBlocked = errors.New("friendship is blocked")
	ErrNotAddressee      = errors.New("only the addressee can respond to a request")
)

// FriendDTO decorates a user with their live presence flag.
type FriendDTO struct {
	dto.UserDTO
	IsOnline bool `json:"is_online"`
}

// PresenceChecker reports live connection state; implemented by the
// presence registry.
type PresenceChecker interface {
	IsOnline(userID string) bool
}

type FriendshipService interface {
	SendRequest(requesterID, addresseeID string) (*dto.FriendshipDTO, error)
	Respond(userID, friendshipID string, accept bool) (*dto.FriendshipDTO, error)
	Block(userID, otherID string) error
	Unfriend(userID, otherID string) error
	ListFriends(userID string) ([]FriendDTO, error)
	ListPending(userID string) ([]dto.FriendshipDTO, error)
	AreFriends(userA, userB string) (bool, error)

	SetPresence(p PresenceChecker)
}

type friendshipService struct {
	friendshipRepo repositories.FriendshipRepository
	userRepo       repositories.UserRepository
	notifications  NotificationService

	presence PresenceChecker
}

func NewFriendshipService(
	friendshipRepo repositories.FriendshipRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) FriendshipService {
	return &friendshipService{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		notifications:  notifications,
	}
}

func (s *friendshipService) SetPresence(p PresenceChecker) { s.presence = p }

// SendRequest creates a pending friendship. A declined pair can retry;
// a blocked pair cannot.
func (s *friendshipService) SendRequest(requesterID, addresseeID string) (*dto.FriendshipDTO, error) {
	if requesterID == addresseeID {
		return nil, ErrSelfFriendship
	}
	if _, err := s.userRepo.FindByID(addresseeID); err != nil {
		return nil, err
	}

	existing, err := s.friendshipRepo.FindBetween(requesterID, addresseeID)
	if err != nil && !errors.Is(err, repositories.ErrFriendshipNotFound) {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case models.FriendshipStatusBlocked:
			return nil, ErrFriendshipBlocked
		case models.FriendshipStatusDeclined:
			if err := s.friendshipRepo.Delete(existing.ID); err != nil {
				return nil, err
			}
		default:
			return nil, ErrFriendshipExists
		}
	}

	friendship := &models.Friendship{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      models.FriendshipStatusPending,
	}
	if err := s.friendshipRepo.Create(friendship); err != nil {
		return nil, err
	}

	_ = s.notifications.NotifyFriendRequest(addresseeID, requesterID)

	out := dto.ToFriendshipDTO(friendship)
	return &out, nil
}

func (s *friendshipService) Respond(userID, friendshipID string, accept bool) (*dto.FriendshipDTO, error) {
	friendship, err := s.friendshipRepo.FindByID(friendshipID)
	if err != nil {
		return nil, err
	}
	if friendship.AddresseeID != userID {
		return nil, ErrNotAddressee
	}

	status := models.FriendshipStatusDeclined
	if accept {
		status = models.FriendshipStatusAccepted
	}
	if err := s.friendshipRepo.UpdateStatus(friendshipID, status); err != nil {
		return nil, err
	}
	friendship.Status = status
	now := time.Now()
	friendship.RespondedAt = &now

	if accept {
		_ = s.notifications.NotifyFriendAccepted(friendship.RequesterID, friendship.AddresseeID)
	}

	out := dto.ToFriendshipDTO(friendship)
	return &out, nil
}

// Block replaces whatever relationship exists with a block owned by
// the blocking user.
func (s *friendshipService) Block(userID, otherID string) error {
	existing, err := s.friendshipRepo.FindBetween(userID, otherID)
	if err != nil && !errors.Is(err, repositories.ErrFriendshipNotFound) {
		return err
	}
	if existing != nil {
		if err := s.friendshipRepo.Delete(existing.ID); err != nil {
			return err
		}
	}

	return s.friendshipRepo.Create(&models.Friendship{
		RequesterID: userID,
		AddresseeID: otherID,
		Status:      models.FriendshipStatusBlocked,
	})
}

func (s *friendshipService) Unfriend(userID, otherID string) error {
	friendship, err := s.friendshipRepo.FindBetween(userID, otherID)
	if err != nil {
		return err
	}
	return s.friendshipRepo.Delete(friendship.ID)
}

func (s *friendshipService) ListFriends(userID string) ([]FriendDTO, error) {
	friends, err := s.friendshipRepo.FindFriends(userID)
	if err != nil {
		return nil, err
	}

	out := make([]FriendDTO, 0, len(friends))
	for i := range friends {
		friend := FriendDTO{UserDTO: dto.ToUserDTO(&friends[i], false)}
		if s.presence != nil {
			friend.IsOnline = s.presence.IsOnline(friends[i].ID)
		}
		out = append(out, friend)
	}
	return out, nil
}

func (s *friendshipService) ListPending(userID string) ([]dto.FriendshipDTO, error) {
	pending, err := s.friendshipRepo.FindPendingFor(userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.FriendshipDTO, 0, len(pending))
	for i := range pending {
		out = append(out, dto.ToFriendshipDTO(&pending[i]))
	}
	return out, nil
}

func (s *friendshipService) AreFriends(userA, userB string) (bool, error) {
	return s.friendshipRepo.AreFriends(userA, userB)
}
