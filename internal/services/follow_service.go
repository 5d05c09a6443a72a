package services

import (
	"errors"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

type FollowService interface {
	Follow(followerID, followeeID string) error
	Unfollow(followerID, followeeID string) error
	ListFollowers(userID string, page, pageSize int) ([]dto.UserDTO, error)
	ListFollowing(userID string, page, pageSize int) ([]dto.UserDTO, error)
	CountFollowers(userID string) (int64, error)
}

type followService struct {
	followRepo    repositories.FollowRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
}

func NewFollowService(
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) FollowService {
	return &followService{
		followRepo:    followRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// Follow is idempotent; following twice is a no-op.
func (s *followService) Follow(followerID, followeeID string) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}
	if _, err := s.userRepo.FindByID(followeeID); err != nil {
		return err
	}

	exists, err := s.followRepo.Exists(followerID, followeeID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := s.followRepo.Create(&models.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}); err != nil {
		return err
	}

	_ = s.notifications.NotifyNewFollower(followeeID, followerID)
	return nil
}

func (s *followService) Unfollow(followerID, followeeID string) error {
	return s.followRepo.Delete(followerID, followeeID)
}

func (s *followService) ListFollowers(userID string, page, pageSize int) ([]dto.UserDTO, error) {
	limit, offset := pageBounds(page, pageSize)
	users, err := s.followRepo.FindFollowers(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toUserDTOs(users), nil
}

func (s *followService) ListFollowing(userID string, page, pageSize int) ([]dto.UserDTO, error) {
	limit, offset := pageBounds(page, pageSize)
	users, err := s.followRepo.FindFollowing(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toUserDTOs(users), nil
}

func (s *followService) CountFollowers(userID string) (int64, error) {
	return s.followRepo.CountFollowers(userID)
}

func pageBounds(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return pageSize, (page - 1) * pageSize
}

func toUserDTOs(users []models.User) []dto.UserDTO {
	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, dto.ToUserDTO(&users[i], false))
	}
	return out
}
