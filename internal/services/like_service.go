package services

import (
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

type LikeService interface {
	ToggleLike(userID string, req dto.ToggleRequest) (*dto.ToggleResponse, error)
	ToggleFavorite(userID string, req dto.ToggleRequest) (*dto.ToggleResponse, error)
	CountLikes(entityType models.EntityType, entityID string) (int64, error)
	HasLiked(entityType models.EntityType, entityID, userID string) (bool, error)
	ListFavorites(userID string, entityType models.EntityType) ([]models.Favorite, error)
}

type likeService struct {
	likeRepo      repositories.LikeRepository
	resolver      *EntityResolver
	notifications NotificationService
}

func NewLikeService(
	likeRepo repositories.LikeRepository,
	resolver *EntityResolver,
	notifications NotificationService,
) LikeService {
	return &likeService{
		likeRepo:      likeRepo,
		resolver:      resolver,
		notifications: notifications,
	}
}

// ToggleLike flips the like and notifies the owner on the liking edge
// only; un-liking is silent.
func (s *likeService) ToggleLike(userID string, req dto.ToggleRequest) (*dto.ToggleResponse, error) {
	entityType := models.EntityType(req.EntityType)
	ownerID, err := s.resolver.Resolve(entityType, req.EntityID)
	if err != nil {
		return nil, err
	}

	active, err := s.likeRepo.ToggleLike(entityType, req.EntityID, userID)
	if err != nil {
		return nil, err
	}
	count, err := s.likeRepo.CountLikes(entityType, req.EntityID)
	if err != nil {
		return nil, err
	}

	if active && ownerID != "" {
		_ = s.notifications.NotifyLike(ownerID, userID, entityType, req.EntityID)
	}
	return &dto.ToggleResponse{Active: active, Count: count}, nil
}

func (s *likeService) ToggleFavorite(userID string, req dto.ToggleRequest) (*dto.ToggleResponse, error) {
	entityType := models.EntityType(req.EntityType)
	if _, err := s.resolver.Resolve(entityType, req.EntityID); err != nil {
		return nil, err
	}

	active, err := s.likeRepo.ToggleFavorite(entityType, req.EntityID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ToggleResponse{Active: active}, nil
}

func (s *likeService) CountLikes(entityType models.EntityType, entityID string) (int64, error) {
	return s.likeRepo.CountLikes(entityType, entityID)
}

func (s *likeService) HasLiked(entityType models.EntityType, entityID, userID string) (bool, error) {
	return s.likeRepo.HasLiked(entityType, entityID, userID)
}

func (s *likeService) ListFavorites(userID string, entityType models.EntityType) ([]models.Favorite, error) {
	return s.likeRepo.ListFavorites(userID, entityType)
}
