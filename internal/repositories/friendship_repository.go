package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
)

var ErrFriendshipNotFound = errors.New("friendship not found")

type FriendshipRepository interface {
	Create(f *models.Friendship) error
	FindByID(id string) (*models.Friendship, error)
	FindBetween(userA, userB string) (*models.Friendship, error)
	UpdateStatus(id string, status models.FriendshipStatus) error
	Delete(id string) error

	// AreFriends reports whether the two users hold an accepted friendship.
	AreFriends(userA, userB string) (bool, error)
	FindFriends(userID string) ([]models.User, error)
	FindPendingFor(userID string) ([]models.Friendship, error)
}

type FriendshipRepositoryImpl struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &FriendshipRepositoryImpl{db: db}
}

func (r *FriendshipRepositoryImpl) Create(f *models.Friendship) error {
	return r.db.Create(f).Error
}

func (r *FriendshipRepositoryImpl) FindByID(id string) (*models.Friendship, error) {
	var f models.Friendship
	err := r.db.First(&f, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFriendshipNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindBetween returns the friendship row for the pair in either direction.
func (r *FriendshipRepositoryImpl) FindBetween(userA, userB string) (*models.Friendship, error) {
	var f models.Friendship
	err := r.db.
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userA, userB, userB, userA).
		First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFriendshipNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *FriendshipRepositoryImpl) UpdateStatus(id string, status models.FriendshipStatus) error {
	now := time.Now()
	return r.db.Model(&models.Friendship{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       status,
		"responded_at": now,
	}).Error
}

func (r *FriendshipRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Friendship{}, "id = ?", id).Error
}

func (r *FriendshipRepositoryImpl) AreFriends(userA, userB string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Friendship{}).
		Where("status = ?", models.FriendshipStatusAccepted).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	return count > 0, err
}

func (r *FriendshipRepositoryImpl) FindFriends(userID string) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins(`JOIN friendships f ON (f.requester_id = users.id AND f.addressee_id = ?)
			OR (f.addressee_id = users.id AND f.requester_id = ?)`, userID, userID).
		Where("f.status = ?", models.FriendshipStatusAccepted).
		Find(&users).Error
	return users, err
}

func (r *FriendshipRepositoryImpl) FindPendingFor(userID string) ([]models.Friendship, error) {
	var fs []models.Friendship
	err := r.db.Preload("Requester").
		Where("addressee_id = ? AND status = ?", userID, models.FriendshipStatusPending).
		Order("created_at DESC").
		Find(&fs).Error
	return fs, err
}
