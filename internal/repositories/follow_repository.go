package repositories

import (
	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
)

type FollowRepository interface {
	Create(f *models.Follow) error
	Delete(followerID, followeeID string) error
	Exists(followerID, followeeID string) (bool, error)
	FindFollowerIDs(followeeID string) ([]string, error)
	FindFollowing(followerID string, limit, offset int) ([]models.User, error)
	FindFollowers(followeeID string, limit, offset int) ([]models.User, error)
	CountFollowers(followeeID string) (int64, error)
}

type FollowRepositoryImpl struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &FollowRepositoryImpl{db: db}
}

func (r *FollowRepositoryImpl) Create(f *models.Follow) error {
	return r.db.Create(f).Error
}

func (r *FollowRepositoryImpl) Delete(followerID, followeeID string) error {
	return r.db.Delete(&models.Follow{}, "follower_id = ? AND followee_id = ?", followerID, followeeID).Error
}

func (r *FollowRepositoryImpl) Exists(followerID, followeeID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

// FindFollowerIDs resolves the follower set for bulk notification fan-out.
// Only active accounts are included.
func (r *FollowRepositoryImpl) FindFollowerIDs(followeeID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Follow{}).
		Joins("JOIN users u ON u.id = follows.follower_id").
		Where("follows.followee_id = ? AND u.status = ?", followeeID, models.UserStatusActive).
		Pluck("follows.follower_id", &ids).Error
	return ids, err
}

func (r *FollowRepositoryImpl) FindFollowing(followerID string, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN follows f ON f.followee_id = users.id").
		Where("f.follower_id = ?", followerID).
		Limit(limit).Offset(offset).
		Find(&users).Error
	return users, err
}

func (r *FollowRepositoryImpl) FindFollowers(followeeID string, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN follows f ON f.follower_id = users.id").
		Where("f.followee_id = ?", followeeID).
		Limit(limit).Offset(offset).
		Find(&users).Error
	return users, err
}

func (r *FollowRepositoryImpl) CountFollowers(followeeID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("followee_id = ?", followeeID).Count(&count).Error
	return count, err
}
