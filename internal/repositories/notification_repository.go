package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationCriteria struct {
	UnreadOnly      bool
	IncludeArchived bool
	Type            string
	Page            int
	PageSize        int
}

type NotificationRepository interface {
	Create(notification *models.Notification) error
	CreateBulk(notifications []*models.Notification) error
	FindByID(id string) (*models.Notification, error)
	FindUserNotifications(userID string, criteria NotificationCriteria) ([]models.Notification, int64, error)
	MarkAsRead(notificationID string) error
	MarkAllAsRead(userID string) error
	Archive(notificationID string) error
	Delete(id string) error
	DeleteUserNotifications(userID string) error
	GetUnreadCount(userID string) (int64, error)

	// Maintenance sweeps used by the cleanup worker.
	DeleteExpired() (int64, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) CreateBulk(notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.Create(&notifications).Error
}

func (r *NotificationRepositoryImpl) FindByID(id string) (*models.Notification, error) {
	var n models.Notification
	err := r.db.First(&n, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepositoryImpl) FindUserNotifications(userID string, criteria NotificationCriteria) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	q := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if criteria.UnreadOnly {
		q = q.Where("is_read = ?", false)
	}
	if !criteria.IncludeArchived {
		q = q.Where("is_archived = ?", false)
	}
	if criteria.Type != "" {
		q = q.Where("type = ?", criteria.Type)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (criteria.Page - 1) * criteria.PageSize
	err := q.Order("created_at DESC").Limit(criteria.PageSize).Offset(offset).Find(&notifications).Error
	return notifications, total, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(notificationID string) error {
	now := time.Now()
	return r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": now,
	}).Error
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(userID string) error {
	now := time.Now()
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": now,
		}).Error
}

func (r *NotificationRepositoryImpl) Archive(notificationID string) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", notificationID).
		Update("is_archived", true).Error
}

func (r *NotificationRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Notification{}, "id = ?", id).Error
}

func (r *NotificationRepositoryImpl) DeleteUserNotifications(userID string) error {
	return r.db.Delete(&models.Notification{}, "user_id = ?", userID).Error
}

// GetUnreadCount counts unarchived unread rows; this value is pushed to
// the user's private group after every notification write.
func (r *NotificationRepositoryImpl) GetUnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ? AND is_archived = ?", userID, false, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) DeleteExpired() (int64, error) {
	result := r.db.Delete(&models.Notification{}, "expires_at IS NOT NULL AND expires_at < ?", time.Now())
	return result.RowsAffected, result.Error
}

func (r *NotificationRepositoryImpl) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Delete(&models.Notification{}, "created_at < ?", cutoff)
	return result.RowsAffected, result.Error
}
