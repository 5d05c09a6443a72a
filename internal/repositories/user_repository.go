package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateStatus(userID string, status models.UserStatus) error
	VerifyUser(userID string) error
	UpdateLastSeen(userID string) error
	Delete(userID string) error
	Search(query string, limit, offset int) ([]models.User, int64, error)
	FindStaffIDs() ([]string, error)

	FindByVerificationToken(token string) (*models.User, error)
	FindByResetToken(token string) (*models.User, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ? OR username = ?", user.Email, user.Username).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateStatus(userID string, status models.UserStatus) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("status", status).Error
}

func (r *UserRepositoryImpl) VerifyUser(userID string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"is_verified":        true,
		"status":             models.UserStatusActive,
		"verification_token": "",
	}).Error
}

func (r *UserRepositoryImpl) UpdateLastSeen(userID string) error {
	now := time.Now()
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("last_seen_at", now).Error
}

func (r *UserRepositoryImpl) Delete(userID string) error {
	return r.db.Delete(&models.User{}, "id = ?", userID).Error
}

func (r *UserRepositoryImpl) Search(query string, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	q := r.db.Model(&models.User{}).Where("status = ?", models.UserStatusActive)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("username LIKE ? OR display_name LIKE ?", like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("username ASC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

// FindStaffIDs returns the IDs of all admins and moderators, used for
// moderation fan-out.
func (r *UserRepositoryImpl) FindStaffIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&models.User{}).
		Where("role IN ?", []models.UserRole{models.UserRoleAdmin, models.UserRoleModerator}).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *UserRepositoryImpl) FindByVerificationToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "verification_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByResetToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "reset_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
