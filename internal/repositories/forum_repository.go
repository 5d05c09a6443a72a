package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
)

var (
	ErrForumCategoryNotFound = errors.New("forum category not found")
	ErrForumTopicNotFound    = errors.New("forum topic not found")
	ErrForumPostNotFound     = errors.New("forum post not found")
)

type ForumRepository interface {
	// Categories
	CreateCategory(c *models.ForumCategory) error
	UpdateCategory(c *models.ForumCategory) error
	DeleteCategory(id string) error
	FindCategoryByID(id string) (*models.ForumCategory, error)
	ListCategories() ([]models.ForumCategory, error)

	// Topics
	CreateTopic(t *models.ForumTopic) error
	FindTopicByID(id string) (*models.ForumTopic, error)
	ListTopics(categoryID string, page, pageSize int) ([]models.ForumTopic, int64, error)
	UpdateTopic(t *models.ForumTopic) error
	DeleteTopic(id string) error
	BumpTopic(topicID string, at time.Time) error

	// Posts
	CreatePost(p *models.ForumPost) error
	FindPostByID(id string) (*models.ForumPost, error)
	ListPosts(topicID string, page, pageSize int) ([]models.ForumPost, int64, error)
	UpdatePost(p *models.ForumPost) error
	DeletePost(id string) error
}

type ForumRepositoryImpl struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) ForumRepository {
	return &ForumRepositoryImpl{db: db}
}

func (r *ForumRepositoryImpl) CreateCategory(c *models.ForumCategory) error {
	return r.db.Create(c).Error
}

func (r *ForumRepositoryImpl) UpdateCategory(c *models.ForumCategory) error {
	return r.db.Save(c).Error
}

func (r *ForumRepositoryImpl) DeleteCategory(id string) error {
	return r.db.Delete(&models.ForumCategory{}, "id = ?", id).Error
}

func (r *ForumRepositoryImpl) FindCategoryByID(id string) (*models.ForumCategory, error) {
	var c models.ForumCategory
	err := r.db.First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForumCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ForumRepositoryImpl) ListCategories() ([]models.ForumCategory, error) {
	var cs []models.ForumCategory
	err := r.db.Order("position ASC, name ASC").Find(&cs).Error
	return cs, err
}

func (r *ForumRepositoryImpl) CreateTopic(t *models.ForumTopic) error {
	return r.db.Create(t).Error
}

func (r *ForumRepositoryImpl) FindTopicByID(id string) (*models.ForumTopic, error) {
	var t models.ForumTopic
	err := r.db.Preload("Author").First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForumTopicNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *ForumRepositoryImpl) ListTopics(categoryID string, page, pageSize int) ([]models.ForumTopic, int64, error) {
	var topics []models.ForumTopic
	var total int64

	q := r.db.Model(&models.ForumTopic{}).Where("category_id = ?", categoryID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Author").
		Order("is_pinned DESC, last_post_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&topics).Error
	return topics, total, err
}

func (r *ForumRepositoryImpl) UpdateTopic(t *models.ForumTopic) error {
	return r.db.Save(t).Error
}

func (r *ForumRepositoryImpl) DeleteTopic(id string) error {
	return r.db.Delete(&models.ForumTopic{}, "id = ?", id).Error
}

// BumpTopic increments the post counter and refreshes the last-post time.
func (r *ForumRepositoryImpl) BumpTopic(topicID string, at time.Time) error {
	return r.db.Model(&models.ForumTopic{}).Where("id = ?", topicID).Updates(map[string]interface{}{
		"post_count":   gorm.Expr("post_count + 1"),
		"last_post_at": at,
	}).Error
}

func (r *ForumRepositoryImpl) CreatePost(p *models.ForumPost) error {
	return r.db.Create(p).Error
}

func (r *ForumRepositoryImpl) FindPostByID(id string) (*models.ForumPost, error) {
	var p models.ForumPost
	err := r.db.Preload("Author").First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForumPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ForumRepositoryImpl) ListPosts(topicID string, page, pageSize int) ([]models.ForumPost, int64, error) {
	var posts []models.ForumPost
	var total int64

	q := r.db.Model(&models.ForumPost{}).Where("topic_id = ?", topicID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Author").
		Order("created_at ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&posts).Error
	return posts, total, err
}

func (r *ForumRepositoryImpl) UpdatePost(p *models.ForumPost) error {
	return r.db.Save(p).Error
}

func (r *ForumRepositoryImpl) DeletePost(id string) error {
	return r.db.Delete(&models.ForumPost{}, "id = ?", id).Error
}
