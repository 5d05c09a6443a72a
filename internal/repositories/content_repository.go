package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
)

var (
	ErrBlogPostNotFound = errors.New("blog post not found")
	ErrGuideNotFound    = errors.New("guide not found")
)

type ContentFilter struct {
	AuthorID      string
	GameID        string
	Tag           string
	PublishedOnly bool
	Page          int
	PageSize      int
}

// BlogRepository and GuideRepository share the ContentFilter shape; the
// two entities stay separate because their columns diverge (guide→game).

type BlogRepository interface {
	Create(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	Delete(id string) error
	FindByID(id string) (*models.BlogPost, error)
	FindBySlug(slug string) (*models.BlogPost, error)
	List(filter ContentFilter) ([]models.BlogPost, int64, error)
	IncrementViews(id string) error
}

type BlogRepositoryImpl struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &BlogRepositoryImpl{db: db}
}

func (r *BlogRepositoryImpl) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *BlogRepositoryImpl) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

func (r *BlogRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.BlogPost{}, "id = ?", id).Error
}

func (r *BlogRepositoryImpl) FindByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Author").First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepositoryImpl) FindBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Author").First(&post, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepositoryImpl) List(filter ContentFilter) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	var total int64

	q := r.db.Model(&models.BlogPost{})
	if filter.AuthorID != "" {
		q = q.Where("author_id = ?", filter.AuthorID)
	}
	if filter.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}
	if filter.Tag != "" {
		q = q.Where("tags LIKE ?", "%\""+filter.Tag+"\"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := q.Preload("Author").Order("created_at DESC").Limit(filter.PageSize).Offset(offset).Find(&posts).Error
	return posts, total, err
}

func (r *BlogRepositoryImpl) IncrementViews(id string) error {
	return r.db.Model(&models.BlogPost{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

type GuideRepository interface {
	Create(guide *models.Guide) error
	Update(guide *models.Guide) error
	Delete(id string) error
	FindByID(id string) (*models.Guide, error)
	FindBySlug(slug string) (*models.Guide, error)
	List(filter ContentFilter) ([]models.Guide, int64, error)
	IncrementViews(id string) error
}

type GuideRepositoryImpl struct {
	db *gorm.DB
}

func NewGuideRepository(db *gorm.DB) GuideRepository {
	return &GuideRepositoryImpl{db: db}
}

func (r *GuideRepositoryImpl) Create(guide *models.Guide) error {
	return r.db.Create(guide).Error
}

func (r *GuideRepositoryImpl) Update(guide *models.Guide) error {
	return r.db.Save(guide).Error
}

func (r *GuideRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Guide{}, "id = ?", id).Error
}

func (r *GuideRepositoryImpl) FindByID(id string) (*models.Guide, error) {
	var guide models.Guide
	err := r.db.Preload("Author").Preload("Game").First(&guide, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuideNotFound
		}
		return nil, err
	}
	return &guide, nil
}

func (r *GuideRepositoryImpl) FindBySlug(slug string) (*models.Guide, error) {
	var guide models.Guide
	err := r.db.Preload("Author").Preload("Game").First(&guide, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuideNotFound
		}
		return nil, err
	}
	return &guide, nil
}

func (r *GuideRepositoryImpl) List(filter ContentFilter) ([]models.Guide, int64, error) {
	var guides []models.Guide
	var total int64

	q := r.db.Model(&models.Guide{})
	if filter.AuthorID != "" {
		q = q.Where("author_id = ?", filter.AuthorID)
	}
	if filter.GameID != "" {
		q = q.Where("game_id = ?", filter.GameID)
	}
	if filter.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}
	if filter.Tag != "" {
		q = q.Where("tags LIKE ?", "%\""+filter.Tag+"\"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := q.Preload("Author").Order("created_at DESC").Limit(filter.PageSize).Offset(offset).Find(&guides).Error
	return guides, total, err
}

func (r *GuideRepositoryImpl) IncrementViews(id string) error {
	return r.db.Model(&models.Guide{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
