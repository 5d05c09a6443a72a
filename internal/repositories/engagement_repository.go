package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrReportNotFound  = errors.New("report not found")
)

type CommentRepository interface {
	Create(c *models.Comment) error
	Update(c *models.Comment) error
	Delete(id string) error
	FindByID(id string) (*models.Comment, error)
	ListByEntity(entityType models.EntityType, entityID string, page, pageSize int) ([]models.Comment, int64, error)
	CountByEntity(entityType models.EntityType, entityID string) (int64, error)
}

type CommentRepositoryImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(c *models.Comment) error {
	return r.db.Create(c).Error
}

func (r *CommentRepositoryImpl) Update(c *models.Comment) error {
	return r.db.Save(c).Error
}

func (r *CommentRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Comment{}, "id = ?", id).Error
}

func (r *CommentRepositoryImpl) FindByID(id string) (*models.Comment, error) {
	var c models.Comment
	err := r.db.Preload("User").First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepositoryImpl) ListByEntity(entityType models.EntityType, entityID string, page, pageSize int) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	q := r.db.Model(&models.Comment{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("User").
		Order("created_at ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&comments).Error
	return comments, total, err
}

func (r *CommentRepositoryImpl) CountByEntity(entityType models.EntityType, entityID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Count(&count).Error
	return count, err
}

// LikeRepository covers both likes and favorites; the two share the same
// (entity_type, entity_id, user_id) toggle shape.
type LikeRepository interface {
	ToggleLike(entityType models.EntityType, entityID, userID string) (liked bool, err error)
	CountLikes(entityType models.EntityType, entityID string) (int64, error)
	HasLiked(entityType models.EntityType, entityID, userID string) (bool, error)

	ToggleFavorite(entityType models.EntityType, entityID, userID string) (favorited bool, err error)
	ListFavorites(userID string, entityType models.EntityType) ([]models.Favorite, error)
}

type LikeRepositoryImpl struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &LikeRepositoryImpl{db: db}
}

// ToggleLike inserts the like when absent and deletes it when present.
// Returns true when the toggle ended in the liked state.
func (r *LikeRepositoryImpl) ToggleLike(entityType models.EntityType, entityID, userID string) (bool, error) {
	var existing models.Like
	err := r.db.Where("entity_type = ? AND entity_id = ? AND user_id = ?", entityType, entityID, userID).
		First(&existing).Error
	if err == nil {
		return false, r.db.Delete(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	like := &models.Like{EntityType: entityType, EntityID: entityID, UserID: userID}
	return true, r.db.Create(like).Error
}

func (r *LikeRepositoryImpl) CountLikes(entityType models.EntityType, entityID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Count(&count).Error
	return count, err
}

func (r *LikeRepositoryImpl) HasLiked(entityType models.EntityType, entityID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("entity_type = ? AND entity_id = ? AND user_id = ?", entityType, entityID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *LikeRepositoryImpl) ToggleFavorite(entityType models.EntityType, entityID, userID string) (bool, error) {
	var existing models.Favorite
	err := r.db.Where("entity_type = ? AND entity_id = ? AND user_id = ?", entityType, entityID, userID).
		First(&existing).Error
	if err == nil {
		return false, r.db.Delete(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	fav := &models.Favorite{EntityType: entityType, EntityID: entityID, UserID: userID}
	return true, r.db.Create(fav).Error
}

func (r *LikeRepositoryImpl) ListFavorites(userID string, entityType models.EntityType) ([]models.Favorite, error) {
	var favs []models.Favorite
	q := r.db.Where("user_id = ?", userID)
	if entityType != "" {
		q = q.Where("entity_type = ?", entityType)
	}
	err := q.Order("created_at DESC").Find(&favs).Error
	return favs, err
}

type ReportRepository interface {
	Create(report *models.Report) error
	FindByID(id string) (*models.Report, error)
	ListByStatus(status models.ReportStatus, page, pageSize int) ([]models.Report, int64, error)
	Resolve(id, reviewerID string, status models.ReportStatus, resolution string) error
}

type ReportRepositoryImpl struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

func (r *ReportRepositoryImpl) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *ReportRepositoryImpl) FindByID(id string) (*models.Report, error) {
	var report models.Report
	err := r.db.First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepositoryImpl) ListByStatus(status models.ReportStatus, page, pageSize int) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	q := r.db.Model(&models.Report{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&reports).Error
	return reports, total, err
}

func (r *ReportRepositoryImpl) Resolve(id, reviewerID string, status models.ReportStatus, resolution string) error {
	return r.db.Model(&models.Report{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":      status,
		"reviewer_id": reviewerID,
		"resolution":  resolution,
	}).Error
}
