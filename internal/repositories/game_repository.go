package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
)

var ErrGameNotFound = errors.New("game not found")

type GameFilter struct {
	Search   string
	Genre    string
	Page     int
	PageSize int
}

type GameRepository interface {
	Create(game *models.Game) error
	Update(game *models.Game) error
	Delete(id string) error
	FindByID(id string) (*models.Game, error)
	FindBySlug(slug string) (*models.Game, error)
	FindByExternalID(externalID string) (*models.Game, error)
	List(filter GameFilter) ([]models.Game, int64, error)

	// Rating operations
	UpsertRating(rating *models.GameRating) error
	FindRating(gameID, userID string) (*models.GameRating, error)
	RecomputeRatingAggregate(gameID string) error
}

type GameRepositoryImpl struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &GameRepositoryImpl{db: db}
}

func (r *GameRepositoryImpl) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

func (r *GameRepositoryImpl) Update(game *models.Game) error {
	return r.db.Save(game).Error
}

func (r *GameRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Game{}, "id = ?", id).Error
}

func (r *GameRepositoryImpl) FindByID(id string) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *GameRepositoryImpl) FindBySlug(slug string) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *GameRepositoryImpl) FindByExternalID(externalID string) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, "external_id = ?", externalID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *GameRepositoryImpl) List(filter GameFilter) ([]models.Game, int64, error) {
	var games []models.Game
	var total int64

	q := r.db.Model(&models.Game{})
	if filter.Search != "" {
		q = q.Where("title LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Genre != "" {
		// genres is a JSON array of strings
		q = q.Where("genres LIKE ?", "%\""+filter.Genre+"\"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := q.Order("title ASC").Limit(filter.PageSize).Offset(offset).Find(&games).Error
	return games, total, err
}

func (r *GameRepositoryImpl) UpsertRating(rating *models.GameRating) error {
	var existing models.GameRating
	err := r.db.Where("game_id = ? AND user_id = ?", rating.GameID, rating.UserID).First(&existing).Error
	if err == nil {
		return r.db.Model(&existing).Update("score", rating.Score).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(rating).Error
}

func (r *GameRepositoryImpl) FindRating(gameID, userID string) (*models.GameRating, error) {
	var rating models.GameRating
	err := r.db.Where("game_id = ? AND user_id = ?", gameID, userID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// RecomputeRatingAggregate refreshes the denormalized average/count on
// the game row from the rating table.
func (r *GameRepositoryImpl) RecomputeRatingAggregate(gameID string) error {
	type agg struct {
		Avg   float64
		Count int64
	}
	var a agg
	err := r.db.Model(&models.GameRating{}).
		Select("COALESCE(AVG(score), 0) as avg, COUNT(*) as count").
		Where("game_id = ?", gameID).
		Scan(&a).Error
	if err != nil {
		return err
	}
	return r.db.Model(&models.Game{}).Where("id = ?", gameID).Updates(map[string]interface{}{
		"rating_avg":   a.Avg,
		"rating_count": a.Count,
	}).Error
}
