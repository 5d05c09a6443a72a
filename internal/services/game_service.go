package services

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
	"github.com/semihsari152/CoreGameApp-sub006/internal/utils"
)

type GameService interface {
	Create(req dto.CreateGameRequest) (*models.Game, error)
	Update(gameID string, req dto.UpdateGameRequest) (*models.Game, error)
	Delete(gameID string) error
	GetByID(gameID string) (*models.Game, error)
	GetBySlug(slug string) (*models.Game, error)
	List(req dto.GameListRequest) ([]models.Game, int64, error)
	Rate(gameID, userID string, score int) (*dto.GameRatingResponse, error)
	GetRating(gameID, userID string) (*dto.GameRatingResponse, error)
}

type gameService struct {
	gameRepo repositories.GameRepository
}

func NewGameService(gameRepo repositories.GameRepository) GameService {
	return &gameService{gameRepo: gameRepo}
}

func (s *gameService) Create(req dto.CreateGameRequest) (*models.Game, error) {
	genres, err := marshalStrings(req.Genres)
	if err != nil {
		return nil, err
	}

	game := &models.Game{
		Title:       req.Title,
		Slug:        utils.Slugify(req.Title),
		Description: req.Description,
		CoverURL:    req.CoverURL,
		ReleaseDate: req.ReleaseDate,
		Developer:   req.Developer,
		Publisher:   req.Publisher,
		Genres:      genres,
		ExternalID:  req.ExternalID,
	}

	if _, err := s.gameRepo.FindBySlug(game.Slug); err == nil {
		game.Slug = utils.UniqueSlug(req.Title)
	} else if !errors.Is(err, repositories.ErrGameNotFound) {
		return nil, err
	}

	if err := s.gameRepo.Create(game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *gameService) Update(gameID string, req dto.UpdateGameRequest) (*models.Game, error) {
	game, err := s.gameRepo.FindByID(gameID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		game.Title = *req.Title
	}
	if req.Description != nil {
		game.Description = *req.Description
	}
	if req.CoverURL != nil {
		game.CoverURL = *req.CoverURL
	}
	if req.ReleaseDate != nil {
		game.ReleaseDate = req.ReleaseDate
	}
	if req.Developer != nil {
		game.Developer = *req.Developer
	}
	if req.Publisher != nil {
		game.Publisher = *req.Publisher
	}
	if req.Genres != nil {
		genres, err := marshalStrings(req.Genres)
		if err != nil {
			return nil, err
		}
		game.Genres = genres
	}

	if err := s.gameRepo.Update(game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *gameService) Delete(gameID string) error {
	return s.gameRepo.Delete(gameID)
}

func (s *gameService) GetByID(gameID string) (*models.Game, error) {
	return s.gameRepo.FindByID(gameID)
}

func (s *gameService) GetBySlug(slug string) (*models.Game, error) {
	return s.gameRepo.FindBySlug(slug)
}

func (s *gameService) List(req dto.GameListRequest) ([]models.Game, int64, error) {
	return s.gameRepo.List(repositories.GameFilter{
		Search:   req.Search,
		Genre:    req.Genre,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
}

// Rate upserts the user's score and recomputes the game's denormalized
// aggregate in the same call, so reads never see a stale average for
// long.
func (s *gameService) Rate(gameID, userID string, score int) (*dto.GameRatingResponse, error) {
	if _, err := s.gameRepo.FindByID(gameID); err != nil {
		return nil, err
	}

	if err := s.gameRepo.UpsertRating(&models.GameRating{
		GameID: gameID,
		UserID: userID,
		Score:  score,
	}); err != nil {
		return nil, err
	}
	if err := s.gameRepo.RecomputeRatingAggregate(gameID); err != nil {
		return nil, err
	}

	return s.GetRating(gameID, userID)
}

func (s *gameService) GetRating(gameID, userID string) (*dto.GameRatingResponse, error) {
	game, err := s.gameRepo.FindByID(gameID)
	if err != nil {
		return nil, err
	}

	out := &dto.GameRatingResponse{
		GameID:      gameID,
		RatingAvg:   game.RatingAvg,
		RatingCount: game.RatingCount,
	}
	if userID != "" {
		rating, err := s.gameRepo.FindRating(gameID, userID)
		if err == nil && rating != nil {
			out.UserScore = rating.Score
		}
	}
	return out, nil
}

func marshalStrings(values []string) (datatypes.JSON, error) {
	if values == nil {
		return nil, nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
