package services

import (
	"errors"
	"time"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
	"github.com/semihsari152/CoreGameApp-sub006/internal/utils"
)

type GuideService interface {
	Create(authorID string, req dto.CreateGuideRequest) (*models.Guide, error)
	Update(authorID, guideID string, req dto.UpdateGuideRequest) (*models.Guide, error)
	Delete(actorID string, isStaff bool, guideID string) error
	GetBySlug(slug string, countView bool) (*models.Guide, error)
	List(req dto.ContentListRequest) ([]models.Guide, int64, error)
}

type guideService struct {
	guideRepo repositories.GuideRepository
	gameRepo  repositories.GameRepository
}

func NewGuideService(guideRepo repositories.GuideRepository, gameRepo repositories.GameRepository) GuideService {
	return &guideService{guideRepo: guideRepo, gameRepo: gameRepo}
}

func (s *guideService) Create(authorID string, req dto.CreateGuideRequest) (*models.Guide, error) {
	// A guide must hang off an existing game.
	if _, err := s.gameRepo.FindByID(req.GameID); err != nil {
		return nil, err
	}

	tags, err := marshalStrings(req.Tags)
	if err != nil {
		return nil, err
	}

	guide := &models.Guide{
		AuthorID: authorID,
		GameID:   req.GameID,
		Title:    req.Title,
		Slug:     utils.Slugify(req.Title),
		Content:  req.Content,
		Tags:     tags,
	}
	if req.Publish {
		now := time.Now()
		guide.IsPublished = true
		guide.PublishedAt = &now
	}

	if _, err := s.guideRepo.FindBySlug(guide.Slug); err == nil {
		guide.Slug = utils.UniqueSlug(req.Title)
	} else if !errors.Is(err, repositories.ErrGuideNotFound) {
		return nil, err
	}

	if err := s.guideRepo.Create(guide); err != nil {
		return nil, err
	}
	return guide, nil
}

func (s *guideService) Update(authorID, guideID string, req dto.UpdateGuideRequest) (*models.Guide, error) {
	guide, err := s.guideRepo.FindByID(guideID)
	if err != nil {
		return nil, err
	}
	if guide.AuthorID != authorID {
		return nil, ErrNotAuthor
	}

	if req.Title != nil {
		guide.Title = *req.Title
	}
	if req.Content != nil {
		guide.Content = *req.Content
	}
	if req.Tags != nil {
		tags, err := marshalStrings(req.Tags)
		if err != nil {
			return nil, err
		}
		guide.Tags = tags
	}
	if req.Publish != nil {
		guide.IsPublished = *req.Publish
		if *req.Publish && guide.PublishedAt == nil {
			now := time.Now()
			guide.PublishedAt = &now
		}
	}

	if err := s.guideRepo.Update(guide); err != nil {
		return nil, err
	}
	return guide, nil
}

func (s *guideService) Delete(actorID string, isStaff bool, guideID string) error {
	guide, err := s.guideRepo.FindByID(guideID)
	if err != nil {
		return err
	}
	if guide.AuthorID != actorID && !isStaff {
		return ErrNotAuthor
	}
	return s.guideRepo.Delete(guideID)
}

func (s *guideService) GetBySlug(slug string, countView bool) (*models.Guide, error) {
	guide, err := s.guideRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if countView {
		_ = s.guideRepo.IncrementViews(guide.ID)
		guide.ViewCount++
	}
	return guide, nil
}

func (s *guideService) List(req dto.ContentListRequest) ([]models.Guide, int64, error) {
	return s.guideRepo.List(repositories.ContentFilter{
		AuthorID:      req.AuthorID,
		GameID:        req.GameID,
		Tag:           req.Tag,
		PublishedOnly: true,
		Page:          req.Page,
		PageSize:      req.PageSize,
	})
}
