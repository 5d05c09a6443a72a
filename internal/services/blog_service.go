package services

import (
	"errors"
	"time"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
	"github.com/semihsari152/CoreGameApp-sub006/internal/utils"
)

var ErrNotAuthor = errors.New("content belongs to another author")

type BlogService interface {
	Create(authorID string, req dto.CreateBlogPostRequest) (*models.BlogPost, error)
	Update(authorID, postID string, req dto.UpdateBlogPostRequest) (*models.BlogPost, error)
	Delete(actorID string, isStaff bool, postID string) error
	GetBySlug(slug string, countView bool) (*models.BlogPost, error)
	List(req dto.ContentListRequest) ([]models.BlogPost, int64, error)
}

type blogService struct {
	blogRepo repositories.BlogRepository
}

func NewBlogService(blogRepo repositories.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) Create(authorID string, req dto.CreateBlogPostRequest) (*models.BlogPost, error) {
	tags, err := marshalStrings(req.Tags)
	if err != nil {
		return nil, err
	}

	post := &models.BlogPost{
		AuthorID: authorID,
		Title:    req.Title,
		Slug:     utils.Slugify(req.Title),
		Content:  req.Content,
		CoverURL: req.CoverURL,
		Tags:     tags,
	}
	if req.Publish {
		now := time.Now()
		post.IsPublished = true
		post.PublishedAt = &now
	}

	if _, err := s.blogRepo.FindBySlug(post.Slug); err == nil {
		post.Slug = utils.UniqueSlug(req.Title)
	} else if !errors.Is(err, repositories.ErrBlogPostNotFound) {
		return nil, err
	}

	if err := s.blogRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *blogService) Update(authorID, postID string, req dto.UpdateBlogPostRequest) (*models.BlogPost, error) {
	post, err := s.blogRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != authorID {
		return nil, ErrNotAuthor
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.CoverURL != nil {
		post.CoverURL = *req.CoverURL
	}
	if req.Tags != nil {
		tags, err := marshalStrings(req.Tags)
		if err != nil {
			return nil, err
		}
		post.Tags = tags
	}
	if req.Publish != nil {
		post.IsPublished = *req.Publish
		if *req.Publish && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
	}

	if err := s.blogRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *blogService) Delete(actorID string, isStaff bool, postID string) error {
	post, err := s.blogRepo.FindByID(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID && !isStaff {
		return ErrNotAuthor
	}
	return s.blogRepo.Delete(postID)
}

func (s *blogService) GetBySlug(slug string, countView bool) (*models.BlogPost, error) {
	post, err := s.blogRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if countView {
		_ = s.blogRepo.IncrementViews(post.ID)
		post.ViewCount++
	}
	return post, nil
}

func (s *blogService) List(req dto.ContentListRequest) ([]models.BlogPost, int64, error) {
	return s.blogRepo.List(repositories.ContentFilter{
		AuthorID:      req.AuthorID,
		Tag:           req.Tag,
		PublishedOnly: true,
		Page:          req.Page,
		PageSize:      req.PageSize,
	})
}
