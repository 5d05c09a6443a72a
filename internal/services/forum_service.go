package services

import (
	"errors"
	"time"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
	"github.com/semihsari152/CoreGameApp-sub006/internal/utils"
)

var ErrTopicLocked = errors.New("topic is locked")

type ForumService interface {
	CreateCategory(req dto.CreateCategoryRequest) (*models.ForumCategory, error)
	UpdateCategory(categoryID string, req dto.UpdateCategoryRequest) (*models.ForumCategory, error)
	DeleteCategory(categoryID string) error
	ListCategories() ([]models.ForumCategory, error)

	CreateTopic(authorID string, req dto.CreateTopicRequest) (*models.ForumTopic, error)
	GetTopic(topicID string) (*models.ForumTopic, error)
	ListTopics(categoryID string, page, pageSize int) ([]models.ForumTopic, int64, error)
	ModerateTopic(topicID string, req dto.ModerateTopicRequest) (*models.ForumTopic, error)
	DeleteTopic(actorID string, isStaff bool, topicID string) error

	CreatePost(authorID, topicID string, req dto.CreateForumPostRequest) (*models.ForumPost, error)
	ListPosts(topicID string, page, pageSize int) ([]models.ForumPost, int64, error)
	UpdatePost(authorID, postID string, req dto.UpdateForumPostRequest) (*models.ForumPost, error)
	DeletePost(actorID string, isStaff bool, postID string) error
}

type forumService struct {
	forumRepo repositories.ForumRepository
}

func NewForumService(forumRepo repositories.ForumRepository) ForumService {
	return &forumService{forumRepo: forumRepo}
}

// ---------------- categories ----------------

func (s *forumService) CreateCategory(req dto.CreateCategoryRequest) (*models.ForumCategory, error) {
	category := &models.ForumCategory{
		Name:        req.Name,
		Slug:        utils.Slugify(req.Name),
		Description: req.Description,
		Position:    req.Position,
		GameID:      req.GameID,
	}
	if err := s.forumRepo.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *forumService) UpdateCategory(categoryID string, req dto.UpdateCategoryRequest) (*models.ForumCategory, error) {
	category, err := s.forumRepo.FindCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
		category.Slug = utils.Slugify(*req.Name)
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Position != nil {
		category.Position = *req.Position
	}

	if err := s.forumRepo.UpdateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *forumService) DeleteCategory(categoryID string) error {
	return s.forumRepo.DeleteCategory(categoryID)
}

func (s *forumService) ListCategories() ([]models.ForumCategory, error) {
	return s.forumRepo.ListCategories()
}

// ---------------- topics ----------------

// CreateTopic also creates the opening post and bumps the topic's
// counters so a fresh topic sorts correctly.
func (s *forumService) CreateTopic(authorID string, req dto.CreateTopicRequest) (*models.ForumTopic, error) {
	if _, err := s.forumRepo.FindCategoryByID(req.CategoryID); err != nil {
		return nil, err
	}

	topic := &models.ForumTopic{
		CategoryID: req.CategoryID,
		AuthorID:   authorID,
		Title:      req.Title,
	}
	if err := s.forumRepo.CreateTopic(topic); err != nil {
		return nil, err
	}

	post := &models.ForumPost{
		TopicID:  topic.ID,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := s.forumRepo.CreatePost(post); err != nil {
		return nil, err
	}
	if err := s.forumRepo.BumpTopic(topic.ID, time.Now()); err != nil {
		return nil, err
	}

	return s.forumRepo.FindTopicByID(topic.ID)
}

func (s *forumService) GetTopic(topicID string) (*models.ForumTopic, error) {
	return s.forumRepo.FindTopicByID(topicID)
}

func (s *forumService) ListTopics(categoryID string, page, pageSize int) ([]models.ForumTopic, int64, error) {
	return s.forumRepo.ListTopics(categoryID, page, pageSize)
}

func (s *forumService) ModerateTopic(topicID string, req dto.ModerateTopicRequest) (*models.ForumTopic, error) {
	topic, err := s.forumRepo.FindTopicByID(topicID)
	if err != nil {
		return nil, err
	}

	if req.IsPinned != nil {
		topic.IsPinned = *req.IsPinned
	}
	if req.IsLocked != nil {
		topic.IsLocked = *req.IsLocked
	}

	if err := s.forumRepo.UpdateTopic(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *forumService) DeleteTopic(actorID string, isStaff bool, topicID string) error {
	topic, err := s.forumRepo.FindTopicByID(topicID)
	if err != nil {
		return err
	}
	if topic.AuthorID != actorID && !isStaff {
		return ErrNotAuthor
	}
	return s.forumRepo.DeleteTopic(topicID)
}

// ---------------- posts ----------------

func (s *forumService) CreatePost(authorID, topicID string, req dto.CreateForumPostRequest) (*models.ForumPost, error) {
	topic, err := s.forumRepo.FindTopicByID(topicID)
	if err != nil {
		return nil, err
	}
	if topic.IsLocked {
		return nil, ErrTopicLocked
	}

	post := &models.ForumPost{
		TopicID:   topicID,
		AuthorID:  authorID,
		Content:   req.Content,
		ReplyToID: req.ReplyToID,
	}
	if err := s.forumRepo.CreatePost(post); err != nil {
		return nil, err
	}
	if err := s.forumRepo.BumpTopic(topicID, time.Now()); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *forumService) ListPosts(topicID string, page, pageSize int) ([]models.ForumPost, int64, error) {
	return s.forumRepo.ListPosts(topicID, page, pageSize)
}

func (s *forumService) UpdatePost(authorID, postID string, req dto.UpdateForumPostRequest) (*models.ForumPost, error) {
	post, err := s.forumRepo.FindPostByID(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != authorID {
		return nil, ErrNotAuthor
	}

	post.Content = req.Content
	post.IsEdited = true
	if err := s.forumRepo.UpdatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *forumService) DeletePost(actorID string, isStaff bool, postID string) error {
	post, err := s.forumRepo.FindPostByID(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID && !isStaff {
		return ErrNotAuthor
	}
	return s.forumRepo.DeletePost(postID)
}
