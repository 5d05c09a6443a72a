package services

import (
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

type CommentService interface {
	Create(userID string, req dto.CreateCommentRequest) (*models.Comment, error)
	Update(userID, commentID string, req dto.UpdateCommentRequest) (*models.Comment, error)
	Delete(actorID string, isStaff bool, commentID string) error
	ListByEntity(req dto.CommentListRequest) ([]models.Comment, int64, error)
}

type commentService struct {
	commentRepo   repositories.CommentRepository
	resolver      *EntityResolver
	notifications NotificationService
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	resolver *EntityResolver,
	notifications NotificationService,
) CommentService {
	return &commentService{
		commentRepo:   commentRepo,
		resolver:      resolver,
		notifications: notifications,
	}
}

// Create stores the comment and notifies the entity's owner.
func (s *commentService) Create(userID string, req dto.CreateCommentRequest) (*models.Comment, error) {
	entityType := models.EntityType(req.EntityType)
	ownerID, err := s.resolver.Resolve(entityType, req.EntityID)
	if err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.commentRepo.FindByID(*req.ParentID)
		if err != nil {
			return nil, err
		}
		// One level of threading only.
		if parent.ParentID != nil {
			req.ParentID = parent.ParentID
		}
	}

	comment := &models.Comment{
		EntityType: entityType,
		EntityID:   req.EntityID,
		UserID:     userID,
		ParentID:   req.ParentID,
		Content:    req.Content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if ownerID != "" {
		_ = s.notifications.NotifyComment(ownerID, userID, entityType, req.EntityID)
	}
	return comment, nil
}

func (s *commentService) Update(userID, commentID string, req dto.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, ErrNotAuthor
	}

	comment.Content = req.Content
	comment.IsEdited = true
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Delete(actorID string, isStaff bool, commentID string) error {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return err
	}
	if comment.UserID != actorID && !isStaff {
		return ErrNotAuthor
	}
	return s.commentRepo.Delete(commentID)
}

func (s *commentService) ListByEntity(req dto.CommentListRequest) ([]models.Comment, int64, error) {
	return s.commentRepo.ListByEntity(models.EntityType(req.EntityType), req.EntityID, req.Page, req.PageSize)
}
