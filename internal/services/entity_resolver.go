package services

import (
	"errors"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
)

var ErrEntityNotFound = errors.New("referenced entity not found")

// EntityResolver checks that a tagged (entity_type, entity_id) pair
// points at a real row and resolves its owner for notifications.
// Games have no owner; their owner is the empty string.
type EntityResolver struct {
	games    repositories.GameRepository
	blogs    repositories.BlogRepository
	guides   repositories.GuideRepository
	forum    repositories.ForumRepository
	comments repositories.CommentRepository
}

func NewEntityResolver(
	games repositories.GameRepository,
	blogs repositories.BlogRepository,
	guides repositories.GuideRepository,
	forum repositories.ForumRepository,
	comments repositories.CommentRepository,
) *EntityResolver {
	return &EntityResolver{
		games:    games,
		blogs:    blogs,
		guides:   guides,
		forum:    forum,
		comments: comments,
	}
}

// Resolve returns the owning user's ID, or ErrEntityNotFound.
func (r *EntityResolver) Resolve(entityType models.EntityType, entityID string) (string, error) {
	switch entityType {
	case models.EntityTypeGame:
		if _, err := r.games.FindByID(entityID); err != nil {
			return "", ErrEntityNotFound
		}
		return "", nil
	case models.EntityTypeBlogPost:
		post, err := r.blogs.FindByID(entityID)
		if err != nil {
			return "", ErrEntityNotFound
		}
		return post.AuthorID, nil
	case models.EntityTypeGuide:
		guide, err := r.guides.FindByID(entityID)
		if err != nil {
			return "", ErrEntityNotFound
		}
		return guide.AuthorID, nil
	case models.EntityTypeForumTopic:
		topic, err := r.forum.FindTopicByID(entityID)
		if err != nil {
			return "", ErrEntityNotFound
		}
		return topic.AuthorID, nil
	case models.EntityTypeForumPost:
		post, err := r.forum.FindPostByID(entityID)
		if err != nil {
			return "", ErrEntityNotFound
		}
		return post.AuthorID, nil
	case models.EntityTypeComment:
		comment, err := r.comments.FindByID(entityID)
		if err != nil {
			return "", ErrEntityNotFound
		}
		return comment.UserID, nil
	default:
		return "", ErrEntityNotFound
	}
}
