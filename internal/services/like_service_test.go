package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

func newLikeService(db *gorm.DB) LikeService {
	resolver := NewEntityResolver(
		repositories.NewGameRepository(db),
		repositories.NewBlogRepository(db),
		repositories.NewGuideRepository(db),
		repositories.NewForumRepository(db),
		repositories.NewCommentRepository(db),
	)
	return NewLikeService(repositories.NewLikeRepository(db), resolver, newNotificationService(db))
}

func createTestBlogPost(t *testing.T, db *gorm.DB, authorID, title string) *models.BlogPost {
	t.Helper()
	post := &models.BlogPost{
		AuthorID:    authorID,
		Title:       title,
		Slug:        title,
		Content:     "body",
		IsPublished: true,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestLikeService_ToggleLike(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	author := createTestUser(t, db, "author")
	reader := createTestUser(t, db, "reader")
	post := createTestBlogPost(t, db, author.ID, "first-post")

	req := dto.ToggleRequest{EntityRef: dto.EntityRef{
		EntityType: string(models.EntityTypeBlogPost),
		EntityID:   post.ID,
	}}

	resp, err := svc.ToggleLike(reader.ID, req)
	require.NoError(t, err)
	assert.True(t, resp.Active)
	assert.Equal(t, int64(1), resp.Count)

	liked, err := svc.HasLiked(models.EntityTypeBlogPost, post.ID, reader.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	// second toggle removes the like
	resp, err = svc.ToggleLike(reader.ID, req)
	require.NoError(t, err)
	assert.False(t, resp.Active)
	assert.Equal(t, int64(0), resp.Count)
}

func TestLikeService_ToggleLike_NotifiesOwnerOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	author := createTestUser(t, db, "author")
	reader := createTestUser(t, db, "reader")
	post := createTestBlogPost(t, db, author.ID, "liked-post")

	req := dto.ToggleRequest{EntityRef: dto.EntityRef{
		EntityType: string(models.EntityTypeBlogPost),
		EntityID:   post.ID,
	}}

	// like, unlike, like again: the owner hears about each liking edge,
	// never about removals
	for i := 0; i < 3; i++ {
		_, err := svc.ToggleLike(reader.ID, req)
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", author.ID, models.NotificationTypeLike).
		Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestLikeService_ToggleLike_SelfLikeSilent(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	author := createTestUser(t, db, "author")
	post := createTestBlogPost(t, db, author.ID, "own-post")

	resp, err := svc.ToggleLike(author.ID, dto.ToggleRequest{EntityRef: dto.EntityRef{
		EntityType: string(models.EntityTypeBlogPost),
		EntityID:   post.ID,
	}})
	require.NoError(t, err)
	assert.True(t, resp.Active)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ?", author.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLikeService_ToggleLike_UnknownEntity(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	reader := createTestUser(t, db, "reader")

	_, err := svc.ToggleLike(reader.ID, dto.ToggleRequest{EntityRef: dto.EntityRef{
		EntityType: string(models.EntityTypeBlogPost),
		EntityID:   "00000000-0000-0000-0000-000000000000",
	}})
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestLikeService_ToggleFavorite(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	author := createTestUser(t, db, "author")
	reader := createTestUser(t, db, "reader")
	post := createTestBlogPost(t, db, author.ID, "fav-post")

	req := dto.ToggleRequest{EntityRef: dto.EntityRef{
		EntityType: string(models.EntityTypeBlogPost),
		EntityID:   post.ID,
	}}

	resp, err := svc.ToggleFavorite(reader.ID, req)
	require.NoError(t, err)
	assert.True(t, resp.Active)

	favs, err := svc.ListFavorites(reader.ID, models.EntityTypeBlogPost)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, post.ID, favs[0].EntityID)

	resp, err = svc.ToggleFavorite(reader.ID, req)
	require.NoError(t, err)
	assert.False(t, resp.Active)

	favs, err = svc.ListFavorites(reader.ID, models.EntityTypeBlogPost)
	require.NoError(t, err)
	assert.Empty(t, favs)

	// favorites never notify the owner
	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
}
