package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

func TestGameCreate_SlugsAreUnique(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(repositories.NewGameRepository(db))

	first, err := svc.Create(dto.CreateGameRequest{Title: "Hollow Depths"})
	require.NoError(t, err)
	assert.Equal(t, "hollow-depths", first.Slug)

	// Same title gets a suffixed slug instead of a constraint error.
	second, err := svc.Create(dto.CreateGameRequest{Title: "Hollow Depths"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "hollow-depths")
}

func TestGameRate_RecomputesAggregate(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(repositories.NewGameRepository(db))

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	game, err := svc.Create(dto.CreateGameRequest{Title: "Star Drifter"})
	require.NoError(t, err)

	rating, err := svc.Rate(game.ID, alice.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, rating.UserScore)
	assert.Equal(t, int64(1), rating.RatingCount)
	assert.InDelta(t, 8.0, rating.RatingAvg, 0.001)

	rating, err = svc.Rate(game.ID, bob.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rating.RatingCount)
	assert.InDelta(t, 6.0, rating.RatingAvg, 0.001)

	// Re-rating replaces the old score, it does not add a row.
	rating, err = svc.Rate(game.ID, alice.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rating.RatingCount)
	assert.InDelta(t, 7.0, rating.RatingAvg, 0.001)
	assert.Equal(t, 10, rating.UserScore)
}

func TestGameGetRating_AnonymousHasNoScore(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(repositories.NewGameRepository(db))

	alice := createTestUser(t, db, "alice")

	game, err := svc.Create(dto.CreateGameRequest{Title: "Quiet Orbit"})
	require.NoError(t, err)

	_, err = svc.Rate(game.ID, alice.ID, 7)
	require.NoError(t, err)

	rating, err := svc.GetRating(game.ID, "")
	require.NoError(t, err)
	assert.Zero(t, rating.UserScore)
	assert.Equal(t, int64(1), rating.RatingCount)
}
