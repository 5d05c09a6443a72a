package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email      string `json:"email" binding:"required,email"`
	EntityType string `json:"entity_type" binding:"required,is-entity-type"`
	Role       string `json:"role" binding:"omitempty,is-user-role"`
}

func TestValidator_CustomRules(t *testing.T) {
	v := New()

	err := v.Validate(sampleInput{Email: "alice@example.com", EntityType: "blog_post"})
	assert.NoError(t, err)

	err = v.Validate(sampleInput{Email: "alice@example.com", EntityType: "spaceship"})
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "entity_type")

	err = v.Validate(sampleInput{Email: "alice@example.com", EntityType: "game", Role: "overlord"})
	require.Error(t, err)
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "role")
}

func TestValidator_JSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(sampleInput{Email: "not-an-email", EntityType: "game"})
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "email")
	assert.Equal(t, "Must be a valid email address", ve.Errors["email"])
}
