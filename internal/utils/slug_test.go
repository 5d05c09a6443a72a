package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hollow Depths":          "hollow-depths",
		"  Trim   Me  ":          "trim-me",
		"C++ & Go: A Story!":     "c-go-a-story",
		"already-a-slug":         "already-a-slug",
		"MiXeD CaSe 123":         "mixed-case-123",
		"unicode Ünïcödé tïtle":  "unicode-ünïcödé-tïtle",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}

func TestSlugify_EmptyFallsBackToRandom(t *testing.T) {
	slug := Slugify("!!! ???")
	assert.Len(t, slug, 8)
	assert.NotEqual(t, Slugify("!!! ???"), slug)
}

func TestUniqueSlug(t *testing.T) {
	a := UniqueSlug("Hollow Depths")
	b := UniqueSlug("Hollow Depths")

	assert.True(t, strings.HasPrefix(a, "hollow-depths-"))
	assert.NotEqual(t, a, b)
}
