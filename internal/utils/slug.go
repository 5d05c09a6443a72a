package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Slugify lowercases the title and collapses everything that is not a
// letter or digit into single dashes.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = uuid.NewString()[:8]
	}
	return slug
}

// UniqueSlug appends a short random suffix, used when the plain slug
// collides.
func UniqueSlug(title string) string {
	return Slugify(title) + "-" + uuid.NewString()[:8]
}
