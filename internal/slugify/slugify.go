// Package slugify turns titles into URL path segments.
package slugify

import (
	"strings"

	"github.com/gosimple/slug"
)

// Slugger produces lower-case, hyphen-separated slugs.
type Slugger struct {
	lang string
}

// New returns a Slugger applying the substitutions for lang (for example
// "en" turns "&" into "and").
func New(lang string) *Slugger {
	if lang == "" {
		lang = "en"
	}
	return &Slugger{lang: lang}
}

// Slug returns the slug form of text.
func (s *Slugger) Slug(text string) string {
	return strings.ToLower(slug.MakeLang(text, s.lang))
}

// IsSlug reports whether text is already a valid slug.
func IsSlug(text string) bool {
	return slug.IsSlug(text)
}
