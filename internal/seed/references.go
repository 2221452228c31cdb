package seed

import (
	"errors"
	"fmt"

	"github.com/johnwards/blogseed/internal/domain"
)

var (
	// ErrReferenceNotFound means a stage looked up a key that no earlier
	// stage registered.
	ErrReferenceNotFound = errors.New("reference not found")
	// ErrDuplicateReference means a key was registered twice.
	ErrDuplicateReference = errors.New("duplicate reference")
	// ErrReferenceType means a key holds an entity of another type.
	ErrReferenceType = errors.New("reference has unexpected type")
)

// tagKeyPrefix keeps tag keys apart from usernames.
const tagKeyPrefix = "tag-"

// TagKey returns the reference key a tag is registered under.
func TagKey(name string) string {
	return tagKeyPrefix + name
}

// References maps names to the entities created during one seeding run.
// Each key is written once.
type References struct {
	entries map[string]any
}

// NewReferences returns an empty reference table.
func NewReferences() *References {
	return &References{entries: make(map[string]any)}
}

// Add registers entity under key.
func (r *References) Add(key string, entity any) error {
	if _, ok := r.entries[key]; ok {
		return fmt.Errorf("add %q: %w", key, ErrDuplicateReference)
	}
	r.entries[key] = entity
	return nil
}

// Has reports whether key is registered.
func (r *References) Has(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Len returns the number of registered keys.
func (r *References) Len() int {
	return len(r.entries)
}

// User returns the user registered under username.
func (r *References) User(username string) (*domain.User, error) {
	return lookup[domain.User](r, username)
}

// Tag returns the tag registered for name.
func (r *References) Tag(name string) (*domain.Tag, error) {
	return lookup[domain.Tag](r, TagKey(name))
}

func lookup[T any](r *References, key string) (*T, error) {
	entity, ok := r.entries[key]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", key, ErrReferenceNotFound)
	}
	typed, ok := entity.(*T)
	if !ok {
		return nil, fmt.Errorf("get %q as %T: %w", key, (*T)(nil), ErrReferenceType)
	}
	return typed, nil
}
