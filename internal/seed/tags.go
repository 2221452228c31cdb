package seed

import (
	"context"
	"fmt"

	"github.com/johnwards/blogseed/internal/domain"
)

func (s *Seeder) loadTags(ctx context.Context, refs *References) (int, error) {
	for _, name := range defaultTags {
		tag := domain.NewTag(name)

		s.sink.Persist(tag)
		if err := refs.Add(TagKey(name), tag); err != nil {
			return 0, err
		}
	}

	if err := s.sink.Flush(ctx); err != nil {
		return 0, fmt.Errorf("flush tags: %w", err)
	}
	return len(defaultTags), nil
}
