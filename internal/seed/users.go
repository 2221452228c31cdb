package seed

import (
	"context"
	"fmt"

	"github.com/johnwards/blogseed/internal/domain"
)

// loadUsers creates defaultUsers with hashed passwords and registers each
// under its username.
func (s *Seeder) loadUsers(ctx context.Context, refs *References) (int, error) {
	for _, def := range defaultUsers {
		u := &domain.User{
			FullName: def.fullName,
			Username: def.username,
			Email:    def.email,
			Roles:    append([]string(nil), def.roles...),
		}

		hash, err := s.hasher.HashPassword(u, def.password)
		if err != nil {
			return 0, fmt.Errorf("hash password for %s: %w", def.username, err)
		}
		u.Password = hash

		s.sink.Persist(u)
		if err := refs.Add(u.Username, u); err != nil {
			return 0, err
		}
	}

	if err := s.sink.Flush(ctx); err != nil {
		return 0, fmt.Errorf("flush users: %w", err)
	}
	return len(defaultUsers), nil
}
