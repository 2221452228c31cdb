package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnwards/blogseed/internal/domain"
	"github.com/johnwards/blogseed/internal/store"
)

func TestReaderCountsEmpty(t *testing.T) {
	s := setupStore(t)

	counts, err := s.Reader.Counts(context.Background())
	require.NoError(t, err)
	assert.True(t, counts.Empty())
	assert.Equal(t, store.Counts{}, counts)
}

func TestReaderUserByUsernameNotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.Reader.UserByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestReaderUsersAndTagsOrderedByID(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	uow := s.UnitOfWork()

	for _, name := range []string{"b_user", "a_user"} {
		uow.Persist(newUser(name, domain.RoleUser))
	}
	for _, name := range []string{"zeta", "alpha"} {
		uow.Persist(domain.NewTag(name))
	}
	require.NoError(t, uow.Flush(ctx))

	users, err := s.Reader.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "b_user", users[0].Username)
	assert.Equal(t, "a_user", users[1].Username)
	assert.Equal(t, []string{domain.RoleUser}, users[0].Roles)

	tags, err := s.Reader.Tags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "zeta", tags[0].Name)
	assert.Equal(t, "alpha", tags[1].Name)
}

func TestReaderPostsEmpty(t *testing.T) {
	s := setupStore(t)

	posts, err := s.Reader.Posts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}
