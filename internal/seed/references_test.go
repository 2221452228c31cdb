package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnwards/blogseed/internal/domain"
	"github.com/johnwards/blogseed/internal/seed"
)

func TestReferencesUserAndTag(t *testing.T) {
	refs := seed.NewReferences()
	jane := &domain.User{Username: "jane_admin"}
	lorem := domain.NewTag("lorem")

	require.NoError(t, refs.Add("jane_admin", jane))
	require.NoError(t, refs.Add(seed.TagKey("lorem"), lorem))

	gotUser, err := refs.User("jane_admin")
	require.NoError(t, err)
	assert.Same(t, jane, gotUser)

	gotTag, err := refs.Tag("lorem")
	require.NoError(t, err)
	assert.Same(t, lorem, gotTag)

	assert.True(t, refs.Has("tag-lorem"))
	assert.Equal(t, 2, refs.Len())
}

func TestReferencesTagKeyDoesNotCollideWithUsername(t *testing.T) {
	refs := seed.NewReferences()

	require.NoError(t, refs.Add("lorem", &domain.User{Username: "lorem"}))
	require.NoError(t, refs.Add(seed.TagKey("lorem"), domain.NewTag("lorem")))

	_, err := refs.Tag("lorem")
	require.NoError(t, err)
	_, err = refs.User("lorem")
	require.NoError(t, err)
}

func TestReferencesMissingKey(t *testing.T) {
	refs := seed.NewReferences()

	_, err := refs.User("john_user")
	require.ErrorIs(t, err, seed.ErrReferenceNotFound)

	_, err = refs.Tag("dolore")
	require.ErrorIs(t, err, seed.ErrReferenceNotFound)
}

func TestReferencesWriteOnce(t *testing.T) {
	refs := seed.NewReferences()

	require.NoError(t, refs.Add("tom_admin", &domain.User{}))
	require.ErrorIs(t, refs.Add("tom_admin", &domain.User{}), seed.ErrDuplicateReference)
}

func TestReferencesWrongType(t *testing.T) {
	refs := seed.NewReferences()
	require.NoError(t, refs.Add(seed.TagKey("labore"), &domain.User{}))

	_, err := refs.Tag("labore")
	require.ErrorIs(t, err, seed.ErrReferenceType)
}
