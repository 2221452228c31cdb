package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnwards/blogseed/internal/seed"
)

func TestRotationCycles(t *testing.T) {
	r := seed.NewRotation([]string{"a", "b", "c"})

	var got []string
	for range 7 {
		got = append(got, r.Next())
	}

	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c", "a"}, got)
	assert.Equal(t, 7, r.Calls())
}

func TestRotationReset(t *testing.T) {
	r := seed.NewRotation([]string{"a", "b"})
	r.Next()
	r.Reset()

	assert.Equal(t, 0, r.Calls())
	assert.Equal(t, "a", r.Next())
}

func TestRotationEmpty(t *testing.T) {
	r := seed.NewRotation(nil)
	assert.Equal(t, "", r.Next())
}
