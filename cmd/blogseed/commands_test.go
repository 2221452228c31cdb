package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func testDBPath(t *testing.T) string {
	t.Helper()
	t.Setenv("BLOGSEED_BCRYPT_COST", "4")
	t.Setenv("BLOGSEED_LOG_LEVEL", "warn")
	return filepath.Join(t.TempDir(), "blog.db")
}

func TestSeedCommand(t *testing.T) {
	db := testDBPath(t)

	out, err := execute(t, "seed", "--db", db, "--rand-seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "users=3 tags=9 posts=6")
	assert.Contains(t, out, "comments=30")
}

func TestSeedCommandRefusesNonEmptyStore(t *testing.T) {
	db := testDBPath(t)

	_, err := execute(t, "seed", "--db", db)
	require.NoError(t, err)

	_, err = execute(t, "seed", "--db", db)
	require.ErrorIs(t, err, errNotEmpty)
}

func TestSeedCommandPurge(t *testing.T) {
	db := testDBPath(t)

	_, err := execute(t, "seed", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "seed", "--db", db, "--purge")
	require.NoError(t, err)
	assert.Contains(t, out, "users=3 tags=9 posts=6")
}

func TestStatsCommandOnFreshDatabase(t *testing.T) {
	db := testDBPath(t)

	out, err := execute(t, "stats", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "users=0 tags=0 posts=0 post_tags=0 comments=0\n", out)
}

func TestMigrateCommand(t *testing.T) {
	db := testDBPath(t)

	_, err := execute(t, "migrate", "--db", db)
	require.NoError(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	db := testDBPath(t)

	_, err := execute(t, "stats", "--db", db, "--log-level", "loud")
	require.Error(t, err)
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer

	logger, err := newLogger(&buf, "info", "json")
	require.NoError(t, err)
	logger.Info("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	_, err = newLogger(&buf, "info", "xml")
	require.Error(t, err)
}
