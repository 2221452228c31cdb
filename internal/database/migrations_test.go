package database_test

import (
	"context"
	"testing"

	"github.com/johnwards/blogseed/internal/testhelpers"
)

func TestMigrationsCreateAllTables(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)

	tables := []string{
		"schema_migrations",
		"users",
		"tags",
		"posts",
		"post_tags",
		"comments",
	}

	for _, table := range tables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %q not found: %v", table, err)
		}
	}
}

func TestMigrationsIndexes(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)

	indexes := []string{
		"idx_posts_published",
		"idx_posts_slug",
		"idx_comments_post",
	}

	for _, idx := range indexes {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='index' AND name=?", idx).Scan(&name)
		if err != nil {
			t.Errorf("index %q not found: %v", idx, err)
		}
	}
}

func TestMigrationsCascadeComments(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)
	ctx := context.Background()

	stmts := []string{
		`INSERT INTO users (id, full_name, username, email, password) VALUES (1, 'A', 'a', 'a@example.com', 'x')`,
		`INSERT INTO posts (id, title, slug, summary, content, published_at, author_id) VALUES (1, 't', 't', 's', 'c', '2024-01-01T00:00:00.000Z', 1)`,
		`INSERT INTO comments (post_id, author_id, content, published_at) VALUES (1, 1, 'hi', '2024-01-01T00:00:01.000Z')`,
		`DELETE FROM posts WHERE id = 1`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}

	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM comments"); err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if count != 0 {
		t.Errorf("comments after post delete = %d, want 0", count)
	}
}

func TestMigrationsRejectUnknownAuthor(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)

	_, err := db.Exec(`INSERT INTO posts (title, slug, summary, content, published_at, author_id)
		VALUES ('t', 't', 's', 'c', '2024-01-01T00:00:00.000Z', 42)`)
	if err == nil {
		t.Fatal("expected foreign key violation for unknown author")
	}
}
