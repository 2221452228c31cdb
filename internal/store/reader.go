package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/johnwards/blogseed/internal/domain"
)

// Counts holds the number of rows in each blog table.
type Counts struct {
	Users    int `db:"users" json:"users"`
	Tags     int `db:"tags" json:"tags"`
	Posts    int `db:"posts" json:"posts"`
	PostTags int `db:"post_tags" json:"postTags"`
	Comments int `db:"comments" json:"comments"`
}

// Empty reports whether no user, tag, post or comment has been stored.
func (c Counts) Empty() bool {
	return c.Users == 0 && c.Tags == 0 && c.Posts == 0 && c.Comments == 0
}

type userRow struct {
	ID       int64  `db:"id"`
	FullName string `db:"full_name"`
	Username string `db:"username"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Roles    string `db:"roles"`
}

func (r userRow) toDomain() (*domain.User, error) {
	roles, err := decodeRoles(r.Roles)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", r.Username, err)
	}
	return &domain.User{
		ID:       r.ID,
		FullName: r.FullName,
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Roles:    roles,
	}, nil
}

type postRow struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Slug        string `db:"slug"`
	Summary     string `db:"summary"`
	Content     string `db:"content"`
	PublishedAt string `db:"published_at"`
	AuthorID    int64  `db:"author_id"`
}

type postTagRow struct {
	PostID int64 `db:"post_id"`
	TagID  int64 `db:"tag_id"`
}

type commentRow struct {
	ID          int64  `db:"id"`
	PostID      int64  `db:"post_id"`
	AuthorID    int64  `db:"author_id"`
	Content     string `db:"content"`
	PublishedAt string `db:"published_at"`
}

const userColumns = `id, full_name, username, email, password, roles`

// Reader loads stored blog data back into domain values.
type Reader struct {
	db *sqlx.DB
}

// NewReader creates a Reader over db.
func NewReader(db *sqlx.DB) *Reader {
	return &Reader{db: db}
}

// Counts returns the row count of every blog table.
func (r *Reader) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	err := r.db.GetContext(ctx, &c, `SELECT
		(SELECT COUNT(*) FROM users) AS users,
		(SELECT COUNT(*) FROM tags) AS tags,
		(SELECT COUNT(*) FROM posts) AS posts,
		(SELECT COUNT(*) FROM post_tags) AS post_tags,
		(SELECT COUNT(*) FROM comments) AS comments`)
	if err != nil {
		return Counts{}, fmt.Errorf("count rows: %w", err)
	}
	return c, nil
}

// Users returns all users ordered by ID.
func (r *Reader) Users(ctx context.Context) ([]*domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+userColumns+` FROM users ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		u, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// UserByUsername returns the user with the given username, or ErrNotFound.
func (r *Reader) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", username, err)
	}
	return row.toDomain()
}

// Tags returns all tags ordered by ID.
func (r *Reader) Tags(ctx context.Context) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	if err := r.db.SelectContext(ctx, &tags, `SELECT id, name FROM tags ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// Posts returns all posts ordered by ID, each with its author, its tags in
// link order and its comments ordered by ID.
func (r *Reader) Posts(ctx context.Context) ([]*domain.Post, error) {
	users, err := r.Users(ctx)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[int64]*domain.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	tags, err := r.Tags(ctx)
	if err != nil {
		return nil, err
	}
	tagsByID := make(map[int64]*domain.Tag, len(tags))
	for _, t := range tags {
		tagsByID[t.ID] = t
	}

	var postRows []postRow
	if err := r.db.SelectContext(ctx, &postRows,
		`SELECT id, title, slug, summary, content, published_at, author_id FROM posts ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]*domain.Post, 0, len(postRows))
	postsByID := make(map[int64]*domain.Post, len(postRows))
	for _, row := range postRows {
		publishedAt, err := parseTime(row.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("post %d: %w", row.ID, err)
		}
		p := &domain.Post{
			ID:          row.ID,
			Title:       row.Title,
			Slug:        row.Slug,
			Summary:     row.Summary,
			Content:     row.Content,
			PublishedAt: publishedAt,
			Author:      usersByID[row.AuthorID],
		}
		posts = append(posts, p)
		postsByID[p.ID] = p
	}

	var links []postTagRow
	if err := r.db.SelectContext(ctx, &links,
		`SELECT post_id, tag_id FROM post_tags ORDER BY post_id, position`); err != nil {
		return nil, fmt.Errorf("list post tags: %w", err)
	}
	for _, l := range links {
		if p, ok := postsByID[l.PostID]; ok {
			p.Tags = append(p.Tags, tagsByID[l.TagID])
		}
	}

	var commentRows []commentRow
	if err := r.db.SelectContext(ctx, &commentRows,
		`SELECT id, post_id, author_id, content, published_at FROM comments ORDER BY post_id, id`); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	for _, row := range commentRows {
		p, ok := postsByID[row.PostID]
		if !ok {
			continue
		}
		publishedAt, err := parseTime(row.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("comment %d: %w", row.ID, err)
		}
		p.AddComment(&domain.Comment{
			ID:          row.ID,
			Author:      usersByID[row.AuthorID],
			Content:     row.Content,
			PublishedAt: publishedAt,
		})
	}

	return posts, nil
}
