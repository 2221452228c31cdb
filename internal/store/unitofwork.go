package store

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/johnwards/blogseed/internal/domain"
)

const tracerName = "github.com/johnwards/blogseed/internal/store"

// UnitOfWork stages blog entities with Persist and writes them with Flush.
// Staged entities are inserted in staging order inside one transaction.
// A Post is written together with its tag links and its comments.
//
// A UnitOfWork is not safe for concurrent use.
type UnitOfWork struct {
	db     *sqlx.DB
	logger *slog.Logger
	tracer trace.Tracer
	staged []any
}

// Option configures a UnitOfWork.
type Option func(*UnitOfWork)

// WithLogger sets the logger used for flush diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(u *UnitOfWork) {
		u.logger = logger
	}
}

// WithTracer sets the tracer used for flush spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(u *UnitOfWork) {
		u.tracer = tracer
	}
}

// NewUnitOfWork creates a UnitOfWork writing to db.
func NewUnitOfWork(db *sqlx.DB, opts ...Option) *UnitOfWork {
	u := &UnitOfWork{
		db:     db,
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Persist stages entity for the next Flush. Supported types are
// *domain.User, *domain.Tag and *domain.Post. Entities that already carry
// an ID, or that are already staged, are ignored.
func (u *UnitOfWork) Persist(entity any) {
	if isEntity(entity) {
		for _, e := range u.staged {
			if e == entity {
				return
			}
		}
	}
	u.staged = append(u.staged, entity)
}

func isEntity(v any) bool {
	switch v.(type) {
	case *domain.User, *domain.Tag, *domain.Post:
		return true
	}
	return false
}

// Pending returns the number of staged entities.
func (u *UnitOfWork) Pending() int {
	return len(u.staged)
}

// Flush inserts all staged entities in one transaction and backfills their
// IDs once the transaction commits. The stage is cleared whether or not the
// flush succeeds.
func (u *UnitOfWork) Flush(ctx context.Context) (err error) {
	staged := u.staged
	u.staged = nil
	if len(staged) == 0 {
		return nil
	}

	ctx, span := u.tracer.Start(ctx, "store.Flush",
		trace.WithAttributes(attribute.Int("blog.staged", len(staged))))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin flush: %w", err)
	}

	f := &flush{tx: tx, ids: make(map[any]int64)}
	for _, entity := range staged {
		if err := f.write(ctx, entity); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit flush: %w", err)
	}

	for _, assign := range f.assign {
		assign()
	}

	u.logger.DebugContext(ctx, "flushed entities", "count", len(staged))
	return nil
}

// flush holds the state of a single Flush transaction. IDs generated inside
// the transaction live in ids until commit.
type flush struct {
	tx     *sqlx.Tx
	ids    map[any]int64
	assign []func()
}

func (f *flush) write(ctx context.Context, entity any) error {
	switch e := entity.(type) {
	case *domain.User:
		return f.writeUser(ctx, e)
	case *domain.Tag:
		return f.writeTag(ctx, e)
	case *domain.Post:
		return f.writePost(ctx, e)
	default:
		return fmt.Errorf("persist %T: %w", entity, ErrUnsupportedEntity)
	}
}

func (f *flush) userID(u *domain.User) int64 {
	if u == nil {
		return 0
	}
	if u.ID != 0 {
		return u.ID
	}
	return f.ids[u]
}

func (f *flush) tagID(t *domain.Tag) int64 {
	if t == nil {
		return 0
	}
	if t.ID != 0 {
		return t.ID
	}
	return f.ids[t]
}

func (f *flush) insert(ctx context.Context, b sq.InsertBuilder) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}
	res, err := f.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (f *flush) writeUser(ctx context.Context, u *domain.User) error {
	if u.ID != 0 {
		return nil
	}

	roles, err := encodeRoles(u.Roles)
	if err != nil {
		return err
	}

	id, err := f.insert(ctx, sq.Insert("users").
		Columns("full_name", "username", "email", "password", "roles").
		Values(u.FullName, u.Username, u.Email, u.Password, roles))
	if err != nil {
		return fmt.Errorf("insert user %s: %w", u.Username, err)
	}

	f.ids[u] = id
	f.assign = append(f.assign, func() { u.ID = id })
	return nil
}

func (f *flush) writeTag(ctx context.Context, t *domain.Tag) error {
	if t.ID != 0 {
		return nil
	}

	id, err := f.insert(ctx, sq.Insert("tags").
		Columns("name").
		Values(t.Name))
	if err != nil {
		return fmt.Errorf("insert tag %s: %w", t.Name, err)
	}

	f.ids[t] = id
	f.assign = append(f.assign, func() { t.ID = id })
	return nil
}

func (f *flush) writePost(ctx context.Context, p *domain.Post) error {
	if p.ID != 0 {
		return nil
	}

	authorID := f.userID(p.Author)
	if authorID == 0 {
		return fmt.Errorf("insert post %q: author: %w", p.Title, ErrUnpersistedReference)
	}

	id, err := f.insert(ctx, sq.Insert("posts").
		Columns("title", "slug", "summary", "content", "published_at", "author_id").
		Values(p.Title, p.Slug, p.Summary, p.Content, formatTime(p.PublishedAt), authorID))
	if err != nil {
		return fmt.Errorf("insert post %q: %w", p.Title, err)
	}

	if err := f.writePostTags(ctx, id, p); err != nil {
		return err
	}
	for _, c := range p.Comments {
		if err := f.writeComment(ctx, id, p, c); err != nil {
			return err
		}
	}

	f.ids[p] = id
	f.assign = append(f.assign, func() { p.ID = id })
	return nil
}

func (f *flush) writePostTags(ctx context.Context, postID int64, p *domain.Post) error {
	if len(p.Tags) == 0 {
		return nil
	}

	b := sq.Insert("post_tags").Columns("post_id", "tag_id", "position")
	for i, t := range p.Tags {
		tagID := f.tagID(t)
		if tagID == 0 {
			return fmt.Errorf("link post %q to tag %s: %w", p.Title, t.Name, ErrUnpersistedReference)
		}
		b = b.Values(postID, tagID, i)
	}

	if _, err := f.insert(ctx, b); err != nil {
		return fmt.Errorf("link post %q tags: %w", p.Title, err)
	}
	return nil
}

func (f *flush) writeComment(ctx context.Context, postID int64, p *domain.Post, c *domain.Comment) error {
	authorID := f.userID(c.Author)
	if authorID == 0 {
		return fmt.Errorf("insert comment on %q: author: %w", p.Title, ErrUnpersistedReference)
	}

	id, err := f.insert(ctx, sq.Insert("comments").
		Columns("post_id", "author_id", "content", "published_at").
		Values(postID, authorID, c.Content, formatTime(c.PublishedAt)))
	if err != nil {
		return fmt.Errorf("insert comment on %q: %w", p.Title, err)
	}

	f.assign = append(f.assign, func() {
		c.ID = id
		c.Post = p
	})
	return nil
}
