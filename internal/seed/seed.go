// Package seed loads the sample blog: three users, nine tags and six posts
// with five comments each. Stages run in a fixed order (users, tags, posts)
// and each ends with a flush, so later stages can link to entities created
// by earlier ones through the run's reference table.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/johnwards/blogseed/internal/domain"
)

const tracerName = "github.com/johnwards/blogseed/internal/seed"

// Fixed authors and per-post comment count.
const (
	FirstPostAuthor = "jane_admin"
	CommentAuthor   = "john_user"
	CommentsPerPost = 5
)

// postAuthors are the candidates for every post after the first.
var postAuthors = [...]string{"jane_admin", "tom_admin"}

// Sink stages entities and commits them.
type Sink interface {
	Persist(entity any)
	Flush(ctx context.Context) error
}

// PasswordHasher turns a plaintext password into the stored credential.
type PasswordHasher interface {
	HashPassword(u *domain.User, plain string) (string, error)
}

// Slugger derives a URL slug from a title.
type Slugger interface {
	Slug(text string) string
}

// Seeder writes the sample blog to a Sink.
//
// Summary, content and comment text come from Rotations owned by the
// Seeder. They keep advancing across runs of the same Seeder; call
// ResetRotations to start again from the first items.
type Seeder struct {
	sink    Sink
	hasher  PasswordHasher
	slugger Slugger
	rand    *gofakeit.Faker
	now     func() time.Time
	logger  *slog.Logger
	tracer  trace.Tracer

	summaries *Rotation
	contents  *Rotation
	comments  *Rotation
}

// Option configures a Seeder.
type Option func(*Seeder)

// WithRand sets the random source used for authors, dates and tags.
func WithRand(f *gofakeit.Faker) Option {
	return func(s *Seeder) {
		s.rand = f
	}
}

// WithClock sets the function used as the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) {
		s.now = now
	}
}

// WithLogger sets the logger for stage progress.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Seeder) {
		s.logger = logger
	}
}

// WithTracer sets the tracer for run and stage spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Seeder) {
		s.tracer = tracer
	}
}

// New creates a Seeder. Without WithRand the random source is seeded from
// crypto/rand, so runs differ.
func New(sink Sink, hasher PasswordHasher, slugger Slugger, opts ...Option) *Seeder {
	s := &Seeder{
		sink:      sink,
		hasher:    hasher,
		slugger:   slugger,
		now:       time.Now,
		logger:    slog.Default(),
		tracer:    otel.Tracer(tracerName),
		summaries: NewRotation(summaryTexts),
		contents:  NewRotation(postContents),
		comments:  NewRotation(summaryTexts),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = gofakeit.New(0)
	}
	return s
}

// ResetRotations rewinds the summary, content and comment rotations.
func (s *Seeder) ResetRotations() {
	s.summaries.Reset()
	s.contents.Reset()
	s.comments.Reset()
}

// Run loads users, tags and posts, in that order. The first failing stage
// aborts the run; stages already flushed stay written.
func (s *Seeder) Run(ctx context.Context) (err error) {
	ctx, span := s.tracer.Start(ctx, "seed.Run")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	refs := NewReferences()

	stages := []struct {
		name string
		load func(context.Context, *References) (int, error)
	}{
		{"users", s.loadUsers},
		{"tags", s.loadTags},
		{"posts", s.loadPosts},
	}
	for _, st := range stages {
		if err := s.runStage(ctx, st.name, refs, st.load); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) runStage(ctx context.Context, name string, refs *References, load func(context.Context, *References) (int, error)) error {
	ctx, span := s.tracer.Start(ctx, "seed."+name)
	defer span.End()

	n, err := load(ctx, refs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("seed %s: %w", name, err)
	}

	s.logger.InfoContext(ctx, "seeded", "stage", name, "count", n)
	return nil
}
