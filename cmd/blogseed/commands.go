package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/johnwards/blogseed/internal/config"
	"github.com/johnwards/blogseed/internal/database"
	"github.com/johnwards/blogseed/internal/security"
	"github.com/johnwards/blogseed/internal/seed"
	"github.com/johnwards/blogseed/internal/slugify"
	"github.com/johnwards/blogseed/internal/store"
)

// errNotEmpty is returned by seed when the store already holds blog rows.
var errNotEmpty = errors.New("database is not empty (use --purge or --append)")

type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Load()}

	root := &cobra.Command{
		Use:           "blogseed",
		Short:         "Load sample users, tags and posts into the blog database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.LogFormat)
			if err != nil {
				return err
			}
			a.logger = logger
			slog.SetDefault(logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfg.DBPath, "db", a.cfg.DBPath, "SQLite database path (BLOGSEED_DB)")
	root.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "debug, info, warn or error (BLOGSEED_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "text or json (BLOGSEED_LOG_FORMAT)")

	root.AddCommand(a.migrateCmd(), a.seedCmd(), a.statsCmd())
	return root
}

func (a *app) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withDB(cmd.Context(), func(ctx context.Context, db *sqlx.DB) error {
				version, err := database.Version(ctx, db)
				if err != nil {
					return err
				}
				a.logger.Info("schema up to date", "version", version)
				return nil
			})
		},
	}
}

func (a *app) seedCmd() *cobra.Command {
	var purge, appendRows bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with the sample blog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withDB(cmd.Context(), func(ctx context.Context, db *sqlx.DB) error {
				s := store.New(db)

				if purge {
					if err := s.Purge(ctx); err != nil {
						return fmt.Errorf("purge: %w", err)
					}
					a.logger.Info("purged blog tables")
				}

				counts, err := s.Reader.Counts(ctx)
				if err != nil {
					return err
				}
				if !counts.Empty() && !appendRows {
					return errNotEmpty
				}

				seeder := seed.New(
					store.NewUnitOfWork(db, store.WithLogger(a.logger)),
					security.NewBcryptHasher(a.cfg.BcryptCost),
					slugify.New("en"),
					seed.WithRand(gofakeit.New(a.cfg.RandSeed)),
					seed.WithLogger(a.logger),
				)
				if err := seeder.Run(ctx); err != nil {
					return err
				}

				return a.printCounts(ctx, cmd.OutOrStdout(), s)
			})
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, "delete existing blog rows before seeding")
	cmd.Flags().BoolVar(&appendRows, "append", false, "seed even if the database already has blog rows")
	cmd.Flags().Int64Var(&a.cfg.RandSeed, "rand-seed", a.cfg.RandSeed, "random seed, 0 for a random one (BLOGSEED_RAND_SEED)")
	cmd.Flags().IntVar(&a.cfg.BcryptCost, "bcrypt-cost", a.cfg.BcryptCost, "bcrypt cost for seeded passwords (BLOGSEED_BCRYPT_COST)")
	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print row counts per blog table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withDB(cmd.Context(), func(ctx context.Context, db *sqlx.DB) error {
				return a.printCounts(ctx, cmd.OutOrStdout(), store.New(db))
			})
		},
	}
}

// withDB opens and migrates the configured database for the duration of fn.
func (a *app) withDB(ctx context.Context, fn func(context.Context, *sqlx.DB) error) error {
	db, err := database.Open(a.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return fn(ctx, db)
}

func (a *app) printCounts(ctx context.Context, w io.Writer, s *store.Store) error {
	counts, err := s.Reader.Counts(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "users=%d tags=%d posts=%d post_tags=%d comments=%d\n",
		counts.Users, counts.Tags, counts.Posts, counts.PostTags, counts.Comments)
	return err
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
