package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// purgeOrder lists blog tables children first so foreign keys hold while
// rows are deleted.
var purgeOrder = []string{"comments", "post_tags", "posts", "tags", "users"}

// Purge deletes every blog row in a single transaction.
func (s *Store) Purge(ctx context.Context) error {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin purge: %w", err)
	}

	for _, table := range purgeOrder {
		query, args, err := sq.Delete(table).ToSql()
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("build purge %s: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("purge %s: %w", table, err)
		}
	}

	// Restart AUTOINCREMENT counters so a reseeded store numbers from 1.
	if _, err := tx.ExecContext(ctx, `DELETE FROM sqlite_sequence`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("reset sequences: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit purge: %w", err)
	}
	return nil
}
