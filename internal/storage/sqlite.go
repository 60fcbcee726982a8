package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"nelotsavam/pkg/logger"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

type Config struct {
	Path string `json:"path"`
}

const schema = `
CREATE TABLE IF NOT EXISTS records (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// Store is the sqlite-backed gateway used on device.
type Store struct {
	db *sqlx.DB
}

func New(cfg Config) (*Store, error) {
	db, err := sqlx.Connect("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage at %q: %w", cfg.Path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare storage schema: %w", err)
	}

	logger.Logger().Info("Opened local storage", zap.String("path", cfg.Path))

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	query, args, err := squirrel.
		Select("value").
		From("records").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build get query: %w", err)
	}

	var value string
	err = s.db.GetContext(ctx, &value, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read record %q: %w", key, err)
	}

	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	query, args, err := squirrel.
		Insert("records").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}

	return nil
}

// Remove deletes each key independently, best effort: a failure on one key
// does not stop removal attempts on the rest.
func (s *Store) Remove(ctx context.Context, keys ...string) error {
	var failed []string
	for _, key := range keys {
		query, args, err := squirrel.
			Delete("records").
			Where(squirrel.Eq{"key": key}).
			ToSql()
		if err != nil {
			failed = append(failed, key)
			continue
		}

		if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
			logger.Logger().Error("failed to remove record",
				zap.String("key", key), zap.Error(err))
			failed = append(failed, key)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to remove records: %s", strings.Join(failed, ", "))
	}
	return nil
}
