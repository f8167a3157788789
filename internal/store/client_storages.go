// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// History is the journal of pushed and received items. It is a no-op
	// repository when no DSN is configured.
	History HistoryRepository

	// HistoryLimit is the number of entries kept by [ClientStorages.Prune].
	HistoryLimit int

	db *DB
}

// NewClientStorages opens the journal selected by cfg.DB.DSN and applies its
// migrations:
//   - empty DSN: journal disabled;
//   - postgres:// or postgresql:// URL: PostgreSQL through pgx;
//   - anything else: a SQLite file path (or ":memory:").
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)
	if dsn == "" {
		log.Debug().Msg("history journal disabled")
		return &ClientStorages{History: NewNopHistoryRepository()}, nil
	}

	db, err := connect(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		History:      NewHistoryRepository(db, log),
		HistoryLimit: cfg.DB.HistoryLimit,
		db:           db,
	}, nil
}

func connect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err := NewConnectPostgres(ctx, dsn, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return db, nil
	case strings.Contains(dsn, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn[:strings.Index(dsn, "://")])
	default:
		db, err := NewConnectSQLite(ctx, dsn, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return db, nil
	}
}

// Prune trims the journal to HistoryLimit entries. It is a no-op when the
// journal is disabled or no limit is configured.
func (s *ClientStorages) Prune(ctx context.Context) (int64, error) {
	if s.db == nil || s.HistoryLimit <= 0 {
		return 0, nil
	}
	return s.History.Prune(ctx, s.HistoryLimit)
}

// Close releases the journal database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
