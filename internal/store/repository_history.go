// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
)

type historyRepository struct {
	*DB
	logger *logger.Logger
}

// NewHistoryRepository returns the SQL implementation of [HistoryRepository].
func NewHistoryRepository(db *DB, log *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:     db,
		logger: log,
	}
}

func (h *historyRepository) Save(ctx context.Context, entries ...models.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := range entries {
		if entries[i].CreatedAt.IsZero() {
			entries[i].CreatedAt = now
		}
	}

	query, args, err := buildInsertHistoryQuery(h.builder, entries)
	if err != nil {
		return err
	}

	if _, err = h.DB.ExecContext(ctx, query, args...); err != nil {
		h.logger.Err(err).
			Str("func", "historyRepository.Save").
			Int("entries", len(entries)).
			Msg("failed to insert history entries")
		return h.wrap("save history", err)
	}

	return nil
}

func (h *historyRepository) Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	query, args, err := buildRecentHistoryQuery(h.builder, limit)
	if err != nil {
		return nil, err
	}

	rows, err := h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		h.logger.Err(err).
			Str("func", "historyRepository.Recent").
			Int("limit", limit).
			Msg("failed to query history")
		return nil, h.wrap("query history", err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0, limit)
	for rows.Next() {
		var (
			e                          models.HistoryEntry
			direction, msgType, itemID string
			itemType                   string
		)
		if err = rows.Scan(
			&e.ID,
			&direction,
			&msgType,
			&itemID,
			&itemType,
			&e.DeviceID,
			&e.Fingerprint,
			&e.Preview,
			&e.CreatedAt,
		); err != nil {
			h.logger.Err(err).Str("func", "historyRepository.Recent").Msg("failed to scan history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		e.Direction = models.Direction(direction)
		e.MessageType = models.MessageType(msgType)
		e.ItemID = models.ItemID(itemID)
		e.ItemType = models.ItemType(itemType)
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		h.logger.Err(err).Str("func", "historyRepository.Recent").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (h *historyRepository) Count(ctx context.Context) (int, error) {
	query, args, err := buildCountHistoryQuery(h.builder)
	if err != nil {
		return 0, err
	}

	var n int
	if err = h.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		h.logger.Err(err).Str("func", "historyRepository.Count").Msg("failed to count history")
		return 0, h.wrap("count history", err)
	}
	return n, nil
}

func (h *historyRepository) Prune(ctx context.Context, keep int) (int64, error) {
	log := h.logger.With().Str("func", "historyRepository.Prune").Int("keep", keep).Logger()

	var (
		query string
		args  []any
		err   error
	)

	if keep <= 0 {
		query, args, err = h.builder.Delete(historyTable).ToSql()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
	} else {
		boundaryQuery, boundaryArgs, err := buildPruneBoundaryQuery(h.builder, keep)
		if err != nil {
			return 0, err
		}

		var boundary int64
		err = h.DB.QueryRowContext(ctx, boundaryQuery, boundaryArgs...).Scan(&boundary)
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		if err != nil {
			log.Err(err).Msg("failed to find prune boundary")
			return 0, h.wrap("find prune boundary", err)
		}

		query, args, err = buildPruneQuery(h.builder, boundary)
		if err != nil {
			return 0, err
		}
	}

	res, err := h.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to prune history")
		return 0, h.wrap("prune history", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, h.wrap("prune history", err)
	}
	if removed > 0 {
		log.Debug().Int64("removed", removed).Msg("history pruned")
	}
	return removed, nil
}

func (h *historyRepository) wrap(op string, err error) error {
	if h.retryable(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrJournalUnavailable, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrExecutingQuery, err)
}
