// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-clip-sync/models"
)

const historyTable = "clip_history"

var historyColumns = []string{
	"id", "direction", "message_type", "item_id", "item_type",
	"device_id", "fingerprint", "preview", "created_at",
}

func buildInsertHistoryQuery(builder sq.StatementBuilderType, entries []models.HistoryEntry) (string, []any, error) {
	if len(entries) == 0 {
		return "", nil, fmt.Errorf("%w: no entries", ErrBuildingSQLQuery)
	}

	insert := builder.Insert(historyTable).
		Columns(historyColumns[1:]...)
	for _, e := range entries {
		insert = insert.Values(
			string(e.Direction),
			string(e.MessageType),
			e.ItemID.String(),
			string(e.ItemType),
			e.DeviceID,
			e.Fingerprint,
			e.Preview,
			e.CreatedAt,
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildRecentHistoryQuery(builder sq.StatementBuilderType, limit int) (string, []any, error) {
	query, args, err := builder.Select(historyColumns...).
		From(historyTable).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountHistoryQuery(builder sq.StatementBuilderType) (string, []any, error) {
	query, args, err := builder.Select("COUNT(*)").From(historyTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildPruneBoundaryQuery selects the id of the oldest entry to keep.
func buildPruneBoundaryQuery(builder sq.StatementBuilderType, keep int) (string, []any, error) {
	query, args, err := builder.Select("id").
		From(historyTable).
		OrderBy("id DESC").
		Limit(1).
		Offset(uint64(keep - 1)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildPruneQuery(builder sq.StatementBuilderType, boundary int64) (string, []any, error) {
	query, args, err := builder.Delete(historyTable).
		Where(sq.Lt{"id": boundary}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
