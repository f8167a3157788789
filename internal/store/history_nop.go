// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-clip-sync/models"
)

// nopHistory is used when the journal is disabled.
type nopHistory struct{}

// NewNopHistoryRepository returns a [HistoryRepository] that stores nothing.
func NewNopHistoryRepository() HistoryRepository {
	return nopHistory{}
}

func (nopHistory) Save(context.Context, ...models.HistoryEntry) error { return nil }

func (nopHistory) Recent(context.Context, int) ([]models.HistoryEntry, error) { return nil, nil }

func (nopHistory) Count(context.Context) (int, error) { return 0, nil }

func (nopHistory) Prune(context.Context, int) (int64, error) { return 0, nil }
