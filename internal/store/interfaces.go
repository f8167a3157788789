// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-clip-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// HistoryRepository is the local journal of clipboard items pushed to and
// received from the service.
type HistoryRepository interface {
	// Save appends entries. Entries without CreatedAt are stamped with the
	// current time.
	Save(ctx context.Context, entries ...models.HistoryEntry) error

	// Recent returns at most limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)

	// Prune deletes everything but the keep newest entries and returns the
	// number of removed rows.
	Prune(ctx context.Context, keep int) (int64, error)
}

// ItemRepository stores the clipboard items of the development server.
// Items are kept newest first.
type ItemRepository interface {
	// Create stores item, assigning its id and timestamps, and returns the
	// stored copy. The oldest items are evicted beyond the capacity.
	Create(ctx context.Context, item models.ClipboardItem) (models.ClipboardItem, error)

	// Get returns the item with id or [ErrItemNotFound].
	Get(ctx context.Context, id models.ItemID) (models.ClipboardItem, error)

	// List returns every item accepted by match, newest first. A nil match
	// accepts everything.
	List(ctx context.Context, match func(models.ClipboardItem) bool) ([]models.ClipboardItem, error)

	// Update applies the non-nil fields of req and returns the stored copy.
	Update(ctx context.Context, id models.ItemID, req models.UpdateItemRequest) (models.ClipboardItem, error)

	// Delete removes the items with the given ids and returns how many
	// existed. Deleting a single unknown id returns [ErrItemNotFound].
	Delete(ctx context.Context, ids ...models.ItemID) (int, error)

	// Clear removes every item and returns how many there were.
	Clear(ctx context.Context) (int, error)

	// SetCapacity changes the eviction limit and returns the number of
	// items evicted right away.
	SetCapacity(ctx context.Context, capacity int) (int, error)
}
