// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
)

type memoryItemRepository struct {
	mu       sync.RWMutex
	items    []models.ClipboardItem // newest first
	capacity int

	now    func() time.Time
	logger *logger.Logger
}

// NewMemoryItemRepository returns an [ItemRepository] holding at most
// capacity items in memory. A non-positive capacity disables eviction.
func NewMemoryItemRepository(capacity int, log *logger.Logger) ItemRepository {
	return &memoryItemRepository{
		capacity: capacity,
		now:      time.Now,
		logger:   log,
	}
}

func (r *memoryItemRepository) Create(ctx context.Context, item models.ClipboardItem) (models.ClipboardItem, error) {
	if err := ctx.Err(); err != nil {
		return models.ClipboardItem{}, err
	}

	now := r.now().UTC()
	item.ID = models.ItemID(utils.NewItemID())
	item.CreatedAt = &now
	item.UpdatedAt = &now

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]models.ClipboardItem{item}, r.items...)
	if evicted := r.evictLocked(); evicted > 0 {
		r.logger.Debug().Int("evicted", evicted).Msg("item store over capacity")
	}
	return item, nil
}

func (r *memoryItemRepository) evictLocked() int {
	if r.capacity <= 0 || len(r.items) <= r.capacity {
		return 0
	}
	evicted := len(r.items) - r.capacity
	r.items = r.items[:r.capacity:r.capacity]
	return evicted
}

func (r *memoryItemRepository) Get(ctx context.Context, id models.ItemID) (models.ClipboardItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexLocked(id); i >= 0 {
		return r.items[i], nil
	}
	return models.ClipboardItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

func (r *memoryItemRepository) indexLocked(id models.ItemID) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *memoryItemRepository) List(ctx context.Context, match func(models.ClipboardItem) bool) ([]models.ClipboardItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ClipboardItem, 0, len(r.items))
	for _, item := range r.items {
		if match == nil || match(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memoryItemRepository) Update(ctx context.Context, id models.ItemID, req models.UpdateItemRequest) (models.ClipboardItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return models.ClipboardItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}

	item := r.items[i]
	if req.Content != nil {
		item.Content = *req.Content
	}
	if req.FileName != nil {
		item.FileName = *req.FileName
	}
	now := r.now().UTC()
	item.UpdatedAt = &now

	r.items[i] = item
	return item, nil
}

func (r *memoryItemRepository) Delete(ctx context.Context, ids ...models.ItemID) (int, error) {
	drop := make(map[models.ItemID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	for _, item := range r.items {
		if _, ok := drop[item.ID]; !ok {
			kept = append(kept, item)
		}
	}
	removed := len(r.items) - len(kept)
	clear(r.items[len(kept):])
	r.items = kept

	if removed == 0 && len(ids) == 1 {
		return 0, fmt.Errorf("%w: %s", ErrItemNotFound, ids[0])
	}
	return removed, nil
}

func (r *memoryItemRepository) Clear(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.items)
	r.items = nil
	return n, nil
}

func (r *memoryItemRepository) SetCapacity(ctx context.Context, capacity int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.capacity = capacity
	return r.evictLocked(), nil
}
