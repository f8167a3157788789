// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/internal/validators"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newItemService returns the validated service over a fresh in-memory store.
func newItemService(t *testing.T) (ItemService, store.ItemRepository) {
	t.Helper()
	repo := store.NewMemoryItemRepository(100, logger.Nop())
	return NewItemValidationService().Wrap(NewItemService(repo, logger.Nop())), repo
}

func mustCreate(t *testing.T, svc ItemService, req models.CreateItemRequest) models.ClipboardItem {
	t.Helper()
	item, err := svc.CreateItem(context.Background(), req)
	require.NoError(t, err)
	return item
}

// ─────────────────────────────────────────────
// CreateItem / GetItem
// ─────────────────────────────────────────────

func TestItemService_CreateAndGet(t *testing.T) {
	svc, _ := newItemService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, models.CreateItemRequest{Type: models.ItemText, Content: "hello", DeviceID: "d1"})
	assert.Equal(t, int64(5), created.FileSize, "text size is the content length")

	got, err := svc.GetItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetItem(ctx, "nope")
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestItemService_CreateInvalid(t *testing.T) {
	svc, _ := newItemService(t)

	_, err := svc.CreateItem(context.Background(), models.CreateItemRequest{Type: models.ItemText})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyContent)

	_, err = svc.GetItem(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyItemID)
}

// ─────────────────────────────────────────────
// ListItems
// ─────────────────────────────────────────────

func TestItemService_ListFilters(t *testing.T) {
	svc, _ := newItemService(t)
	ctx := context.Background()

	mustCreate(t, svc, models.CreateItemRequest{Type: models.ItemText, Content: "Meeting notes", DeviceID: "a"})
	mustCreate(t, svc, models.CreateItemRequest{Type: models.ItemImage, Content: "data:image/png;base64,AA==", DeviceID: "b"})
	mustCreate(t, svc, models.CreateItemRequest{Type: models.ItemFile, Content: "AA==", FileName: "notes.pdf", DeviceID: "a"})
	mustCreate(t, svc, models.CreateItemRequest{Type: models.ItemText, Content: "groceries", DeviceID: "b"})

	tests := []struct {
		name      string
		q         models.ListQuery
		wantTotal int
		wantFirst string
	}{
		{name: "all newest first", q: models.ListQuery{}, wantTotal: 4, wantFirst: "groceries"},
		{name: "type", q: models.ListQuery{Type: models.ItemText}, wantTotal: 2, wantFirst: "groceries"},
		{name: "all_images filter", q: models.ListQuery{Filter: models.FilterAllImages}, wantTotal: 1},
		{name: "search matches text and file name", q: models.ListQuery{Search: "NOTES"}, wantTotal: 2},
		{name: "device", q: models.ListQuery{DeviceID: "a"}, wantTotal: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.ListItems(ctx, tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, page.Total)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, page.Items[0].Content)
			}
		})
	}

	_, err := svc.ListItems(ctx, models.ListQuery{Type: "video"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestItemService_ListPaging(t *testing.T) {
	svc, _ := newItemService(t)
	for _, c := range []string{"1", "2", "3", "4", "5"} {
		mustCreate(t, svc, models.CreateItemRequest{Type: models.ItemText, Content: c})
	}

	page, err := svc.ListItems(context.Background(), models.ListQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "3", page.Items[0].Content)

	page, err = svc.ListItems(context.Background(), models.ListQuery{Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items, "empty page is encoded as []")
}

// ─────────────────────────────────────────────
// UploadItem / ItemFile
// ─────────────────────────────────────────────

func TestItemService_UploadImageRoundTrip(t *testing.T) {
	svc, _ := newItemService(t)
	ctx := context.Background()
	png := []byte("\x89PNG\r\n\x1a\nfake")

	item, err := svc.UploadItem(ctx, models.UploadedFile{
		Type: models.ItemImage, FileName: "shot.png", DeviceID: "d1", Content: png,
	})
	require.NoError(t, err)
	assert.Equal(t, "image/png", item.MimeType)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(png), item.Content)
	assert.Equal(t, int64(len(png)), item.FileSize)

	file, err := svc.ItemFile(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, png, file.Content)
	assert.Equal(t, "image/png", file.ContentType)
	assert.Equal(t, "shot.png", file.FileName)
}

func TestItemService_UploadRejected(t *testing.T) {
	svc, _ := newItemService(t)
	ctx := context.Background()

	_, err := svc.UploadItem(ctx, models.UploadedFile{FileName: "a.txt"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided, "empty content")

	_, err = svc.UploadItem(ctx, models.UploadedFile{Type: models.ItemText, FileName: "a.txt", Content: []byte("x")})
	assert.ErrorIs(t, err, ErrUnsupportedUpload)

	_, err = svc.UploadItem(ctx, models.UploadedFile{FileName: "../a.txt", Content: []byte("x")})
	assert.ErrorIs(t, err, validators.ErrInvalidFileName)
}

func TestItemService_ItemFileText(t *testing.T) {
	svc, _ := newItemService(t)
	item := mustCreate(t, svc, models.CreateItemRequest{Type: models.ItemText, Content: "plain"})

	file, err := svc.ItemFile(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), file.Content)
	assert.Equal(t, "text/plain; charset=utf-8", file.ContentType)
	assert.Equal(t, "clipboard_"+item.ID.String()+".txt", file.FileName)
}

func TestItemService_ItemFileMalformed(t *testing.T) {
	svc, _ := newItemService(t)
	item := mustCreate(t, svc, models.CreateItemRequest{Type: models.ItemFile, Content: "%%%", FileName: "x.bin"})

	_, err := svc.ItemFile(context.Background(), item.ID)
	assert.ErrorIs(t, err, ErrMalformedContent)
}

// ─────────────────────────────────────────────
// UpdateItem / DeleteItem
// ─────────────────────────────────────────────

func TestItemService_UpdateDelete(t *testing.T) {
	svc, _ := newItemService(t)
	ctx := context.Background()
	item := mustCreate(t, svc, models.CreateItemRequest{Type: models.ItemText, Content: "old"})

	_, err := svc.UpdateItem(ctx, item.ID, models.UpdateItemRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	content := "new"
	updated, err := svc.UpdateItem(ctx, item.ID, models.UpdateItemRequest{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Content)

	require.NoError(t, svc.DeleteItem(ctx, item.ID))
	assert.ErrorIs(t, svc.DeleteItem(ctx, item.ID), store.ErrItemNotFound)
}
