// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validText() models.CreateItemRequest {
	return models.CreateItemRequest{Type: models.ItemText, Content: "hello", DeviceID: "d1"}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewClipboardValidator()
	ctx := context.Background()

	req := validText()
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, req, "nope"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// CreateItemRequest
// ---------------------------------------------------------------------------

func TestValidate_Create(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.CreateItemRequest)
		fields  []string
		wantErr error
	}{
		{name: "valid text", mutate: func(r *models.CreateItemRequest) {}},
		{name: "unknown type", mutate: func(r *models.CreateItemRequest) { r.Type = "video" }, wantErr: ErrInvalidItemType},
		{name: "blank content", mutate: func(r *models.CreateItemRequest) { r.Content = "  " }, wantErr: ErrEmptyContent},
		{
			name:    "file without name",
			mutate:  func(r *models.CreateItemRequest) { r.Type = models.ItemFile },
			wantErr: ErrEmptyFileName,
		},
		{
			name:    "file name with path",
			mutate:  func(r *models.CreateItemRequest) { r.Type = models.ItemFile; r.FileName = "../etc/passwd" },
			wantErr: ErrInvalidFileName,
		},
		{
			name:    "negative size",
			mutate:  func(r *models.CreateItemRequest) { r.FileSize = -1 },
			wantErr: ErrNegativeFileSize,
		},
		{
			name:   "scoped to type only",
			mutate: func(r *models.CreateItemRequest) { r.Content = "" },
			fields: []string{FieldType},
		},
	}

	v := NewClipboardValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validText()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// UpdateItemRequest
// ---------------------------------------------------------------------------

func TestValidate_Update(t *testing.T) {
	v := NewClipboardValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.UpdateItemRequest{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.UpdateItemRequest{Content: ptr("x")}))
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateItemRequest{FileName: ptr("a/b.txt")}), ErrInvalidFileName)
}

// ---------------------------------------------------------------------------
// CleanupRequest
// ---------------------------------------------------------------------------

func TestValidate_Cleanup(t *testing.T) {
	v := NewClipboardValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CleanupRequest{}))
	assert.NoError(t, v.Validate(ctx, models.CleanupRequest{BeforeDate: "2026-03-01", MaxCount: 10}))
	assert.NoError(t, v.Validate(ctx, &models.CleanupRequest{MaxFileCount: 5, FileCleanupStrategy: models.LargestFirst}))

	assert.ErrorIs(t, v.Validate(ctx, models.CleanupRequest{BeforeDate: "01.03.2026"}), ErrInvalidBeforeDate)
	assert.ErrorIs(t, v.Validate(ctx, models.CleanupRequest{MaxCount: -1}), ErrNegativeCount)
	assert.ErrorIs(t, v.Validate(ctx, models.CleanupRequest{MaxFileCount: 5, FileCleanupStrategy: "random"}), ErrInvalidStrategy)
	assert.ErrorIs(t, v.Validate(ctx, models.CleanupRequest{FileCleanupStrategy: models.OldestFirst}), ErrStrategyWithoutCount)
}

// ---------------------------------------------------------------------------
// UserConfig
// ---------------------------------------------------------------------------

func TestValidate_UserConfig(t *testing.T) {
	v := NewClipboardValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UserConfig{}))
	assert.NoError(t, v.Validate(ctx, models.UserConfig{MaxItems: ptr(100), AutoCleanupDays: ptr(0)}))

	assert.ErrorIs(t, v.Validate(ctx, models.UserConfig{MaxItems: ptr(0)}), ErrNegativeCount)
	assert.ErrorIs(t, v.Validate(ctx, models.UserConfig{AutoCleanupDays: ptr(-3)}), ErrNegativeCount)
	assert.ErrorIs(t, v.Validate(ctx, &models.UserConfig{
		FileCleanup: &models.FileCleanup{Strategy: "newest_first"},
	}), ErrInvalidStrategy)
}
