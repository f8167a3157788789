// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-clip-sync/models"
)

// Services of the development server. The client services live in
// client_interfaces.go.

// ItemService manages the clipboard items of the development server.
type ItemService interface {
	// ListItems pages through the items matching q, newest first.
	ListItems(ctx context.Context, q models.ListQuery) (models.ItemPage, error)

	GetItem(ctx context.Context, id models.ItemID) (models.ClipboardItem, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.ClipboardItem, error)

	// UploadItem stores a multipart upload as an image or file item with
	// base64 content.
	UploadItem(ctx context.Context, file models.UploadedFile) (models.ClipboardItem, error)

	UpdateItem(ctx context.Context, id models.ItemID, req models.UpdateItemRequest) (models.ClipboardItem, error)
	DeleteItem(ctx context.Context, id models.ItemID) error

	// ItemFile decodes the content of an item into a file body.
	ItemFile(ctx context.Context, id models.ItemID) (models.FileContent, error)
}

// ItemServiceWrapper decorates an ItemService, e.g. with request validation.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}

// MaintenanceService holds the configuration, statistics and cleanup
// operations of the development server.
type MaintenanceService interface {
	ClientConfig(ctx context.Context) models.ClientConfig
	UserConfig(ctx context.Context) (models.UserConfig, error)
	UpdateUserConfig(ctx context.Context, patch models.UserConfig) (models.UserConfig, error)

	// Cleanup removes items by the criteria of req. An empty request removes
	// items older than the configured auto cleanup period.
	Cleanup(ctx context.Context, req models.CleanupRequest) (models.CleanupResult, error)
	ClearAll(ctx context.Context) (models.CleanupResult, error)
	StorageStats(ctx context.Context) (models.StorageStats, error)

	FileStats(ctx context.Context) (models.FileStats, error)

	// CleanupFiles applies the configured file cleanup policy.
	CleanupFiles(ctx context.Context) (models.CleanupResult, error)
	CleanupStatus(ctx context.Context) (models.CleanupStatus, error)
}

// AppInfoService reports the health of the development server.
type AppInfoService interface {
	Health(ctx context.Context) models.HealthReport
}
