// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client services
// and the clipboard-sync service.
//
// [ServerAdapter] covers the REST API and is implemented on top of resty
// ([NewHTTPServerAdapter]). [RealtimeDialer] and [RealtimeConn] cover the
// WebSocket endpoint and are implemented with gorilla/websocket
// ([NewWSDialer]).
//
// Non-2xx answers are mapped by mapHTTPError to a [*StatusError] wrapping one
// of the sentinels in errors.go, so callers can use [errors.Is] (e.g.
// [ErrNotFound] for 404) and still read the status code with [StatusCode].
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-clip-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Reply is a successful answer: the decoded data, the message of the service
// and the HTTP status.
type Reply[T any] struct {
	Data       T
	Message    string
	StatusCode int
}

// FileKind selects between the inline preview and the attachment download of
// a stored file.
type FileKind string

const (
	FilePreview  FileKind = "preview"
	FileDownload FileKind = "download"
)

// ServerAdapter is the REST API of the clipboard-sync service. Every method
// performs exactly one request. Failures are returned as errors: a
// [*StatusError] when the service answered, a wrapped [ErrTimeout] or
// [ErrUnreachable] when it did not.
type ServerAdapter interface {
	// Health calls GET /api/health and measures the response time.
	Health(ctx context.Context) (Reply[models.HealthReport], error)

	// ListItems calls GET /api/clipboard with the paging and filter
	// parameters of q. The caller is expected to normalize q.
	ListItems(ctx context.Context, q models.ListQuery) (Reply[models.ItemPage], error)

	// GetItem calls GET /api/clipboard/{id}.
	GetItem(ctx context.Context, id models.ItemID) (Reply[models.ClipboardItem], error)

	// CreateItem calls POST /api/clipboard with a JSON body.
	CreateItem(ctx context.Context, req models.CreateItemRequest) (Reply[models.ClipboardItem], error)

	// UploadItem calls POST /api/clipboard/upload as multipart/form-data
	// with the file part read from content.
	UploadItem(ctx context.Context, req models.UploadRequest, content io.Reader) (Reply[models.ClipboardItem], error)

	// UpdateItem calls PUT /api/clipboard/{id}.
	UpdateItem(ctx context.Context, id models.ItemID, req models.UpdateItemRequest) (Reply[models.ClipboardItem], error)

	// DeleteItem calls DELETE /api/clipboard/{id}.
	DeleteItem(ctx context.Context, id models.ItemID) (Reply[models.RawData], error)

	// ConnectionStats calls GET /api/devices/connections.
	ConnectionStats(ctx context.Context) (Reply[models.ConnectionStats], error)

	// ClientConfig calls GET /api/config/client.
	ClientConfig(ctx context.Context) (Reply[models.ClientConfig], error)

	// UserConfig calls GET /api/config.
	UserConfig(ctx context.Context) (Reply[models.UserConfig], error)

	// UpdateUserConfig calls PUT /api/config with the non-nil fields of cfg.
	UpdateUserConfig(ctx context.Context, cfg models.UserConfig) (Reply[models.UserConfig], error)

	// Cleanup calls POST /api/config/cleanup. An empty request is sent
	// without a body.
	Cleanup(ctx context.Context, req models.CleanupRequest) (Reply[models.CleanupResult], error)

	// ClearAll calls DELETE /api/config/clear-all.
	ClearAll(ctx context.Context) (Reply[models.CleanupResult], error)

	// StorageStats calls GET /api/config/stats.
	StorageStats(ctx context.Context) (Reply[models.StorageStats], error)

	// FetchFile calls GET /api/files/{preview|download}?id=&name=, or the
	// path form /api/files/{id}[/preview] when legacy is set. The body is
	// returned as is.
	FetchFile(ctx context.Context, req models.FileRequest, kind FileKind, legacy bool) (Reply[models.FileContent], error)

	// FileStats calls GET /api/files/stats.
	FileStats(ctx context.Context) (Reply[models.FileStats], error)

	// CleanupFiles calls POST /api/files/cleanup.
	CleanupFiles(ctx context.Context) (Reply[models.CleanupResult], error)

	// FileCleanupStatus calls GET /api/files/cleanup/status.
	FileCleanupStatus(ctx context.Context) (Reply[models.CleanupStatus], error)
}

// RealtimeDialer opens WebSocket connections to the service.
type RealtimeDialer interface {
	// Dial connects as deviceID. The handshake is bounded by the configured
	// connect timeout.
	Dial(ctx context.Context, deviceID string) (RealtimeConn, error)

	// URL returns the endpoint Dial would connect to, with credentials
	// masked.
	URL(deviceID string) string
}

// RealtimeConn is one open WebSocket connection. Send may be called from
// several goroutines; Receive must be called from a single reader.
type RealtimeConn interface {
	// Send writes msg as a JSON text frame.
	Send(ctx context.Context, msg models.WSMessage) error

	// Receive blocks until the next frame arrives and decodes it. It returns
	// an error wrapping [ErrConnectionClosed] once the connection is gone,
	// and [ErrMalformedFrame] for frames that are not JSON messages.
	Receive(ctx context.Context) (models.WSMessage, error)

	// Close sends a close frame and releases the connection. It is safe to
	// call more than once.
	Close() error
}
