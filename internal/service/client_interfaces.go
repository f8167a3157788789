// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-clip-sync/models"
)

// Every client service reports its outcome as a [models.Envelope]: failures
// (transport errors, non-2xx answers, malformed bodies, client-side
// validation) are folded into Success=false with a non-empty Message and,
// when a response was received, its StatusCode. Nothing is retried.

// HealthService checks that the HTTP API is up.
type HealthService interface {
	// Check calls the health endpoint. Data carries the server report and the
	// measured response time.
	Check(ctx context.Context) models.Envelope[models.HealthReport]
}

// ClipboardService manages clipboard items over the REST API.
type ClipboardService interface {
	// List returns one page of items. q is normalized first: page defaults to
	// 1 and limit to 20, limit is clamped to 1..100.
	List(ctx context.Context, q models.ListQuery) models.Envelope[models.ItemPage]

	Get(ctx context.Context, id models.ItemID) models.Envelope[models.ClipboardItem]

	// CreateText stores a text item for deviceID.
	CreateText(ctx context.Context, content, deviceID string) models.Envelope[models.ClipboardItem]

	// CreateImage stores an image item. Raw bytes are sent as a base64 data
	// URL, plain base64 is wrapped into one and data URLs are sent as is.
	CreateImage(ctx context.Context, data models.Payload, deviceID, fileName, mimeType string) models.Envelope[models.ClipboardItem]

	// CreateFile stores a file item. fileName is required.
	CreateFile(ctx context.Context, data models.Payload, deviceID, fileName, mimeType string) models.Envelope[models.ClipboardItem]

	// Upload sends the file at req.FilePath as multipart form data.
	Upload(ctx context.Context, req models.UploadRequest) models.Envelope[models.ClipboardItem]

	// Update changes content or file name of an item. At least one must be set.
	Update(ctx context.Context, id models.ItemID, req models.UpdateItemRequest) models.Envelope[models.ClipboardItem]

	Delete(ctx context.Context, id models.ItemID) models.Envelope[models.RawData]
}

// DeviceService reports the devices connected to the WebSocket endpoint.
type DeviceService interface {
	ConnectionStats(ctx context.Context) models.Envelope[models.ConnectionStats]

	// Devices derives the device list from the connection statistics.
	Devices(ctx context.Context) models.Envelope[models.DeviceList]

	// ProbeWebSocketServer reports whether the WebSocket server runs. The
	// service answers 503 on the statistics endpoint when it does not.
	ProbeWebSocketServer(ctx context.Context) models.Envelope[models.ServerProbe]
}

// SettingsService reads and changes the service configuration and triggers
// cleanups.
type SettingsService interface {
	ClientConfig(ctx context.Context) models.Envelope[models.ClientConfig]
	UserConfig(ctx context.Context) models.Envelope[models.UserConfig]
	UpdateUserConfig(ctx context.Context, cfg models.UserConfig) models.Envelope[models.UserConfig]

	// Cleanup removes expired content. An empty request lets the service
	// apply its own rules.
	Cleanup(ctx context.Context, req models.CleanupRequest) models.Envelope[models.CleanupResult]
	CleanupByDays(ctx context.Context, days int) models.Envelope[models.CleanupResult]
	CleanupByCount(ctx context.Context, maxCount int) models.Envelope[models.CleanupResult]
	CleanupFilesByCount(ctx context.Context, maxFileCount int, strategy models.CleanupStrategy) models.Envelope[models.CleanupResult]
	ClearAll(ctx context.Context) models.Envelope[models.CleanupResult]
	StorageStats(ctx context.Context) models.Envelope[models.StorageStats]

	SetMaxItems(ctx context.Context, maxItems int) models.Envelope[models.UserConfig]
	SetAutoCleanupDays(ctx context.Context, days int) models.Envelope[models.UserConfig]
	EnableFileCleanup(ctx context.Context, maxFileCount int, strategy models.CleanupStrategy) models.Envelope[models.UserConfig]
	DisableFileCleanup(ctx context.Context) models.Envelope[models.UserConfig]
}

// FilesService fetches the files attached to clipboard items.
type FilesService interface {
	Preview(ctx context.Context, id models.ItemID, fileName string) models.Envelope[models.FileContent]
	Download(ctx context.Context, id models.ItemID, fileName string) models.Envelope[models.FileContent]
	PreviewLegacy(ctx context.Context, id models.ItemID) models.Envelope[models.FileContent]
	DownloadLegacy(ctx context.Context, id models.ItemID) models.Envelope[models.FileContent]

	// SaveToDisk downloads the file and writes it into dir, creating dir when
	// needed. The name is fileName, else the server name, else file_<id>.
	SaveToDisk(ctx context.Context, id models.ItemID, dir, fileName string) models.Envelope[models.SavedFile]

	Stats(ctx context.Context) models.Envelope[models.FileStats]
	Cleanup(ctx context.Context) models.Envelope[models.CleanupResult]
	CleanupStatus(ctx context.Context) models.Envelope[models.CleanupStatus]
}

// MessageHandler handles one inbound WebSocket message. A returned error is
// logged and does not stop the listener.
type MessageHandler func(ctx context.Context, msg models.WSMessage) error

// RealtimeService is the WebSocket client. It holds at most one connection.
type RealtimeService interface {
	// Connect opens the connection. Data is the endpoint URL with
	// credentials masked.
	Connect(ctx context.Context) models.Envelope[string]
	Close() error
	Connected() bool

	// Send writes msg. Data echoes the sent message.
	Send(ctx context.Context, msg models.WSMessage) models.Envelope[models.WSMessage]
	GetAllContent(ctx context.Context, q models.ContentQuery) models.Envelope[models.WSMessage]
	GetAllText(ctx context.Context) models.Envelope[models.WSMessage]
	GetAllImages(ctx context.Context) models.Envelope[models.WSMessage]
	GetLatest(ctx context.Context, count int) models.Envelope[models.WSMessage]
	SyncItem(ctx context.Context, item models.ClipboardItem) models.Envelope[models.WSMessage]
	DeleteItem(ctx context.Context, id models.ItemID) models.Envelope[models.WSMessage]

	// RegisterHandler sets the handler for one message type, replacing any
	// previous one.
	RegisterHandler(t models.MessageType, h MessageHandler)

	// Listen reads messages until the connection closes or ctx is done and
	// dispatches each one sequentially: h first (when not nil), then the
	// handler registered for its type. Data is the number of dispatched
	// messages. Cancelling ctx closes the connection.
	Listen(ctx context.Context, h MessageHandler) models.Envelope[int]

	// Run connects, optionally requests the latest content, listens and
	// closes the connection.
	Run(ctx context.Context, autoGetContent bool, h MessageHandler) models.Envelope[int]
}

// ClipboardBridge links the local clipboard with the service.
type ClipboardBridge interface {
	// Push creates a text item from a local clipboard change. Blank,
	// unchanged and over-length text is skipped without a request.
	Push(ctx context.Context, text string) models.Envelope[models.ClipboardItem]

	// Apply writes a pushed text item to the local clipboard. It has the
	// [MessageHandler] signature so it can be registered for sync pushes.
	Apply(ctx context.Context, msg models.WSMessage) error

	// Enabled and SetEnabled pause and resume both directions.
	Enabled() bool
	SetEnabled(enabled bool)
}

// ClientPruneJob trims the history journal in the background.
type ClientPruneJob interface {
	// Start launches the job. It prunes every interval, defaulting to 10
	// minutes, and stops any previously running job first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the job to exit and waits for it.
	Stop()
}
