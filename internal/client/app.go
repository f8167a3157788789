// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/clipboard"
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/internal/workers"
	"github.com/MKhiriev/go-clip-sync/models"
)

type App struct {
	cfg       *config.ClientConfig
	services  *service.ClientServices
	storages  *store.ClientStorages
	board     clipboard.Clipboard
	dashboard Dashboard
	out       io.Writer

	logger *logger.Logger
}

// NewApp wires the façade. A nil out prints to stdout; a nil dashboard makes
// the dashboard mode fail with [ErrNoDashboard].
func NewApp(
	cfg *config.ClientConfig,
	services *service.ClientServices,
	storages *store.ClientStorages,
	board clipboard.Clipboard,
	dashboard Dashboard,
	out io.Writer,
	log *logger.Logger,
) (*App, error) {
	if cfg == nil || services == nil || storages == nil {
		return nil, fmt.Errorf("client app: config, services and storages are required")
	}
	if board == nil {
		board = clipboard.NewMemory("")
	}
	if out == nil {
		out = os.Stdout
	}

	return &App{
		cfg:       cfg,
		services:  services,
		storages:  storages,
		board:     board,
		dashboard: dashboard,
		out:       out,
		logger:    log,
	}, nil
}

// DeviceID is the id this client announces to the service.
func (a *App) DeviceID() string {
	return a.cfg.App.DeviceID
}

// CheckServiceStatus probes the HTTP API and the WebSocket server.
func (a *App) CheckServiceStatus(ctx context.Context) models.ServiceStatus {
	return service.CheckServiceStatus(ctx, a.services.Health, a.services.Devices)
}

// SystemInfo collects configuration and statistics. Failed calls leave their
// field empty.
func (a *App) SystemInfo(ctx context.Context) models.SystemInfo {
	var info models.SystemInfo

	if env := a.services.Settings.ClientConfig(ctx); env.Success {
		info.ClientConfig = env.Data
	}
	if env := a.services.Settings.UserConfig(ctx); env.Success {
		info.UserConfig = &env.Data
	}
	if env := a.services.Settings.StorageStats(ctx); env.Success {
		info.StorageStats = &env.Data
	}
	if env := a.services.Files.Stats(ctx); env.Success {
		info.FileStats = &env.Data
	}
	return info
}

// ClipboardSummary counts stored items by type and lists the latest ones and
// the connected devices. Parts whose call failed stay empty.
func (a *App) ClipboardSummary(ctx context.Context) models.ClipboardSummary {
	summary := models.ClipboardSummary{
		LatestItems: []models.ClipboardItem{},
		Devices:     []models.Device{},
	}

	if env := a.services.Settings.StorageStats(ctx); env.Success {
		summary.TotalItems = env.Data.TotalItems
		summary.TextItems = env.Data.TextItems
		summary.ImageItems = env.Data.ImageItems
		summary.FileItems = env.Data.FileItems
	}
	if env := a.services.Clipboard.List(ctx, models.ListQuery{Limit: models.SummaryLatestCount}); env.Success {
		summary.LatestItems = env.Data.Items
	}
	if env := a.services.Devices.Devices(ctx); env.Success {
		summary.Devices = env.Data.Devices
	}
	return summary
}

func (a *App) CreateText(ctx context.Context, content string) models.Envelope[models.ClipboardItem] {
	return a.services.Clipboard.CreateText(ctx, content, a.DeviceID())
}

// UploadFile sends the file at path as an item of itemType (file or image).
func (a *App) UploadFile(ctx context.Context, path string, itemType models.ItemType) models.Envelope[models.ClipboardItem] {
	return a.services.Clipboard.Upload(ctx, models.UploadRequest{
		FilePath: path,
		DeviceID: a.DeviceID(),
		Type:     itemType,
	})
}

// DownloadAndSave stores the file of item id in the configured download
// directory. An empty fileName keeps the server name.
func (a *App) DownloadAndSave(ctx context.Context, id models.ItemID, fileName string) models.Envelope[models.SavedFile] {
	return a.services.Files.SaveToDisk(ctx, id, a.cfg.Storage.DownloadDir, fileName)
}

func (a *App) CleanupOldContent(ctx context.Context, days int) models.Envelope[models.CleanupResult] {
	return a.services.Settings.CleanupByDays(ctx, days)
}

func (a *App) CleanupByCount(ctx context.Context, maxCount int) models.Envelope[models.CleanupResult] {
	return a.services.Settings.CleanupByCount(ctx, maxCount)
}

// StartRealtimeSync connects, requests the latest content and dispatches
// every pushed message to h until ctx is done or the connection drops.
func (a *App) StartRealtimeSync(ctx context.Context, h service.MessageHandler) models.Envelope[int] {
	fmt.Fprintf(a.out, "starting realtime sync as %s\n", a.DeviceID())
	return a.services.Realtime.Run(ctx, true, h)
}

// Run executes mode. Modes other than status and test block until ctx is
// done.
func (a *App) Run(ctx context.Context, mode string) error {
	a.logger.Info().Str("mode", mode).Str("device_id", a.DeviceID()).Msg("client started")

	switch mode {
	case config.ModeStatus:
		return a.PrintStatusReport(ctx, a.out)
	case config.ModeTest:
		return a.runTest(ctx)
	case config.ModeSync:
		return a.runSync(ctx)
	case config.ModeMonitor:
		return a.runMonitor(ctx)
	case config.ModeDashboard:
		if a.dashboard == nil {
			return ErrNoDashboard
		}
		return a.dashboard.Run(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func (a *App) runTest(ctx context.Context) error {
	fmt.Fprintln(a.out, "=== function test ===")
	fmt.Fprintln(a.out, "1. create text item")

	created := a.CreateText(ctx, "go-clip-sync test at "+time.Now().Format(time.DateTime))
	if !created.Success {
		fmt.Fprintf(a.out, "   result: failed (%s)\n", created.Message)
		return fmt.Errorf("%w: %s", ErrTestFailed, created.Message)
	}
	fmt.Fprintln(a.out, "   result: ok")
	fmt.Fprintf(a.out, "   item id: %s\n", created.Data.ID)

	return a.PrintStatusReport(ctx, a.out)
}

// runSync links the local clipboard with the service: local changes are
// pushed by the watcher, pushed text is written locally by the bridge.
func (a *App) runSync(ctx context.Context) error {
	bridge := a.services.Bridge
	for _, t := range []models.MessageType{models.MsgSync, models.MsgSyncContent, models.MsgContentUpdate} {
		a.services.Realtime.RegisterHandler(t, bridge.Apply)
	}

	a.services.PruneJob.Start(ctx, 0)
	defer a.services.PruneJob.Stop()

	workerCtx, stopWorkers := context.WithCancel(ctx)
	background := workers.NewWorkers(
		workers.NewClipboardWatcher(a.board, bridge, a.cfg.Workers.ClipboardPollInterval, nil, a.logger),
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		background.Run(workerCtx)
	}()
	defer func() {
		stopWorkers()
		<-done
	}()

	monitor := service.NewMessageMonitor(a.out, nil, a.logger)
	return a.realtimeResult(ctx, a.StartRealtimeSync(ctx, monitor.Handle))
}

func (a *App) runMonitor(ctx context.Context) error {
	monitor := service.NewMessageMonitor(a.out, a.storages.History, a.logger)
	return a.realtimeResult(ctx, a.StartRealtimeSync(ctx, monitor.Handle))
}

func (a *App) realtimeResult(ctx context.Context, env models.Envelope[int]) error {
	fmt.Fprintf(a.out, "realtime sync finished: %s (%d messages)\n", env.Message, env.Data)
	if env.Success || ctx.Err() != nil {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrRealtimeStopped, env.Message)
}
