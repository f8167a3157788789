// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/clipboard"
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/store"
)

type ClientServices struct {
	Health    HealthService
	Clipboard ClipboardService
	Devices   DeviceService
	Settings  SettingsService
	Files     FilesService
	Realtime  RealtimeService
	Bridge    ClipboardBridge
	PruneJob  ClientPruneJob
}

func NewClientServices(
	cfg *config.ClientConfig,
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	dialer adapter.RealtimeDialer,
	board clipboard.Clipboard,
	log *logger.Logger,
) *ClientServices {
	clipboardSvc := NewClientClipboardService(serverAdapter, log)

	return &ClientServices{
		Health:    NewClientHealthService(serverAdapter, log),
		Clipboard: clipboardSvc,
		Devices:   NewClientDeviceService(serverAdapter, log),
		Settings:  NewClientSettingsService(serverAdapter, log),
		Files:     NewClientFilesService(serverAdapter, log),
		Realtime:  NewClientRealtimeService(dialer, cfg.App.DeviceID, log),
		Bridge:    NewClipboardBridge(clipboardSvc, board, storages.History, cfg.App.DeviceID, cfg.Workers, log),
		PruneJob:  NewClientPruneJob(storages, log),
	}
}
