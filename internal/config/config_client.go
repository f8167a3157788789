// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/utils"
)

// ClientApp holds identity and run mode of the client process.
type ClientApp struct {
	// DeviceID identifies this client to the service.
	DeviceID string
	// Mode is one of [Modes].
	Mode string
	// LogLevel and LogFile configure the client logger.
	LogLevel string
	LogFile  string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the REST base URL.
	HTTPAddress string
	// WSAddress is the WebSocket URL.
	WSAddress string
	// AuthKey and AuthValue form the optional API-key header.
	AuthKey   string
	AuthValue string
	// Headers are attached to every request.
	Headers map[string]string

	RequestTimeout   time.Duration
	HealthTimeout    time.Duration
	FileTimeout      time.Duration
	CleanupTimeout   time.Duration
	WSConnectTimeout time.Duration
	PingInterval     time.Duration
	PongTimeout      time.Duration
}

// SecurityHeaders returns the headers attached to every request: the extra
// headers plus the API-key header when one is configured.
func (a ClientAdapter) SecurityHeaders() map[string]string {
	headers := make(map[string]string, len(a.Headers)+1)
	for k, v := range a.Headers {
		headers[k] = v
	}
	if a.AuthKey != "" && a.AuthValue != "" {
		headers[a.AuthKey] = a.AuthValue
	}
	return headers
}

// ClientDB contains history journal settings.
type ClientDB struct {
	// DSN is a SQLite path or a postgres:// URL; empty disables the journal.
	DSN string
	// HistoryLimit is the number of rows kept after pruning.
	HistoryLimit int
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB          ClientDB
	DownloadDir string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	ClipboardPollInterval time.Duration
	MaxTextLength         int
	PushRate              float64
	PushBurst             int
	StatsInterval         time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration. A device id
// is generated when none was configured.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	deviceID := cfg.App.DeviceID
	if deviceID == "" {
		deviceID = utils.NewDeviceID(time.Now())
	}

	return &ClientConfig{
		App: ClientApp{
			DeviceID: deviceID,
			Mode:     cfg.App.Mode,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:      cfg.Adapter.HTTPAddress,
			WSAddress:        cfg.Adapter.WSAddress,
			AuthKey:          cfg.Adapter.AuthKey,
			AuthValue:        cfg.Adapter.AuthValue,
			Headers:          cfg.Adapter.Headers,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			HealthTimeout:    cfg.Adapter.HealthTimeout,
			FileTimeout:      cfg.Adapter.FileTimeout,
			CleanupTimeout:   cfg.Adapter.CleanupTimeout,
			WSConnectTimeout: cfg.Adapter.WSConnectTimeout,
			PingInterval:     cfg.Adapter.PingInterval,
			PongTimeout:      cfg.Adapter.PongTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:          cfg.Storage.DB.DSN,
				HistoryLimit: cfg.Storage.DB.HistoryLimit,
			},
			DownloadDir: cfg.Storage.Files.DownloadDir,
		},
		Workers: ClientWorkers{
			ClipboardPollInterval: cfg.Workers.ClipboardPollInterval,
			MaxTextLength:         cfg.Workers.MaxTextLength,
			PushRate:              cfg.Workers.PushRate,
			PushBurst:             cfg.Workers.PushBurst,
			StatsInterval:         cfg.Workers.StatsInterval,
		},
	}
}
