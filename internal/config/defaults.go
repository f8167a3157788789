// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values of the remote service endpoints and of the timeouts that the
// service documents for each class of call.
const (
	DefaultHTTPAddress = "http://localhost:3001"
	DefaultWSAddress   = "ws://localhost:3002/ws"

	DefaultRequestTimeout   = 10 * time.Second
	DefaultHealthTimeout    = 5 * time.Second
	DefaultFileTimeout      = 60 * time.Second
	DefaultCleanupTimeout   = 120 * time.Second
	DefaultWSConnectTimeout = 10 * time.Second
	DefaultPingInterval     = 30 * time.Second
	DefaultPongTimeout      = 10 * time.Second

	DefaultClipboardPollInterval = 500 * time.Millisecond
	DefaultMaxTextLength         = 10000
	DefaultPushRate              = 2.0
	DefaultPushBurst             = 4
	DefaultStatsInterval         = 5 * time.Second

	DefaultHistoryLimit = 1000
	DefaultMode         = ModeStatus
	DefaultLogLevel     = "info"

	DefaultServerHTTPAddress = "localhost:3001"
	DefaultServerWSAddress   = "localhost:3002"
	DefaultServerMaxItems    = 1000
)

// Client run modes.
const (
	ModeStatus    = "status"
	ModeSync      = "sync"
	ModeTest      = "test"
	ModeMonitor   = "monitor"
	ModeDashboard = "dashboard"
)

// Modes lists every valid client mode.
var Modes = []string{ModeStatus, ModeSync, ModeTest, ModeMonitor, ModeDashboard}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Mode:     DefaultMode,
			LogLevel: DefaultLogLevel,
		},
		Adapter: Adapter{
			HTTPAddress:      DefaultHTTPAddress,
			WSAddress:        DefaultWSAddress,
			RequestTimeout:   DefaultRequestTimeout,
			HealthTimeout:    DefaultHealthTimeout,
			FileTimeout:      DefaultFileTimeout,
			CleanupTimeout:   DefaultCleanupTimeout,
			WSConnectTimeout: DefaultWSConnectTimeout,
			PingInterval:     DefaultPingInterval,
			PongTimeout:      DefaultPongTimeout,
		},
		Storage: Storage{
			DB:    DB{HistoryLimit: DefaultHistoryLimit},
			Files: Files{DownloadDir: "downloads"},
		},
		Server: Server{
			HTTPAddress:    DefaultServerHTTPAddress,
			WSAddress:      DefaultServerWSAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxItems:       DefaultServerMaxItems,
		},
		Workers: Workers{
			ClipboardPollInterval: DefaultClipboardPollInterval,
			MaxTextLength:         DefaultMaxTextLength,
			PushRate:              DefaultPushRate,
			PushBurst:             DefaultPushBurst,
			StatsInterval:         DefaultStatsInterval,
		},
	}
}
