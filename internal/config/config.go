// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the development server. It is populated by merging built-in
// defaults, environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity and runtime mode of the client process.
	App App `envPrefix:"APP_"`

	// Storage holds the local history journal and download settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses of the development server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote service addresses, credentials and timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the background job settings of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG. Flag: -c / --config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level client settings.
type App struct {
	// DeviceID identifies this client to the service. Generated when empty.
	// Env: APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// Mode selects what the client does: status, sync, test, monitor or
	// dashboard.
	// Env: APP_MODE
	Mode string `env:"MODE"`

	// LogLevel is one of debug, info, warn, error.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client writes its log. Defaults to a file next to
	// the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds everything the transport layer needs to reach the service.
type Adapter struct {
	// HTTPAddress is the base URL of the REST API (e.g. "http://localhost:3001").
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// WSAddress is the WebSocket endpoint (e.g. "ws://localhost:3002/ws").
	// Env: ADAPTER_WS_ADDRESS
	WSAddress string `env:"WS_ADDRESS"`

	// AuthKey and AuthValue form the optional API-key header "AuthKey: AuthValue".
	// Env: ADAPTER_AUTH_KEY, ADAPTER_AUTH_VALUE
	AuthKey   string `env:"AUTH_KEY"`
	AuthValue string `env:"AUTH_VALUE"`

	// Headers are extra headers attached to every request, "k:v,k2:v2".
	// Env: ADAPTER_HEADERS
	Headers map[string]string `env:"HEADERS"`

	// RequestTimeout bounds ordinary API calls.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HealthTimeout bounds GET /api/health.
	// Env: ADAPTER_HEALTH_TIMEOUT
	HealthTimeout time.Duration `env:"HEALTH_TIMEOUT"`

	// FileTimeout bounds file preview and download.
	// Env: ADAPTER_FILE_TIMEOUT
	FileTimeout time.Duration `env:"FILE_TIMEOUT"`

	// CleanupTimeout bounds the long-running cleanup endpoints.
	// Env: ADAPTER_CLEANUP_TIMEOUT
	CleanupTimeout time.Duration `env:"CLEANUP_TIMEOUT"`

	// WSConnectTimeout bounds the WebSocket handshake.
	// Env: ADAPTER_WS_CONNECT_TIMEOUT
	WSConnectTimeout time.Duration `env:"WS_CONNECT_TIMEOUT"`

	// PingInterval is the period of WebSocket pings; PongTimeout is how long
	// a pong may take before the connection is considered dead.
	// Env: ADAPTER_PING_INTERVAL, ADAPTER_PONG_TIMEOUT
	PingInterval time.Duration `env:"PING_INTERVAL"`
	PongTimeout  time.Duration `env:"PONG_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the history journal connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds where downloaded files are saved.
	Files Files `envPrefix:"FILES_"`
}

// DB holds the history journal connection settings.
type DB struct {
	// DSN is a SQLite file path or a postgres:// URL. An empty DSN disables
	// the journal.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`

	// HistoryLimit is the number of journal rows kept after pruning.
	// Env: STORAGE_DB_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`
}

// Files holds download settings.
type Files struct {
	// DownloadDir is the default directory for saved files.
	// Env: STORAGE_FILES_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Server holds listen settings of the development server.
type Server struct {
	// HTTPAddress is the REST listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// WSAddress is the WebSocket listen address in "host:port" form. When
	// empty the WebSocket endpoint is served on HTTPAddress.
	// Env: SERVER_WS_ADDRESS
	WSAddress string `env:"WS_ADDRESS"`

	// RequestTimeout bounds a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AuthKey and AuthValue enable the shared-key check when both are set.
	// Env: SERVER_AUTH_KEY, SERVER_AUTH_VALUE
	AuthKey   string `env:"AUTH_KEY"`
	AuthValue string `env:"AUTH_VALUE"`

	// MaxItems caps the in-memory clipboard store.
	// Env: SERVER_MAX_ITEMS
	MaxItems int `env:"MAX_ITEMS"`
}

// Workers holds background job settings of the client.
type Workers struct {
	// ClipboardPollInterval is how often the OS clipboard is read.
	// Env: WORKERS_CLIPBOARD_POLL_INTERVAL
	ClipboardPollInterval time.Duration `env:"CLIPBOARD_POLL_INTERVAL"`

	// MaxTextLength is the longest clipboard text that is pushed.
	// Env: WORKERS_MAX_TEXT_LENGTH
	MaxTextLength int `env:"MAX_TEXT_LENGTH"`

	// PushRate is the sustained number of pushes per second; PushBurst is the
	// number of pushes allowed at once.
	// Env: WORKERS_PUSH_RATE, WORKERS_PUSH_BURST
	PushRate  float64 `env:"PUSH_RATE"`
	PushBurst int     `env:"PUSH_BURST"`

	// StatsInterval is how often connection statistics are refreshed.
	// Env: WORKERS_STATS_INTERVAL
	StatsInterval time.Duration `env:"STATS_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (later non-zero fields win):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
