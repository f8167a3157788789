// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/etc/clipsync.json",

		"APP_DEVICE_ID": "desk-1",
		"APP_MODE":      "sync",
		"APP_LOG_LEVEL": "warn",

		"ADAPTER_HTTP_ADDRESS":    "http://10.0.0.5:3001",
		"ADAPTER_WS_ADDRESS":      "ws://10.0.0.5:3002/ws",
		"ADAPTER_AUTH_KEY":        "X-Clip-Key",
		"ADAPTER_AUTH_VALUE":      "s3cret",
		"ADAPTER_HEADERS":         "X-Env:test,X-Team:ops",
		"ADAPTER_REQUEST_TIMEOUT": "7s",
		"ADAPTER_PING_INTERVAL":   "15s",

		"STORAGE_DB_DSN":             "history.db",
		"STORAGE_FILES_DOWNLOAD_DIR": "/tmp/dl",

		"WORKERS_CLIPBOARD_POLL_INTERVAL": "250ms",
		"WORKERS_MAX_TEXT_LENGTH":         "512",
		"WORKERS_PUSH_RATE":               "0.5",

		"SERVER_ADDRESS":   "127.0.0.1:3001",
		"SERVER_MAX_ITEMS": "50",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/etc/clipsync.json", cfg.JSONFilePath)

	assert.Equal(t, "desk-1", cfg.App.DeviceID)
	assert.Equal(t, "sync", cfg.App.Mode)
	assert.Equal(t, "warn", cfg.App.LogLevel)

	assert.Equal(t, "http://10.0.0.5:3001", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "ws://10.0.0.5:3002/ws", cfg.Adapter.WSAddress)
	assert.Equal(t, "X-Clip-Key", cfg.Adapter.AuthKey)
	assert.Equal(t, "s3cret", cfg.Adapter.AuthValue)
	assert.Equal(t, map[string]string{"X-Env": "test", "X-Team": "ops"}, cfg.Adapter.Headers)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Adapter.PingInterval)

	assert.Equal(t, "history.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/dl", cfg.Storage.Files.DownloadDir)

	assert.Equal(t, 250*time.Millisecond, cfg.Workers.ClipboardPollInterval)
	assert.Equal(t, 512, cfg.Workers.MaxTextLength)
	assert.InDelta(t, 0.5, cfg.Workers.PushRate, 1e-9)

	assert.Equal(t, "127.0.0.1:3001", cfg.Server.HTTPAddress)
	assert.Equal(t, 50, cfg.Server.MaxItems)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
