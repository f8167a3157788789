// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Mode: ModeStatus, DeviceID: "first"}},
		&StructuredConfig{App: App{Mode: ModeSync}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ModeSync, cfg.App.Mode)
	assert.Equal(t, "first", cfg.App.DeviceID, "zero fields of a later source must not erase earlier values")
}

func TestWithDefaults_FillsEverything(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultWSAddress, cfg.Adapter.WSAddress)
	assert.Equal(t, DefaultPingInterval, cfg.Adapter.PingInterval)
	assert.Equal(t, DefaultPongTimeout, cfg.Adapter.PongTimeout)
	assert.Equal(t, DefaultClipboardPollInterval, cfg.Workers.ClipboardPollInterval)
	assert.Equal(t, DefaultMaxTextLength, cfg.Workers.MaxTextLength)
	assert.Equal(t, ModeStatus, cfg.App.Mode)
}

func TestWithFlags_Nil(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_Precedence(t *testing.T) {
	jsonPath := writeJSONFile(t, `{"adapter": {"timeouts": {"api_request": 20}}, "app": {"device_id": "from-json"}}`)

	t.Setenv("ADAPTER_HTTP_ADDRESS", "http://env-host:3001")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "4s")
	t.Setenv("APP_DEVICE_ID", "from-env")
	t.Setenv("CONFIG", jsonPath)

	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	flags := BindClientFlags(fs)
	require.NoError(t, fs.Parse([]string{"--base-url", "http://flag-host:3001", "--mode", "sync"}))

	cfg, err := GetClientConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "http://flag-host:3001", cfg.Adapter.HTTPAddress, "flags override env")
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout, "json overrides env")
	assert.Equal(t, "from-json", cfg.App.DeviceID)
	assert.Equal(t, ModeSync, cfg.App.Mode)
	assert.Equal(t, DefaultWSAddress, cfg.Adapter.WSAddress, "defaults fill the gaps")
}

func TestGetClientConfig_GeneratesDeviceID(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.Contains(t, cfg.App.DeviceID, "-client-")
}

func TestGetServerConfig_Defaults(t *testing.T) {
	cfg, err := GetServerConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultServerHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultServerWSAddress, cfg.Server.WSAddress)
}

func TestClientAdapter_SecurityHeaders(t *testing.T) {
	a := ClientAdapter{
		AuthKey:   "X-Key",
		AuthValue: "v",
		Headers:   map[string]string{"X-Env": "dev"},
	}
	assert.Equal(t, map[string]string{"X-Key": "v", "X-Env": "dev"}, a.SecurityHeaders())

	assert.Empty(t, ClientAdapter{AuthKey: "X-Key"}.SecurityHeaders())
}
