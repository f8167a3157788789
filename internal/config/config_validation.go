// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

func (cfg *ClientConfig) validate() error {
	if !slices.Contains(Modes, cfg.App.Mode) {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidAppConfigs, cfg.App.Mode)
	}
	if cfg.App.DeviceID == "" {
		return fmt.Errorf("%w: empty device id", ErrInvalidAppConfigs)
	}

	a := cfg.Adapter
	if a.HTTPAddress == "" || a.WSAddress == "" {
		return fmt.Errorf("%w: service addresses are required", ErrInvalidAdapterConfigs)
	}
	if a.RequestTimeout <= 0 || a.HealthTimeout <= 0 || a.FileTimeout <= 0 ||
		a.CleanupTimeout <= 0 || a.WSConnectTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidAdapterConfigs)
	}
	if a.PingInterval <= 0 || a.PongTimeout <= 0 {
		return fmt.Errorf("%w: ping interval and pong timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if (a.AuthKey == "") != (a.AuthValue == "") {
		return fmt.Errorf("%w: auth key and auth value go together", ErrInvalidAdapterConfigs)
	}

	if cfg.Storage.DB.DSN != "" && cfg.Storage.DB.HistoryLimit <= 0 {
		return fmt.Errorf("%w: history limit must be positive", ErrInvalidStorageConfigs)
	}

	w := cfg.Workers
	if w.ClipboardPollInterval <= 0 || w.StatsInterval <= 0 {
		return fmt.Errorf("%w: intervals must be positive", ErrInvalidWorkerConfigs)
	}
	if w.MaxTextLength <= 0 {
		return fmt.Errorf("%w: max text length must be positive", ErrInvalidWorkerConfigs)
	}
	if w.PushRate <= 0 || w.PushBurst <= 0 {
		return fmt.Errorf("%w: push rate and burst must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: listen address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}
	if cfg.Server.MaxItems <= 0 {
		return fmt.Errorf("%w: max items must be positive", ErrInvalidServerConfigs)
	}
	if (cfg.Server.AuthKey == "") != (cfg.Server.AuthValue == "") {
		return fmt.Errorf("%w: auth key and auth value go together", ErrInvalidServerConfigs)
	}

	return nil
}
