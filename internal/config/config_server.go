// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the development server view of [StructuredConfig].
type ServerConfig struct {
	Server   Server
	LogLevel string
}

// GetServerConfig builds and validates the development server configuration.
func GetServerConfig(flags *Flags) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{Server: cfg.Server, LogLevel: cfg.App.LogLevel}
	return serverCfg, serverCfg.validate()
}
