// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T, cfg config.Server) *service.Services {
	t.Helper()
	services, err := service.NewServices(store.NewServerStorages(cfg, logger.Nop()), cfg,
		models.NewAppBuildInfo("dev", "", ""), logger.Nop())
	require.NoError(t, err)
	return services
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Server
		wantErr bool
	}{
		{name: "http only", cfg: config.Server{HTTPAddress: ":3001"}},
		{name: "separate websocket address", cfg: config.Server{HTTPAddress: ":3001", WSAddress: ":3002"}},
		{name: "no addresses", cfg: config.Server{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(newTestServices(t, tt.cfg), tt.cfg, logger.Nop())
			if tt.wantErr {
				assert.ErrorIs(t, err, errNoRoutes)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, h.HTTP)
			t.Cleanup(h.HTTP.Close)
			assert.NotNil(t, h.HTTP.Hub())
		})
	}
}
