// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
)

// ServerStorages groups the repositories of the development server.
type ServerStorages struct {
	Items ItemRepository
}

// NewServerStorages builds the in-memory item store, capped at cfg.MaxItems.
func NewServerStorages(cfg config.Server, log *logger.Logger) *ServerStorages {
	log.Info().Int("max_items", cfg.MaxItems).Msg("in-memory item store created")
	return &ServerStorages{
		Items: NewMemoryItemRepository(cfg.MaxItems, log),
	}
}
