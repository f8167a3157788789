// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
)

type Handler struct {
	services *service.Services
	hub      *Hub

	authKey   string
	authValue string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Bool("security_key", cfg.AuthKey != "").Msg("http handler created")
	return &Handler{
		services:  services,
		hub:       NewHub(services.ItemService, logger),
		authKey:   cfg.AuthKey,
		authValue: cfg.AuthValue,
		logger:    logger,
	}
}

// Hub returns the WebSocket hub shared by every route.
func (h *Handler) Hub() *Hub {
	return h.hub
}

// Close drops every WebSocket connection. Hijacked connections are not
// closed by http.Server.Shutdown.
func (h *Handler) Close() {
	h.hub.Close()
}
