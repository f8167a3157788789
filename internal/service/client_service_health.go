// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
)

type clientHealthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientHealthService(serverAdapter adapter.ServerAdapter, log *logger.Logger) HealthService {
	return &clientHealthService{adapter: serverAdapter, logger: log}
}

func (h *clientHealthService) Check(ctx context.Context) models.Envelope[models.HealthReport] {
	reply, err := h.adapter.Health(ctx)
	if err != nil {
		h.logger.Debug().Err(err).Str("func", "clientHealthService.Check").Msg("health check failed")
	}
	return fold(reply, err, "ok")
}

// CheckServiceStatus probes the HTTP API and the WebSocket server. Overall is
// true only when both answer.
func CheckServiceStatus(ctx context.Context, health HealthService, devices DeviceService) models.ServiceStatus {
	reply := health.Check(ctx)
	probe := devices.ProbeWebSocketServer(ctx)

	status := models.ServiceStatus{
		HTTPAPI: models.EndpointStatus{
			Running:      reply.Success,
			Message:      reply.Message,
			ResponseTime: reply.Data.ResponseTime,
		},
		WebSocket: models.EndpointStatus{
			Running: probe.Success && probe.Data.Running,
			Message: probe.Message,
		},
	}
	if status.WebSocket.Running {
		stats := probe.Data.Stats
		status.WebSocket.Stats = &stats
	}
	status.Overall = status.HTTPAPI.Running && status.WebSocket.Running
	return status
}
