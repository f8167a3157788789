// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
)

type clientDeviceService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientDeviceService(serverAdapter adapter.ServerAdapter, log *logger.Logger) DeviceService {
	return &clientDeviceService{adapter: serverAdapter, logger: log}
}

func (d *clientDeviceService) ConnectionStats(ctx context.Context) models.Envelope[models.ConnectionStats] {
	reply, err := d.adapter.ConnectionStats(ctx)
	if err != nil {
		d.logger.Debug().Err(err).Str("func", "clientDeviceService.ConnectionStats").Msg("connection stats failed")
	}
	return fold(reply, err, "connection stats fetched")
}

func (d *clientDeviceService) Devices(ctx context.Context) models.Envelope[models.DeviceList] {
	stats := d.ConnectionStats(ctx)
	if !stats.Success {
		return relabel(stats, models.DeviceList{}, "")
	}

	list := models.DeviceListFromStats(stats.Data)
	return relabel(stats, list, fmt.Sprintf("fetched %d devices", list.TotalDevices))
}

func (d *clientDeviceService) ProbeWebSocketServer(ctx context.Context) models.Envelope[models.ServerProbe] {
	reply, err := d.adapter.ConnectionStats(ctx)
	switch {
	case err == nil:
		return models.OK(models.ServerProbe{Running: true, Stats: reply.Data}, "websocket server is running", reply.StatusCode)
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return models.Fail[models.ServerProbe]("websocket server is not running", http.StatusServiceUnavailable)
	default:
		d.logger.Debug().Err(err).Str("func", "clientDeviceService.ProbeWebSocketServer").Msg("probe failed")
		return failure[models.ServerProbe](err)
	}
}
