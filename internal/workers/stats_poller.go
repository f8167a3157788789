// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/models"
)

const defaultStatsInterval = 5 * time.Second

// StatsPoller fetches the device list periodically and hands every result
// to sink. The first poll happens immediately.
type StatsPoller struct {
	devices  service.DeviceService
	interval time.Duration
	sink     func(models.Envelope[models.DeviceList])
}

func NewStatsPoller(devices service.DeviceService, interval time.Duration, sink func(models.Envelope[models.DeviceList])) *StatsPoller {
	if interval <= 0 {
		interval = defaultStatsInterval
	}
	return &StatsPoller{devices: devices, interval: interval, sink: sink}
}

func (p *StatsPoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		env := p.devices.Devices(ctx)
		if ctx.Err() != nil {
			return
		}
		p.sink(env)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
