// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
)

type appInfoService struct {
	appVersion string
	startedAt  time.Time
	now        func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if info.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: info.BuildVersion(),
		startedAt:  time.Now(),
		now:        time.Now,
		logger:     logger,
	}, nil
}

// Health reports the version and the uptime in whole seconds.
func (s *appInfoService) Health(ctx context.Context) models.HealthReport {
	now := s.now()
	return models.HealthReport{
		Status:    "ok",
		Message:   "clipboard sync server is running",
		Version:   s.appVersion,
		Uptime:    int64(now.Sub(s.startedAt) / time.Second),
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}
