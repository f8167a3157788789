// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
)

type clientSettingsService struct {
	adapter adapter.ServerAdapter
	now     func() time.Time
	logger  *logger.Logger
}

func NewClientSettingsService(serverAdapter adapter.ServerAdapter, log *logger.Logger) SettingsService {
	return &clientSettingsService{adapter: serverAdapter, now: time.Now, logger: log}
}

func (s *clientSettingsService) ClientConfig(ctx context.Context) models.Envelope[models.ClientConfig] {
	reply, err := s.adapter.ClientConfig(ctx)
	s.logFailure(err, "ClientConfig")
	return fold(reply, err, "client config fetched")
}

func (s *clientSettingsService) UserConfig(ctx context.Context) models.Envelope[models.UserConfig] {
	reply, err := s.adapter.UserConfig(ctx)
	s.logFailure(err, "UserConfig")
	return fold(reply, err, "user config fetched")
}

func (s *clientSettingsService) UpdateUserConfig(ctx context.Context, cfg models.UserConfig) models.Envelope[models.UserConfig] {
	reply, err := s.adapter.UpdateUserConfig(ctx, cfg)
	s.logFailure(err, "UpdateUserConfig")
	return fold(reply, err, "user config updated")
}

func (s *clientSettingsService) Cleanup(ctx context.Context, req models.CleanupRequest) models.Envelope[models.CleanupResult] {
	if req.FileCleanupStrategy != "" && !req.FileCleanupStrategy.Valid() {
		return failure[models.CleanupResult](ErrInvalidStrategy)
	}

	reply, err := s.adapter.Cleanup(ctx, req)
	s.logFailure(err, "Cleanup")
	return fold(reply, err, "cleanup finished")
}

func (s *clientSettingsService) CleanupByDays(ctx context.Context, days int) models.Envelope[models.CleanupResult] {
	if days <= 0 {
		return failure[models.CleanupResult](ErrInvalidCount)
	}
	return s.Cleanup(ctx, models.CleanupRequest{BeforeDate: models.BeforeDateFor(s.now(), days)})
}

func (s *clientSettingsService) CleanupByCount(ctx context.Context, maxCount int) models.Envelope[models.CleanupResult] {
	if maxCount <= 0 {
		return failure[models.CleanupResult](ErrInvalidCount)
	}
	return s.Cleanup(ctx, models.CleanupRequest{MaxCount: maxCount})
}

func (s *clientSettingsService) CleanupFilesByCount(ctx context.Context, maxFiles int, strategy models.CleanupStrategy) models.Envelope[models.CleanupResult] {
	if maxFiles <= 0 {
		return failure[models.CleanupResult](ErrInvalidCount)
	}
	if !strategy.Valid() {
		return failure[models.CleanupResult](fmt.Errorf("%w: %q", ErrInvalidStrategy, strategy))
	}
	return s.Cleanup(ctx, models.CleanupRequest{MaxFileCount: maxFiles, FileCleanupStrategy: strategy})
}

func (s *clientSettingsService) ClearAll(ctx context.Context) models.Envelope[models.CleanupResult] {
	reply, err := s.adapter.ClearAll(ctx)
	s.logFailure(err, "ClearAll")
	return fold(reply, err, "all content cleared")
}

func (s *clientSettingsService) StorageStats(ctx context.Context) models.Envelope[models.StorageStats] {
	reply, err := s.adapter.StorageStats(ctx)
	s.logFailure(err, "StorageStats")
	return fold(reply, err, "storage stats fetched")
}

func (s *clientSettingsService) SetMaxItems(ctx context.Context, n int) models.Envelope[models.UserConfig] {
	if n <= 0 {
		return failure[models.UserConfig](ErrInvalidCount)
	}
	return s.UpdateUserConfig(ctx, models.UserConfig{MaxItems: &n})
}

func (s *clientSettingsService) SetAutoCleanupDays(ctx context.Context, days int) models.Envelope[models.UserConfig] {
	if days <= 0 {
		return failure[models.UserConfig](ErrInvalidCount)
	}
	return s.UpdateUserConfig(ctx, models.UserConfig{AutoCleanupDays: &days})
}

func (s *clientSettingsService) EnableFileCleanup(ctx context.Context, maxFiles int, strategy models.CleanupStrategy) models.Envelope[models.UserConfig] {
	if maxFiles <= 0 {
		return failure[models.UserConfig](ErrInvalidCount)
	}
	if !strategy.Valid() {
		return failure[models.UserConfig](fmt.Errorf("%w: %q", ErrInvalidStrategy, strategy))
	}

	enabled := true
	return s.UpdateUserConfig(ctx, models.UserConfig{
		FileCleanup: &models.FileCleanup{
			Enabled:      &enabled,
			MaxFileCount: &maxFiles,
			Strategy:     strategy,
		},
	})
}

func (s *clientSettingsService) DisableFileCleanup(ctx context.Context) models.Envelope[models.UserConfig] {
	enabled := false
	return s.UpdateUserConfig(ctx, models.UserConfig{
		FileCleanup: &models.FileCleanup{Enabled: &enabled},
	})
}

func (s *clientSettingsService) logFailure(err error, method string) {
	if err == nil {
		return
	}
	s.logger.Err(err).
		Str("func", "clientSettingsService."+method).
		Int("status", adapter.StatusCode(err)).
		Msg("settings request failed")
}
