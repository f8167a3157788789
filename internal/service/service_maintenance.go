// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/internal/validators"
	"github.com/MKhiriev/go-clip-sync/models"
)

const (
	DefaultAutoCleanupDays = 30
	DefaultMaxFileCount    = 100
)

type maintenanceService struct {
	items     store.ItemRepository
	validator validators.Validator
	now       func() time.Time

	mu              sync.Mutex
	cfg             models.UserConfig
	lastFileCleanup time.Time

	logger *logger.Logger
}

// NewMaintenanceService starts from the server limits in cfg: MaxItems is the
// store capacity and the shared key, when set, is reported as websocket
// security.
func NewMaintenanceService(items store.ItemRepository, cfg config.Server, logger *logger.Logger) MaintenanceService {
	secured := cfg.AuthKey != ""
	return &maintenanceService{
		items:     items,
		validator: validators.NewClipboardValidator(),
		now:       time.Now,
		cfg: models.UserConfig{
			MaxItems:        ptrTo(cfg.MaxItems),
			AutoCleanupDays: ptrTo(DefaultAutoCleanupDays),
			FileCleanup: &models.FileCleanup{
				Enabled:      ptrTo(false),
				MaxFileCount: ptrTo(DefaultMaxFileCount),
				Strategy:     models.OldestFirst,
			},
			WebsocketSecurity: &models.WebsocketSecurity{Enabled: &secured, Key: cfg.AuthKey},
		},
		logger: logger,
	}
}

func ptrTo[T any](v T) *T { return &v }

func (s *maintenanceService) ClientConfig(ctx context.Context) models.ClientConfig {
	cfg := s.snapshot()
	return models.ClientConfig{
		"maxItems":          *cfg.MaxItems,
		"maxTextLength":     config.DefaultMaxTextLength,
		"pageLimit":         models.DefaultPageLimit,
		"maxPageLimit":      models.MaxPageLimit,
		"securityEnabled":   *cfg.WebsocketSecurity.Enabled,
		"supportedTypes":    []models.ItemType{models.ItemText, models.ItemImage, models.ItemFile},
		"autoCleanupDays":   *cfg.AutoCleanupDays,
		"fileCleanupActive": *cfg.FileCleanup.Enabled,
	}
}

func (s *maintenanceService) UserConfig(ctx context.Context) (models.UserConfig, error) {
	return s.snapshot(), nil
}

// snapshot returns a deep copy of the current configuration.
func (s *maintenanceService) snapshot() models.UserConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneUserConfig(s.cfg)
}

func cloneUserConfig(c models.UserConfig) models.UserConfig {
	out := models.UserConfig{
		MaxItems:        ptrTo(*c.MaxItems),
		AutoCleanupDays: ptrTo(*c.AutoCleanupDays),
	}
	fc := *c.FileCleanup
	fc.Enabled = ptrTo(*fc.Enabled)
	fc.MaxFileCount = ptrTo(*fc.MaxFileCount)
	out.FileCleanup = &fc

	ws := *c.WebsocketSecurity
	ws.Enabled = ptrTo(*ws.Enabled)
	ws.Value = ""
	out.WebsocketSecurity = &ws
	return out
}

func (s *maintenanceService) UpdateUserConfig(ctx context.Context, patch models.UserConfig) (models.UserConfig, error) {
	if err := s.validator.Validate(ctx, patch); err != nil {
		return models.UserConfig{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	s.mu.Lock()
	if patch.MaxItems != nil {
		s.cfg.MaxItems = ptrTo(*patch.MaxItems)
	}
	if patch.AutoCleanupDays != nil {
		s.cfg.AutoCleanupDays = ptrTo(*patch.AutoCleanupDays)
	}
	if fc := patch.FileCleanup; fc != nil {
		if fc.Enabled != nil {
			s.cfg.FileCleanup.Enabled = ptrTo(*fc.Enabled)
		}
		if fc.MaxFileCount != nil {
			s.cfg.FileCleanup.MaxFileCount = ptrTo(*fc.MaxFileCount)
		}
		if fc.Strategy != "" {
			s.cfg.FileCleanup.Strategy = fc.Strategy
		}
	}
	maxItems := *s.cfg.MaxItems
	s.mu.Unlock()

	if patch.MaxItems != nil {
		evicted, err := s.items.SetCapacity(ctx, maxItems)
		if err != nil {
			return models.UserConfig{}, fmt.Errorf("apply max items: %w", err)
		}
		s.logger.Info().Int("max_items", maxItems).Int("evicted", evicted).Msg("store capacity changed")
	}

	return s.snapshot(), nil
}

func (s *maintenanceService) Cleanup(ctx context.Context, req models.CleanupRequest) (models.CleanupResult, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if req.Empty() {
		days := *s.snapshot().AutoCleanupDays
		if days <= 0 {
			return s.result(ctx, 0)
		}
		req.BeforeDate = models.BeforeDateFor(s.now().UTC(), days)
	}

	all, err := s.items.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("cleanup: %w", err)
	}

	doomed := make(map[models.ItemID]struct{})
	if req.MaxCount > 0 && len(all) > req.MaxCount {
		for _, item := range all[req.MaxCount:] {
			doomed[item.ID] = struct{}{}
		}
	}
	if req.BeforeDate != "" {
		cutoff, _ := time.Parse(models.DateLayout, req.BeforeDate)
		for _, item := range all {
			if item.CreatedAt != nil && item.CreatedAt.Before(cutoff) {
				doomed[item.ID] = struct{}{}
			}
		}
	}
	if req.MaxFileCount > 0 {
		for _, id := range overflowFiles(all, req.MaxFileCount, req.FileCleanupStrategy) {
			doomed[id] = struct{}{}
		}
	}

	return s.remove(ctx, doomed)
}

// overflowFiles returns the ids of file and image items beyond keep. The
// victims are the oldest ones, or the largest ones for largest_first.
func overflowFiles(all []models.ClipboardItem, keep int, strategy models.CleanupStrategy) []models.ItemID {
	files := make([]models.ClipboardItem, 0, len(all))
	for _, item := range all {
		if item.Type != models.ItemText {
			files = append(files, item)
		}
	}
	if len(files) <= keep {
		return nil
	}

	// all is newest first; keep the head and drop the tail
	if strategy == models.LargestFirst {
		slices.SortStableFunc(files, func(a, b models.ClipboardItem) int {
			return cmp.Compare(a.FileSize, b.FileSize)
		})
	}

	ids := make([]models.ItemID, 0, len(files)-keep)
	for _, item := range files[keep:] {
		ids = append(ids, item.ID)
	}
	return ids
}

func (s *maintenanceService) remove(ctx context.Context, doomed map[models.ItemID]struct{}) (models.CleanupResult, error) {
	deleted := 0
	if len(doomed) > 0 {
		ids := make([]models.ItemID, 0, len(doomed))
		for id := range doomed {
			ids = append(ids, id)
		}
		var err error
		if deleted, err = s.items.Delete(ctx, ids...); err != nil {
			return nil, fmt.Errorf("delete items: %w", err)
		}
	}

	s.logger.Info().Int("deleted", deleted).Msg("cleanup finished")
	return s.result(ctx, deleted)
}

func (s *maintenanceService) result(ctx context.Context, deleted int) (models.CleanupResult, error) {
	left, err := s.items.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return models.CleanupResult{"deletedCount": deleted, "remainingCount": len(left)}, nil
}

func (s *maintenanceService) ClearAll(ctx context.Context) (models.CleanupResult, error) {
	n, err := s.items.Clear(ctx)
	if err != nil {
		return nil, fmt.Errorf("clear all: %w", err)
	}
	s.logger.Info().Int("deleted", n).Msg("store cleared")
	return models.CleanupResult{"deletedCount": n}, nil
}

func (s *maintenanceService) StorageStats(ctx context.Context) (models.StorageStats, error) {
	all, err := s.items.List(ctx, nil)
	if err != nil {
		return models.StorageStats{}, fmt.Errorf("storage stats: %w", err)
	}

	stats := models.StorageStats{TotalItems: len(all)}
	for _, item := range all {
		switch item.Type {
		case models.ItemText:
			stats.TextItems++
		case models.ItemImage:
			stats.ImageItems++
		case models.ItemFile:
			stats.FileItems++
		}
		stats.TotalSize += item.FileSize
	}
	return stats, nil
}

func (s *maintenanceService) FileStats(ctx context.Context) (models.FileStats, error) {
	files, err := s.items.List(ctx, func(item models.ClipboardItem) bool {
		return item.Type != models.ItemText
	})
	if err != nil {
		return models.FileStats{}, fmt.Errorf("file stats: %w", err)
	}

	stats := models.FileStats{TotalFiles: len(files), FileCount: len(files)}
	for _, f := range files {
		stats.TotalSize += f.FileSize
	}
	stats.DirectorySize = stats.TotalSize
	return stats, nil
}

func (s *maintenanceService) CleanupFiles(ctx context.Context) (models.CleanupResult, error) {
	fc := *s.snapshot().FileCleanup

	s.mu.Lock()
	s.lastFileCleanup = s.now().UTC()
	s.mu.Unlock()

	if !*fc.Enabled {
		return s.result(ctx, 0)
	}

	all, err := s.items.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("file cleanup: %w", err)
	}

	doomed := make(map[models.ItemID]struct{})
	for _, id := range overflowFiles(all, *fc.MaxFileCount, fc.Strategy) {
		doomed[id] = struct{}{}
	}
	return s.remove(ctx, doomed)
}

func (s *maintenanceService) CleanupStatus(ctx context.Context) (models.CleanupStatus, error) {
	fc := *s.snapshot().FileCleanup

	s.mu.Lock()
	last := s.lastFileCleanup
	s.mu.Unlock()

	status := models.CleanupStatus{IsScheduled: *fc.Enabled}
	if !last.IsZero() {
		status.LastRun = last.Format(time.RFC3339)
	}
	return status, nil
}
