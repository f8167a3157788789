// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/MKhiriev/go-clip-sync/internal/clipboard"
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
	"golang.org/x/time/rate"
)

const bridgePreview = 80

type clipboardBridge struct {
	items    ClipboardService
	board    clipboard.Clipboard
	journal  store.HistoryRepository
	deviceID string

	maxTextLength int
	limiter       *rate.Limiter
	enabled       atomic.Bool

	// last is the fingerprint of the text most recently pushed or applied.
	mu   sync.Mutex
	last string

	logger *logger.Logger
}

// NewClipboardBridge links board with the service. Pushes are limited to
// cfg.PushRate per second with a burst of cfg.PushBurst; a non-positive rate
// disables the limit. The bridge starts enabled.
func NewClipboardBridge(
	items ClipboardService,
	board clipboard.Clipboard,
	journal store.HistoryRepository,
	deviceID string,
	cfg config.ClientWorkers,
	log *logger.Logger,
) ClipboardBridge {
	if journal == nil {
		journal = store.NewNopHistoryRepository()
	}

	limit := rate.Limit(cfg.PushRate)
	if cfg.PushRate <= 0 {
		limit = rate.Inf
	}
	burst := cfg.PushBurst
	if burst <= 0 {
		burst = 1
	}
	maxLen := cfg.MaxTextLength
	if maxLen <= 0 {
		maxLen = config.DefaultMaxTextLength
	}

	b := &clipboardBridge{
		items:         items,
		board:         board,
		journal:       journal,
		deviceID:      deviceID,
		maxTextLength: maxLen,
		limiter:       rate.NewLimiter(limit, burst),
		logger:        log,
	}
	b.enabled.Store(true)
	return b
}

func (b *clipboardBridge) Enabled() bool {
	return b.enabled.Load()
}

func (b *clipboardBridge) SetEnabled(enabled bool) {
	b.enabled.Store(enabled)
	b.logger.Info().Bool("enabled", enabled).Msg("clipboard sync toggled")
}

func (b *clipboardBridge) seen(fp string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last == fp
}

// swap stores fp as the last fingerprint and returns the previous one.
func (b *clipboardBridge) swap(fp string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev := b.last
	b.last = fp
	return prev
}

func (b *clipboardBridge) Push(ctx context.Context, text string) models.Envelope[models.ClipboardItem] {
	switch {
	case !b.Enabled():
		return failure[models.ClipboardItem](ErrSyncPaused)
	case strings.TrimSpace(text) == "":
		return failure[models.ClipboardItem](ErrEmptyContent)
	case utf8.RuneCountInString(text) > b.maxTextLength:
		return failure[models.ClipboardItem](fmt.Errorf("%w: %d characters", ErrTextTooLong, b.maxTextLength))
	}

	fp := utils.Fingerprint(text)
	if b.seen(fp) {
		return failure[models.ClipboardItem](ErrDuplicateContent)
	}

	if err := b.limiter.Wait(ctx); err != nil {
		return failure[models.ClipboardItem](fmt.Errorf("%w: %w", ErrPushRateExceeded, err))
	}

	created := b.items.CreateText(ctx, text, b.deviceID)
	if !created.Success {
		return created
	}
	b.swap(fp)

	item := created.Data
	entry := models.HistoryEntry{
		Direction:   models.DirectionOut,
		MessageType: models.MsgSync,
		ItemID:      item.ID,
		ItemType:    models.ItemText,
		DeviceID:    b.deviceID,
		Fingerprint: fp,
		Preview:     models.ClipboardItem{Type: models.ItemText, Content: text}.Preview(bridgePreview),
	}
	if err := b.journal.Save(ctx, entry); err != nil {
		b.logger.Warn().Err(err).Str("func", "clipboardBridge.Push").Msg("journal write failed")
	}

	return created
}

func (b *clipboardBridge) Apply(ctx context.Context, msg models.WSMessage) error {
	if !b.Enabled() || !msg.IsSyncPush() {
		return nil
	}
	if _, failed := msg.SyncError(); failed {
		return nil
	}

	item, err := msg.Item()
	if err != nil {
		return err
	}
	if item.Type != models.ItemText || item.Content == "" || item.DeviceID == b.deviceID {
		return nil
	}

	fp := utils.Fingerprint(item.Content)
	prev := b.swap(fp)
	if prev == fp {
		return nil
	}

	if err = b.board.Write(item.Content); err != nil {
		b.swap(prev)
		return fmt.Errorf("%w: %w", ErrClipboardNotApplied, err)
	}

	entry := models.HistoryEntry{
		Direction:   models.DirectionIn,
		MessageType: msg.Type,
		ItemID:      item.ID,
		ItemType:    item.Type,
		DeviceID:    item.DeviceID,
		Fingerprint: fp,
		Preview:     item.Preview(bridgePreview),
	}
	if err = b.journal.Save(ctx, entry); err != nil {
		b.logger.Warn().Err(err).Str("func", "clipboardBridge.Apply").Msg("journal write failed")
	}

	b.logger.Debug().Str("from", item.DeviceID).Msg("clipboard updated from service")
	return nil
}
