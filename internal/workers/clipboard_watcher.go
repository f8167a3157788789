// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/clipboard"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/models"
)

// ClipboardWatcher pushes local clipboard changes through the bridge.
type ClipboardWatcher struct {
	board    clipboard.Clipboard
	bridge   service.ClipboardBridge
	interval time.Duration
	onPush   func(models.Envelope[models.ClipboardItem])
	logger   *logger.Logger
}

// NewClipboardWatcher polls board every interval. onPush, when not nil,
// receives the outcome of every push attempt.
func NewClipboardWatcher(
	board clipboard.Clipboard,
	bridge service.ClipboardBridge,
	interval time.Duration,
	onPush func(models.Envelope[models.ClipboardItem]),
	log *logger.Logger,
) *ClipboardWatcher {
	return &ClipboardWatcher{
		board:    board,
		bridge:   bridge,
		interval: interval,
		onPush:   onPush,
		logger:   log,
	}
}

func (w *ClipboardWatcher) Run(ctx context.Context) {
	for text := range clipboard.Watch(ctx, w.board, w.interval, w.logger) {
		if !w.bridge.Enabled() {
			continue
		}

		env := w.bridge.Push(ctx, text)
		if env.Success {
			w.logger.Info().Str("item_id", env.Data.ID.String()).Msg("clipboard pushed")
		} else {
			w.logger.Debug().Str("reason", env.Message).Msg("clipboard push skipped")
		}
		if w.onPush != nil {
			w.onPush(env)
		}
	}
}
