// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
)

// DefaultPollInterval is used by [Watch] when interval is not positive.
const DefaultPollInterval = 500 * time.Millisecond

// Watch polls cb every interval and sends each new non-blank text on the
// returned channel. The content present when Watch starts is not reported.
// The channel is closed once ctx is done.
//
// Read errors are logged at debug level and polling continues; a clipboard
// that is locked by another process is common on Windows.
func Watch(ctx context.Context, cb Clipboard, interval time.Duration, log *logger.Logger) <-chan string {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	out := make(chan string)
	last, _ := cb.Read()

	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			text, err := cb.Read()
			if err != nil {
				log.Debug().Err(err).Str("func", "clipboard.Watch").Msg("clipboard read failed")
				continue
			}
			if text == last {
				continue
			}
			last = text
			if strings.TrimSpace(text) == "" {
				continue
			}

			select {
			case out <- text:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
