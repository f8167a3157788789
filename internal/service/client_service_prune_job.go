// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
)

// DefaultPruneInterval is used when Start gets a non-positive interval.
const DefaultPruneInterval = 10 * time.Minute

// HistoryPruner trims the journal down to its configured size.
type HistoryPruner interface {
	Prune(ctx context.Context) (int64, error)
}

type clientPruneJob struct {
	pruner HistoryPruner
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientPruneJob creates a job that calls pruner.Prune on a ticker. The
// job is idle until Start is called.
func NewClientPruneJob(pruner HistoryPruner, log *logger.Logger) ClientPruneJob {
	return &clientPruneJob{pruner: pruner, logger: log}
}

// Start implements ClientPruneJob. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *clientPruneJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPruneInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				removed, err := j.pruner.Prune(jobCtx)
				if err != nil {
					j.logger.Warn().Err(err).Str("func", "clientPruneJob").Msg("history prune failed")
					continue
				}
				if removed > 0 {
					j.logger.Debug().Int64("removed", removed).Msg("history pruned")
				}
			}
		}
	}()
}

// Stop implements ClientPruneJob. It is a no-op when the job is not running.
func (j *clientPruneJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
