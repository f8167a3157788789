// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyPruner считает вызовы Prune.
type spyPruner struct {
	calls atomic.Int64
	err   error
}

func (s *spyPruner) Prune(_ context.Context) (int64, error) {
	s.calls.Add(1)
	return 1, s.err
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientPruneJob_Start_CallsPrune(t *testing.T) {
	spy := &spyPruner{}
	job := NewClientPruneJob(spy, logger.Nop())
	require.NotNil(t, job)

	// Интервал 10ms, за 55ms должно быть ~5 тиков
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Prune должен быть вызван несколько раз, вызвано: %d", got)
}

func TestClientPruneJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyPruner{}
	job := NewClientPruneJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestClientPruneJob_StopWithoutStart(t *testing.T) {
	job := NewClientPruneJob(&spyPruner{}, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientPruneJob_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spyPruner{}
		job := NewClientPruneJob(spy, logger.Nop())

		// дефолт 10 минут, за 20ms вызовов нет
		job.Start(context.Background(), interval)
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Equal(t, int64(0), spy.calls.Load())
	}
}

func TestClientPruneJob_Restart(t *testing.T) {
	spy := &spyPruner{}
	job := NewClientPruneJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	before := spy.calls.Load()
	assert.Greater(t, before, int64(0))

	// Start повторно на том же job, внутри вызовет Stop()
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), before)
}

func TestClientPruneJob_ContextCancel(t *testing.T) {
	job := NewClientPruneJob(&spyPruner{}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestClientPruneJob_ErrorDoesNotStopJob(t *testing.T) {
	spy := &spyPruner{err: assert.AnError}
	job := NewClientPruneJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}
