// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-clip-sync/internal/clipboard"
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/internal/workers"
	"github.com/MKhiriev/go-clip-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the interactive dashboard. While it runs it keeps the local
// clipboard in sync and streams WebSocket events into its log tab.
type TUI struct {
	services *service.ClientServices
	board    clipboard.Clipboard
	deviceID string
	info     models.AppBuildInfo
	cfg      config.ClientWorkers

	logger *logger.Logger
}

func New(
	services *service.ClientServices,
	board clipboard.Clipboard,
	deviceID string,
	info models.AppBuildInfo,
	cfg config.ClientWorkers,
	log *logger.Logger,
) *TUI {
	return &TUI{
		services: services,
		board:    board,
		deviceID: deviceID,
		info:     info,
		cfg:      cfg,
		logger:   log,
	}
}

// Run shows the dashboard until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newDashboardModel(ctx, t.services, t.board, t.deviceID, t.info)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	for _, mt := range []models.MessageType{models.MsgSync, models.MsgSyncContent, models.MsgContentUpdate} {
		t.services.Realtime.RegisterHandler(mt, t.services.Bridge.Apply)
	}

	background := workers.NewWorkers(
		workers.NewClipboardWatcher(t.board, t.services.Bridge, t.cfg.ClipboardPollInterval, func(env models.Envelope[models.ClipboardItem]) {
			program.Send(pushResultMsg{env: env})
		}, t.logger),
		workers.NewStatsPoller(t.services.Devices, t.cfg.StatsInterval, func(env models.Envelope[models.DeviceList]) {
			program.Send(devicesMsg{env: env})
		}),
		&realtimeListener{realtime: t.services.Realtime, program: program},
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		background.Run(ctx)
	}()

	t.services.PruneJob.Start(ctx, 0)
	defer t.services.PruneJob.Stop()

	_, err := program.Run()
	cancel()
	wg.Wait()

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// realtimeListener forwards every WebSocket message to the program.
type realtimeListener struct {
	realtime service.RealtimeService
	program  *tea.Program
}

func (l *realtimeListener) Run(ctx context.Context) {
	env := l.realtime.Run(ctx, true, func(_ context.Context, msg models.WSMessage) error {
		l.program.Send(wsEventMsg{msg: msg})
		return nil
	})
	if ctx.Err() == nil {
		l.program.Send(realtimeStoppedMsg{env: env})
	}
}
