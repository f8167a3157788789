// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/clipboard"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type tab int

const (
	tabStatus tab = iota
	tabDevices
	tabItems
	tabLog
)

var tabNames = []string{"status", "devices", "items", "log"}

const (
	// maxLogLines bounds the event log kept in memory.
	maxLogLines   = 200
	itemsPageSize = 20
	statusTTL     = 3 * time.Second
)

type dashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	board    clipboard.Clipboard
	deviceID string
	info     models.AppBuildInfo
	now      func() time.Time

	tab     tab
	spinner spinner.Model
	loading bool

	status       models.ServiceStatus
	statusLoaded bool
	devices      models.DeviceList
	items        []models.ClipboardItem
	totalItems   int
	idx          int
	events       []string

	notice        string
	errMsg        string
	showBuildInfo bool
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, board clipboard.Clipboard, deviceID string, info models.AppBuildInfo) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return dashboardModel{
		ctx:      ctx,
		services: services,
		board:    board,
		deviceID: deviceID,
		info:     info,
		now:      time.Now,
		spinner:  s,
		loading:  true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdRefresh())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case statusLoadedMsg:
		m.status = msg.status
		m.statusLoaded = true
		m.loading = false
		if msg.status.WebSocket.Stats != nil {
			m.devices = models.DeviceListFromStats(*msg.status.WebSocket.Stats)
		}
		if !msg.status.HTTPAPI.Running {
			m.errMsg = humanizeServerUnavailableError(msg.status.HTTPAPI.Message)
		}
		return m, nil
	case itemsLoadedMsg:
		if !msg.env.Success {
			m.errMsg = humanizeServerUnavailableError(msg.env.Message)
			return m, nil
		}
		m.items = msg.env.Data.Items
		m.totalItems = msg.env.Data.Total
		m.clampCursor()
		return m, nil
	case devicesMsg:
		if msg.env.Success {
			m.devices = msg.env.Data
		}
		return m, nil
	case wsEventMsg:
		m.logEvent(service.DescribeMessage(msg.msg))
		switch msg.msg.Type {
		case models.MsgConnectionStats:
			if stats, err := msg.msg.Stats(); err == nil {
				m.devices = models.DeviceListFromStats(stats)
			}
		case models.MsgSync, models.MsgSyncContent, models.MsgContentUpdate, models.MsgDelete:
			return m, m.cmdLoadItems()
		}
		return m, nil
	case pushResultMsg:
		if msg.env.Success {
			m.logEvent("pushed: " + msg.env.Data.Preview(40))
			return m, m.cmdLoadItems()
		}
		m.logEvent("push skipped: " + msg.env.Message)
		return m, nil
	case realtimeStoppedMsg:
		m.logEvent(fmt.Sprintf("realtime stopped: %s", msg.env.Message))
		if !msg.env.Success {
			m.errMsg = humanizeServerUnavailableError(msg.env.Message)
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.notice = "copied to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.notice = ""
		return m, nil
	}
	return m, nil
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(msg, keys.tab):
		m.tab = (m.tab + 1) % tab(len(tabNames))
	case key.Matches(msg, keys.backtab):
		m.tab = (m.tab + tab(len(tabNames)) - 1) % tab(len(tabNames))
	case key.Matches(msg, keys.toggle):
		enabled := !m.services.Bridge.Enabled()
		m.services.Bridge.SetEnabled(enabled)
		if enabled {
			m.notice = "clipboard sync resumed"
		} else {
			m.notice = "clipboard sync paused"
		}
		m.logEvent(m.notice)
		return m, cmdClearStatus()
	case key.Matches(msg, keys.refresh):
		m.loading = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdRefresh())
	case key.Matches(msg, keys.up):
		if m.tab == tabItems && m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.tab == tabItems && m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.copy):
		if m.tab != tabItems {
			return m, nil
		}
		item, ok := m.current()
		if !ok {
			m.notice = "no items"
			return m, nil
		}
		return m, m.cmdCopy(item)
	}
	return m, nil
}

func (m *dashboardModel) logEvent(line string) {
	m.events = append(m.events, fmt.Sprintf("[%s] %s", m.now().Format(time.TimeOnly), line))
	if over := len(m.events) - maxLogLines; over > 0 {
		m.events = m.events[over:]
	}
}

func (m *dashboardModel) clampCursor() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m dashboardModel) current() (models.ClipboardItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.ClipboardItem{}, false
	}
	return m.items[m.idx], true
}

func (m dashboardModel) cmdRefresh() tea.Cmd {
	return tea.Batch(m.cmdLoadStatus(), m.cmdLoadItems())
}

func (m dashboardModel) cmdLoadStatus() tea.Cmd {
	ctx := m.ctx
	health, devices := m.services.Health, m.services.Devices

	return func() tea.Msg {
		return statusLoadedMsg{status: service.CheckServiceStatus(ctx, health, devices)}
	}
}

func (m dashboardModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Clipboard

	return func() tea.Msg {
		return itemsLoadedMsg{env: svc.List(ctx, models.ListQuery{Limit: itemsPageSize})}
	}
}

func (m dashboardModel) cmdCopy(item models.ClipboardItem) tea.Cmd {
	board := m.board

	return func() tea.Msg {
		if item.Type != models.ItemText {
			return copiedMsg{err: ErrNothingToCopy}
		}
		return copiedMsg{err: board.Write(item.Content)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
