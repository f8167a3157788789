// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
)

func (m dashboardModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.info, m.deviceID)
	}

	var body string
	switch m.tab {
	case tabStatus:
		body = m.viewStatus()
	case tabDevices:
		body = m.viewDevices()
	case tabItems:
		body = m.viewItems()
	case tabLog:
		body = m.viewLog()
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	b.WriteString(body)

	if m.notice != "" {
		b.WriteString("\n\nstatus: " + m.notice)
	}
	if m.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render("error: "+m.errMsg))
	}

	title := "CLIPBOARD SYNC  " + m.deviceID
	if m.loading {
		title += "  " + m.spinner.View()
	}
	return renderPage(title, b.String(), m.hotKeys())
}

func (m dashboardModel) viewTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.tab {
			parts = append(parts, activeTabStyle.Render("["+name+"]"))
		} else {
			parts = append(parts, tabStyle.Render(" "+name+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m dashboardModel) hotKeys() string {
	keys := "tab: next │ r: refresh │ s: pause/resume sync │ v: about"
	if m.tab == tabItems {
		keys += " │ ↑/↓: nav. │ c: copy"
	}
	return keys
}

func (m dashboardModel) viewStatus() string {
	if !m.statusLoaded {
		return "checking services..."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "HTTP API:   %s", upOrDown(m.status.HTTPAPI.Running))
	if m.status.HTTPAPI.Running {
		fmt.Fprintf(&b, " (%d ms)", m.status.HTTPAPI.ResponseTime.Milliseconds())
	}
	fmt.Fprintf(&b, "\nWebSocket:  %s", upOrDown(m.status.WebSocket.Running))
	if stats := m.status.WebSocket.Stats; stats != nil {
		fmt.Fprintf(&b, " (%d active, %d total)", stats.ActiveConnections, stats.TotalConnections)
	}

	sync := "on"
	if !m.services.Bridge.Enabled() {
		sync = "paused"
	}
	fmt.Fprintf(&b, "\nclipboard sync: %s", sync)
	fmt.Fprintf(&b, "\nstored items: %d", m.totalItems)
	return b.String()
}

func (m dashboardModel) viewDevices() string {
	if len(m.devices.Devices) == 0 {
		return "no devices connected"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d devices, %d active connections\n\n", m.devices.TotalDevices, m.devices.ActiveConnections)
	b.WriteString("Device           │ Connections │ Id\n")
	b.WriteString("─────────────────┼─────────────┼────────────────────────\n")
	for _, d := range m.devices.Devices {
		name := d.DisplayName()
		if d.DeviceID == m.deviceID {
			name += " *"
		}
		fmt.Fprintf(&b, "%-16s │ %-11d │ %s\n", fitText(name, 16), d.ConnectionCount, d.DeviceID)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m dashboardModel) viewItems() string {
	if len(m.items) == 0 {
		return "no items"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "showing %d of %d\n\n", len(m.items), m.totalItems)
	b.WriteString("  Type  │ Size      │ Device          │ Content\n")
	b.WriteString("────────┼───────────┼─────────────────┼──────────────────────────\n")
	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		fmt.Fprintf(&b, "%s %-5s │ %-9s │ %-15s │ %s\n",
			cursor,
			item.Type,
			formatSize(item.FileSize),
			fitText(valueOrDash(item.DeviceID), 15),
			item.Preview(40),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m dashboardModel) viewLog() string {
	if len(m.events) == 0 {
		return "no events yet"
	}
	const visible = 15
	from := max(len(m.events)-visible, 0)
	return strings.Join(m.events[from:], "\n")
}
