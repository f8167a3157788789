// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-clip-sync/models"
)

const (
	reportWidth       = 60
	reportDevices     = 3
	reportPreviewSize = 30
)

// PrintStatusReport writes the service status and the clipboard summary.
func (a *App) PrintStatusReport(ctx context.Context, w io.Writer) error {
	status := a.CheckServiceStatus(ctx)
	summary := a.ClipboardSummary(ctx)

	var b strings.Builder
	rule := strings.Repeat("=", reportWidth)

	fmt.Fprintf(&b, "\n%s\n%s\n%s\n", rule, center("clipboard sync status report", reportWidth), rule)

	b.WriteString("\nservice status:\n")
	fmt.Fprintf(&b, "  HTTP API: %s\n", okLabel(status.HTTPAPI.Running))
	if status.HTTPAPI.Running {
		fmt.Fprintf(&b, "    response time: %dms\n", status.HTTPAPI.ResponseTime.Milliseconds())
	} else if status.HTTPAPI.Message != "" {
		fmt.Fprintf(&b, "    %s\n", status.HTTPAPI.Message)
	}
	fmt.Fprintf(&b, "  WebSocket: %s\n", okLabel(status.WebSocket.Running))
	if stats := status.WebSocket.Stats; stats != nil {
		fmt.Fprintf(&b, "    total connections: %d\n", stats.TotalConnections)
		fmt.Fprintf(&b, "    active connections: %d\n", stats.ActiveConnections)
	}

	b.WriteString("\nclipboard summary:\n")
	fmt.Fprintf(&b, "  total items: %d\n", summary.TotalItems)
	fmt.Fprintf(&b, "  text: %d, images: %d, files: %d\n", summary.TextItems, summary.ImageItems, summary.FileItems)

	if len(summary.Devices) > 0 {
		fmt.Fprintf(&b, "  connected devices: %d\n", len(summary.Devices))
		for _, d := range summary.Devices[:min(reportDevices, len(summary.Devices))] {
			fmt.Fprintf(&b, "    - %s: %d connections\n", d.DisplayName(), d.ConnectionCount)
		}
	}

	if len(summary.LatestItems) > 0 {
		fmt.Fprintf(&b, "\nlatest items (first %d):\n", models.SummaryLatestCount)
		for i, item := range summary.LatestItems[:min(models.SummaryLatestCount, len(summary.LatestItems))] {
			fmt.Fprintf(&b, "  %d. [%s] %s\n", i+1, item.Type, item.Preview(reportPreviewSize))
		}
	}

	fmt.Fprintf(&b, "\n%s\n", rule)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write status report: %w", err)
	}
	return nil
}

func okLabel(ok bool) string {
	if ok {
		return "OK"
	}
	return "DOWN"
}

func center(s string, width int) string {
	if pad := (width - len(s)) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
