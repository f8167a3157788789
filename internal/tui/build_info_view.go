// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-clip-sync/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, deviceID string) string {
	rows := [][2]string{
		{"application", "go-clip-sync"},
		{"version", info.BuildVersion()},
		{"built", info.BuildDate()},
		{"commit", info.BuildCommit()},
		{"device", deviceID},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-12s %s", row[0]+":", valueOrNA(row[1])))
	}
	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
