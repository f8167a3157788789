// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"unicode"
)

// ConnectionStats is the payload of GET /api/devices/connections and of the
// connection_stats WebSocket push.
type ConnectionStats struct {
	TotalConnections  int            `json:"totalConnections"`
	ActiveConnections int            `json:"activeConnections"`
	DeviceConnections map[string]int `json:"deviceConnections,omitempty"`
	ConnectedDevices  []string       `json:"connectedDevices,omitempty"`
}

// Device is one entry of the derived device list.
type Device struct {
	DeviceID        string `json:"deviceId"`
	ConnectionCount int    `json:"connectionCount"`
	IsActive        bool   `json:"isActive"`
}

// DisplayName returns a short label for the device id.
//
// Known id shapes are condensed: "device_<ts>_<suffix>" shows the suffix,
// "<platform>-client-<yyyymmdd...>" shows "Platform(MM-DD)", and long ids are
// cut to 15 characters.
func (d Device) DisplayName() string {
	return DeviceDisplayName(d.DeviceID)
}

// DeviceDisplayName is the function form of [Device.DisplayName].
func DeviceDisplayName(id string) string {
	if id == "" {
		return "unknown device"
	}

	if strings.HasPrefix(id, "device_") {
		parts := strings.Split(id, "_")
		switch {
		case len(parts) >= 3:
			return parts[len(parts)-1]
		case len(parts) == 2:
			ts := parts[1]
			if len(ts) > 6 {
				ts = ts[:6]
			}
			return "device " + ts
		}
	}

	if platform, ts, ok := strings.Cut(id, "-client-"); ok && platform != "" {
		name := []rune(platform)
		name[0] = unicode.ToUpper(name[0])
		if len(ts) >= 8 {
			return string(name) + "(" + ts[4:6] + "-" + ts[6:8] + ")"
		}
		return string(name) + " client"
	}

	if id == "cs" {
		return "console"
	}

	if runes := []rune(id); len(runes) > 20 {
		return string(runes[:15]) + "..."
	}
	return id
}

// DeviceList is the device view derived from [ConnectionStats].
type DeviceList struct {
	Devices           []Device `json:"devices"`
	TotalDevices      int      `json:"totalDevices"`
	TotalConnections  int      `json:"totalConnections"`
	ActiveConnections int      `json:"activeConnections"`
}

// DeviceListFromStats derives the device list: every connected device, with
// its connection count taken from DeviceConnections, marked active.
func DeviceListFromStats(stats ConnectionStats) DeviceList {
	devices := make([]Device, 0, len(stats.ConnectedDevices))
	for _, id := range stats.ConnectedDevices {
		devices = append(devices, Device{
			DeviceID:        id,
			ConnectionCount: stats.DeviceConnections[id],
			IsActive:        true,
		})
	}

	return DeviceList{
		Devices:           devices,
		TotalDevices:      len(devices),
		TotalConnections:  stats.TotalConnections,
		ActiveConnections: stats.ActiveConnections,
	}
}

// ServerProbe reports whether the WebSocket server of the service is up.
type ServerProbe struct {
	Running bool            `json:"running"`
	Stats   ConnectionStats `json:"stats"`
}
