// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EndpointStatus is the reachability of one side of the service.
type EndpointStatus struct {
	Running      bool             `json:"running"`
	Message      string           `json:"message"`
	ResponseTime time.Duration    `json:"responseTime,omitempty"`
	Stats        *ConnectionStats `json:"stats,omitempty"`
}

// ServiceStatus aggregates HTTP and WebSocket reachability.
type ServiceStatus struct {
	HTTPAPI   EndpointStatus `json:"httpApi"`
	WebSocket EndpointStatus `json:"websocket"`
	Overall   bool           `json:"overall"`
}

// SystemInfo gathers the configuration and statistics views of the service.
// A nil field means the corresponding call failed.
type SystemInfo struct {
	ClientConfig ClientConfig  `json:"clientConfig,omitempty"`
	UserConfig   *UserConfig   `json:"userConfig,omitempty"`
	StorageStats *StorageStats `json:"storageStats,omitempty"`
	FileStats    *FileStats    `json:"fileStats,omitempty"`
}

// ClipboardSummary is the overview printed by the status report.
type ClipboardSummary struct {
	TotalItems  int             `json:"totalItems"`
	TextItems   int             `json:"textItems"`
	ImageItems  int             `json:"imageItems"`
	FileItems   int             `json:"fileItems"`
	LatestItems []ClipboardItem `json:"latestItems"`
	Devices     []Device        `json:"devices"`
}

// SummaryLatestCount is the number of items shown in a summary.
const SummaryLatestCount = 5
