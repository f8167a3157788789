// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CleanupStrategy selects which files go first when the file count is capped.
type CleanupStrategy string

const (
	OldestFirst  CleanupStrategy = "oldest_first"
	LargestFirst CleanupStrategy = "largest_first"
)

// Valid reports whether s is a strategy the service understands.
func (s CleanupStrategy) Valid() bool {
	return s == OldestFirst || s == LargestFirst
}

// ClientConfig is the opaque client configuration published by the service.
type ClientConfig map[string]any

// FileCleanup is the automatic file cleanup section of [UserConfig].
type FileCleanup struct {
	Enabled      *bool           `json:"enabled,omitempty"`
	MaxFileCount *int            `json:"maxFileCount,omitempty"`
	Strategy     CleanupStrategy `json:"strategy,omitempty"`
}

// WebsocketSecurity is the shared-key section of [UserConfig].
type WebsocketSecurity struct {
	Enabled *bool  `json:"enabled,omitempty"`
	Key     string `json:"key,omitempty"`
	Value   string `json:"value,omitempty"`
}

// UserConfig is the user-editable configuration of the service. Pointer and
// omitempty fields allow partial updates.
type UserConfig struct {
	MaxItems          *int               `json:"maxItems,omitempty"`
	AutoCleanupDays   *int               `json:"autoCleanupDays,omitempty"`
	FileCleanup       *FileCleanup       `json:"fileCleanup,omitempty"`
	WebsocketSecurity *WebsocketSecurity `json:"websocketSecurity,omitempty"`
}

// CleanupRequest is the body of POST /api/config/cleanup. An empty request is
// sent without a body and makes the service remove expired content only.
type CleanupRequest struct {
	MaxCount            int             `json:"maxCount,omitempty"`
	BeforeDate          string          `json:"beforeDate,omitempty"`
	MaxFileCount        int             `json:"maxFileCount,omitempty"`
	FileCleanupStrategy CleanupStrategy `json:"fileCleanupStrategy,omitempty"`
}

// Empty reports whether no criterion is set.
func (r CleanupRequest) Empty() bool {
	return r == CleanupRequest{}
}

// DateLayout is the day format of CleanupRequest.BeforeDate.
const DateLayout = "2006-01-02"

// BeforeDateFor returns the cutoff date that is days before now.
func BeforeDateFor(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format(DateLayout)
}

// CleanupResult is the service answer to a cleanup or clear-all request.
type CleanupResult map[string]any

// StorageStats is the payload of GET /api/config/stats.
type StorageStats struct {
	TotalItems int   `json:"totalItems"`
	TextItems  int   `json:"textItems"`
	ImageItems int   `json:"imageItems"`
	FileItems  int   `json:"fileItems"`
	TotalSize  int64 `json:"totalSize,omitempty"`
}
