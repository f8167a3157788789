// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewDeviceID returns an id of the form "<os>-client-<yyyymmddHHMMSS>-<suffix>".
// The random suffix keeps ids apart when several clients start in the same
// second.
func NewDeviceID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return runtime.GOOS + "-client-" + now.Format("20060102150405") + "-" + suffix
}

// NewItemID returns a time-ordered UUIDv7 for a stored clipboard item, so ids
// sort in creation order. It falls back to a random UUID.
func NewItemID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// MaskSecret hides all but the first three characters of v.
func MaskSecret(v string) string {
	runes := []rune(v)
	if len(runes) <= 3 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:3]) + strings.Repeat("*", len(runes)-3)
}
