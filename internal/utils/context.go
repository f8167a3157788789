// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the client and the
// development server: typed context keys, device ids, content fingerprints,
// secret masking, JSON response writing and the HTTP client wrapper.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys from other packages
// never collide with ours.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// DeviceIDCtxKey is the context key holding the id of the device that issued
// a request.
var DeviceIDCtxKey = contextKey("deviceID")

// WithDeviceID returns a copy of ctx carrying deviceID.
func WithDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, DeviceIDCtxKey, deviceID)
}

// GetDeviceIDFromContext returns the device id stored in ctx and whether a
// non-empty one was found.
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDCtxKey).(string)
	return deviceID, ok && deviceID != ""
}
