// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownMode     = errors.New("unknown client mode")
	ErrNoDashboard     = errors.New("dashboard is not available")
	ErrRealtimeStopped = errors.New("realtime sync stopped")
	ErrTestFailed      = errors.New("function test failed")
)
