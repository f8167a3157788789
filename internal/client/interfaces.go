// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client runs one of the client modes until it finishes or ctx is done.
type Client interface {
	Run(ctx context.Context, mode string) error
}

// Dashboard is the interactive terminal view started by the dashboard mode.
type Dashboard interface {
	Run(ctx context.Context) error
}
