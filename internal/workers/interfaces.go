// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the client and a
// Workers aggregate that runs them together.
package workers

import "context"

// Worker is a background task. Run blocks until ctx is done or the work is
// finished.
type Worker interface {
	Run(ctx context.Context)
}
