// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server runs the REST and WebSocket listeners of the development server.
type Server interface {
	// RunServer blocks until a stop signal arrives.
	RunServer()

	// Run blocks until ctx is done or a listener fails.
	Run(ctx context.Context) error

	// Shutdown closes WebSocket clients and stops every listener.
	Shutdown()

	// Addrs returns the bound listen addresses, REST first.
	Addrs() []string
}
