// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the façade over the client services. App composes the
// per-endpoint services into status reports and convenience calls, and runs
// the CLI modes: status, sync, test, monitor and dashboard.
package client
