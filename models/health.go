// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HealthReport is the result of GET /api/health.
type HealthReport struct {
	Status    string `json:"status,omitempty"`
	Message   string `json:"message,omitempty"`
	Version   string `json:"version,omitempty"`
	Uptime    any    `json:"uptime,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`

	// ResponseTime is measured by the client around the request.
	ResponseTime time.Duration `json:"responseTime"`
}
