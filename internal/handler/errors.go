// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var errNoRoutes = errors.New("http handler not mounted: REST and WebSocket addresses are empty")
