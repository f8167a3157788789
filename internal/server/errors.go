// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoListeners means neither a REST nor a WebSocket address was configured.
var errNoListeners = errors.New("no listen address configured")
