// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-clip-sync/models"

type statusLoadedMsg struct {
	status models.ServiceStatus
}

type itemsLoadedMsg struct {
	env models.Envelope[models.ItemPage]
}

type devicesMsg struct {
	env models.Envelope[models.DeviceList]
}

// wsEventMsg carries one message received on the WebSocket.
type wsEventMsg struct {
	msg models.WSMessage
}

type pushResultMsg struct {
	env models.Envelope[models.ClipboardItem]
}

type realtimeStoppedMsg struct {
	env models.Envelope[int]
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
