// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Direction tells whether a journal entry was sent or received.
type Direction string

const (
	DirectionOut Direction = "out"
	DirectionIn  Direction = "in"
)

// HistoryEntry is one row of the local history journal.
type HistoryEntry struct {
	ID          int64       `json:"id"`
	Direction   Direction   `json:"direction"`
	MessageType MessageType `json:"messageType"`
	ItemID      ItemID      `json:"itemId,omitempty"`
	ItemType    ItemType    `json:"itemType,omitempty"`
	DeviceID    string      `json:"deviceId,omitempty"`
	Fingerprint string      `json:"fingerprint,omitempty"`
	Preview     string      `json:"preview,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}
