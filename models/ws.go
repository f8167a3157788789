// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// MessageType is the "type" field of a WebSocket frame.
type MessageType string

// Frames sent by the client.
const (
	MsgGetAllContent MessageType = "get_all_content"
	MsgGetAllText    MessageType = "get_all_text"
	MsgGetAllImages  MessageType = "get_all_images"
	MsgGetLatest     MessageType = "get_latest"
	MsgSync          MessageType = "sync"
	MsgDelete        MessageType = "delete"
)

// Frames pushed by the service. MsgSync and MsgDelete travel both ways.
const (
	MsgAllContent         MessageType = "all_content"
	MsgAllText            MessageType = "all_text"
	MsgAllImages          MessageType = "all_images"
	MsgLatest             MessageType = "latest"
	MsgConnectionStats    MessageType = "connection_stats"
	MsgWelcome            MessageType = "welcome"
	MsgError              MessageType = "error"
	MsgDeviceConnected    MessageType = "device_connected"
	MsgDeviceDisconnected MessageType = "device_disconnected"
	MsgServerInfo         MessageType = "server_info"
	MsgPing               MessageType = "ping"
	MsgHeartbeat          MessageType = "heartbeat"

	// legacy names of a sync push
	MsgSyncContent   MessageType = "sync_content"
	MsgContentUpdate MessageType = "content_update"
)

// DefaultContentLimit is the number of items requested right after connecting.
const DefaultContentLimit = 50

// WSMessage is a single WebSocket frame in either direction.
type WSMessage struct {
	Type     MessageType `json:"type"`
	ID       ItemID      `json:"id,omitempty"`
	Count    int         `json:"count,omitempty"`
	DeviceID string      `json:"deviceId,omitempty"`
	Message  string      `json:"message,omitempty"`
	Data     RawData     `json:"data,omitempty"`
	Info     RawData     `json:"info,omitempty"`
}

// NewMessage builds an outbound frame, encoding data into the data field.
func NewMessage(t MessageType, data any) (WSMessage, error) {
	msg := WSMessage{Type: t}
	if data == nil {
		return msg, nil
	}

	raw, err := marshalRaw(data)
	if err != nil {
		return WSMessage{}, fmt.Errorf("encode %s payload: %w", t, err)
	}
	msg.Data = raw
	return msg, nil
}

// ContentQuery is the data of a get_all_content frame.
type ContentQuery struct {
	Limit    int      `json:"limit"`
	Type     ItemType `json:"type,omitempty"`
	Search   string   `json:"search,omitempty"`
	DeviceID string   `json:"deviceId,omitempty"`
}

// syncFailure is the shape of a sync push that reports a rejected sync.
type syncFailure struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Item decodes the data of a sync push.
func (m WSMessage) Item() (ClipboardItem, error) {
	var item ClipboardItem
	if err := m.Data.Decode(&item); err != nil {
		return ClipboardItem{}, fmt.Errorf("decode %s item: %w", m.Type, err)
	}
	return item, nil
}

// Items decodes the data of all_content, all_text, all_images and latest
// pushes.
func (m WSMessage) Items() ([]ClipboardItem, error) {
	var page ItemPage
	if err := m.Data.Decode(&page); err != nil {
		return nil, fmt.Errorf("decode %s items: %w", m.Type, err)
	}
	return page.Items, nil
}

// Stats decodes the data of a connection_stats push.
func (m WSMessage) Stats() (ConnectionStats, error) {
	var stats ConnectionStats
	if err := m.Data.Decode(&stats); err != nil {
		return ConnectionStats{}, fmt.Errorf("decode %s stats: %w", m.Type, err)
	}
	return stats, nil
}

// SyncError returns the failure text carried by a sync push, if any.
func (m WSMessage) SyncError() (string, bool) {
	if m.Type != MsgSync && m.Type != MsgSyncContent && m.Type != MsgContentUpdate {
		return "", false
	}

	var f syncFailure
	if err := m.Data.Decode(&f); err != nil {
		return "", false
	}
	if f.Error != "" {
		return f.Error, true
	}
	return "", false
}

// IsSyncPush reports whether the frame announces new clipboard content.
func (m WSMessage) IsSyncPush() bool {
	switch m.Type {
	case MsgSync, MsgSyncContent, MsgContentUpdate:
		return true
	}
	return false
}
