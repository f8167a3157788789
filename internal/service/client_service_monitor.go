// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
)

const (
	// DefaultMonitorHistory is the number of messages a monitor remembers.
	DefaultMonitorHistory = 200

	monitorItemPreview = 100
	monitorListPreview = 80
	monitorListShown   = 3
)

// MessageMonitor prints a one-line summary of every inbound WebSocket
// message, remembers the most recent ones and journals received sync and
// delete pushes. Handle has the [MessageHandler] signature.
type MessageMonitor struct {
	out     io.Writer
	journal store.HistoryRepository
	now     func() time.Time
	logger  *logger.Logger

	mu      sync.Mutex
	history []models.WSMessage
	limit   int
}

// NewMessageMonitor writes to out. A nil journal disables journaling.
func NewMessageMonitor(out io.Writer, journal store.HistoryRepository, log *logger.Logger) *MessageMonitor {
	if out == nil {
		out = io.Discard
	}
	if journal == nil {
		journal = store.NewNopHistoryRepository()
	}
	return &MessageMonitor{
		out:     out,
		journal: journal,
		now:     time.Now,
		logger:  log,
		limit:   DefaultMonitorHistory,
	}
}

// Handle implements [MessageHandler].
func (m *MessageMonitor) Handle(ctx context.Context, msg models.WSMessage) error {
	m.remember(msg)

	if _, err := fmt.Fprintf(m.out, "[%s] %s\n", m.now().Format(time.TimeOnly), DescribeMessage(msg)); err != nil {
		return fmt.Errorf("write monitor line: %w", err)
	}

	entry, ok := journalEntry(msg)
	if !ok {
		return nil
	}
	if err := m.journal.Save(ctx, entry); err != nil {
		m.logger.Warn().Err(err).Str("func", "MessageMonitor.Handle").Msg("journal write failed")
	}
	return nil
}

func (m *MessageMonitor) remember(msg models.WSMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append(m.history, msg)
	if over := len(m.history) - m.limit; over > 0 {
		m.history = append(m.history[:0:0], m.history[over:]...)
	}
}

// History returns the remembered messages, oldest first.
func (m *MessageMonitor) History() []models.WSMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.WSMessage, len(m.history))
	copy(out, m.history)
	return out
}

// DescribeMessage renders msg as a single human-readable line.
func DescribeMessage(msg models.WSMessage) string {
	switch {
	case msg.IsSyncPush():
		return describeSync(msg)
	case msg.Type == models.MsgDelete:
		id := msg.ID.String()
		if id == "" {
			id = "unknown"
		}
		return "item deleted: " + id
	case msg.Type == models.MsgAllContent, msg.Type == models.MsgAllText,
		msg.Type == models.MsgAllImages, msg.Type == models.MsgLatest:
		return describeList(msg)
	case msg.Type == models.MsgConnectionStats:
		stats, err := msg.Stats()
		if err != nil {
			return "connection stats: unreadable"
		}
		return fmt.Sprintf("connection stats: %d active connections", stats.ActiveConnections)
	case msg.Type == models.MsgDeviceConnected:
		return "device connected: " + models.DeviceDisplayName(msg.DeviceID)
	case msg.Type == models.MsgDeviceDisconnected:
		return "device disconnected: " + models.DeviceDisplayName(msg.DeviceID)
	case msg.Type == models.MsgError:
		return "error: " + msg.Message
	case msg.Type == models.MsgWelcome && msg.Message != "":
		return "welcome: " + msg.Message
	default:
		return "message received: " + string(msg.Type)
	}
}

func describeSync(msg models.WSMessage) string {
	if text, failed := msg.SyncError(); failed {
		return "sync error: " + text
	}

	item, err := msg.Item()
	if err != nil {
		return "sync: unreadable item"
	}
	if item.Type == "" {
		var ack struct {
			Message string `json:"message"`
		}
		if err = msg.Data.Decode(&ack); err == nil && ack.Message != "" {
			return "sync: " + ack.Message
		}
		return "sync: " + msg.Message
	}

	return fmt.Sprintf("new %s item: %s", item.Type, item.Preview(monitorItemPreview))
}

func describeList(msg models.WSMessage) string {
	items, err := msg.Items()
	if err != nil {
		return fmt.Sprintf("%s: unreadable items", msg.Type)
	}

	count := msg.Count
	if count == 0 {
		count = len(items)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d items", msg.Type, count)
	for i, item := range items {
		if i == monitorListShown {
			break
		}
		created := ""
		if item.CreatedAt != nil {
			created = item.CreatedAt.Format(time.DateTime) + " "
		}
		fmt.Fprintf(&b, " | %d. %s%s: %s", i+1, created, item.Type, item.Preview(monitorListPreview))
	}
	return b.String()
}

// journalEntry maps inbound sync and delete pushes to journal rows.
func journalEntry(msg models.WSMessage) (models.HistoryEntry, bool) {
	switch {
	case msg.Type == models.MsgDelete:
		return models.HistoryEntry{
			Direction:   models.DirectionIn,
			MessageType: msg.Type,
			ItemID:      msg.ID,
			DeviceID:    msg.DeviceID,
		}, true
	case msg.IsSyncPush():
		if _, failed := msg.SyncError(); failed {
			return models.HistoryEntry{}, false
		}
		item, err := msg.Item()
		if err != nil || item.Type == "" {
			return models.HistoryEntry{}, false
		}
		entry := models.HistoryEntry{
			Direction:   models.DirectionIn,
			MessageType: msg.Type,
			ItemID:      item.ID,
			ItemType:    item.Type,
			DeviceID:    item.DeviceID,
			Preview:     item.Preview(monitorListPreview),
		}
		if item.Type == models.ItemText {
			entry.Fingerprint = utils.Fingerprint(item.Content)
		}
		return entry, true
	}
	return models.HistoryEntry{}, false
}
