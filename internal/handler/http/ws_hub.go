// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxFrameSize   = 64 << 20
	sendBufferSize = 64
	latestDefault  = 10
)

// Hub tracks open WebSocket connections and fans pushes out to them.
type Hub struct {
	items    service.ItemService
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*wsClient]struct{}
	total   int
	closed  bool

	logger *logger.Logger
}

type wsClient struct {
	hub      *Hub
	conn     *websocket.Conn
	deviceID string
	send     chan []byte
	logger   *logger.Logger
}

func NewHub(items service.ItemService, logger *logger.Logger) *Hub {
	return &Hub{
		items: items,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// clients are CLIs and local tools, not pages from another origin
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*wsClient]struct{}),
		logger:  logger,
	}
}

func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	h.hub.ServeWS(w, r)
}

// ServeWS upgrades the request and serves the connection until it closes.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		_, _ = utils.WriteFailure(w, "server is shutting down", http.StatusServiceUnavailable)
		return
	}

	deviceID, _ := utils.GetDeviceIDFromContext(r.Context())
	if deviceID == "" {
		deviceID = utils.NewDeviceID(time.Now())
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already answered with an error status
		logger.FromRequest(r).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &wsClient{
		hub:      h,
		conn:     conn,
		deviceID: deviceID,
		send:     make(chan []byte, sendBufferSize),
		logger:   &logger.Logger{Logger: h.logger.With().Str("device_id", deviceID).Logger()},
	}

	h.register(c)
	go c.writePump()
	c.readPump(r.Context())
	h.unregister(c)
}

func (h *Hub) register(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c] = struct{}{}
	h.total++

	h.deliverLocked(c, models.WSMessage{
		Type:     models.MsgWelcome,
		DeviceID: c.deviceID,
		Message:  "connected to clipboard sync server",
	})
	joined := models.WSMessage{Type: models.MsgDeviceConnected, DeviceID: c.deviceID}
	for other := range h.clients {
		if other != c {
			h.deliverLocked(other, joined)
		}
	}
	h.broadcastStatsLocked()

	c.logger.Info().Int("active", len(h.clients)).Msg("websocket client connected")
}

func (h *Hub) unregister(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	h.dropLocked(c)

	h.broadcastLocked(models.WSMessage{Type: models.MsgDeviceDisconnected, DeviceID: c.deviceID})
	h.broadcastStatsLocked()

	c.logger.Info().Int("active", len(h.clients)).Msg("websocket client disconnected")
}

// Stats reports the current connections. TotalConnections counts every
// connection accepted since start.
func (h *Hub) Stats() models.ConnectionStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.statsLocked()
}

func (h *Hub) statsLocked() models.ConnectionStats {
	stats := models.ConnectionStats{
		TotalConnections:  h.total,
		ActiveConnections: len(h.clients),
		DeviceConnections: make(map[string]int),
		ConnectedDevices:  []string{},
	}
	for c := range h.clients {
		if stats.DeviceConnections[c.deviceID] == 0 {
			stats.ConnectedDevices = append(stats.ConnectedDevices, c.deviceID)
		}
		stats.DeviceConnections[c.deviceID]++
	}
	slices.Sort(stats.ConnectedDevices)
	return stats
}

// Broadcast sends msg to every open connection.
func (h *Hub) Broadcast(msg models.WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broadcastLocked(msg)
}

// BroadcastItem announces new or changed content. The sender receives it too
// and is expected to skip its own device id.
func (h *Hub) BroadcastItem(item models.ClipboardItem) {
	msg, err := models.NewMessage(models.MsgSync, item)
	if err != nil {
		h.logger.Err(err).Msg("encode sync push")
		return
	}
	msg.ID = item.ID
	msg.DeviceID = item.DeviceID
	msg.Message = "new " + string(item.Type) + " item"
	h.Broadcast(msg)
}

func (h *Hub) BroadcastDelete(id models.ItemID, deviceID string) {
	h.Broadcast(models.WSMessage{Type: models.MsgDelete, ID: id, DeviceID: deviceID})
}

// Close disconnects every client and refuses new ones. It is safe to call
// more than once.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		h.dropLocked(c)
	}
	h.logger.Info().Msg("websocket hub closed")
}

func (h *Hub) broadcastStatsLocked() {
	msg, err := models.NewMessage(models.MsgConnectionStats, h.statsLocked())
	if err != nil {
		h.logger.Err(err).Msg("encode connection stats")
		return
	}
	h.broadcastLocked(msg)
}

func (h *Hub) broadcastLocked(msg models.WSMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Err(err).Str("type", string(msg.Type)).Msg("encode push")
		return
	}
	for c := range h.clients {
		h.sendLocked(c, payload)
	}
}

func (h *Hub) deliverLocked(c *wsClient, msg models.WSMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Err(err).Str("type", string(msg.Type)).Msg("encode reply")
		return
	}
	h.sendLocked(c, payload)
}

// sendLocked queues payload for c. A client that cannot keep up is dropped.
func (h *Hub) sendLocked(c *wsClient, payload []byte) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	select {
	case c.send <- payload:
	default:
		c.logger.Warn().Msg("send buffer full, dropping client")
		h.dropLocked(c)
	}
}

func (h *Hub) dropLocked(c *wsClient) {
	delete(h.clients, c)
	close(c.send)
}

func (h *Hub) reply(c *wsClient, msg models.WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deliverLocked(c, msg)
}

func (c *wsClient) readPump(ctx context.Context) {
	defer c.conn.Close()

	c.conn.SetReadLimit(maxFrameSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg models.WSMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Debug().Err(err).Msg("websocket read failed")
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		c.handle(ctx, msg)
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server closed the connection"))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *wsClient) handle(ctx context.Context, msg models.WSMessage) {
	switch msg.Type {
	case models.MsgGetAllContent:
		var q models.ContentQuery
		if err := msg.Data.Decode(&q); err != nil {
			c.fail("malformed get_all_content query")
			return
		}
		c.page(ctx, models.MsgAllContent, models.ListQuery{
			Limit:    cmpOr(q.Limit, models.DefaultContentLimit),
			Type:     q.Type,
			Search:   q.Search,
			DeviceID: q.DeviceID,
		})
	case models.MsgGetAllText:
		c.page(ctx, models.MsgAllText, models.ListQuery{Limit: cmpOr(msg.Count, models.DefaultContentLimit), Filter: models.FilterAllText})
	case models.MsgGetAllImages:
		c.page(ctx, models.MsgAllImages, models.ListQuery{Limit: cmpOr(msg.Count, models.DefaultContentLimit), Filter: models.FilterAllImages})
	case models.MsgGetLatest:
		c.page(ctx, models.MsgLatest, models.ListQuery{Limit: cmpOr(msg.Count, latestDefault), Filter: models.FilterLatest})
	case models.MsgSync:
		c.sync(ctx, msg)
	case models.MsgDelete:
		if err := c.hub.items.DeleteItem(ctx, msg.ID); err != nil {
			c.fail("delete failed: " + err.Error())
			return
		}
		c.hub.BroadcastDelete(msg.ID, c.deviceID)
	case models.MsgPing:
		c.hub.reply(c, models.WSMessage{Type: models.MsgHeartbeat, Message: time.Now().UTC().Format(time.RFC3339)})
	default:
		c.fail("unknown message type: " + string(msg.Type))
	}
}

func (c *wsClient) page(ctx context.Context, t models.MessageType, q models.ListQuery) {
	page, err := c.hub.items.ListItems(ctx, q)
	if err != nil {
		c.fail(err.Error())
		return
	}

	msg, err := models.NewMessage(t, page)
	if err != nil {
		c.fail(err.Error())
		return
	}
	msg.Count = page.Total
	c.hub.reply(c, msg)
}

// sync stores the pushed item and broadcasts it. A rejected item is reported
// to the sender only, as a sync frame carrying an error.
func (c *wsClient) sync(ctx context.Context, msg models.WSMessage) {
	item, err := msg.Item()
	if err == nil {
		if item.DeviceID == "" {
			item.DeviceID = c.deviceID
		}
		item, err = c.hub.items.CreateItem(ctx, models.CreateItemRequest{
			Type:     item.Type,
			Content:  item.Content,
			DeviceID: item.DeviceID,
			FileName: item.FileName,
			FileSize: item.FileSize,
			MimeType: item.MimeType,
		})
	}
	if err != nil {
		c.logger.Warn().Err(err).Msg("sync rejected")
		failure, _ := models.NewMessage(models.MsgSync, map[string]string{
			"error":   err.Error(),
			"message": "sync failed",
		})
		c.hub.reply(c, failure)
		return
	}

	c.hub.BroadcastItem(item)
}

func (c *wsClient) fail(text string) {
	c.hub.reply(c, models.WSMessage{Type: models.MsgError, Message: text})
}

func cmpOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
