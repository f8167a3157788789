// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
)

type clientRealtimeService struct {
	dialer   adapter.RealtimeDialer
	deviceID string

	mu        sync.Mutex
	conn      adapter.RealtimeConn
	connected atomic.Bool

	handlersMu sync.RWMutex
	handlers   map[models.MessageType]MessageHandler

	logger *logger.Logger
}

func NewClientRealtimeService(dialer adapter.RealtimeDialer, deviceID string, log *logger.Logger) RealtimeService {
	return &clientRealtimeService{
		dialer:   dialer,
		deviceID: deviceID,
		handlers: make(map[models.MessageType]MessageHandler),
		logger:   log,
	}
}

func (r *clientRealtimeService) Connect(ctx context.Context) models.Envelope[string] {
	url := r.dialer.URL(r.deviceID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn != nil {
		return models.OK(url, "already connected", 0)
	}

	conn, err := r.dialer.Dial(ctx, r.deviceID)
	if err != nil {
		r.logger.Err(err).Str("func", "clientRealtimeService.Connect").Str("url", url).Msg("websocket connect failed")
		return failure[string](err)
	}

	r.conn = conn
	r.connected.Store(true)
	r.logger.Info().Str("url", url).Str("device_id", r.deviceID).Msg("websocket connected")
	return models.OK(url, "connected to "+url, 0)
}

func (r *clientRealtimeService) Close() error {
	r.mu.Lock()
	conn := r.conn
	r.conn = nil
	r.connected.Store(false)
	r.mu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close()
}

func (r *clientRealtimeService) Connected() bool {
	return r.connected.Load()
}

func (r *clientRealtimeService) current() adapter.RealtimeConn {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conn
}

// drop forgets conn if it is still the current connection.
func (r *clientRealtimeService) drop(conn adapter.RealtimeConn) {
	r.mu.Lock()
	if r.conn == conn {
		r.conn = nil
		r.connected.Store(false)
	}
	r.mu.Unlock()
	_ = conn.Close()
}

func (r *clientRealtimeService) Send(ctx context.Context, msg models.WSMessage) models.Envelope[models.WSMessage] {
	if strings.TrimSpace(string(msg.Type)) == "" {
		return failure[models.WSMessage](ErrEmptyMessageType)
	}

	conn := r.current()
	if conn == nil {
		return failure[models.WSMessage](ErrRealtimeNotStarted)
	}

	if err := conn.Send(ctx, msg); err != nil {
		r.logger.Err(err).Str("func", "clientRealtimeService.Send").Str("type", string(msg.Type)).Msg("websocket send failed")
		if errors.Is(err, adapter.ErrConnectionClosed) {
			r.drop(conn)
		}
		return failure[models.WSMessage](err)
	}

	return models.OK(msg, fmt.Sprintf("%s sent", msg.Type), 0)
}

func (r *clientRealtimeService) GetAllContent(ctx context.Context, q models.ContentQuery) models.Envelope[models.WSMessage] {
	if q.Limit <= 0 {
		q.Limit = models.DefaultContentLimit
	}
	if q.Type != "" && !q.Type.Valid() {
		return failure[models.WSMessage](fmt.Errorf("%w: %s", ErrUnknownContentType, q.Type))
	}

	msg, err := models.NewMessage(models.MsgGetAllContent, q)
	if err != nil {
		return failure[models.WSMessage](err)
	}
	return r.Send(ctx, msg)
}

func (r *clientRealtimeService) GetAllText(ctx context.Context) models.Envelope[models.WSMessage] {
	return r.Send(ctx, models.WSMessage{Type: models.MsgGetAllText})
}

func (r *clientRealtimeService) GetAllImages(ctx context.Context) models.Envelope[models.WSMessage] {
	return r.Send(ctx, models.WSMessage{Type: models.MsgGetAllImages})
}

func (r *clientRealtimeService) GetLatest(ctx context.Context, count int) models.Envelope[models.WSMessage] {
	if count <= 0 {
		count = 1
	}
	return r.Send(ctx, models.WSMessage{Type: models.MsgGetLatest, Count: count})
}

func (r *clientRealtimeService) SyncItem(ctx context.Context, item models.ClipboardItem) models.Envelope[models.WSMessage] {
	if item.DeviceID == "" {
		item.DeviceID = r.deviceID
	}

	msg, err := models.NewMessage(models.MsgSync, item)
	if err != nil {
		return failure[models.WSMessage](err)
	}
	return r.Send(ctx, msg)
}

func (r *clientRealtimeService) DeleteItem(ctx context.Context, id models.ItemID) models.Envelope[models.WSMessage] {
	if strings.TrimSpace(id.String()) == "" {
		return failure[models.WSMessage](ErrEmptyItemID)
	}
	return r.Send(ctx, models.WSMessage{Type: models.MsgDelete, ID: id})
}

func (r *clientRealtimeService) RegisterHandler(t models.MessageType, h MessageHandler) {
	r.handlersMu.Lock()
	defer r.handlersMu.Unlock()

	if h == nil {
		delete(r.handlers, t)
		return
	}
	r.handlers[t] = h
}

func (r *clientRealtimeService) handler(t models.MessageType) MessageHandler {
	r.handlersMu.RLock()
	defer r.handlersMu.RUnlock()
	return r.handlers[t]
}

func (r *clientRealtimeService) Listen(ctx context.Context, h MessageHandler) models.Envelope[int] {
	conn := r.current()
	if conn == nil {
		return failure[int](ErrRealtimeNotStarted)
	}

	dispatched := 0
	for {
		msg, err := conn.Receive(ctx)
		switch {
		case err == nil:
			r.dispatch(ctx, msg, h)
			dispatched++
		case errors.Is(err, adapter.ErrMalformedFrame):
			r.logger.Warn().Err(err).Str("func", "clientRealtimeService.Listen").Msg("skipping frame")
		case ctx.Err() != nil:
			r.drop(conn)
			return models.OK(dispatched, "listener stopped", 0)
		default:
			r.logger.Warn().Err(err).Str("func", "clientRealtimeService.Listen").Msg("websocket disconnected")
			r.drop(conn)
			env := failure[int](err)
			env.Data = dispatched
			return env
		}
	}
}

func (r *clientRealtimeService) dispatch(ctx context.Context, msg models.WSMessage, h MessageHandler) {
	if h != nil {
		if err := h(ctx, msg); err != nil {
			r.logger.Warn().Err(err).Str("type", string(msg.Type)).Msg("message handler failed")
		}
	}

	if registered := r.handler(msg.Type); registered != nil {
		if err := registered(ctx, msg); err != nil {
			r.logger.Warn().Err(err).Str("type", string(msg.Type)).Msg("registered handler failed")
		}
	}
}

func (r *clientRealtimeService) Run(ctx context.Context, autoGetContent bool, h MessageHandler) models.Envelope[int] {
	connected := r.Connect(ctx)
	if !connected.Success {
		return relabel(connected, 0, "")
	}
	defer r.Close()

	if autoGetContent {
		if sent := r.GetAllContent(ctx, models.ContentQuery{Limit: models.DefaultContentLimit}); !sent.Success {
			r.logger.Warn().Str("func", "clientRealtimeService.Run").Msg(sent.Message)
		}
	}

	return r.Listen(ctx, h)
}
