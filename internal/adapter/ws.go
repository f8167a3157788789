// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/gorilla/websocket"
)

const closeWriteWait = time.Second

type wsDialer struct {
	cfg    config.ClientAdapter
	dialer *websocket.Dialer
	logger *logger.Logger
}

// NewWSDialer constructs the gorilla/websocket implementation of
// [RealtimeDialer]. The handshake timeout is cfg.WSConnectTimeout.
func NewWSDialer(cfg config.ClientAdapter, log *logger.Logger) RealtimeDialer {
	return &wsDialer{
		cfg: cfg,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: cfg.WSConnectTimeout,
		},
		logger: log,
	}
}

// BuildWSURL returns the WebSocket endpoint for deviceID. http and https
// schemes are rewritten to ws and wss. The API key is added as authKey and
// authValue query parameters when both parts are set.
func BuildWSURL(raw, deviceID, authKey, authValue string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty websocket address")
	}
	if !strings.Contains(raw, "://") {
		raw = "ws://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported websocket scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("websocket address must include host")
	}

	q := u.Query()
	if deviceID != "" {
		q.Set("deviceId", deviceID)
	}
	if authKey != "" && authValue != "" {
		q.Set("authKey", authKey)
		q.Set("authValue", authValue)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// URL implements [RealtimeDialer].
func (d *wsDialer) URL(deviceID string) string {
	u, err := BuildWSURL(d.cfg.WSAddress, deviceID, d.cfg.AuthKey, utils.MaskSecret(d.cfg.AuthValue))
	if err != nil {
		return d.cfg.WSAddress
	}
	return u
}

// Dial implements [RealtimeDialer].
func (d *wsDialer) Dial(ctx context.Context, deviceID string) (RealtimeConn, error) {
	target, err := BuildWSURL(d.cfg.WSAddress, deviceID, d.cfg.AuthKey, d.cfg.AuthValue)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter ws address: %w", err)
	}

	headers := http.Header{}
	for k, v := range d.cfg.SecurityHeaders() {
		headers.Set(k, v)
	}

	conn, resp, err := d.dialer.DialContext(ctx, target, headers)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return nil, &StatusError{
				Code:    resp.StatusCode,
				Message: bodyMessage(body, resp.StatusCode),
				Err:     sentinelFor(resp.StatusCode),
			}
		}
		return nil, mapTransportError("websocket dial", err)
	}

	d.logger.Debug().Str("url", d.URL(deviceID)).Msg("websocket connected")
	return newWSConn(conn, d.cfg.PingInterval, d.cfg.PongTimeout, d.logger), nil
}

type wsConn struct {
	conn *websocket.Conn

	writeMu sync.Mutex

	pingInterval time.Duration
	pongTimeout  time.Duration

	done      chan struct{}
	closeOnce sync.Once
	closeErr  error

	logger *logger.Logger
}

func newWSConn(conn *websocket.Conn, pingInterval, pongTimeout time.Duration, log *logger.Logger) *wsConn {
	c := &wsConn{
		conn:         conn,
		pingInterval: pingInterval,
		pongTimeout:  pongTimeout,
		done:         make(chan struct{}),
		logger:       log,
	}

	if pingInterval > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(c.readWindow()))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(c.readWindow()))
		})
		go c.pingLoop()
	}

	return c
}

// readWindow is how long the connection may stay silent before it is
// considered dead: one ping period plus the pong grace.
func (c *wsConn) readWindow() time.Duration {
	return c.pingInterval + c.pongTimeout
}

func (c *wsConn) pingLoop() {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(c.pongTimeout)
			if c.pongTimeout <= 0 {
				deadline = time.Now().Add(c.pingInterval)
			}
			c.writeMu.Lock()
			err := c.conn.WriteControl(websocket.PingMessage, nil, deadline)
			c.writeMu.Unlock()
			if err != nil {
				c.logger.Debug().Err(err).Msg("websocket ping failed")
				return
			}
		}
	}
}

// Send implements [RealtimeConn].
func (c *wsConn) Send(ctx context.Context, msg models.WSMessage) error {
	select {
	case <-c.done:
		return ErrConnectionClosed
	default:
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s message: %w", msg.Type, err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if deadline, ok := ctx.Deadline(); ok {
		_ = c.conn.SetWriteDeadline(deadline)
	} else {
		_ = c.conn.SetWriteDeadline(time.Time{})
	}

	if err = c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return c.mapConnError("websocket send", err)
	}
	return nil
}

// Receive implements [RealtimeConn]. Cancelling ctx unblocks a pending read
// and leaves the connection unusable.
func (c *wsConn) Receive(ctx context.Context) (models.WSMessage, error) {
	if err := ctx.Err(); err != nil {
		return models.WSMessage{}, err
	}

	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	for {
		kind, data, err := c.conn.ReadMessage()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return models.WSMessage{}, ctxErr
			}
			return models.WSMessage{}, c.mapConnError("websocket receive", err)
		}
		if kind != websocket.TextMessage {
			continue
		}

		var msg models.WSMessage
		if err = json.Unmarshal(data, &msg); err != nil {
			return models.WSMessage{}, fmt.Errorf("%w: %w", ErrMalformedFrame, err)
		}
		return msg, nil
	}
}

// Close implements [RealtimeConn].
func (c *wsConn) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)

		c.writeMu.Lock()
		_ = c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(closeWriteWait),
		)
		c.writeMu.Unlock()

		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

func (c *wsConn) mapConnError(op string, err error) error {
	var closeErr *websocket.CloseError
	var netErr net.Error
	switch {
	case errors.As(err, &closeErr),
		errors.Is(err, websocket.ErrCloseSent),
		errors.Is(err, net.ErrClosed),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%s: %w: %w", op, ErrConnectionClosed, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%s: %w: %w", op, ErrConnectionClosed, ErrTimeout)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrConnectionClosed, err)
	}
}
