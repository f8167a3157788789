// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/mock"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testWSURL = "ws://localhost:3002/ws?deviceId=desk-1"

var errClosed = fmt.Errorf("websocket receive: %w", adapter.ErrConnectionClosed)

func newTestRealtimeSvc(t *testing.T) (RealtimeService, *mock.MockRealtimeDialer, *mock.MockRealtimeConn) {
	t.Helper()
	ctrl := gomock.NewController(t)
	dialer := mock.NewMockRealtimeDialer(ctrl)
	conn := mock.NewMockRealtimeConn(ctrl)
	dialer.EXPECT().URL("desk-1").Return(testWSURL).AnyTimes()
	return NewClientRealtimeService(dialer, "desk-1", logger.Nop()), dialer, conn
}

// connected returns a service with an open mocked connection.
func connected(t *testing.T) (RealtimeService, *mock.MockRealtimeConn) {
	t.Helper()
	svc, dialer, conn := newTestRealtimeSvc(t)
	dialer.EXPECT().Dial(gomock.Any(), "desk-1").Return(conn, nil)
	require.True(t, svc.Connect(context.Background()).Success)
	return svc, conn
}

// ── Connect / Close ──────────────────────────────────────────────────────────

func TestClientRealtimeService_Connect(t *testing.T) {
	svc, dialer, conn := newTestRealtimeSvc(t)
	ctx := context.Background()

	dialer.EXPECT().Dial(ctx, "desk-1").Return(conn, nil).Times(1)

	env := svc.Connect(ctx)
	require.True(t, env.Success)
	assert.Equal(t, testWSURL, env.Data)
	assert.True(t, svc.Connected())

	// повторный Connect не открывает второе соединение
	again := svc.Connect(ctx)
	assert.True(t, again.Success)
	assert.Equal(t, "already connected", again.Message)

	conn.EXPECT().Close().Return(nil)
	require.NoError(t, svc.Close())
	assert.False(t, svc.Connected())
	assert.NoError(t, svc.Close())
}

func TestClientRealtimeService_Connect_Rejected(t *testing.T) {
	svc, dialer, _ := newTestRealtimeSvc(t)

	dialer.EXPECT().Dial(gomock.Any(), "desk-1").Return(nil, &adapter.StatusError{
		Code: http.StatusUnauthorized, Message: "invalid security key", Err: adapter.ErrUnauthorized,
	})

	env := svc.Connect(context.Background())
	assert.False(t, env.Success)
	assert.Equal(t, "invalid security key", env.Message)
	assert.Equal(t, http.StatusUnauthorized, env.StatusCode)
	assert.False(t, svc.Connected())
}

// ── Send ─────────────────────────────────────────────────────────────────────

func TestClientRealtimeService_Send_NotConnected(t *testing.T) {
	svc, _, _ := newTestRealtimeSvc(t)

	env := svc.GetLatest(context.Background(), 3)
	assert.False(t, env.Success)
	assert.Equal(t, ErrRealtimeNotStarted.Error(), env.Message)
	assert.Zero(t, env.StatusCode)
}

func TestClientRealtimeService_Send_EmptyType(t *testing.T) {
	svc, _ := connected(t)

	env := svc.Send(context.Background(), models.WSMessage{})
	assert.False(t, env.Success)
	assert.Equal(t, ErrEmptyMessageType.Error(), env.Message)
}

func TestClientRealtimeService_MessageShapes(t *testing.T) {
	svc, conn := connected(t)
	ctx := context.Background()

	var sent []models.WSMessage
	conn.EXPECT().Send(ctx, gomock.Any()).Times(6).
		DoAndReturn(func(_ context.Context, msg models.WSMessage) error {
			sent = append(sent, msg)
			return nil
		})

	require.True(t, svc.GetAllContent(ctx, models.ContentQuery{}).Success)
	require.True(t, svc.GetAllText(ctx).Success)
	require.True(t, svc.GetAllImages(ctx).Success)
	require.True(t, svc.GetLatest(ctx, 0).Success)
	require.True(t, svc.SyncItem(ctx, models.ClipboardItem{Type: models.ItemText, Content: "hi"}).Success)
	require.True(t, svc.DeleteItem(ctx, "9").Success)
	require.Len(t, sent, 6)

	assert.Equal(t, models.MsgGetAllContent, sent[0].Type)
	assert.JSONEq(t, `{"limit":50}`, string(sent[0].Data))
	assert.Equal(t, models.MsgGetAllText, sent[1].Type)
	assert.Equal(t, models.MsgGetAllImages, sent[2].Type)
	assert.Equal(t, models.WSMessage{Type: models.MsgGetLatest, Count: 1}, sent[3])

	assert.Equal(t, models.MsgSync, sent[4].Type)
	item, err := sent[4].Item()
	require.NoError(t, err)
	assert.Equal(t, "desk-1", item.DeviceID)
	assert.Equal(t, "hi", item.Content)

	assert.Equal(t, models.WSMessage{Type: models.MsgDelete, ID: "9"}, sent[5])

	assert.False(t, svc.DeleteItem(ctx, "").Success)
	assert.False(t, svc.GetAllContent(ctx, models.ContentQuery{Type: "video"}).Success)
}

func TestClientRealtimeService_Send_ConnectionLost(t *testing.T) {
	svc, conn := connected(t)

	conn.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errClosed)
	conn.EXPECT().Close().Return(nil)

	env := svc.GetAllText(context.Background())
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "websocket connection closed")
	assert.False(t, svc.Connected())
}

// ── Listen ───────────────────────────────────────────────────────────────────

func TestClientRealtimeService_Listen_DispatchOrder(t *testing.T) {
	svc, conn := connected(t)

	push, err := models.NewMessage(models.MsgSync, models.ClipboardItem{ID: "1", Type: models.ItemText, Content: "x"})
	require.NoError(t, err)
	stats := models.WSMessage{Type: models.MsgConnectionStats}

	gomock.InOrder(
		conn.EXPECT().Receive(gomock.Any()).Return(push, nil),
		conn.EXPECT().Receive(gomock.Any()).Return(models.WSMessage{}, fmt.Errorf("%w: bad json", adapter.ErrMalformedFrame)),
		conn.EXPECT().Receive(gomock.Any()).Return(stats, nil),
		conn.EXPECT().Receive(gomock.Any()).Return(models.WSMessage{}, errClosed),
	)
	conn.EXPECT().Close().Return(nil)

	var calls []string
	svc.RegisterHandler(models.MsgSync, func(_ context.Context, msg models.WSMessage) error {
		calls = append(calls, "registered:"+string(msg.Type))
		return nil
	})

	env := svc.Listen(context.Background(), func(_ context.Context, msg models.WSMessage) error {
		calls = append(calls, "caller:"+string(msg.Type))
		return errors.New("handler failure does not stop the loop")
	})

	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "websocket connection closed")
	assert.Equal(t, 2, env.Data)
	assert.Equal(t, []string{"caller:sync", "registered:sync", "caller:connection_stats"}, calls)
	assert.False(t, svc.Connected())
}

func TestClientRealtimeService_Listen_Cancelled(t *testing.T) {
	svc, conn := connected(t)
	ctx, cancel := context.WithCancel(context.Background())

	conn.EXPECT().Receive(gomock.Any()).DoAndReturn(func(context.Context) (models.WSMessage, error) {
		cancel()
		return models.WSMessage{}, context.Canceled
	})
	conn.EXPECT().Close().Return(nil)

	env := svc.Listen(ctx, nil)
	assert.True(t, env.Success)
	assert.Equal(t, 0, env.Data)
	assert.False(t, svc.Connected())
}

func TestClientRealtimeService_Listen_NotConnected(t *testing.T) {
	svc, _, _ := newTestRealtimeSvc(t)
	assert.False(t, svc.Listen(context.Background(), nil).Success)
}

func TestClientRealtimeService_RegisterHandler_NilRemoves(t *testing.T) {
	svc, conn := connected(t)

	called := false
	svc.RegisterHandler(models.MsgDelete, func(context.Context, models.WSMessage) error {
		called = true
		return nil
	})
	svc.RegisterHandler(models.MsgDelete, nil)

	gomock.InOrder(
		conn.EXPECT().Receive(gomock.Any()).Return(models.WSMessage{Type: models.MsgDelete, ID: "1"}, nil),
		conn.EXPECT().Receive(gomock.Any()).Return(models.WSMessage{}, errClosed),
	)
	conn.EXPECT().Close().Return(nil)

	svc.Listen(context.Background(), nil)
	assert.False(t, called)
}

// ── Run ──────────────────────────────────────────────────────────────────────

func TestClientRealtimeService_Run(t *testing.T) {
	svc, dialer, conn := newTestRealtimeSvc(t)

	dialer.EXPECT().Dial(gomock.Any(), "desk-1").Return(conn, nil)
	conn.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg models.WSMessage) error {
		assert.Equal(t, models.MsgGetAllContent, msg.Type)
		return nil
	})
	gomock.InOrder(
		conn.EXPECT().Receive(gomock.Any()).Return(models.WSMessage{Type: models.MsgAllContent}, nil),
		conn.EXPECT().Receive(gomock.Any()).Return(models.WSMessage{}, errClosed),
	)
	conn.EXPECT().Close().Return(nil).AnyTimes()

	env := svc.Run(context.Background(), true, nil)
	assert.False(t, env.Success)
	assert.Equal(t, 1, env.Data)
	assert.False(t, svc.Connected())
}

func TestClientRealtimeService_Run_ConnectFails(t *testing.T) {
	svc, dialer, _ := newTestRealtimeSvc(t)
	dialer.EXPECT().Dial(gomock.Any(), "desk-1").Return(nil, fmt.Errorf("websocket dial: %w", adapter.ErrUnreachable))

	env := svc.Run(context.Background(), true, nil)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "cannot connect to server")
}
