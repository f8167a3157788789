// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/clipboard"
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/mock"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bridgeFixture struct {
	bridge  ClipboardBridge
	adapter *mock.MockServerAdapter
	journal *mock.MockHistoryRepository
	board   *clipboard.Memory
}

func newBridgeFixture(t *testing.T, workers config.ClientWorkers) bridgeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	journal := mock.NewMockHistoryRepository(ctrl)
	board := clipboard.NewMemory("")

	items := NewClientClipboardService(mockAdapter, logger.Nop())
	return bridgeFixture{
		bridge:  NewClipboardBridge(items, board, journal, "desk-1", workers, logger.Nop()),
		adapter: mockAdapter,
		journal: journal,
		board:   board,
	}
}

func unlimited() config.ClientWorkers {
	return config.ClientWorkers{MaxTextLength: 10}
}

func created(id string, content string) adapter.Reply[models.ClipboardItem] {
	return adapter.Reply[models.ClipboardItem]{
		Data:       models.ClipboardItem{ID: models.ItemID(id), Type: models.ItemText, Content: content},
		StatusCode: http.StatusCreated,
	}
}

func syncPush(t *testing.T, item models.ClipboardItem) models.WSMessage {
	t.Helper()
	msg, err := models.NewMessage(models.MsgSync, item)
	require.NoError(t, err)
	return msg
}

// ── Push ─────────────────────────────────────────────────────────────────────

func TestClipboardBridge_Push(t *testing.T) {
	f := newBridgeFixture(t, unlimited())
	ctx := context.Background()

	f.adapter.EXPECT().CreateItem(ctx, models.CreateItemRequest{Type: models.ItemText, Content: "hello", DeviceID: "desk-1"}).
		Return(created("1", "hello"), nil)
	f.journal.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, entries ...models.HistoryEntry) error {
		require.Len(t, entries, 1)
		assert.Equal(t, models.DirectionOut, entries[0].Direction)
		assert.Equal(t, models.ItemID("1"), entries[0].ItemID)
		assert.Equal(t, utils.Fingerprint("hello"), entries[0].Fingerprint)
		assert.Equal(t, "hello", entries[0].Preview)
		return nil
	})

	env := f.bridge.Push(ctx, "hello")
	require.True(t, env.Success)

	// повторная отправка того же текста пропускается без запроса
	again := f.bridge.Push(ctx, "hello")
	assert.False(t, again.Success)
	assert.Equal(t, ErrDuplicateContent.Error(), again.Message)
}

func TestClipboardBridge_Push_Skipped(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{name: "blank", text: " \n\t", want: ErrEmptyContent},
		{name: "too long", text: strings.Repeat("x", 11), want: ErrTextTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBridgeFixture(t, unlimited())
			env := f.bridge.Push(context.Background(), tt.text)
			assert.False(t, env.Success)
			assert.Contains(t, env.Message, tt.want.Error())
		})
	}
}

func TestClipboardBridge_Push_FailureAllowsRetry(t *testing.T) {
	f := newBridgeFixture(t, unlimited())

	gomock.InOrder(
		f.adapter.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
			Return(adapter.Reply[models.ClipboardItem]{}, adapter.ErrUnreachable),
		f.adapter.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
			Return(created("2", "retry"), nil),
	)
	f.journal.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	assert.False(t, f.bridge.Push(context.Background(), "retry").Success)
	assert.True(t, f.bridge.Push(context.Background(), "retry").Success)
}

func TestClipboardBridge_Push_JournalErrorIgnored(t *testing.T) {
	f := newBridgeFixture(t, unlimited())

	f.adapter.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(created("1", "a"), nil)
	f.journal.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	assert.True(t, f.bridge.Push(context.Background(), "a").Success)
}

func TestClipboardBridge_Push_RateLimited(t *testing.T) {
	// одна отправка в час, burst 1: вторая не дождётся токена до дедлайна
	f := newBridgeFixture(t, config.ClientWorkers{MaxTextLength: 100, PushRate: 1.0 / 3600, PushBurst: 1})

	f.adapter.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(created("1", "a"), nil)
	f.journal.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	require.True(t, f.bridge.Push(context.Background(), "a").Success)

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	env := f.bridge.Push(ctx, "b")
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, ErrPushRateExceeded.Error())
}

func TestClipboardBridge_Paused(t *testing.T) {
	f := newBridgeFixture(t, unlimited())
	f.bridge.SetEnabled(false)
	assert.False(t, f.bridge.Enabled())

	env := f.bridge.Push(context.Background(), "x")
	assert.False(t, env.Success)
	assert.Equal(t, ErrSyncPaused.Error(), env.Message)

	require.NoError(t, f.bridge.Apply(context.Background(), syncPush(t, models.ClipboardItem{Type: models.ItemText, Content: "remote", DeviceID: "phone"})))
	got, _ := f.board.Read()
	assert.Empty(t, got)
}

// ── Apply ────────────────────────────────────────────────────────────────────

func TestClipboardBridge_Apply_WritesAndSuppressesEcho(t *testing.T) {
	f := newBridgeFixture(t, unlimited())
	ctx := context.Background()

	f.journal.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, entries ...models.HistoryEntry) error {
		assert.Equal(t, models.DirectionIn, entries[0].Direction)
		assert.Equal(t, "phone", entries[0].DeviceID)
		return nil
	})

	push := syncPush(t, models.ClipboardItem{ID: "5", Type: models.ItemText, Content: "remote", DeviceID: "phone"})
	require.NoError(t, f.bridge.Apply(ctx, push))

	got, err := f.board.Read()
	require.NoError(t, err)
	assert.Equal(t, "remote", got)

	// watcher видит "remote" и не должен отправить его обратно
	env := f.bridge.Push(ctx, "remote")
	assert.False(t, env.Success)
	assert.Equal(t, ErrDuplicateContent.Error(), env.Message)

	// повторный push того же содержимого не пишет в буфер второй раз
	require.NoError(t, f.bridge.Apply(ctx, push))
}

func TestClipboardBridge_Apply_Ignored(t *testing.T) {
	tests := []struct {
		name string
		msg  func(t *testing.T) models.WSMessage
	}{
		{name: "own device", msg: func(t *testing.T) models.WSMessage {
			return syncPush(t, models.ClipboardItem{Type: models.ItemText, Content: "mine", DeviceID: "desk-1"})
		}},
		{name: "image", msg: func(t *testing.T) models.WSMessage {
			return syncPush(t, models.ClipboardItem{Type: models.ItemImage, Content: "data:", DeviceID: "phone"})
		}},
		{name: "not a sync push", msg: func(t *testing.T) models.WSMessage {
			return models.WSMessage{Type: models.MsgDelete, ID: "1"}
		}},
		{name: "sync failure", msg: func(t *testing.T) models.WSMessage {
			msg, err := models.NewMessage(models.MsgSync, map[string]string{"error": "too large"})
			require.NoError(t, err)
			return msg
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBridgeFixture(t, unlimited())
			require.NoError(t, f.bridge.Apply(context.Background(), tt.msg(t)))
			got, _ := f.board.Read()
			assert.Empty(t, got)
		})
	}
}

func TestClipboardBridge_Apply_LegacyPush(t *testing.T) {
	f := newBridgeFixture(t, unlimited())
	f.journal.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	msg, err := models.NewMessage(models.MsgSyncContent, models.ClipboardItem{Type: models.ItemText, Content: "legacy", DeviceID: "old"})
	require.NoError(t, err)

	require.NoError(t, f.bridge.Apply(context.Background(), msg))
	got, _ := f.board.Read()
	assert.Equal(t, "legacy", got)
}

func TestClipboardBridge_Apply_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	board := mock.NewMockClipboard(ctrl)
	journal := mock.NewMockHistoryRepository(ctrl)
	items := NewClientClipboardService(mock.NewMockServerAdapter(ctrl), logger.Nop())
	bridge := NewClipboardBridge(items, board, journal, "desk-1", unlimited(), logger.Nop())

	push := syncPush(t, models.ClipboardItem{Type: models.ItemText, Content: "remote", DeviceID: "phone"})

	gomock.InOrder(
		board.EXPECT().Write("remote").Return(clipboard.ErrUnsupported),
		board.EXPECT().Write("remote").Return(nil),
	)
	journal.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	err := bridge.Apply(context.Background(), push)
	require.ErrorIs(t, err, ErrClipboardNotApplied)
	require.ErrorIs(t, err, clipboard.ErrUnsupported)

	// после ошибки тот же push применяется повторно
	require.NoError(t, bridge.Apply(context.Background(), push))
}
