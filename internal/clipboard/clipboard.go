// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard gives the client access to the local OS clipboard.
//
// [NewSystem] uses github.com/atotto/clipboard, which shells out to
// pbcopy/pbpaste on macOS, xclip, xsel or wl-clipboard on Linux and the
// Win32 API on Windows. [NewMemory] keeps the value in process and is used by
// tests and on headless hosts.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

//go:generate mockgen -source=clipboard.go -destination=../mock/clipboard_mock.go -package=mock

// ErrUnsupported is returned by the system clipboard when no clipboard
// utility is available.
var ErrUnsupported = errors.New("clipboard is not supported on this host")

// Clipboard reads and writes text on a clipboard.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

type system struct{}

// NewSystem returns the OS clipboard. When the host has no clipboard
// utility every call fails with [ErrUnsupported].
func NewSystem() Clipboard {
	return system{}
}

func (system) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	return clipboard.ReadAll()
}

func (system) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Supported reports whether the OS clipboard can be used.
func Supported() bool {
	return !clipboard.Unsupported
}

// Memory is an in-process [Clipboard].
type Memory struct {
	mu   sync.RWMutex
	text string
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

func (m *Memory) Read() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text, nil
}

func (m *Memory) Write(text string) error {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
	return nil
}
