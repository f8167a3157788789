// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Client-side validation errors. They are reported in the envelope without
// any request being sent.
var (
	ErrEmptyItemID         = errors.New("item id is required")
	ErrEmptyContent        = errors.New("content is empty")
	ErrEmptyUpdate         = errors.New("nothing to update")
	ErrFileNameRequired    = errors.New("file name is required")
	ErrUploadFileMissing   = errors.New("file does not exist")
	ErrUnknownContentType  = errors.New("unknown content type")
	ErrInvalidStrategy     = errors.New("strategy must be oldest_first or largest_first")
	ErrInvalidCount        = errors.New("count must be positive")
	ErrUnsafeFileName      = errors.New("file name must not contain a path")
	ErrEmptyMessageType    = errors.New("message type is required")
	ErrRealtimeNotStarted  = errors.New("websocket not connected")
	ErrTextTooLong         = errors.New("text exceeds the maximum length")
	ErrDuplicateContent    = errors.New("content already synced")
	ErrPushRateExceeded    = errors.New("push rate exceeded")
	ErrClipboardNotApplied = errors.New("clipboard not updated")
	ErrSyncPaused          = errors.New("clipboard sync is paused")
)

// Errors of the development server services.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUnsupportedUpload   = errors.New("upload type must be file or image")
	ErrMalformedContent    = errors.New("stored content is not valid base64")

	ErrVersionIsNotSpecified = errors.New("build version is not specified")
)
