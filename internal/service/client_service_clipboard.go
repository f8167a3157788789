// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
)

const defaultImageMime = "image/png"

type clientClipboardService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientClipboardService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClipboardService {
	return &clientClipboardService{adapter: serverAdapter, logger: log}
}

func (c *clientClipboardService) List(ctx context.Context, q models.ListQuery) models.Envelope[models.ItemPage] {
	q = q.Normalize()
	if q.Type != "" && !q.Type.Valid() {
		return failure[models.ItemPage](fmt.Errorf("%w: %s", ErrUnknownContentType, q.Type))
	}

	reply, err := c.adapter.ListItems(ctx, q)
	c.logFailure(err, "List")
	return fold(reply, err, fmt.Sprintf("fetched %d items", len(reply.Data.Items)))
}

func (c *clientClipboardService) Get(ctx context.Context, id models.ItemID) models.Envelope[models.ClipboardItem] {
	if strings.TrimSpace(id.String()) == "" {
		return failure[models.ClipboardItem](ErrEmptyItemID)
	}

	reply, err := c.adapter.GetItem(ctx, id)
	c.logFailure(err, "Get")
	return fold(reply, err, "item fetched")
}

func (c *clientClipboardService) CreateText(ctx context.Context, content, deviceID string) models.Envelope[models.ClipboardItem] {
	if content == "" {
		return failure[models.ClipboardItem](ErrEmptyContent)
	}

	return c.create(ctx, models.CreateItemRequest{
		Type:     models.ItemText,
		Content:  content,
		DeviceID: deviceID,
	})
}

func (c *clientClipboardService) CreateImage(ctx context.Context, data models.Payload, deviceID, fileName, mimeType string) models.Envelope[models.ClipboardItem] {
	if data.Empty() {
		return failure[models.ClipboardItem](ErrEmptyContent)
	}

	dataMime := mimeType
	if dataMime == "" {
		dataMime = defaultImageMime
	}

	req := models.CreateItemRequest{
		Type:     models.ItemImage,
		DeviceID: deviceID,
		FileName: fileName,
		MimeType: mimeType,
	}
	switch {
	case len(data.Bytes) > 0:
		req.Content = "data:" + dataMime + ";base64," + base64.StdEncoding.EncodeToString(data.Bytes)
		req.FileSize = int64(len(data.Bytes))
	case strings.HasPrefix(data.Encoded, "data:"):
		req.Content = data.Encoded
	default:
		req.Content = "data:" + dataMime + ";base64," + data.Encoded
	}

	return c.create(ctx, req)
}

func (c *clientClipboardService) CreateFile(ctx context.Context, data models.Payload, deviceID, fileName, mimeType string) models.Envelope[models.ClipboardItem] {
	if strings.TrimSpace(fileName) == "" {
		return failure[models.ClipboardItem](ErrFileNameRequired)
	}
	if data.Empty() {
		return failure[models.ClipboardItem](ErrEmptyContent)
	}

	req := models.CreateItemRequest{
		Type:     models.ItemFile,
		Content:  data.Encoded,
		DeviceID: deviceID,
		FileName: fileName,
		MimeType: mimeType,
	}
	if len(data.Bytes) > 0 {
		req.Content = base64.StdEncoding.EncodeToString(data.Bytes)
		req.FileSize = int64(len(data.Bytes))
	}

	return c.create(ctx, req)
}

func (c *clientClipboardService) create(ctx context.Context, req models.CreateItemRequest) models.Envelope[models.ClipboardItem] {
	reply, err := c.adapter.CreateItem(ctx, req)
	c.logFailure(err, "Create")
	return fold(reply, err, fmt.Sprintf("%s item created", req.Type))
}

func (c *clientClipboardService) Upload(ctx context.Context, req models.UploadRequest) models.Envelope[models.ClipboardItem] {
	if req.Type == "" {
		req.Type = models.ItemFile
	}
	if req.Type != models.ItemFile && req.Type != models.ItemImage {
		return failure[models.ClipboardItem](fmt.Errorf("%w: %s", ErrUnknownContentType, req.Type))
	}

	f, err := os.Open(req.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return failure[models.ClipboardItem](fmt.Errorf("%w: %s", ErrUploadFileMissing, req.FilePath))
		}
		return failure[models.ClipboardItem](fmt.Errorf("open upload file: %w", err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return failure[models.ClipboardItem](fmt.Errorf("stat upload file: %w", err))
	}
	if info.IsDir() {
		return failure[models.ClipboardItem](fmt.Errorf("%w: %s is a directory", ErrUploadFileMissing, req.FilePath))
	}

	reply, err := c.adapter.UploadItem(ctx, req, f)
	c.logFailure(err, "Upload")
	return fold(reply, err, "file uploaded")
}

func (c *clientClipboardService) Update(ctx context.Context, id models.ItemID, req models.UpdateItemRequest) models.Envelope[models.ClipboardItem] {
	if strings.TrimSpace(id.String()) == "" {
		return failure[models.ClipboardItem](ErrEmptyItemID)
	}
	if req.Empty() {
		return failure[models.ClipboardItem](ErrEmptyUpdate)
	}

	reply, err := c.adapter.UpdateItem(ctx, id, req)
	c.logFailure(err, "Update")
	return fold(reply, err, "item updated")
}

func (c *clientClipboardService) Delete(ctx context.Context, id models.ItemID) models.Envelope[models.RawData] {
	if strings.TrimSpace(id.String()) == "" {
		return failure[models.RawData](ErrEmptyItemID)
	}

	reply, err := c.adapter.DeleteItem(ctx, id)
	c.logFailure(err, "Delete")
	return fold(reply, err, "item deleted")
}

func (c *clientClipboardService) logFailure(err error, method string) {
	if err == nil {
		return
	}
	c.logger.Err(err).
		Str("func", "clientClipboardService."+method).
		Int("status", adapter.StatusCode(err)).
		Msg("clipboard request failed")
}
