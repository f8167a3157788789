// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/models"
)

type itemService struct {
	items store.ItemRepository

	logger *logger.Logger
}

func NewItemService(items store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		items:  items,
		logger: logger,
	}
}

func (s *itemService) ListItems(ctx context.Context, q models.ListQuery) (models.ItemPage, error) {
	q = q.Normalize()

	switch q.Filter {
	case models.FilterAllText:
		q.Type = models.ItemText
	case models.FilterAllImages:
		q.Type = models.ItemImage
	case models.FilterLatest:
		q.Page = 1
	}

	search := strings.ToLower(q.Search)
	matched, err := s.items.List(ctx, func(item models.ClipboardItem) bool {
		if q.Type != "" && item.Type != q.Type {
			return false
		}
		if q.DeviceID != "" && item.DeviceID != q.DeviceID {
			return false
		}
		if search == "" {
			return true
		}
		if item.Type == models.ItemText && strings.Contains(strings.ToLower(item.Content), search) {
			return true
		}
		return strings.Contains(strings.ToLower(item.FileName), search)
	})
	if err != nil {
		return models.ItemPage{}, fmt.Errorf("list items: %w", err)
	}

	page := models.ItemPage{Total: len(matched), Page: q.Page, Limit: q.Limit, Items: []models.ClipboardItem{}}
	if from := (q.Page - 1) * q.Limit; from < len(matched) {
		to := min(from+q.Limit, len(matched))
		page.Items = matched[from:to]
	}
	return page, nil
}

func (s *itemService) GetItem(ctx context.Context, id models.ItemID) (models.ClipboardItem, error) {
	return s.items.Get(ctx, id)
}

func (s *itemService) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.ClipboardItem, error) {
	item := models.ClipboardItem{
		Type:     req.Type,
		Content:  req.Content,
		DeviceID: req.DeviceID,
		FileName: req.FileName,
		FileSize: req.FileSize,
		MimeType: req.MimeType,
	}
	if item.Type == models.ItemText {
		item.FileSize = int64(len(item.Content))
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		return models.ClipboardItem{}, fmt.Errorf("create item: %w", err)
	}

	s.logger.Debug().Str("id", created.ID.String()).Str("type", string(created.Type)).Msg("item created")
	return created, nil
}

func (s *itemService) UploadItem(ctx context.Context, file models.UploadedFile) (models.ClipboardItem, error) {
	itemType := file.Type
	if itemType == "" {
		itemType = models.ItemFile
	}
	if itemType != models.ItemFile && itemType != models.ItemImage {
		return models.ClipboardItem{}, ErrUnsupportedUpload
	}

	mimeType := file.MimeType
	if mimeType == "" || mimeType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(filepath.Ext(file.FileName)); byExt != "" {
			mimeType = byExt
		} else {
			mimeType = http.DetectContentType(file.Content)
		}
	}

	encoded := base64.StdEncoding.EncodeToString(file.Content)
	if itemType == models.ItemImage {
		encoded = "data:" + mimeType + ";base64," + encoded
	}

	return s.CreateItem(ctx, models.CreateItemRequest{
		Type:     itemType,
		Content:  encoded,
		DeviceID: file.DeviceID,
		FileName: file.FileName,
		MimeType: mimeType,
		FileSize: int64(len(file.Content)),
	})
}

func (s *itemService) UpdateItem(ctx context.Context, id models.ItemID, req models.UpdateItemRequest) (models.ClipboardItem, error) {
	return s.items.Update(ctx, id, req)
}

func (s *itemService) DeleteItem(ctx context.Context, id models.ItemID) error {
	_, err := s.items.Delete(ctx, id)
	return err
}

func (s *itemService) ItemFile(ctx context.Context, id models.ItemID) (models.FileContent, error) {
	item, err := s.items.Get(ctx, id)
	if err != nil {
		return models.FileContent{}, err
	}

	body, contentType, err := decodeContent(item)
	if err != nil {
		return models.FileContent{}, fmt.Errorf("item %s: %w", id, err)
	}

	name := item.FileName
	if name == "" {
		name = fmt.Sprintf("clipboard_%s%s", id, extensionFor(contentType))
	}

	return models.FileContent{
		Content:     body,
		ContentType: contentType,
		FileName:    name,
		Size:        int64(len(body)),
	}, nil
}

// decodeContent returns the raw bytes of an item and their media type. Text
// is served as is; image and file content is a data URL or plain base64.
func decodeContent(item models.ClipboardItem) ([]byte, string, error) {
	if item.Type == models.ItemText {
		return []byte(item.Content), "text/plain; charset=utf-8", nil
	}

	content, contentType := item.Content, item.MimeType
	if rest, ok := strings.CutPrefix(content, "data:"); ok {
		header, payload, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", ErrMalformedContent
		}
		if mediaType := strings.TrimSuffix(header, ";base64"); mediaType != "" {
			contentType = mediaType
		}
		content = payload
	}

	body, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrMalformedContent, err)
	}

	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(item.FileName))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return body, contentType, nil
}

func extensionFor(contentType string) string {
	if strings.HasPrefix(contentType, "text/plain") {
		return ".txt"
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
