// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
	"time"
)

// ItemType is the kind of content a clipboard item carries.
type ItemType string

const (
	ItemText  ItemType = "text"
	ItemImage ItemType = "image"
	ItemFile  ItemType = "file"
)

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemText, ItemImage, ItemFile:
		return true
	}
	return false
}

// ListFilter narrows a clipboard listing to a preset view.
type ListFilter string

const (
	FilterAllText   ListFilter = "all_text"
	FilterAllImages ListFilter = "all_images"
	FilterLatest    ListFilter = "latest"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ClipboardItem is a single stored clipboard entry. Its fields are owned by the
// service; the client only forwards them.
type ClipboardItem struct {
	ID        ItemID     `json:"id,omitempty"`
	Type      ItemType   `json:"type"`
	Content   string     `json:"content,omitempty"`
	DeviceID  string     `json:"deviceId,omitempty"`
	FileName  string     `json:"fileName,omitempty"`
	FileSize  int64      `json:"fileSize,omitempty"`
	MimeType  string     `json:"mimeType,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Preview returns a single-line, length-limited rendering of the item content.
func (i ClipboardItem) Preview(max int) string {
	if i.Type != ItemText && i.FileName != "" {
		return i.FileName
	}

	text := strings.Join(strings.Fields(i.Content), " ")
	runes := []rune(text)
	if max > 0 && len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return text
}

// ItemPage is one page of a clipboard listing. The service answers either with
// a bare array of items or with an object carrying the items and paging
// counters; both shapes decode into ItemPage.
type ItemPage struct {
	Items []ClipboardItem `json:"items"`
	Total int             `json:"total"`
	Page  int             `json:"page,omitempty"`
	Limit int             `json:"limit,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *ItemPage) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if strings.HasPrefix(trimmed, "[") {
		var items []ClipboardItem
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*p = ItemPage{Items: items, Total: len(items)}
		return nil
	}

	var obj struct {
		Items      []ClipboardItem `json:"items"`
		Data       []ClipboardItem `json:"data"`
		List       []ClipboardItem `json:"list"`
		Total      *int            `json:"total"`
		Page       int             `json:"page"`
		Limit      int             `json:"limit"`
		Pagination *struct {
			Total int `json:"total"`
			Page  int `json:"page"`
			Limit int `json:"limit"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	page := ItemPage{Page: obj.Page, Limit: obj.Limit}
	switch {
	case obj.Items != nil:
		page.Items = obj.Items
	case obj.Data != nil:
		page.Items = obj.Data
	default:
		page.Items = obj.List
	}

	page.Total = len(page.Items)
	if obj.Total != nil {
		page.Total = *obj.Total
	}
	if obj.Pagination != nil {
		page.Total = obj.Pagination.Total
		page.Page = obj.Pagination.Page
		page.Limit = obj.Pagination.Limit
	}

	*p = page
	return nil
}

// ListQuery holds the filters of GET /api/clipboard.
type ListQuery struct {
	Page     int
	Limit    int
	Type     ItemType
	Search   string
	Filter   ListFilter
	DeviceID string
}

// Normalize applies the paging defaults: page starts at 1 and limit is clamped
// to 1..MaxPageLimit (DefaultPageLimit when unset).
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	switch {
	case q.Limit == 0:
		q.Limit = DefaultPageLimit
	case q.Limit < 1:
		q.Limit = 1
	case q.Limit > MaxPageLimit:
		q.Limit = MaxPageLimit
	}
	return q
}

// CreateItemRequest is the body of POST /api/clipboard.
type CreateItemRequest struct {
	Type     ItemType `json:"type"`
	Content  string   `json:"content"`
	DeviceID string   `json:"deviceId,omitempty"`
	FileName string   `json:"fileName,omitempty"`
	MimeType string   `json:"mimeType,omitempty"`
	FileSize int64    `json:"fileSize,omitempty"`
}

// UpdateItemRequest is the body of PUT /api/clipboard/{id}. At least one field
// must be set.
type UpdateItemRequest struct {
	Content  *string `json:"content,omitempty"`
	FileName *string `json:"fileName,omitempty"`
}

// Empty reports whether the request carries no change.
func (r UpdateItemRequest) Empty() bool {
	return r.Content == nil && r.FileName == nil
}

// UploadRequest describes a multipart upload to POST /api/clipboard/upload.
type UploadRequest struct {
	FilePath string
	DeviceID string
	// Type is either ItemFile or ItemImage; ItemFile when empty.
	Type ItemType
	// FileName overrides the base name of FilePath.
	FileName string
}

// Payload is image or file content, given either as raw bytes or as an
// already encoded string (plain base64 or a data URL).
type Payload struct {
	Bytes   []byte
	Encoded string
}

func (p Payload) Empty() bool {
	return len(p.Bytes) == 0 && p.Encoded == ""
}
