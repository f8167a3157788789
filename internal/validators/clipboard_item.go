// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-clip-sync/models"
)

const (
	FieldType     = "type"
	FieldContent  = "content"
	FieldFileName = "file_name"
	FieldFileSize = "file_size"

	FieldUpdate = "update"

	FieldMaxCount   = "max_count"
	FieldBeforeDate = "before_date"
	FieldFileCount  = "max_file_count"
	FieldStrategy   = "strategy"

	FieldMaxItems    = "max_items"
	FieldCleanupDays = "auto_cleanup_days"
	FieldFileCleanup = "file_cleanup"
)

// ClipboardValidator validates the requests of the clipboard, config and
// cleanup endpoints.
type ClipboardValidator struct{}

func NewClipboardValidator() Validator {
	return &ClipboardValidator{}
}

func (v *ClipboardValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateItemRequest:
		return v.validateCreate(value, fields...)
	case *models.CreateItemRequest:
		return v.validateCreate(*value, fields...)

	case models.UpdateItemRequest:
		return v.validateUpdate(value, fields...)
	case *models.UpdateItemRequest:
		return v.validateUpdate(*value, fields...)

	case models.CleanupRequest:
		return v.validateCleanup(value, fields...)
	case *models.CleanupRequest:
		return v.validateCleanup(*value, fields...)

	case models.UserConfig:
		return v.validateUserConfig(value, fields...)
	case *models.UserConfig:
		return v.validateUserConfig(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ClipboardValidator) validateCreate(req models.CreateItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldContent, FieldFileName, FieldFileSize}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if !req.Type.Valid() {
				return ErrInvalidItemType
			}
		case FieldContent:
			if strings.TrimSpace(req.Content) == "" {
				return ErrEmptyContent
			}
		case FieldFileName:
			if req.Type == models.ItemFile && strings.TrimSpace(req.FileName) == "" {
				return ErrEmptyFileName
			}
			if req.FileName != "" && !plainFileName(req.FileName) {
				return ErrInvalidFileName
			}
		case FieldFileSize:
			if req.FileSize < 0 {
				return ErrNegativeFileSize
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ClipboardValidator) validateUpdate(req models.UpdateItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdate, FieldFileName}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdate:
			if req.Empty() {
				return ErrNoFieldsToUpdate
			}
		case FieldFileName:
			if req.FileName != nil && !plainFileName(*req.FileName) {
				return ErrInvalidFileName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ClipboardValidator) validateCleanup(req models.CleanupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMaxCount, FieldBeforeDate, FieldFileCount, FieldStrategy}
	}

	for _, f := range fields {
		switch f {
		case FieldMaxCount:
			if req.MaxCount < 0 {
				return ErrNegativeCount
			}
		case FieldBeforeDate:
			if req.BeforeDate == "" {
				continue
			}
			if _, err := time.Parse(models.DateLayout, req.BeforeDate); err != nil {
				return ErrInvalidBeforeDate
			}
		case FieldFileCount:
			if req.MaxFileCount < 0 {
				return ErrNegativeCount
			}
		case FieldStrategy:
			if req.FileCleanupStrategy == "" {
				continue
			}
			if !req.FileCleanupStrategy.Valid() {
				return ErrInvalidStrategy
			}
			if req.MaxFileCount == 0 {
				return ErrStrategyWithoutCount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ClipboardValidator) validateUserConfig(cfg models.UserConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMaxItems, FieldCleanupDays, FieldFileCleanup}
	}

	for _, f := range fields {
		switch f {
		case FieldMaxItems:
			if cfg.MaxItems != nil && *cfg.MaxItems <= 0 {
				return ErrNegativeCount
			}
		case FieldCleanupDays:
			if cfg.AutoCleanupDays != nil && *cfg.AutoCleanupDays < 0 {
				return ErrNegativeCount
			}
		case FieldFileCleanup:
			fc := cfg.FileCleanup
			if fc == nil {
				continue
			}
			if fc.MaxFileCount != nil && *fc.MaxFileCount < 0 {
				return ErrNegativeCount
			}
			if fc.Strategy != "" && !fc.Strategy.Valid() {
				return ErrInvalidStrategy
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// plainFileName rejects names that would escape a download directory.
func plainFileName(name string) bool {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Base(name) == name
}
