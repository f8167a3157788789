// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-clip-sync/internal/validators"
	"github.com/MKhiriev/go-clip-sync/models"
)

// ItemValidationService checks requests before handing them to the wrapped
// ItemService. Validation failures wrap [ErrInvalidDataProvided].
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{
		validator: validators.NewClipboardValidator(),
	}
}

func (v *ItemValidationService) Wrap(inner ItemService) ItemService {
	v.inner = inner
	return v
}

func (v *ItemValidationService) ListItems(ctx context.Context, q models.ListQuery) (models.ItemPage, error) {
	if q.Type != "" && !q.Type.Valid() {
		return models.ItemPage{}, fmt.Errorf("%w: unknown type %q", ErrInvalidDataProvided, q.Type)
	}
	return v.inner.ListItems(ctx, q)
}

func (v *ItemValidationService) GetItem(ctx context.Context, id models.ItemID) (models.ClipboardItem, error) {
	if strings.TrimSpace(id.String()) == "" {
		return models.ClipboardItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrEmptyItemID)
	}
	return v.inner.GetItem(ctx, id)
}

func (v *ItemValidationService) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.ClipboardItem, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ClipboardItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateItem(ctx, req)
}

func (v *ItemValidationService) UploadItem(ctx context.Context, file models.UploadedFile) (models.ClipboardItem, error) {
	if len(file.Content) == 0 {
		return models.ClipboardItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyContent)
	}

	req := models.CreateItemRequest{Type: file.Type, FileName: file.FileName}
	if req.Type == "" {
		req.Type = models.ItemFile
	}
	if err := v.validator.Validate(ctx, req, validators.FieldType, validators.FieldFileName); err != nil {
		return models.ClipboardItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UploadItem(ctx, file)
}

func (v *ItemValidationService) UpdateItem(ctx context.Context, id models.ItemID, req models.UpdateItemRequest) (models.ClipboardItem, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ClipboardItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateItem(ctx, id, req)
}

func (v *ItemValidationService) DeleteItem(ctx context.Context, id models.ItemID) error {
	if strings.TrimSpace(id.String()) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrEmptyItemID)
	}
	return v.inner.DeleteItem(ctx, id)
}

func (v *ItemValidationService) ItemFile(ctx context.Context, id models.ItemID) (models.FileContent, error) {
	if strings.TrimSpace(id.String()) == "" {
		return models.FileContent{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrEmptyItemID)
	}
	return v.inner.ItemFile(ctx, id)
}
