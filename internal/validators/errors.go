// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidItemType      = errors.New("invalid item type")
	ErrEmptyContent         = errors.New("content is required")
	ErrEmptyFileName        = errors.New("fileName is required for file items")
	ErrInvalidFileName      = errors.New("fileName must not contain a path")
	ErrNegativeFileSize     = errors.New("fileSize must not be negative")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")
	ErrInvalidStrategy      = errors.New("invalid file cleanup strategy")
	ErrInvalidBeforeDate    = errors.New("beforeDate must be YYYY-MM-DD")
	ErrNegativeCount        = errors.New("counts must not be negative")
	ErrStrategyWithoutCount = errors.New("fileCleanupStrategy needs maxFileCount")
)
