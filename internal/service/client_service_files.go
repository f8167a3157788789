// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
)

// unknownFileName is what the adapter reports when the service sent no
// usable Content-Disposition.
const unknownFileName = "unknown_file"

type clientFilesService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientFilesService(serverAdapter adapter.ServerAdapter, log *logger.Logger) FilesService {
	return &clientFilesService{adapter: serverAdapter, logger: log}
}

func (f *clientFilesService) Preview(ctx context.Context, id models.ItemID, fileName string) models.Envelope[models.FileContent] {
	return f.fetch(ctx, id, fileName, adapter.FilePreview, false)
}

func (f *clientFilesService) Download(ctx context.Context, id models.ItemID, fileName string) models.Envelope[models.FileContent] {
	return f.fetch(ctx, id, fileName, adapter.FileDownload, false)
}

func (f *clientFilesService) PreviewLegacy(ctx context.Context, id models.ItemID) models.Envelope[models.FileContent] {
	return f.fetch(ctx, id, "", adapter.FilePreview, true)
}

func (f *clientFilesService) DownloadLegacy(ctx context.Context, id models.ItemID) models.Envelope[models.FileContent] {
	return f.fetch(ctx, id, "", adapter.FileDownload, true)
}

func (f *clientFilesService) fetch(ctx context.Context, id models.ItemID, fileName string, kind adapter.FileKind, legacy bool) models.Envelope[models.FileContent] {
	if strings.TrimSpace(id.String()) == "" {
		return failure[models.FileContent](ErrEmptyItemID)
	}

	reply, err := f.adapter.FetchFile(ctx, models.FileRequest{ItemID: id, FileName: fileName}, kind, legacy)
	if err != nil {
		f.logger.Err(err).
			Str("func", "clientFilesService.fetch").
			Str("kind", string(kind)).
			Str("id", id.String()).
			Msg("file request failed")
	}
	return fold(reply, err, fmt.Sprintf("file %s succeeded", kind))
}

// SaveToDisk downloads the file of item id into dir. The stored name is
// fileName when given, otherwise the name sent by the service, otherwise
// file_<id>. Names carrying a path are refused.
func (f *clientFilesService) SaveToDisk(ctx context.Context, id models.ItemID, dir, fileName string) models.Envelope[models.SavedFile] {
	if fileName != "" && !safeFileName(fileName) {
		return failure[models.SavedFile](fmt.Errorf("%w: %q", ErrUnsafeFileName, fileName))
	}

	downloaded := f.Download(ctx, id, fileName)
	if !downloaded.Success {
		return relabel(downloaded, models.SavedFile{}, "")
	}
	content := downloaded.Data

	name := fileName
	if name == "" && content.FileName != "" && content.FileName != unknownFileName {
		name = content.FileName
	}
	if name == "" {
		name = "file_" + id.String()
	}
	if !safeFileName(name) {
		return failure[models.SavedFile](fmt.Errorf("%w: %q", ErrUnsafeFileName, name))
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return failure[models.SavedFile](fmt.Errorf("create download dir: %w", err))
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content.Content, 0o644); err != nil {
		f.logger.Err(err).Str("func", "clientFilesService.SaveToDisk").Str("path", path).Msg("write failed")
		return failure[models.SavedFile](fmt.Errorf("write %s: %w", path, err))
	}

	saved := models.SavedFile{
		Path:        path,
		FileName:    name,
		Size:        int64(len(content.Content)),
		ContentType: content.ContentType,
	}
	return models.OK(saved, "file saved to "+path, downloaded.StatusCode)
}

func safeFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Base(name) == name
}

func (f *clientFilesService) Stats(ctx context.Context) models.Envelope[models.FileStats] {
	reply, err := f.adapter.FileStats(ctx)
	return fold(reply, err, "file stats fetched")
}

func (f *clientFilesService) Cleanup(ctx context.Context) models.Envelope[models.CleanupResult] {
	reply, err := f.adapter.CleanupFiles(ctx)
	if err != nil {
		f.logger.Err(err).Str("func", "clientFilesService.Cleanup").Msg("file cleanup failed")
	}
	return fold(reply, err, "file cleanup finished")
}

func (f *clientFilesService) CleanupStatus(ctx context.Context) models.Envelope[models.CleanupStatus] {
	reply, err := f.adapter.FileCleanupStatus(ctx)
	return fold(reply, err, "file cleanup status fetched")
}
