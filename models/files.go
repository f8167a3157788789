// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FileRequest identifies a stored file by item id and, optionally, file name.
type FileRequest struct {
	ItemID   ItemID
	FileName string
}

// FileContent is a downloaded or previewed file body.
type FileContent struct {
	Content     []byte `json:"-"`
	ContentType string `json:"contentType"`
	FileName    string `json:"fileName"`
	Size        int64  `json:"fileSize"`
}

// SavedFile describes a file written to local disk.
type SavedFile struct {
	Path        string `json:"filePath"`
	FileName    string `json:"fileName"`
	Size        int64  `json:"fileSize"`
	ContentType string `json:"contentType"`
}

// FileStats is the payload of GET /api/files/stats.
type FileStats struct {
	TotalFiles    int   `json:"totalFiles"`
	TotalSize     int64 `json:"totalSize"`
	DirectorySize int64 `json:"directorySize,omitempty"`
	FileCount     int   `json:"fileCount,omitempty"`
}

// CleanupStatus is the payload of GET /api/files/cleanup/status.
type CleanupStatus struct {
	IsScheduled bool   `json:"isScheduled"`
	IsRunning   bool   `json:"isRunning"`
	LastRun     string `json:"lastRun,omitempty"`
	NextRun     string `json:"nextRun,omitempty"`
}

// UploadedFile is a multipart upload received by the development server.
type UploadedFile struct {
	Type     ItemType
	DeviceID string
	FileName string
	MimeType string
	Content  []byte
}
