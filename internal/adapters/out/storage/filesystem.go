// Package storage provides MediaStorage implementations for shipment proof
// media. References handed back to callers are opaque strings; the order
// aggregate stores them without interpreting them.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"docdispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// FilesystemMediaStorage stores media files under a base directory,
// naming each file by a fresh UUID plus the extension inferred from its
// content type. Suitable for single-node deployments; the reference format
// is just the file name, so a bucket-backed implementation can replace it
// without touching stored orders.
type FilesystemMediaStorage struct {
	baseDir string
}

// NewFilesystemMediaStorage creates the base directory if needed and returns
// a storage rooted there.
func NewFilesystemMediaStorage(baseDir string) (*FilesystemMediaStorage, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}
	return &FilesystemMediaStorage{baseDir: baseDir}, nil
}

// Store writes the content to a new file and returns its reference.
func (s *FilesystemMediaStorage) Store(
	_ context.Context,
	contentType string,
	content io.Reader,
) (string, error) {
	reference := uuid.NewString() + extensionFor(contentType)

	file, err := os.Create(filepath.Join(s.baseDir, reference))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}

	if _, err := io.Copy(file, content); err != nil {
		_ = file.Close()
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("write media file: %w", err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close media file: %w", err)
	}

	return reference, nil
}

// Load opens the file behind a reference. The reference is reduced to its
// base name so a crafted value cannot escape the base directory.
func (s *FilesystemMediaStorage) Load(_ context.Context, reference string) (io.ReadCloser, error) {
	name := filepath.Base(reference)

	file, err := os.Open(filepath.Join(s.baseDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.NewObjectNotFoundError("media reference", reference)
		}
		return nil, err
	}

	return file, nil
}

func extensionFor(contentType string) string {
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}
