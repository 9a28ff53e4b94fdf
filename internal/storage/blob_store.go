// Package storage implements the filesystem blob store backing the gallery.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	// ErrBlobNotFound is returned when the named blob does not exist.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrInvalidFilename is returned for empty or path-escaping names.
	ErrInvalidFilename = errors.New("invalid filename")
)

// BlobStore persists uploaded media files in a single directory and serves
// them back by name.
type BlobStore interface {
	// Save writes the blob under a sanitized, timestamp-prefixed name and
	// returns the stored filename.
	Save(originalName string, src io.Reader) (string, error)
	// Path resolves a stored filename to an on-disk path, verifying the file
	// exists and the name cannot escape the directory.
	Path(filename string) (string, error)
	// Remove deletes a stored blob. Used as the compensating action when the
	// gallery row insert fails after a successful write.
	Remove(filename string) error
}

type diskBlobStore struct {
	dir string
}

// NewDiskBlobStore creates the directory if needed and returns a store over it.
func NewDiskBlobStore(dir string) (BlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating blob directory %s: %w", dir, err)
	}
	return &diskBlobStore{dir: dir}, nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename strips any path components and replaces characters outside
// [A-Za-z0-9._-] so the result is safe to join onto the storage directory.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	return name
}

func (s *diskBlobStore) Save(originalName string, src io.Reader) (string, error) {
	clean := SanitizeFilename(originalName)
	if clean == "" {
		return "", ErrInvalidFilename
	}

	// Timestamp prefix keeps repeated uploads of the same file distinct.
	filename := time.Now().Format("20060102_150405_") + clean
	path := filepath.Join(s.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating blob %s: %w", filename, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing blob %s: %w", filename, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing blob %s: %w", filename, err)
	}
	return filename, nil
}

func (s *diskBlobStore) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", ErrInvalidFilename
	}
	path := filepath.Join(s.dir, filename)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrBlobNotFound
		}
		return "", fmt.Errorf("stating blob %s: %w", filename, err)
	}
	if info.IsDir() {
		return "", ErrBlobNotFound
	}
	return path, nil
}

func (s *diskBlobStore) Remove(filename string) error {
	if filename == "" || filename != filepath.Base(filename) {
		return ErrInvalidFilename
	}
	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil {
		if os.IsNotExist(err) {
			return ErrBlobNotFound
		}
		return fmt.Errorf("removing blob %s: %w", filename, err)
	}
	return nil
}
