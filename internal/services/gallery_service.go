package services

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"foundation_backend/internal/models"
	"foundation_backend/internal/repositories"
	"foundation_backend/internal/storage"
	"foundation_backend/pkg/utils"
)

// --- Custom Service Errors for Gallery ---
var (
	ErrGalleryValidation = errors.New("gallery upload validation error")
	ErrBlobNotFound      = errors.New("gallery file not found")
)

// allowedExtensions is the upload allow-list, mapping each accepted extension
// to its MIME type. Go's builtin extension table lacks mp4/mov, so the types
// are pinned here rather than looked up. Checked before any blob write.
var allowedExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
}

// --- Gallery DTOs ---
type UploadGalleryItemRequest struct {
	Filename    string
	Title       string
	Description string
	Category    string
	UploadedBy  string
}

// --- GalleryService Interface ---
type GalleryService interface {
	// UploadItem writes the blob, then the row. If the row insert fails the
	// blob is removed again; the two steps are compensated, not transactional.
	UploadItem(req UploadGalleryItemRequest, src io.Reader) (int64, error)
	ListItems() ([]models.GalleryItem, error)
	// ResolveBlob maps a stored filename to its on-disk path for serving.
	ResolveBlob(filename string) (string, error)
}

// --- galleryService Implementation ---
type galleryService struct {
	galleryRepo repositories.GalleryRepository
	blobs       storage.BlobStore
	db          *sql.DB
}

// NewGalleryService creates a new instance of GalleryService.
func NewGalleryService(repo repositories.GalleryRepository, blobs storage.BlobStore, db *sql.DB) GalleryService {
	return &galleryService{galleryRepo: repo, blobs: blobs, db: db}
}

func (s *galleryService) UploadItem(req UploadGalleryItemRequest, src io.Reader) (int64, error) {
	if utils.IsEmpty(req.Filename) {
		return 0, fmt.Errorf("%w: no file selected", ErrGalleryValidation)
	}
	ext := strings.ToLower(filepath.Ext(req.Filename))
	fileType, ok := allowedExtensions[ext]
	if !ok {
		return 0, fmt.Errorf("%w: file type %q is not allowed", ErrGalleryValidation, ext)
	}

	stored, err := s.blobs.Save(req.Filename, src)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFilename) {
			return 0, fmt.Errorf("%w: no file selected", ErrGalleryValidation)
		}
		return 0, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	title := req.Title
	if title == "" {
		title = stored
	}

	item := &models.GalleryItem{
		Title:    title,
		Filename: stored,
		FileType: fileType,
		Category: req.Category,
	}
	if req.Description != "" {
		item.Description = &req.Description
	}
	if req.UploadedBy != "" {
		item.UploadedBy = &req.UploadedBy
	}

	id, err := s.galleryRepo.CreateItem(s.db, item)
	if err != nil {
		// Compensating action: the blob must not outlive a failed insert.
		if rmErr := s.blobs.Remove(stored); rmErr != nil {
			utils.LogError(rmErr, "UploadItem: failed to remove orphaned blob "+stored)
		}
		return 0, fmt.Errorf("failed to save gallery item: %w", err)
	}
	return id, nil
}

// ListItems returns gallery items newest first, with the display type derived
// from each item's MIME type.
func (s *galleryService) ListItems() ([]models.GalleryItem, error) {
	items, err := s.galleryRepo.GetItems()
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery items: %w", err)
	}
	if items == nil {
		items = []models.GalleryItem{}
	}
	for i := range items {
		items[i].Type = items[i].DisplayType()
	}
	return items, nil
}

func (s *galleryService) ResolveBlob(filename string) (string, error) {
	path, err := s.blobs.Path(filename)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) || errors.Is(err, storage.ErrInvalidFilename) {
			return "", ErrBlobNotFound
		}
		return "", fmt.Errorf("failed to resolve gallery file: %w", err)
	}
	return path, nil
}
