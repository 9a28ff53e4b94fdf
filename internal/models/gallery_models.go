package models

import (
	"strings"
	"time"
)

// GalleryItem represents an uploaded media file described by a database row.
// Filename references a blob in the gallery directory; the row and the blob
// are written in a two-step sequence with compensating cleanup, not a
// transaction.
type GalleryItem struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	Filename    string    `json:"filename" db:"filename"`
	FileType    string    `json:"file_type" db:"file_type"`
	Category    string    `json:"category" db:"category"`
	UploadedBy  *string   `json:"uploaded_by,omitempty" db:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Type is derived from FileType on the way out, not stored.
	Type string `json:"type" db:"-"`
}

// DisplayType derives the client-side rendering choice from the stored MIME
// type: anything under video/ renders as video, everything else as an image.
func (g *GalleryItem) DisplayType() string {
	if strings.HasPrefix(g.FileType, "video/") {
		return "video"
	}
	return "image"
}
