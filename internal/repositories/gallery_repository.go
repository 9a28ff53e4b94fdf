package repositories

import (
	"database/sql"
	"fmt"

	"foundation_backend/internal/models"
)

// GalleryRepository defines the interface for gallery-item database operations.
type GalleryRepository interface {
	CreateItem(executor SQLExecutor, item *models.GalleryItem) (int64, error)
	GetItems() ([]models.GalleryItem, error)
	CountItems() (int, error)
}

type galleryRepository struct {
	db *sql.DB
}

// NewGalleryRepository creates a new instance of GalleryRepository.
func NewGalleryRepository(db *sql.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

// CreateItem inserts a new gallery item row. The referenced blob must already
// exist; the caller removes it again if this insert fails.
func (r *galleryRepository) CreateItem(executor SQLExecutor, item *models.GalleryItem) (int64, error) {
	query := `INSERT INTO gallery_items (title, description, filename, file_type, category, uploaded_by)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	if item.Category == "" {
		item.Category = "Impact"
	}

	err := executor.QueryRow(query,
		item.Title, item.Description, item.Filename,
		item.FileType, item.Category, item.UploadedBy,
	).Scan(&item.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating gallery item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

// GetItems retrieves all gallery items, newest first.
func (r *galleryRepository) GetItems() ([]models.GalleryItem, error) {
	items := []models.GalleryItem{}
	query := `SELECT id, title, description, filename, file_type, category, uploaded_by, created_at
	          FROM gallery_items
	          ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying gallery items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.GalleryItem
		var fileType sql.NullString
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Description, &item.Filename,
			&fileType, &item.Category, &item.UploadedBy, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning gallery item: %v", ErrDatabaseError, err)
		}
		item.FileType = fileType.String
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating gallery item rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}

// CountItems returns the total number of gallery items.
func (r *galleryRepository) CountItems() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM gallery_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting gallery items: %v", ErrDatabaseError, err)
	}
	return count, nil
}
