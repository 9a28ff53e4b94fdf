package repositories

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundation_backend/internal/models"
)

func setupGalleryRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, GalleryRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewGalleryRepository(db)
}

func TestCreateItem_Success(t *testing.T) {
	db, mock, repo := setupGalleryRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO gallery_items").
		WithArgs("Beach Cleanup", nil, "20240101_120000_beach.png", "image/png", "Impact", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	item := &models.GalleryItem{
		Title:    "Beach Cleanup",
		Filename: "20240101_120000_beach.png",
		FileType: "image/png",
	}
	id, err := repo.CreateItem(db, item)

	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	assert.Equal(t, "Impact", item.Category, "empty category should default")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateItem_InsertFailure(t *testing.T) {
	db, mock, repo := setupGalleryRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO gallery_items").
		WillReturnError(errors.New("constraint failure"))

	item := &models.GalleryItem{Title: "x", Filename: "x.png", FileType: "image/png"}
	_, err := repo.CreateItem(db, item)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDatabaseError))
}

func TestGetItems_NewestFirst(t *testing.T) {
	db, mock, repo := setupGalleryRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "filename", "file_type", "category", "uploaded_by", "created_at",
	}).
		AddRow(int64(2), "Gala Video", nil, "20240601_gala.mp4", "video/mp4", "Impact", "admin", now).
		AddRow(int64(1), "Cleanup Photo", nil, "20240101_beach.png", "image/png", "Impact", nil, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM gallery_items").
		WillReturnRows(rows)

	items, err := repo.GetItems()

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Gala Video", items[0].Title)
	assert.Equal(t, "video/mp4", items[0].FileType)
	assert.Nil(t, items[1].UploadedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetItems_NullFileType(t *testing.T) {
	db, mock, repo := setupGalleryRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "filename", "file_type", "category", "uploaded_by", "created_at",
	}).
		AddRow(int64(1), "Legacy Item", nil, "old.bin", nil, "Impact", nil, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM gallery_items").
		WillReturnRows(rows)

	items, err := repo.GetItems()

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].FileType)
	assert.Equal(t, "image", items[0].DisplayType(), "unknown types render as image")
}

func TestCountItems(t *testing.T) {
	db, mock, repo := setupGalleryRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM gallery_items`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountItems()

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
