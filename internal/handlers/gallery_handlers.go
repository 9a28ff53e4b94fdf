package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foundation_backend/internal/services"
	"foundation_backend/pkg/utils"
)

// GalleryHandler holds the gallery service.
type GalleryHandler struct {
	galleryService services.GalleryService
	maxUploadBytes int64
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(gs services.GalleryService, maxUploadBytes int64) *GalleryHandler {
	return &GalleryHandler{galleryService: gs, maxUploadBytes: maxUploadBytes}
}

// ListItems handles GET /api/gallery.
func (h *GalleryHandler) ListItems(c *gin.Context) {
	items, err := h.galleryService.ListItems()
	if err != nil {
		utils.LogError(err, "ListItems: Error from galleryService.ListItems")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch gallery")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"items":       items,
		"total_count": len(items),
	})
}

// UploadItem handles POST /api/gallery/upload: multipart file plus metadata.
func (h *GalleryHandler) UploadItem(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No file provided")
		return
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		utils.RespondWithError(c, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.LogError(err, "UploadItem: Failed to open multipart file")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	uploadedBy := c.PostForm("uploaded_by")
	if uploadedBy == "" {
		uploadedBy = c.GetString("username")
	}

	req := services.UploadGalleryItemRequest{
		Filename:    fileHeader.Filename,
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		UploadedBy:  uploadedBy,
	}

	galleryID, err := h.galleryService.UploadItem(req, file)
	if err != nil {
		if errors.Is(err, services.ErrGalleryValidation) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid file type")
		} else {
			utils.LogError(err, "UploadItem: Error from galleryService.UploadItem")
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save file info")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "File uploaded successfully",
		"gallery_id": galleryID,
	})
}

// ServeFile handles GET /gallery/:filename, returning the raw blob bytes.
func (h *GalleryHandler) ServeFile(c *gin.Context) {
	path, err := h.galleryService.ResolveBlob(c.Param("filename"))
	if err != nil {
		if errors.Is(err, services.ErrBlobNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "File not found")
		} else {
			utils.LogError(err, "ServeFile: Error from galleryService.ResolveBlob")
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read file")
		}
		return
	}
	c.File(path)
}
