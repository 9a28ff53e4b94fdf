package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foundation_backend/internal/services"
	"foundation_backend/pkg/utils"
)

// BlogHandler holds the blog service.
type BlogHandler struct {
	blogService services.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(bs services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: bs}
}

// ListPosts handles GET /api/blog.
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.blogService.ListPosts()
	if err != nil {
		utils.LogError(err, "ListPosts: Error from blogService.ListPosts")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to list posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"posts":       posts,
		"total_count": len(posts),
	})
}

// GetPost handles GET /api/blog/:filename.
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.blogService.GetPost(c.Param("filename"))
	if err != nil {
		h.respondBlogError(c, err, "GetPost")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post":    post,
	})
}

// DownloadPost handles GET /api/blog/:filename/download, serving the script
// as an attachment.
func (h *BlogHandler) DownloadPost(c *gin.Context) {
	filename := c.Param("filename")
	path, err := h.blogService.ResolveScript(filename)
	if err != nil {
		h.respondBlogError(c, err, "DownloadPost")
		return
	}
	c.FileAttachment(path, filename)
}

func (h *BlogHandler) respondBlogError(c *gin.Context, err error, op string) {
	if errors.Is(err, services.ErrNotScriptFile) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid file type")
	} else if errors.Is(err, services.ErrBlogPostNotFound) {
		utils.RespondWithError(c, http.StatusNotFound, "File not found")
	} else {
		utils.LogError(err, op+": Error from blogService")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read file")
	}
}
