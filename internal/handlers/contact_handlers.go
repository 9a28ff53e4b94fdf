package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foundation_backend/internal/services"
	"foundation_backend/pkg/utils"
)

// ContactHandler holds the contact service.
type ContactHandler struct {
	contactService services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(cs services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

// ListMessages handles GET /api/contact, an operator-only listing.
func (h *ContactHandler) ListMessages(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultMessageLimit)))

	messages, err := h.contactService.ListMessages(limit)
	if err != nil {
		utils.LogError(err, "ListMessages: Error from contactService.ListMessages")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"messages":    messages,
		"total_count": len(messages),
	})
}

// CreateMessage handles POST /api/contact, the public contact form.
func (h *ContactHandler) CreateMessage(c *gin.Context) {
	var req services.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateMessage: Failed to bind JSON")
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if _, err := h.contactService.CreateMessage(req); err != nil {
		if errors.Is(err, services.ErrContactValidation) {
			utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		} else {
			utils.LogError(err, "CreateMessage: Error from contactService.CreateMessage")
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send message")
		}
		return
	}

	utils.LogInfo("Contact message received", map[string]interface{}{"name": req.Name, "email": req.Email})
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message sent successfully",
	})
}
