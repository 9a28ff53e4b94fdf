package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foundation_backend/internal/services"
	"foundation_backend/pkg/utils"
)

// EventHandler holds the event service.
type EventHandler struct {
	eventService services.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(es services.EventService) *EventHandler {
	return &EventHandler{eventService: es}
}

// ListUpcomingEvents handles GET /api/events.
func (h *EventHandler) ListUpcomingEvents(c *gin.Context) {
	events, err := h.eventService.ListUpcomingEvents()
	if err != nil {
		utils.LogError(err, "ListUpcomingEvents: Error from eventService.ListUpcomingEvents")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"events":      events,
		"total_count": len(events),
	})
}

// CreateEvent handles POST /api/events. The route sits behind the session
// gate; the authenticated operator becomes the default created_by.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req services.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateEvent: Failed to bind JSON")
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.CreatedBy == "" {
		req.CreatedBy = c.GetString("username")
	}

	eventID, err := h.eventService.CreateEvent(req)
	if err != nil {
		if errors.Is(err, services.ErrEventValidation) || errors.Is(err, services.ErrEventDateFormat) {
			utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		} else {
			utils.LogError(err, "CreateEvent: Error from eventService.CreateEvent")
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create event")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Event created successfully",
		"event_id": eventID,
	})
}
