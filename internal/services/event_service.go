package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"foundation_backend/internal/models"
	"foundation_backend/internal/repositories"
	"foundation_backend/pkg/utils"
)

// --- Custom Service Errors for Event ---
var (
	ErrEventValidation = errors.New("event data validation error")
	ErrEventDateFormat = errors.New("invalid event date, please use YYYY-MM-DD")
)

// --- Event DTOs ---
type CreateEventRequest struct {
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	EventDate       string  `json:"event_date"` // Format YYYY-MM-DD
	EventTime       *string `json:"event_time"`
	Location        *string `json:"location"`
	Category        string  `json:"category"`
	MaxParticipants *int    `json:"max_participants"`
	CreatedBy       string  `json:"created_by"`
}

// --- EventService Interface ---
type EventService interface {
	CreateEvent(req CreateEventRequest) (int64, error)
	ListUpcomingEvents() ([]models.Event, error)
}

// --- eventService Implementation ---
type eventService struct {
	eventRepo repositories.EventRepository
	db        *sql.DB
}

// NewEventService creates a new instance of EventService.
func NewEventService(repo repositories.EventRepository, db *sql.DB) EventService {
	return &eventService{eventRepo: repo, db: db}
}

// CreateEvent validates and inserts an event. A past event_date is accepted;
// it just never appears in the upcoming listing.
func (s *eventService) CreateEvent(req CreateEventRequest) (int64, error) {
	if utils.IsEmpty(req.Title) || utils.IsEmpty(req.EventDate) {
		return 0, fmt.Errorf("%w: title and event_date are required", ErrEventValidation)
	}
	if _, err := time.Parse("2006-01-02", req.EventDate); err != nil {
		return 0, ErrEventDateFormat
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = "System"
	}

	event := &models.Event{
		Title:           req.Title,
		Description:     req.Description,
		EventDate:       req.EventDate,
		EventTime:       req.EventTime,
		Location:        req.Location,
		Category:        req.Category,
		MaxParticipants: req.MaxParticipants,
		CreatedBy:       &createdBy,
	}

	id, err := s.eventRepo.CreateEvent(s.db, event)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}
	return id, nil
}

// ListUpcomingEvents returns events dated today or later, ascending by date.
func (s *eventService) ListUpcomingEvents() ([]models.Event, error) {
	events, err := s.eventRepo.GetUpcomingEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}
