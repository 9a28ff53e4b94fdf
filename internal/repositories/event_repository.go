package repositories

import (
	"database/sql"
	"fmt"

	"foundation_backend/internal/models"
)

// EventRepository defines the interface for event-related database operations.
type EventRepository interface {
	CreateEvent(executor SQLExecutor, event *models.Event) (int64, error)
	GetUpcomingEvents() ([]models.Event, error)
	CountEvents() (int, error)
}

type eventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

// CreateEvent inserts a new event into the database. Past dates are accepted;
// they simply never show up in the upcoming listing.
func (r *eventRepository) CreateEvent(executor SQLExecutor, event *models.Event) (int64, error) {
	query := `INSERT INTO events (title, description, event_date, event_time, location, category, max_participants, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`

	if event.Category == "" {
		event.Category = "Community Service"
	}

	err := executor.QueryRow(query,
		event.Title, event.Description, event.EventDate, event.EventTime,
		event.Location, event.Category, event.MaxParticipants, event.CreatedBy,
	).Scan(&event.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating event: %v", ErrDatabaseError, err)
	}
	return event.ID, nil
}

// GetUpcomingEvents retrieves events dated today or later, soonest first.
func (r *eventRepository) GetUpcomingEvents() ([]models.Event, error) {
	events := []models.Event{}
	query := `SELECT id, title, description, event_date::text, event_time, location, category,
	                 max_participants, current_participants, created_by, created_at
	          FROM events
	          WHERE event_date >= CURRENT_DATE
	          ORDER BY event_date ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying events: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.EventDate, &e.EventTime, &e.Location,
			&e.Category, &e.MaxParticipants, &e.CurrentParticipants, &e.CreatedBy, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning event: %v", ErrDatabaseError, err)
		}
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating event rows: %v", ErrDatabaseError, err)
	}
	return events, nil
}

// CountEvents returns the total number of events, past and future.
func (r *eventRepository) CountEvents() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting events: %v", ErrDatabaseError, err)
	}
	return count, nil
}
