package models

import "time"

// Event represents a scheduled foundation event. Listing only surfaces events
// whose date is today or later; creation accepts past dates.
type Event struct {
	ID                  int64     `json:"id" db:"id"`
	Title               string    `json:"title" db:"title"`
	Description         *string   `json:"description,omitempty" db:"description"`
	EventDate           string    `json:"event_date" db:"event_date"` // YYYY-MM-DD
	EventTime           *string   `json:"event_time,omitempty" db:"event_time"`
	Location            *string   `json:"location,omitempty" db:"location"`
	Category            string    `json:"category" db:"category"`
	MaxParticipants     *int      `json:"max_participants,omitempty" db:"max_participants"`
	CurrentParticipants int       `json:"current_participants" db:"current_participants"`
	CreatedBy           *string   `json:"created_by,omitempty" db:"created_by"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}
