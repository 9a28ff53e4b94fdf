package repositories

import (
	"database/sql"
	"fmt"

	"foundation_backend/internal/models"
)

// ContactRepository defines the interface for contact-message database operations.
type ContactRepository interface {
	CreateMessage(executor SQLExecutor, msg *models.ContactMessage) (int64, error)
	GetRecentMessages(limit int) ([]models.ContactMessage, error)
	CountMessages() (int, error)
}

type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new instance of ContactRepository.
func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{db: db}
}

// CreateMessage inserts a new contact message into the database.
func (r *contactRepository) CreateMessage(executor SQLExecutor, msg *models.ContactMessage) (int64, error) {
	query := `INSERT INTO contact_messages (name, email, subject, message)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	err := executor.QueryRow(query, msg.Name, msg.Email, msg.Subject, msg.Message).Scan(&msg.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating contact message: %v", ErrDatabaseError, err)
	}
	return msg.ID, nil
}

// GetRecentMessages retrieves the newest messages first, capped at limit.
func (r *contactRepository) GetRecentMessages(limit int) ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	query := `SELECT id, name, email, subject, message, status, created_at
	          FROM contact_messages
	          ORDER BY created_at DESC
	          LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying contact messages: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning contact message: %v", ErrDatabaseError, err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating contact message rows: %v", ErrDatabaseError, err)
	}
	return messages, nil
}

// CountMessages returns the total number of contact messages.
func (r *contactRepository) CountMessages() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM contact_messages`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting contact messages: %v", ErrDatabaseError, err)
	}
	return count, nil
}
