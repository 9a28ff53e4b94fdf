package services

import (
	"database/sql"
	"errors"
	"fmt"

	"foundation_backend/internal/models"
	"foundation_backend/internal/repositories"
	"foundation_backend/pkg/utils"
)

// ErrContactValidation covers missing or malformed contact form fields.
var ErrContactValidation = errors.New("contact message validation error")

// DefaultMessageLimit caps the contact message listing.
const DefaultMessageLimit = 50

// --- Contact DTOs ---
type CreateContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// --- ContactService Interface ---
type ContactService interface {
	CreateMessage(req CreateContactMessageRequest) (int64, error)
	ListMessages(limit int) ([]models.ContactMessage, error)
}

// --- contactService Implementation ---
type contactService struct {
	contactRepo repositories.ContactRepository
	db          *sql.DB
}

// NewContactService creates a new instance of ContactService.
func NewContactService(repo repositories.ContactRepository, db *sql.DB) ContactService {
	return &contactService{contactRepo: repo, db: db}
}

// CreateMessage validates the public contact form; all four fields are required.
func (s *contactService) CreateMessage(req CreateContactMessageRequest) (int64, error) {
	if utils.IsEmpty(req.Name) || utils.IsEmpty(req.Email) ||
		utils.IsEmpty(req.Subject) || utils.IsEmpty(req.Message) {
		return 0, fmt.Errorf("%w: name, email, subject and message are required", ErrContactValidation)
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	id, err := s.contactRepo.CreateMessage(s.db, msg)
	if err != nil {
		return 0, fmt.Errorf("failed to create contact message: %w", err)
	}
	return id, nil
}

// ListMessages returns the most recent messages, newest first. Non-positive
// limits fall back to the default cap of 50.
func (s *contactService) ListMessages(limit int) ([]models.ContactMessage, error) {
	if limit <= 0 || limit > DefaultMessageLimit {
		limit = DefaultMessageLimit
	}
	messages, err := s.contactRepo.GetRecentMessages(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	return messages, nil
}
