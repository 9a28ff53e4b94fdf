package services

import (
	"database/sql"
	"errors"
	"fmt"

	"foundation_backend/internal/models"
	"foundation_backend/internal/repositories"
	"foundation_backend/pkg/utils"
)

// --- Custom Service Errors for Member ---
var (
	ErrMemberValidation = errors.New("member data validation error")
	ErrEmailExists      = errors.New("email already registered")
)

// --- Member DTOs ---
type CreateMemberRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Birthday *string `json:"birthday"` // Format YYYY-MM-DD
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Skills   *string `json:"skills"`
}

// --- MemberService Interface ---
type MemberService interface {
	CreateMember(req CreateMemberRequest) (int64, error)
	ListMembers() ([]models.Member, error)
}

// --- memberService Implementation ---
type memberService struct {
	memberRepo repositories.MemberRepository
	db         *sql.DB
}

// NewMemberService creates a new instance of MemberService.
func NewMemberService(repo repositories.MemberRepository, db *sql.DB) MemberService {
	return &memberService{memberRepo: repo, db: db}
}

// CreateMember validates the intake form and inserts the member. A duplicate
// email surfaces as ErrEmailExists rather than a generic storage failure.
func (s *memberService) CreateMember(req CreateMemberRequest) (int64, error) {
	if utils.IsEmpty(req.Name) || utils.IsEmpty(req.Email) {
		return 0, fmt.Errorf("%w: name and email are required", ErrMemberValidation)
	}
	if !utils.IsValidEmail(req.Email) {
		return 0, fmt.Errorf("%w: email format is invalid", ErrMemberValidation)
	}

	member := &models.Member{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Birthday: req.Birthday,
		Phone:    req.Phone,
		Address:  req.Address,
		Skills:   req.Skills,
	}

	id, err := s.memberRepo.CreateMember(s.db, member)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return 0, ErrEmailExists
		}
		return 0, fmt.Errorf("failed to create member: %w", err)
	}
	return id, nil
}

// ListMembers returns all active members, leadership roles first, then
// alphabetical within each role. An empty list is success.
func (s *memberService) ListMembers() ([]models.Member, error) {
	members, err := s.memberRepo.GetActiveMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	if members == nil {
		members = []models.Member{}
	}
	return members, nil
}
