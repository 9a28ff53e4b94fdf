package services

import (
	"errors"
	"time"

	"foundation_backend/internal/config"
	"foundation_backend/internal/models"
	"foundation_backend/pkg/utils"
)

// ErrInvalidCredentials is returned for an unknown username or wrong password.
// The two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// --- Auth DTOs ---
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the operator's display identity and session token.
type AuthResponse struct {
	User  models.OperatorIdentity `json:"user"`
	Token string                  `json:"token"`
}

// --- AuthService Interface ---
//
// The session gate authenticates operators against the credential table
// injected at construction; it never touches the database. Passwords are
// compared in plaintext; hashing, lockout and rate limiting are intentionally
// absent from this system.
type AuthService interface {
	Login(req LoginRequest) (*AuthResponse, error)
}

// --- authService Implementation ---
type authService struct {
	credentials map[string]config.Operator
	jwtSecret   []byte
	sessionTTL  time.Duration
}

// NewAuthService creates a new instance of AuthService over the given
// credential table.
func NewAuthService(credentials map[string]config.Operator, jwtSecret string, sessionTTL time.Duration) AuthService {
	return &authService{
		credentials: credentials,
		jwtSecret:   []byte(jwtSecret),
		sessionTTL:  sessionTTL,
	}
}

// Login checks the submitted credentials against the static table. On match
// it issues a signed token marking the session authenticated and returns the
// operator's display role and name.
func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	op, ok := s.credentials[req.Username]
	if !ok || op.Password != req.Password {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(s.jwtSecret, s.sessionTTL, req.Username, op.Role, op.Name)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:  models.OperatorIdentity{Role: op.Role, Name: op.Name},
		Token: token,
	}, nil
}
