package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"foundation_backend/internal/models"
)

// MemberRepository defines the interface for member-related database operations.
type MemberRepository interface {
	CreateMember(executor SQLExecutor, member *models.Member) (int64, error)
	GetActiveMembers() ([]models.Member, error)
	CountActiveMembers() (int, error)
}

type memberRepository struct {
	db *sql.DB
}

// NewMemberRepository creates a new instance of MemberRepository.
func NewMemberRepository(db *sql.DB) MemberRepository {
	return &memberRepository{db: db}
}

// CreateMember inserts a new member into the database.
func (r *memberRepository) CreateMember(executor SQLExecutor, member *models.Member) (int64, error) {
	query := `INSERT INTO members (name, email, role, birthday, phone, address, skills)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	if member.Role == "" {
		member.Role = "Volunteer"
	}

	err := executor.QueryRow(query,
		member.Name, member.Email, member.Role,
		member.Birthday, member.Phone, member.Address, member.Skills,
	).Scan(&member.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
			}
		}
		return 0, fmt.Errorf("%w: creating member: %v", ErrDatabaseError, err)
	}
	return member.ID, nil
}

// GetActiveMembers retrieves all active members ordered by role then name.
// An empty result is not an error.
func (r *memberRepository) GetActiveMembers() ([]models.Member, error) {
	members := []models.Member{}
	query := `SELECT id, name, email, role, join_date::text, birthday::text, phone, address, skills, active, created_at
	          FROM members WHERE active = TRUE
	          ORDER BY role DESC, name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying members: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Member
		var joinDate, birthday sql.NullString
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Role, &joinDate, &birthday,
			&m.Phone, &m.Address, &m.Skills, &m.Active, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning member: %v", ErrDatabaseError, err)
		}
		if joinDate.Valid {
			m.JoinDate = &joinDate.String
		}
		if birthday.Valid {
			m.Birthday = &birthday.String
		}
		members = append(members, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating member rows: %v", ErrDatabaseError, err)
	}
	return members, nil
}

// CountActiveMembers returns the number of active members.
func (r *memberRepository) CountActiveMembers() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM members WHERE active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting members: %v", ErrDatabaseError, err)
	}
	return count, nil
}
