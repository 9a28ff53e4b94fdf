package models

import "time"

// Member represents a registered volunteer or leadership member of the
// foundation. Members are soft-deactivated via the Active flag, never
// hard-deleted.
type Member struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"`
	JoinDate  *string   `json:"join_date,omitempty" db:"join_date"` // YYYY-MM-DD
	Birthday  *string   `json:"birthday,omitempty" db:"birthday"`   // YYYY-MM-DD
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Address   *string   `json:"address,omitempty" db:"address"`
	Skills    *string   `json:"skills,omitempty" db:"skills"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
