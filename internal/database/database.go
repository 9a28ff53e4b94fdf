package database

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"foundation_backend/internal/config"
)

// schema is executed on every boot. Every statement is IF NOT EXISTS, so a
// running deployment never needs a separate migration step.
const schema = `
CREATE TABLE IF NOT EXISTS members (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT UNIQUE NOT NULL,
    role TEXT DEFAULT 'Volunteer',
    join_date DATE DEFAULT CURRENT_DATE,
    birthday DATE,
    phone TEXT,
    address TEXT,
    skills TEXT,
    active BOOLEAN DEFAULT TRUE,
    created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS events (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    event_date DATE NOT NULL,
    event_time TEXT,
    location TEXT,
    category TEXT DEFAULT 'Community Service',
    max_participants INTEGER,
    current_participants INTEGER DEFAULT 0,
    created_by TEXT,
    created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS contact_messages (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    subject TEXT NOT NULL,
    message TEXT NOT NULL,
    status TEXT DEFAULT 'New',
    created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS gallery_items (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    filename TEXT NOT NULL,
    file_type TEXT,
    category TEXT DEFAULT 'Impact',
    uploaded_by TEXT,
    created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
);

-- Stub: the table and its unique constraint exist, but no endpoint writes to
-- it. The public form is handled entirely client-side.
CREATE TABLE IF NOT EXISTS newsletter_subscriptions (
    id BIGSERIAL PRIMARY KEY,
    email TEXT UNIQUE NOT NULL,
    subscribed_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
    active BOOLEAN DEFAULT TRUE
);
`

// leadershipRoles are the seed rows' roles; their presence marks a seeded DB.
var leadershipRoles = []string{
	"Foundation Director", "Program Coordinator", "Outreach Manager", "Finance Director",
}

// InitDB opens the database connection, applies the schema and seeds the
// leadership members once.
func InitDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err = initialize(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// initialize pings the connection, applies the schema and seeds once.
func initialize(db *sql.DB) error {
	if err := db.Ping(); err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	if err := applySchema(db); err != nil {
		return err
	}
	return seedLeadership(db)
}

// applySchema executes the embedded table definitions.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("applying database schema: %w", err)
	}
	return nil
}

// seedLeadership inserts the default leadership members exactly once,
// detected by a COUNT(*) over the leadership roles.
func seedLeadership(db *sql.DB) error {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM members WHERE role = ANY($1)`,
		pq.Array(leadershipRoles),
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking leadership seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	leadership := []struct {
		name, email, role, birthday string
	}{
		{"Treasure Abundance", "ta@nasafrigate-foundation.com", "Foundation Director", "1985-03-15"},
		{"Stainless Carribean", "sc@nasafrigate-foundation.com", "Program Coordinator", "1990-07-22"},
		{"Rugged Processor", "rp@nasafrigate-foundation.com", "Outreach Manager", "1988-11-08"},
		{"Thunda D Maker", "tdm@nasafrigate-foundation.com", "Finance Director", "1992-05-30"},
	}
	for _, l := range leadership {
		_, err := db.Exec(
			`INSERT INTO members (name, email, role, birthday, join_date) VALUES ($1, $2, $3, $4, $5)`,
			l.name, l.email, l.role, l.birthday, "2020-01-01",
		)
		if err != nil {
			return fmt.Errorf("seeding leadership member %s: %w", l.email, err)
		}
	}
	return nil
}
