package database

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	return db, mock
}

func TestInitialize_AppliesSchemaAndSeeds(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	mock.ExpectPing()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS members").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM members WHERE role = ANY\(\$1\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for i := 0; i < len(leadershipRoles); i++ {
		mock.ExpectExec("INSERT INTO members").
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}

	require.NoError(t, initialize(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitialize_SkipsSeedWhenLeadershipPresent(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	mock.ExpectPing()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS members").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM members WHERE role = ANY\(\$1\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	require.NoError(t, initialize(db))
	assert.NoError(t, mock.ExpectationsWereMet(), "a seeded database must not be re-seeded")
}

func TestInitialize_PingFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err := initialize(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connecting to database")
}

func TestInitialize_SchemaFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	mock.ExpectPing()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS members").
		WillReturnError(errors.New("permission denied"))

	err := initialize(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "applying database schema")
}
