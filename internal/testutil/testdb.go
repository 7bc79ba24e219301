package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/hrpulse/internal/db"
)

// NewTestDB returns an in-memory SQLite database carrying the dataset
// snapshot schema (courses, employees, competencies, appraisals, training
// tracks, gap analyses and their course links), ready for
// repository.SQLiteDatasetRepo to Save into and Load from. It is closed
// when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening snapshot database")
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}
