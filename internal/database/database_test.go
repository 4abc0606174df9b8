package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harue/projectboard/internal/database"
)

func TestOpenCreatesSchema(t *testing.T) {
	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.Get(&count, `SELECT COUNT(*) FROM projects`)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "projects.db")

	db, err := database.Open(ctx, path)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO projects (project_name, grade, start_date, complete)
		 VALUES ('Alpha', 'A', '2024-01-01', 0)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening must not recreate the table or lose rows.
	db, err = database.Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM projects`))
	assert.Equal(t, 1, count)
}
