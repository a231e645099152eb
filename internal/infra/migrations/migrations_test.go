//go:build unit

package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverURL(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres scheme", "postgres://u:p@localhost:5432/db?sslmode=disable", "pgx5://u:p@localhost:5432/db?sslmode=disable"},
		{"postgresql scheme", "postgresql://u:p@db/x", "pgx5://u:p@db/x"},
		{"already pgx5", "pgx5://u:p@db/x", "pgx5://u:p@db/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, driverURL(tt.dsn))
		})
	}
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(files, "sql/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(files, "sql/*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}

func TestReferenceData(t *testing.T) {
	sql, err := ReferenceData()

	require.NoError(t, err)
	assert.Contains(t, sql, "INSERT INTO vehicle_types")
	assert.Contains(t, sql, "ON CONFLICT (key) DO NOTHING")
}
