package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.Len(t, files, 3)

	for _, name := range files {
		body, err := fs.ReadFile(migrations, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestMigrate(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	t.Run("success", func(t *testing.T) {
		var gotDir string
		gooseUp = func(_ context.Context, _ *sql.DB, dir string) error {
			gotDir = dir
			return nil
		}

		require.NoError(t, Migrate(context.Background(), nil))
		assert.Equal(t, "migrations", gotDir)
	})

	t.Run("failure is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		gooseUp = func(context.Context, *sql.DB, string) error { return boom }

		err := Migrate(context.Background(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to apply migrations")
	})
}
