package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(mustSub(), ".")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, e := range entries {
		body, err := fs.ReadFile(mustSub(), e.Name())
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", e.Name())
		assert.Contains(t, string(body), "-- +goose Down", e.Name())
	}

	core, err := fs.ReadFile(mustSub(), "00001_create_core_tables.sql")
	require.NoError(t, err)
	assert.False(t, strings.Contains(strings.ToUpper(string(core)), "FOREIGN KEY"))
}
