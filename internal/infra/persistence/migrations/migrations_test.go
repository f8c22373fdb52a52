package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations_AreGooseAnnotated(t *testing.T) {
	entries, err := fs.ReadDir(embedded, "sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		body, err := fs.ReadFile(embedded, "sql/"+entry.Name())
		require.NoError(t, err)

		text := string(body)
		assert.Contains(t, text, "-- +goose Up", entry.Name())
		assert.Contains(t, text, "-- +goose Down", entry.Name())
	}
}

func TestEmbeddedMigrations_LeadUniquenessPerOwner(t *testing.T) {
	body, err := fs.ReadFile(embedded, "sql/00002_create_saved_leads.sql")
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, "(user_id, google_place_id) WHERE google_place_id IS NOT NULL"))
	assert.True(t, strings.Contains(text, "(user_id, osm_id) WHERE osm_id IS NOT NULL"))
}
