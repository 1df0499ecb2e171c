package db

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minyanfinder/backend/internal/model"
)

// TestPostgresStoreIntegration exercises the real Store against a database.
// Requires TEST_DATABASE_URL; skipped otherwise.
func TestPostgresStoreIntegration(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, InitTestDB("../../migrations"))
	store := TestStore

	b := &model.Broadcast{
		ID:           uuid.NewString(),
		Latitude:     40.7128,
		Longitude:    -74.0060,
		MinyanType:   "maariv",
		EarliestTime: time.Date(2025, 12, 27, 18, 0, 0, 0, time.UTC),
		LatestTime:   time.Date(2025, 12, 27, 19, 0, 0, 0, time.UTC),
		Active:       true,
	}
	require.NoError(t, store.CreateBroadcast(b))
	defer func() { _ = store.DeleteBroadcast(b.ID) }()

	got, err := store.GetBroadcastByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.MinyanType, got.MinyanType)
	assert.True(t, got.Active)
	assert.True(t, got.EarliestTime.Equal(b.EarliestTime))

	got.Latitude = 41.0
	require.NoError(t, store.UpdateBroadcast(&got))
	updated, err := store.GetBroadcastByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 41.0, updated.Latitude)

	minyanType := "maariv"
	listed, err := store.ListActiveBroadcasts(&minyanType)
	require.NoError(t, err)
	found := false
	for _, item := range listed {
		if item.ID == b.ID {
			found = true
		}
	}
	assert.True(t, found)

	require.NoError(t, store.DeleteBroadcast(b.ID))
	assert.ErrorIs(t, store.DeleteBroadcast(b.ID), ErrNotFound)
}
