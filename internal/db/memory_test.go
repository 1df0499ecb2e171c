package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minyanfinder/backend/internal/model"
)

func newTestBroadcast(id, minyanType string, active bool) *model.Broadcast {
	return &model.Broadcast{
		ID:           id,
		Latitude:     40.0,
		Longitude:    -74.0,
		MinyanType:   minyanType,
		EarliestTime: time.Date(2025, 12, 27, 8, 0, 0, 0, time.UTC),
		LatestTime:   time.Date(2025, 12, 27, 9, 0, 0, 0, time.UTC),
		Active:       active,
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	b := newTestBroadcast("b-1", "shacharit", true)
	require.NoError(t, store.CreateBroadcast(b))

	got, err := store.GetBroadcastByID("b-1")
	require.NoError(t, err)
	assert.Equal(t, *b, got)

	got.Latitude = 41.0
	require.NoError(t, store.UpdateBroadcast(&got))

	updated, err := store.GetBroadcastByID("b-1")
	require.NoError(t, err)
	assert.Equal(t, 41.0, updated.Latitude)

	require.NoError(t, store.DeleteBroadcast("b-1"))
	_, err = store.GetBroadcastByID("b-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetBroadcastByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.UpdateBroadcast(newTestBroadcast("missing", "mincha", true))
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.DeleteBroadcast("missing"), ErrNotFound)
}

func TestMemoryStoreListActive(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.CreateBroadcast(newTestBroadcast("b-1", "shacharit", true)))
	require.NoError(t, store.CreateBroadcast(newTestBroadcast("b-2", "mincha", true)))
	require.NoError(t, store.CreateBroadcast(newTestBroadcast("b-3", "shacharit", false)))

	all, err := store.ListActiveBroadcasts(nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// insertion order
	assert.Equal(t, "b-1", all[0].ID)
	assert.Equal(t, "b-2", all[1].ID)

	minyanType := "shacharit"
	filtered, err := store.ListActiveBroadcasts(&minyanType)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "b-1", filtered[0].ID)
}
