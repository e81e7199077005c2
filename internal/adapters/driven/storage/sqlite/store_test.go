package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiobridge/studiobridge/internal/core/domain"
	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_UpsertLocations(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	locations := []domain.Location{
		{ID: 1, Name: "Downtown Studio", City: "Austin"},
		{ID: 2, Name: "Northside Studio", City: "Austin"},
	}

	stats, err := store.UpsertLocations(ctx, locations)
	require.NoError(t, err)
	assert.Equal(t, driven.UpsertStats{Created: 2}, stats)

	// A second pass over the same rows updates rather than duplicates.
	locations[0].Name = "Downtown Studio (renamed)"
	stats, err = store.UpsertLocations(ctx, locations)
	require.NoError(t, err)
	assert.Equal(t, driven.UpsertStats{Updated: 2}, stats)
}

func TestStore_UpsertStaffMixedBatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.UpsertStaff(ctx, []domain.Staff{{ID: 10, Name: "Ana Lopez"}})
	require.NoError(t, err)

	stats, err := store.UpsertStaff(ctx, []domain.Staff{
		{ID: 10, Name: "Ana Lopez"},
		{ID: 11, Name: "Ben Cho"},
	})
	require.NoError(t, err)
	assert.Equal(t, driven.UpsertStats{Created: 1, Updated: 1}, stats)
}

func TestStore_UpsertClients(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	stats, err := store.UpsertClients(ctx, []domain.Client{
		{ID: "c100", FirstName: "Mia", LastName: "Chen", Active: true},
	})
	require.NoError(t, err)
	assert.Equal(t, driven.UpsertStats{Created: 1}, stats)

	stats, err = store.UpsertClients(ctx, []domain.Client{
		{ID: "c100", FirstName: "Mia", LastName: "Chen-Park", Active: true},
	})
	require.NoError(t, err)
	assert.Equal(t, driven.UpsertStats{Updated: 1}, stats)
}

func TestStore_UpsertClasses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	classes := []domain.Class{
		{
			ID:               500,
			ClassScheduleID:  7,
			Location:         domain.Location{ID: 1},
			ClassDescription: domain.ClassDescription{ID: 20},
			Staff:            domain.ClassStaffRef{ID: 10},
			MaxCapacity:      24,
			TotalBooked:      12,
		},
	}

	stats, err := store.UpsertClasses(ctx, classes)
	require.NoError(t, err)
	assert.Equal(t, driven.UpsertStats{Created: 1}, stats)

	classes[0].TotalBooked = 13
	stats, err = store.UpsertClasses(ctx, classes)
	require.NoError(t, err)
	assert.Equal(t, driven.UpsertStats{Updated: 1}, stats)
}

func TestStore_LatestSyncRunEmpty(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LatestSyncRun(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SyncRunRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	started := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)
	run := domain.SyncRun{
		ID:         "run-1",
		StartedAt:  started,
		FinishedAt: started.Add(40 * time.Second),
		Status:     domain.SyncStatusSucceeded,
		Results: []domain.EntitySyncResult{
			{Entity: domain.SyncLocations, Created: 2},
			{Entity: domain.SyncStaff, Created: 5, Updated: 1},
		},
	}

	require.NoError(t, store.RecordSyncRun(ctx, run))

	got, err := store.LatestSyncRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, run.Status, got.Status)
	assert.Empty(t, got.Error)
	assert.Equal(t, run.Results, got.Results)
	assert.True(t, got.StartedAt.Equal(run.StartedAt))
	assert.True(t, got.FinishedAt.Equal(run.FinishedAt))
}

func TestStore_LatestSyncRunPicksNewest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	older := domain.SyncRun{
		ID:        "run-old",
		StartedAt: time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC),
		Status:    domain.SyncStatusFailed,
		Results:   []domain.EntitySyncResult{{Entity: domain.SyncLocations, Failed: 1}},
	}
	older.FinishedAt = older.StartedAt.Add(time.Second)
	newer := domain.SyncRun{
		ID:        "run-new",
		StartedAt: time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC),
		Status:    domain.SyncStatusSucceeded,
		Results:   []domain.EntitySyncResult{{Entity: domain.SyncLocations, Created: 1}},
	}
	newer.FinishedAt = newer.StartedAt.Add(time.Second)

	require.NoError(t, store.RecordSyncRun(ctx, older))
	require.NoError(t, store.RecordSyncRun(ctx, newer))

	got, err := store.LatestSyncRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-new", got.ID)
}

func TestStore_SyncStates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	finished := time.Date(2026, 9, 1, 6, 0, 40, 0, time.UTC)
	run := domain.SyncRun{
		ID:         "run-1",
		StartedAt:  finished.Add(-40 * time.Second),
		FinishedAt: finished,
		Status:     domain.SyncStatusSucceeded,
		Results: []domain.EntitySyncResult{
			{Entity: domain.SyncStaff, Created: 4, Updated: 2},
			{Entity: domain.SyncClients, Created: 9},
		},
	}
	require.NoError(t, store.RecordSyncRun(ctx, run))

	states, err := store.SyncStates(ctx)
	require.NoError(t, err)
	require.Len(t, states, 2)

	// Rows come back ordered by entity name.
	assert.Equal(t, domain.SyncClients, states[0].Entity)
	assert.Equal(t, 9, states[0].TotalRecords)
	assert.Equal(t, domain.SyncStaff, states[1].Entity)
	assert.Equal(t, 6, states[1].TotalRecords)
	assert.True(t, states[0].LastSyncedAt.Equal(finished))
}

func TestStore_SyncStateUpdatedByLaterRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := domain.SyncRun{
		ID:         "run-1",
		StartedAt:  time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 9, 1, 6, 1, 0, 0, time.UTC),
		Status:     domain.SyncStatusSucceeded,
		Results:    []domain.EntitySyncResult{{Entity: domain.SyncStaff, Created: 4}},
	}
	second := domain.SyncRun{
		ID:         "run-2",
		StartedAt:  time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 9, 1, 7, 1, 0, 0, time.UTC),
		Status:     domain.SyncStatusSucceeded,
		Results:    []domain.EntitySyncResult{{Entity: domain.SyncStaff, Updated: 4}},
	}

	require.NoError(t, store.RecordSyncRun(ctx, first))
	require.NoError(t, store.RecordSyncRun(ctx, second))

	states, err := store.SyncStates(ctx)
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, 4, states[0].TotalRecords)
	assert.True(t, states[0].LastSyncedAt.Equal(second.FinishedAt))
}
