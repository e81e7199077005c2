package driven

import (
	"context"

	"github.com/studiobridge/studiobridge/internal/core/domain"
)

// UpsertStats reports how many rows an upsert batch created vs updated.
type UpsertStats struct {
	Created int
	Updated int
}

// MirrorStore is the local relational mirror of upstream entities, keyed
// by external identifier. Upserts are idempotent: re-syncing unchanged
// data updates rows in place and never duplicates them.
type MirrorStore interface {
	UpsertLocations(ctx context.Context, locations []domain.Location) (UpsertStats, error)
	UpsertStaff(ctx context.Context, staff []domain.Staff) (UpsertStats, error)
	UpsertClients(ctx context.Context, clients []domain.Client) (UpsertStats, error)
	UpsertClassDescriptions(ctx context.Context, descriptions []domain.ClassDescription) (UpsertStats, error)
	UpsertClasses(ctx context.Context, classes []domain.Class) (UpsertStats, error)

	// RecordSyncRun persists a completed sync run and refreshes the
	// per-entity sync state rows from its results.
	RecordSyncRun(ctx context.Context, run domain.SyncRun) error

	// LatestSyncRun returns the most recent run, or domain.ErrNotFound
	// when no sync has happened yet.
	LatestSyncRun(ctx context.Context) (domain.SyncRun, error)

	// SyncStates returns the per-entity bookkeeping rows.
	SyncStates(ctx context.Context) ([]domain.SyncState, error)

	Close() error
}
