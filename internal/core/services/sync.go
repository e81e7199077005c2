package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/studiobridge/studiobridge/internal/core/domain"
	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
	"github.com/studiobridge/studiobridge/internal/core/ports/driving"
)

// Ensure SyncOrchestrator implements the interface.
var _ driving.SyncService = (*SyncOrchestrator)(nil)

// SyncOrchestrator mirrors upstream entities into the local store. Only
// one full run may be active at a time; concurrent callers get
// domain.ErrSyncInProgress.
type SyncOrchestrator struct {
	sites   driving.SiteService
	staff   driving.StaffService
	clients driving.ClientService
	classes driving.ClassService
	store   driven.MirrorStore
	log     zerolog.Logger
	now     func() time.Time

	mu      sync.Mutex
	running bool
}

// NewSyncOrchestrator creates a new sync orchestrator.
func NewSyncOrchestrator(
	sites driving.SiteService,
	staff driving.StaffService,
	clients driving.ClientService,
	classes driving.ClassService,
	store driven.MirrorStore,
	log zerolog.Logger,
) *SyncOrchestrator {
	return &SyncOrchestrator{
		sites:   sites,
		staff:   staff,
		clients: clients,
		classes: classes,
		store:   store,
		log:     log,
		now:     time.Now,
	}
}

// SyncAll mirrors every entity in order and records the run.
func (o *SyncOrchestrator) SyncAll(ctx context.Context) (domain.SyncRun, error) {
	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return domain.SyncRun{}, domain.ErrSyncInProgress
	}
	o.running = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
	}()

	run := domain.SyncRun{
		ID:        uuid.NewString(),
		StartedAt: o.now().UTC(),
	}
	o.log.Info().Str("run_id", run.ID).Msg("starting mirror sync")

	failed := 0
	for _, entity := range domain.AllSyncEntities() {
		result := o.syncOne(ctx, entity)
		run.Results = append(run.Results, result)
		if result.Failed > 0 {
			failed++
		}
		if err := ctx.Err(); err != nil {
			run.Error = err.Error()
			break
		}
	}

	run.FinishedAt = o.now().UTC()
	switch {
	case failed == 0 && run.Error == "":
		run.Status = domain.SyncStatusSucceeded
	case failed == len(run.Results):
		run.Status = domain.SyncStatusFailed
	default:
		run.Status = domain.SyncStatusPartial
	}

	if err := o.store.RecordSyncRun(ctx, run); err != nil {
		return run, fmt.Errorf("record sync run: %w", err)
	}

	o.log.Info().
		Str("run_id", run.ID).
		Str("status", run.Status).
		Dur("duration", run.FinishedAt.Sub(run.StartedAt)).
		Msg("mirror sync finished")
	return run, nil
}

// SyncEntity mirrors a single entity type without touching run history.
func (o *SyncOrchestrator) SyncEntity(ctx context.Context, entity domain.SyncEntity) (domain.EntitySyncResult, error) {
	if !domain.ValidSyncEntity(string(entity)) {
		return domain.EntitySyncResult{}, fmt.Errorf("%w: unknown sync entity %q", domain.ErrInvalidInput, entity)
	}
	return o.syncOne(ctx, entity), nil
}

// Status returns the most recent run and per-entity states.
func (o *SyncOrchestrator) Status(ctx context.Context) (domain.SyncRun, []domain.SyncState, error) {
	run, err := o.store.LatestSyncRun(ctx)
	if err != nil {
		return domain.SyncRun{}, nil, err
	}
	states, err := o.store.SyncStates(ctx)
	if err != nil {
		return domain.SyncRun{}, nil, fmt.Errorf("sync states: %w", err)
	}
	return run, states, nil
}

func (o *SyncOrchestrator) syncOne(ctx context.Context, entity domain.SyncEntity) domain.EntitySyncResult {
	start := o.now()
	result := domain.EntitySyncResult{Entity: entity}

	stats, err := o.mirror(ctx, entity)
	if err != nil {
		result.Failed = 1
		result.Errors = append(result.Errors, err.Error())
		o.log.Warn().Err(err).Str("entity", string(entity)).Msg("entity sync failed")
	} else {
		result.Created = stats.Created
		result.Updated = stats.Updated
	}

	result.Duration = o.now().Sub(start)
	return result
}

func (o *SyncOrchestrator) mirror(ctx context.Context, entity domain.SyncEntity) (driven.UpsertStats, error) {
	switch entity {
	case domain.SyncLocations:
		list, err := o.sites.GetLocations(ctx)
		if err != nil {
			return driven.UpsertStats{}, fmt.Errorf("fetch locations: %w", err)
		}
		return o.store.UpsertLocations(ctx, list.Items)
	case domain.SyncStaff:
		list, err := o.staff.GetStaff(ctx, domain.StaffFilter{})
		if err != nil {
			return driven.UpsertStats{}, fmt.Errorf("fetch staff: %w", err)
		}
		return o.store.UpsertStaff(ctx, list.Items)
	case domain.SyncClients:
		list, err := o.clients.GetClients(ctx, domain.ClientFilter{})
		if err != nil {
			return driven.UpsertStats{}, fmt.Errorf("fetch clients: %w", err)
		}
		return o.store.UpsertClients(ctx, list.Items)
	case domain.SyncClassDescriptions:
		list, err := o.classes.GetClassDescriptions(ctx)
		if err != nil {
			return driven.UpsertStats{}, fmt.Errorf("fetch class descriptions: %w", err)
		}
		return o.store.UpsertClassDescriptions(ctx, list.Items)
	case domain.SyncClasses:
		list, err := o.classes.GetClasses(ctx, domain.ClassFilter{})
		if err != nil {
			return driven.UpsertStats{}, fmt.Errorf("fetch classes: %w", err)
		}
		return o.store.UpsertClasses(ctx, list.Items)
	default:
		return driven.UpsertStats{}, fmt.Errorf("%w: unknown sync entity %q", domain.ErrInvalidInput, entity)
	}
}
