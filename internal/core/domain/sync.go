package domain

import "time"

// SyncEntity names one mirrored entity type.
type SyncEntity string

// Mirrored entity types, in sync order.
const (
	SyncLocations         SyncEntity = "locations"
	SyncStaff             SyncEntity = "staff"
	SyncClients           SyncEntity = "clients"
	SyncClassDescriptions SyncEntity = "class_descriptions"
	SyncClasses           SyncEntity = "classes"
)

// AllSyncEntities returns every mirrored entity in sync order.
func AllSyncEntities() []SyncEntity {
	return []SyncEntity{
		SyncLocations,
		SyncStaff,
		SyncClients,
		SyncClassDescriptions,
		SyncClasses,
	}
}

// ValidSyncEntity reports whether s names a mirrored entity.
func ValidSyncEntity(s string) bool {
	for _, e := range AllSyncEntities() {
		if string(e) == s {
			return true
		}
	}
	return false
}

// EntitySyncResult reports one entity's mirror sync outcome.
type EntitySyncResult struct {
	Entity   SyncEntity    `json:"entity"`
	Created  int           `json:"created"`
	Updated  int           `json:"updated"`
	Failed   int           `json:"failed"`
	Errors   []string      `json:"errors,omitempty"`
	Duration time.Duration `json:"duration"`
}

// SyncRun records one full mirror sync execution.
type SyncRun struct {
	ID         string             `json:"id"`
	StartedAt  time.Time          `json:"startedAt"`
	FinishedAt time.Time          `json:"finishedAt"`
	Status     string             `json:"status"`
	Error      string             `json:"error,omitempty"`
	Results    []EntitySyncResult `json:"results"`
}

// Sync run statuses.
const (
	SyncStatusSucceeded = "succeeded"
	SyncStatusPartial   = "partial"
	SyncStatusFailed    = "failed"
)

// SyncState is the per-entity bookkeeping row in the mirror store.
type SyncState struct {
	Entity       SyncEntity `json:"entity"`
	LastSyncedAt time.Time  `json:"lastSyncedAt"`
	TotalRecords int        `json:"totalRecords"`
}
