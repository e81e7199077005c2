package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/studiobridge/studiobridge/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/studiobridge/studiobridge/internal/core/domain"
	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.MirrorStore = (*Store)(nil)

// Store is the SQLite-backed mirror store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a mirror store at the specified data directory. If
// dataDir is empty, defaults to ~/.studiobridge/data/mirror.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".studiobridge", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "mirror.db")

	// WAL mode so sync writes do not block admin reads.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db, path: dbPath}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// upsert runs one batch inside a transaction. exists checks whether the
// row is already present; write performs the insert-or-replace. Stats
// distinguish creates from updates so sync reports stay meaningful.
func (s *Store) upsert(ctx context.Context, n int, exists func(tx *sql.Tx, i int) (bool, error), write func(tx *sql.Tx, i int) error) (driven.UpsertStats, error) {
	var stats driven.UpsertStats
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for i := 0; i < n; i++ {
		found, err := exists(tx, i)
		if err != nil {
			return driven.UpsertStats{}, err
		}
		if err := write(tx, i); err != nil {
			return driven.UpsertStats{}, err
		}
		if found {
			stats.Updated++
		} else {
			stats.Created++
		}
	}

	if err := tx.Commit(); err != nil {
		return driven.UpsertStats{}, fmt.Errorf("committing transaction: %w", err)
	}
	return stats, nil
}

func rowExists(tx *sql.Tx, query string, args ...any) (bool, error) {
	var one int
	err := tx.QueryRow(query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking row: %w", err)
	}
	return true, nil
}

// UpsertLocations mirrors studio locations.
func (s *Store) UpsertLocations(ctx context.Context, locations []domain.Location) (driven.UpsertStats, error) {
	now := time.Now().UTC()
	return s.upsert(ctx, len(locations),
		func(tx *sql.Tx, i int) (bool, error) {
			return rowExists(tx, "SELECT 1 FROM locations WHERE id = ?", locations[i].ID)
		},
		func(tx *sql.Tx, i int) error {
			l := locations[i]
			_, err := tx.ExecContext(ctx, `
				INSERT INTO locations (id, name, address, city, state, postal_code, phone, has_classes, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					name = excluded.name,
					address = excluded.address,
					city = excluded.city,
					state = excluded.state,
					postal_code = excluded.postal_code,
					phone = excluded.phone,
					has_classes = excluded.has_classes,
					updated_at = excluded.updated_at`,
				l.ID, l.Name, l.Address, l.City, l.State, l.PostalCode, l.Phone, l.HasClasses, now)
			if err != nil {
				return fmt.Errorf("upserting location %d: %w", l.ID, err)
			}
			return nil
		})
}

// UpsertStaff mirrors staff members.
func (s *Store) UpsertStaff(ctx context.Context, staff []domain.Staff) (driven.UpsertStats, error) {
	now := time.Now().UTC()
	return s.upsert(ctx, len(staff),
		func(tx *sql.Tx, i int) (bool, error) {
			return rowExists(tx, "SELECT 1 FROM staff WHERE id = ?", staff[i].ID)
		},
		func(tx *sql.Tx, i int) error {
			m := staff[i]
			_, err := tx.ExecContext(ctx, `
				INSERT INTO staff (id, first_name, last_name, name, email, mobile_phone, image_url, bio, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					first_name = excluded.first_name,
					last_name = excluded.last_name,
					name = excluded.name,
					email = excluded.email,
					mobile_phone = excluded.mobile_phone,
					image_url = excluded.image_url,
					bio = excluded.bio,
					updated_at = excluded.updated_at`,
				m.ID, m.FirstName, m.LastName, m.Name, m.Email, m.MobilePhone, m.ImageURL, m.Bio, now)
			if err != nil {
				return fmt.Errorf("upserting staff %d: %w", m.ID, err)
			}
			return nil
		})
}

// UpsertClients mirrors clients.
func (s *Store) UpsertClients(ctx context.Context, clients []domain.Client) (driven.UpsertStats, error) {
	now := time.Now().UTC()
	return s.upsert(ctx, len(clients),
		func(tx *sql.Tx, i int) (bool, error) {
			return rowExists(tx, "SELECT 1 FROM clients WHERE id = ?", clients[i].ID)
		},
		func(tx *sql.Tx, i int) error {
			cl := clients[i]
			_, err := tx.ExecContext(ctx, `
				INSERT INTO clients (id, first_name, last_name, email, phone, status, active, is_prospect, creation_date, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					first_name = excluded.first_name,
					last_name = excluded.last_name,
					email = excluded.email,
					phone = excluded.phone,
					status = excluded.status,
					active = excluded.active,
					is_prospect = excluded.is_prospect,
					creation_date = excluded.creation_date,
					updated_at = excluded.updated_at`,
				cl.ID, cl.FirstName, cl.LastName, cl.Email, cl.Phone, cl.Status, cl.Active, cl.IsProspect, cl.CreationDate, now)
			if err != nil {
				return fmt.Errorf("upserting client %s: %w", cl.ID, err)
			}
			return nil
		})
}

// UpsertClassDescriptions mirrors the class-type catalog.
func (s *Store) UpsertClassDescriptions(ctx context.Context, descriptions []domain.ClassDescription) (driven.UpsertStats, error) {
	now := time.Now().UTC()
	return s.upsert(ctx, len(descriptions),
		func(tx *sql.Tx, i int) (bool, error) {
			return rowExists(tx, "SELECT 1 FROM class_descriptions WHERE id = ?", descriptions[i].ID)
		},
		func(tx *sql.Tx, i int) error {
			d := descriptions[i]
			_, err := tx.ExecContext(ctx, `
				INSERT INTO class_descriptions (id, name, description, category, subcategory, active, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					name = excluded.name,
					description = excluded.description,
					category = excluded.category,
					subcategory = excluded.subcategory,
					active = excluded.active,
					updated_at = excluded.updated_at`,
				d.ID, d.Name, d.Description, d.Category, d.Subcategory, d.Active, now)
			if err != nil {
				return fmt.Errorf("upserting class description %d: %w", d.ID, err)
			}
			return nil
		})
}

// UpsertClasses mirrors class occurrences.
func (s *Store) UpsertClasses(ctx context.Context, classes []domain.Class) (driven.UpsertStats, error) {
	now := time.Now().UTC()
	return s.upsert(ctx, len(classes),
		func(tx *sql.Tx, i int) (bool, error) {
			return rowExists(tx, "SELECT 1 FROM classes WHERE id = ?", classes[i].ID)
		},
		func(tx *sql.Tx, i int) error {
			cls := classes[i]
			_, err := tx.ExecContext(ctx, `
				INSERT INTO classes (id, class_schedule_id, location_id, class_description_id, staff_id, start_datetime, end_datetime, is_canceled, max_capacity, total_booked, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					class_schedule_id = excluded.class_schedule_id,
					location_id = excluded.location_id,
					class_description_id = excluded.class_description_id,
					staff_id = excluded.staff_id,
					start_datetime = excluded.start_datetime,
					end_datetime = excluded.end_datetime,
					is_canceled = excluded.is_canceled,
					max_capacity = excluded.max_capacity,
					total_booked = excluded.total_booked,
					updated_at = excluded.updated_at`,
				cls.ID, cls.ClassScheduleID, cls.Location.ID, cls.ClassDescription.ID, cls.Staff.ID,
				cls.StartDateTime, cls.EndDateTime, cls.IsCanceled, cls.MaxCapacity, cls.TotalBooked, now)
			if err != nil {
				return fmt.Errorf("upserting class %d: %w", cls.ID, err)
			}
			return nil
		})
}

// RecordSyncRun persists a completed run and refreshes the per-entity sync
// state rows from its results.
func (s *Store) RecordSyncRun(ctx context.Context, run domain.SyncRun) error {
	resultsJSON, err := json.Marshal(run.Results)
	if err != nil {
		return fmt.Errorf("marshalling results: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sync_runs (id, started_at, finished_at, status, error, results)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC(), run.FinishedAt.UTC(), run.Status, run.Error, string(resultsJSON))
	if err != nil {
		return fmt.Errorf("inserting sync run: %w", err)
	}

	for _, res := range run.Results {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO sync_state (entity, last_synced_at, total_records)
			VALUES (?, ?, ?)
			ON CONFLICT(entity) DO UPDATE SET
				last_synced_at = excluded.last_synced_at,
				total_records = excluded.total_records`,
			string(res.Entity), run.FinishedAt.UTC(), res.Created+res.Updated)
		if err != nil {
			return fmt.Errorf("updating sync state for %s: %w", res.Entity, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// LatestSyncRun returns the most recent run, or domain.ErrNotFound.
func (s *Store) LatestSyncRun(ctx context.Context) (domain.SyncRun, error) {
	var (
		run         domain.SyncRun
		resultsJSON string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, finished_at, status, error, results
		FROM sync_runs
		ORDER BY started_at DESC
		LIMIT 1`).Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &run.Status, &run.Error, &resultsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SyncRun{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.SyncRun{}, fmt.Errorf("querying latest sync run: %w", err)
	}
	if err := json.Unmarshal([]byte(resultsJSON), &run.Results); err != nil {
		return domain.SyncRun{}, fmt.Errorf("unmarshalling results: %w", err)
	}
	return run, nil
}

// SyncStates returns the per-entity bookkeeping rows.
func (s *Store) SyncStates(ctx context.Context) ([]domain.SyncState, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT entity, last_synced_at, total_records
		FROM sync_state
		ORDER BY entity`)
	if err != nil {
		return nil, fmt.Errorf("querying sync states: %w", err)
	}
	defer rows.Close()

	var states []domain.SyncState
	for rows.Next() {
		var (
			state  domain.SyncState
			entity string
		)
		if err := rows.Scan(&entity, &state.LastSyncedAt, &state.TotalRecords); err != nil {
			return nil, fmt.Errorf("scanning sync state: %w", err)
		}
		state.Entity = domain.SyncEntity(entity)
		states = append(states, state)
	}
	return states, rows.Err()
}
