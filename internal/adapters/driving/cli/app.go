package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/studiobridge/studiobridge/internal/adapters/driven/cache/memory"
	settingsfile "github.com/studiobridge/studiobridge/internal/adapters/driven/settings/file"
	"github.com/studiobridge/studiobridge/internal/adapters/driven/storage/sqlite"
	"github.com/studiobridge/studiobridge/internal/adapters/driving/mcp"
	"github.com/studiobridge/studiobridge/internal/config"
	"github.com/studiobridge/studiobridge/internal/connectors/mindbody"
	"github.com/studiobridge/studiobridge/internal/core/domain"
	"github.com/studiobridge/studiobridge/internal/core/services"
	"github.com/studiobridge/studiobridge/internal/logging"
)

// app holds everything a command needs after bootstrap.
type app struct {
	cfg      config.Config
	log      zerolog.Logger
	creds    mindbody.Credentials
	settings *settingsfile.SettingsStore

	staffCache   *memory.Cache
	classesCache *memory.Cache
	generalCache *memory.Cache

	connector *mindbody.Connector
	store     *sqlite.Store
	sync      *services.SyncOrchestrator
}

// bootstrap loads configuration and builds the full service graph.
func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Caller: cfg.Log.Caller,
	})

	settings, err := settingsfile.NewSettingsStore(cfg.Data.SettingsPath, log)
	if err != nil {
		return nil, fmt.Errorf("settings store: %w", err)
	}
	current := settings.Current()

	a := &app{
		cfg: cfg,
		log: log,
		creds: mindbody.Credentials{
			APIKey:         cfg.Mindbody.APIKey,
			SiteID:         cfg.Mindbody.SiteID,
			SourceName:     cfg.Mindbody.SourceName,
			SourcePassword: cfg.Mindbody.SourcePassword,
			BaseURL:        cfg.Mindbody.APIURL,
		},
		settings:     settings,
		staffCache:   memory.New(current.StaffTTL, memory.WithSweep(memory.DefaultSweepInterval)),
		classesCache: memory.New(current.ClassesTTL, memory.WithSweep(memory.DefaultSweepInterval)),
		generalCache: memory.New(current.GeneralTTL, memory.WithSweep(memory.DefaultSweepInterval)),
	}

	// Settings edits retune the cache namespaces without a restart.
	settings.OnChange(func(s domain.Settings) {
		a.staffCache.SetDefaultTTL(s.StaffTTL)
		a.classesCache.SetDefaultTTL(s.ClassesTTL)
		a.generalCache.SetDefaultTTL(s.GeneralTTL)
	})

	client := mindbody.NewClient(a.creds, mindbody.WithLogger(log))
	a.connector = mindbody.New(client, mindbody.Caches{
		Staff:   a.staffCache,
		Classes: a.classesCache,
		General: a.generalCache,
	})

	store, err := sqlite.NewStore(cfg.Data.Dir)
	if err != nil {
		return nil, fmt.Errorf("mirror store: %w", err)
	}
	a.store = store

	a.sync = services.NewSyncOrchestrator(
		a.connector, a.connector, a.connector, a.connector, store, log,
	)

	return a, nil
}

// mcpPorts builds the MCP port set from the connector.
func (a *app) mcpPorts() *mcp.Ports {
	return &mcp.Ports{
		Site:        a.connector,
		Staff:       a.connector,
		Client:      a.connector,
		Class:       a.connector,
		Appointment: a.connector,
		Enrollment:  a.connector,
		Sale:        a.connector,
	}
}

// Close releases caches, the settings watcher and the mirror store.
func (a *app) Close() {
	a.staffCache.Close()
	a.classesCache.Close()
	a.generalCache.Close()
	if err := a.settings.Close(); err != nil {
		a.log.Warn().Err(err).Msg("closing settings store")
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn().Err(err).Msg("closing mirror store")
	}
}
