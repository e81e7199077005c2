// Package file implements the settings store over a watched TOML file.
// Edits to the file take effect without a restart.
package file

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/studiobridge/studiobridge/internal/core/domain"
	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// fileSettings is the TOML shape of the settings file. Durations are
// minutes; zero or absent values fall back to defaults.
type fileSettings struct {
	StaffTTLMinutes     int `toml:"staff_ttl_minutes"`
	ClassesTTLMinutes   int `toml:"classes_ttl_minutes"`
	GeneralTTLMinutes   int `toml:"general_ttl_minutes"`
	SyncIntervalMinutes int `toml:"sync_interval_minutes"`
}

// SettingsStore reads operator settings from a TOML file and reloads them
// when the file changes.
type SettingsStore struct {
	filePath string
	log      zerolog.Logger

	mu        sync.RWMutex
	current   domain.Settings
	callbacks []func(domain.Settings)

	watcher   *fsnotify.Watcher
	closeOnce sync.Once
	done      chan struct{}
}

// NewSettingsStore creates a settings store over configDir/settings.toml.
// If configDir is empty, defaults to ~/.studiobridge. A missing file
// yields defaults; the store starts watching so a later creation is
// picked up.
func NewSettingsStore(configDir string, log zerolog.Logger) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".studiobridge")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &SettingsStore{
		filePath: filepath.Join(configDir, "settings.toml"),
		log:      log,
		current:  domain.DefaultSettings(),
		done:     make(chan struct{}),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory rather than the file: editors that write via
	// rename would otherwise detach the watch.
	if err := watcher.Add(configDir); err != nil {
		watcher.Close()
		return nil, err
	}
	s.watcher = watcher
	go s.watch()

	return s, nil
}

// Current returns the settings as of the last (re)load.
func (s *SettingsStore) Current() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// OnChange registers a callback invoked after every reload.
func (s *SettingsStore) OnChange(fn func(domain.Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = append(s.callbacks, fn)
}

// Close stops the file watcher.
func (s *SettingsStore) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		if s.watcher != nil {
			err = s.watcher.Close()
		}
	})
	return err
}

// load reads and applies the settings file.
func (s *SettingsStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var fs fileSettings
	if err := toml.Unmarshal(data, &fs); err != nil {
		return err
	}

	settings := domain.DefaultSettings()
	if fs.StaffTTLMinutes > 0 {
		settings.StaffTTL = time.Duration(fs.StaffTTLMinutes) * time.Minute
	}
	if fs.ClassesTTLMinutes > 0 {
		settings.ClassesTTL = time.Duration(fs.ClassesTTLMinutes) * time.Minute
	}
	if fs.GeneralTTLMinutes > 0 {
		settings.GeneralTTL = time.Duration(fs.GeneralTTLMinutes) * time.Minute
	}
	if fs.SyncIntervalMinutes > 0 {
		settings.SyncInterval = time.Duration(fs.SyncIntervalMinutes) * time.Minute
	}

	s.mu.Lock()
	s.current = settings
	callbacks := make([]func(domain.Settings), len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(settings)
	}
	return nil
}

// watch reloads the settings file on write or create events.
func (s *SettingsStore) watch() {
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Name != s.filePath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.load(); err != nil {
				s.log.Warn().Err(err).Str("path", s.filePath).Msg("settings reload failed, keeping previous values")
			} else {
				s.log.Info().Str("path", s.filePath).Msg("settings reloaded")
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn().Err(err).Msg("settings watcher error")
		}
	}
}
