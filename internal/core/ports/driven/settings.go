package driven

import "github.com/studiobridge/studiobridge/internal/core/domain"

// SettingsStore exposes operator-tunable runtime settings with change
// notification. An absent settings file yields defaults.
type SettingsStore interface {
	// Current returns the settings as of the last (re)load.
	Current() domain.Settings

	// OnChange registers a callback invoked after every reload. The
	// callback runs on the watcher goroutine and must not block.
	OnChange(fn func(domain.Settings))

	Close() error
}
