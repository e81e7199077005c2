package domain

import "time"

// Default TTLs per cache namespace, chosen by data volatility: staff and
// organizational metadata change rarely, class rosters change constantly.
const (
	DefaultStaffTTL   = 60 * time.Minute
	DefaultClassesTTL = 5 * time.Minute
	DefaultGeneralTTL = 10 * time.Minute

	DefaultSyncInterval = 30 * time.Minute
)

// Settings are the operator-tunable runtime values, loaded from the
// settings file and hot-reloaded on change.
type Settings struct {
	StaffTTL     time.Duration `json:"staffTtl"`
	ClassesTTL   time.Duration `json:"classesTtl"`
	GeneralTTL   time.Duration `json:"generalTtl"`
	SyncInterval time.Duration `json:"syncInterval"`
}

// DefaultSettings returns Settings with all defaults applied.
func DefaultSettings() Settings {
	return Settings{
		StaffTTL:     DefaultStaffTTL,
		ClassesTTL:   DefaultClassesTTL,
		GeneralTTL:   DefaultGeneralTTL,
		SyncInterval: DefaultSyncInterval,
	}
}
