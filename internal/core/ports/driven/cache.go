package driven

import "time"

// Cache is a TTL key-value store. Implementations must be safe for
// concurrent use. Entries expire lazily at read time; an expired entry is
// indistinguishable from an absent one.
//
// Multiple independent instances exist, one per data-volatility class
// (stable staff metadata vs fast-moving class rosters). Instances never
// invalidate each other.
type Cache interface {
	// Get returns the stored value and true while the entry is live.
	Get(key string) (any, bool)

	// Set stores value under key with the instance default TTL,
	// unconditionally replacing any existing entry.
	Set(key string, value any)

	// SetTTL stores value with an explicit TTL override.
	SetTTL(key string, value any, ttl time.Duration)

	// Has reports whether a live entry exists for key.
	Has(key string) bool

	// Delete removes the entry for key if present.
	Delete(key string)

	// Clear removes every entry. Mutation wrappers call this on the
	// affected namespaces before reporting success.
	Clear()

	// Len returns the number of live entries. Expired entries do not
	// count, whether or not a sweep has removed them yet.
	Len() int

	// SetDefaultTTL changes the instance default TTL for subsequent
	// Set calls. Existing entries keep their expiry.
	SetDefaultTTL(ttl time.Duration)
}
