package mindbody

import (
	"context"
	"time"

	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
	"github.com/studiobridge/studiobridge/internal/core/ports/driving"
)

// Caches groups the three read-through cache namespaces by data volatility:
// Staff for slow-moving staff and site metadata, Classes for the live class
// schedule, General for everything else.
type Caches struct {
	Staff   driven.Cache
	Classes driven.Cache
	General driven.Cache
}

// InvalidateClasses clears the class-schedule namespace after a roster
// mutation.
func (c Caches) InvalidateClasses() {
	if c.Classes != nil {
		c.Classes.Clear()
	}
}

// InvalidateGeneral clears the general namespace after a client, sale,
// appointment or enrollment mutation.
func (c Caches) InvalidateGeneral() {
	if c.General != nil {
		c.General.Clear()
	}
}

// Connector implements the entity-service ports against the Mindbody API:
// it builds requests, reads through the caches, and normalises upstream
// payloads into domain types.
type Connector struct {
	gw     driven.Gateway
	caches Caches
	now    func() time.Time
}

var (
	_ driving.SiteService        = (*Connector)(nil)
	_ driving.StaffService       = (*Connector)(nil)
	_ driving.ClientService      = (*Connector)(nil)
	_ driving.ClassService       = (*Connector)(nil)
	_ driving.AppointmentService = (*Connector)(nil)
	_ driving.EnrollmentService  = (*Connector)(nil)
	_ driving.SaleService        = (*Connector)(nil)
)

// New creates a connector over a request gateway and cache set.
func New(gw driven.Gateway, caches Caches) *Connector {
	return &Connector{
		gw:     gw,
		caches: caches,
		now:    time.Now,
	}
}

// defaultLimit is the page size requested from list endpoints.
const defaultLimit = 200

// fetchCached runs the read-through path: return the cached value for key
// when present, otherwise fetch, store and return.
func fetchCached[T any](ctx context.Context, cache driven.Cache, key string, fetch func(context.Context) (T, error)) (T, error) {
	if cache != nil {
		if v, ok := cache.Get(key); ok {
			if typed, ok := v.(T); ok {
				return typed, nil
			}
		}
	}
	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if cache != nil {
		cache.Set(key, v)
	}
	return v, nil
}

// today returns the current date in YYYY-MM-DD form.
func (c *Connector) today() string {
	return c.now().Format("2006-01-02")
}

// daysOut returns the date n days from now in YYYY-MM-DD form.
func (c *Connector) daysOut(n int) string {
	return c.now().AddDate(0, 0, n).Format("2006-01-02")
}

// dateWindow fills absent bounds of a date range with [today, today+days].
func (c *Connector) dateWindow(start, end string, days int) (string, string) {
	if start == "" {
		start = c.today()
	}
	if end == "" {
		end = c.daysOut(days)
	}
	return start, end
}
