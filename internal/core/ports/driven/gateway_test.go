package driven

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_EncodeOmitsEmptyValues(t *testing.T) {
	yes := true
	q := Query{
		"SearchText":   "",
		"Limit":        200,
		"Offset":       0,
		"StaffIds":     []int{5, 9},
		"LocationIds":  []int{},
		"ClientIds":    []string(nil),
		"IsActive":     &yes,
		"IsInstructor": (*bool)(nil),
		"PageSize":     (*int)(nil),
		"Force":        false,
	}

	got := q.Encode()

	assert.Equal(t, "200", got.Get("Limit"))
	assert.Equal(t, "5,9", got.Get("StaffIds"))
	assert.Equal(t, "true", got.Get("IsActive"))
	// Untyped bools are always sent, even when false.
	assert.Equal(t, "false", got.Get("Force"))

	for _, key := range []string{"SearchText", "Offset", "LocationIds", "ClientIds", "IsInstructor", "PageSize"} {
		assert.False(t, got.Has(key), "%s should be omitted", key)
	}
}

func TestQuery_CanonicalIsDeterministic(t *testing.T) {
	q := Query{
		"StartDate": "2026-09-01",
		"EndDate":   "2026-09-08",
		"StaffIds":  []int{5, 9},
		"Limit":     200,
	}

	want := "|EndDate=2026-09-08|Limit=200|StaffIds=5,9|StartDate=2026-09-01"
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, q.Canonical())
	}
}

func TestQuery_CanonicalIgnoresOmittedKeys(t *testing.T) {
	a := Query{"Limit": 100}
	b := Query{"Limit": 100, "SearchText": "", "Offset": 0}

	assert.Equal(t, a.Canonical(), b.Canonical())
}

func TestQuery_CanonicalSeparatesDifferentFilters(t *testing.T) {
	a := Query{"StaffIds": []int{5}}
	b := Query{"StaffIds": []int{9}}

	assert.NotEqual(t, a.Canonical(), b.Canonical())
}
