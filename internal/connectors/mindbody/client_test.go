package mindbody

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
)

// newTestClient builds a pipeline against a test server whose data
// endpoints are handled by dataHandler. Token issuance always succeeds.
func newTestClient(t *testing.T, dataHandler http.HandlerFunc) (*Client, *atomic.Int64) {
	t.Helper()

	var issued atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/usertoken/issue", func(w http.ResponseWriter, r *http.Request) {
		issued.Add(1)
		w.Write([]byte(`{"TokenType":"Bearer","AccessToken":"tok","ExpiresIn":3600}`)) //nolint:errcheck
	})
	mux.HandleFunc("/", dataHandler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(testCredentials(srv.URL),
		WithHTTPClient(srv.Client()),
		WithBaseDelay(time.Millisecond),
		WithRateLimit(rate.Inf, 0),
	)
	return client, &issued
}

func TestClientGet(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes success and sends auth headers", func(t *testing.T) {
		var gotAuth, gotAPIKey, gotSiteID string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotAPIKey = r.Header.Get("Api-Key")
			gotSiteID = r.Header.Get("SiteId")
			w.Write([]byte(`{"Value":42}`)) //nolint:errcheck
		})

		var out struct {
			Value int `json:"Value"`
		}
		require.NoError(t, client.Get(ctx, "/site/sites", nil, &out))

		assert.Equal(t, 42, out.Value)
		assert.Equal(t, "Bearer tok", gotAuth)
		assert.Equal(t, "key", gotAPIKey)
		assert.Equal(t, "-99", gotSiteID)
	})

	t.Run("omits zero-valued query parameters", func(t *testing.T) {
		var gotQuery string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{}`)) //nolint:errcheck
		})

		q := driven.Query{
			"StaffIds":  []int{5, 9},
			"Limit":     200,
			"Offset":    0,
			"SearchBy":  "",
			"IsStaff":   (*bool)(nil),
			"StartDate": "2026-09-01",
		}
		require.NoError(t, client.Get(ctx, "/staff/staff", q, nil))

		values, err := url.ParseQuery(gotQuery)
		require.NoError(t, err)
		assert.Equal(t, "5,9", values.Get("StaffIds"))
		assert.Equal(t, "200", values.Get("Limit"))
		assert.Equal(t, "2026-09-01", values.Get("StartDate"))
		assert.NotContains(t, gotQuery, "Offset")
		assert.NotContains(t, gotQuery, "SearchBy")
		assert.NotContains(t, gotQuery, "IsStaff")
	})
}

func TestClientAuthRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("401 invalidates and retries once", func(t *testing.T) {
		var dataCalls atomic.Int64
		client, issued := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if dataCalls.Add(1) == 1 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{}`)) //nolint:errcheck
		})

		require.NoError(t, client.Get(ctx, "/site/sites", nil, nil))
		assert.EqualValues(t, 2, dataCalls.Load())
		assert.EqualValues(t, 2, issued.Load())
	})

	t.Run("second 401 is terminal", func(t *testing.T) {
		var dataCalls atomic.Int64
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			dataCalls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"Error":{"Message":"Bad token"}}`)) //nolint:errcheck
		})

		err := client.Get(ctx, "/site/sites", nil, nil)
		var authErr *AuthorizationError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "Bad token", authErr.Message)
		assert.EqualValues(t, 2, dataCalls.Load())
	})
}

func TestClientTransientRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("5xx retries then succeeds", func(t *testing.T) {
		var dataCalls atomic.Int64
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if dataCalls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`{}`)) //nolint:errcheck
		})

		require.NoError(t, client.Get(ctx, "/site/sites", nil, nil))
		assert.EqualValues(t, 3, dataCalls.Load())
	})

	t.Run("backoff grows between attempts", func(t *testing.T) {
		var (
			mu       sync.Mutex
			arrivals []time.Time
		)
		mux := http.NewServeMux()
		mux.HandleFunc("/usertoken/issue", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"TokenType":"Bearer","AccessToken":"tok","ExpiresIn":3600}`)) //nolint:errcheck
		})
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			arrivals = append(arrivals, time.Now())
			n := len(arrivals)
			mu.Unlock()
			if n < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`{}`)) //nolint:errcheck
		})
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)

		// A base delay large enough to dominate scheduling jitter.
		base := 30 * time.Millisecond
		client := NewClient(testCredentials(srv.URL),
			WithHTTPClient(srv.Client()),
			WithBaseDelay(base),
			WithRateLimit(rate.Inf, 0),
		)

		require.NoError(t, client.Get(ctx, "/site/sites", nil, nil))

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, arrivals, 3)
		firstGap := arrivals[1].Sub(arrivals[0])
		secondGap := arrivals[2].Sub(arrivals[1])
		assert.GreaterOrEqual(t, firstGap, base)
		assert.Greater(t, secondGap, firstGap,
			"delay before attempt 3 must exceed delay before attempt 2")
	})

	t.Run("budget exhaustion is a transient error", func(t *testing.T) {
		var dataCalls atomic.Int64
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			dataCalls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"Message":"Maintenance"}`)) //nolint:errcheck
		})

		err := client.Get(ctx, "/site/sites", nil, nil)
		var transient *TransientError
		require.ErrorAs(t, err, &transient)
		assert.Equal(t, http.StatusServiceUnavailable, transient.StatusCode)
		assert.Equal(t, "Maintenance", transient.Message)
		assert.Equal(t, DefaultMaxAttempts, transient.Attempts)
		assert.EqualValues(t, DefaultMaxAttempts, dataCalls.Load())
	})

	t.Run("auth retry does not consume the transient budget", func(t *testing.T) {
		// 401 first, then 5xx twice, then success: the 401 reissue plus two
		// transient retries all fit because the auth retry is not counted.
		var dataCalls atomic.Int64
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch dataCalls.Add(1) {
			case 1:
				w.WriteHeader(http.StatusUnauthorized)
			case 2, 3:
				w.WriteHeader(http.StatusInternalServerError)
			default:
				w.Write([]byte(`{}`)) //nolint:errcheck
			}
		})

		require.NoError(t, client.Get(ctx, "/site/sites", nil, nil))
		assert.EqualValues(t, 4, dataCalls.Load())
	})
}

func TestClientTerminalRejection(t *testing.T) {
	ctx := context.Background()

	t.Run("4xx never retries", func(t *testing.T) {
		var dataCalls atomic.Int64
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			dataCalls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"Error":{"Message":"Class is full","Code":"ClassFull"}}`)) //nolint:errcheck
		})

		err := client.Get(ctx, "/class/classes", nil, nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "Class is full", apiErr.Message)
		assert.Equal(t, "ClassFull", apiErr.Code)
		assert.EqualValues(t, 1, dataCalls.Load())
	})
}

func TestExtractMessage(t *testing.T) {
	statusLine := "400 Bad Request"

	t.Run("structured error message wins", func(t *testing.T) {
		body := []byte(`{"Error":{"Message":"Nested"},"Message":"Flat"}`)
		assert.Equal(t, "Nested", extractMessage(body, statusLine))
	})

	t.Run("flat message next", func(t *testing.T) {
		body := []byte(`{"Message":"Flat"}`)
		assert.Equal(t, "Flat", extractMessage(body, statusLine))
	})

	t.Run("status line last", func(t *testing.T) {
		assert.Equal(t, statusLine, extractMessage([]byte(`not json`), statusLine))
		assert.Equal(t, statusLine, extractMessage([]byte(`{}`), statusLine))
	})
}
