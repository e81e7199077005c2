package mindbody

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenIssuer serves /usertoken/issue, counting issue calls.
type tokenIssuer struct {
	issued    atomic.Int64
	status    int
	body      string
	expiresIn int
}

func (ti *tokenIssuer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ti.issued.Add(1)
		if ti.status != 0 && ti.status != http.StatusOK {
			w.WriteHeader(ti.status)
			w.Write([]byte(ti.body)) //nolint:errcheck
			return
		}
		expires := ti.expiresIn
		if expires == 0 {
			expires = 3600
		}
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"TokenType":   "Bearer",
			"AccessToken": "token-1",
			"ExpiresIn":   expires,
		})
	}
}

func testCredentials(baseURL string) Credentials {
	return Credentials{
		APIKey:         "key",
		SiteID:         "-99",
		SourceName:     "studio",
		SourcePassword: "secret",
		BaseURL:        baseURL,
	}
}

func TestTokenManager(t *testing.T) {
	ctx := context.Background()

	t.Run("caches tokens until the safety margin", func(t *testing.T) {
		issuer := &tokenIssuer{expiresIn: 3600}
		srv := httptest.NewServer(issuer.handler())
		defer srv.Close()

		now := time.Now()
		tm := NewTokenManager(testCredentials(srv.URL), srv.Client())
		tm.now = func() time.Time { return now }

		first, err := tm.Token(ctx)
		require.NoError(t, err)
		second, err := tm.Token(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.EqualValues(t, 1, issuer.issued.Load())

		// Just inside the safety margin a refresh happens.
		now = now.Add(3600*time.Second - TokenSafetyMargin)
		_, err = tm.Token(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 2, issuer.issued.Load())
	})

	t.Run("invalidate forces reissue", func(t *testing.T) {
		issuer := &tokenIssuer{}
		srv := httptest.NewServer(issuer.handler())
		defer srv.Close()

		tm := NewTokenManager(testCredentials(srv.URL), srv.Client())

		_, err := tm.Token(ctx)
		require.NoError(t, err)
		tm.Invalidate()
		_, err = tm.Token(ctx)
		require.NoError(t, err)

		assert.EqualValues(t, 2, issuer.issued.Load())
	})

	t.Run("exchange failure is typed with the upstream message", func(t *testing.T) {
		issuer := &tokenIssuer{
			status: http.StatusBadRequest,
			body:   `{"Error":{"Message":"Invalid credentials","Code":"InvalidCredentials"}}`,
		}
		srv := httptest.NewServer(issuer.handler())
		defer srv.Close()

		tm := NewTokenManager(testCredentials(srv.URL), srv.Client())

		_, err := tm.Token(ctx)
		require.Error(t, err)

		var authErr *AuthExchangeError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, http.StatusBadRequest, authErr.StatusCode)
		assert.Equal(t, "Invalid credentials", authErr.Message)
	})

	t.Run("empty access token is an exchange failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"TokenType":"Bearer","AccessToken":"","ExpiresIn":3600}`)) //nolint:errcheck
		}))
		defer srv.Close()

		tm := NewTokenManager(testCredentials(srv.URL), srv.Client())

		_, err := tm.Token(ctx)
		var authErr *AuthExchangeError
		require.ErrorAs(t, err, &authErr)
	})

	t.Run("issue request carries site headers", func(t *testing.T) {
		var gotAPIKey, gotSiteID string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAPIKey = r.Header.Get("Api-Key")
			gotSiteID = r.Header.Get("SiteId")
			w.Write([]byte(`{"AccessToken":"tok","ExpiresIn":3600}`)) //nolint:errcheck
		}))
		defer srv.Close()

		tm := NewTokenManager(testCredentials(srv.URL), srv.Client())
		_, err := tm.Token(ctx)
		require.NoError(t, err)

		assert.Equal(t, "key", gotAPIKey)
		assert.Equal(t, "-99", gotSiteID)
	})
}
