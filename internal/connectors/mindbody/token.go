package mindbody

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// TokenSafetyMargin is subtracted from the upstream expiry so a token is
// never presented moments before it lapses server-side.
const TokenSafetyMargin = 60 * time.Second

// tokenResponse is the /usertoken/issue payload.
type tokenResponse struct {
	TokenType   string `json:"TokenType"`
	AccessToken string `json:"AccessToken"`
	ExpiresIn   int    `json:"ExpiresIn"`
}

// TokenManager issues and caches Mindbody user tokens. A cached token is
// reused until it enters the safety margin; concurrent callers during a
// refresh share a single upstream exchange.
type TokenManager struct {
	creds      Credentials
	httpClient *http.Client
	now        func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenManager creates a token manager for the given credentials.
func NewTokenManager(creds Credentials, httpClient *http.Client) *TokenManager {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &TokenManager{
		creds:      creds,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// Token returns a valid access token, issuing a new one if the cached token
// is absent or within the safety margin of expiry.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" && m.now().Before(m.expiresAt) {
		return m.token, nil
	}

	token, expiresIn, err := m.issue(ctx)
	if err != nil {
		return "", err
	}

	m.token = token
	m.expiresAt = m.now().Add(time.Duration(expiresIn)*time.Second - TokenSafetyMargin)
	return m.token, nil
}

// Invalidate discards the cached token so the next Token call issues a
// fresh one. Called by the pipeline when the API answers 401.
func (m *TokenManager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.expiresAt = time.Time{}
}

// issue exchanges the source credentials for a user token.
func (m *TokenManager) issue(ctx context.Context) (string, int, error) {
	payload, err := json.Marshal(map[string]string{
		"Username": m.creds.SourceName,
		"Password": m.creds.SourcePassword,
	})
	if err != nil {
		return "", 0, &AuthExchangeError{Message: "encode credentials", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.creds.baseURL()+"/usertoken/issue", bytes.NewReader(payload))
	if err != nil {
		return "", 0, &AuthExchangeError{Message: "build request", Err: err}
	}
	req.Header.Set("Api-Key", m.creds.APIKey)
	req.Header.Set("SiteId", m.creds.SiteID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", 0, &AuthExchangeError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", 0, &AuthExchangeError{StatusCode: resp.StatusCode, Message: "read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", 0, &AuthExchangeError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(body, resp.Status),
		}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", 0, &AuthExchangeError{StatusCode: resp.StatusCode, Message: "decode token response", Err: err}
	}
	if tr.AccessToken == "" {
		return "", 0, &AuthExchangeError{StatusCode: resp.StatusCode, Message: "token response missing access token"}
	}
	if tr.ExpiresIn <= 0 {
		return "", 0, &AuthExchangeError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("token lifetime %d not positive", tr.ExpiresIn)}
	}
	return tr.AccessToken, tr.ExpiresIn, nil
}
