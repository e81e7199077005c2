package mindbody

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxAttempts bounds retries of transient failures.
	DefaultMaxAttempts = 3

	// DefaultBaseDelay seeds the exponential backoff between attempts.
	DefaultBaseDelay = time.Second

	// maxResponseBytes caps how much of an upstream body is read.
	maxResponseBytes = 16 << 20
)

// errorEnvelope mirrors the two upstream error body shapes: a structured
// {"Error":{"Message","Code"}} object or a flat {"Message"}.
type errorEnvelope struct {
	Error *struct {
		Message string `json:"Message"`
		Code    string `json:"Code"`
	} `json:"Error"`
	Message string `json:"Message"`
}

// extractMessage pulls the most specific message available from an error
// body: the structured Error.Message first, then the flat Message, then the
// HTTP status line.
func extractMessage(body []byte, statusLine string) string {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Error != nil && env.Error.Message != "" {
			return env.Error.Message
		}
		if env.Message != "" {
			return env.Message
		}
	}
	return statusLine
}

// extractCode pulls the structured error code when one is present.
func extractCode(body []byte) string {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		return env.Error.Code
	}
	return ""
}

// Client is the retrying Mindbody request pipeline. It attaches auth
// headers, reissues tokens on 401, backs off on 5xx and transport errors,
// and decodes success bodies. It satisfies driven.Gateway.
type Client struct {
	creds       Credentials
	tokens      *TokenManager
	httpClient  *http.Client
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	limiter     *rate.Limiter
	baseDelay   time.Duration
	maxAttempts int
	log         zerolog.Logger
}

var _ driven.Gateway = (*Client)(nil)

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseDelay overrides the backoff seed delay.
func WithBaseDelay(d time.Duration) Option {
	return func(c *Client) { c.baseDelay = d }
}

// WithMaxAttempts overrides the transient retry budget.
func WithMaxAttempts(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithRateLimit overrides the client-side request rate limiter.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(limit, burst) }
}

// WithLogger attaches a logger to the pipeline.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a request pipeline for the given credentials.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		creds:       creds,
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		limiter:     rate.NewLimiter(rate.Limit(10), 5),
		baseDelay:   DefaultBaseDelay,
		maxAttempts: DefaultMaxAttempts,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.tokens = NewTokenManager(creds, c.httpClient)
	// The breaker only counts transport-level failures, and only trips when
	// they persist well past a single request's retry budget.
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:    "mindbody",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 8
		},
	})
	return c
}

// Tokens exposes the token manager, used when a surface needs to force a
// credential re-check.
func (c *Client) Tokens() *TokenManager { return c.tokens }

// Get performs a GET against the API path with the given query parameters,
// decoding the response into out.
func (c *Client) Get(ctx context.Context, path string, query driven.Query, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs a POST against the API path with a JSON body, decoding the
// response into out.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query driven.Query, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return &APIError{StatusCode: 0, Message: "encode request body: " + err.Error()}
		}
	}

	u := c.creds.baseURL() + path
	if enc := query.Encode().Encode(); enc != "" {
		u += "?" + enc
	}

	var (
		attempt     int
		authRetried bool
		lastErr     error
	)
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		token, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}

		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
		if err != nil {
			return &APIError{Message: "build request: " + err.Error()}
		}
		req.Header.Set("Api-Key", c.creds.APIKey)
		req.Header.Set("SiteId", c.creds.SiteID)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.dispatch(req)
		if err != nil {
			lastErr = err
			if !c.retryTransient(ctx, method, path, attempt, err.Error()) {
				return &TransientError{Message: err.Error(), Attempts: attempt + 1, Err: lastErr}
			}
			attempt++
			continue
		}

		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			if !c.retryTransient(ctx, method, path, attempt, readErr.Error()) {
				return &TransientError{Message: "read response: " + readErr.Error(), Attempts: attempt + 1, Err: lastErr}
			}
			attempt++
			continue
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			if out == nil || len(respBody) == 0 {
				return nil
			}
			if err := json.Unmarshal(respBody, out); err != nil {
				return &APIError{StatusCode: resp.StatusCode, Message: "decode response: " + err.Error()}
			}
			return nil

		case resp.StatusCode == http.StatusUnauthorized:
			msg := extractMessage(respBody, resp.Status)
			if authRetried {
				return &AuthorizationError{Message: msg}
			}
			authRetried = true
			c.tokens.Invalidate()
			c.log.Debug().Str("method", method).Str("path", path).Msg("token rejected, reissuing")
			continue

		case resp.StatusCode >= 500:
			msg := extractMessage(respBody, resp.Status)
			if !c.retryTransient(ctx, method, path, attempt, msg) {
				return &TransientError{StatusCode: resp.StatusCode, Message: msg, Attempts: attempt + 1}
			}
			attempt++
			continue

		default:
			return &APIError{
				StatusCode: resp.StatusCode,
				Message:    extractMessage(respBody, resp.Status),
				Code:       extractCode(respBody),
			}
		}
	}
}

// dispatch sends the request through the circuit breaker. An open breaker
// surfaces like any other transport failure and consumes retry budget.
func (c *Client) dispatch(req *http.Request) (*http.Response, error) {
	return c.breaker.Execute(func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
}

// retryTransient reports whether another attempt remains in the budget and,
// if so, sleeps the exponential backoff for this attempt.
func (c *Client) retryTransient(ctx context.Context, method, path string, attempt int, reason string) bool {
	if attempt+1 >= c.maxAttempts {
		return false
	}
	delay := c.baseDelay * (1 << attempt)
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("attempt", attempt+1).
		Dur("delay", delay).
		Str("reason", strings.TrimSpace(reason)).
		Msg("transient failure, retrying")
	select {
	case <-ctx.Done():
		return false
	case <-time.After(delay):
		return true
	}
}
