package mindbody

import (
	"errors"
	"fmt"
)

// AuthExchangeError indicates the user token could not be issued. It is
// terminal: the pipeline never retries a failed credential exchange.
type AuthExchangeError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AuthExchangeError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("mindbody: token exchange failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("mindbody: token exchange failed: %s", e.Message)
}

func (e *AuthExchangeError) Unwrap() error { return e.Err }

// AuthorizationError indicates the API rejected a request with 401 even
// after the cached token was discarded and reissued.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("mindbody: unauthorized: %s", e.Message)
}

// APIError represents a non-retriable 4xx response from the API, carrying
// the message extracted from the upstream error envelope.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("mindbody: API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("mindbody: API error %d: %s", e.StatusCode, e.Message)
}

// TransientError indicates the retry budget was exhausted on 5xx responses
// or transport failures.
type TransientError struct {
	StatusCode int
	Message    string
	Attempts   int
	Err        error
}

func (e *TransientError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("mindbody: request failed after %d attempts (%d): %s", e.Attempts, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("mindbody: request failed after %d attempts: %s", e.Attempts, e.Message)
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsAuthorization checks if the error is a terminal authorization failure.
func IsAuthorization(err error) bool {
	var authErr *AuthorizationError
	var exchErr *AuthExchangeError
	return errors.As(err, &authErr) || errors.As(err, &exchErr)
}

// IsTransient checks if the error came from an exhausted retry budget.
func IsTransient(err error) bool {
	var trErr *TransientError
	return errors.As(err, &trErr)
}

// userMessage extracts a human-readable message from a pipeline error for
// surfaces that report failures as data rather than errors.
func userMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var authErr *AuthorizationError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	var trErr *TransientError
	if errors.As(err, &trErr) {
		return trErr.Message
	}
	return err.Error()
}
