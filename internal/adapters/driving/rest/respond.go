package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"github.com/studiobridge/studiobridge/internal/connectors/mindbody"
	"github.com/studiobridge/studiobridge/internal/core/domain"
)

// errorBody is the uniform error envelope.
type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

// writeServiceError maps read-path errors onto HTTP statuses: upstream
// auth failures are a bad gateway, transient exhaustion is service
// unavailable, upstream rejections keep their 4xx flavor.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case mindbody.IsAuthorization(err):
		writeError(w, http.StatusBadGateway, err.Error())
	case mindbody.IsTransient(err):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		var authErr *mindbody.AuthExchangeError
		if errors.As(err, &authErr) {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		var apiErr *mindbody.APIError
		if errors.As(err, &apiErr) {
			writeError(w, http.StatusBadRequest, apiErr.Message)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeValid decodes a JSON body into v and runs struct validation.
// An empty body is allowed and leaves v at its zero value.
func (s *Server) decodeValid(r *http.Request, v any) error {
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(v); err != nil {
			return fmt.Errorf("decode body: %w", err)
		}
	}
	if err := s.validate.Struct(v); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) {
			return fmt.Errorf("validation failed: %s", fields.Error())
		}
		return err
	}
	return nil
}

// searchHandler serves a POST search endpoint: decode the filter,
// validate it and run the list read.
func searchHandler[F any, T any](s *Server, fn func(context.Context, F) (domain.ListResult[T], error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter F
		if err := s.decodeValid(r, &filter); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		out, err := fn(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listHandler serves a GET endpoint backed by an argument-free list read.
func listHandler[T any](s *Server, fn func(context.Context) (domain.ListResult[T], error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := fn(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// mutationHandler serves a mutation endpoint. Upstream failures arrive
// inside the OperationResult, so the response is always 200 once the
// body validates.
func mutationHandler[P any, T any](s *Server, fn func(context.Context, P) domain.OperationResult[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params P
		if err := s.decodeValid(r, &params); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, fn(r.Context(), params))
	}
}
