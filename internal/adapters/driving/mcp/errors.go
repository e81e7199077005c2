// Package mcp provides an MCP (Model Context Protocol) server adapter for
// StudioBridge. It exposes the studio's schedule, clients, bookings and
// sales catalog as typed tools for AI assistants.
package mcp

import "errors"

// ErrMissingService is returned when a required service port is not provided.
var ErrMissingService = errors.New("mcp: required service missing")
