// Package driving defines the service interfaces consumed by the MCP,
// web and CLI surfaces. The Mindbody connector implements the entity
// services; the sync orchestrator implements SyncService.
//
// Read operations propagate errors to the caller. Mutating operations
// never return an application error for upstream failures: failures
// arrive inside the OperationResult so surfaces have no exception
// handling to do.
package driving
