// Package mindbody implements the Mindbody Public API v6 connector.
//
// The connector owns the full upstream surface: credential handling, user
// token issuance and caching, the retrying request pipeline, response
// normalisation into domain types, and the read-through TTL caches. It
// implements the driving entity-service ports directly, so everything above
// it (MCP tools, REST handlers, the sync orchestrator) works purely in
// domain terms.
package mindbody
