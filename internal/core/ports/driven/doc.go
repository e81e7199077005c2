// Package driven defines the interfaces the core depends on: the upstream
// API gateway, the TTL caches, the local mirror store and the runtime
// settings store. Adapters under internal/adapters/driven and the Mindbody
// connector implement them.
package driven
