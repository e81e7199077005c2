// Package services contains the core orchestration logic that sits
// between the driving adapters (MCP, REST, CLI) and the driven ports.
package services
