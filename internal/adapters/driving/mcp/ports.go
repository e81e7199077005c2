package mcp

import (
	"fmt"

	"github.com/studiobridge/studiobridge/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	Site        driving.SiteService
	Staff       driving.StaffService
	Client      driving.ClientService
	Class       driving.ClassService
	Appointment driving.AppointmentService
	Enrollment  driving.EnrollmentService
	Sale        driving.SaleService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"site", p.Site != nil},
		{"staff", p.Staff != nil},
		{"client", p.Client != nil},
		{"class", p.Class != nil},
		{"appointment", p.Appointment != nil},
		{"enrollment", p.Enrollment != nil},
		{"sale", p.Sale != nil},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrMissingService, c.name)
		}
	}
	return nil
}
