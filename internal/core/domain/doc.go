// Package domain contains the core business entities for StudioBridge:
// the internal representations of Mindbody sites, staff, clients, classes,
// appointments, enrollments and sale items, plus the shared result and
// error types used by every service and surface.
//
// Entities here are the normalized shapes produced by the connector's
// response mapping. They deliberately carry explicit zero defaults so that
// surfaces never have to branch on missing upstream data.
package domain
