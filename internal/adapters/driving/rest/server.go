// Package rest provides the JSON web administration API. It exposes the
// same service catalog as the MCP surface, grouped per entity under
// /api/v1, plus mirror-sync control endpoints.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/studiobridge/studiobridge/internal/core/ports/driving"
)

// Server holds the service ports and cross-cutting helpers behind the
// web API.
type Server struct {
	site        driving.SiteService
	staff       driving.StaffService
	client      driving.ClientService
	class       driving.ClassService
	appointment driving.AppointmentService
	enrollment  driving.EnrollmentService
	sale        driving.SaleService
	sync        driving.SyncService

	// configured reports whether upstream credentials are present. When
	// it returns false all routes except health answer 412.
	configured func() bool

	validate *validator.Validate
	log      zerolog.Logger
}

// Deps carries the ports the server is wired with.
type Deps struct {
	Site        driving.SiteService
	Staff       driving.StaffService
	Client      driving.ClientService
	Class       driving.ClassService
	Appointment driving.AppointmentService
	Enrollment  driving.EnrollmentService
	Sale        driving.SaleService
	Sync        driving.SyncService
	Configured  func() bool
	Logger      zerolog.Logger
}

// NewServer creates the web API server.
func NewServer(deps Deps) *Server {
	configured := deps.Configured
	if configured == nil {
		configured = func() bool { return true }
	}
	return &Server{
		site:        deps.Site,
		staff:       deps.Staff,
		client:      deps.Client,
		class:       deps.Class,
		appointment: deps.Appointment,
		enrollment:  deps.Enrollment,
		sale:        deps.Sale,
		sync:        deps.Sync,
		configured:  configured,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		log:         deps.Logger,
	}
}

// Router builds the chi router for the API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Group(func(r chi.Router) {
			r.Use(s.credentialGate)

			r.Get("/sites", listHandler(s, s.site.GetSites))
			r.Get("/locations", listHandler(s, s.site.GetLocations))
			r.Get("/resources", listHandler(s, s.site.GetResources))
			r.Get("/activation-code", s.handleActivationCode)
			r.Post("/programs/search", searchHandler(s, s.site.GetPrograms))
			r.Post("/session-types/search", searchHandler(s, s.site.GetSessionTypes))

			r.Post("/staff/search", searchHandler(s, s.staff.GetStaff))
			r.Get("/staff/{id}", s.handleGetStaffByID)
			r.Get("/staff/{id}/schedule", s.handleTeacherSchedule)

			r.Post("/clients/search", searchHandler(s, s.client.GetClients))
			r.Post("/clients", mutationHandler(s, s.client.AddClient))
			r.Get("/clients/{id}", s.handleGetClientByID)
			r.Put("/clients/{id}", s.handleUpdateClient)
			r.Get("/clients/{id}/visits", s.handleClientVisits)
			r.Get("/clients/{id}/memberships", s.handleClientMemberships)
			r.Get("/clients/{id}/contracts", s.handleClientContracts)
			r.Get("/clients/{id}/balances", s.handleClientBalances)
			r.Get("/clients/{id}/enrollments", s.handleClientEnrollments)
			r.Post("/clients/{id}/arrivals", s.handleClientArrival)

			r.Post("/classes/search", searchHandler(s, s.class.GetClasses))
			r.Get("/classes/{id}", s.handleGetClassByID)
			r.Get("/class-descriptions", listHandler(s, s.class.GetClassDescriptions))
			r.Post("/class-schedules/search", searchHandler(s, s.class.GetClassSchedules))
			r.Post("/classes/bookings", mutationHandler(s, s.class.AddClientToClass))
			r.Post("/classes/cancellations", mutationHandler(s, s.class.RemoveClientFromClass))
			r.Post("/classes/waitlist/search", searchHandler(s, s.class.GetWaitlistEntries))
			r.Post("/classes/substitutions", mutationHandler(s, s.class.SubstituteTeacher))

			r.Post("/appointments/search", searchHandler(s, s.appointment.GetStaffAppointments))
			r.Post("/appointments", mutationHandler(s, s.appointment.AddAppointment))
			r.Put("/appointments/{id}", s.handleUpdateAppointment)
			r.Post("/appointments/bookable-items/search", searchHandler(s, s.appointment.GetBookableItems))
			r.Post("/appointments/schedule-items/search", searchHandler(s, s.appointment.GetScheduleItems))
			r.Post("/appointments/session-times/search", searchHandler(s, s.appointment.GetActiveSessionTimes))

			r.Post("/enrollments/search", searchHandler(s, s.enrollment.GetEnrollments))
			r.Post("/enrollments/bookings", mutationHandler(s, s.enrollment.AddClientToEnrollment))

			r.Post("/sales/services/search", searchHandler(s, s.sale.GetServices))
			r.Post("/sales/packages/search", searchHandler(s, s.sale.GetPackages))
			r.Post("/sales/products/search", searchHandler(s, s.sale.GetProducts))
			r.Post("/sales/contracts/search", searchHandler(s, s.sale.GetContracts))
			r.Post("/sales/checkout", mutationHandler(s, s.sale.CheckoutShoppingCart))
			r.Post("/sales/contract-purchases", mutationHandler(s, s.sale.PurchaseContract))

			r.Post("/sync", s.handleSyncRun)
			r.Get("/sync/status", s.handleSyncStatus)
		})
	})

	return r
}
