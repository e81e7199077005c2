package driving

import (
	"context"

	"github.com/studiobridge/studiobridge/internal/core/domain"
)

// SiteService reads organizational metadata: sites, locations, resources,
// programs and session types. All of it is slow-moving and cached in the
// long-TTL namespace.
type SiteService interface {
	GetSites(ctx context.Context) (domain.ListResult[domain.Site], error)
	GetLocations(ctx context.Context) (domain.ListResult[domain.Location], error)
	GetResources(ctx context.Context) (domain.ListResult[domain.Resource], error)
	GetActivationCode(ctx context.Context) (domain.ActivationCode, error)
	GetPrograms(ctx context.Context, filter domain.ProgramFilter) (domain.ListResult[domain.Program], error)
	GetSessionTypes(ctx context.Context, filter domain.SessionTypeFilter) (domain.ListResult[domain.SessionType], error)
}

// StaffService reads staff members and assembles teacher schedules.
type StaffService interface {
	GetStaff(ctx context.Context, filter domain.StaffFilter) (domain.ListResult[domain.Staff], error)
	// GetStaffByID returns domain.ErrNotFound when no staff member has
	// the given id.
	GetStaffByID(ctx context.Context, staffID int) (domain.Staff, error)
	// GetTeacherSchedule assembles one teacher's classes over a date
	// range. Dates default to today through a week out.
	GetTeacherSchedule(ctx context.Context, teacherID int, startDate, endDate string) (domain.TeacherSchedule, error)
}

// ClientService reads and mutates studio clients.
type ClientService interface {
	GetClients(ctx context.Context, filter domain.ClientFilter) (domain.ListResult[domain.Client], error)
	GetClientByID(ctx context.Context, clientID string) (domain.Client, error)
	AddClient(ctx context.Context, params domain.NewClient) domain.OperationResult[domain.Client]
	UpdateClient(ctx context.Context, params domain.ClientUpdate) domain.OperationResult[domain.Client]
	GetClientVisits(ctx context.Context, filter domain.VisitFilter) (domain.VisitHistory, error)
	GetClientMemberships(ctx context.Context, clientID string, locationID int) (domain.ListResult[domain.Membership], error)
	GetClientContracts(ctx context.Context, clientID string) (domain.ListResult[domain.ClientContract], error)
	GetClientAccountBalances(ctx context.Context, clientID string) (domain.AccountBalances, error)
	AddClientArrival(ctx context.Context, clientID string, locationID int) domain.OperationResult[domain.ArrivalResult]
}

// ClassService reads the class schedule and mutates class rosters.
type ClassService interface {
	GetClasses(ctx context.Context, filter domain.ClassFilter) (domain.ListResult[domain.Class], error)
	GetClassByID(ctx context.Context, classID int) (domain.Class, error)
	GetClassDescriptions(ctx context.Context) (domain.ListResult[domain.ClassDescription], error)
	GetClassSchedules(ctx context.Context, filter domain.ClassScheduleFilter) (domain.ListResult[domain.ClassSchedule], error)
	AddClientToClass(ctx context.Context, params domain.ClassBooking) domain.OperationResult[domain.BookingVisit]
	RemoveClientFromClass(ctx context.Context, params domain.ClassCancellation) domain.OperationResult[domain.Empty]
	GetWaitlistEntries(ctx context.Context, filter domain.WaitlistFilter) (domain.ListResult[domain.WaitlistEntry], error)
	SubstituteTeacher(ctx context.Context, params domain.TeacherSubstitution) domain.OperationResult[domain.Empty]
}

// AppointmentService reads and mutates one-on-one appointments.
type AppointmentService interface {
	GetStaffAppointments(ctx context.Context, filter domain.AppointmentFilter) (domain.ListResult[domain.Appointment], error)
	AddAppointment(ctx context.Context, params domain.NewAppointment) domain.OperationResult[domain.Appointment]
	UpdateAppointment(ctx context.Context, params domain.AppointmentUpdate) domain.OperationResult[domain.Appointment]
	GetBookableItems(ctx context.Context, filter domain.BookableItemFilter) (domain.ListResult[domain.BookableItem], error)
	GetScheduleItems(ctx context.Context, filter domain.ScheduleItemFilter) (domain.ListResult[domain.ScheduleItem], error)
	GetActiveSessionTimes(ctx context.Context, filter domain.ActiveSessionTimeFilter) (domain.ListResult[domain.ActiveSessionTime], error)
}

// EnrollmentService reads enrollments and books clients into them.
type EnrollmentService interface {
	GetEnrollments(ctx context.Context, filter domain.EnrollmentFilter) (domain.ListResult[domain.Enrollment], error)
	AddClientToEnrollment(ctx context.Context, params domain.EnrollmentBooking) domain.OperationResult[domain.Empty]
	GetClientEnrollments(ctx context.Context, clientID string) (domain.ListResult[domain.Enrollment], error)
}

// SaleService reads the sale catalog and executes purchases.
type SaleService interface {
	GetServices(ctx context.Context, filter domain.ServiceFilter) (domain.ListResult[domain.Service], error)
	GetPackages(ctx context.Context, filter domain.PackageFilter) (domain.ListResult[domain.Package], error)
	GetProducts(ctx context.Context, filter domain.ProductFilter) (domain.ListResult[domain.Product], error)
	GetContracts(ctx context.Context, filter domain.ContractFilter) (domain.ListResult[domain.Contract], error)
	CheckoutShoppingCart(ctx context.Context, params domain.Checkout) domain.OperationResult[domain.CheckoutResult]
	PurchaseContract(ctx context.Context, params domain.ContractPurchase) domain.OperationResult[domain.PurchasedContract]
}

// SyncService mirrors upstream entities into the local store.
type SyncService interface {
	// SyncAll mirrors every entity in order. Returns
	// domain.ErrSyncInProgress when a run is already active.
	SyncAll(ctx context.Context) (domain.SyncRun, error)

	// SyncEntity mirrors a single entity type.
	SyncEntity(ctx context.Context, entity domain.SyncEntity) (domain.EntitySyncResult, error)

	// Status returns the most recent run and per-entity states.
	Status(ctx context.Context) (domain.SyncRun, []domain.SyncState, error)
}
