package mcp

import (
	"context"

	"github.com/studiobridge/studiobridge/internal/core/domain"
)

// --- Mock service implementations ---
// Each mock returns its canned items (or err) from list reads and its
// canned result from mutations. Methods not under test return zero values.

type mockSiteService struct {
	locations []domain.Location
	err       error
}

func (m *mockSiteService) GetSites(ctx context.Context) (domain.ListResult[domain.Site], error) {
	return domain.ListResult[domain.Site]{}, m.err
}

func (m *mockSiteService) GetLocations(ctx context.Context) (domain.ListResult[domain.Location], error) {
	return domain.ListResult[domain.Location]{Items: m.locations, Total: len(m.locations)}, m.err
}

func (m *mockSiteService) GetResources(ctx context.Context) (domain.ListResult[domain.Resource], error) {
	return domain.ListResult[domain.Resource]{}, m.err
}

func (m *mockSiteService) GetActivationCode(ctx context.Context) (domain.ActivationCode, error) {
	return domain.ActivationCode{}, m.err
}

func (m *mockSiteService) GetPrograms(ctx context.Context, filter domain.ProgramFilter) (domain.ListResult[domain.Program], error) {
	return domain.ListResult[domain.Program]{}, m.err
}

func (m *mockSiteService) GetSessionTypes(ctx context.Context, filter domain.SessionTypeFilter) (domain.ListResult[domain.SessionType], error) {
	return domain.ListResult[domain.SessionType]{}, m.err
}

type mockStaffService struct {
	staff      []domain.Staff
	schedule   domain.TeacherSchedule
	lastFilter domain.StaffFilter
	err        error
}

func (m *mockStaffService) GetStaff(ctx context.Context, filter domain.StaffFilter) (domain.ListResult[domain.Staff], error) {
	m.lastFilter = filter
	if m.err != nil {
		return domain.ListResult[domain.Staff]{}, m.err
	}
	return domain.ListResult[domain.Staff]{Items: m.staff, Total: len(m.staff)}, nil
}

func (m *mockStaffService) GetStaffByID(ctx context.Context, staffID int) (domain.Staff, error) {
	return domain.Staff{}, m.err
}

func (m *mockStaffService) GetTeacherSchedule(ctx context.Context, teacherID int, startDate, endDate string) (domain.TeacherSchedule, error) {
	return m.schedule, m.err
}

type mockClientService struct {
	addResult domain.OperationResult[domain.Client]
	err       error
}

func (m *mockClientService) GetClients(ctx context.Context, filter domain.ClientFilter) (domain.ListResult[domain.Client], error) {
	return domain.ListResult[domain.Client]{}, m.err
}

func (m *mockClientService) GetClientByID(ctx context.Context, clientID string) (domain.Client, error) {
	return domain.Client{}, m.err
}

func (m *mockClientService) AddClient(ctx context.Context, params domain.NewClient) domain.OperationResult[domain.Client] {
	return m.addResult
}

func (m *mockClientService) UpdateClient(ctx context.Context, params domain.ClientUpdate) domain.OperationResult[domain.Client] {
	return m.addResult
}

func (m *mockClientService) GetClientVisits(ctx context.Context, filter domain.VisitFilter) (domain.VisitHistory, error) {
	return domain.VisitHistory{}, m.err
}

func (m *mockClientService) GetClientMemberships(ctx context.Context, clientID string, locationID int) (domain.ListResult[domain.Membership], error) {
	return domain.ListResult[domain.Membership]{}, m.err
}

func (m *mockClientService) GetClientContracts(ctx context.Context, clientID string) (domain.ListResult[domain.ClientContract], error) {
	return domain.ListResult[domain.ClientContract]{}, m.err
}

func (m *mockClientService) GetClientAccountBalances(ctx context.Context, clientID string) (domain.AccountBalances, error) {
	return domain.AccountBalances{}, m.err
}

func (m *mockClientService) AddClientArrival(ctx context.Context, clientID string, locationID int) domain.OperationResult[domain.ArrivalResult] {
	return domain.OperationResult[domain.ArrivalResult]{}
}

type mockClassService struct {
	classes       []domain.Class
	bookingResult domain.OperationResult[domain.BookingVisit]
	emptyResult   domain.OperationResult[domain.Empty]
	err           error
}

func (m *mockClassService) GetClasses(ctx context.Context, filter domain.ClassFilter) (domain.ListResult[domain.Class], error) {
	if m.err != nil {
		return domain.ListResult[domain.Class]{}, m.err
	}
	return domain.ListResult[domain.Class]{Items: m.classes, Total: len(m.classes)}, nil
}

func (m *mockClassService) GetClassByID(ctx context.Context, classID int) (domain.Class, error) {
	return domain.Class{}, m.err
}

func (m *mockClassService) GetClassDescriptions(ctx context.Context) (domain.ListResult[domain.ClassDescription], error) {
	return domain.ListResult[domain.ClassDescription]{}, m.err
}

func (m *mockClassService) GetClassSchedules(ctx context.Context, filter domain.ClassScheduleFilter) (domain.ListResult[domain.ClassSchedule], error) {
	return domain.ListResult[domain.ClassSchedule]{}, m.err
}

func (m *mockClassService) AddClientToClass(ctx context.Context, params domain.ClassBooking) domain.OperationResult[domain.BookingVisit] {
	return m.bookingResult
}

func (m *mockClassService) RemoveClientFromClass(ctx context.Context, params domain.ClassCancellation) domain.OperationResult[domain.Empty] {
	return m.emptyResult
}

func (m *mockClassService) GetWaitlistEntries(ctx context.Context, filter domain.WaitlistFilter) (domain.ListResult[domain.WaitlistEntry], error) {
	return domain.ListResult[domain.WaitlistEntry]{}, m.err
}

func (m *mockClassService) SubstituteTeacher(ctx context.Context, params domain.TeacherSubstitution) domain.OperationResult[domain.Empty] {
	return m.emptyResult
}

type mockAppointmentService struct {
	err error
}

func (m *mockAppointmentService) GetStaffAppointments(ctx context.Context, filter domain.AppointmentFilter) (domain.ListResult[domain.Appointment], error) {
	return domain.ListResult[domain.Appointment]{}, m.err
}

func (m *mockAppointmentService) AddAppointment(ctx context.Context, params domain.NewAppointment) domain.OperationResult[domain.Appointment] {
	return domain.OperationResult[domain.Appointment]{}
}

func (m *mockAppointmentService) UpdateAppointment(ctx context.Context, params domain.AppointmentUpdate) domain.OperationResult[domain.Appointment] {
	return domain.OperationResult[domain.Appointment]{}
}

func (m *mockAppointmentService) GetBookableItems(ctx context.Context, filter domain.BookableItemFilter) (domain.ListResult[domain.BookableItem], error) {
	return domain.ListResult[domain.BookableItem]{}, m.err
}

func (m *mockAppointmentService) GetScheduleItems(ctx context.Context, filter domain.ScheduleItemFilter) (domain.ListResult[domain.ScheduleItem], error) {
	return domain.ListResult[domain.ScheduleItem]{}, m.err
}

func (m *mockAppointmentService) GetActiveSessionTimes(ctx context.Context, filter domain.ActiveSessionTimeFilter) (domain.ListResult[domain.ActiveSessionTime], error) {
	return domain.ListResult[domain.ActiveSessionTime]{}, m.err
}

type mockEnrollmentService struct {
	err error
}

func (m *mockEnrollmentService) GetEnrollments(ctx context.Context, filter domain.EnrollmentFilter) (domain.ListResult[domain.Enrollment], error) {
	return domain.ListResult[domain.Enrollment]{}, m.err
}

func (m *mockEnrollmentService) AddClientToEnrollment(ctx context.Context, params domain.EnrollmentBooking) domain.OperationResult[domain.Empty] {
	return domain.OperationResult[domain.Empty]{}
}

func (m *mockEnrollmentService) GetClientEnrollments(ctx context.Context, clientID string) (domain.ListResult[domain.Enrollment], error) {
	return domain.ListResult[domain.Enrollment]{}, m.err
}

type mockSaleService struct {
	err error
}

func (m *mockSaleService) GetServices(ctx context.Context, filter domain.ServiceFilter) (domain.ListResult[domain.Service], error) {
	return domain.ListResult[domain.Service]{}, m.err
}

func (m *mockSaleService) GetPackages(ctx context.Context, filter domain.PackageFilter) (domain.ListResult[domain.Package], error) {
	return domain.ListResult[domain.Package]{}, m.err
}

func (m *mockSaleService) GetProducts(ctx context.Context, filter domain.ProductFilter) (domain.ListResult[domain.Product], error) {
	return domain.ListResult[domain.Product]{}, m.err
}

func (m *mockSaleService) GetContracts(ctx context.Context, filter domain.ContractFilter) (domain.ListResult[domain.Contract], error) {
	return domain.ListResult[domain.Contract]{}, m.err
}

func (m *mockSaleService) CheckoutShoppingCart(ctx context.Context, params domain.Checkout) domain.OperationResult[domain.CheckoutResult] {
	return domain.OperationResult[domain.CheckoutResult]{}
}

func (m *mockSaleService) PurchaseContract(ctx context.Context, params domain.ContractPurchase) domain.OperationResult[domain.PurchasedContract] {
	return domain.OperationResult[domain.PurchasedContract]{}
}

// testPorts builds a fully wired Ports with zero-value mocks.
func testPorts() *Ports {
	return &Ports{
		Site:        &mockSiteService{},
		Staff:       &mockStaffService{},
		Client:      &mockClientService{},
		Class:       &mockClassService{},
		Appointment: &mockAppointmentService{},
		Enrollment:  &mockEnrollmentService{},
		Sale:        &mockSaleService{},
	}
}
