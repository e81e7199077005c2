package rest

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiobridge/studiobridge/internal/connectors/mindbody"
	"github.com/studiobridge/studiobridge/internal/core/domain"
)

// stubServices implements every driving port from one struct so tests
// only fill in the fields they exercise.
type stubServices struct {
	err           error
	staff         []domain.Staff
	classes       []domain.Class
	client        domain.Client
	bookingResult domain.OperationResult[domain.BookingVisit]
	clientResult  domain.OperationResult[domain.Client]
	syncRun       domain.SyncRun
	syncErr       error
	syncStates    []domain.SyncState

	lastClientUpdate domain.ClientUpdate
}

func (st *stubServices) GetSites(ctx context.Context) (domain.ListResult[domain.Site], error) {
	return domain.ListResult[domain.Site]{}, st.err
}

func (st *stubServices) GetLocations(ctx context.Context) (domain.ListResult[domain.Location], error) {
	return domain.ListResult[domain.Location]{}, st.err
}

func (st *stubServices) GetResources(ctx context.Context) (domain.ListResult[domain.Resource], error) {
	return domain.ListResult[domain.Resource]{}, st.err
}

func (st *stubServices) GetActivationCode(ctx context.Context) (domain.ActivationCode, error) {
	return domain.ActivationCode{}, st.err
}

func (st *stubServices) GetPrograms(ctx context.Context, filter domain.ProgramFilter) (domain.ListResult[domain.Program], error) {
	return domain.ListResult[domain.Program]{}, st.err
}

func (st *stubServices) GetSessionTypes(ctx context.Context, filter domain.SessionTypeFilter) (domain.ListResult[domain.SessionType], error) {
	return domain.ListResult[domain.SessionType]{}, st.err
}

func (st *stubServices) GetStaff(ctx context.Context, filter domain.StaffFilter) (domain.ListResult[domain.Staff], error) {
	if st.err != nil {
		return domain.ListResult[domain.Staff]{}, st.err
	}
	return domain.ListResult[domain.Staff]{Items: st.staff, Total: len(st.staff)}, nil
}

func (st *stubServices) GetStaffByID(ctx context.Context, staffID int) (domain.Staff, error) {
	if st.err != nil {
		return domain.Staff{}, st.err
	}
	if len(st.staff) == 0 {
		return domain.Staff{}, domain.ErrNotFound
	}
	return st.staff[0], nil
}

func (st *stubServices) GetTeacherSchedule(ctx context.Context, teacherID int, startDate, endDate string) (domain.TeacherSchedule, error) {
	return domain.TeacherSchedule{}, st.err
}

func (st *stubServices) GetClients(ctx context.Context, filter domain.ClientFilter) (domain.ListResult[domain.Client], error) {
	return domain.ListResult[domain.Client]{}, st.err
}

func (st *stubServices) GetClientByID(ctx context.Context, clientID string) (domain.Client, error) {
	return st.client, st.err
}

func (st *stubServices) AddClient(ctx context.Context, params domain.NewClient) domain.OperationResult[domain.Client] {
	return st.clientResult
}

func (st *stubServices) UpdateClient(ctx context.Context, params domain.ClientUpdate) domain.OperationResult[domain.Client] {
	st.lastClientUpdate = params
	return st.clientResult
}

func (st *stubServices) GetClientVisits(ctx context.Context, filter domain.VisitFilter) (domain.VisitHistory, error) {
	return domain.VisitHistory{}, st.err
}

func (st *stubServices) GetClientMemberships(ctx context.Context, clientID string, locationID int) (domain.ListResult[domain.Membership], error) {
	return domain.ListResult[domain.Membership]{}, st.err
}

func (st *stubServices) GetClientContracts(ctx context.Context, clientID string) (domain.ListResult[domain.ClientContract], error) {
	return domain.ListResult[domain.ClientContract]{}, st.err
}

func (st *stubServices) GetClientAccountBalances(ctx context.Context, clientID string) (domain.AccountBalances, error) {
	return domain.AccountBalances{}, st.err
}

func (st *stubServices) AddClientArrival(ctx context.Context, clientID string, locationID int) domain.OperationResult[domain.ArrivalResult] {
	return domain.OperationResult[domain.ArrivalResult]{Success: true, Message: "Client checked in successfully"}
}

func (st *stubServices) GetClasses(ctx context.Context, filter domain.ClassFilter) (domain.ListResult[domain.Class], error) {
	if st.err != nil {
		return domain.ListResult[domain.Class]{}, st.err
	}
	return domain.ListResult[domain.Class]{Items: st.classes, Total: len(st.classes)}, nil
}

func (st *stubServices) GetClassByID(ctx context.Context, classID int) (domain.Class, error) {
	return domain.Class{}, st.err
}

func (st *stubServices) GetClassDescriptions(ctx context.Context) (domain.ListResult[domain.ClassDescription], error) {
	return domain.ListResult[domain.ClassDescription]{}, st.err
}

func (st *stubServices) GetClassSchedules(ctx context.Context, filter domain.ClassScheduleFilter) (domain.ListResult[domain.ClassSchedule], error) {
	return domain.ListResult[domain.ClassSchedule]{}, st.err
}

func (st *stubServices) AddClientToClass(ctx context.Context, params domain.ClassBooking) domain.OperationResult[domain.BookingVisit] {
	return st.bookingResult
}

func (st *stubServices) RemoveClientFromClass(ctx context.Context, params domain.ClassCancellation) domain.OperationResult[domain.Empty] {
	return domain.OperationResult[domain.Empty]{Success: true, Message: "Client removed from class successfully"}
}

func (st *stubServices) GetWaitlistEntries(ctx context.Context, filter domain.WaitlistFilter) (domain.ListResult[domain.WaitlistEntry], error) {
	return domain.ListResult[domain.WaitlistEntry]{}, st.err
}

func (st *stubServices) SubstituteTeacher(ctx context.Context, params domain.TeacherSubstitution) domain.OperationResult[domain.Empty] {
	return domain.OperationResult[domain.Empty]{Success: true, Message: "Teacher substituted successfully"}
}

func (st *stubServices) GetStaffAppointments(ctx context.Context, filter domain.AppointmentFilter) (domain.ListResult[domain.Appointment], error) {
	return domain.ListResult[domain.Appointment]{}, st.err
}

func (st *stubServices) AddAppointment(ctx context.Context, params domain.NewAppointment) domain.OperationResult[domain.Appointment] {
	return domain.OperationResult[domain.Appointment]{Success: true, Message: "Appointment booked successfully"}
}

func (st *stubServices) UpdateAppointment(ctx context.Context, params domain.AppointmentUpdate) domain.OperationResult[domain.Appointment] {
	return domain.OperationResult[domain.Appointment]{Success: true, Message: "Appointment updated successfully"}
}

func (st *stubServices) GetBookableItems(ctx context.Context, filter domain.BookableItemFilter) (domain.ListResult[domain.BookableItem], error) {
	return domain.ListResult[domain.BookableItem]{}, st.err
}

func (st *stubServices) GetScheduleItems(ctx context.Context, filter domain.ScheduleItemFilter) (domain.ListResult[domain.ScheduleItem], error) {
	return domain.ListResult[domain.ScheduleItem]{}, st.err
}

func (st *stubServices) GetActiveSessionTimes(ctx context.Context, filter domain.ActiveSessionTimeFilter) (domain.ListResult[domain.ActiveSessionTime], error) {
	return domain.ListResult[domain.ActiveSessionTime]{}, st.err
}

func (st *stubServices) GetEnrollments(ctx context.Context, filter domain.EnrollmentFilter) (domain.ListResult[domain.Enrollment], error) {
	return domain.ListResult[domain.Enrollment]{}, st.err
}

func (st *stubServices) AddClientToEnrollment(ctx context.Context, params domain.EnrollmentBooking) domain.OperationResult[domain.Empty] {
	return domain.OperationResult[domain.Empty]{Success: true, Message: "Client added to enrollment successfully"}
}

func (st *stubServices) GetClientEnrollments(ctx context.Context, clientID string) (domain.ListResult[domain.Enrollment], error) {
	return domain.ListResult[domain.Enrollment]{}, st.err
}

func (st *stubServices) GetServices(ctx context.Context, filter domain.ServiceFilter) (domain.ListResult[domain.Service], error) {
	return domain.ListResult[domain.Service]{}, st.err
}

func (st *stubServices) GetPackages(ctx context.Context, filter domain.PackageFilter) (domain.ListResult[domain.Package], error) {
	return domain.ListResult[domain.Package]{}, st.err
}

func (st *stubServices) GetProducts(ctx context.Context, filter domain.ProductFilter) (domain.ListResult[domain.Product], error) {
	return domain.ListResult[domain.Product]{}, st.err
}

func (st *stubServices) GetContracts(ctx context.Context, filter domain.ContractFilter) (domain.ListResult[domain.Contract], error) {
	return domain.ListResult[domain.Contract]{}, st.err
}

func (st *stubServices) CheckoutShoppingCart(ctx context.Context, params domain.Checkout) domain.OperationResult[domain.CheckoutResult] {
	return domain.OperationResult[domain.CheckoutResult]{Success: true, Message: "Checkout completed successfully"}
}

func (st *stubServices) PurchaseContract(ctx context.Context, params domain.ContractPurchase) domain.OperationResult[domain.PurchasedContract] {
	return domain.OperationResult[domain.PurchasedContract]{Success: true, Message: "Contract purchased successfully"}
}

func (st *stubServices) SyncAll(ctx context.Context) (domain.SyncRun, error) {
	return st.syncRun, st.syncErr
}

func (st *stubServices) SyncEntity(ctx context.Context, entity domain.SyncEntity) (domain.EntitySyncResult, error) {
	return domain.EntitySyncResult{Entity: entity}, st.syncErr
}

func (st *stubServices) Status(ctx context.Context) (domain.SyncRun, []domain.SyncState, error) {
	return st.syncRun, st.syncStates, st.syncErr
}

func newTestServer(st *stubServices, configured bool) *Server {
	return NewServer(Deps{
		Site:        st,
		Staff:       st,
		Client:      st,
		Class:       st,
		Appointment: st,
		Enrollment:  st,
		Sale:        st,
		Sync:        st,
		Configured:  func() bool { return configured },
		Logger:      zerolog.Nop(),
	})
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestCredentialGate(t *testing.T) {
	s := newTestServer(&stubServices{}, false)

	t.Run("data routes answer 412", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/locations", nil)
		assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	})

	t.Run("health stays reachable", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/health", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequestID(t *testing.T) {
	s := newTestServer(&stubServices{}, true)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/health", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestSearchEndpoints(t *testing.T) {
	t.Run("returns list result", func(t *testing.T) {
		s := newTestServer(&stubServices{
			staff: []domain.Staff{{ID: 7, Name: "Ana Lopez"}},
		}, true)

		rec := doRequest(t, s, http.MethodPost, "/api/v1/staff/search", domain.StaffFilter{})
		require.Equal(t, http.StatusOK, rec.Code)

		var out domain.ListResult[domain.Staff]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, 1, out.Total)
	})

	t.Run("empty body is a zero filter", func(t *testing.T) {
		s := newTestServer(&stubServices{}, true)
		rec := doRequest(t, s, http.MethodPost, "/api/v1/classes/search", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestErrorMapping(t *testing.T) {
	t.Run("not found is 404", func(t *testing.T) {
		s := newTestServer(&stubServices{err: domain.ErrNotFound}, true)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/clients/c1", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("upstream auth failure is 502", func(t *testing.T) {
		s := newTestServer(&stubServices{
			err: &mindbody.AuthorizationError{Message: "token rejected"},
		}, true)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/locations", nil)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("transient exhaustion is 503", func(t *testing.T) {
		s := newTestServer(&stubServices{
			err: &mindbody.TransientError{StatusCode: 503, Attempts: 3},
		}, true)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/locations", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("upstream rejection is 400", func(t *testing.T) {
		s := newTestServer(&stubServices{
			err: &mindbody.APIError{StatusCode: 400, Message: "InvalidParameter"},
		}, true)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/locations", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMutationsAlways200(t *testing.T) {
	s := newTestServer(&stubServices{
		bookingResult: domain.Failed[domain.BookingVisit]("Class is full"),
	}, true)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/classes/bookings", domain.ClassBooking{
		ClientID: "c1",
		ClassID:  100,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var out domain.OperationResult[domain.BookingVisit]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.False(t, out.Success)
	assert.Equal(t, "Class is full", out.Message)
}

func TestUpdateClientTargetsPathClient(t *testing.T) {
	t.Run("body without clientId passes validation", func(t *testing.T) {
		st := &stubServices{
			clientResult: domain.Succeeded("Client updated", domain.Client{ID: "c42"}),
		}
		s := newTestServer(st, true)

		rec := doRequest(t, s, http.MethodPut, "/api/v1/clients/c42", map[string]any{
			"firstName": "Mia",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "c42", st.lastClientUpdate.ClientID)
		assert.Equal(t, "Mia", st.lastClientUpdate.FirstName)
	})

	t.Run("path overrides a conflicting body clientId", func(t *testing.T) {
		st := &stubServices{
			clientResult: domain.Succeeded("Client updated", domain.Client{ID: "c42"}),
		}
		s := newTestServer(st, true)

		rec := doRequest(t, s, http.MethodPut, "/api/v1/clients/c42", map[string]any{
			"clientId": "someone-else",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "c42", st.lastClientUpdate.ClientID)
	})
}

func TestValidationRejection(t *testing.T) {
	s := newTestServer(&stubServices{}, true)

	// Booking without a class id fails validation before the service runs.
	rec := doRequest(t, s, http.MethodPost, "/api/v1/classes/bookings", map[string]any{
		"clientId": "c1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation failed")
}

func TestSyncEndpoints(t *testing.T) {
	t.Run("full run", func(t *testing.T) {
		s := newTestServer(&stubServices{
			syncRun: domain.SyncRun{ID: "run-1", Status: domain.SyncStatusSucceeded},
		}, true)

		rec := doRequest(t, s, http.MethodPost, "/api/v1/sync", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var run domain.SyncRun
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
		assert.Equal(t, "run-1", run.ID)
	})

	t.Run("concurrent run is 409", func(t *testing.T) {
		s := newTestServer(&stubServices{syncErr: domain.ErrSyncInProgress}, true)
		rec := doRequest(t, s, http.MethodPost, "/api/v1/sync", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("status before first run is 404", func(t *testing.T) {
		s := newTestServer(&stubServices{syncErr: domain.ErrNotFound}, true)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/sync/status", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
