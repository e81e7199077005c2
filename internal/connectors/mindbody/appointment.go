package mindbody

import (
	"context"
	"strings"

	"github.com/studiobridge/studiobridge/internal/core/domain"
	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
)

type rawAppointmentClient struct {
	ID          *string `json:"Id"`
	FirstName   *string `json:"FirstName"`
	LastName    *string `json:"LastName"`
	Email       *string `json:"Email"`
	MobilePhone *string `json:"MobilePhone"`
}

type rawAppointment struct {
	ID               *int                  `json:"Id"`
	Status           *string               `json:"Status"`
	Staff            *rawRef               `json:"Staff"`
	SessionType      *rawRef               `json:"SessionType"`
	Location         *rawRef               `json:"Location"`
	StartDateTime    *string               `json:"StartDateTime"`
	EndDateTime      *string               `json:"EndDateTime"`
	Client           *rawAppointmentClient `json:"Client"`
	Notes            *string               `json:"Notes"`
	StaffRequested   *bool                 `json:"StaffRequested"`
	ProviderID       *string               `json:"ProviderId"`
	Duration         *int                  `json:"Duration"`
	Confirmed        *bool                 `json:"Confirmed"`
	FirstAppointment *bool                 `json:"FirstAppointment"`
	Resources        []rawRef              `json:"Resources"`
}

type appointmentsResponse struct {
	Appointments       []rawAppointment    `json:"Appointments"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

type appointmentMutationResponse struct {
	Appointment *rawAppointment `json:"Appointment"`
}

func normalizeAppointment(apt rawAppointment) domain.Appointment {
	out := domain.Appointment{
		ID:               num(apt.ID),
		Status:           str(apt.Status),
		StaffID:          apt.Staff.id(),
		StaffName:        apt.Staff.name(),
		SessionTypeID:    apt.SessionType.id(),
		SessionTypeName:  apt.SessionType.name(),
		LocationID:       apt.Location.id(),
		LocationName:     apt.Location.name(),
		StartDateTime:    str(apt.StartDateTime),
		EndDateTime:      str(apt.EndDateTime),
		Notes:            str(apt.Notes),
		StaffRequested:   flag(apt.StaffRequested),
		ProviderID:       str(apt.ProviderID),
		Duration:         num(apt.Duration),
		Confirmed:        flag(apt.Confirmed),
		FirstAppointment: flag(apt.FirstAppointment),
	}
	if apt.Client != nil {
		out.ClientID = str(apt.Client.ID)
		out.ClientName = strings.TrimSpace(str(apt.Client.FirstName) + " " + str(apt.Client.LastName))
		out.ClientEmail = str(apt.Client.Email)
		out.ClientPhone = str(apt.Client.MobilePhone)
	}
	for _, r := range apt.Resources {
		out.Resources = append(out.Resources, domain.Resource{ID: r.id(), Name: r.name()})
	}
	return out
}

// GetStaffAppointments returns appointments on staff schedules. Dates
// default to today through a week out.
func (c *Connector) GetStaffAppointments(ctx context.Context, filter domain.AppointmentFilter) (domain.ListResult[domain.Appointment], error) {
	start, end := c.dateWindow(filter.StartDate, filter.EndDate, 7)
	limit := filter.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	q := driven.Query{
		"StaffIds":       filter.StaffIDs,
		"LocationIds":    filter.LocationIDs,
		"StartDate":      start,
		"EndDate":        end,
		"AppointmentIds": filter.AppointmentIDs,
		"ClientIds":      filter.ClientIDs,
		"Limit":          limit,
	}
	return fetchCached(ctx, c.caches.General, cacheKey("appointment.staffappointments", q), func(ctx context.Context) (domain.ListResult[domain.Appointment], error) {
		var resp appointmentsResponse
		if err := c.gw.Get(ctx, "/appointment/staffappointments", q, &resp); err != nil {
			return domain.ListResult[domain.Appointment]{}, err
		}
		items := make([]domain.Appointment, 0, len(resp.Appointments))
		for _, apt := range resp.Appointments {
			items = append(items, normalizeAppointment(apt))
		}
		return domain.ListResult[domain.Appointment]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

type addAppointmentRequest struct {
	ClientID       string `json:"ClientId"`
	StaffID        int    `json:"StaffId"`
	LocationID     int    `json:"LocationId"`
	SessionTypeID  int    `json:"SessionTypeId"`
	StartDateTime  string `json:"StartDateTime"`
	ResourceIDs    []int  `json:"ResourceIds,omitempty"`
	Notes          string `json:"Notes,omitempty"`
	StaffRequested *bool  `json:"StaffRequested,omitempty"`
	ExecutePayment *bool  `json:"ExecutePayment,omitempty"`
	SendEmail      *bool  `json:"SendEmail,omitempty"`
	ApplyPayment   *bool  `json:"ApplyPayment,omitempty"`
}

// AddAppointment books a new appointment.
func (c *Connector) AddAppointment(ctx context.Context, params domain.NewAppointment) domain.OperationResult[domain.Appointment] {
	body := addAppointmentRequest{
		ClientID:       params.ClientID,
		StaffID:        params.StaffID,
		LocationID:     params.LocationID,
		SessionTypeID:  params.SessionTypeID,
		StartDateTime:  params.StartDateTime,
		ResourceIDs:    params.ResourceIDs,
		Notes:          params.Notes,
		StaffRequested: params.StaffRequested,
		ExecutePayment: params.ExecutePayment,
		SendEmail:      params.SendEmail,
		ApplyPayment:   params.ApplyPayment,
	}
	var resp appointmentMutationResponse
	if err := c.gw.Post(ctx, "/appointment/addappointment", body, &resp); err != nil {
		return domain.Failed[domain.Appointment](userMessage(err))
	}
	c.caches.InvalidateGeneral()
	var booked domain.Appointment
	if resp.Appointment != nil {
		booked = normalizeAppointment(*resp.Appointment)
	}
	return domain.Succeeded("Appointment booked successfully", booked)
}

type updateAppointmentRequest struct {
	AppointmentID  int    `json:"AppointmentId"`
	StaffID        int    `json:"StaffId,omitempty"`
	StartDateTime  string `json:"StartDateTime,omitempty"`
	EndDateTime    string `json:"EndDateTime,omitempty"`
	ResourceIDs    []int  `json:"ResourceIds,omitempty"`
	Notes          string `json:"Notes,omitempty"`
	ExecutePayment *bool  `json:"ExecutePayment,omitempty"`
	SendEmail      *bool  `json:"SendEmail,omitempty"`
	ApplyPayment   *bool  `json:"ApplyPayment,omitempty"`
}

// UpdateAppointment reschedules or annotates an existing appointment.
// Unset fields are not sent.
func (c *Connector) UpdateAppointment(ctx context.Context, params domain.AppointmentUpdate) domain.OperationResult[domain.Appointment] {
	body := updateAppointmentRequest{
		AppointmentID:  params.AppointmentID,
		StaffID:        params.StaffID,
		StartDateTime:  params.StartDateTime,
		EndDateTime:    params.EndDateTime,
		ResourceIDs:    params.ResourceIDs,
		Notes:          params.Notes,
		ExecutePayment: params.ExecutePayment,
		SendEmail:      params.SendEmail,
		ApplyPayment:   params.ApplyPayment,
	}
	var resp appointmentMutationResponse
	if err := c.gw.Post(ctx, "/appointment/updateappointment", body, &resp); err != nil {
		return domain.Failed[domain.Appointment](userMessage(err))
	}
	c.caches.InvalidateGeneral()
	var updated domain.Appointment
	if resp.Appointment != nil {
		updated = normalizeAppointment(*resp.Appointment)
	}
	return domain.Succeeded("Appointment updated successfully", updated)
}

type rawBookableItem struct {
	ScheduledItemID         *string `json:"ScheduledItemId"`
	Staff                   *rawRef `json:"Staff"`
	SessionType             *rawRef `json:"SessionType"`
	Location                *rawRef `json:"Location"`
	StartDateTime           *string `json:"StartDateTime"`
	EndDateTime             *string `json:"EndDateTime"`
	IsAvailable             *bool   `json:"IsAvailable"`
	IsSingleSessionBookable *bool   `json:"IsSingleSessionBookable"`
}

type bookableItemsResponse struct {
	BookableItems      []rawBookableItem   `json:"BookableItems"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

// GetBookableItems returns open appointment slots for the given session
// types. Dates default to today through a week out.
func (c *Connector) GetBookableItems(ctx context.Context, filter domain.BookableItemFilter) (domain.ListResult[domain.BookableItem], error) {
	start, end := c.dateWindow(filter.StartDate, filter.EndDate, 7)
	q := driven.Query{
		"SessionTypeIds": filter.SessionTypeIDs,
		"LocationIds":    filter.LocationIDs,
		"StaffIds":       filter.StaffIDs,
		"StartDate":      start,
		"EndDate":        end,
		"AppointmentId":  filter.AppointmentID,
		"Limit":          defaultLimit,
	}
	return fetchCached(ctx, c.caches.General, cacheKey("appointment.bookableitems", q), func(ctx context.Context) (domain.ListResult[domain.BookableItem], error) {
		var resp bookableItemsResponse
		if err := c.gw.Get(ctx, "/appointment/bookableitems", q, &resp); err != nil {
			return domain.ListResult[domain.BookableItem]{}, err
		}
		items := make([]domain.BookableItem, 0, len(resp.BookableItems))
		for _, item := range resp.BookableItems {
			items = append(items, domain.BookableItem{
				ScheduledItemID:         str(item.ScheduledItemID),
				StaffID:                 item.Staff.id(),
				StaffName:               item.Staff.name(),
				SessionTypeID:           item.SessionType.id(),
				SessionTypeName:         item.SessionType.name(),
				LocationID:              item.Location.id(),
				LocationName:            item.Location.name(),
				StartDateTime:           str(item.StartDateTime),
				EndDateTime:             str(item.EndDateTime),
				IsAvailable:             flag(item.IsAvailable),
				IsSingleSessionBookable: flag(item.IsSingleSessionBookable),
			})
		}
		return domain.ListResult[domain.BookableItem]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

type rawScheduleAppointment struct {
	ID            *int    `json:"Id"`
	IsAvailable   *bool   `json:"IsAvailable"`
	Unavailable   *bool   `json:"Unavailable"`
	SessionType   *rawRef `json:"SessionType"`
	Location      *rawRef `json:"Location"`
	StartDateTime *string `json:"StartDateTime"`
	EndDateTime   *string `json:"EndDateTime"`
}

type rawScheduleStaff struct {
	ID           *int                     `json:"Id"`
	Name         *string                  `json:"Name"`
	Appointments []rawScheduleAppointment `json:"Appointments"`
}

type scheduleItemsResponse struct {
	StaffMembers       []rawScheduleStaff  `json:"StaffMembers"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

// GetScheduleItems returns staff availability blocks, flattened across the
// per-staff groupings the API responds with. Dates default to today through
// a week out.
func (c *Connector) GetScheduleItems(ctx context.Context, filter domain.ScheduleItemFilter) (domain.ListResult[domain.ScheduleItem], error) {
	start, end := c.dateWindow(filter.StartDate, filter.EndDate, 7)
	q := driven.Query{
		"LocationIds":            filter.LocationIDs,
		"StaffIds":               filter.StaffIDs,
		"StartDate":              start,
		"EndDate":                end,
		"IgnorePrepFinishBuffer": filter.IgnorePrepFinishBuffer,
		"Limit":                  defaultLimit,
	}
	return fetchCached(ctx, c.caches.General, cacheKey("appointment.scheduleitems", q), func(ctx context.Context) (domain.ListResult[domain.ScheduleItem], error) {
		var resp scheduleItemsResponse
		if err := c.gw.Get(ctx, "/appointment/scheduleitems", q, &resp); err != nil {
			return domain.ListResult[domain.ScheduleItem]{}, err
		}
		var items []domain.ScheduleItem
		for _, staff := range resp.StaffMembers {
			for _, apt := range staff.Appointments {
				items = append(items, domain.ScheduleItem{
					ID:              num(apt.ID),
					IsAvailable:     flag(apt.IsAvailable),
					IsUnavailable:   flag(apt.Unavailable),
					StaffID:         num(staff.ID),
					StaffName:       str(staff.Name),
					SessionTypeID:   apt.SessionType.id(),
					SessionTypeName: apt.SessionType.name(),
					LocationID:      apt.Location.id(),
					LocationName:    apt.Location.name(),
					StartDateTime:   str(apt.StartDateTime),
					EndDateTime:     str(apt.EndDateTime),
				})
			}
		}
		return domain.ListResult[domain.ScheduleItem]{Items: items, Total: len(items)}, nil
	})
}

type rawDayTime struct {
	StartTime *string `json:"StartTime"`
	EndTime   *string `json:"EndTime"`
	Bookable  *bool   `json:"Bookable"`
}

func normalizeDayTime(d *rawDayTime) *domain.DayTime {
	if d == nil {
		return nil
	}
	return &domain.DayTime{
		StartTime: str(d.StartTime),
		EndTime:   str(d.EndTime),
		Bookable:  flag(d.Bookable),
	}
}

type rawActiveSessionTime struct {
	ID           *int        `json:"Id"`
	SessionType  *rawRef     `json:"SessionType"`
	ScheduleType *string     `json:"ScheduleType"`
	Monday       *rawDayTime `json:"Monday"`
	Tuesday      *rawDayTime `json:"Tuesday"`
	Wednesday    *rawDayTime `json:"Wednesday"`
	Thursday     *rawDayTime `json:"Thursday"`
	Friday       *rawDayTime `json:"Friday"`
	Saturday     *rawDayTime `json:"Saturday"`
	Sunday       *rawDayTime `json:"Sunday"`
}

type activeSessionTimesResponse struct {
	ActiveSessionTimes []rawActiveSessionTime `json:"ActiveSessionTimes"`
	PaginationResponse *paginationResponse    `json:"PaginationResponse"`
}

// GetActiveSessionTimes returns session types' bookable windows across the
// week. ScheduleType defaults to All.
func (c *Connector) GetActiveSessionTimes(ctx context.Context, filter domain.ActiveSessionTimeFilter) (domain.ListResult[domain.ActiveSessionTime], error) {
	scheduleType := filter.ScheduleType
	if scheduleType == "" {
		scheduleType = "All"
	}
	q := driven.Query{
		"ScheduleType":   scheduleType,
		"SessionTypeIds": filter.SessionTypeIDs,
		"StartTime":      filter.StartTime,
		"EndTime":        filter.EndTime,
		"Days":           filter.Days,
	}
	return fetchCached(ctx, c.caches.General, cacheKey("appointment.activesessiontimes", q), func(ctx context.Context) (domain.ListResult[domain.ActiveSessionTime], error) {
		var resp activeSessionTimesResponse
		if err := c.gw.Get(ctx, "/appointment/activesessiontimes", q, &resp); err != nil {
			return domain.ListResult[domain.ActiveSessionTime]{}, err
		}
		items := make([]domain.ActiveSessionTime, 0, len(resp.ActiveSessionTimes))
		for _, t := range resp.ActiveSessionTimes {
			items = append(items, domain.ActiveSessionTime{
				ID:              num(t.ID),
				SessionTypeID:   t.SessionType.id(),
				SessionTypeName: t.SessionType.name(),
				ScheduleType:    str(t.ScheduleType),
				Monday:          normalizeDayTime(t.Monday),
				Tuesday:         normalizeDayTime(t.Tuesday),
				Wednesday:       normalizeDayTime(t.Wednesday),
				Thursday:        normalizeDayTime(t.Thursday),
				Friday:          normalizeDayTime(t.Friday),
				Saturday:        normalizeDayTime(t.Saturday),
				Sunday:          normalizeDayTime(t.Sunday),
			})
		}
		return domain.ListResult[domain.ActiveSessionTime]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}
