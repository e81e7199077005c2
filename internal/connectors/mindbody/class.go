package mindbody

import (
	"context"

	"github.com/studiobridge/studiobridge/internal/core/domain"
	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
)

type rawClassDescription struct {
	ID          *int    `json:"Id"`
	Name        *string `json:"Name"`
	Description *string `json:"Description"`
	ImageURL    *string `json:"ImageUrl"`
	Category    *string `json:"Category"`
	Subcategory *string `json:"Subcategory"`
	Active      *bool   `json:"Active"`
}

type rawClassStaff struct {
	ID        *int    `json:"Id"`
	FirstName *string `json:"FirstName"`
	LastName  *string `json:"LastName"`
	Name      *string `json:"Name"`
	Email     *string `json:"Email"`
	ImageURL  *string `json:"ImageUrl"`
}

type rawClass struct {
	ID                  *int                 `json:"Id"`
	ClassScheduleID     *int                 `json:"ClassScheduleId"`
	Location            *rawLocation         `json:"Location"`
	ClassDescription    *rawClassDescription `json:"ClassDescription"`
	Staff               *rawClassStaff       `json:"Staff"`
	StartDateTime       *string              `json:"StartDateTime"`
	EndDateTime         *string              `json:"EndDateTime"`
	IsCanceled          *bool                `json:"IsCanceled"`
	IsWaitlistAvailable *bool                `json:"IsWaitlistAvailable"`
	IsAvailable         *bool                `json:"IsAvailable"`
	IsSubstitute        *bool                `json:"IsSubstitute"`
	MaxCapacity         *int                 `json:"MaxCapacity"`
	TotalBooked         *int                 `json:"TotalBooked"`
	WebCapacity         *int                 `json:"WebCapacity"`
	TotalBookedWaitlist *int                 `json:"TotalBookedWaitlist"`
	VirtualStreamLink   *string              `json:"VirtualStreamLink"`
}

type classesResponse struct {
	Classes            []rawClass          `json:"Classes"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

func normalizeClassDescription(d *rawClassDescription) domain.ClassDescription {
	if d == nil {
		return domain.ClassDescription{}
	}
	return domain.ClassDescription{
		ID:          num(d.ID),
		Name:        str(d.Name),
		Description: str(d.Description),
		ImageURL:    str(d.ImageURL),
		Category:    str(d.Category),
		Subcategory: str(d.Subcategory),
		Active:      boolOr(d.Active, true),
	}
}

func normalizeClassStaff(s *rawClassStaff) domain.ClassStaffRef {
	if s == nil {
		return domain.ClassStaffRef{}
	}
	return domain.ClassStaffRef{
		ID:        num(s.ID),
		FirstName: str(s.FirstName),
		LastName:  str(s.LastName),
		Name:      displayName(s.Name, s.FirstName, s.LastName),
		Email:     str(s.Email),
		ImageURL:  str(s.ImageURL),
	}
}

func normalizeClass(cls rawClass) domain.Class {
	out := domain.Class{
		ID:                  num(cls.ID),
		ClassScheduleID:     num(cls.ClassScheduleID),
		ClassDescription:    normalizeClassDescription(cls.ClassDescription),
		Staff:               normalizeClassStaff(cls.Staff),
		StartDateTime:       str(cls.StartDateTime),
		EndDateTime:         str(cls.EndDateTime),
		IsCanceled:          flag(cls.IsCanceled),
		IsWaitlistAvailable: flag(cls.IsWaitlistAvailable),
		IsAvailable:         flag(cls.IsAvailable),
		IsSubstitute:        flag(cls.IsSubstitute),
		MaxCapacity:         num(cls.MaxCapacity),
		TotalBooked:         num(cls.TotalBooked),
		WebCapacity:         num(cls.WebCapacity),
		TotalBookedWaitlist: num(cls.TotalBookedWaitlist),
		VirtualStreamLink:   str(cls.VirtualStreamLink),
	}
	if cls.Location != nil {
		out.Location = normalizeLocation(*cls.Location)
	}
	return out
}

// GetClasses returns class occurrences matching the filter. An absent date
// range defaults to today through a week out.
func (c *Connector) GetClasses(ctx context.Context, filter domain.ClassFilter) (domain.ListResult[domain.Class], error) {
	start := filter.StartDateTime
	if start == "" {
		start = c.today() + "T00:00:00"
	}
	end := filter.EndDateTime
	if end == "" {
		end = c.daysOut(7) + "T23:59:59"
	}
	limit := filter.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	q := driven.Query{
		"ClassDescriptionIds": filter.ClassDescriptionIDs,
		"ClassIds":            filter.ClassIDs,
		"StaffIds":            filter.StaffIDs,
		"StartDateTime":       start,
		"EndDateTime":         end,
		"LocationIds":         filter.LocationIDs,
		"Limit":               limit,
		"Offset":              filter.Offset,
	}
	return fetchCached(ctx, c.caches.Classes, cacheKey("class.classes", q), func(ctx context.Context) (domain.ListResult[domain.Class], error) {
		var resp classesResponse
		if err := c.gw.Get(ctx, "/class/classes", q, &resp); err != nil {
			return domain.ListResult[domain.Class]{}, err
		}
		items := make([]domain.Class, 0, len(resp.Classes))
		for _, cls := range resp.Classes {
			items = append(items, normalizeClass(cls))
		}
		return domain.ListResult[domain.Class]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

// GetClassByID returns one class occurrence, or domain.ErrNotFound.
func (c *Connector) GetClassByID(ctx context.Context, classID int) (domain.Class, error) {
	res, err := c.GetClasses(ctx, domain.ClassFilter{ClassIDs: []int{classID}})
	if err != nil {
		return domain.Class{}, err
	}
	for _, cls := range res.Items {
		if cls.ID == classID {
			return cls, nil
		}
	}
	return domain.Class{}, domain.ErrNotFound
}

type classDescriptionsResponse struct {
	ClassDescriptions  []rawClassDescription `json:"ClassDescriptions"`
	PaginationResponse *paginationResponse   `json:"PaginationResponse"`
}

// GetClassDescriptions returns the class-type catalog.
func (c *Connector) GetClassDescriptions(ctx context.Context) (domain.ListResult[domain.ClassDescription], error) {
	q := driven.Query{"Limit": defaultLimit}
	return fetchCached(ctx, c.caches.Classes, cacheKey("class.descriptions", q), func(ctx context.Context) (domain.ListResult[domain.ClassDescription], error) {
		var resp classDescriptionsResponse
		if err := c.gw.Get(ctx, "/class/classdescriptions", q, &resp); err != nil {
			return domain.ListResult[domain.ClassDescription]{}, err
		}
		items := make([]domain.ClassDescription, 0, len(resp.ClassDescriptions))
		for _, d := range resp.ClassDescriptions {
			d := d
			items = append(items, normalizeClassDescription(&d))
		}
		return domain.ListResult[domain.ClassDescription]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

type rawClassSchedule struct {
	ID               *int                 `json:"Id"`
	Location         *rawLocation         `json:"Location"`
	ClassDescription *rawClassDescription `json:"ClassDescription"`
	Staff            *rawClassStaff       `json:"Staff"`
	StartTime        *string              `json:"StartTime"`
	EndTime          *string              `json:"EndTime"`
	StartDate        *string              `json:"StartDate"`
	EndDate          *string              `json:"EndDate"`
	DaySunday        *bool                `json:"DaySunday"`
	DayMonday        *bool                `json:"DayMonday"`
	DayTuesday       *bool                `json:"DayTuesday"`
	DayWednesday     *bool                `json:"DayWednesday"`
	DayThursday      *bool                `json:"DayThursday"`
	DayFriday        *bool                `json:"DayFriday"`
	DaySaturday      *bool                `json:"DaySaturday"`
	MaxCapacity      *int                 `json:"MaxCapacity"`
	WebCapacity      *int                 `json:"WebCapacity"`
	IsAvailable      *bool                `json:"IsAvailable"`
}

type classSchedulesResponse struct {
	ClassSchedules     []rawClassSchedule  `json:"ClassSchedules"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

func scheduleDays(s rawClassSchedule) []string {
	days := []string{}
	for _, d := range []struct {
		name string
		set  *bool
	}{
		{"Sunday", s.DaySunday},
		{"Monday", s.DayMonday},
		{"Tuesday", s.DayTuesday},
		{"Wednesday", s.DayWednesday},
		{"Thursday", s.DayThursday},
		{"Friday", s.DayFriday},
		{"Saturday", s.DaySaturday},
	} {
		if flag(d.set) {
			days = append(days, d.name)
		}
	}
	return days
}

// GetClassSchedules returns recurring class schedule definitions.
func (c *Connector) GetClassSchedules(ctx context.Context, filter domain.ClassScheduleFilter) (domain.ListResult[domain.ClassSchedule], error) {
	q := driven.Query{
		"LocationIds":         filter.LocationIDs,
		"ClassDescriptionIds": filter.ClassDescriptionIDs,
		"StaffIds":            filter.StaffIDs,
		"StartDate":           filter.StartDate,
		"EndDate":             filter.EndDate,
		"Limit":               defaultLimit,
	}
	return fetchCached(ctx, c.caches.Classes, cacheKey("class.schedules", q), func(ctx context.Context) (domain.ListResult[domain.ClassSchedule], error) {
		var resp classSchedulesResponse
		if err := c.gw.Get(ctx, "/class/classschedules", q, &resp); err != nil {
			return domain.ListResult[domain.ClassSchedule]{}, err
		}
		items := make([]domain.ClassSchedule, 0, len(resp.ClassSchedules))
		for _, s := range resp.ClassSchedules {
			var locationID, descriptionID, staffID int
			if s.Location != nil {
				locationID = num(s.Location.ID)
			}
			if s.ClassDescription != nil {
				descriptionID = num(s.ClassDescription.ID)
			}
			if s.Staff != nil {
				staffID = num(s.Staff.ID)
			}
			items = append(items, domain.ClassSchedule{
				ID:                 num(s.ID),
				LocationID:         locationID,
				ClassDescriptionID: descriptionID,
				StaffID:            staffID,
				StartTime:          str(s.StartTime),
				EndTime:            str(s.EndTime),
				StartDate:          str(s.StartDate),
				EndDate:            str(s.EndDate),
				DaysOfWeek:         scheduleDays(s),
				MaxCapacity:        num(s.MaxCapacity),
				WebCapacity:        num(s.WebCapacity),
				IsActive:           boolOr(s.IsAvailable, true),
			})
		}
		return domain.ListResult[domain.ClassSchedule]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

type bookingVisitResponse struct {
	Visit *struct {
		ID       *int    `json:"Id"`
		ClassID  *int    `json:"ClassId"`
		ClientID *string `json:"ClientId"`
	} `json:"Visit"`
}

// AddClientToClass books a client into a class, or onto its waitlist.
func (c *Connector) AddClientToClass(ctx context.Context, params domain.ClassBooking) domain.OperationResult[domain.BookingVisit] {
	body := map[string]any{
		"ClientId":       params.ClientID,
		"ClassId":        params.ClassID,
		"RequirePayment": boolOr(params.RequirePayment, true),
		"Waitlist":       boolOr(params.Waitlist, false),
		"SendEmail":      boolOr(params.SendEmail, true),
	}
	var resp bookingVisitResponse
	if err := c.gw.Post(ctx, "/class/addclienttoclass", body, &resp); err != nil {
		return domain.Failed[domain.BookingVisit](userMessage(err))
	}
	c.caches.InvalidateClasses()
	var visit domain.BookingVisit
	if resp.Visit != nil {
		visit.Visit.ID = num(resp.Visit.ID)
		visit.Visit.ClassID = num(resp.Visit.ClassID)
		visit.Visit.ClientID = str(resp.Visit.ClientID)
	}
	msg := "Client added to class successfully"
	if boolOr(params.Waitlist, false) {
		msg = "Client added to waitlist successfully"
	}
	return domain.Succeeded(msg, visit)
}

// RemoveClientFromClass cancels a client's class booking.
func (c *Connector) RemoveClientFromClass(ctx context.Context, params domain.ClassCancellation) domain.OperationResult[domain.Empty] {
	body := map[string]any{
		"ClientId":   params.ClientID,
		"ClassId":    params.ClassID,
		"LateCancel": boolOr(params.LateCancel, false),
		"SendEmail":  boolOr(params.SendEmail, true),
	}
	if err := c.gw.Post(ctx, "/class/removeclientfromclass", body, nil); err != nil {
		return domain.Failed[domain.Empty](userMessage(err))
	}
	c.caches.InvalidateClasses()
	return domain.Succeeded("Client removed from class successfully", domain.Empty{})
}

type rawWaitlistEntry struct {
	ID              *int    `json:"Id"`
	RequestDateTime *string `json:"RequestDateTime"`
	VisitRefNo      *int    `json:"VisitRefNo"`
	Web             *bool   `json:"Web"`
	Client          *struct {
		ID        *string `json:"Id"`
		FirstName *string `json:"FirstName"`
		LastName  *string `json:"LastName"`
	} `json:"Client"`
	Class *struct {
		ID *int `json:"Id"`
	} `json:"Class"`
}

type waitlistResponse struct {
	WaitlistEntries    []rawWaitlistEntry  `json:"WaitlistEntries"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

// GetWaitlistEntries returns waitlist entries for the given classes or
// clients.
func (c *Connector) GetWaitlistEntries(ctx context.Context, filter domain.WaitlistFilter) (domain.ListResult[domain.WaitlistEntry], error) {
	q := driven.Query{
		"ClassIds":        filter.ClassIDs,
		"ClientIds":       filter.ClientIDs,
		"HidePastEntries": filter.HidePastEntries,
		"Limit":           defaultLimit,
	}
	return fetchCached(ctx, c.caches.Classes, cacheKey("class.waitlist", q), func(ctx context.Context) (domain.ListResult[domain.WaitlistEntry], error) {
		var resp waitlistResponse
		if err := c.gw.Get(ctx, "/class/waitlistentries", q, &resp); err != nil {
			return domain.ListResult[domain.WaitlistEntry]{}, err
		}
		items := make([]domain.WaitlistEntry, 0, len(resp.WaitlistEntries))
		for _, e := range resp.WaitlistEntries {
			entry := domain.WaitlistEntry{
				ID:              num(e.ID),
				RequestDateTime: str(e.RequestDateTime),
				VisitRefNo:      num(e.VisitRefNo),
				WebSignup:       flag(e.Web),
			}
			if e.Client != nil {
				entry.ClientID = str(e.Client.ID)
				entry.ClientName = displayName(nil, e.Client.FirstName, e.Client.LastName)
			}
			if e.Class != nil {
				entry.ClassID = num(e.Class.ID)
			}
			items = append(items, entry)
		}
		return domain.ListResult[domain.WaitlistEntry]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

// SubstituteTeacher swaps the instructor on a class occurrence.
func (c *Connector) SubstituteTeacher(ctx context.Context, params domain.TeacherSubstitution) domain.OperationResult[domain.Empty] {
	body := map[string]any{
		"ClassId":                    params.ClassID,
		"StaffId":                    params.StaffID,
		"SendClientEmail":            boolOr(params.SendClientEmail, false),
		"SendOriginalTeacherEmail":   boolOr(params.SendOriginalTeacherEmail, false),
		"SendSubstituteTeacherEmail": boolOr(params.SendSubstituteTeacherEmail, false),
	}
	if err := c.gw.Post(ctx, "/class/substituteclassteacher", body, nil); err != nil {
		return domain.Failed[domain.Empty](userMessage(err))
	}
	c.caches.InvalidateClasses()
	return domain.Succeeded("Teacher substituted successfully", domain.Empty{})
}
