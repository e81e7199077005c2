package mindbody

import (
	"context"
	"fmt"

	"github.com/studiobridge/studiobridge/internal/core/domain"
	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
)

type rawEnrollment struct {
	ID           *int    `json:"Id"`
	Name         *string `json:"Name"`
	Description  *string `json:"Description"`
	Staff        *rawRef `json:"Staff"`
	Location     *rawRef `json:"Location"`
	Program      *rawRef `json:"Program"`
	ScheduleType *string `json:"ScheduleType"`
	StartDate    *string `json:"StartDate"`
	EndDate      *string `json:"EndDate"`
	StartTime    *string `json:"StartTime"`
	EndTime      *string `json:"EndTime"`
	DayOfWeek    *string `json:"DayOfWeek"`
	MaxCapacity  *int    `json:"MaxCapacity"`
	WebCapacity  *int    `json:"WebCapacity"`
	IsAvailable  *bool   `json:"IsAvailable"`
}

type enrollmentsResponse struct {
	Enrollments        []rawEnrollment     `json:"Enrollments"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

func normalizeEnrollment(e rawEnrollment) domain.Enrollment {
	return domain.Enrollment{
		ID:           num(e.ID),
		LocationID:   e.Location.id(),
		LocationName: e.Location.name(),
		Name:         str(e.Name),
		Description:  str(e.Description),
		StaffID:      e.Staff.id(),
		StaffName:    e.Staff.name(),
		ProgramID:    e.Program.id(),
		ProgramName:  e.Program.name(),
		ScheduleType: str(e.ScheduleType),
		StartDate:    str(e.StartDate),
		EndDate:      str(e.EndDate),
		StartTime:    str(e.StartTime),
		EndTime:      str(e.EndTime),
		DayOfWeek:    str(e.DayOfWeek),
		MaxCapacity:  num(e.MaxCapacity),
		WebCapacity:  num(e.WebCapacity),
		IsAvailable:  flag(e.IsAvailable),
	}
}

// GetEnrollments returns course and workshop schedules. Dates default to
// today through thirty days out.
func (c *Connector) GetEnrollments(ctx context.Context, filter domain.EnrollmentFilter) (domain.ListResult[domain.Enrollment], error) {
	start, end := c.dateWindow(filter.StartDate, filter.EndDate, 30)
	limit := filter.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	q := driven.Query{
		"LocationIds":      filter.LocationIDs,
		"ClassScheduleIds": filter.ClassScheduleIDs,
		"StaffIds":         filter.StaffIDs,
		"ProgramIds":       filter.ProgramIDs,
		"SessionTypeIds":   filter.SessionTypeIDs,
		"SemesterIds":      filter.SemesterIDs,
		"CourseIds":        filter.CourseIDs,
		"StartDate":        start,
		"EndDate":          end,
		"Limit":            limit,
	}
	return fetchCached(ctx, c.caches.General, cacheKey("enrollment.enrollments", q), func(ctx context.Context) (domain.ListResult[domain.Enrollment], error) {
		var resp enrollmentsResponse
		if err := c.gw.Get(ctx, "/enrollment/enrollments", q, &resp); err != nil {
			return domain.ListResult[domain.Enrollment]{}, err
		}
		items := make([]domain.Enrollment, 0, len(resp.Enrollments))
		for _, e := range resp.Enrollments {
			items = append(items, normalizeEnrollment(e))
		}
		return domain.ListResult[domain.Enrollment]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

type enrollmentBookingResponse struct {
	Enrollments []struct {
		Action  *string `json:"Action"`
		Message *string `json:"Message"`
	} `json:"Enrollments"`
}

// AddClientToEnrollment registers a client for an enrollment schedule. The
// API reports per-schedule outcomes; a booking counts as failed when no
// schedule was added.
func (c *Connector) AddClientToEnrollment(ctx context.Context, params domain.EnrollmentBooking) domain.OperationResult[domain.Empty] {
	body := map[string]any{
		"ClientId":         params.ClientID,
		"ClassScheduleIds": []int{params.ClassScheduleID},
		"Enroll":           true,
		"Waitlist":         boolOr(params.Waitlist, false),
		"SendEmail":        boolOr(params.SendEmail, true),
	}
	if params.EnrollFromDate != "" {
		body["EnrollmentDateForward"] = params.EnrollFromDate
	}
	if params.EnrollUntilDate != "" {
		body["EnrollmentDates"] = []string{params.EnrollUntilDate}
	}
	var resp enrollmentBookingResponse
	if err := c.gw.Post(ctx, "/enrollment/addclienttoenrollment", body, &resp); err != nil {
		return domain.Failed[domain.Empty](userMessage(err))
	}
	for _, e := range resp.Enrollments {
		if str(e.Action) == "Failed" {
			msg := str(e.Message)
			if msg == "" {
				msg = fmt.Sprintf("Enrollment %d could not be booked", params.ClassScheduleID)
			}
			return domain.Failed[domain.Empty](msg)
		}
	}
	c.caches.InvalidateGeneral()
	return domain.Succeeded("Client added to enrollment successfully", domain.Empty{})
}

type rawClientEnrollment struct {
	ID           *int    `json:"Id"`
	CourseName   *string `json:"CourseName"`
	StaffName    *string `json:"StaffName"`
	LocationName *string `json:"LocationName"`
	StartDate    *string `json:"StartDate"`
	EndDate      *string `json:"EndDate"`
}

type clientEnrollmentsResponse struct {
	Enrollments        []rawClientEnrollment `json:"Enrollments"`
	PaginationResponse *paginationResponse   `json:"PaginationResponse"`
}

// GetClientEnrollments returns the enrollments a client is registered in.
func (c *Connector) GetClientEnrollments(ctx context.Context, clientID string) (domain.ListResult[domain.Enrollment], error) {
	q := driven.Query{"ClientId": clientID}
	return fetchCached(ctx, c.caches.General, cacheKey("client.enrollments", q), func(ctx context.Context) (domain.ListResult[domain.Enrollment], error) {
		var resp clientEnrollmentsResponse
		if err := c.gw.Get(ctx, "/client/clientenrollments", q, &resp); err != nil {
			return domain.ListResult[domain.Enrollment]{}, err
		}
		items := make([]domain.Enrollment, 0, len(resp.Enrollments))
		for _, e := range resp.Enrollments {
			items = append(items, domain.Enrollment{
				ID:           num(e.ID),
				Name:         str(e.CourseName),
				StaffName:    str(e.StaffName),
				LocationName: str(e.LocationName),
				StartDate:    str(e.StartDate),
				EndDate:      str(e.EndDate),
			})
		}
		return domain.ListResult[domain.Enrollment]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}
