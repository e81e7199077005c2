package mindbody

import (
	"context"
	"sort"
	"time"

	"github.com/studiobridge/studiobridge/internal/core/domain"
	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
)

type rawStaff struct {
	ID                    *int    `json:"Id"`
	FirstName             *string `json:"FirstName"`
	LastName              *string `json:"LastName"`
	Name                  *string `json:"Name"`
	Email                 *string `json:"Email"`
	MobilePhone           *string `json:"MobilePhone"`
	ImageURL              *string `json:"ImageUrl"`
	Bio                   *string `json:"Bio"`
	AppointmentInstructor *bool   `json:"AppointmentInstructor"`
	IndependentContractor *bool   `json:"IndependentContractor"`
}

type staffResponse struct {
	StaffMembers       []rawStaff          `json:"StaffMembers"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

func normalizeStaff(s rawStaff) domain.Staff {
	return domain.Staff{
		ID:                    num(s.ID),
		FirstName:             str(s.FirstName),
		LastName:              str(s.LastName),
		Name:                  displayName(s.Name, s.FirstName, s.LastName),
		Email:                 str(s.Email),
		MobilePhone:           str(s.MobilePhone),
		ImageURL:              str(s.ImageURL),
		Bio:                   str(s.Bio),
		AppointmentTrn:        flag(s.AppointmentInstructor),
		IndependentContractor: flag(s.IndependentContractor),
	}
}

// GetStaff returns staff members matching the filter.
func (c *Connector) GetStaff(ctx context.Context, filter domain.StaffFilter) (domain.ListResult[domain.Staff], error) {
	limit := filter.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	q := driven.Query{
		"StaffIds":       filter.StaffIDs,
		"Filters":        filter.Filters,
		"SessionTypeIds": filter.SessionTypeIDs,
		"LocationIds":    filter.LocationIDs,
		"StartDateTime":  filter.StartDateTime,
		"Limit":          limit,
		"Offset":         filter.Offset,
	}
	return fetchCached(ctx, c.caches.Staff, cacheKey("staff.staff", q), func(ctx context.Context) (domain.ListResult[domain.Staff], error) {
		var resp staffResponse
		if err := c.gw.Get(ctx, "/staff/staff", q, &resp); err != nil {
			return domain.ListResult[domain.Staff]{}, err
		}
		items := make([]domain.Staff, 0, len(resp.StaffMembers))
		for _, s := range resp.StaffMembers {
			items = append(items, normalizeStaff(s))
		}
		return domain.ListResult[domain.Staff]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

// GetStaffByID returns one staff member, or domain.ErrNotFound when no
// staff member has the given id.
func (c *Connector) GetStaffByID(ctx context.Context, staffID int) (domain.Staff, error) {
	res, err := c.GetStaff(ctx, domain.StaffFilter{StaffIDs: []int{staffID}})
	if err != nil {
		return domain.Staff{}, err
	}
	for _, s := range res.Items {
		if s.ID == staffID {
			return s, nil
		}
	}
	return domain.Staff{}, domain.ErrNotFound
}

// GetTeacherSchedule assembles one teacher's classes over a date range with
// per-day, per-location and per-class-type aggregates. An absent range
// defaults to today through a week out; an absent end defaults to a week
// after the start.
func (c *Connector) GetTeacherSchedule(ctx context.Context, teacherID int, startDate, endDate string) (domain.TeacherSchedule, error) {
	teacher, err := c.GetStaffByID(ctx, teacherID)
	if err != nil {
		return domain.TeacherSchedule{}, err
	}

	if startDate == "" {
		startDate = c.today()
	}
	if endDate == "" {
		if t, perr := time.Parse("2006-01-02", startDate); perr == nil {
			endDate = t.AddDate(0, 0, 7).Format("2006-01-02")
		} else {
			endDate = c.daysOut(7)
		}
	}

	classes, err := c.GetClasses(ctx, domain.ClassFilter{
		StaffIDs:      []int{teacherID},
		StartDateTime: startDate + "T00:00:00",
		EndDateTime:   endDate + "T23:59:59",
	})
	if err != nil {
		return domain.TeacherSchedule{}, err
	}

	scheduled := make([]domain.ScheduledClass, 0, len(classes.Items))
	for _, cls := range classes.Items {
		scheduled = append(scheduled, domain.ScheduledClass{
			ID:             cls.ID,
			Name:           cls.ClassDescription.Name,
			StartTime:      cls.StartDateTime,
			EndTime:        cls.EndDateTime,
			DurationMins:   durationMinutes(cls.StartDateTime, cls.EndDateTime),
			Location:       cls.Location.Name,
			IsSubstitute:   cls.IsSubstitute,
			IsCanceled:     cls.IsCanceled,
			SpotsAvailable: cls.MaxCapacity - cls.TotalBooked,
			TotalSpots:     cls.MaxCapacity,
		})
	}
	sort.Slice(scheduled, func(i, j int) bool {
		return scheduled[i].StartTime < scheduled[j].StartTime
	})

	summary := domain.ScheduleSummary{
		ByDay:       map[string]int{},
		ByLocation:  map[string]int{},
		ByClassType: map[string]int{},
	}
	active := 0
	for _, cls := range scheduled {
		if cls.IsCanceled {
			continue
		}
		active++
		summary.ByDay[dayOfWeek(cls.StartTime)]++
		summary.ByLocation[cls.Location]++
		summary.ByClassType[cls.Name]++
	}

	return domain.TeacherSchedule{
		Teacher: domain.TeacherRef{
			ID:    teacher.ID,
			Name:  teacher.Name,
			Email: teacher.Email,
		},
		DateRange:    domain.DateRange{Start: startDate, End: endDate},
		TotalClasses: active,
		Classes:      scheduled,
		Summary:      summary,
	}, nil
}

// datetimeLayouts are the timestamp shapes the API has been seen to emit.
var datetimeLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
}

func parseDateTime(s string) (time.Time, bool) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func durationMinutes(start, end string) int {
	s, ok1 := parseDateTime(start)
	e, ok2 := parseDateTime(end)
	if !ok1 || !ok2 {
		return 0
	}
	return int(e.Sub(s).Round(time.Minute) / time.Minute)
}

func dayOfWeek(start string) string {
	t, ok := parseDateTime(start)
	if !ok {
		return "Unknown"
	}
	return t.Weekday().String()
}
