package domain

// Staff is an instructor or other staff member.
type Staff struct {
	ID                    int    `json:"id"`
	FirstName             string `json:"firstName,omitempty"`
	LastName              string `json:"lastName,omitempty"`
	Name                  string `json:"name"`
	Email                 string `json:"email,omitempty"`
	MobilePhone           string `json:"mobilePhone,omitempty"`
	ImageURL              string `json:"imageUrl,omitempty"`
	Bio                   string `json:"bio,omitempty"`
	AppointmentTrn        bool   `json:"appointmentTrn"`
	IndependentContractor bool   `json:"independentContractor"`
}

// StaffFilter narrows GetStaff.
type StaffFilter struct {
	StaffIDs       []int    `json:"staffIds,omitempty"`
	Filters        []string `json:"filters,omitempty"`
	SessionTypeIDs []int    `json:"sessionTypeIds,omitempty"`
	LocationIDs    []int    `json:"locationIds,omitempty"`
	StartDateTime  string   `json:"startDateTime,omitempty"`
	Limit          int      `json:"limit,omitempty"`
	Offset         int      `json:"offset,omitempty"`
}

// ScheduledClass is one class occurrence on a teacher's schedule.
type ScheduledClass struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	DurationMins   int    `json:"duration"`
	Location       string `json:"location"`
	IsSubstitute   bool   `json:"isSubstitute"`
	IsCanceled     bool   `json:"isCanceled"`
	SpotsAvailable int    `json:"spotsAvailable"`
	TotalSpots     int    `json:"totalSpots"`
}

// ScheduleSummary aggregates a schedule by day, location and class type.
type ScheduleSummary struct {
	ByDay       map[string]int `json:"byDay"`
	ByLocation  map[string]int `json:"byLocation"`
	ByClassType map[string]int `json:"byClassType"`
}

// DateRange is an inclusive date window in YYYY-MM-DD form.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TeacherRef identifies the teacher a schedule belongs to.
type TeacherRef struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// TeacherSchedule is the assembled view of one teacher's classes over a
// date range, with summary aggregates.
type TeacherSchedule struct {
	Teacher      TeacherRef       `json:"teacher"`
	DateRange    DateRange        `json:"dateRange"`
	TotalClasses int              `json:"totalClasses"`
	Classes      []ScheduledClass `json:"classes"`
	Summary      ScheduleSummary  `json:"summary"`
}
