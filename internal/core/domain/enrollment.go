package domain

// Enrollment is a multi-session course or workshop schedule.
type Enrollment struct {
	ID           int    `json:"id"`
	LocationID   int    `json:"locationId,omitempty"`
	LocationName string `json:"locationName"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	StaffID      int    `json:"staffId,omitempty"`
	StaffName    string `json:"staffName,omitempty"`
	ProgramID    int    `json:"programId,omitempty"`
	ProgramName  string `json:"programName,omitempty"`
	ScheduleType string `json:"scheduleType,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	StartTime    string `json:"startTime,omitempty"`
	EndTime      string `json:"endTime,omitempty"`
	DayOfWeek    string `json:"dayOfWeek,omitempty"`
	MaxCapacity  int    `json:"maxCapacity,omitempty"`
	WebCapacity  int    `json:"webCapacity,omitempty"`
	IsAvailable  bool   `json:"isAvailable"`
}

// EnrollmentFilter narrows GetEnrollments.
type EnrollmentFilter struct {
	LocationIDs      []int  `json:"locationIds,omitempty"`
	ClassScheduleIDs []int  `json:"classScheduleIds,omitempty"`
	StaffIDs         []int  `json:"staffIds,omitempty"`
	ProgramIDs       []int  `json:"programIds,omitempty"`
	SessionTypeIDs   []int  `json:"sessionTypeIds,omitempty"`
	SemesterIDs      []int  `json:"semesterIds,omitempty"`
	CourseIDs        []int  `json:"courseIds,omitempty"`
	StartDate        string `json:"startDate,omitempty"`
	EndDate          string `json:"endDate,omitempty"`
	Limit            int    `json:"limit,omitempty"`
}

// EnrollmentBooking adds a client to an enrollment schedule.
type EnrollmentBooking struct {
	ClientID        string `json:"clientId" validate:"required"`
	ClassScheduleID int    `json:"classScheduleId" validate:"required"`
	EnrollFromDate  string `json:"enrollFromDate,omitempty"`
	EnrollUntilDate string `json:"enrollUntilDate,omitempty"`
	Waitlist        *bool  `json:"waitlist,omitempty"`
	SendEmail       *bool  `json:"sendEmail,omitempty"`
}
