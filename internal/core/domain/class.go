package domain

// ClassDescription is the catalog entry for a class type.
type ClassDescription struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Active      bool   `json:"active"`
}

// ClassStaffRef is the instructor attached to a class occurrence.
type ClassStaffRef struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// Class is one class occurrence on the schedule.
type Class struct {
	ID                  int              `json:"id"`
	ClassScheduleID     int              `json:"classScheduleId,omitempty"`
	Location            Location         `json:"location"`
	ClassDescription    ClassDescription `json:"classDescription"`
	Staff               ClassStaffRef    `json:"staff"`
	StartDateTime       string           `json:"startDateTime"`
	EndDateTime         string           `json:"endDateTime"`
	IsCanceled          bool             `json:"isCanceled"`
	IsWaitlistAvailable bool             `json:"isWaitlistAvailable"`
	IsAvailable         bool             `json:"isAvailable"`
	IsSubstitute        bool             `json:"isSubstitute"`
	MaxCapacity         int              `json:"maxCapacity"`
	TotalBooked         int              `json:"totalBooked"`
	WebCapacity         int              `json:"webCapacity"`
	TotalBookedWaitlist int              `json:"totalBookedWaitlist"`
	VirtualStreamLink   string           `json:"virtualStreamLink,omitempty"`
}

// ClassFilter narrows GetClasses.
type ClassFilter struct {
	ClassDescriptionIDs []int  `json:"classDescriptionIds,omitempty"`
	ClassIDs            []int  `json:"classIds,omitempty"`
	StaffIDs            []int  `json:"staffIds,omitempty"`
	StartDateTime       string `json:"startDateTime,omitempty"`
	EndDateTime         string `json:"endDateTime,omitempty"`
	LocationIDs         []int  `json:"locationIds,omitempty"`
	Limit               int    `json:"limit,omitempty"`
	Offset              int    `json:"offset,omitempty"`
}

// ClassSchedule is a recurring class schedule definition.
type ClassSchedule struct {
	ID                 int      `json:"id"`
	LocationID         int      `json:"locationId,omitempty"`
	ClassDescriptionID int      `json:"classDescriptionId,omitempty"`
	StaffID            int      `json:"staffId,omitempty"`
	StartTime          string   `json:"startTime,omitempty"`
	EndTime            string   `json:"endTime,omitempty"`
	StartDate          string   `json:"startDate,omitempty"`
	EndDate            string   `json:"endDate,omitempty"`
	DaysOfWeek         []string `json:"daysOfWeek"`
	MaxCapacity        int      `json:"maxCapacity,omitempty"`
	WebCapacity        int      `json:"webCapacity,omitempty"`
	IsActive           bool     `json:"isActive"`
}

// ClassScheduleFilter narrows GetClassSchedules.
type ClassScheduleFilter struct {
	LocationIDs         []int  `json:"locationIds,omitempty"`
	ClassDescriptionIDs []int  `json:"classDescriptionIds,omitempty"`
	StaffIDs            []int  `json:"staffIds,omitempty"`
	StartDate           string `json:"startDate,omitempty"`
	EndDate             string `json:"endDate,omitempty"`
}

// ClassBooking books a client into a class.
type ClassBooking struct {
	ClientID       string `json:"clientId" validate:"required"`
	ClassID        int    `json:"classId" validate:"required"`
	RequirePayment *bool  `json:"requirePayment,omitempty"`
	Waitlist       *bool  `json:"waitlist,omitempty"`
	SendEmail      *bool  `json:"sendEmail,omitempty"`
}

// BookingVisit identifies the visit created by a class booking.
type BookingVisit struct {
	Visit struct {
		ID       int    `json:"id"`
		ClassID  int    `json:"classId"`
		ClientID string `json:"clientId"`
	} `json:"visit"`
}

// ClassCancellation removes a client from a class.
type ClassCancellation struct {
	ClientID   string `json:"clientId" validate:"required"`
	ClassID    int    `json:"classId" validate:"required"`
	LateCancel *bool  `json:"lateCancel,omitempty"`
	SendEmail  *bool  `json:"sendEmail,omitempty"`
}

// WaitlistEntry is one client waiting on a class.
type WaitlistEntry struct {
	ID              int    `json:"id"`
	ClassID         int    `json:"classId,omitempty"`
	ClientID        string `json:"clientId,omitempty"`
	ClientName      string `json:"clientName"`
	RequestDateTime string `json:"requestDateTime,omitempty"`
	VisitRefNo      int    `json:"visitRefNo,omitempty"`
	WebSignup       bool   `json:"webSignup"`
}

// WaitlistFilter narrows GetWaitlistEntries.
type WaitlistFilter struct {
	ClassIDs        []int    `json:"classIds,omitempty"`
	ClientIDs       []string `json:"clientIds,omitempty"`
	HidePastEntries *bool    `json:"hidePastEntries,omitempty"`
}

// TeacherSubstitution swaps the instructor on a class occurrence.
type TeacherSubstitution struct {
	ClassID                    int   `json:"classId" validate:"required"`
	StaffID                    int   `json:"staffId" validate:"required"`
	SendClientEmail            *bool `json:"sendClientEmail,omitempty"`
	SendOriginalTeacherEmail   *bool `json:"sendOriginalTeacherEmail,omitempty"`
	SendSubstituteTeacherEmail *bool `json:"sendSubstituteTeacherEmail,omitempty"`
}
