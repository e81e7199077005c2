package domain

// Appointment is a one-on-one booking with a staff member.
type Appointment struct {
	ID               int        `json:"id"`
	Status           string     `json:"status,omitempty"`
	StaffID          int        `json:"staffId,omitempty"`
	StaffName        string     `json:"staffName"`
	SessionTypeID    int        `json:"sessionTypeId,omitempty"`
	SessionTypeName  string     `json:"sessionTypeName"`
	LocationID       int        `json:"locationId,omitempty"`
	LocationName     string     `json:"locationName"`
	StartDateTime    string     `json:"startDateTime,omitempty"`
	EndDateTime      string     `json:"endDateTime,omitempty"`
	ClientID         string     `json:"clientId,omitempty"`
	ClientName       string     `json:"clientName,omitempty"`
	ClientEmail      string     `json:"clientEmail,omitempty"`
	ClientPhone      string     `json:"clientPhone,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	StaffRequested   bool       `json:"staffRequested"`
	ProviderID       string     `json:"providerId,omitempty"`
	Duration         int        `json:"duration,omitempty"`
	Confirmed        bool       `json:"confirmed"`
	FirstAppointment bool       `json:"firstAppointment"`
	Resources        []Resource `json:"resources,omitempty"`
}

// AppointmentFilter narrows GetStaffAppointments. Dates default to the
// coming week when absent.
type AppointmentFilter struct {
	StaffIDs       []int    `json:"staffIds,omitempty"`
	LocationIDs    []int    `json:"locationIds,omitempty"`
	StartDate      string   `json:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty"`
	AppointmentIDs []int    `json:"appointmentIds,omitempty"`
	ClientIDs      []string `json:"clientIds,omitempty"`
	Limit          int      `json:"limit,omitempty"`
}

// NewAppointment books an appointment.
type NewAppointment struct {
	ClientID       string `json:"clientId" validate:"required"`
	StaffID        int    `json:"staffId" validate:"required"`
	LocationID     int    `json:"locationId" validate:"required"`
	SessionTypeID  int    `json:"sessionTypeId" validate:"required"`
	StartDateTime  string `json:"startDateTime" validate:"required"`
	ResourceIDs    []int  `json:"resourceIds,omitempty"`
	Notes          string `json:"notes,omitempty"`
	StaffRequested *bool  `json:"staffRequested,omitempty"`
	ExecutePayment *bool  `json:"executePayment,omitempty"`
	SendEmail      *bool  `json:"sendEmail,omitempty"`
	ApplyPayment   *bool  `json:"applyPayment,omitempty"`
}

// AppointmentUpdate reschedules or annotates an existing appointment.
type AppointmentUpdate struct {
	AppointmentID  int    `json:"appointmentId" validate:"required"`
	StaffID        int    `json:"staffId,omitempty"`
	StartDateTime  string `json:"startDateTime,omitempty"`
	EndDateTime    string `json:"endDateTime,omitempty"`
	ResourceIDs    []int  `json:"resourceIds,omitempty"`
	Notes          string `json:"notes,omitempty"`
	ExecutePayment *bool  `json:"executePayment,omitempty"`
	SendEmail      *bool  `json:"sendEmail,omitempty"`
	ApplyPayment   *bool  `json:"applyPayment,omitempty"`
}

// BookableItem is an open appointment slot.
type BookableItem struct {
	ScheduledItemID         string `json:"scheduledItemId,omitempty"`
	StaffID                 int    `json:"staffId,omitempty"`
	StaffName               string `json:"staffName"`
	SessionTypeID           int    `json:"sessionTypeId,omitempty"`
	SessionTypeName         string `json:"sessionTypeName"`
	LocationID              int    `json:"locationId,omitempty"`
	LocationName            string `json:"locationName"`
	StartDateTime           string `json:"startDateTime,omitempty"`
	EndDateTime             string `json:"endDateTime,omitempty"`
	IsAvailable             bool   `json:"isAvailable"`
	IsSingleSessionBookable bool   `json:"isSingleSessionBookable"`
}

// BookableItemFilter narrows GetBookableItems.
type BookableItemFilter struct {
	SessionTypeIDs []int  `json:"sessionTypeIds" validate:"required,min=1"`
	LocationIDs    []int  `json:"locationIds,omitempty"`
	StaffIDs       []int  `json:"staffIds,omitempty"`
	StartDate      string `json:"startDate,omitempty"`
	EndDate        string `json:"endDate,omitempty"`
	AppointmentID  int    `json:"appointmentId,omitempty"`
}

// ScheduleItem is one staff availability or unavailability block.
type ScheduleItem struct {
	ID              int    `json:"id"`
	IsAvailable     bool   `json:"isAvailable"`
	IsUnavailable   bool   `json:"isUnavailable"`
	StaffID         int    `json:"staffId,omitempty"`
	StaffName       string `json:"staffName"`
	SessionTypeID   int    `json:"sessionTypeId,omitempty"`
	SessionTypeName string `json:"sessionTypeName,omitempty"`
	LocationID      int    `json:"locationId,omitempty"`
	LocationName    string `json:"locationName,omitempty"`
	StartDateTime   string `json:"startDateTime,omitempty"`
	EndDateTime     string `json:"endDateTime,omitempty"`
}

// ScheduleItemFilter narrows GetScheduleItems.
type ScheduleItemFilter struct {
	LocationIDs            []int  `json:"locationIds,omitempty"`
	StaffIDs               []int  `json:"staffIds,omitempty"`
	StartDate              string `json:"startDate,omitempty"`
	EndDate                string `json:"endDate,omitempty"`
	IgnorePrepFinishBuffer *bool  `json:"ignorePrepFinishBuffer,omitempty"`
}

// DayTime is a bookable window on one weekday.
type DayTime struct {
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Bookable  bool   `json:"bookable"`
}

// ActiveSessionTime is a session type's bookable windows across the week.
type ActiveSessionTime struct {
	ID              int      `json:"id"`
	SessionTypeID   int      `json:"sessionTypeId,omitempty"`
	SessionTypeName string   `json:"sessionTypeName"`
	ScheduleType    string   `json:"scheduleType,omitempty"`
	Monday          *DayTime `json:"monday,omitempty"`
	Tuesday         *DayTime `json:"tuesday,omitempty"`
	Wednesday       *DayTime `json:"wednesday,omitempty"`
	Thursday        *DayTime `json:"thursday,omitempty"`
	Friday          *DayTime `json:"friday,omitempty"`
	Saturday        *DayTime `json:"saturday,omitempty"`
	Sunday          *DayTime `json:"sunday,omitempty"`
}

// ActiveSessionTimeFilter narrows GetActiveSessionTimes. ScheduleType
// defaults to All.
type ActiveSessionTimeFilter struct {
	ScheduleType   string   `json:"scheduleType,omitempty" validate:"omitempty,oneof=All Class Enrollment Appointment"`
	SessionTypeIDs []int    `json:"sessionTypeIds,omitempty"`
	StartTime      string   `json:"startTime,omitempty"`
	EndTime        string   `json:"endTime,omitempty"`
	Days           []string `json:"days,omitempty"`
}
