package domain

// Site is a Mindbody business site (one tenant partition).
type Site struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	LogoURL           string `json:"logoUrl,omitempty"`
	ContactEmail      string `json:"contactEmail,omitempty"`
	AcceptsVisa       bool   `json:"acceptsVisa"`
	AcceptsMastercard bool   `json:"acceptsMastercard"`
	AcceptsAmex       bool   `json:"acceptsAmex"`
	AcceptsDiscover   bool   `json:"acceptsDiscover"`
	AllowsDirectPay   bool   `json:"allowsDirectPay"`
	SMSPackageEnabled bool   `json:"smsPackageEnabled"`
}

// Location is a physical studio location within a site.
type Location struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Address     string  `json:"address,omitempty"`
	Address2    string  `json:"address2,omitempty"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	PostalCode  string  `json:"postalCode,omitempty"`
	Country     string  `json:"country,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	HasClasses  bool    `json:"hasClasses"`
}

// Resource is a bookable room or piece of equipment.
type Resource struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ActivationCode is the site's activation code and link for API approval.
type ActivationCode struct {
	Code string `json:"activationCode"`
	Link string `json:"activationLink"`
}

// Program groups session types under a schedule type (Class, Enrollment,
// Appointment).
type Program struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	ScheduleType   string   `json:"scheduleType,omitempty"`
	CancelOffset   int      `json:"cancelOffset,omitempty"`
	ContentFormats []string `json:"contentFormats"`
}

// SessionType is a bookable session kind within a program.
type SessionType struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Type              string `json:"type,omitempty"`
	DefaultTimeLength int    `json:"defaultTimeLength,omitempty"`
	NumDeducted       int    `json:"numDeducted,omitempty"`
	ProgramID         int    `json:"programId,omitempty"`
	OnlineDescription string `json:"onlineDescription,omitempty"`
	Category          string `json:"category,omitempty"`
	Subcategory       string `json:"subcategory,omitempty"`
}

// ProgramFilter narrows GetPrograms.
type ProgramFilter struct {
	ScheduleType string `json:"scheduleType,omitempty"`
	OnlineOnly   *bool  `json:"onlineOnly,omitempty"`
	Limit        int    `json:"limit,omitempty"`
}

// SessionTypeFilter narrows GetSessionTypes.
type SessionTypeFilter struct {
	ProgramIDs []int `json:"programIds,omitempty"`
	OnlineOnly *bool `json:"onlineOnly,omitempty"`
	Limit      int   `json:"limit,omitempty"`
}
