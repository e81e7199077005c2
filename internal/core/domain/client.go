package domain

// EmergencyContact is a client's emergency contact details.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

// LiabilityRelease records whether a client signed the liability waiver.
type LiabilityRelease struct {
	IsReleased bool   `json:"isReleased"`
	AgreedDate string `json:"agreedDate,omitempty"`
}

// Client is a studio member or prospect.
type Client struct {
	ID                string            `json:"id"`
	FirstName         string            `json:"firstName,omitempty"`
	LastName          string            `json:"lastName,omitempty"`
	Email             string            `json:"email,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	MobilePhone       string            `json:"mobilePhone,omitempty"`
	HomePhone         string            `json:"homePhone,omitempty"`
	BirthDate         string            `json:"birthDate,omitempty"`
	AddressLine1      string            `json:"addressLine1,omitempty"`
	AddressLine2      string            `json:"addressLine2,omitempty"`
	City              string            `json:"city,omitempty"`
	State             string            `json:"state,omitempty"`
	PostalCode        string            `json:"postalCode,omitempty"`
	Country           string            `json:"country,omitempty"`
	Gender            string            `json:"gender,omitempty"`
	IsProspect        bool              `json:"isProspect"`
	IsCompany         bool              `json:"isCompany"`
	Status            string            `json:"status"`
	Active            bool              `json:"active"`
	SendAccountEmails bool              `json:"sendAccountEmails"`
	ReferredBy        string            `json:"referredBy,omitempty"`
	PhotoURL          string            `json:"photoUrl,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	EmergencyContact  *EmergencyContact `json:"emergencyContact,omitempty"`
	Liability         *LiabilityRelease `json:"liability,omitempty"`
	AccountBalance    float64           `json:"accountBalance"`
	CreationDate      string            `json:"creationDate,omitempty"`
	MembershipIcon    int               `json:"membershipIcon,omitempty"`
}

// ClientFilter narrows GetClients.
type ClientFilter struct {
	SearchText       string   `json:"searchText,omitempty"`
	ClientIDs        []string `json:"clientIds,omitempty"`
	LastModifiedDate string   `json:"lastModifiedDate,omitempty"`
	IsProspect       *bool    `json:"isProspect,omitempty"`
	Limit            int      `json:"limit,omitempty"`
	Offset           int      `json:"offset,omitempty"`
}

// NewClient carries the fields for creating a client.
type NewClient struct {
	FirstName                    string `json:"firstName" validate:"required"`
	LastName                     string `json:"lastName" validate:"required"`
	Email                        string `json:"email,omitempty" validate:"omitempty,email"`
	MobilePhone                  string `json:"mobilePhone,omitempty"`
	BirthDate                    string `json:"birthDate,omitempty"`
	AddressLine1                 string `json:"addressLine1,omitempty"`
	City                         string `json:"city,omitempty"`
	State                        string `json:"state,omitempty"`
	PostalCode                   string `json:"postalCode,omitempty"`
	Country                      string `json:"country,omitempty"`
	EmergencyContactName         string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone        string `json:"emergencyContactPhone,omitempty"`
	EmergencyContactRelationship string `json:"emergencyContactRelationship,omitempty"`
	SendAccountEmails            *bool  `json:"sendAccountEmails,omitempty"`
	ReferredBy                   string `json:"referredBy,omitempty"`
}

// ClientUpdate carries a partial client update. Zero-valued fields are
// not sent upstream.
type ClientUpdate struct {
	ClientID              string `json:"clientId" validate:"required"`
	FirstName             string `json:"firstName,omitempty"`
	LastName              string `json:"lastName,omitempty"`
	Email                 string `json:"email,omitempty" validate:"omitempty,email"`
	MobilePhone           string `json:"mobilePhone,omitempty"`
	BirthDate             string `json:"birthDate,omitempty"`
	AddressLine1          string `json:"addressLine1,omitempty"`
	City                  string `json:"city,omitempty"`
	State                 string `json:"state,omitempty"`
	PostalCode            string `json:"postalCode,omitempty"`
	EmergencyContactName  string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string `json:"emergencyContactPhone,omitempty"`
	SendAccountEmails     *bool  `json:"sendAccountEmails,omitempty"`
}

// Visit is one class attendance record for a client.
type Visit struct {
	ID          int    `json:"id"`
	ClassID     int    `json:"classId,omitempty"`
	ClassName   string `json:"className"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	Location    string `json:"location"`
	Instructor  string `json:"instructor"`
	SignedIn    bool   `json:"signedIn"`
	WebSignup   bool   `json:"webSignup"`
	LateCancel  bool   `json:"lateCancel"`
	ServiceID   int    `json:"serviceId,omitempty"`
	ServiceName string `json:"serviceName,omitempty"`
}

// VisitSummary aggregates a visit history.
type VisitSummary struct {
	TotalAttended    int            `json:"totalAttended"`
	TotalNoShows     int            `json:"totalNoShows"`
	TotalLateCancels int            `json:"totalLateCancels"`
	ByLocation       map[string]int `json:"byLocation"`
	ByClassType      map[string]int `json:"byClassType"`
	ByInstructor     map[string]int `json:"byInstructor"`
}

// VisitHistory is a client's visits plus summary aggregates.
type VisitHistory struct {
	Visits  []Visit      `json:"visits"`
	Total   int          `json:"total"`
	Summary VisitSummary `json:"summary"`
}

// VisitFilter narrows GetClientVisits. Dates default to the trailing
// thirty days when absent.
type VisitFilter struct {
	ClientID  string `json:"clientId" validate:"required"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// Membership is an active client membership.
type Membership struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	RemainingClasses int    `json:"remainingClasses"`
	ActiveDate       string `json:"activeDate,omitempty"`
	ExpirationDate   string `json:"expirationDate,omitempty"`
	PaymentDate      string `json:"paymentDate,omitempty"`
	Program          string `json:"program,omitempty"`
	SiteID           int    `json:"siteId,omitempty"`
	IconCode         string `json:"iconCode,omitempty"`
	Action           string `json:"action,omitempty"`
}

// ClientContract is a contract held by a client.
type ClientContract struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	SoldDate      string  `json:"soldDate,omitempty"`
	StartDate     string  `json:"startDate,omitempty"`
	EndDate       string  `json:"endDate,omitempty"`
	AutopayStatus string  `json:"autopayStatus,omitempty"`
	Balance       float64 `json:"balance"`
	ContractType  string  `json:"contractType,omitempty"`
	SiteID        int     `json:"siteId,omitempty"`
}

// CreditCardBalance is one stored card balance on a client account.
type CreditCardBalance struct {
	Amount   float64 `json:"amount"`
	CardType string  `json:"cardType,omitempty"`
	LastFour string  `json:"lastFour,omitempty"`
}

// AccountBalances is a client's account balance plus stored card balances.
type AccountBalances struct {
	AccountBalance     float64             `json:"accountBalance"`
	CreditCardBalances []CreditCardBalance `json:"creditCardBalances"`
}

// ArrivalResult reports whether a client check-in was recorded.
type ArrivalResult struct {
	ArrivalAdded bool `json:"arrivalAdded"`
}
