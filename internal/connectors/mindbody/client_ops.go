package mindbody

import (
	"context"

	"github.com/studiobridge/studiobridge/internal/core/domain"
	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
)

type rawLiabilityRelease struct {
	IsReleased    *bool   `json:"IsReleased"`
	AgreementDate *string `json:"AgreementDate"`
}

type rawClient struct {
	ID                               *string              `json:"Id"`
	FirstName                        *string              `json:"FirstName"`
	LastName                         *string              `json:"LastName"`
	Email                            *string              `json:"Email"`
	MobilePhone                      *string              `json:"MobilePhone"`
	HomePhone                        *string              `json:"HomePhone"`
	BirthDate                        *string              `json:"BirthDate"`
	AddressLine1                     *string              `json:"AddressLine1"`
	AddressLine2                     *string              `json:"AddressLine2"`
	City                             *string              `json:"City"`
	State                            *string              `json:"State"`
	PostalCode                       *string              `json:"PostalCode"`
	Country                          *string              `json:"Country"`
	Gender                           *string              `json:"Gender"`
	IsProspect                       *bool                `json:"IsProspect"`
	IsCompany                        *bool                `json:"IsCompany"`
	Status                           *string              `json:"Status"`
	Active                           *bool                `json:"Active"`
	SendAccountEmails                *bool                `json:"SendAccountEmails"`
	ReferredBy                       *string              `json:"ReferredBy"`
	PhotoURL                         *string              `json:"PhotoUrl"`
	Notes                            *string              `json:"Notes"`
	EmergencyContactInfoName         *string              `json:"EmergencyContactInfoName"`
	EmergencyContactInfoPhone        *string              `json:"EmergencyContactInfoPhone"`
	EmergencyContactInfoRelationship *string              `json:"EmergencyContactInfoRelationship"`
	LiabilityRelease                 *rawLiabilityRelease `json:"LiabilityRelease"`
	AccountBalance                   *float64             `json:"AccountBalance"`
	CreationDate                     *string              `json:"CreationDate"`
	MembershipIcon                   *int                 `json:"MembershipIcon"`
}

type clientsResponse struct {
	Clients            []rawClient         `json:"Clients"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

type clientMutationResponse struct {
	Client *rawClient `json:"Client"`
}

func normalizeClient(cl rawClient) domain.Client {
	phone := str(cl.MobilePhone)
	if phone == "" {
		phone = str(cl.HomePhone)
	}
	out := domain.Client{
		ID:                str(cl.ID),
		FirstName:         str(cl.FirstName),
		LastName:          str(cl.LastName),
		Email:             str(cl.Email),
		Phone:             phone,
		MobilePhone:       str(cl.MobilePhone),
		HomePhone:         str(cl.HomePhone),
		BirthDate:         str(cl.BirthDate),
		AddressLine1:      str(cl.AddressLine1),
		AddressLine2:      str(cl.AddressLine2),
		City:              str(cl.City),
		State:             str(cl.State),
		PostalCode:        str(cl.PostalCode),
		Country:           str(cl.Country),
		Gender:            str(cl.Gender),
		IsProspect:        flag(cl.IsProspect),
		IsCompany:         flag(cl.IsCompany),
		Status:            str(cl.Status),
		Active:            boolOr(cl.Active, true),
		SendAccountEmails: flag(cl.SendAccountEmails),
		ReferredBy:        str(cl.ReferredBy),
		PhotoURL:          str(cl.PhotoURL),
		Notes:             str(cl.Notes),
		AccountBalance:    f64(cl.AccountBalance),
		CreationDate:      str(cl.CreationDate),
		MembershipIcon:    num(cl.MembershipIcon),
	}
	if name := str(cl.EmergencyContactInfoName); name != "" {
		out.EmergencyContact = &domain.EmergencyContact{
			Name:         name,
			Phone:        str(cl.EmergencyContactInfoPhone),
			Relationship: str(cl.EmergencyContactInfoRelationship),
		}
	}
	if cl.LiabilityRelease != nil {
		out.Liability = &domain.LiabilityRelease{
			IsReleased: flag(cl.LiabilityRelease.IsReleased),
			AgreedDate: str(cl.LiabilityRelease.AgreementDate),
		}
	}
	return out
}

// GetClients returns clients matching the filter.
func (c *Connector) GetClients(ctx context.Context, filter domain.ClientFilter) (domain.ListResult[domain.Client], error) {
	limit := filter.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	q := driven.Query{
		"SearchText":       filter.SearchText,
		"ClientIds":        filter.ClientIDs,
		"LastModifiedDate": filter.LastModifiedDate,
		"IsProspect":       filter.IsProspect,
		"Limit":            limit,
		"Offset":           filter.Offset,
	}
	return fetchCached(ctx, c.caches.General, cacheKey("client.clients", q), func(ctx context.Context) (domain.ListResult[domain.Client], error) {
		var resp clientsResponse
		if err := c.gw.Get(ctx, "/client/clients", q, &resp); err != nil {
			return domain.ListResult[domain.Client]{}, err
		}
		items := make([]domain.Client, 0, len(resp.Clients))
		for _, cl := range resp.Clients {
			items = append(items, normalizeClient(cl))
		}
		return domain.ListResult[domain.Client]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

// GetClientByID returns one client, or domain.ErrNotFound.
func (c *Connector) GetClientByID(ctx context.Context, clientID string) (domain.Client, error) {
	res, err := c.GetClients(ctx, domain.ClientFilter{ClientIDs: []string{clientID}})
	if err != nil {
		return domain.Client{}, err
	}
	for _, cl := range res.Items {
		if cl.ID == clientID {
			return cl, nil
		}
	}
	return domain.Client{}, domain.ErrNotFound
}

type addClientRequest struct {
	FirstName                        string `json:"FirstName"`
	LastName                         string `json:"LastName"`
	Email                            string `json:"Email,omitempty"`
	MobilePhone                      string `json:"MobilePhone,omitempty"`
	BirthDate                        string `json:"BirthDate,omitempty"`
	AddressLine1                     string `json:"AddressLine1,omitempty"`
	City                             string `json:"City,omitempty"`
	State                            string `json:"State,omitempty"`
	PostalCode                       string `json:"PostalCode,omitempty"`
	Country                          string `json:"Country,omitempty"`
	EmergencyContactInfoName         string `json:"EmergencyContactInfoName,omitempty"`
	EmergencyContactInfoPhone        string `json:"EmergencyContactInfoPhone,omitempty"`
	EmergencyContactInfoRelationship string `json:"EmergencyContactInfoRelationship,omitempty"`
	SendAccountEmails                bool   `json:"SendAccountEmails"`
	ReferredBy                       string `json:"ReferredBy,omitempty"`
}

// AddClient creates a new client. Failures are reported in the result
// rather than returned as errors.
func (c *Connector) AddClient(ctx context.Context, params domain.NewClient) domain.OperationResult[domain.Client] {
	body := addClientRequest{
		FirstName:                        params.FirstName,
		LastName:                         params.LastName,
		Email:                            params.Email,
		MobilePhone:                      params.MobilePhone,
		BirthDate:                        params.BirthDate,
		AddressLine1:                     params.AddressLine1,
		City:                             params.City,
		State:                            params.State,
		PostalCode:                       params.PostalCode,
		Country:                          params.Country,
		EmergencyContactInfoName:         params.EmergencyContactName,
		EmergencyContactInfoPhone:        params.EmergencyContactPhone,
		EmergencyContactInfoRelationship: params.EmergencyContactRelationship,
		SendAccountEmails:                boolOr(params.SendAccountEmails, true),
		ReferredBy:                       params.ReferredBy,
	}
	var resp clientMutationResponse
	if err := c.gw.Post(ctx, "/client/addclient", body, &resp); err != nil {
		return domain.Failed[domain.Client](userMessage(err))
	}
	c.caches.InvalidateGeneral()
	var created domain.Client
	if resp.Client != nil {
		created = normalizeClient(*resp.Client)
	}
	return domain.Succeeded("Client created successfully", created)
}

type updateClientRequest struct {
	ID                        string `json:"Id"`
	FirstName                 string `json:"FirstName,omitempty"`
	LastName                  string `json:"LastName,omitempty"`
	Email                     string `json:"Email,omitempty"`
	MobilePhone               string `json:"MobilePhone,omitempty"`
	BirthDate                 string `json:"BirthDate,omitempty"`
	AddressLine1              string `json:"AddressLine1,omitempty"`
	City                      string `json:"City,omitempty"`
	State                     string `json:"State,omitempty"`
	PostalCode                string `json:"PostalCode,omitempty"`
	EmergencyContactInfoName  string `json:"EmergencyContactInfoName,omitempty"`
	EmergencyContactInfoPhone string `json:"EmergencyContactInfoPhone,omitempty"`
	SendAccountEmails         *bool  `json:"SendAccountEmails,omitempty"`
}

// UpdateClient applies a partial update; unset fields are not sent.
func (c *Connector) UpdateClient(ctx context.Context, params domain.ClientUpdate) domain.OperationResult[domain.Client] {
	body := updateClientRequest{
		ID:                        params.ClientID,
		FirstName:                 params.FirstName,
		LastName:                  params.LastName,
		Email:                     params.Email,
		MobilePhone:               params.MobilePhone,
		BirthDate:                 params.BirthDate,
		AddressLine1:              params.AddressLine1,
		City:                      params.City,
		State:                     params.State,
		PostalCode:                params.PostalCode,
		EmergencyContactInfoName:  params.EmergencyContactName,
		EmergencyContactInfoPhone: params.EmergencyContactPhone,
		SendAccountEmails:         params.SendAccountEmails,
	}
	var resp clientMutationResponse
	if err := c.gw.Post(ctx, "/client/updateclient", body, &resp); err != nil {
		return domain.Failed[domain.Client](userMessage(err))
	}
	c.caches.InvalidateGeneral()
	var updated domain.Client
	if resp.Client != nil {
		updated = normalizeClient(*resp.Client)
	}
	return domain.Succeeded("Client updated successfully", updated)
}

type rawVisit struct {
	ID            *int    `json:"Id"`
	ClassID       *int    `json:"ClassId"`
	Name          *string `json:"Name"`
	StartDateTime *string `json:"StartDateTime"`
	EndDateTime   *string `json:"EndDateTime"`
	Location      *rawRef `json:"Location"`
	Staff         *rawRef `json:"Staff"`
	SignedIn      *bool   `json:"SignedIn"`
	WebSignup     *bool   `json:"WebSignup"`
	LateCancelled *bool   `json:"LateCancelled"`
	ServiceID     *int    `json:"ServiceId"`
	ServiceName   *string `json:"ServiceName"`
}

type visitsResponse struct {
	Visits             []rawVisit          `json:"Visits"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

// GetClientVisits returns a client's attendance history with aggregates.
// Dates default to the trailing thirty days.
func (c *Connector) GetClientVisits(ctx context.Context, filter domain.VisitFilter) (domain.VisitHistory, error) {
	start := filter.StartDate
	if start == "" {
		start = c.daysOut(-30)
	}
	end := filter.EndDate
	if end == "" {
		end = c.today()
	}
	q := driven.Query{
		"ClientId":  filter.ClientID,
		"StartDate": start,
		"EndDate":   end,
		"Limit":     defaultLimit,
	}
	return fetchCached(ctx, c.caches.General, cacheKey("client.visits", q), func(ctx context.Context) (domain.VisitHistory, error) {
		var resp visitsResponse
		if err := c.gw.Get(ctx, "/client/clientvisits", q, &resp); err != nil {
			return domain.VisitHistory{}, err
		}
		visits := make([]domain.Visit, 0, len(resp.Visits))
		for _, v := range resp.Visits {
			location := v.Location.name()
			if location == "" {
				location = "Unknown"
			}
			instructor := v.Staff.name()
			if instructor == "" {
				instructor = "Unknown"
			}
			visits = append(visits, domain.Visit{
				ID:          num(v.ID),
				ClassID:     num(v.ClassID),
				ClassName:   str(v.Name),
				StartTime:   str(v.StartDateTime),
				EndTime:     str(v.EndDateTime),
				Location:    location,
				Instructor:  instructor,
				SignedIn:    flag(v.SignedIn),
				WebSignup:   flag(v.WebSignup),
				LateCancel:  flag(v.LateCancelled),
				ServiceID:   num(v.ServiceID),
				ServiceName: str(v.ServiceName),
			})
		}

		summary := domain.VisitSummary{
			ByLocation:   map[string]int{},
			ByClassType:  map[string]int{},
			ByInstructor: map[string]int{},
		}
		for _, v := range visits {
			switch {
			case v.SignedIn:
				summary.TotalAttended++
				summary.ByLocation[v.Location]++
				summary.ByClassType[v.ClassName]++
				summary.ByInstructor[v.Instructor]++
			case v.LateCancel:
				summary.TotalLateCancels++
			default:
				summary.TotalNoShows++
			}
		}

		return domain.VisitHistory{Visits: visits, Total: len(visits), Summary: summary}, nil
	})
}

type rawMembership struct {
	ID             *int    `json:"Id"`
	Name           *string `json:"Name"`
	Remaining      *int    `json:"Remaining"`
	ActiveDate     *string `json:"ActiveDate"`
	ExpirationDate *string `json:"ExpirationDate"`
	PaymentDate    *string `json:"PaymentDate"`
	Program        *string `json:"Program"`
	SiteID         *int    `json:"SiteId"`
	IconCode       *string `json:"IconCode"`
	Action         *string `json:"Action"`
}

type membershipsResponse struct {
	ClientMemberships  []rawMembership     `json:"ClientMemberships"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

// GetClientMemberships returns a client's active memberships.
func (c *Connector) GetClientMemberships(ctx context.Context, clientID string, locationID int) (domain.ListResult[domain.Membership], error) {
	q := driven.Query{
		"ClientId":   clientID,
		"LocationId": locationID,
	}
	return fetchCached(ctx, c.caches.General, cacheKey("client.memberships", q), func(ctx context.Context) (domain.ListResult[domain.Membership], error) {
		var resp membershipsResponse
		if err := c.gw.Get(ctx, "/client/activeclientmemberships", q, &resp); err != nil {
			return domain.ListResult[domain.Membership]{}, err
		}
		items := make([]domain.Membership, 0, len(resp.ClientMemberships))
		for _, m := range resp.ClientMemberships {
			items = append(items, domain.Membership{
				ID:               num(m.ID),
				Name:             str(m.Name),
				RemainingClasses: num(m.Remaining),
				ActiveDate:       str(m.ActiveDate),
				ExpirationDate:   str(m.ExpirationDate),
				PaymentDate:      str(m.PaymentDate),
				Program:          str(m.Program),
				SiteID:           num(m.SiteID),
				IconCode:         str(m.IconCode),
				Action:           str(m.Action),
			})
		}
		return domain.ListResult[domain.Membership]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

type rawClientContract struct {
	ID            *int     `json:"Id"`
	ContractName  *string  `json:"ContractName"`
	Description   *string  `json:"Description"`
	SoldDate      *string  `json:"SoldDate"`
	StartDate     *string  `json:"StartDate"`
	EndDate       *string  `json:"EndDate"`
	AutopayStatus *string  `json:"AutopayStatus"`
	Balance       *float64 `json:"Balance"`
	ContractType  *string  `json:"ContractType"`
	SiteID        *int     `json:"SiteId"`
}

type clientContractsResponse struct {
	Contracts          []rawClientContract `json:"Contracts"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

// GetClientContracts returns contracts held by a client.
func (c *Connector) GetClientContracts(ctx context.Context, clientID string) (domain.ListResult[domain.ClientContract], error) {
	q := driven.Query{"ClientId": clientID}
	return fetchCached(ctx, c.caches.General, cacheKey("client.contracts", q), func(ctx context.Context) (domain.ListResult[domain.ClientContract], error) {
		var resp clientContractsResponse
		if err := c.gw.Get(ctx, "/client/clientcontracts", q, &resp); err != nil {
			return domain.ListResult[domain.ClientContract]{}, err
		}
		items := make([]domain.ClientContract, 0, len(resp.Contracts))
		for _, ct := range resp.Contracts {
			items = append(items, domain.ClientContract{
				ID:            num(ct.ID),
				Name:          str(ct.ContractName),
				Description:   str(ct.Description),
				SoldDate:      str(ct.SoldDate),
				StartDate:     str(ct.StartDate),
				EndDate:       str(ct.EndDate),
				AutopayStatus: str(ct.AutopayStatus),
				Balance:       f64(ct.Balance),
				ContractType:  str(ct.ContractType),
				SiteID:        num(ct.SiteID),
			})
		}
		return domain.ListResult[domain.ClientContract]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

type rawCreditCard struct {
	Balance  *float64 `json:"Balance"`
	CardType *string  `json:"CardType"`
	LastFour *string  `json:"LastFour"`
}

type rawBalanceClient struct {
	AccountBalance    *float64        `json:"AccountBalance"`
	ClientCreditCards []rawCreditCard `json:"ClientCreditCards"`
}

type balancesResponse struct {
	Clients []rawBalanceClient `json:"Clients"`
}

// GetClientAccountBalances returns a client's account balance and stored
// card balances.
func (c *Connector) GetClientAccountBalances(ctx context.Context, clientID string) (domain.AccountBalances, error) {
	q := driven.Query{"ClientIds": []string{clientID}}
	return fetchCached(ctx, c.caches.General, cacheKey("client.balances", q), func(ctx context.Context) (domain.AccountBalances, error) {
		var resp balancesResponse
		if err := c.gw.Get(ctx, "/client/clientaccountbalances", q, &resp); err != nil {
			return domain.AccountBalances{}, err
		}
		out := domain.AccountBalances{CreditCardBalances: []domain.CreditCardBalance{}}
		if len(resp.Clients) == 0 {
			return out, nil
		}
		cl := resp.Clients[0]
		out.AccountBalance = f64(cl.AccountBalance)
		for _, card := range cl.ClientCreditCards {
			out.CreditCardBalances = append(out.CreditCardBalances, domain.CreditCardBalance{
				Amount:   f64(card.Balance),
				CardType: str(card.CardType),
				LastFour: str(card.LastFour),
			})
		}
		return out, nil
	})
}

type arrivalResponse struct {
	ArrivalAdded *bool   `json:"ArrivalAdded"`
	Message      *string `json:"Message"`
}

// AddClientArrival records a client check-in at a location.
func (c *Connector) AddClientArrival(ctx context.Context, clientID string, locationID int) domain.OperationResult[domain.ArrivalResult] {
	body := map[string]any{
		"ClientId":   clientID,
		"LocationId": locationID,
	}
	var resp arrivalResponse
	if err := c.gw.Post(ctx, "/client/addarrival", body, &resp); err != nil {
		return domain.Failed[domain.ArrivalResult](userMessage(err))
	}
	c.caches.InvalidateGeneral()
	msg := str(resp.Message)
	if msg == "" {
		msg = "Client checked in successfully"
	}
	return domain.Succeeded(msg, domain.ArrivalResult{ArrivalAdded: flag(resp.ArrivalAdded)})
}
