package mindbody

import (
	"context"

	"github.com/studiobridge/studiobridge/internal/core/domain"
	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
)

type rawSite struct {
	ID                     *int    `json:"Id"`
	Name                   *string `json:"Name"`
	Description            *string `json:"Description"`
	LogoURL                *string `json:"LogoUrl"`
	ContactEmail           *string `json:"ContactEmail"`
	AcceptsVisa            *bool   `json:"AcceptsVisa"`
	AcceptsMasterCard      *bool   `json:"AcceptsMasterCard"`
	AcceptsAmericanExpress *bool   `json:"AcceptsAmericanExpress"`
	AcceptsDiscover        *bool   `json:"AcceptsDiscover"`
	AllowsDirectPay        *bool   `json:"AllowsDirectPay"`
	SMSPackageEnabled      *bool   `json:"SMSPackageEnabled"`
}

type sitesResponse struct {
	Sites              []rawSite           `json:"Sites"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

type rawLocation struct {
	ID          *int     `json:"Id"`
	Name        *string  `json:"Name"`
	Description *string  `json:"Description"`
	Address     *string  `json:"Address"`
	Address2    *string  `json:"Address2"`
	City        *string  `json:"City"`
	StateProv   *string  `json:"StateProvCode"`
	PostalCode  *string  `json:"PostalCode"`
	Country     *string  `json:"Country"`
	Phone       *string  `json:"Phone"`
	Latitude    *float64 `json:"Latitude"`
	Longitude   *float64 `json:"Longitude"`
	HasClasses  *bool    `json:"HasClasses"`
}

type locationsResponse struct {
	Locations          []rawLocation       `json:"Locations"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

type resourcesResponse struct {
	Resources          []rawRef            `json:"Resources"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

type activationCodeResponse struct {
	ActivationCode *string `json:"ActivationCode"`
	ActivationLink *string `json:"ActivationLink"`
}

type rawProgram struct {
	ID             *int     `json:"Id"`
	Name           *string  `json:"Name"`
	ScheduleType   *string  `json:"ScheduleType"`
	CancelOffset   *int     `json:"CancelOffset"`
	ContentFormats []string `json:"ContentFormats"`
}

type programsResponse struct {
	Programs           []rawProgram        `json:"Programs"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

type rawSessionType struct {
	ID                *int    `json:"Id"`
	Name              *string `json:"Name"`
	Type              *string `json:"Type"`
	DefaultTimeLength *int    `json:"DefaultTimeLength"`
	NumDeducted       *int    `json:"NumDeducted"`
	ProgramID         *int    `json:"ProgramId"`
	OnlineDescription *string `json:"OnlineDescription"`
	Category          *string `json:"Category"`
	Subcategory       *string `json:"Subcategory"`
}

type sessionTypesResponse struct {
	SessionTypes       []rawSessionType    `json:"SessionTypes"`
	PaginationResponse *paginationResponse `json:"PaginationResponse"`
}

// GetSites returns the business sites reachable with the configured key.
func (c *Connector) GetSites(ctx context.Context) (domain.ListResult[domain.Site], error) {
	q := driven.Query{"Limit": defaultLimit}
	return fetchCached(ctx, c.caches.Staff, cacheKey("site.sites", q), func(ctx context.Context) (domain.ListResult[domain.Site], error) {
		var resp sitesResponse
		if err := c.gw.Get(ctx, "/site/sites", q, &resp); err != nil {
			return domain.ListResult[domain.Site]{}, err
		}
		items := make([]domain.Site, 0, len(resp.Sites))
		for _, s := range resp.Sites {
			items = append(items, domain.Site{
				ID:                num(s.ID),
				Name:              str(s.Name),
				Description:       str(s.Description),
				LogoURL:           str(s.LogoURL),
				ContactEmail:      str(s.ContactEmail),
				AcceptsVisa:       flag(s.AcceptsVisa),
				AcceptsMastercard: flag(s.AcceptsMasterCard),
				AcceptsAmex:       flag(s.AcceptsAmericanExpress),
				AcceptsDiscover:   flag(s.AcceptsDiscover),
				AllowsDirectPay:   flag(s.AllowsDirectPay),
				SMSPackageEnabled: flag(s.SMSPackageEnabled),
			})
		}
		return domain.ListResult[domain.Site]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

// GetLocations returns the site's studio locations.
func (c *Connector) GetLocations(ctx context.Context) (domain.ListResult[domain.Location], error) {
	q := driven.Query{"Limit": defaultLimit}
	return fetchCached(ctx, c.caches.Staff, cacheKey("site.locations", q), func(ctx context.Context) (domain.ListResult[domain.Location], error) {
		var resp locationsResponse
		if err := c.gw.Get(ctx, "/site/locations", q, &resp); err != nil {
			return domain.ListResult[domain.Location]{}, err
		}
		items := make([]domain.Location, 0, len(resp.Locations))
		for _, l := range resp.Locations {
			items = append(items, normalizeLocation(l))
		}
		return domain.ListResult[domain.Location]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

func normalizeLocation(l rawLocation) domain.Location {
	return domain.Location{
		ID:          num(l.ID),
		Name:        str(l.Name),
		Description: str(l.Description),
		Address:     str(l.Address),
		Address2:    str(l.Address2),
		City:        str(l.City),
		State:       str(l.StateProv),
		PostalCode:  str(l.PostalCode),
		Country:     str(l.Country),
		Phone:       str(l.Phone),
		Latitude:    f64(l.Latitude),
		Longitude:   f64(l.Longitude),
		HasClasses:  flag(l.HasClasses),
	}
}

// GetResources returns bookable rooms and equipment.
func (c *Connector) GetResources(ctx context.Context) (domain.ListResult[domain.Resource], error) {
	q := driven.Query{}
	return fetchCached(ctx, c.caches.Staff, cacheKey("site.resources", q), func(ctx context.Context) (domain.ListResult[domain.Resource], error) {
		var resp resourcesResponse
		if err := c.gw.Get(ctx, "/site/resources", q, &resp); err != nil {
			return domain.ListResult[domain.Resource]{}, err
		}
		items := make([]domain.Resource, 0, len(resp.Resources))
		for _, r := range resp.Resources {
			items = append(items, domain.Resource{ID: r.id(), Name: r.name()})
		}
		return domain.ListResult[domain.Resource]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

// GetActivationCode returns the site's activation code and approval link.
func (c *Connector) GetActivationCode(ctx context.Context) (domain.ActivationCode, error) {
	return fetchCached(ctx, c.caches.Staff, cacheKey("site.activationcode", nil), func(ctx context.Context) (domain.ActivationCode, error) {
		var resp activationCodeResponse
		if err := c.gw.Get(ctx, "/site/activationcode", nil, &resp); err != nil {
			return domain.ActivationCode{}, err
		}
		return domain.ActivationCode{
			Code: str(resp.ActivationCode),
			Link: str(resp.ActivationLink),
		}, nil
	})
}

// GetPrograms returns the site's programs. ScheduleType defaults to All.
func (c *Connector) GetPrograms(ctx context.Context, filter domain.ProgramFilter) (domain.ListResult[domain.Program], error) {
	scheduleType := filter.ScheduleType
	if scheduleType == "" {
		scheduleType = "All"
	}
	limit := filter.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	q := driven.Query{
		"ScheduleType": scheduleType,
		"OnlineOnly":   filter.OnlineOnly,
		"Limit":        limit,
	}
	return fetchCached(ctx, c.caches.Staff, cacheKey("site.programs", q), func(ctx context.Context) (domain.ListResult[domain.Program], error) {
		var resp programsResponse
		if err := c.gw.Get(ctx, "/site/programs", q, &resp); err != nil {
			return domain.ListResult[domain.Program]{}, err
		}
		items := make([]domain.Program, 0, len(resp.Programs))
		for _, p := range resp.Programs {
			items = append(items, domain.Program{
				ID:             num(p.ID),
				Name:           str(p.Name),
				ScheduleType:   str(p.ScheduleType),
				CancelOffset:   num(p.CancelOffset),
				ContentFormats: p.ContentFormats,
			})
		}
		return domain.ListResult[domain.Program]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}

// GetSessionTypes returns the bookable session types.
func (c *Connector) GetSessionTypes(ctx context.Context, filter domain.SessionTypeFilter) (domain.ListResult[domain.SessionType], error) {
	limit := filter.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	q := driven.Query{
		"ProgramIds": filter.ProgramIDs,
		"OnlineOnly": filter.OnlineOnly,
		"Limit":      limit,
	}
	return fetchCached(ctx, c.caches.Staff, cacheKey("site.sessiontypes", q), func(ctx context.Context) (domain.ListResult[domain.SessionType], error) {
		var resp sessionTypesResponse
		if err := c.gw.Get(ctx, "/site/sessiontypes", q, &resp); err != nil {
			return domain.ListResult[domain.SessionType]{}, err
		}
		items := make([]domain.SessionType, 0, len(resp.SessionTypes))
		for _, s := range resp.SessionTypes {
			items = append(items, domain.SessionType{
				ID:                num(s.ID),
				Name:              str(s.Name),
				Type:              str(s.Type),
				DefaultTimeLength: num(s.DefaultTimeLength),
				NumDeducted:       num(s.NumDeducted),
				ProgramID:         num(s.ProgramID),
				OnlineDescription: str(s.OnlineDescription),
				Category:          str(s.Category),
				Subcategory:       str(s.Subcategory),
			})
		}
		return domain.ListResult[domain.SessionType]{Items: items, Total: resp.PaginationResponse.total(len(items))}, nil
	})
}
