package mindbody

import "strings"

// paginationResponse is the shared list-envelope pagination block.
type paginationResponse struct {
	RequestedLimit  *int `json:"RequestedLimit"`
	RequestedOffset *int `json:"RequestedOffset"`
	PageSize        *int `json:"PageSize"`
	TotalResults    *int `json:"TotalResults"`
}

// total returns the upstream total when reported, falling back to the
// number of items actually received.
func (p *paginationResponse) total(received int) int {
	if p != nil && p.TotalResults != nil {
		return *p.TotalResults
	}
	return received
}

// rawRef is the minimal nested {Id, Name} object many payloads embed.
type rawRef struct {
	ID   *int    `json:"Id"`
	Name *string `json:"Name"`
}

func (r *rawRef) id() int {
	if r == nil || r.ID == nil {
		return 0
	}
	return *r.ID
}

func (r *rawRef) name() string {
	if r == nil || r.Name == nil {
		return ""
	}
	return *r.Name
}

// Upstream fields are all treated as optional. These helpers collapse nil
// pointers to explicit defaults so missing fields can never panic a mapping.

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func f64(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func flag(p *bool) bool {
	return p != nil && *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// displayName prefers the upstream Name field, assembling one from the
// first and last names when it is absent.
func displayName(name, first, last *string) string {
	if n := str(name); n != "" {
		return n
	}
	return strings.TrimSpace(str(first) + " " + str(last))
}
