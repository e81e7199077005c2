package mindbody

// DefaultBaseURL is the production Mindbody Public API v6 endpoint.
const DefaultBaseURL = "https://api.mindbodyonline.com/public/v6"

// Credentials holds everything needed to authenticate against a single
// Mindbody site. APIKey and SiteID travel on every request as headers;
// SourceName and SourcePassword are exchanged for a short-lived user token.
type Credentials struct {
	APIKey         string
	SiteID         string
	SourceName     string
	SourcePassword string
	BaseURL        string
}

// Configured reports whether all four required credential fields are set.
func (c Credentials) Configured() bool {
	return c.APIKey != "" && c.SiteID != "" && c.SourceName != "" && c.SourcePassword != ""
}

// baseURL returns the configured base URL, falling back to production.
func (c Credentials) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}
