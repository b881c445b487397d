package models

// Prospect represents an externally discovered business lead. Rows are
// produced by the discovery pipeline; this application only reads them for
// display and outreach.
type Prospect struct {
	ID                  string   `json:"id"` // UUID
	Name                string   `json:"name"`
	City                string   `json:"city,omitempty"`
	Category            string   `json:"category,omitempty"`
	Phone               string   `json:"phone,omitempty"`
	Website             string   `json:"website,omitempty"`
	AutomationNeedScore int      `json:"automation_need_score"` // 0-100
	ScoreReasons        []string `json:"score_reasons,omitempty"`
	PrimaryEmail        string   `json:"primary_email,omitempty"`
	Emails              []string `json:"emails,omitempty"`
	LinkedinURL         string   `json:"linkedin_url,omitempty"`
	FacebookURL         string   `json:"facebook_url,omitempty"`
	InstagramURL        string   `json:"instagram_url,omitempty"`
	TwitterURL          string   `json:"twitter_url,omitempty"`

	// Enrichment fields, present when the discovery run probed the website
	CMS               string   `json:"cms,omitempty"`
	HasBookingSystem  *bool    `json:"has_booking_system,omitempty"`
	HasLiveChat       *bool    `json:"has_live_chat,omitempty"`
	EmployeeCount     *int     `json:"employee_count,omitempty"`
	FoundedYear       *int     `json:"founded_year,omitempty"`
	WebsiteVerified   *bool    `json:"website_verified,omitempty"`
	WebsiteTrustScore *int     `json:"website_trust_score,omitempty"`
	WebsiteFlags      []string `json:"website_flags,omitempty"`

	DiscoveredAt int64 `json:"discovered_at"` // Unix timestamp
	LastSeenAt   int64 `json:"last_seen_at"`  // Unix timestamp
}

// BestEmail returns the prospect's primary email, falling back to the first
// additional address when no primary is set.
func (p *Prospect) BestEmail() string {
	if p.PrimaryEmail != "" {
		return p.PrimaryEmail
	}
	if len(p.Emails) > 0 {
		return p.Emails[0]
	}
	return ""
}
