package models

// PackageUpdate represents one Dependabot version bump of a Drupal package
type PackageUpdate struct {
	// Name is the full composer package name, e.g. "drupal/token"
	Name string
	// Project is the drupal.org project machine name, e.g. "token"
	Project string
	// From and To are the versions as reported by Dependabot
	From string
	To   string
}

// ChangeEntry represents a single changelog item
type ChangeEntry struct {
	NID     string `json:"nid"`
	Link    string `json:"link"`
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

// ChangeGroup represents a server-sorted bucket of entries sharing a category
type ChangeGroup struct {
	Type    string        `json:"type"`
	Changes []ChangeEntry `json:"changes"`
}

// ChangeRecord represents a supplementary change-record link. The upstream
// API has used both title/url and summary/link for the same fields.
type ChangeRecord struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
	Link    string `json:"link"`
}

// Changelog represents the changelog API response for one package update
type Changelog struct {
	Changes       []ChangeGroup  `json:"changes"`
	ChangeRecords []ChangeRecord `json:"changeRecords"`
}

// DisplayTitle returns the record title regardless of field-naming convention
func (r ChangeRecord) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Summary
}

// DisplayURL returns the record URL regardless of field-naming convention
func (r ChangeRecord) DisplayURL() string {
	if r.URL != "" {
		return r.URL
	}
	return r.Link
}
