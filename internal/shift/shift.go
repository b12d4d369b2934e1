package shift

import "fmt"

// Kind selects the wage rule that produced a shift's salary
type Kind string

const (
	// KindTutor is a contracted per-diem tutoring job
	KindTutor Kind = "tutor"
	// KindRetail is the recurring retail job paid on the tiered scale
	KindRetail Kind = "retail"
	// KindOther is a freely typed job priced by an hourly rate
	KindOther Kind = "other"
)

// Kinds lists every kind in display order
var Kinds = []Kind{KindTutor, KindRetail, KindOther}

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	switch k {
	case KindTutor, KindRetail, KindOther:
		return true
	}
	return false
}

// Label returns the human-readable name of the kind
func (k Kind) Label() string {
	switch k {
	case KindTutor:
		return "Tutor"
	case KindRetail:
		return "Retail"
	case KindOther:
		return "Other"
	}
	return string(k)
}

// ParseKind accepts the canonical names plus the aliases used by older data
// ("Tutor", "MyBasket", "Other", "contract-job", "mybasket").
func ParseKind(s string) (Kind, error) {
	switch s {
	case "tutor", "Tutor", "contract-job", "try":
		return KindTutor, nil
	case "retail", "Retail", "MyBasket", "mybasket":
		return KindRetail, nil
	case "other", "Other", "hourly":
		return KindOther, nil
	}
	return "", fmt.Errorf("unknown shift kind %q", s)
}

// Shift represents a single normalized unit of work
type Shift struct {
	Date          string `json:"date"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Salary        int    `json:"salary"`
	Kind          Kind   `json:"kind"`
	StartTime     string `json:"startTime,omitempty"`
	EndTime       string `json:"endTime,omitempty"`
	HourlyRate    int    `json:"hourlyRate,omitempty"`
	LocationLabel string `json:"locationLabel,omitempty"`
	SourceID      string `json:"sourceId,omitempty"`
}

// Addressable reports whether the shift carries a store-assigned identifier.
// Addressable shifts are edited and deleted by that identifier and never
// enter the exclusion ledger.
func (s Shift) Addressable() bool {
	return s.SourceID != ""
}

// IdentityKey returns the fallback identity used for shifts without a
// SourceID: date, start time, end time and title joined by underscores.
// Two shifts sharing all four fields collide.
func (s Shift) IdentityKey() string {
	return IdentityKey(s.Date, s.StartTime, s.EndTime, s.Title)
}

// IdentityKey builds the fallback identity key from its parts
func IdentityKey(date, start, end, title string) string {
	return date + "_" + start + "_" + end + "_" + title
}

// SameIdentity reports whether two shifts share the fallback identity tuple
func (s Shift) SameIdentity(o Shift) bool {
	return s.Date == o.Date && s.StartTime == o.StartTime && s.EndTime == o.EndTime && s.Title == o.Title
}

// RawExternalRecord is one job listing produced by the schedule scraper
type RawExternalRecord struct {
	Details   string `json:"details"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Type      string `json:"type,omitempty"`
	Salary    *int   `json:"salary,omitempty"`
	Location  string `json:"location,omitempty"`
}

// IsRetail reports whether the scraper classified the record as the retail job
func (r RawExternalRecord) IsRetail() bool {
	return r.Type == "retail" || r.Type == "mybasket"
}

// CreateRequest is a locally authored shift as entered in a form
type CreateRequest struct {
	Date       string
	Title      string
	Kind       Kind
	StartTime  string
	EndTime    string
	HourlyRate int
	// Amount is the literal salary for manually priced tutoring shifts
	Amount   int
	Location string
}

// LocationStat tallies the visits to one discovered work location
type LocationStat struct {
	Name        string `json:"name"`
	Count       int    `json:"count"`
	LastVisited string `json:"lastVisited"`
}
