package normalize

import (
	"github.com/xolan/shiftbook/internal/shift"
)

// RemoteDescription is used for table rows stored without a description
const RemoteDescription = "Manual Entry (remote)"

// Row is a shift as stored in the shifts table, keyed by column name
type Row struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Title       string  `json:"title"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Location    *string `json:"location"`
	Salary      int     `json:"salary"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
	HourlyRate  *int    `json:"hourly_rate"`
}

// FromRemote maps a table row to a shift. Unknown types fall back to OtherHourly.
func FromRemote(r Row) shift.Shift {
	kind, err := shift.ParseKind(r.Type)
	if err != nil {
		kind = shift.KindOther
	}
	s := shift.Shift{
		SourceID:      r.ID,
		Date:          r.Date,
		Title:         r.Title,
		Salary:        r.Salary,
		Kind:          kind,
		StartTime:     deref(r.StartTime),
		EndTime:       deref(r.EndTime),
		LocationLabel: deref(r.Location),
		Description:   deref(r.Description),
	}
	if s.Description == "" {
		s.Description = RemoteDescription
	}
	if r.HourlyRate != nil {
		s.HourlyRate = *r.HourlyRate
	}
	return s
}

// ToRemote maps a shift to a table row; empty optional fields become NULL
func ToRemote(s shift.Shift) Row {
	r := Row{
		ID:          s.SourceID,
		Date:        s.Date,
		Title:       s.Title,
		StartTime:   ref(s.StartTime),
		EndTime:     ref(s.EndTime),
		Location:    ref(s.LocationLabel),
		Salary:      s.Salary,
		Type:        string(s.Kind),
		Description: ref(s.Description),
	}
	if s.HourlyRate > 0 {
		rate := s.HourlyRate
		r.HourlyRate = &rate
	}
	return r
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ref(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
