package stats

import (
	"regexp"
	"strings"

	"github.com/xolan/shiftbook/internal/normalize"
	"github.com/xolan/shiftbook/internal/shift"
)

const (
	// RetailLocation is the location every retail shift is attributed to
	RetailLocation = "まいばすけっと"
	// UnknownLocation marks a location that could not be recovered
	UnknownLocation = "不明"
)

var (
	workplaceRe   = regexp.MustCompile(`勤務地：(.*?)(?:\s|/|$)`)
	fiscalYearRe  = regexp.MustCompile(`R\d+年度_`)
	annotationsRe = regexp.MustCompile(`（.*?）`)
)

// ExtractLocationName recovers a clean workplace name from a scraped blob.
// "R7年度_中央ふれあい館（埼玉県_川口市）（駐車場なし）" becomes "中央ふれあい館".
func ExtractLocationName(description string) string {
	if description == "" {
		return UnknownLocation
	}

	raw := description
	if m := workplaceRe.FindStringSubmatch(description); m != nil {
		raw = m[1]
	}
	raw = fiscalYearRe.ReplaceAllString(raw, "")
	raw = annotationsRe.ReplaceAllString(raw, "")
	return strings.TrimSpace(raw)
}

// LocationName derives the collection name of a shift: a fixed name for
// retail, the cleaned workplace for tutoring, the title otherwise.
func LocationName(s shift.Shift) string {
	switch s.Kind {
	case shift.KindRetail:
		return RetailLocation
	case shift.KindTutor:
		src := s.Description
		if src == "" || src == normalize.ManualDescription || src == normalize.RemoteDescription {
			src = s.Title
		}
		return ExtractLocationName(src)
	default:
		return s.Title
	}
}

func countable(name string) bool {
	return name != "" && name != UnknownLocation
}

// RecomputeLocationStats adds never-seen locations from shifts to prev and
// recounts every entry from scratch. prev is returned as-is, with changed
// false, when the result would be equal to it.
func RecomputeLocationStats(prev []shift.LocationStat, shifts []shift.Shift) (stats []shift.LocationStat, changed bool) {
	next := make([]shift.LocationStat, len(prev), len(prev)+4)
	copy(next, prev)

	index := make(map[string]int, len(next))
	for i, l := range next {
		index[l.Name] = i
	}

	names := make([]string, len(shifts))
	for i, s := range shifts {
		name := LocationName(s)
		names[i] = name
		if !countable(name) {
			continue
		}
		if _, seen := index[name]; !seen {
			index[name] = len(next)
			next = append(next, shift.LocationStat{Name: name, Count: 0, LastVisited: s.Date})
		}
	}

	for i := range next {
		next[i].Count = 0
	}
	for i, s := range shifts {
		j, ok := index[names[i]]
		if !ok || !countable(names[i]) {
			continue
		}
		next[j].Count++
		if s.Date > next[j].LastVisited {
			next[j].LastVisited = s.Date
		}
	}

	if equalStats(prev, next) {
		return prev, false
	}
	return next, true
}

func equalStats(a, b []shift.LocationStat) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Discovered counts the locations that have at least one shift
func Discovered(stats []shift.LocationStat) int {
	n := 0
	for _, l := range stats {
		if l.Count > 0 {
			n++
		}
	}
	return n
}
