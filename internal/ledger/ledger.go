// Package ledger tracks soft deletions and manual salary corrections for
// shifts that have no store-assigned identifier.
//
// Every operation returns a new Ledger; inputs are never modified.
package ledger

import (
	"sort"

	"github.com/xolan/shiftbook/internal/shift"
)

// ResetPolicy selects what ResetAll clears
type ResetPolicy int

const (
	// ResetExclusions clears both exclusion sets and keeps overrides
	ResetExclusions ResetPolicy = iota
	// ResetEverything also clears overrides
	ResetEverything
)

// Ledger holds the exclusion sets and salary overrides
type Ledger struct {
	// ExcludedDates suppresses every generated retail shift on a date
	ExcludedDates []string `json:"excludedDates"`
	// ExcludedIdentities suppresses individual shifts by identity key
	ExcludedIdentities []string `json:"excludedIdentities"`
	// Overrides maps an identity key to a corrected salary
	Overrides map[string]int `json:"overrides"`
}

// New returns an empty ledger
func New() Ledger {
	return Ledger{
		ExcludedDates:      []string{},
		ExcludedIdentities: []string{},
		Overrides:          map[string]int{},
	}
}

func (l Ledger) clone() Ledger {
	c := Ledger{
		ExcludedDates:      append([]string{}, l.ExcludedDates...),
		ExcludedIdentities: append([]string{}, l.ExcludedIdentities...),
		Overrides:          make(map[string]int, len(l.Overrides)),
	}
	for k, v := range l.Overrides {
		c.Overrides[k] = v
	}
	return c
}

// IsEmpty reports whether the ledger holds no exclusions and no overrides
func (l Ledger) IsEmpty() bool {
	return len(l.ExcludedDates) == 0 && len(l.ExcludedIdentities) == 0 && len(l.Overrides) == 0
}

// Len returns the number of exclusion entries
func (l Ledger) Len() int {
	return len(l.ExcludedDates) + len(l.ExcludedIdentities)
}

// ExcludeByDate hides all generated retail shifts on date.
// This removes every such shift on that date, not only the one the user picked.
func ExcludeByDate(l Ledger, date string) Ledger {
	c := l.clone()
	c.ExcludedDates = addUnique(c.ExcludedDates, date)
	return c
}

// ExcludeByIdentity hides the shifts whose identity key equals key
func ExcludeByIdentity(l Ledger, key string) Ledger {
	c := l.clone()
	c.ExcludedIdentities = addUnique(c.ExcludedIdentities, key)
	return c
}

// SetOverride records a corrected salary for the shifts whose identity key equals key
func SetOverride(l Ledger, key string, salary int) Ledger {
	c := l.clone()
	c.Overrides[key] = salary
	return c
}

// RestoreDate undoes one date exclusion
func RestoreDate(l Ledger, date string) Ledger {
	c := l.clone()
	c.ExcludedDates = remove(c.ExcludedDates, date)
	return c
}

// RestoreIdentity undoes one identity exclusion
func RestoreIdentity(l Ledger, key string) Ledger {
	c := l.clone()
	c.ExcludedIdentities = remove(c.ExcludedIdentities, key)
	return c
}

// ResetAll clears both exclusion sets. Overrides survive unless policy is ResetEverything.
func ResetAll(l Ledger, policy ResetPolicy) Ledger {
	c := New()
	if policy == ResetExclusions {
		for k, v := range l.Overrides {
			c.Overrides[k] = v
		}
	}
	return c
}

// Excludes reports whether s is suppressed by the ledger
func (l Ledger) Excludes(s shift.Shift) bool {
	if s.Addressable() {
		return false
	}
	if s.Kind == shift.KindRetail && contains(l.ExcludedDates, s.Date) {
		return true
	}
	return contains(l.ExcludedIdentities, s.IdentityKey())
}

// Apply drops excluded shifts and replaces the salary of overridden ones.
// Addressable shifts pass through untouched. Apply is idempotent.
func Apply(l Ledger, shifts []shift.Shift) []shift.Shift {
	out := make([]shift.Shift, 0, len(shifts))
	for _, s := range shifts {
		if l.Excludes(s) {
			continue
		}
		if !s.Addressable() {
			if salary, ok := l.Overrides[s.IdentityKey()]; ok {
				s.Salary = salary
			}
		}
		out = append(out, s)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func addUnique(list []string, v string) []string {
	if contains(list, v) {
		return list
	}
	list = append(list, v)
	sort.Strings(list)
	return list
}

func remove(list []string, v string) []string {
	out := list[:0]
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
