package domain

import (
	"fmt"
	"strings"
)

// YearCutoff is the first year rejected by year validation. StatsWales
// publishes complete local-authority series up to 2020; anything at or past
// the cutoff is treated as a typo rather than a future request.
const YearCutoff = 2021

// StringFilter is a set of codes to import. An empty (or nil) filter matches
// everything.
type StringFilter map[string]struct{}

// NewStringFilter builds a filter from the given values.
func NewStringFilter(values ...string) StringFilter {
	f := make(StringFilter, len(values))
	for _, v := range values {
		f[v] = struct{}{}
	}
	return f
}

// Empty reports whether the filter matches everything.
func (f StringFilter) Empty() bool { return len(f) == 0 }

// Matches reports whether value is in the filter, or the filter is empty.
// Matching is case-sensitive; area codes are compared exactly as they appear
// in the source data.
func (f StringFilter) Matches(value string) bool {
	if f.Empty() {
		return true
	}
	_, ok := f[value]
	return ok
}

// MatchesFold is the case-insensitive variant used for measure codenames.
func (f StringFilter) MatchesFold(value string) bool {
	if f.Empty() {
		return true
	}
	for v := range f {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}

// YearRange is an inclusive [Start, End] year filter. The zero value (0,0)
// means unbounded.
type YearRange struct {
	Start int
	End   int
}

// Unbounded reports whether the range matches all years.
func (r YearRange) Unbounded() bool { return r.Start == 0 && r.End == 0 }

// Contains reports whether year falls inside the range, or the range is
// unbounded.
func (r YearRange) Contains(year int) bool {
	if r.Unbounded() {
		return true
	}
	return year >= r.Start && year <= r.End
}

// Filter bundles the three independent restrictions threaded through a
// populate call. The zero value imports everything.
type Filter struct {
	Areas    StringFilter
	Measures StringFilter
	Years    YearRange
}

// ValidateYear converts a year string to an int. The literal "0" is the
// "no filter" sentinel and is always valid. Any other value must be exactly
// four digits and denote a year before YearCutoff.
func ValidateYear(s string) (int, error) {
	if s == "0" {
		return 0, nil
	}
	if len(s) != 4 {
		return 0, fmt.Errorf("year %q is not a four digit year: %w", s, ErrValidation)
	}
	year := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("year %q contains a non-digit character: %w", s, ErrValidation)
		}
		year = year*10 + int(c-'0')
	}
	if year >= YearCutoff {
		return 0, fmt.Errorf("year %d is at or after the %d cutoff: %w", year, YearCutoff, ErrValidation)
	}
	return year, nil
}
