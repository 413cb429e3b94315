package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Areas is the top-level aggregate: every imported Area keyed by local
// authority code. It owns the format parsers (see populate.go) and the text
// and JSON renderings of the whole model. It is not safe for concurrent
// mutation; ingestion is a single sequential pass per dataset.
type Areas struct {
	areas map[string]*Area
}

// NewAreas creates an empty aggregate.
func NewAreas() *Areas {
	return &Areas{areas: make(map[string]*Area)}
}

// SetArea inserts an Area, or merges into the existing Area with the same
// code. The incoming Area's data takes precedence on any conflict.
func (as *Areas) SetArea(area *Area) {
	existing, ok := as.areas[area.LocalAuthorityCode()]
	if !ok {
		as.areas[area.LocalAuthorityCode()] = area
		return
	}
	existing.Merge(area)
}

// GetArea returns the Area for a local authority code, or ErrNotFound.
func (as *Areas) GetArea(localAuthorityCode string) (*Area, error) {
	a, ok := as.areas[localAuthorityCode]
	if !ok {
		return nil, fmt.Errorf("no area found matching %s: %w", localAuthorityCode, ErrNotFound)
	}
	return a, nil
}

// Size returns the number of Areas.
func (as *Areas) Size() int { return len(as.areas) }

// sortedCodes returns the local authority codes in ascending lexicographic
// order, the enumeration order for all output.
func (as *Areas) sortedCodes() []string {
	codes := make([]string, 0, len(as.areas))
	for c := range as.areas {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// areaJSON is the serialized shape of one Area:
// {"names": {lang: name}, "measures": {codename: {year: value}}}.
type areaJSON struct {
	Names    map[string]string   `json:"names"`
	Measures map[string]*Measure `json:"measures"`
}

// MarshalJSON encodes the aggregate as an object keyed by area code. Map
// keys are emitted in sorted order, so the output is deterministic.
func (as *Areas) MarshalJSON() ([]byte, error) {
	out := make(map[string]areaJSON, len(as.areas))
	for code, a := range as.areas {
		out[code] = areaJSON{Names: a.names, Measures: a.measures}
	}
	return json.Marshal(out)
}

// ToJSON returns the compact JSON rendering of the whole aggregate. An empty
// aggregate serializes to "{}".
func (as *Areas) ToJSON() (string, error) {
	b, err := json.Marshal(as)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// String renders every Area's text block in ascending code order, blocks
// separated by a blank line.
func (as *Areas) String() string {
	var b strings.Builder
	for i, code := range as.sortedCodes() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(as.areas[code].String())
	}
	return b.String()
}
