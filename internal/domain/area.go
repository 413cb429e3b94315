package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Area is a single administrative region: a local authority code, its
// display names by language, and its measures by codename.
type Area struct {
	code     string
	names    map[string]string
	measures map[string]*Measure
}

// NewArea creates an Area with no names or measures. The code is fixed for
// the Area's lifetime.
func NewArea(localAuthorityCode string) *Area {
	return &Area{
		code:     localAuthorityCode,
		names:    make(map[string]string),
		measures: make(map[string]*Measure),
	}
}

// LocalAuthorityCode returns the area's code.
func (a *Area) LocalAuthorityCode() string { return a.code }

// SetName records a display name for a language code (e.g. "eng", "cym"),
// replacing any existing name for that language.
func (a *Area) SetName(languageCode, name string) {
	a.names[languageCode] = name
}

// Name returns the display name for a language code, or ErrNotFound.
func (a *Area) Name(languageCode string) (string, error) {
	n, ok := a.names[languageCode]
	if !ok {
		return "", fmt.Errorf("no %s name for area %s: %w", languageCode, a.code, ErrNotFound)
	}
	return n, nil
}

// SetMeasure adds a measure under the given codename. If one already exists
// it is merged with the incoming measure's readings taking precedence; the
// incoming label also wins.
func (a *Area) SetMeasure(codename string, m *Measure) {
	key := strings.ToLower(codename)
	existing, ok := a.measures[key]
	if !ok {
		a.measures[key] = m
		return
	}
	existing.Merge(m)
	existing.SetLabel(m.Label())
}

// Measure returns the measure for a codename (case-insensitive), or
// ErrNotFound.
func (a *Area) Measure(codename string) (*Measure, error) {
	m, ok := a.measures[strings.ToLower(codename)]
	if !ok {
		return nil, fmt.Errorf("no measure %q in area %s: %w", codename, a.code, ErrNotFound)
	}
	return m, nil
}

// Size returns the number of measures.
func (a *Area) Size() int { return len(a.measures) }

// Merge folds other into a, with other as the authoritative side: names with
// the same language code are overwritten, measures with the same codename
// are merged with other's readings winning, and everything present only in a
// is kept.
func (a *Area) Merge(other *Area) {
	for lang, name := range other.names {
		a.names[lang] = name
	}
	for codename, m := range other.measures {
		a.SetMeasure(codename, m)
	}
}

// Equal reports whether two Areas have the same code, names, and measures.
func (a *Area) Equal(other *Area) bool {
	if a.code != other.code || len(a.names) != len(other.names) || len(a.measures) != len(other.measures) {
		return false
	}
	for lang, name := range a.names {
		if other.names[lang] != name {
			return false
		}
	}
	for codename, m := range a.measures {
		om, ok := other.measures[codename]
		if !ok || !m.Equal(om) {
			return false
		}
	}
	return true
}

// sortedNames returns the display names with the English name first and the
// rest in ascending language-code order, giving the reference
// "English / Welsh" header ordering.
func (a *Area) sortedNames() []string {
	langs := make([]string, 0, len(a.names))
	for lang := range a.names {
		if lang != "eng" {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	if _, ok := a.names["eng"]; ok {
		langs = append([]string{"eng"}, langs...)
	}
	names := make([]string, len(langs))
	for i, lang := range langs {
		names[i] = a.names[lang]
	}
	return names
}

// sortedCodenames returns the measure codenames in ascending order.
func (a *Area) sortedCodenames() []string {
	codes := make([]string, 0, len(a.measures))
	for c := range a.measures {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// String renders the area header line followed by each measure's table in
// ascending codename order, blank-line separated:
//
//	Isle of Anglesey / Ynys Môn (W06000001)
//	Land area (area)
//	...
func (a *Area) String() string {
	var b strings.Builder
	if names := a.sortedNames(); len(names) > 0 {
		b.WriteString(strings.Join(names, " / "))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "(%s)\n", a.code)

	for _, codename := range a.sortedCodenames() {
		b.WriteByte('\n')
		b.WriteString(a.measures[codename].String())
	}
	return b.String()
}
