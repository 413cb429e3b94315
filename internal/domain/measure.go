package domain

import (
	"encoding/json"
	"fmt"
	"maps"
	"sort"
	"strconv"
	"strings"
)

// Measure is a named statistical indicator tracked over multiple years for
// one area. The codename identifies it within an Area and is lowercased at
// construction; the label is the human-readable display name and never
// affects identity.
type Measure struct {
	codename string
	label    string
	readings map[int]float64
}

// NewMeasure creates an empty Measure. The codename is normalized to
// lowercase; the label is stored unchanged.
func NewMeasure(codename, label string) *Measure {
	return &Measure{
		codename: strings.ToLower(codename),
		label:    label,
		readings: make(map[int]float64),
	}
}

// Codename returns the lowercase codename.
func (m *Measure) Codename() string { return m.codename }

// Label returns the display name.
func (m *Measure) Label() string { return m.label }

// SetLabel replaces the display name. The codename is unaffected.
func (m *Measure) SetLabel(label string) { m.label = label }

// SetValue records a reading for a year, replacing any existing value.
func (m *Measure) SetValue(year int, value float64) {
	m.readings[year] = value
}

// Value returns the reading for a year, or ErrNotFound if none is set.
func (m *Measure) Value(year int) (float64, error) {
	v, ok := m.readings[year]
	if !ok {
		return 0, fmt.Errorf("no value found for year %d: %w", year, ErrNotFound)
	}
	return v, nil
}

// Size returns the number of years with a reading.
func (m *Measure) Size() int { return len(m.readings) }

// years returns the reading years in ascending order.
func (m *Measure) years() []int {
	ys := make([]int, 0, len(m.readings))
	for y := range m.readings {
		ys = append(ys, y)
	}
	sort.Ints(ys)
	return ys
}

// Average returns the mean of all readings, or 0 when there are none.
func (m *Measure) Average() float64 {
	if len(m.readings) == 0 {
		return 0
	}
	var sum float64
	for _, v := range m.readings {
		sum += v
	}
	return sum / float64(len(m.readings))
}

// Difference returns the reading at the latest year minus the reading at the
// earliest year, or 0 when there are no readings. With a single reading the
// earliest and latest year coincide, so the difference is 0.
func (m *Measure) Difference() float64 {
	ys := m.years()
	if len(ys) == 0 {
		return 0
	}
	return m.readings[ys[len(ys)-1]] - m.readings[ys[0]]
}

// DifferenceAsPercentage returns Difference as a percentage of the
// earliest-year reading. Returns 0 whenever the difference itself is 0,
// which also covers the empty case. When the earliest reading is 0 and the
// difference is not, the division yields ±Inf; downstream output depends on
// this exact behaviour, so it is kept.
func (m *Measure) DifferenceAsPercentage() float64 {
	diff := m.Difference()
	if diff == 0 {
		return 0
	}
	return diff / m.readings[m.years()[0]] * 100
}

// Merge folds other's readings into m. A year present in both takes other's
// value; years only in m are kept. Only m is mutated.
func (m *Measure) Merge(other *Measure) {
	maps.Copy(m.readings, other.readings)
}

// Equal reports whether two Measures have the same codename, label, and
// readings.
func (m *Measure) Equal(other *Measure) bool {
	return m.codename == other.codename &&
		m.label == other.label &&
		maps.Equal(m.readings, other.readings)
}

// MarshalJSON encodes the readings as {"<year>": value}. String keys are
// emitted in lexicographic order, which for four-digit years is ascending.
func (m *Measure) MarshalJSON() ([]byte, error) {
	out := make(map[string]float64, len(m.readings))
	for y, v := range m.readings {
		out[strconv.Itoa(y)] = v
	}
	return json.Marshal(out)
}

// String renders the measure as an aligned table fragment:
//
//	Population (pop)
//	        1991         1992      Average        Diff.      % Diff.
//	69123.000000 69379.000000 69251.000000   256.000000     0.370357
//
// Years appear in ascending order; each column is right-aligned to the wider
// of its header and its 6-decimal value. An empty measure renders only the
// label line followed by a <no data> marker.
func (m *Measure) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", m.label, m.codename)

	ys := m.years()
	if len(ys) == 0 {
		b.WriteString("<no data>\n")
		return b.String()
	}

	headers := make([]string, 0, len(ys)+3)
	values := make([]string, 0, len(ys)+3)
	for _, y := range ys {
		headers = append(headers, strconv.Itoa(y))
		values = append(values, strconv.FormatFloat(m.readings[y], 'f', 6, 64))
	}
	headers = append(headers, "Average", "Diff.", "% Diff.")
	values = append(values,
		strconv.FormatFloat(m.Average(), 'f', 6, 64),
		strconv.FormatFloat(m.Difference(), 'f', 6, 64),
		strconv.FormatFloat(m.DifferenceAsPercentage(), 'f', 6, 64))

	for i := range headers {
		if w := len(values[i]); w > len(headers[i]) {
			headers[i] = strings.Repeat(" ", w-len(headers[i])) + headers[i]
		} else if w < len(headers[i]) {
			values[i] = strings.Repeat(" ", len(headers[i])-w) + values[i]
		}
	}

	b.WriteString(strings.Join(headers, " "))
	b.WriteByte('\n')
	b.WriteString(strings.Join(values, " "))
	b.WriteByte('\n')
	return b.String()
}
