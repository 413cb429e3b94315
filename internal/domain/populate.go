package domain

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SourceFormat identifies the shape of a dataset file. The set is closed;
// Populate dispatches over it exhaustively, so a new format is a
// compile-visible extension point.
type SourceFormat int

const (
	// AuthorityCodeCSV is the bootstrap areas file: a header line, then one
	// row per area of code, English name, Welsh name.
	AuthorityCodeCSV SourceFormat = iota

	// AuthorityByYearCSV is a wide CSV: a header of year columns after the
	// code column, one row per area, a single measure per file.
	AuthorityByYearCSV

	// WelshStatsJSON is the StatsWales OData export: a JSON document whose
	// "value" key holds flat records.
	WelshStatsJSON
)

// String returns the format name used in logs and errors.
func (f SourceFormat) String() string {
	switch f {
	case AuthorityCodeCSV:
		return "AuthorityCodeCSV"
	case AuthorityByYearCSV:
		return "AuthorityByYearCSV"
	case WelshStatsJSON:
		return "WelshStatsJSON"
	default:
		return fmt.Sprintf("SourceFormat(%d)", int(f))
	}
}

// SourceColumn is a logical role in a dataset, resolved to a literal column
// or key name by a ColumnMapping.
type SourceColumn int

const (
	// AuthCode is the local authority code column/key.
	AuthCode SourceColumn = iota
	// AuthNameEng is the English area name.
	AuthNameEng
	// AuthNameCym is the Welsh area name (CSV sources only).
	AuthNameCym
	// MeasureCode is the measure codename key in StatsWales records.
	MeasureCode
	// MeasureName is the measure label key in StatsWales records.
	MeasureName
	// YearCol is the (string-encoded) year key in StatsWales records.
	YearCol
	// SingleMeasureCode carries the codename itself for wide CSV files,
	// which have no measure column.
	SingleMeasureCode
	// SingleMeasureName carries the label for the same.
	SingleMeasureName
)

// ColumnMapping resolves logical roles to the literal column/key names of a
// specific source file. Mappings are supplied per dataset, never inferred.
type ColumnMapping map[SourceColumn]string

// minColumns returns the smallest mapping a format can be parsed with.
func minColumns(format SourceFormat) int {
	if format == WelshStatsJSON {
		return 6
	}
	return 3
}

// Populate reads one dataset from r into the aggregate, dispatching on
// format and applying the filter during parsing. The stream is buffered
// fully before processing. It fails with ErrConfig when the column mapping
// is too small for the format, and with ErrParse when the stream is
// unreadable or empty, the content is malformed, or the format is not one of
// the three known values. The first fatal condition aborts the whole
// dataset; rows are never individually skipped on error.
func (as *Areas) Populate(r io.Reader, format SourceFormat, cols ColumnMapping, filter Filter) error {
	if len(cols) < minColumns(format) {
		return fmt.Errorf("%s needs at least %d mapped columns, got %d: %w",
			format, minColumns(format), len(cols), ErrConfig)
	}

	if r == nil {
		return fmt.Errorf("no input stream: %w", ErrParse)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input stream: %w: %v", ErrParse, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("input stream has no content: %w", ErrParse)
	}

	switch format {
	case AuthorityCodeCSV:
		return as.populateFromAuthorityCodeCSV(data, filter.Areas)
	case AuthorityByYearCSV:
		return as.populateFromAuthorityByYearCSV(data, cols, filter)
	case WelshStatsJSON:
		return as.populateFromWelshStatsJSON(data, cols, filter)
	default:
		return fmt.Errorf("unexpected source format %s: %w", format, ErrParse)
	}
}

// PopulateAll is the no-filter convenience used to bootstrap the area names.
// It accepts only AuthorityCodeCSV and fails with ErrParse for any other
// format.
func (as *Areas) PopulateAll(r io.Reader, format SourceFormat, cols ColumnMapping) error {
	if format != AuthorityCodeCSV {
		return fmt.Errorf("unfiltered populate only supports %s, got %s: %w",
			AuthorityCodeCSV, format, ErrParse)
	}
	return as.Populate(r, format, cols, Filter{})
}

// splitFirstField returns the text before the first comma and the remainder
// after it. The source CSVs carry no quoting or escaping, so commas inside
// values are not supported (a documented limitation of the format).
func splitFirstField(line string) (field, rest string) {
	if i := strings.IndexByte(line, ','); i >= 0 {
		return line[:i], line[i+1:]
	}
	return line, ""
}

// csvLines splits raw bytes into lines, dropping trailing carriage returns
// and any final empty line.
func csvLines(data []byte) []string {
	lines := strings.Split(string(data), "\n")
	out := lines[:0]
	for _, l := range lines {
		l = strings.TrimSuffix(l, "\r")
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// populateFromAuthorityCodeCSV parses the areas file: header discarded, then
// code, English name, Welsh name per row. Rows are gated by the area filter.
func (as *Areas) populateFromAuthorityCodeCSV(data []byte, areasFilter StringFilter) error {
	lines := csvLines(data)

	// Header only: a name file with no rows is fine, just empty.
	for _, line := range lines[1:] {
		code, rest := splitFirstField(line)
		if !areasFilter.Matches(code) {
			continue
		}
		eng, rest := splitFirstField(rest)
		cym, _ := splitFirstField(rest)

		area := NewArea(code)
		area.SetName("eng", eng)
		area.SetName("cym", cym)
		as.SetArea(area)
	}
	return nil
}

// welshStatsDataKey is the fixed key StatsWales exports hold the numeric
// reading under; it is not part of the per-dataset column mapping.
const welshStatsDataKey = "Data"

// populateFromWelshStatsJSON parses a StatsWales OData export. Each record
// under "value" contributes one (area, measure, year, value) observation.
// Areas are created on first sight with their English name; the Welsh name
// is not present in this format. The year is validated exactly like the CLI
// year argument. A reading is only recorded when the year passes the range
// filter, but the measure itself (codename and label) is still merged in, so
// a fully filtered measure renders as <no data>.
func (as *Areas) populateFromWelshStatsJSON(data []byte, cols ColumnMapping, filter Filter) error {
	var doc struct {
		Value []map[string]any `json:"value"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("malformed StatsWales JSON: %w: %v", ErrParse, err)
	}
	if doc.Value == nil {
		return fmt.Errorf("StatsWales JSON has no %q array: %w", "value", ErrParse)
	}

	for i, record := range doc.Value {
		code, err := stringField(record, cols[AuthCode], i)
		if err != nil {
			return err
		}
		if !filter.Areas.Matches(code) {
			continue
		}

		if _, err := as.GetArea(code); err != nil {
			engName, err := stringField(record, cols[AuthNameEng], i)
			if err != nil {
				return err
			}
			area := NewArea(code)
			area.SetName("eng", engName)
			as.SetArea(area)
		}

		measureCode, err := stringField(record, cols[MeasureCode], i)
		if err != nil {
			return err
		}
		if !filter.Measures.MatchesFold(measureCode) {
			continue
		}
		measureName, err := stringField(record, cols[MeasureName], i)
		if err != nil {
			return err
		}
		yearStr, err := stringField(record, cols[YearCol], i)
		if err != nil {
			return err
		}
		year, err := ValidateYear(yearStr)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		value, ok := record[welshStatsDataKey].(float64)
		if !ok {
			return fmt.Errorf("record %d has no numeric %q value: %w", i, welshStatsDataKey, ErrParse)
		}

		measure := NewMeasure(measureCode, measureName)
		if filter.Years.Contains(year) {
			measure.SetValue(year, value)
		}

		area, err := as.GetArea(code)
		if err != nil {
			return err
		}
		area.SetMeasure(measureCode, measure)
	}
	return nil
}

// stringField extracts a required string key from a StatsWales record.
func stringField(record map[string]any, key string, index int) (string, error) {
	v, ok := record[key].(string)
	if !ok {
		return "", fmt.Errorf("record %d has no string value for key %q: %w", index, key, ErrParse)
	}
	return v, nil
}

// populateFromAuthorityByYearCSV parses a wide CSV holding one measure: the
// header is the code column followed by year labels, each row an area's
// values for those years. The file's single measure is identified by the
// SingleMeasureCode/SingleMeasureName mapping entries; when the measure
// filter excludes it, the whole file is skipped. Empty cells record nothing.
// Area names are not present in this format; they are expected from a prior
// AuthorityCodeCSV load.
func (as *Areas) populateFromAuthorityByYearCSV(data []byte, cols ColumnMapping, filter Filter) error {
	measureCode := cols[SingleMeasureCode]
	if measureCode == "" {
		return fmt.Errorf("no single-measure codename mapped for wide CSV: %w", ErrConfig)
	}
	if !filter.Measures.MatchesFold(measureCode) {
		return nil
	}

	lines := csvLines(data)
	_, header := splitFirstField(lines[0])
	if header == "" {
		return fmt.Errorf("wide CSV header has no year columns: %w", ErrParse)
	}
	labels := strings.Split(header, ",")
	years := make([]int, len(labels))
	for i, label := range labels {
		year, err := ValidateYear(label)
		if err != nil {
			return fmt.Errorf("header year column %d: %w", i+1, err)
		}
		years[i] = year
	}

	for _, line := range lines[1:] {
		code, rest := splitFirstField(line)
		if !filter.Areas.Matches(code) {
			continue
		}

		measure := NewMeasure(measureCode, cols[SingleMeasureName])
		for _, year := range years {
			var cell string
			cell, rest = splitFirstField(rest)
			if cell == "" {
				continue
			}
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return fmt.Errorf("area %s year %d has non-numeric value %q: %w", code, year, cell, ErrParse)
			}
			if filter.Years.Contains(year) {
				measure.SetValue(year, value)
			}
		}

		if _, err := as.GetArea(code); err != nil {
			as.SetArea(NewArea(code))
		}
		area, err := as.GetArea(code)
		if err != nil {
			return err
		}
		area.SetMeasure(measureCode, measure)
	}
	return nil
}
