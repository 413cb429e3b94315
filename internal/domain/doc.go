// Package domain models Welsh Government statistical data as published on
// StatsWales, keyed by local authority.
//
// # Data sources
//
// Three source shapes are ingested, dispatched by [SourceFormat]:
//
//	AuthorityCodeCSV    the compiled areas file: one row per local authority
//	                    with its code, English name, and Welsh name. The
//	                    header row is fixed and discarded.
//	WelshStatsJSON      a StatsWales OData export: a JSON document with the
//	                    observations as flat records under the top-level
//	                    "value" key. Column names vary per dataset and are
//	                    supplied through a [ColumnMapping]; the numeric
//	                    reading always sits under the fixed "Data" key.
//	AuthorityByYearCSV  a wide CSV for a single measure: year columns after
//	                    the code column, one row per authority. These files
//	                    carry no area names.
//
// None of the CSV sources use quoting or escaping, so commas inside values
// are unsupported; rows are consumed field by field with a pure first-field
// split.
//
// # Model
//
// [Areas] maps local authority code to [Area]; an Area maps language code
// ("eng", "cym") to display name and measure codename to [Measure]; a
// Measure maps year to a float64 reading. Re-importing anything merges
// rather than duplicates, with the most recently ingested data winning on
// conflicts, so datasets can be layered in any order.
//
// # Years
//
// StatsWales encodes years as strings. [ValidateYear] accepts exactly four
// digits below [YearCutoff], plus the literal "0" which is the "no filter"
// sentinel used throughout (a [YearRange] of (0,0) is unbounded).
//
// # Output
//
// Text rendering enumerates areas in ascending code order and measures in
// ascending codename order, with year/value columns right-aligned at six
// decimal places. JSON rendering has the shape
//
//	{"<code>": {"names": {"eng": ...}, "measures": {"<codename>": {"<year>": <value>}}}}
//
// and is deterministic: object keys are emitted sorted, which for four-digit
// year keys is ascending year order.
package domain
