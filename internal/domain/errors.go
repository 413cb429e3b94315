package domain

import "errors"

// Sentinel errors for the ingestion core. Callers match with errors.Is; the
// wrapped message carries the specifics (which area, which year, which file).
var (
	// ErrNotFound reports a lookup miss: an area code with no Area, or a
	// year with no reading.
	ErrNotFound = errors.New("not found")

	// ErrParse reports malformed CSV/JSON content, an unreadable or empty
	// stream, or an unrecognized source format.
	ErrParse = errors.New("parse error")

	// ErrConfig reports a column mapping with fewer entries than the
	// requested format requires.
	ErrConfig = errors.New("invalid source configuration")

	// ErrValidation reports a year string that is not the "0" sentinel and
	// is not exactly four digits below the data cutoff.
	ErrValidation = errors.New("validation error")

	// ErrUnknownDataset reports a dataset code that matches no known
	// dataset definition.
	ErrUnknownDataset = errors.New("unknown dataset")
)
