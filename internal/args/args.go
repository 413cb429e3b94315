// Package args derives dataset selections and ingestion filters from raw
// command-line argument strings. Every function is pure: string in, filter
// out, no shared state.
package args

import (
	"strings"

	"github.com/couchcryptid/bethyw/internal/dataset"
	"github.com/couchcryptid/bethyw/internal/domain"
)

// ParseDatasetsArg resolves a comma-separated list of dataset codes into
// their definitions. An empty argument, or any element equal to "all" in any
// case, selects every known dataset. An unmatched code fails with
// ErrUnknownDataset.
func ParseDatasetsArg(arg string) ([]dataset.Dataset, error) {
	if arg == "" {
		return dataset.All, nil
	}

	var selected []dataset.Dataset
	for _, code := range strings.Split(arg, ",") {
		if strings.EqualFold(code, "all") {
			return dataset.All, nil
		}
		d, err := dataset.Lookup(code)
		if err != nil {
			return nil, err
		}
		selected = append(selected, d)
	}
	return selected, nil
}

// ParseAreasArg builds the area filter from a comma-separated list of local
// authority codes. An empty argument, or any element equal to "all" in any
// case, yields an empty filter (import everything). Codes are kept verbatim;
// area matching is case-sensitive.
func ParseAreasArg(arg string) domain.StringFilter {
	return parseSetArg(arg)
}

// ParseMeasuresArg builds the measure filter from a comma-separated list of
// codenames, with the same "all" sentinel. Matching against parsed measures
// is case-insensitive, so the values are kept as given.
func ParseMeasuresArg(arg string) domain.StringFilter {
	return parseSetArg(arg)
}

func parseSetArg(arg string) domain.StringFilter {
	if arg == "" {
		return domain.StringFilter{}
	}
	filter := domain.StringFilter{}
	for _, v := range strings.Split(arg, ",") {
		if strings.EqualFold(v, "all") {
			return domain.StringFilter{}
		}
		filter[v] = struct{}{}
	}
	return filter
}

// ParseYearsArg builds the inclusive year range from a "YYYY" or
// "YYYY-ZZZZ" argument. An empty argument yields the unbounded (0,0) range;
// a single year yields a single-year range. Each side is validated with the
// same rules as year strings in the datasets, so "0" is a valid unbounded
// side and anything else must be four digits below the cutoff.
func ParseYearsArg(arg string) (domain.YearRange, error) {
	if arg == "" {
		return domain.YearRange{}, nil
	}

	first, second, found := strings.Cut(arg, "-")
	start, err := domain.ValidateYear(first)
	if err != nil {
		return domain.YearRange{}, err
	}
	if !found {
		return domain.YearRange{Start: start, End: start}, nil
	}
	end, err := domain.ValidateYear(second)
	if err != nil {
		return domain.YearRange{}, err
	}
	return domain.YearRange{Start: start, End: end}, nil
}
