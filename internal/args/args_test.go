package args_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/bethyw/internal/args"
	"github.com/couchcryptid/bethyw/internal/dataset"
	"github.com/couchcryptid/bethyw/internal/domain"
)

func TestParseDatasetsArg(t *testing.T) {
	all, err := args.ParseDatasetsArg("")
	require.NoError(t, err)
	assert.Equal(t, dataset.All, all, "empty selects everything")

	all, err = args.ParseDatasetsArg("popden,ALL")
	require.NoError(t, err)
	assert.Equal(t, dataset.All, all, "any 'all' element selects everything")

	selected, err := args.ParseDatasetsArg("popden,trans")
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "popden", selected[0].Code)
	assert.Equal(t, "trans", selected[1].Code)

	_, err = args.ParseDatasetsArg("popden,nope")
	assert.ErrorIs(t, err, domain.ErrUnknownDataset)
	assert.ErrorContains(t, err, "nope")
}

func TestParseAreasArg(t *testing.T) {
	assert.True(t, args.ParseAreasArg("").Empty())
	assert.True(t, args.ParseAreasArg("All").Empty())
	assert.True(t, args.ParseAreasArg("W06000001,all").Empty())

	f := args.ParseAreasArg("W06000001,W06000002")
	assert.True(t, f.Matches("W06000001"))
	assert.False(t, f.Matches("W06000003"))
}

func TestParseMeasuresArg(t *testing.T) {
	assert.True(t, args.ParseMeasuresArg("").Empty())

	f := args.ParseMeasuresArg("POP,dens")
	assert.True(t, f.MatchesFold("pop"), "measure values keep their case; matching folds")
	assert.True(t, f.MatchesFold("DENS"))
	assert.False(t, f.MatchesFold("rail"))
}

func TestParseYearsArg(t *testing.T) {
	r, err := args.ParseYearsArg("")
	require.NoError(t, err)
	assert.True(t, r.Unbounded())

	r, err = args.ParseYearsArg("0")
	require.NoError(t, err)
	assert.True(t, r.Unbounded(), "the 0 sentinel means no filter")

	r, err = args.ParseYearsArg("1999")
	require.NoError(t, err)
	assert.Equal(t, domain.YearRange{Start: 1999, End: 1999}, r)

	r, err = args.ParseYearsArg("1991-1993")
	require.NoError(t, err)
	assert.Equal(t, domain.YearRange{Start: 1991, End: 1993}, r)

	r, err = args.ParseYearsArg("0-2000")
	require.NoError(t, err)
	assert.Equal(t, domain.YearRange{Start: 0, End: 2000}, r)

	for _, bad := range []string{"99", "1991-99", "abcd", "2025", "1991-2025"} {
		_, err := args.ParseYearsArg(bad)
		assert.ErrorIs(t, err, domain.ErrValidation, "arg %q", bad)
	}
}
