package ingest_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/bethyw/internal/dataset"
	"github.com/couchcryptid/bethyw/internal/domain"
	"github.com/couchcryptid/bethyw/internal/ingest"
	"github.com/couchcryptid/bethyw/internal/observability"
)

// --- helpers ---

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func newTestLoader(dir string) (*ingest.Loader, *observability.Metrics) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetricsForTesting()
	clock := clockwork.NewFakeClock()
	return ingest.NewLoader(dir, logger, metrics, clock), metrics
}

const areasFixture = "Local authority code,Name (eng),Name (cym)\n" +
	"W06000001,Isle of Anglesey,Ynys Môn\n" +
	"W06000002,Gwynedd,Gwynedd\n"

const popFixture = "AuthorityCode,1991,1992\n" +
	"W06000001,69123,69379\n" +
	"W06000002,116064,116075\n"

var popDataset = dataset.Dataset{
	Code:   "complete-pop",
	File:   "complete-popu1009-pop.csv",
	Format: domain.AuthorityByYearCSV,
	Columns: domain.ColumnMapping{
		domain.AuthCode:          "AuthorityCode",
		domain.SingleMeasureCode: "pop",
		domain.SingleMeasureName: "Population",
	},
}

// --- tests ---

func TestLoader_LoadAreas(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, dataset.AreasCSV.File, areasFixture)

	loader, metrics := newTestLoader(dir)
	as := domain.NewAreas()
	require.NoError(t, loader.LoadAreas(as, nil))

	assert.Equal(t, 2, as.Size())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DatasetsIngested))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.AreasLoaded))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.IngestErrors))
}

func TestLoader_LoadAreas_Filtered(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, dataset.AreasCSV.File, areasFixture)

	loader, _ := newTestLoader(dir)
	as := domain.NewAreas()
	require.NoError(t, loader.LoadAreas(as, domain.NewStringFilter("W06000002")))

	assert.Equal(t, 1, as.Size())
	_, err := as.GetArea("W06000001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoader_LoadDatasets(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, dataset.AreasCSV.File, areasFixture)
	writeFixture(t, dir, popDataset.File, popFixture)

	loader, metrics := newTestLoader(dir)
	as := domain.NewAreas()
	require.NoError(t, loader.LoadAreas(as, nil))
	require.NoError(t, loader.LoadDatasets(as, []dataset.Dataset{popDataset}, domain.Filter{}))

	area, err := as.GetArea("W06000001")
	require.NoError(t, err)
	eng, err := area.Name("eng")
	require.NoError(t, err)
	assert.Equal(t, "Isle of Anglesey", eng)

	m, err := area.Measure("pop")
	require.NoError(t, err)
	v, err := m.Value(1991)
	require.NoError(t, err)
	assert.Equal(t, 69123.0, v)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.DatasetsIngested))
}

func TestLoader_MissingFile(t *testing.T) {
	loader, metrics := newTestLoader(t.TempDir())

	err := loader.LoadAreas(domain.NewAreas(), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "error importing dataset areas")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.IngestErrors))
}

func TestLoader_MalformedDatasetAborts(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, popDataset.File, "AuthorityCode,1991\nW06000001,not-a-number\n")

	second := popDataset
	second.Code = "complete-pop-2"
	second.File = "complete-popu1009-pop-2.csv"
	writeFixture(t, dir, second.File, popFixture)

	loader, metrics := newTestLoader(dir)
	as := domain.NewAreas()
	err := loader.LoadDatasets(as, []dataset.Dataset{popDataset, second}, domain.Filter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.ErrorContains(t, err, "error importing dataset complete-pop")
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.DatasetsIngested),
		"the failure aborts before the second dataset is attempted")
}

func TestFileSource_OpenMissing(t *testing.T) {
	src := ingest.NewFileSource(t.TempDir(), "areas.csv")
	assert.Equal(t, "areas.csv", src.Name())

	_, err := src.Open()
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to open file")
	assert.ErrorContains(t, err, "areas.csv")
}
