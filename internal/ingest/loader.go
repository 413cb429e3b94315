// Package ingest orchestrates dataset imports: it opens a stream per
// dataset, hands it to the aggregate's parser, and records logs and metrics
// around each pass. Ingestion is all-or-nothing per run: the first dataset
// that fails to import aborts the remainder.
package ingest

import (
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/bethyw/internal/dataset"
	"github.com/couchcryptid/bethyw/internal/domain"
	"github.com/couchcryptid/bethyw/internal/observability"
)

// Loader imports datasets from a data directory into one Areas aggregate.
// The aggregate stays owned by the caller; the Loader only populates it.
type Loader struct {
	dir     string
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
}

// NewLoader creates a Loader reading from dir. Pass a real clock in
// production; tests inject a fake for deterministic durations.
func NewLoader(dir string, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Loader {
	return &Loader{dir: dir, logger: logger, metrics: metrics, clock: clock}
}

// LoadAreas imports the bootstrap area-names file, restricted by the area
// filter. It runs before any dataset so wide CSV sources find named areas.
func (l *Loader) LoadAreas(as *domain.Areas, areasFilter domain.StringFilter) error {
	return l.load(as, dataset.AreasCSV, domain.Filter{Areas: areasFilter})
}

// LoadDatasets imports each requested dataset in order, applying the same
// filter triple to every one. The first failure aborts the run; later
// datasets are not attempted and the aggregate is left as loaded so far.
func (l *Loader) LoadDatasets(as *domain.Areas, datasets []dataset.Dataset, filter domain.Filter) error {
	for _, d := range datasets {
		if err := l.load(as, d, filter); err != nil {
			return err
		}
	}
	return nil
}

// load runs one open → populate → close pass for a dataset.
func (l *Loader) load(as *domain.Areas, d dataset.Dataset, filter domain.Filter) error {
	src := NewFileSource(l.dir, d.File)
	r, err := src.Open()
	if err != nil {
		l.metrics.IngestErrors.Inc()
		return fmt.Errorf("error importing dataset %s: %w", d.Code, err)
	}

	start := l.clock.Now()
	populateErr := as.Populate(r, d.Format, d.Columns, filter)
	if closeErr := r.Close(); closeErr != nil {
		l.logger.Warn("closing dataset file", "file", src.Name(), "error", closeErr)
	}
	if populateErr != nil {
		l.metrics.IngestErrors.Inc()
		return fmt.Errorf("error importing dataset %s: %w", d.Code, populateErr)
	}

	elapsed := l.clock.Since(start)
	l.metrics.DatasetsIngested.Inc()
	l.metrics.IngestDuration.Observe(elapsed.Seconds())
	l.metrics.AreasLoaded.Set(float64(as.Size()))

	l.logger.Info("dataset ingested",
		"dataset", d.Code,
		"file", src.Name(),
		"format", d.Format.String(),
		"areas", as.Size(),
		"duration", elapsed,
	)
	return nil
}
