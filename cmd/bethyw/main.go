// Command bethyw parses official Welsh Government statistics files into a
// single in-memory model and prints it as aligned tables or JSON.
//
// Usage:
//
//	bethyw -dir datasets \
//	  -datasets popden,complete-pop \
//	  -areas W06000001,W06000002 \
//	  -measures pop,dens \
//	  -years 1991-1993 \
//	  -json
//
// Every selection flag accepts a case-insensitive "all" sentinel (or can be
// omitted) to import everything. Logging goes to stderr; the rendered output
// goes to stdout.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/jonboulle/clockwork"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/couchcryptid/bethyw/internal/args"
	"github.com/couchcryptid/bethyw/internal/config"
	"github.com/couchcryptid/bethyw/internal/domain"
	"github.com/couchcryptid/bethyw/internal/ingest"
	"github.com/couchcryptid/bethyw/internal/observability"
)

func main() {
	dir := flag.String("dir", "datasets", "directory containing the dataset files")
	datasetsArg := flag.String("datasets", "", "comma-separated dataset codes to import (omit or 'all' for every dataset)")
	areasArg := flag.String("areas", "", "comma-separated local authority codes (omit or 'all' for every area)")
	measuresArg := flag.String("measures", "", "comma-separated measure codenames (omit or 'all' for every measure)")
	yearsArg := flag.String("years", "", "year (YYYY) or inclusive range (YYYY-ZZZZ) to import")
	jsonOut := flag.Bool("json", false, "print the output as JSON instead of tables")
	debug := flag.Bool("debug", false, "dump the loaded aggregate to stderr before rendering")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	code := run(runArgs{
		dir:      *dir,
		datasets: *datasetsArg,
		areas:    *areasArg,
		measures: *measuresArg,
		years:    *yearsArg,
		jsonOut:  *jsonOut,
		debug:    *debug,
	}, logger, metrics, clock)
	if code != 0 {
		os.Exit(code)
	}
}

type runArgs struct {
	dir      string
	datasets string
	areas    string
	measures string
	years    string
	jsonOut  bool
	debug    bool
}

func run(a runArgs, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) int {
	datasets, err := args.ParseDatasetsArg(a.datasets)
	if err != nil {
		logger.Error("invalid datasets argument", "error", err)
		return 1
	}
	filter := domain.Filter{
		Areas:    args.ParseAreasArg(a.areas),
		Measures: args.ParseMeasuresArg(a.measures),
	}
	filter.Years, err = args.ParseYearsArg(a.years)
	if err != nil {
		logger.Error("invalid years argument", "error", err)
		return 1
	}

	data := domain.NewAreas()
	loader := ingest.NewLoader(a.dir, logger, metrics, clock)

	start := clock.Now()
	if err := loader.LoadAreas(data, filter.Areas); err != nil {
		logger.Error("import failed", "error", err)
		return 1
	}
	if err := loader.LoadDatasets(data, datasets, filter); err != nil {
		logger.Error("import failed", "error", err)
		return 1
	}

	if a.debug {
		spew.Fdump(os.Stderr, data)
	}

	if a.jsonOut {
		out, err := data.ToJSON()
		if err != nil {
			logger.Error("rendering JSON failed", "error", err)
			return 1
		}
		fmt.Println(out)
	} else {
		fmt.Println(data)
	}

	p := message.NewPrinter(language.BritishEnglish)
	logger.Info("run complete",
		"areas", p.Sprintf("%d", data.Size()),
		"datasets", p.Sprintf("%d", len(datasets)),
		"elapsed", clock.Since(start),
	)
	return 0
}
