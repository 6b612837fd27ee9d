package main

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/seasonal-plot/internal"
	"github.com/rs/zerolog"
)

type Params struct {
	File       string `descr:"Path to the sales file, optionally prefixed with the source type (e.g. xlsx:sales.xlsx)" positional:"true"`
	Source     string `descr:"Data source type (guessed from the file extension if omitted)" alts:"csv,simple-json,xlsx" optional:"true"`
	Period     string `descr:"Period to plot (defaults to the config's periods, or all)" alts:"quarterly,monthly,daily,all" optional:"true"`
	Name       string `descr:"Dataset name shown in figure titles" optional:"true"`
	Out        string `descr:"Directory to write <period>.png figures into" default:"."`
	Output     string `descr:"Summary output format" alts:"table,json,none" strict:"true" default:"table"`
	Config     string `descr:"Path to config file (default: ~/.seasonal-plot/config.yaml)" optional:"true"`
	SaveConfig bool   `descr:"Write the effective settings (name, periods, columns) back to the config file" optional:"true"`
	Verbose    bool   `descr:"Log progress to stderr" optional:"true"`
}

func main() {
	boa.NewCmdT[Params]("seasonal-plot").
		WithShort("Plot seasonal sales trends from a dated sales series").
		WithLong("Aggregates daily sales totals by quarter, month or weekday and renders one panel per period, all sharing a y-axis scale, so seasonal patterns can be compared across years.").
		WithRunFunc(func(params *Params) {
			logger := newLogger(os.Stderr, params.Verbose)
			if err := run(params, os.Stdout, logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func run(params *Params, stdout io.Writer, logger zerolog.Logger) error {
	cfg, err := loadConfig(params.Config, logger)
	if err != nil {
		return err
	}

	source, path := internal.ParseFileArg(params.File)
	if source == "" {
		source = params.Source
	}
	if source == "" {
		source = internal.SourceForPath(path)
	}
	parser, err := internal.GetParser(source)
	if err != nil {
		return err
	}

	tbl, err := parser.Parse(path, cfg.SourceOptions())
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	logger.Debug().Str("source", source).Str("file", path).Int("rows", len(tbl.Rows)).Msg("loaded table")

	sales, err := tbl.Sales(cfg.ColumnOptions())
	if err != nil {
		return err
	}

	periods := cfg.GetPeriods()
	if params.Period != "" && params.Period != "all" {
		p, err := internal.ParsePeriod(params.Period)
		if err != nil {
			return err
		}
		periods = []internal.Period{p}
	} else if params.Period == "all" {
		periods = internal.Periods
	}

	name := params.Name
	if name == "" {
		name = cfg.Name
	}

	if err := os.MkdirAll(params.Out, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var figs []*internal.Figure
	for _, period := range periods {
		fig, err := internal.Plot(sales, period, name, internal.DefaultStyle(period))
		if err != nil {
			return err
		}
		logger.Debug().
			Str("period", string(period)).
			Int("buckets", len(fig.Buckets)).
			Float64("ymin", fig.Range.Min).
			Float64("ymax", fig.Range.Max).
			Msg("aggregated")

		file := filepath.Join(params.Out, string(period)+".png")
		if err := writePNG(fig, file); err != nil {
			return err
		}
		logger.Info().Str("file", file).Msg("wrote figure")
		figs = append(figs, fig)
	}

	if params.SaveConfig {
		if err := saveConfig(cfg, params, name, periods, logger); err != nil {
			return err
		}
	}

	switch params.Output {
	case "json":
		return internal.PrintFiguresJSON(stdout, figs)
	case "none":
		return nil
	default:
		fmt.Fprintf(stdout, "Loaded %d sales rows\n\n", len(sales))
		amounts := internal.NewAmountFormatter(cfg.GetLocale())
		for _, fig := range figs {
			internal.PrintFigureTable(stdout, fig, amounts)
		}
		return nil
	}
}

// loadConfig reads the explicit config path, or the default one if it exists
func loadConfig(path string, logger zerolog.Logger) (*internal.Config, error) {
	if path != "" {
		return internal.LoadConfig(path)
	}
	path = internal.DefaultConfigPath()
	if path == "" {
		return internal.NewDefaultConfig(), nil
	}
	cfg, err := internal.LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug().Str("path", path).Msg("no config file, using defaults")
		return internal.NewDefaultConfig(), nil
	}
	return cfg, err
}

// saveConfig stores the settings used for this run, so later runs need fewer flags
func saveConfig(cfg *internal.Config, params *Params, name string, periods []internal.Period, logger zerolog.Logger) error {
	path := params.Config
	if path == "" {
		path = internal.DefaultConfigPath()
	}
	if path == "" {
		return fmt.Errorf("no config path: pass --config")
	}

	cfg.Name = name
	cfg.Periods = nil
	for _, p := range periods {
		cfg.Periods = append(cfg.Periods, string(p))
	}
	opts := cfg.ColumnOptions()
	cfg.DateColumn = opts.DateColumn
	cfg.AmountColumn = opts.AmountColumn
	cfg.DateLayout = opts.DateLayout

	if err := cfg.Save(path); err != nil {
		return err
	}
	logger.Info().Str("path", path).Msg("saved config")
	return nil
}

func writePNG(fig *internal.Figure, path string) error {
	img, err := fig.Image()
	if err != nil {
		return fmt.Errorf("drawing %s: %w", fig.Title, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
