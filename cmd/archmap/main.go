package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/archmap"
	"github.com/fwojciec/archmap/convert"
	"github.com/fwojciec/archmap/csvutil"
	"github.com/fwojciec/archmap/etree"
	"github.com/fwojciec/archmap/fs"
	"github.com/fwojciec/archmap/geojson"
	"github.com/fwojciec/archmap/goquery"
	archhttp "github.com/fwojciec/archmap/http"
	archslog "github.com/fwojciec/archmap/slog"
	archviper "github.com/fwojciec/archmap/viper"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// DefaultConfigPaths are the configuration files read when present, later
// files overriding earlier ones.
var DefaultConfigPaths = []string{"/etc/archmap.yaml", "~/.config/archmap.yaml"}

// Main represents the program.
type Main struct {
	// Configuration files consulted before the command line. Set before
	// calling Run().
	ConfigPaths []string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: DefaultConfigPaths,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("archmap"),
		kong.Description("Convert the ArchMap user list into text, GeoJSON, KML and CSV"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"default_url": DefaultURL},
		kong.Configuration(archviper.Loader, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbosity)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	var fetcher archmap.Fetcher
	if cli.File != "" {
		fetcher = fs.NewFetcher()
	} else {
		fetcher = archhttp.NewFetcher(
			archhttp.WithTimeout(cli.Timeout),
			archhttp.WithLogger(logger),
		)
	}
	var sink archmap.Sink = fs.NewSink(stdout)
	if cli.Verbosity > 0 {
		fetcher = archslog.NewLoggingFetcher(fetcher, logger)
		sink = archslog.NewLoggingSink(sink, logger)
	}
	defer fetcher.Close()

	var extractor archmap.Extractor = goquery.NewBlockExtractor()
	if cli.Raw {
		extractor = archmap.PassthroughExtractor{}
	}

	deps.Converter = &convert.Converter{
		Fetcher:   fetcher,
		Extractor: extractor,
		Formatters: map[archmap.Format]archmap.Formatter{
			archmap.FormatText:    archmap.TextFormatter{Pretty: cli.Pretty},
			archmap.FormatGeoJSON: geojson.NewFormatter(),
			archmap.FormatKML:     etree.NewKMLFormatter(etree.WithDocumentName("ArchMap")),
			archmap.FormatCSV:     csvutil.NewFormatter(),
		},
		Sink:   sink,
		Logger: logger,
	}

	cmd := &ConvertCmd{
		Source:    cli.Source(),
		Outputs:   cli.Outputs(),
		Verbosity: cli.Verbosity,
	}

	return cmd.Run(deps)
}

// newLogger returns a text logger on w whose level follows verbosity:
// 0 warnings, 1 info, 2 and above debug.
func newLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
