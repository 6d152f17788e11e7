package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/archmap"
	"github.com/fwojciec/archmap/convert"
)

// DefaultURL is the wiki page that carries the ArchMap list.
const DefaultURL = "https://wiki.archlinux.org/title/ArchMap/List"

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Converter *convert.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `short:"c" help:"YAML configuration file"`

	URL  string `short:"u" default:"${default_url}" env:"ARCHMAP_URL" help:"Source URL"`
	File string `short:"f" env:"ARCHMAP_FILE" help:"Local source file (overrides --url)"`
	Raw  bool   `env:"ARCHMAP_RAW" help:"Source already holds the bare list"`

	Text    string `placeholder:"DEST" env:"ARCHMAP_TEXT" help:"Text output (\"-\" for stdout)"`
	GeoJSON string `name:"geojson" placeholder:"DEST" env:"ARCHMAP_GEOJSON" help:"GeoJSON output"`
	KML     string `placeholder:"DEST" env:"ARCHMAP_KML" help:"KML output"`
	CSV     string `placeholder:"DEST" env:"ARCHMAP_CSV" help:"CSV output"`

	Pretty    bool          `short:"p" env:"ARCHMAP_PRETTY" help:"Column-align text output"`
	Verbosity int           `short:"v" default:"0" env:"ARCHMAP_VERBOSITY" help:"0 warnings, 1 info, 2 debug"`
	Timeout   time.Duration `short:"t" default:"10s" env:"ARCHMAP_TIMEOUT" help:"Fetch timeout"`
}

// Source returns the document location, preferring a local file.
func (c *CLI) Source() string {
	if c.File != "" {
		return c.File
	}
	return c.URL
}

// Outputs returns the destination of each format.
func (c *CLI) Outputs() map[archmap.Format]string {
	return map[archmap.Format]string{
		archmap.FormatText:    c.Text,
		archmap.FormatGeoJSON: c.GeoJSON,
		archmap.FormatKML:     c.KML,
		archmap.FormatCSV:     c.CSV,
	}
}
