// Package convert runs the ArchMap conversion pipeline: it acquires the
// source document, isolates and parses the entry block, renders each
// requested format and routes the results to their destinations.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fwojciec/archmap"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Stage names the pipeline step a fatal error came from.
type Stage string

// Stage constants.
const (
	StageAcquire Stage = "acquire"
	StageExtract Stage = "extract"
	StageWrite   Stage = "write"
)

// StageError wraps an error with the stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Request describes one conversion run.
type Request struct {
	// Source is the URL or path handed to the Fetcher.
	Source string

	// Outputs maps each format to its destination. Formats with an empty
	// destination are disabled.
	Outputs map[archmap.Format]string
}

// OutputResult is the outcome of one requested output.
type OutputResult struct {
	Format      archmap.Format
	Destination string
	Bytes       int
	Err         error
}

// Report summarizes a run.
type Report struct {
	RunID        string
	DocumentHash string
	Entries      int
	Failures     []archmap.LineError
	Outputs      []OutputResult
	NoOp         bool
}

// Converter orchestrates a conversion run.
type Converter struct {
	Fetcher    archmap.Fetcher
	Extractor  archmap.Extractor
	Formatters map[archmap.Format]archmap.Formatter
	Sink       archmap.Sink

	// Logger defaults to a discarding logger when nil.
	Logger *slog.Logger
}

// Run executes the pipeline for req. Malformed lines never fail a run;
// they are reported in Report.Failures. Output errors are collected per
// output and returned joined once every output has been attempted.
func (c *Converter) Run(ctx context.Context, req Request) (*Report, error) {
	report := &Report{RunID: uuid.New().String()}
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("run", report.RunID)

	formats := requested(req.Outputs)
	if len(formats) == 0 {
		report.NoOp = true
		logger.Info("no outputs requested")
		return report, nil
	}
	for _, f := range formats {
		if _, ok := c.Formatters[f]; !ok {
			return report, archmap.Errorf(archmap.EINVALID, "no formatter registered for format %q", f)
		}
	}

	document, err := c.Fetcher.Fetch(ctx, req.Source)
	if err != nil {
		return report, &StageError{Stage: StageAcquire, Err: err}
	}
	report.DocumentHash = ComputeHash(document)

	block, err := c.Extractor.Extract(document)
	if err != nil {
		return report, &StageError{Stage: StageExtract, Err: err}
	}

	parsed := archmap.ParseEntries(block)
	report.Entries = len(parsed.Entries)
	report.Failures = parsed.Failures
	logger.Info("parsed entries",
		"source", req.Source,
		"hash", report.DocumentHash,
		"entries", len(parsed.Entries),
		"malformed", len(parsed.Failures),
	)
	for _, failure := range parsed.Failures {
		logger.Debug("malformed line",
			"line", failure.Line,
			"reason", failure.Reason,
			"text", failure.Text,
		)
	}

	rendered := c.render(ctx, formats, parsed.Entries)

	var errs []error
	for i, f := range formats {
		result := OutputResult{
			Format:      f,
			Destination: req.Outputs[f],
			Err:         rendered[i].err,
		}
		if result.Err == nil {
			result.Bytes = len(rendered[i].data)
			result.Err = c.Sink.Write(ctx, result.Destination, rendered[i].data)
		}
		if result.Err != nil {
			logger.Warn("output failed",
				"format", f,
				"dest", result.Destination,
				"err", result.Err,
			)
			errs = append(errs, fmt.Errorf("%s output %s: %w", f, result.Destination, result.Err))
		}
		report.Outputs = append(report.Outputs, result)
	}

	if len(errs) > 0 {
		return report, &StageError{Stage: StageWrite, Err: errors.Join(errs...)}
	}
	return report, nil
}

// rendering holds one formatter's output.
type rendering struct {
	data string
	err  error
}

// render runs every formatter concurrently. Results are indexed like
// formats.
func (c *Converter) render(ctx context.Context, formats []archmap.Format, entries []archmap.Entry) []rendering {
	results := make([]rendering, len(formats))

	g, _ := errgroup.WithContext(ctx)
	for i, f := range formats {
		formatter := c.Formatters[f]
		g.Go(func() error {
			data, err := formatter.Format(entries)
			results[i] = rendering{data: data, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// requested returns the formats with a destination, in canonical order.
func requested(outputs map[archmap.Format]string) []archmap.Format {
	var formats []archmap.Format
	for _, f := range archmap.Formats() {
		if outputs[f] != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
