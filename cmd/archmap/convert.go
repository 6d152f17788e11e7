package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/archmap"
	"github.com/fwojciec/archmap/convert"
)

// ConvertCmd runs one conversion and reports its outcome on stderr.
type ConvertCmd struct {
	Source    string
	Outputs   map[archmap.Format]string
	Verbosity int
}

// Run executes the conversion.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	report, err := deps.Converter.Run(deps.Ctx, convert.Request{
		Source:  c.Source,
		Outputs: c.Outputs,
	})
	if report.NoOp {
		fmt.Fprintln(deps.Stderr, "nothing to do: no outputs configured")
		return nil
	}

	// Outputs are only recorded once the block has been parsed.
	if len(report.Outputs) > 0 {
		fmt.Fprintf(deps.Stderr, "parsed %d entries, %d malformed lines\n", report.Entries, len(report.Failures))
		if c.Verbosity >= 1 {
			for _, failure := range report.Failures {
				fmt.Fprintf(deps.Stderr, "line %d: %s\n", failure.Line, failure.Text)
			}
		}
	}

	if err != nil {
		return describe(err)
	}
	return nil
}

// describe replaces application errors of fatal stages with their message.
func describe(err error) error {
	var stageErr *convert.StageError
	switch {
	case archmap.ErrorCode(err) == archmap.EINTERNAL:
		return err
	case errors.As(err, &stageErr) && stageErr.Stage == convert.StageWrite:
		return err
	case stageErr != nil:
		return fmt.Errorf("%s: %s", stageErr.Stage, archmap.ErrorMessage(err))
	}
	return errors.New(archmap.ErrorMessage(err))
}
