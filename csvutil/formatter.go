// Package csvutil renders entries as CSV using csvutil over encoding/csv.
package csvutil

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/fwojciec/archmap"
	"github.com/jszwec/csvutil"
)

// Ensure Formatter implements archmap.Formatter at compile time.
var _ archmap.Formatter = (*Formatter)(nil)

// row is one CSV record. Coordinates are kept as text to preserve the
// digits they were parsed with.
type row struct {
	Latitude  string `csv:"Latitude"`
	Longitude string `csv:"Longitude"`
	Name      string `csv:"Name"`
	Comment   string `csv:"Comment"`
}

// Formatter renders a header row followed by one row per entry. Only
// fields holding a comma, a quote or a line break are quoted.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders entries in input order with "\n" line endings.
// The header is written even when there are no entries.
func (f *Formatter) Format(entries []archmap.Entry) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	enc := csvutil.NewEncoder(w)

	if len(entries) == 0 {
		if err := enc.EncodeHeader(row{}); err != nil {
			return "", fmt.Errorf("encoding header: %w", err)
		}
	}

	for i, e := range entries {
		r := row{
			Latitude:  archmap.FormatDecimal(e.Latitude),
			Longitude: archmap.FormatDecimal(e.Longitude),
			Name:      e.Name,
			Comment:   e.Comment,
		}
		if err := enc.Encode(r); err != nil {
			return "", fmt.Errorf("encoding entry %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("writing csv: %w", err)
	}
	return buf.String(), nil
}
