package archmap

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// linePattern matches a whole entry line:
//
//	<lat>,<lon> "<name>" # <comment>
//
// Anything but letters and the quote may sit between the longitude and the
// opening quote. The "#" section is optional.
var linePattern = regexp.MustCompile(
	`^\s*([-+]?\d+(?:\.\d*)?)\s*,\s*([-+]?\d+(?:\.\d*)?)[^A-Za-z"]*"([^"]*)"\s*(?:#(.*))?$`,
)

// LineResult is the outcome of matching one line.
// OK is false when the line is not an entry; Reason then says why.
type LineResult struct {
	Entry  Entry
	OK     bool
	Reason string
}

// LineError describes a line that could not be parsed.
type LineError struct {
	Line   int    // 1-based line number within the block
	Text   string // raw line content
	Reason string
}

// Error implements the error interface.
func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ParseResult holds the entries of a block and the lines that were rejected,
// both in block order.
type ParseResult struct {
	Entries  []Entry
	Failures []LineError
}

// ParseLine matches a single line against the entry grammar.
func ParseLine(line string) LineResult {
	m := linePattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
	if m == nil {
		return LineResult{Reason: "does not match entry grammar"}
	}

	lat, err := parseCoordinate(m[1])
	if err != nil {
		return LineResult{Reason: fmt.Sprintf("invalid latitude %q", m[1])}
	}
	lon, err := parseCoordinate(m[2])
	if err != nil {
		return LineResult{Reason: fmt.Sprintf("invalid longitude %q", m[2])}
	}

	name := strings.TrimSpace(m[3])
	if name == "" {
		return LineResult{Reason: "empty name"}
	}

	return LineResult{
		Entry: Entry{
			Latitude:  lat,
			Longitude: lon,
			Name:      name,
			Comment:   strings.TrimSpace(m[4]),
		},
		OK: true,
	}
}

// ParseEntries parses every line of block. A bad line never stops the loop:
// it is recorded in Failures and parsing continues with the next line.
// Blank lines are skipped.
func ParseEntries(block string) ParseResult {
	var result ParseResult
	for i, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		r := ParseLine(line)
		if !r.OK {
			result.Failures = append(result.Failures, LineError{
				Line:   i + 1,
				Text:   line,
				Reason: r.Reason,
			})
			continue
		}
		result.Entries = append(result.Entries, r.Entry)
	}
	return result
}

// parseCoordinate parses a grammar coordinate token. A bare trailing point
// ("12.") and a leading plus are accepted.
func parseCoordinate(tok string) (decimal.Decimal, error) {
	tok = strings.TrimPrefix(tok, "+")
	tok = strings.TrimSuffix(tok, ".")
	return decimal.NewFromString(tok)
}
