package archmap

import (
	"strings"
	"unicode/utf8"
)

// Ensure TextFormatter implements Formatter at compile time.
var _ Formatter = TextFormatter{}

// TextFormatter renders entries back into the line grammar ParseEntries
// accepts, one entry per line.
type TextFormatter struct {
	// Pretty pads every column to its widest value in the batch.
	Pretty bool
}

// column indexes of a rendered text row.
const (
	colLatitude = iota
	colLongitude
	colName
	colComment
	numColumns
)

// Format renders entries in input order. The output ends with exactly one
// newline and its last line carries no trailing whitespace.
func (f TextFormatter) Format(entries []Entry) (string, error) {
	rows := make([][numColumns]string, 0, len(entries))
	var widths [numColumns]int
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return "", err
		}
		row := textColumns(e)
		for i, col := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(col))
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	for _, row := range rows {
		if f.Pretty {
			b.WriteString(padRight(row[colLatitude], widths[colLatitude]))
			b.WriteByte(' ')
			b.WriteString(padRight(row[colLongitude], widths[colLongitude]))
			b.WriteByte(' ')
			b.WriteString(padCenter(row[colName], widths[colName]))
			b.WriteByte(' ')
			b.WriteString(padLeft(row[colComment], widths[colComment]))
		} else {
			b.WriteString(row[colLatitude])
			b.WriteByte(' ')
			b.WriteString(row[colLongitude])
			b.WriteByte(' ')
			b.WriteString(row[colName])
			if row[colComment] != "" {
				b.WriteByte(' ')
				b.WriteString(row[colComment])
			}
		}
		b.WriteByte('\n')
	}

	return strings.TrimRight(b.String(), " \t\n") + "\n", nil
}

// textColumns returns the four rendered columns of e.
func textColumns(e Entry) [numColumns]string {
	var comment string
	if e.Comment != "" {
		comment = "# " + e.Comment
	}
	return [numColumns]string{
		FormatDecimal(e.Latitude) + ",",
		FormatDecimal(e.Longitude),
		`"` + e.Name + `"`,
		comment,
	}
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-utf8.RuneCountInString(s)))
}

func padLeft(s string, width int) string {
	return strings.Repeat(" ", max(0, width-utf8.RuneCountInString(s))) + s
}

// padCenter centers s in width; an odd leftover space goes to the right.
func padCenter(s string, width int) string {
	pad := max(0, width-utf8.RuneCountInString(s))
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
