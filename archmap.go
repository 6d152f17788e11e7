// Package archmap converts the ArchMap user list into geodata formats.
// It isolates the list from the wiki page that carries it, parses each
// "lat,lon "name" # comment" line into an Entry, and renders the entries as
// text, GeoJSON, KML and CSV.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, etree/, csvutil/).
package archmap

import "strings"

// Stdout is the destination that routes an output to standard output.
const Stdout = "-"

// Format identifies one output format.
type Format string

// Format constants.
const (
	FormatText    Format = "text"
	FormatGeoJSON Format = "geojson"
	FormatKML     Format = "kml"
	FormatCSV     Format = "csv"
)

// Formats returns every format in canonical order.
func Formats() []Format {
	return []Format{FormatText, FormatGeoJSON, FormatKML, FormatCSV}
}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", Errorf(EINVALID, "unknown format %q", s)
}
