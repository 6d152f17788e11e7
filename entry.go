package archmap

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Entry is one user on the map.
// Coordinates are exact decimals so re-rendering never drifts from the source.
type Entry struct {
	Latitude  decimal.Decimal
	Longitude decimal.Decimal
	Name      string
	Comment   string
}

// Validate returns an error if the entry cannot be rendered back into the
// line grammar.
func (e Entry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	if strings.Contains(e.Name, `"`) {
		return Errorf(EINVALID, "entry name %q contains a quote", e.Name)
	}
	return nil
}

// Equal reports whether two entries hold the same values.
func (e Entry) Equal(other Entry) bool {
	return e.Latitude.Equal(other.Latitude) &&
		e.Longitude.Equal(other.Longitude) &&
		e.Name == other.Name &&
		e.Comment == other.Comment
}

// FormatDecimal renders d with the fractional digits it was parsed with,
// so "-74.0060" stays "-74.0060".
func FormatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
