package mock

import "github.com/fwojciec/archmap"

var _ archmap.Formatter = (*Formatter)(nil)

// Formatter is a mock implementation of archmap.Formatter.
type Formatter struct {
	FormatFn func(entries []archmap.Entry) (string, error)
}

func (f *Formatter) Format(entries []archmap.Entry) (string, error) {
	return f.FormatFn(entries)
}
