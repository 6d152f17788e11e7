package mock

import "github.com/fwojciec/archmap"

var _ archmap.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of archmap.Extractor.
type Extractor struct {
	ExtractFn func(document string) (string, error)
}

func (e *Extractor) Extract(document string) (string, error) {
	return e.ExtractFn(document)
}
