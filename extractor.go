package archmap

import "strings"

// Extractor isolates the entry block from the document that carries it.
type Extractor interface {
	// Extract returns the block text, trimmed.
	// Returns EMALFORMED if the document does not have the expected structure.
	Extract(document string) (string, error)
}

// Ensure PassthroughExtractor implements Extractor at compile time.
var _ Extractor = PassthroughExtractor{}

// PassthroughExtractor treats the whole document as the block. It serves
// sources that already hold the bare list, such as a saved text output.
type PassthroughExtractor struct{}

// Extract returns the document with surrounding whitespace removed.
func (PassthroughExtractor) Extract(document string) (string, error) {
	return strings.TrimSpace(document), nil
}
