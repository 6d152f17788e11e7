// Package goquery provides a goquery-based implementation of archmap.Extractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/archmap"
)

// DefaultSelector selects the preformatted blocks of a wiki page.
const DefaultSelector = "pre"

// DefaultMinBlocks is the number of blocks the ArchMap list page carries:
// a template block showing the line format, then the list itself.
const DefaultMinBlocks = 2

// Ensure BlockExtractor implements archmap.Extractor at compile time.
var _ archmap.Extractor = (*BlockExtractor)(nil)

// BlockExtractor returns the text of the last block matching its selector.
type BlockExtractor struct {
	selector  string
	minBlocks int
}

// Option configures a BlockExtractor.
type Option func(*BlockExtractor)

// WithSelector sets the CSS selector of the enclosing blocks.
// Defaults to DefaultSelector.
func WithSelector(selector string) Option {
	return func(e *BlockExtractor) {
		e.selector = selector
	}
}

// WithMinBlocks sets how many blocks the document must contain.
// Defaults to DefaultMinBlocks; values below 1 are raised to 1.
func WithMinBlocks(n int) Option {
	return func(e *BlockExtractor) {
		e.minBlocks = max(n, 1)
	}
}

// NewBlockExtractor creates a new BlockExtractor.
func NewBlockExtractor(opts ...Option) *BlockExtractor {
	e := &BlockExtractor{
		selector:  DefaultSelector,
		minBlocks: DefaultMinBlocks,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the trimmed text of the last matching block. Earlier
// blocks are examples and are skipped. HTML entities are decoded.
func (e *BlockExtractor) Extract(document string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return "", archmap.Errorf(archmap.EMALFORMED, "failed to parse document: %v", err)
	}

	blocks := doc.Find(e.selector)
	if blocks.Length() < e.minBlocks {
		return "", archmap.Errorf(archmap.EMALFORMED,
			"expected at least %d %q blocks, found %d", e.minBlocks, e.selector, blocks.Length())
	}

	return strings.TrimSpace(blocks.Last().Text()), nil
}
