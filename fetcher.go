package archmap

import "context"

// Fetcher retrieves the raw document that carries the entry list.
type Fetcher interface {
	// Fetch returns the document found at source, a URL or a local path.
	// Returns ENOTFOUND if the source does not exist and EUNAVAILABLE if it
	// cannot be reached.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, source string) (document string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
