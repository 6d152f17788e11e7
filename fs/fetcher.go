package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"

	"github.com/fwojciec/archmap"
)

// Ensure Fetcher implements archmap.Fetcher at compile time.
var _ archmap.Fetcher = (*Fetcher)(nil)

// Fetcher reads documents from the local file system.
type Fetcher struct{}

// NewFetcher creates a new file-based Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch returns the content of the file at path.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return "", archmap.Errorf(archmap.ENOTFOUND, "source file %q not found", path)
	} else if err != nil {
		return "", archmap.Errorf(archmap.EUNAVAILABLE, "cannot read source file %q: %v", path, err)
	}
	return string(data), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
