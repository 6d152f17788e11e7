// Package fs provides file-based document acquisition and output sinks.
package fs

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/archmap"
)

// Ensure Sink implements archmap.Sink at compile time.
var _ archmap.Sink = (*Sink)(nil)

// Sink writes outputs to files, or to stdout for archmap.Stdout.
// Files are written to a temporary sibling and renamed into place, so a
// reader never sees a half-written output. A file whose content is already
// identical is left untouched.
type Sink struct {
	stdout io.Writer
}

// NewSink creates a new Sink printing archmap.Stdout outputs to stdout.
func NewSink(stdout io.Writer) *Sink {
	return &Sink{stdout: stdout}
}

// Write delivers data to dest.
func (s *Sink) Write(ctx context.Context, dest string, data string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch dest {
	case "":
		return nil
	case archmap.Stdout:
		_, err := io.WriteString(s.stdout, data)
		return err
	}

	if unchanged(dest, data) {
		return nil
	}
	return writeAtomic(dest, data)
}

// unchanged reports whether path already holds data.
func unchanged(path string, data string) bool {
	existing, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return len(existing) == len(data) && xxhash.Sum64(existing) == xxhash.Sum64String(data)
}

func writeAtomic(path string, data string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := io.WriteString(tmp, data); err != nil {
		return errors.Join(err, tmp.Close(), os.Remove(tmpName))
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(err, os.Remove(tmpName))
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return errors.Join(err, os.Remove(tmpName))
	}

	// Rename replaces the previous output in one step.
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Join(err, os.Remove(tmpName))
	}
	return nil
}
