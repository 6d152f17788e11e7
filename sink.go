package archmap

import "context"

// Sink routes formatted output to its destination.
type Sink interface {
	// Write delivers data to dest: a file path, or Stdout.
	// An empty dest disables the output and is a no-op.
	Write(ctx context.Context, dest string, data string) error
}
