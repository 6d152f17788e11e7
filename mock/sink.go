package mock

import (
	"context"

	"github.com/fwojciec/archmap"
)

var _ archmap.Sink = (*Sink)(nil)

// Sink is a mock implementation of archmap.Sink.
type Sink struct {
	WriteFn func(ctx context.Context, dest string, data string) error
}

func (s *Sink) Write(ctx context.Context, dest string, data string) error {
	return s.WriteFn(ctx, dest, data)
}
