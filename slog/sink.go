package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/archmap"
)

// Ensure LoggingSink implements archmap.Sink.
var _ archmap.Sink = (*LoggingSink)(nil)

// LoggingSink wraps a Sink with logging.
type LoggingSink struct {
	next   archmap.Sink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next archmap.Sink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// Write delegates to the wrapped sink and logs the operation.
func (s *LoggingSink) Write(ctx context.Context, dest string, data string) (err error) {
	if dest == "" {
		return s.next.Write(ctx, dest, data)
	}
	defer func(begin time.Time) {
		s.logger.Info("write",
			"dest", dest,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Write(ctx, dest, data)
}
