package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/archmap/mock"
	archslog "github.com/fwojciec/archmap/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSink_Write(t *testing.T) {
	t.Parallel()

	t.Run("logs destination and size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var gotDest, gotData string
		inner := &mock.Sink{
			WriteFn: func(_ context.Context, dest string, data string) error {
				gotDest, gotData = dest, data
				return nil
			},
		}

		sink := archslog.NewLoggingSink(inner, logger)
		err := sink.Write(context.Background(), "out/archmap.kml", "<kml/>")

		require.NoError(t, err)
		assert.Equal(t, "out/archmap.kml", gotDest)
		assert.Equal(t, "<kml/>", gotData)
		output := buf.String()
		assert.Contains(t, output, "msg=write")
		assert.Contains(t, output, "dest=out/archmap.kml")
		assert.Contains(t, output, "bytes=6")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Sink{
			WriteFn: func(context.Context, string, string) error {
				return errors.New("disk full")
			},
		}

		sink := archslog.NewLoggingSink(inner, logger)
		err := sink.Write(context.Background(), "archmap.csv", "data")

		require.EqualError(t, err, "disk full")
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})

	t.Run("does not log disabled outputs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		called := false
		inner := &mock.Sink{
			WriteFn: func(context.Context, string, string) error {
				called = true
				return nil
			},
		}

		sink := archslog.NewLoggingSink(inner, logger)
		err := sink.Write(context.Background(), "", "data")

		require.NoError(t, err)
		assert.True(t, called)
		assert.Empty(t, buf.String())
	})
}
