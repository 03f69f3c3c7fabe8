package xlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNopDiscards(t *testing.T) {
	l := Nop()
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.Info("dropped", "k", 1) // must not panic
}

func TestOrPrefersGivenLogger(t *testing.T) {
	var buf bytes.Buffer
	given := slog.New(slog.NewTextHandler(&buf, nil))

	require.Same(t, given, Or(given))
	Or(given).Info("kept")
	require.Contains(t, buf.String(), "kept")

	require.NotNil(t, Or(nil))
	require.False(t, Or(nil).Enabled(context.Background(), slog.LevelInfo))
}
