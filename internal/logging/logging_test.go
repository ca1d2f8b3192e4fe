package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, h.Enabled(context.Background(), level), level.String())
	}
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
	assert.IsType(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.String("k", "v")}))
	assert.IsType(t, nopHandler{}, h.WithGroup("g"))
}

func TestSet(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	require.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, nil))
	Set(custom)
	assert.Same(t, custom, Logger())
	Logger().Info("hello", "k", "v")
	assert.Contains(t, buf.String(), "k=v")

	Set(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
