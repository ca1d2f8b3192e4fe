package glcompat

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glcompat/format"
)

func TestLogger_DefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, nil))
	SetLogger(custom)
	assert.Same(t, custom, Logger())

	Logger().Info("remap table published", "mode", "unique-opaque")
	assert.Contains(t, buf.String(), "mode=unique-opaque")

	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestPrepare_LogsConversions(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := Prepare(nil, []byte{1, 2, 3}, format.ExternalRGB, format.ComponentUnsignedByte)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "format=R8G8B8A8_UNORM")
	assert.Contains(t, buf.String(), "from=RGB8")

	buf.Reset()
	_, err = Prepare(nil, []byte{1, 2, 3, 4}, format.ExternalRGBA, format.ComponentUnsignedByte)
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "pass-through uploads are not logged")
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
