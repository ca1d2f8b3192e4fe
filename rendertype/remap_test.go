package rendertype

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glcompat/internal/logging"
)

func TestRemapper_NotConfigured(t *testing.T) {
	var r Remapper
	_, err := r.Remap(Solid)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, r.Current())
}

func TestRemapper_LogsConfigure(t *testing.T) {
	var buf bytes.Buffer
	logging.Set(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { logging.Set(nil) })

	var r Remapper
	require.NoError(t, r.Configure(ModeUniqueOpaque))
	assert.Contains(t, buf.String(), "mode=unique-opaque")
}

func TestRemapper_UniqueOpaque(t *testing.T) {
	var r Remapper
	require.NoError(t, r.Configure(ModeUniqueOpaque))

	want := map[Category]Category{
		Solid:        CutoutMipped,
		Cutout:       CutoutMipped,
		CutoutMipped: CutoutMipped,
		Translucent:  Translucent,
		Tripwire:     Translucent,
	}
	for in, out := range want {
		got, err := r.Remap(in)
		require.NoError(t, err)
		assert.Equal(t, out, got, "remap(%s)", in)
	}
}

func TestRemapper_SeparateCutout(t *testing.T) {
	var r Remapper
	require.NoError(t, r.Configure(ModeSeparateCutout))

	want := map[Category]Category{
		Solid:        CutoutMipped,
		Cutout:       Cutout,
		CutoutMipped: CutoutMipped,
		Translucent:  Translucent,
		Tripwire:     Translucent,
	}
	for in, out := range want {
		got, err := r.Remap(in)
		require.NoError(t, err)
		assert.Equal(t, out, got, "remap(%s)", in)
	}
}

func TestRemapper_Reconfigure(t *testing.T) {
	var r Remapper
	require.NoError(t, r.Configure(ModeUniqueOpaque))
	got, err := r.Remap(Cutout)
	require.NoError(t, err)
	assert.Equal(t, CutoutMipped, got)

	require.NoError(t, r.Configure(ModeSeparateCutout))
	got, err = r.Remap(Cutout)
	require.NoError(t, err)
	assert.Equal(t, Cutout, got)
	assert.Equal(t, ModeSeparateCutout, r.Current().Mode())
}

func TestRemapper_UnknownInputs(t *testing.T) {
	var r Remapper
	require.NoError(t, r.Configure(DefaultMode))

	_, err := r.Remap(Category(42))
	assert.ErrorIs(t, err, ErrUnknownCategory)

	assert.ErrorIs(t, r.Configure(Mode(9)), ErrUnknownMode)
	assert.Equal(t, DefaultMode, r.Current().Mode(), "failed Configure must keep the old table")
}

func TestRemapper_OutputsCoverImage(t *testing.T) {
	for _, m := range []Mode{ModeUniqueOpaque, ModeSeparateCutout} {
		tbl, err := NewTable(m)
		require.NoError(t, err)

		image := map[Category]bool{}
		for _, c := range Categories() {
			out, err := tbl.Lookup(c)
			require.NoError(t, err)
			image[out] = true
		}
		assert.Len(t, image, len(m.Outputs()), m.String())
		for _, c := range m.Outputs() {
			assert.True(t, image[c], "%s should produce %s", m, c)
		}
	}
}

func TestRemapper_ConcurrentReaders(t *testing.T) {
	var r Remapper
	require.NoError(t, r.Configure(ModeUniqueOpaque))

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				// Every published table agrees on these two.
				solid, err := r.Remap(Solid)
				if err != nil || solid != CutoutMipped {
					t.Errorf("Remap(Solid) = %v, %v", solid, err)
					return
				}
				trip, err := r.Remap(Tripwire)
				if err != nil || trip != Translucent {
					t.Errorf("Remap(Tripwire) = %v, %v", trip, err)
					return
				}
				// A table is either fully mode A or fully mode B.
				tbl := r.Current()
				cut, _ := tbl.Lookup(Cutout)
				if (tbl.Mode() == ModeUniqueOpaque) != (cut == CutoutMipped) {
					t.Errorf("table for %s maps cutout to %s", tbl.Mode(), cut)
					return
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		require.NoError(t, r.Configure(Mode(i%2)))
	}
	close(stop)
	wg.Wait()
}

func TestPackageLevel(t *testing.T) {
	require.NoError(t, Configure(ModeFromFlag(true)))
	got, err := Remap(Solid)
	require.NoError(t, err)
	assert.Equal(t, CutoutMipped, got)
	got, err = Remap(Cutout)
	require.NoError(t, err)
	assert.Equal(t, CutoutMipped, got)

	require.NoError(t, Configure(ModeFromFlag(false)))
	got, err = Remap(Cutout)
	require.NoError(t, err)
	assert.Equal(t, Cutout, got)
	got, err = Remap(Solid)
	require.NoError(t, err)
	assert.Equal(t, CutoutMipped, got)
	assert.Equal(t, ModeSeparateCutout, Current().Mode())
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	for _, name := range []string{" Cutout_Mipped ", "CUTOUT-MIPPED", "cutout mipped"} {
		got, err := ParseCategory(name)
		require.NoError(t, err, name)
		assert.Equal(t, CutoutMipped, got, name)
	}

	_, err := ParseCategory("glass")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("unique-opaque")
	require.NoError(t, err)
	assert.Equal(t, ModeUniqueOpaque, m)

	_, err = ParseMode("fast")
	assert.ErrorIs(t, err, ErrUnknownMode)
}
