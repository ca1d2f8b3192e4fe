package shader

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glcompat/format"
)

const vertexWGSL = `
@vertex
fn main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    let x = f32(idx) - 1.0;
    return vec4<f32>(x, 0.0, 0.0, 1.0);
}
`

// countingCompiler returns a fixed 2-word stream and counts invocations.
func countingCompiler(calls *atomic.Int32) CompileFunc {
	return func(string) ([]byte, error) {
		calls.Add(1)
		return []byte{0x03, 0x02, 0x23, 0x07, 0x00, 0x00, 0x01, 0x00}, nil
	}
}

func TestStageForExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want gputypes.ShaderStage
	}{
		{".vsh", gputypes.ShaderStageVertex},
		{".fsh", gputypes.ShaderStageFragment},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			got, err := StageForExtension(tt.ext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStageForExtension_Unknown(t *testing.T) {
	for _, ext := range []string{"", ".gsh", ".VSH", ".wgsl", "vs", "vsh", "fsh", "..vsh"} {
		_, err := StageForExtension(ext)
		assert.ErrorIs(t, err, ErrUnknownExtension, ext)
		assert.ErrorIs(t, err, format.ErrUnsupportedFormat, ext)
	}
}

func TestStageForFile(t *testing.T) {
	s, err := StageForFile("shaders/core/terrain.fsh")
	require.NoError(t, err)
	assert.Equal(t, gputypes.ShaderStageFragment, s)

	_, err = StageForFile("shaders/core/terrain")
	assert.ErrorIs(t, err, ErrUnknownExtension)
}

func TestSpirvWords(t *testing.T) {
	words, err := spirvWords([]byte{0x03, 0x02, 0x23, 0x07, 0x01, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x07230203, 1}, words)

	words, err = spirvWords(nil)
	require.NoError(t, err)
	assert.Empty(t, words)

	_, err = spirvWords([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidSPIRV)
}

func TestLoader_CachesByNameAndSource(t *testing.T) {
	var calls atomic.Int32
	l := NewLoader(WithCompiler(countingCompiler(&calls)))

	m1, err := l.Compile("a.vsh", "src")
	require.NoError(t, err)
	m2, err := l.Compile("a.vsh", "src")
	require.NoError(t, err)
	assert.Same(t, m1, m2)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, gputypes.ShaderStageVertex, m1.Stage)
	assert.Equal(t, []uint32{0x07230203, 0x00010000}, m1.SPIRV)

	_, err = l.Compile("a.vsh", "edited")
	require.NoError(t, err)
	_, err = l.Compile("a.fsh", "src")
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())

	st := l.Stats()
	assert.Equal(t, 3, st.Len)
	assert.Equal(t, uint64(1), st.Hits)
	assert.Equal(t, uint64(3), st.Misses)

	l.Reset()
	assert.Equal(t, 0, l.Stats().Len)
}

func TestLoader_Evicts(t *testing.T) {
	var calls atomic.Int32
	l := NewLoader(WithCompiler(countingCompiler(&calls)), WithCacheSize(2))

	for i := range 3 {
		_, err := l.Compile(fmt.Sprintf("s%d.vsh", i), "src")
		require.NoError(t, err)
	}
	st := l.Stats()
	assert.Equal(t, 2, st.Len)
	assert.Equal(t, uint64(1), st.Evictions)

	// s0 was the least recently used and must be recompiled.
	_, err := l.Compile("s0.vsh", "src")
	require.NoError(t, err)
	assert.Equal(t, int32(4), calls.Load())
}

func TestLoader_Errors(t *testing.T) {
	var calls atomic.Int32
	l := NewLoader(WithCompiler(countingCompiler(&calls)))
	_, err := l.Compile("a.glsl", "src")
	assert.ErrorIs(t, err, ErrUnknownExtension)
	assert.Zero(t, calls.Load(), "unknown stages are rejected before compiling")

	boom := errors.New("boom")
	l = NewLoader(WithCompiler(func(string) ([]byte, error) { return nil, boom }))
	_, err = l.Compile("a.vsh", "src")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, l.Stats().Len)

	l = NewLoader(WithCompiler(func(string) ([]byte, error) { return []byte{1, 2}, nil }))
	_, err = l.Compile("a.vsh", "src")
	assert.ErrorIs(t, err, ErrInvalidSPIRV)
}

func TestLoader_Concurrent(t *testing.T) {
	var calls atomic.Int32
	l := NewLoader(WithCompiler(countingCompiler(&calls)), WithCacheSize(4))

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				name := fmt.Sprintf("s%d.fsh", (g+i)%6)
				m, err := l.Compile(name, "src")
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, name, m.Name)
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, l.Stats().Len, 4)
}

func TestLoader_Naga(t *testing.T) {
	l := NewLoader()
	m, err := l.Compile("position.vsh", vertexWGSL)
	require.NoError(t, err)
	require.NotEmpty(t, m.SPIRV)
	assert.Equal(t, uint32(0x07230203), m.SPIRV[0], "SPIR-V magic number")
}

func TestCreateModule(t *testing.T) {
	m := &Module{Name: "a.vsh", Stage: gputypes.ShaderStageVertex, SPIRV: []uint32{0x07230203}}

	_, err := CreateModule(nil, m)
	assert.ErrorIs(t, err, ErrNilDevice)

	dev := &noop.Device{}
	_, err = CreateModule(dev, nil)
	assert.ErrorIs(t, err, ErrNilModule)

	sm, err := CreateModule(dev, m)
	require.NoError(t, err)
	require.NotNil(t, sm)
	dev.DestroyShaderModule(sm)
}
