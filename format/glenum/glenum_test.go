package glenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glcompat/format"
)

func TestExternalFormat_KnownValues(t *testing.T) {
	// Registry values, independent of the go-gl constants.
	tests := []struct {
		v    uint32
		want format.ExternalFormat
	}{
		{0x1908, format.ExternalRGBA},
		{0x8058, format.ExternalRGBA8},
		{0x80E1, format.ExternalBGRA},
		{0x80E0, format.ExternalBGR},
		{0x1907, format.ExternalRGB},
		{0x8227, format.ExternalRG},
		{0x1903, format.ExternalRed},
		{0x1902, format.ExternalDepthComponent},
		{0x81A5, format.ExternalDepthComponent16},
		{0x81A6, format.ExternalDepthComponent24},
		{0x8CAC, format.ExternalDepthComponent32F},
		{0x88F0, format.ExternalDepth24Stencil8},
		{0x8CAD, format.ExternalDepth32FStencil8},
		{0x8367, format.ExternalUnsignedInt8888Rev},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, err := ExternalFormat(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			v, ok := ToGL(tt.want)
			require.True(t, ok)
			assert.Equal(t, tt.v, v)
		})
	}
}

func TestExternalFormat_Unknown(t *testing.T) {
	_, err := ExternalFormat(0x1909) // GL_LUMINANCE
	assert.ErrorIs(t, err, format.ErrUnsupportedFormat)

	_, ok := ToGL(format.ExternalUndefined)
	assert.False(t, ok)
}

func TestComponentType(t *testing.T) {
	tests := []struct {
		v    uint32
		want format.ComponentType
	}{
		{0x1401, format.ComponentUnsignedByte},
		{0x1400, format.ComponentByte},
		{0x8035, format.ComponentUnsignedInt8888},
		{0x8367, format.ComponentUnsignedInt8888Rev},
	}
	for _, tt := range tests {
		got, err := ComponentType(tt.v)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ComponentType(0x1406) // GL_FLOAT
	assert.ErrorIs(t, err, format.ErrUnsupportedFormat)
}

func TestResolve(t *testing.T) {
	tr := format.NewTranslator(format.FixedDepth(format.TargetD24UnormS8Uint))

	got, err := Resolve(tr, 0x80E1, 0x1401)
	require.NoError(t, err)
	assert.Equal(t, format.TargetB8G8R8A8Unorm, got)

	// Depth accepts any type, even GL_FLOAT.
	got, err = Resolve(tr, 0x1902, 0x1406)
	require.NoError(t, err)
	assert.Equal(t, format.TargetD24UnormS8Uint, got)

	_, err = Resolve(tr, 0x1907, 0x1406)
	assert.ErrorIs(t, err, format.ErrUnsupportedFormat)

	got, err = ResolveInternal(tr, 0x8367)
	require.NoError(t, err)
	assert.Equal(t, format.TargetR8G8B8A8Uint, got)

	_, err = ResolveInternal(tr, 0x1908)
	assert.ErrorIs(t, err, format.ErrUnsupportedFormat)
}
