package native

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcompat"
	"github.com/gogpu/glcompat/format"
)

// DefaultDepthFormat is the depth format reported before any Set.
const DefaultDepthFormat = gputypes.TextureFormatDepth24PlusStencil8

// LiveDepth is the platform depth format, swappable at runtime.
//
// It implements format.DepthSource, so translators built on it observe
// changes immediately. The zero LiveDepth reports DefaultDepthFormat.
type LiveDepth struct {
	// stores gputypes.TextureFormat; 0 means unset
	v atomic.Uint32
}

// NewLiveDepth returns a LiveDepth reporting f.
func NewLiveDepth(f gputypes.TextureFormat) (*LiveDepth, error) {
	d := &LiveDepth{}
	if err := d.Set(f); err != nil {
		return nil, err
	}
	return d, nil
}

// Get returns the current depth format.
func (d *LiveDepth) Get() gputypes.TextureFormat {
	if v := d.v.Load(); v != 0 {
		return gputypes.TextureFormat(v)
	}
	return DefaultDepthFormat
}

// Set replaces the depth format. Non-depth formats fail with
// format.ErrNoDepthFormat.
func (d *LiveDepth) Set(f gputypes.TextureFormat) error {
	tf, ok := format.FromTextureFormat(f)
	if !ok || !tf.IsDepth() {
		return fmt.Errorf("%w: %v", format.ErrNoDepthFormat, f)
	}
	old := gputypes.TextureFormat(d.v.Swap(uint32(f)))
	if old == 0 {
		old = DefaultDepthFormat
	}
	if old != f {
		glcompat.Logger().Info("native: depth format changed",
			"from", old.String(),
			"to", f.String())
	}
	return nil
}

// DepthFormat implements format.DepthSource.
func (d *LiveDepth) DepthFormat() format.TargetFormat {
	tf, _ := format.FromTextureFormat(d.Get())
	return tf
}

// depthProvider is implemented by providers that know their depth-stencil
// attachment format.
type depthProvider interface {
	DepthStencilFormat() gputypes.TextureFormat
}

// FromSurface adopts the depth format of a device provider when it reports
// one, and logs the surface color format. Providers without a depth format
// leave the current value unchanged. A nil provider fails with
// ErrNilProvider.
func (d *LiveDepth) FromSurface(p gpucontext.DeviceProvider) error {
	if p == nil {
		return ErrNilProvider
	}
	surface := p.SurfaceFormat()
	dp, ok := p.(depthProvider)
	if !ok {
		glcompat.Logger().Info("native: provider reports no depth format",
			"surface", surface.String(),
			"depth", d.Get().String())
		return nil
	}
	if err := d.Set(dp.DepthStencilFormat()); err != nil {
		return err
	}
	glcompat.Logger().Info("native: depth format from surface",
		"surface", surface.String(),
		"depth", d.Get().String())
	return nil
}
