package glcompat

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcompat/format"
	"github.com/gogpu/glcompat/pixel"
)

// Upload is a pixel buffer paired with the target format it must be
// uploaded as.
type Upload struct {
	// Data holds the pixels. When Converted is false it is the caller's
	// original slice; otherwise it is a new buffer owned by the caller.
	Data []byte

	// Format is the target format of Data.
	Format format.TargetFormat

	// Source is the legacy tag the data was described with.
	Source format.ExternalFormat

	// Converted reports whether Data was repacked.
	Converted bool
}

// TextureFormat returns the gputypes format for the upload, if one exists.
func (u *Upload) TextureFormat() (gputypes.TextureFormat, bool) {
	return u.Format.TextureFormat()
}

// BytesPerPixel returns the size of one pixel of Data, or 0 for depth
// formats.
func (u *Upload) BytesPerPixel() int {
	l, ok := u.Format.Layout()
	if !ok {
		return 0
	}
	return l.BytesPerPixel()
}

// PrepareOption configures Prepare.
type PrepareOption func(*prepareOptions)

type prepareOptions struct {
	expandRGB bool
	swapBGRA  bool
}

func defaultPrepareOptions() prepareOptions {
	return prepareOptions{
		expandRGB: true,
		swapBGRA:  false,
	}
}

// WithExpandRGB controls whether 3-channel data (RGB, BGR) is expanded to
// 4 channels with opaque alpha. Enabled by default, since most explicit
// backends cannot sample 3-channel 8-bit formats.
func WithExpandRGB(enabled bool) PrepareOption {
	return func(o *prepareOptions) {
		o.expandRGB = enabled
	}
}

// WithSwapBGRA controls whether BGRA data is reordered to RGBA before
// upload. Disabled by default.
func WithSwapBGRA(enabled bool) PrepareOption {
	return func(o *prepareOptions) {
		o.swapBGRA = enabled
	}
}

// Prepare resolves the target format for data described by (ext, typ) and
// repacks it if the target backend needs a different layout.
//
// A nil translator behaves like the zero format.Translator: color tags
// resolve, depth tags fail with format.ErrNoDepthFormat.
//
// Depth uploads are passed through untouched. Color data whose length is
// not a whole number of pixels fails with ErrInvalidLayout.
func Prepare(t *format.Translator, data []byte, ext format.ExternalFormat, typ format.ComponentType, opts ...PrepareOption) (*Upload, error) {
	o := defaultPrepareOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if t == nil {
		t = &format.Translator{}
	}

	target, err := t.Resolve(ext, typ)
	if err != nil {
		return nil, err
	}

	u := &Upload{Data: data, Format: target, Source: ext}
	if target.IsDepth() {
		return u, nil
	}

	from, _ := target.Layout()
	if _, ok := from.PixelCount(len(data)); !ok {
		return nil, fmt.Errorf("%w: %d bytes of %s", ErrInvalidLayout, len(data), from)
	}

	to := from
	if o.expandRGB {
		to = to.WithAlpha()
	}
	if o.swapBGRA && to == pixel.LayoutBGRA8 {
		to = pixel.LayoutRGBA8
	}
	if to == from {
		return u, nil
	}

	out, err := pixel.Convert(data, from, to)
	if err != nil {
		return nil, err
	}

	u.Data = out
	u.Format = colorTarget(to)
	u.Converted = true

	Logger().Debug("glcompat: repacked upload",
		"source", ext.String(),
		"from", from.String(),
		"to", to.String(),
		"format", u.Format.String(),
		"bytes", len(out))
	return u, nil
}

// PrepareInternal resolves an internal-format-only descriptor. The data is
// never repacked.
func PrepareInternal(t *format.Translator, data []byte, internal format.ExternalFormat) (*Upload, error) {
	if t == nil {
		t = &format.Translator{}
	}
	target, err := t.ResolveInternal(internal)
	if err != nil {
		return nil, err
	}
	if l, ok := target.Layout(); ok {
		if _, exact := l.PixelCount(len(data)); !exact {
			return nil, fmt.Errorf("%w: %d bytes of %s", ErrInvalidLayout, len(data), l)
		}
	}
	return &Upload{Data: data, Format: target, Source: internal}, nil
}

// colorTarget returns the normalized 8-bit target for a 4-channel layout.
func colorTarget(l pixel.Layout) format.TargetFormat {
	switch l {
	case pixel.LayoutBGRA8:
		return format.TargetB8G8R8A8Unorm
	default:
		return format.TargetR8G8B8A8Unorm
	}
}
