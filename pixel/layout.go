// Package pixel repacks 8-bit-per-channel pixel buffers between channel
// layouts before texture upload.
//
// Every operation allocates a new buffer and leaves its input untouched, so
// the caller owns (and may reuse or drop) both slices independently. All
// functions are pure and safe for concurrent use.
package pixel

// Layout describes the byte order of channels in a packed 8-bit pixel.
type Layout uint8

const (
	// LayoutUnknown is the zero value and is not a valid layout.
	LayoutUnknown Layout = iota

	// LayoutR8 is a single red channel (1 byte per pixel).
	LayoutR8

	// LayoutRG8 is red then green (2 bytes per pixel).
	LayoutRG8

	// LayoutRGB8 is red, green, blue with no alpha (3 bytes per pixel).
	LayoutRGB8

	// LayoutBGR8 is blue, green, red with no alpha (3 bytes per pixel).
	LayoutBGR8

	// LayoutRGBA8 is red, green, blue, alpha (4 bytes per pixel).
	LayoutRGBA8

	// LayoutBGRA8 is blue, green, red, alpha (4 bytes per pixel).
	// Common for swapchain images and Windows bitmaps.
	LayoutBGRA8

	layoutCount
)

// LayoutInfo contains metadata about a channel layout.
type LayoutInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of channels.
	Channels int

	// HasAlpha indicates if the layout has an alpha channel.
	HasAlpha bool

	// Reversed indicates blue is stored before red.
	Reversed bool
}

var layoutInfoTable = [layoutCount]LayoutInfo{
	LayoutR8:    {BytesPerPixel: 1, Channels: 1},
	LayoutRG8:   {BytesPerPixel: 2, Channels: 2},
	LayoutRGB8:  {BytesPerPixel: 3, Channels: 3},
	LayoutBGR8:  {BytesPerPixel: 3, Channels: 3, Reversed: true},
	LayoutRGBA8: {BytesPerPixel: 4, Channels: 4, HasAlpha: true},
	LayoutBGRA8: {BytesPerPixel: 4, Channels: 4, HasAlpha: true, Reversed: true},
}

// Info returns the LayoutInfo for this layout.
// Unknown layouts return the zero LayoutInfo.
func (l Layout) Info() LayoutInfo {
	if l >= layoutCount {
		return LayoutInfo{}
	}
	return layoutInfoTable[l]
}

// BytesPerPixel returns the number of bytes per pixel.
func (l Layout) BytesPerPixel() int {
	return l.Info().BytesPerPixel
}

// Channels returns the number of channels.
func (l Layout) Channels() int {
	return l.Info().Channels
}

// HasAlpha returns true if this layout has an alpha channel.
func (l Layout) HasAlpha() bool {
	return l.Info().HasAlpha
}

// IsValid returns true if the layout is a known layout.
func (l Layout) IsValid() bool {
	return l > LayoutUnknown && l < layoutCount
}

// WithAlpha returns the 4-channel layout a 3-channel layout expands into,
// preserving channel order. Other layouts are returned unchanged.
func (l Layout) WithAlpha() Layout {
	switch l {
	case LayoutRGB8:
		return LayoutRGBA8
	case LayoutBGR8:
		return LayoutBGRA8
	default:
		return l
	}
}

// String returns a string representation of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutR8:
		return "R8"
	case LayoutRG8:
		return "RG8"
	case LayoutRGB8:
		return "RGB8"
	case LayoutBGR8:
		return "BGR8"
	case LayoutRGBA8:
		return "RGBA8"
	case LayoutBGRA8:
		return "BGRA8"
	default:
		return "Unknown"
	}
}

// PixelCount returns the number of whole pixels in n bytes of this layout,
// and whether n is an exact multiple of the pixel size.
func (l Layout) PixelCount(n int) (int, bool) {
	bpp := l.BytesPerPixel()
	if bpp == 0 || n < 0 {
		return 0, false
	}
	return n / bpp, n%bpp == 0
}
