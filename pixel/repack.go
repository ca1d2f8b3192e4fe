package pixel

import (
	"errors"
	"fmt"
)

// Repack errors.
var (
	// ErrInvalidLayout is returned when a buffer length is not a multiple of
	// the source layout's pixel size.
	ErrInvalidLayout = errors.New("pixel: buffer length does not match layout stride")

	// ErrOutOfMemory is returned when the output buffer cannot be allocated.
	ErrOutOfMemory = errors.New("pixel: out of memory")

	// ErrUnsupportedConversion is returned by Convert for layout pairs that
	// have no repacking path.
	ErrUnsupportedConversion = errors.New("pixel: unsupported layout conversion")
)

// MaxBufferSize is the largest output buffer the repacker will allocate.
// Larger requests fail with ErrOutOfMemory instead of reaching the allocator.
const MaxBufferSize = 1<<31 - 1

// alloc returns a new zeroed buffer of n bytes, or ErrOutOfMemory if n is
// negative (overflowed) or above MaxBufferSize.
func alloc(n int) ([]byte, error) {
	if n < 0 || n > MaxBufferSize {
		return nil, fmt.Errorf("%w: %d bytes requested", ErrOutOfMemory, n)
	}
	return make([]byte, n), nil
}

// Expand3To4 converts 3-channel pixels to 4-channel pixels with an opaque
// alpha byte appended, keeping channel order: output pixel i is
// (buf[3i], buf[3i+1], buf[3i+2], 0xFF).
//
// The input length must be a multiple of 3. The returned buffer is newly
// allocated with length len(buf)*4/3.
func Expand3To4(buf []byte) ([]byte, error) {
	if len(buf)%3 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of 3", ErrInvalidLayout, len(buf))
	}

	pixels := len(buf) / 3
	if pixels > MaxBufferSize/4 {
		return nil, fmt.Errorf("%w: %d pixels", ErrOutOfMemory, pixels)
	}
	out, err := alloc(pixels * 4)
	if err != nil {
		return nil, err
	}

	for i, j := 0, 0; j < len(buf); i, j = i+4, j+3 {
		d := out[i : i+4 : i+4]
		s := buf[j : j+3 : j+3]
		d[0] = s[0]
		d[1] = s[1]
		d[2] = s[2]
		d[3] = 0xFF
	}
	return out, nil
}

// SwapChannelOrder4 converts 4-channel pixels between BGRA and RGBA byte
// order by exchanging bytes 0 and 2 of every pixel. Bytes 1 and 3 (green
// and alpha) keep their positions, so applying it twice yields the input.
//
// The input length must be a multiple of 4. The returned buffer is newly
// allocated with the same length as buf.
func SwapChannelOrder4(buf []byte) ([]byte, error) {
	if len(buf)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of 4", ErrInvalidLayout, len(buf))
	}

	out, err := alloc(len(buf))
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(buf); i += 4 {
		d := out[i : i+4 : i+4]
		s := buf[i : i+4 : i+4]
		d[0] = s[2]
		d[1] = s[1]
		d[2] = s[0]
		d[3] = s[3]
	}
	return out, nil
}

// expand3To4Swapped expands 3-channel pixels while exchanging the first and
// third channel, turning BGR into RGBA (or RGB into BGRA) in one pass.
func expand3To4Swapped(buf []byte) ([]byte, error) {
	if len(buf)%3 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of 3", ErrInvalidLayout, len(buf))
	}

	pixels := len(buf) / 3
	if pixels > MaxBufferSize/4 {
		return nil, fmt.Errorf("%w: %d pixels", ErrOutOfMemory, pixels)
	}
	out, err := alloc(pixels * 4)
	if err != nil {
		return nil, err
	}

	for i, j := 0, 0; j < len(buf); i, j = i+4, j+3 {
		d := out[i : i+4 : i+4]
		s := buf[j : j+3 : j+3]
		d[0] = s[2]
		d[1] = s[1]
		d[2] = s[0]
		d[3] = 0xFF
	}
	return out, nil
}

// Convert repacks buf from one layout to another and returns a new buffer.
//
// Supported conversions:
//   - identity (any valid layout to itself; the data is copied)
//   - RGB8 to RGBA8 and BGR8 to BGRA8 (alpha expansion)
//   - RGB8 to BGRA8 and BGR8 to RGBA8 (expansion with channel swap)
//   - RGBA8 to BGRA8 and back (channel swap)
//
// Any other pair fails with ErrUnsupportedConversion.
func Convert(buf []byte, from, to Layout) ([]byte, error) {
	if !from.IsValid() || !to.IsValid() {
		return nil, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, from, to)
	}

	if from == to {
		if _, ok := from.PixelCount(len(buf)); !ok {
			return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d",
				ErrInvalidLayout, len(buf), from.BytesPerPixel())
		}
		out, err := alloc(len(buf))
		if err != nil {
			return nil, err
		}
		copy(out, buf)
		return out, nil
	}

	switch {
	case from == LayoutRGB8 && to == LayoutRGBA8, from == LayoutBGR8 && to == LayoutBGRA8:
		return Expand3To4(buf)
	case from == LayoutRGB8 && to == LayoutBGRA8, from == LayoutBGR8 && to == LayoutRGBA8:
		return expand3To4Swapped(buf)
	case from == LayoutRGBA8 && to == LayoutBGRA8, from == LayoutBGRA8 && to == LayoutRGBA8:
		return SwapChannelOrder4(buf)
	default:
		return nil, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, from, to)
	}
}
