package format

import "github.com/gogpu/glcompat/pixel"

// ExternalFormat identifies a legacy format or internal-format tag: the
// channel layout half of a legacy (format, type) pair, plus the sized depth
// variants and the packed 8888_REV tag that legacy callers pass as an
// internal format.
//
// Values are local to this package. Numeric GL enumerants are decoded at the
// boundary by package glenum.
type ExternalFormat uint8

const (
	// ExternalUndefined is the zero value and never resolves.
	ExternalUndefined ExternalFormat = iota

	// ExternalRGBA is unsized RGBA.
	ExternalRGBA

	// ExternalRGBA8 is the sized 8-bit RGBA internal format.
	ExternalRGBA8

	// ExternalBGRA is BGRA channel order.
	ExternalBGRA

	// ExternalBGR is BGR channel order without alpha.
	ExternalBGR

	// ExternalRGB is RGB without alpha.
	ExternalRGB

	// ExternalRG is two channels, red and green.
	ExternalRG

	// ExternalRed is a single red channel.
	ExternalRed

	// ExternalDepthComponent is unsized depth.
	ExternalDepthComponent

	// ExternalDepthComponent16 is 16-bit depth.
	ExternalDepthComponent16

	// ExternalDepthComponent24 is 24-bit depth.
	ExternalDepthComponent24

	// ExternalDepthComponent32F is 32-bit float depth.
	ExternalDepthComponent32F

	// ExternalDepth24Stencil8 is 24-bit depth with 8-bit stencil.
	ExternalDepth24Stencil8

	// ExternalDepth32FStencil8 is 32-bit float depth with 8-bit stencil.
	ExternalDepth32FStencil8

	// ExternalUnsignedInt8888Rev is the packed 8888_REV tag as it appears in
	// internal-format-only queries.
	ExternalUnsignedInt8888Rev

	externalFormatCount
)

var externalNames = [externalFormatCount]string{
	ExternalUndefined:          "UNDEFINED",
	ExternalRGBA:               "RGBA",
	ExternalRGBA8:              "RGBA8",
	ExternalBGRA:               "BGRA",
	ExternalBGR:                "BGR",
	ExternalRGB:                "RGB",
	ExternalRG:                 "RG",
	ExternalRed:                "RED",
	ExternalDepthComponent:     "DEPTH_COMPONENT",
	ExternalDepthComponent16:   "DEPTH_COMPONENT16",
	ExternalDepthComponent24:   "DEPTH_COMPONENT24",
	ExternalDepthComponent32F:  "DEPTH_COMPONENT32F",
	ExternalDepth24Stencil8:    "DEPTH24_STENCIL8",
	ExternalDepth32FStencil8:   "DEPTH32F_STENCIL8",
	ExternalUnsignedInt8888Rev: "UNSIGNED_INT_8_8_8_8_REV",
}

// String returns the legacy enumerant name without the GL_ prefix.
func (f ExternalFormat) String() string {
	if f >= externalFormatCount {
		return "UNKNOWN"
	}
	return externalNames[f]
}

// IsValid returns true for known, non-undefined tags.
func (f ExternalFormat) IsValid() bool {
	return f > ExternalUndefined && f < externalFormatCount
}

// IsDepth returns true for DEPTH_COMPONENT and its sized and stencil variants.
func (f ExternalFormat) IsDepth() bool {
	switch f {
	case ExternalDepthComponent, ExternalDepthComponent16, ExternalDepthComponent24,
		ExternalDepthComponent32F, ExternalDepth24Stencil8, ExternalDepth32FStencil8:
		return true
	default:
		return false
	}
}

// Layout returns the client-side byte layout of pixel data tagged with f.
// Depth and packed tags have no byte layout.
func (f ExternalFormat) Layout() (pixel.Layout, bool) {
	switch f {
	case ExternalRGBA, ExternalRGBA8:
		return pixel.LayoutRGBA8, true
	case ExternalBGRA:
		return pixel.LayoutBGRA8, true
	case ExternalBGR:
		return pixel.LayoutBGR8, true
	case ExternalRGB:
		return pixel.LayoutRGB8, true
	case ExternalRG:
		return pixel.LayoutRG8, true
	case ExternalRed:
		return pixel.LayoutR8, true
	default:
		return pixel.LayoutUnknown, false
	}
}

// ComponentType identifies the per-component data type of a legacy
// (format, type) pair.
type ComponentType uint8

const (
	// ComponentUndefined is the zero value.
	ComponentUndefined ComponentType = iota

	// ComponentUnsignedByte is one unsigned byte per component.
	ComponentUnsignedByte

	// ComponentByte is one signed byte per component.
	ComponentByte

	// ComponentUnsignedInt8888 packs four components into a 32-bit word,
	// first component in the most significant byte.
	ComponentUnsignedInt8888

	// ComponentUnsignedInt8888Rev packs four components into a 32-bit word,
	// first component in the least significant byte.
	ComponentUnsignedInt8888Rev

	componentTypeCount
)

var componentNames = [componentTypeCount]string{
	ComponentUndefined:          "UNDEFINED",
	ComponentUnsignedByte:       "UNSIGNED_BYTE",
	ComponentByte:               "BYTE",
	ComponentUnsignedInt8888:    "UNSIGNED_INT_8_8_8_8",
	ComponentUnsignedInt8888Rev: "UNSIGNED_INT_8_8_8_8_REV",
}

// String returns the legacy enumerant name without the GL_ prefix.
func (c ComponentType) String() string {
	if c >= componentTypeCount {
		return "UNKNOWN"
	}
	return componentNames[c]
}

// IsValid returns true for known, non-undefined component types.
func (c ComponentType) IsValid() bool {
	return c > ComponentUndefined && c < componentTypeCount
}
