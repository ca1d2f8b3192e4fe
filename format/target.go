package format

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcompat/pixel"
)

// TargetFormat is an explicit-API texture format: channel layout, bit depth
// and numeric interpretation in one value.
type TargetFormat uint8

const (
	// TargetUndefined is the zero value.
	TargetUndefined TargetFormat = iota

	// TargetR8G8B8A8Unorm is 8-bit RGBA, normalized.
	TargetR8G8B8A8Unorm

	// TargetB8G8R8A8Unorm is 8-bit BGRA, normalized.
	TargetB8G8R8A8Unorm

	// TargetB8G8R8Unorm is 8-bit BGR, normalized.
	TargetB8G8R8Unorm

	// TargetR8G8B8Unorm is 8-bit RGB, normalized.
	TargetR8G8B8Unorm

	// TargetR8G8Unorm is 8-bit RG, normalized.
	TargetR8G8Unorm

	// TargetR8Unorm is 8-bit R, normalized.
	TargetR8Unorm

	// TargetR8G8B8A8Uint is 8-bit RGBA, unsigned integer.
	TargetR8G8B8A8Uint

	// TargetD16Unorm is 16-bit normalized depth.
	TargetD16Unorm

	// TargetX8D24UnormPack32 is 24-bit normalized depth in a 32-bit word.
	TargetX8D24UnormPack32

	// TargetD24UnormS8Uint is 24-bit normalized depth with 8-bit stencil.
	TargetD24UnormS8Uint

	// TargetD32Sfloat is 32-bit float depth.
	TargetD32Sfloat

	// TargetD32SfloatS8Uint is 32-bit float depth with 8-bit stencil.
	TargetD32SfloatS8Uint

	targetFormatCount
)

type targetInfo struct {
	name    string
	layout  pixel.Layout
	depth   bool
	stencil bool
	texture gputypes.TextureFormat
}

// targetTable is indexed by TargetFormat. A zero texture field means the
// format has no gputypes equivalent.
var targetTable = [targetFormatCount]targetInfo{
	TargetUndefined:        {name: "UNDEFINED"},
	TargetR8G8B8A8Unorm:    {name: "R8G8B8A8_UNORM", layout: pixel.LayoutRGBA8, texture: gputypes.TextureFormatRGBA8Unorm},
	TargetB8G8R8A8Unorm:    {name: "B8G8R8A8_UNORM", layout: pixel.LayoutBGRA8, texture: gputypes.TextureFormatBGRA8Unorm},
	TargetB8G8R8Unorm:      {name: "B8G8R8_UNORM", layout: pixel.LayoutBGR8},
	TargetR8G8B8Unorm:      {name: "R8G8B8_UNORM", layout: pixel.LayoutRGB8},
	TargetR8G8Unorm:        {name: "R8G8_UNORM", layout: pixel.LayoutRG8, texture: gputypes.TextureFormatRG8Unorm},
	TargetR8Unorm:          {name: "R8_UNORM", layout: pixel.LayoutR8, texture: gputypes.TextureFormatR8Unorm},
	TargetR8G8B8A8Uint:     {name: "R8G8B8A8_UINT", layout: pixel.LayoutRGBA8, texture: gputypes.TextureFormatRGBA8Uint},
	TargetD16Unorm:         {name: "D16_UNORM", depth: true, texture: gputypes.TextureFormatDepth16Unorm},
	TargetX8D24UnormPack32: {name: "X8_D24_UNORM_PACK32", depth: true, texture: gputypes.TextureFormatDepth24Plus},
	TargetD24UnormS8Uint:   {name: "D24_UNORM_S8_UINT", depth: true, stencil: true, texture: gputypes.TextureFormatDepth24PlusStencil8},
	TargetD32Sfloat:        {name: "D32_SFLOAT", depth: true, texture: gputypes.TextureFormatDepth32Float},
	TargetD32SfloatS8Uint:  {name: "D32_SFLOAT_S8_UINT", depth: true, stencil: true, texture: gputypes.TextureFormatDepth32FloatStencil8},
}

// String returns the explicit-API enumerant name without the VK_FORMAT_ prefix.
func (f TargetFormat) String() string {
	if f >= targetFormatCount {
		return "UNKNOWN"
	}
	return targetTable[f].name
}

// IsValid returns true for known, non-undefined formats.
func (f TargetFormat) IsValid() bool {
	return f > TargetUndefined && f < targetFormatCount
}

// IsDepth returns true for depth and depth/stencil formats.
func (f TargetFormat) IsDepth() bool {
	return f < targetFormatCount && targetTable[f].depth
}

// HasStencil returns true for combined depth/stencil formats.
func (f TargetFormat) HasStencil() bool {
	return f < targetFormatCount && targetTable[f].stencil
}

// Layout returns the byte layout of uploads in this format.
// Depth formats have no byte layout.
func (f TargetFormat) Layout() (pixel.Layout, bool) {
	if f >= targetFormatCount || targetTable[f].layout == pixel.LayoutUnknown {
		return pixel.LayoutUnknown, false
	}
	return targetTable[f].layout, true
}

// TextureFormat returns the gputypes equivalent of f.
// The 3-channel formats have none; expand them to 4 channels first.
func (f TargetFormat) TextureFormat() (gputypes.TextureFormat, bool) {
	if f >= targetFormatCount || targetTable[f].texture == gputypes.TextureFormatUndefined {
		return gputypes.TextureFormatUndefined, false
	}
	return targetTable[f].texture, true
}

// FromTextureFormat maps a gputypes format back to a TargetFormat.
func FromTextureFormat(tf gputypes.TextureFormat) (TargetFormat, bool) {
	if tf == gputypes.TextureFormatUndefined {
		return TargetUndefined, false
	}
	for f := TargetUndefined + 1; f < targetFormatCount; f++ {
		if targetTable[f].texture == tf {
			return f, true
		}
	}
	return TargetUndefined, false
}
