// Package format translates legacy (format, type) descriptors into
// explicit-API texture formats and back.
//
// The legacy space spells out component types that the target format
// already implies, so forward translation folds many pairs onto one target.
// The reverse direction is narrower: it covers only the six uncompressed
// color formats, because a platform depth format can be reached from several
// legacy depth tags and has no single inverse.
//
// Depth tags resolve to whatever depth format the active backend reports at
// call time, supplied through a DepthSource. Apart from that query every
// function here is pure and safe for concurrent use.
package format

import (
	"errors"
	"fmt"
)

// Translation errors.
var (
	// ErrUnsupportedFormat is returned for tag/type combinations outside the
	// documented tables and for non-invertible reverse lookups.
	ErrUnsupportedFormat = errors.New("format: unsupported format")

	// ErrNoDepthFormat is returned when a depth tag is resolved without a
	// depth source, or the source reports a non-depth format.
	ErrNoDepthFormat = fmt.Errorf("%w: no platform depth format", ErrUnsupportedFormat)
)

// typeSet is a bitset of ComponentType values.
type typeSet uint8

func (s typeSet) has(c ComponentType) bool {
	return c.IsValid() && s&(1<<c) != 0
}

const (
	byteTypes   typeSet = 1<<ComponentUnsignedByte | 1<<ComponentByte
	packedTypes typeSet = byteTypes | 1<<ComponentUnsignedInt8888 | 1<<ComponentUnsignedInt8888Rev
)

type colorRule struct {
	target TargetFormat
	types  typeSet
}

// colorRules is the forward table for color tags. Tags with a zero rule
// are not color tags.
var colorRules = [externalFormatCount]colorRule{
	ExternalRGBA:  {TargetR8G8B8A8Unorm, packedTypes},
	ExternalRGBA8: {TargetR8G8B8A8Unorm, packedTypes},
	ExternalBGRA:  {TargetB8G8R8A8Unorm, packedTypes},
	ExternalBGR:   {TargetB8G8R8Unorm, byteTypes},
	ExternalRGB:   {TargetR8G8B8Unorm, byteTypes},
	ExternalRG:    {TargetR8G8Unorm, byteTypes},
	ExternalRed:   {TargetR8Unorm, byteTypes},
}

// reverseTable maps the six uncompressed color formats back to their
// unsized legacy tag.
var reverseTable = [targetFormatCount]ExternalFormat{
	TargetR8G8B8A8Unorm: ExternalRGBA,
	TargetB8G8R8A8Unorm: ExternalBGRA,
	TargetB8G8R8Unorm:   ExternalBGR,
	TargetR8G8B8Unorm:   ExternalRGB,
	TargetR8G8Unorm:     ExternalRG,
	TargetR8Unorm:       ExternalRed,
}

// Translator resolves legacy tags to target formats.
//
// The zero Translator resolves every color tag but fails depth tags with
// ErrNoDepthFormat.
type Translator struct {
	// Depth reports the platform depth format. It is queried on every
	// depth lookup, never cached.
	Depth DepthSource
}

// NewTranslator returns a Translator that queries depth for depth tags.
func NewTranslator(depth DepthSource) *Translator {
	return &Translator{Depth: depth}
}

// Resolve maps a legacy (format, type) pair to a target format.
//
// RGBA, RGBA8 and BGRA accept UNSIGNED_BYTE, BYTE, UNSIGNED_INT_8_8_8_8 and
// UNSIGNED_INT_8_8_8_8_REV. BGR, RGB, RG and RED accept UNSIGNED_BYTE and
// BYTE. Depth tags accept any type and return the platform depth format.
// Everything else fails with ErrUnsupportedFormat.
func (t *Translator) Resolve(ext ExternalFormat, typ ComponentType) (TargetFormat, error) {
	if ext.IsDepth() {
		return t.depthFormat()
	}
	if ext < externalFormatCount {
		if rule := colorRules[ext]; rule.target != TargetUndefined {
			if rule.types.has(typ) {
				return rule.target, nil
			}
			return TargetUndefined, fmt.Errorf("%w: type %s for %s", ErrUnsupportedFormat, typ, ext)
		}
	}
	return TargetUndefined, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// ResolveInternal maps a tag used alone as an internal format.
//
// This mapping is independent of Resolve: UNSIGNED_INT_8_8_8_8_REV means an
// integer RGBA texture here, and only unsized, 24-bit and 32-bit float depth
// are recognized.
func (t *Translator) ResolveInternal(internal ExternalFormat) (TargetFormat, error) {
	switch internal {
	case ExternalUnsignedInt8888Rev:
		return TargetR8G8B8A8Uint, nil
	case ExternalDepthComponent, ExternalDepthComponent24, ExternalDepthComponent32F:
		return t.depthFormat()
	default:
		return TargetUndefined, fmt.Errorf("%w: internal format %s", ErrUnsupportedFormat, internal)
	}
}

func (t *Translator) depthFormat() (TargetFormat, error) {
	if t == nil || t.Depth == nil {
		return TargetUndefined, ErrNoDepthFormat
	}
	f := t.Depth.DepthFormat()
	if !f.IsDepth() {
		return TargetUndefined, fmt.Errorf("%w: source reported %s", ErrNoDepthFormat, f)
	}
	return f, nil
}

// Reverse maps one of the six uncompressed color formats back to its legacy
// format tag. Depth formats and unknown values fail with ErrUnsupportedFormat.
func Reverse(target TargetFormat) (ExternalFormat, error) {
	if target < targetFormatCount {
		if ext := reverseTable[target]; ext != ExternalUndefined {
			return ext, nil
		}
	}
	return ExternalUndefined, fmt.Errorf("%w: no legacy tag for %s", ErrUnsupportedFormat, target)
}
