// Package glenum decodes numeric GL enumerants into format tags.
//
// This is the only place in the module where legacy enumerant values appear;
// everything past it works on the local enums of package format. Constants
// come from the go-gl bindings so the values track the official registry.
//
// The go-gl package is cgo-only: building glenum (and cmd/glconv, which
// imports it) needs CGO_ENABLED=1 and the OpenGL headers, e.g. libgl1-mesa-dev
// on Debian. No GL context is created at runtime.
package glenum

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/glcompat/format"
)

var externalFormats = map[uint32]format.ExternalFormat{
	gl.RGBA:                     format.ExternalRGBA,
	gl.RGBA8:                    format.ExternalRGBA8,
	gl.BGRA:                     format.ExternalBGRA,
	gl.BGR:                      format.ExternalBGR,
	gl.RGB:                      format.ExternalRGB,
	gl.RG:                       format.ExternalRG,
	gl.RED:                      format.ExternalRed,
	gl.DEPTH_COMPONENT:          format.ExternalDepthComponent,
	gl.DEPTH_COMPONENT16:        format.ExternalDepthComponent16,
	gl.DEPTH_COMPONENT24:        format.ExternalDepthComponent24,
	gl.DEPTH_COMPONENT32F:       format.ExternalDepthComponent32F,
	gl.DEPTH24_STENCIL8:         format.ExternalDepth24Stencil8,
	gl.DEPTH32F_STENCIL8:        format.ExternalDepth32FStencil8,
	gl.UNSIGNED_INT_8_8_8_8_REV: format.ExternalUnsignedInt8888Rev,
}

var componentTypes = map[uint32]format.ComponentType{
	gl.UNSIGNED_BYTE:            format.ComponentUnsignedByte,
	gl.BYTE:                     format.ComponentByte,
	gl.UNSIGNED_INT_8_8_8_8:     format.ComponentUnsignedInt8888,
	gl.UNSIGNED_INT_8_8_8_8_REV: format.ComponentUnsignedInt8888Rev,
}

// ExternalFormat decodes a GL format or internal-format enumerant.
func ExternalFormat(v uint32) (format.ExternalFormat, error) {
	if f, ok := externalFormats[v]; ok {
		return f, nil
	}
	return format.ExternalUndefined, fmt.Errorf("%w: GL format 0x%04X", format.ErrUnsupportedFormat, v)
}

// ComponentType decodes a GL pixel type enumerant.
func ComponentType(v uint32) (format.ComponentType, error) {
	if c, ok := componentTypes[v]; ok {
		return c, nil
	}
	return format.ComponentUndefined, fmt.Errorf("%w: GL type 0x%04X", format.ErrUnsupportedFormat, v)
}

// ToGL encodes a format tag as its GL enumerant.
func ToGL(f format.ExternalFormat) (uint32, bool) {
	for v, tag := range externalFormats {
		if tag == f {
			return v, true
		}
	}
	return 0, false
}

// Resolve decodes a raw (format, type) pair and resolves it with t.
func Resolve(t *format.Translator, glFormat, glType uint32) (format.TargetFormat, error) {
	ext, err := ExternalFormat(glFormat)
	if err != nil {
		return format.TargetUndefined, err
	}
	if ext.IsDepth() {
		// Depth tags accept any type, including ones this package cannot decode.
		return t.Resolve(ext, format.ComponentUndefined)
	}
	typ, err := ComponentType(glType)
	if err != nil {
		return format.TargetUndefined, err
	}
	return t.Resolve(ext, typ)
}

// ResolveInternal decodes a raw internal-format enumerant and resolves it
// with t.ResolveInternal.
func ResolveInternal(t *format.Translator, glInternal uint32) (format.TargetFormat, error) {
	ext, err := ExternalFormat(glInternal)
	if err != nil {
		return format.TargetUndefined, err
	}
	return t.ResolveInternal(ext)
}
