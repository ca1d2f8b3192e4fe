// Package glcompat prepares legacy GL texture data for an explicit GPU API.
//
// # Overview
//
// Legacy code describes pixel data with GL-style (format, type) tags and
// often hands over layouts that explicit backends cannot sample, such as
// tightly packed 3-channel RGB. glcompat resolves the target texture format
// for such data and repacks the bytes when the layouts differ.
//
// The work is split across sub-packages:
//
//   - pixel: channel layouts and the byte repacker (3 to 4 channel expansion,
//     BGRA/RGBA reordering)
//   - format: the (format, type) to target format translator, its reverse,
//     and the bridge to gputypes texture formats
//   - format/glenum: decoding of numeric GL enumerants (requires cgo)
//   - rendertype: the render-type remap table for terrain layers
//   - shader: shader-file stage lookup and a WGSL to SPIR-V loader
//   - backend/native: HAL texture upload and the live depth format
//
// # Quick Start
//
//	depth := &native.LiveDepth{}
//	t := format.NewTranslator(depth)
//
//	u, err := glcompat.Prepare(t, rgb, format.ExternalRGB, format.ComponentUnsignedByte)
//	if err != nil {
//	    return err
//	}
//	// u.Format is R8G8B8A8_UNORM and u.Data holds 4-byte pixels.
//
//	up, err := native.NewUploader(device, queue)
//	if err != nil {
//	    return err
//	}
//	tex, err := up.Upload(width, height, u)
//
// # Errors
//
// Errors from the data path (Prepare, the translator, the repacker, shader
// stage lookup and the remap table) wrap one of ErrInvalidLayout,
// ErrOutOfMemory, ErrUnsupportedFormat or ErrNotConfigured; test with
// errors.Is. Argument and backend errors use package sentinels instead:
// pixel.ErrUnsupportedConversion, rendertype.ErrUnknownCategory and
// ErrUnknownMode, shader.ErrInvalidSPIRV, ErrNilDevice and ErrNilModule, and
// the Err* values of backend/native.
//
// # Build
//
// Package format/glenum and cmd/glconv import the go-gl bindings for their
// enumerant constants, which require cgo and the OpenGL development headers.
// Every other package is pure Go.
//
// # Logging
//
// Nothing is logged by default. Use SetLogger to route debug and info
// records from all sub-packages to a slog.Logger.
package glcompat
