package native

import "errors"

// Package errors for the HAL upload backend.
var (
	// ErrNilDevice is returned when an uploader is built without a HAL device
	// or queue.
	ErrNilDevice = errors.New("native: HAL device or queue is nil")

	// ErrNoHALProvider is returned when a provider exposes neither HAL
	// accessors nor HAL-typed gpucontext handles.
	ErrNoHALProvider = errors.New("native: provider does not expose a HAL device")

	// ErrNilProvider is returned when a device provider is required but nil.
	ErrNilProvider = errors.New("native: nil device provider")

	// ErrNilTexture is returned by Write without a texture.
	ErrNilTexture = errors.New("native: nil texture")

	// ErrInvalidDimensions is returned when width or height is zero.
	ErrInvalidDimensions = errors.New("native: invalid dimensions")

	// ErrNilUpload is returned when Upload is called without an upload.
	ErrNilUpload = errors.New("native: nil upload")

	// ErrNoTextureFormat is returned for target formats that have no
	// gputypes equivalent (the 3-channel formats).
	ErrNoTextureFormat = errors.New("native: target format has no texture format")

	// ErrSizeMismatch is returned when the data length disagrees with
	// width*height*bytesPerPixel.
	ErrSizeMismatch = errors.New("native: data size does not match dimensions")

	// ErrTextureDestroyed is returned when writing to a destroyed texture.
	ErrTextureDestroyed = errors.New("native: texture has been destroyed")
)
